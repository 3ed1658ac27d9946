package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/event"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/repository"
)

var admin = domain.Caller{Role: domain.RoleAdmin}

func player(userID int64) domain.Caller {
	return domain.Caller{Role: domain.RolePlayer, UserID: userID}
}

type testEnv struct {
	svc  Service
	repo *FakeRepository
	bus  *event.MemoryBus
}

func newTestEnv(t *testing.T, opts Options) *testEnv {
	t.Helper()
	repo := NewFakeRepository()
	bus := event.NewMemoryBus()
	svc := NewService(repo, bus, opts)
	NewStatsInitializer(svc).Register(bus)
	return &testEnv{svc: svc, repo: repo, bus: bus}
}

func (e *testEnv) item(t *testing.T, name string, typ domain.ItemType, effect domain.EffectType, value int) *domain.Item {
	t.Helper()
	item, err := e.svc.CreateItem(context.Background(), admin, domain.ItemDefinition{
		Name: name, Type: typ, Effect: effect, EffectValue: value,
	}, 0)
	require.NoError(t, err)
	return item
}

func (e *testEnv) give(t *testing.T, userID, itemID int64, quantity int) {
	t.Helper()
	_, err := e.svc.AssignItem(context.Background(), admin, userID, itemID, quantity)
	require.NoError(t, err)
}

func (e *testEnv) stats(t *testing.T, userID int64) domain.UserStats {
	t.Helper()
	s, err := e.svc.GetUserStats(context.Background(), admin, userID)
	require.NoError(t, err)
	return *s
}

func TestActOnItem_PotionHealsToCap(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	userID := env.repo.seedUser("alice", domain.RolePlayer, true)
	env.repo.setStats(domain.UserStats{UserID: userID, HP: 80, Attack: 10, Defense: 10})
	potion := env.item(t, "Potion", domain.ItemTypeConsumable, domain.EffectHp, 30)
	env.give(t, userID, potion.ID, 1)

	result, err := env.svc.ActOnItem(ctx, player(userID), userID, potion.ID, 1, domain.ActionConsume)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Stats.HP)
	assert.Equal(t, 0, result.Remaining)
	_, held := env.repo.entry(userID, potion.ID)
	assert.False(t, held, "row with zero quantity must be removed")
}

func TestActOnItem_SwordEquipRoundTrip(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	userID := env.repo.seedUser("bob", domain.RolePlayer, true)
	sword := env.item(t, "Sword", domain.ItemTypeEquipment, domain.EffectAttack, 5)
	env.give(t, userID, sword.ID, 1)

	equipped, err := env.svc.ActOnItem(ctx, player(userID), userID, sword.ID, 1, domain.ActionEquip)
	require.NoError(t, err)
	assert.Equal(t, 15, equipped.Stats.Attack)
	assert.True(t, equipped.Equipped)
	assert.Equal(t, 1, equipped.Remaining)

	unequipped, err := env.svc.ActOnItem(ctx, player(userID), userID, sword.ID, 1, domain.ActionUnequip)
	require.NoError(t, err)
	assert.Equal(t, 10, unequipped.Stats.Attack)
	assert.False(t, unequipped.Equipped)

	entry, held := env.repo.entry(userID, sword.ID)
	require.True(t, held)
	assert.Equal(t, 1, entry.Quantity)
	assert.False(t, entry.Equipped)
}

func TestActOnItem_EquipUnequipLeavesStatsUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		effect domain.EffectType
		value  int
	}{
		{"attack", domain.EffectAttack, 7},
		{"defense", domain.EffectDefense, 4},
		{"negative defense", domain.EffectDefense, -3},
		{"hp has no equip effect", domain.EffectHp, 25},
		{"none", domain.EffectNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, DefaultOptions())
			ctx := context.Background()
			userID := env.repo.seedUser("carol", domain.RolePlayer, true)
			item := env.item(t, "Gear", domain.ItemTypeEquipment, tt.effect, tt.value)
			env.give(t, userID, item.ID, 1)
			before := env.stats(t, userID)

			_, err := env.svc.ActOnItem(ctx, admin, userID, item.ID, 1, domain.ActionEquip)
			require.NoError(t, err)
			_, err = env.svc.ActOnItem(ctx, admin, userID, item.ID, 1, domain.ActionUnequip)
			require.NoError(t, err)

			assert.Equal(t, before, env.stats(t, userID))
		})
	}
}

func TestActOnItem_UnequipReversesSnapshotAfterRedefinition(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	userID := env.repo.seedUser("dave", domain.RolePlayer, true)
	sword := env.item(t, "Sword", domain.ItemTypeEquipment, domain.EffectAttack, 5)
	env.give(t, userID, sword.ID, 1)

	_, err := env.svc.ActOnItem(ctx, admin, userID, sword.ID, 1, domain.ActionEquip)
	require.NoError(t, err)

	// Buff the sword while it is worn
	env.item(t, "Sword", domain.ItemTypeEquipment, domain.EffectAttack, 50)

	result, err := env.svc.ActOnItem(ctx, admin, userID, sword.ID, 1, domain.ActionUnequip)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAttack, result.Stats.Attack)
}

func TestActOnItem_ConcurrentConsumeOfLastUnit(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	userID := env.repo.seedUser("erin", domain.RolePlayer, true)
	env.repo.setStats(domain.UserStats{UserID: userID, HP: 50, Attack: 10, Defense: 10})
	potion := env.item(t, "Potion", domain.ItemTypeConsumable, domain.EffectHp, 30)
	env.give(t, userID, potion.ID, 1)

	const workers = 2
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.svc.ActOnItem(ctx, player(userID), userID, potion.ID, 1, domain.ActionConsume)
		}(i)
	}
	wg.Wait()

	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientQuantity):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, insufficient)
	assert.Equal(t, 80, env.stats(t, userID).HP, "effect must apply exactly once")
}

func TestActOnItem_ConsumeManyUnitsAppliesEffectOnce(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	userID := env.repo.seedUser("frank", domain.RolePlayer, true)
	env.repo.setStats(domain.UserStats{UserID: userID, HP: 50, Attack: 10, Defense: 10})
	potion := env.item(t, "Potion", domain.ItemTypeConsumable, domain.EffectHp, 10)
	env.give(t, userID, potion.ID, 5)

	result, err := env.svc.ActOnItem(ctx, admin, userID, potion.ID, 3, domain.ActionConsume)
	require.NoError(t, err)
	assert.Equal(t, 60, result.Stats.HP)
	assert.Equal(t, 2, result.Remaining)

	_, err = env.svc.ActOnItem(ctx, admin, userID, potion.ID, 3, domain.ActionConsume)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	assert.Equal(t, 60, env.stats(t, userID).HP)
}

func TestActOnItem_ConsumeLastEquippedUnitRemovesBonus(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	userID := env.repo.seedUser("gina", domain.RolePlayer, true)
	sword := env.item(t, "Sword", domain.ItemTypeEquipment, domain.EffectAttack, 5)
	env.give(t, userID, sword.ID, 1)
	_, err := env.svc.ActOnItem(ctx, admin, userID, sword.ID, 1, domain.ActionEquip)
	require.NoError(t, err)

	result, err := env.svc.ActOnItem(ctx, admin, userID, sword.ID, 1, domain.ActionConsume)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAttack, result.Stats.Attack)
	assert.False(t, result.Equipped)
}

func TestActOnItem_Delete(t *testing.T) {
	tests := []struct {
		name         string
		force        bool
		equip        bool
		held         int
		remove       int
		wantAttack   int
		wantEquipped bool
	}{
		{"unequipped item has no effect", false, false, 2, 1, 10, false},
		{"equipped with units left keeps bonus", false, true, 2, 1, 15, true},
		{"last equipped unit removes bonus", false, true, 1, 1, 10, false},
		{"force mode unequips on partial delete", true, true, 2, 1, 10, false},
		{"force mode reverses unequipped item", true, false, 2, 1, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.ForceUnequipOnDelete = tt.force
			env := newTestEnv(t, opts)
			ctx := context.Background()

			userID := env.repo.seedUser("hank", domain.RolePlayer, true)
			sword := env.item(t, "Sword", domain.ItemTypeEquipment, domain.EffectAttack, 5)
			env.give(t, userID, sword.ID, tt.held)
			if tt.equip {
				_, err := env.svc.ActOnItem(ctx, admin, userID, sword.ID, 1, domain.ActionEquip)
				require.NoError(t, err)
			}

			result, err := env.svc.ActOnItem(ctx, admin, userID, sword.ID, tt.remove, domain.ActionDelete)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAttack, result.Stats.Attack)
			assert.Equal(t, tt.wantEquipped, result.Equipped)
			assert.Equal(t, tt.held-tt.remove, result.Remaining)
		})
	}
}

func TestActOnItem_EquipErrors(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	userID := env.repo.seedUser("iris", domain.RolePlayer, true)
	sword := env.item(t, "Sword", domain.ItemTypeEquipment, domain.EffectAttack, 5)

	_, err := env.svc.ActOnItem(ctx, admin, userID, sword.ID, 1, domain.ActionEquip)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	_, err = env.svc.ActOnItem(ctx, admin, userID, sword.ID, 1, domain.ActionUnequip)
	assert.ErrorIs(t, err, domain.ErrNotEquipped)

	env.give(t, userID, sword.ID, 2)
	_, err = env.svc.ActOnItem(ctx, admin, userID, sword.ID, 2, domain.ActionEquip)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.svc.ActOnItem(ctx, admin, userID, sword.ID, 1, domain.ActionEquip)
	require.NoError(t, err)
	_, err = env.svc.ActOnItem(ctx, admin, userID, sword.ID, 1, domain.ActionEquip)
	assert.ErrorIs(t, err, domain.ErrAlreadyEquipped)
	assert.Equal(t, 15, env.stats(t, userID).Attack, "second equip must not stack")
}

func TestActOnItem_InputErrors(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	userID := env.repo.seedUser("jack", domain.RolePlayer, true)
	potion := env.item(t, "Potion", domain.ItemTypeConsumable, domain.EffectHp, 30)
	env.give(t, userID, potion.ID, 1)

	_, err := env.svc.ActOnItem(ctx, admin, userID, potion.ID, 1, domain.Action("drink"))
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
	assert.True(t, domain.IsValidation(err))

	_, err = env.svc.ActOnItem(ctx, admin, userID, potion.ID, 0, domain.ActionConsume)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.svc.ActOnItem(ctx, admin, userID, potion.ID+100, 1, domain.ActionConsume)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = env.svc.ActOnItem(ctx, admin, userID+100, potion.ID, 1, domain.ActionConsume)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
}

func TestActOnItem_MissingStatsRollsBack(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	userID := env.repo.seedUser("kate", domain.RolePlayer, false)
	potion := env.item(t, "Potion", domain.ItemTypeConsumable, domain.EffectHp, 30)
	env.give(t, userID, potion.ID, 2)

	_, err := env.svc.ActOnItem(ctx, admin, userID, potion.ID, 1, domain.ActionConsume)
	assert.ErrorIs(t, err, domain.ErrStatsNotFound)

	entry, held := env.repo.entry(userID, potion.ID)
	require.True(t, held)
	assert.Equal(t, 2, entry.Quantity, "ledger change must roll back with the failed effect")

	_, err = env.svc.GetUserStats(ctx, admin, userID)
	assert.ErrorIs(t, err, domain.ErrStatsNotFound, "stats are never created on demand")
}

func TestCallerChecks(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	alice := env.repo.seedUser("alice", domain.RolePlayer, true)
	bob := env.repo.seedUser("bob", domain.RolePlayer, true)
	potion := env.item(t, "Potion", domain.ItemTypeConsumable, domain.EffectHp, 30)
	env.give(t, alice, potion.ID, 1)

	_, err := env.svc.CreateItem(ctx, player(alice), domain.ItemDefinition{Name: "Elixir", Type: domain.ItemTypeConsumable}, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = env.svc.AssignItem(ctx, player(alice), alice, potion.ID, 5)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = env.svc.ActOnItem(ctx, player(bob), alice, potion.ID, 1, domain.ActionConsume)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = env.svc.GetUserInventory(ctx, player(bob), alice)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = env.svc.GetUserStats(ctx, domain.Caller{}, alice)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	slots, err := env.svc.GetUserInventory(ctx, player(alice), alice)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "Potion", slots[0].Name)
	assert.Equal(t, 1, slots[0].Quantity)
}

func TestCreateItem(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	t.Run("unknown effect is rejected", func(t *testing.T) {
		_, err := env.svc.CreateItem(ctx, admin, domain.ItemDefinition{
			Name: "Mana Potion", Type: domain.ItemTypeConsumable, Effect: "mana", EffectValue: 10,
		}, 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := env.svc.CreateItem(ctx, admin, domain.ItemDefinition{Name: "  ", Type: domain.ItemTypeConsumable}, 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("negative initial quantity is rejected", func(t *testing.T) {
		_, err := env.svc.CreateItem(ctx, admin, domain.ItemDefinition{Name: "Rock", Type: domain.ItemTypeCraftingItem}, -1)
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = env.svc.GetItemByName(ctx, "Rock")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("redefinition keeps id", func(t *testing.T) {
		first := env.item(t, "Shield", domain.ItemTypeEquipment, domain.EffectDefense, 3)
		second := env.item(t, "Shield", domain.ItemTypeEquipment, domain.EffectDefense, 8)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 8, second.EffectValue)
	})
}

func TestCreateItem_RestocksExistingRowsOnly(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	holder := env.repo.seedUser("holder", domain.RolePlayer, true)
	other := env.repo.seedUser("other", domain.RolePlayer, true)
	coin := env.item(t, "Coin", domain.ItemTypeCurrency, domain.EffectNone, 0)
	env.give(t, holder, coin.ID, 3)

	_, err := env.svc.CreateItem(ctx, admin, domain.ItemDefinition{Name: "Coin", Type: domain.ItemTypeCurrency}, 7)
	require.NoError(t, err)

	entry, held := env.repo.entry(holder, coin.ID)
	require.True(t, held)
	assert.Equal(t, 7, entry.Quantity)
	_, held = env.repo.entry(other, coin.ID)
	assert.False(t, held)
}

func TestCreateItem_InvalidatesCachedDefinition(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	userID := env.repo.seedUser("lena", domain.RolePlayer, true)
	env.repo.setStats(domain.UserStats{UserID: userID, HP: 10, Attack: 10, Defense: 10})
	potion := env.item(t, "Potion", domain.ItemTypeConsumable, domain.EffectHp, 30)
	_, err := env.svc.GetItem(ctx, potion.ID)
	require.NoError(t, err)

	env.item(t, "Potion", domain.ItemTypeConsumable, domain.EffectHp, 5)
	env.give(t, userID, potion.ID, 1)

	result, err := env.svc.ActOnItem(ctx, admin, userID, potion.ID, 1, domain.ActionConsume)
	require.NoError(t, err)
	assert.Equal(t, 15, result.Stats.HP)
}

func TestAssignItem(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	userID := env.repo.seedUser("mona", domain.RolePlayer, true)
	potion := env.item(t, "Potion", domain.ItemTypeConsumable, domain.EffectHp, 30)

	var assigned []event.Event
	env.bus.Subscribe(event.ItemAssigned, func(ctx context.Context, evt event.Event) error {
		assigned = append(assigned, evt)
		return nil
	})

	total, err := env.svc.AssignItem(ctx, admin, userID, potion.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	total, err = env.svc.AssignItem(ctx, admin, userID, potion.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, assigned, 2)
	assert.Equal(t, domain.DefaultHP, env.stats(t, userID).HP, "assignment never changes stats")

	_, err = env.svc.AssignItem(ctx, admin, userID, potion.ID, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = env.svc.AssignItem(ctx, admin, userID, potion.ID+100, 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	_, err = env.svc.AssignItem(ctx, admin, userID+100, potion.ID, 1)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestWithTx_RetriesConflicts(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	userID := env.repo.seedUser("nina", domain.RolePlayer, true)
	potion := env.item(t, "Potion", domain.ItemTypeConsumable, domain.EffectHp, 30)
	commitsBefore := env.repo.commitCount()

	env.repo.failNextCommits(2)
	total, err := env.svc.AssignItem(ctx, admin, userID, potion.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, total, "aborted attempts must not leak writes")
	assert.Equal(t, commitsBefore+1, env.repo.commitCount())
}

func TestWithTx_GivesUpAfterMaxRetries(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxRetries = 1
	env := newTestEnv(t, opts)
	ctx := context.Background()

	userID := env.repo.seedUser("omar", domain.RolePlayer, true)
	potion := env.item(t, "Potion", domain.ItemTypeConsumable, domain.EffectHp, 30)

	env.repo.failNextCommits(5)
	_, err := env.svc.AssignItem(ctx, admin, userID, potion.ID, 1)
	assert.ErrorIs(t, err, repository.ErrTxConflict)
	_, held := env.repo.entry(userID, potion.ID)
	assert.False(t, held)
}

func TestProvisionUser_InitializesStatsOnce(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	var created int
	env.bus.Subscribe(event.UserCreated, func(ctx context.Context, evt event.Event) error {
		created++
		return nil
	})

	user, err := env.svc.ProvisionUser(ctx, admin, "  pat  ", "")
	require.NoError(t, err)
	assert.Equal(t, "pat", user.Username)
	assert.Equal(t, domain.RolePlayer, user.Role)
	assert.Equal(t, domain.DefaultStats(user.ID), env.stats(t, user.ID))

	env.repo.setStats(domain.UserStats{UserID: user.ID, HP: 40, Attack: 10, Defense: 10})
	again, err := env.svc.ProvisionUser(ctx, admin, "pat", domain.RolePlayer)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, 1, created)
	assert.Equal(t, 40, env.stats(t, user.ID).HP, "existing stats must not be reset")
}

func TestProvisionUser_RetryRepairsFailedStatsInit(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	// Both the user.created subscriber and the direct call fail once each.
	reset := errors.New("connection reset")
	env.repo.failNextEnsureStats(2, reset)

	user, err := env.svc.ProvisionUser(ctx, admin, "rita", domain.RolePlayer)
	require.ErrorIs(t, err, reset)
	require.NotNil(t, user)

	_, err = env.svc.GetUserStats(ctx, admin, user.ID)
	require.ErrorIs(t, err, domain.ErrStatsNotFound)

	again, err := env.svc.ProvisionUser(ctx, admin, "rita", domain.RolePlayer)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, domain.DefaultStats(user.ID), env.stats(t, user.ID))
}

func TestProvisionUser_SubscriberFailureDoesNotFailProvisioning(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	env.bus.Subscribe(event.UserCreated, func(ctx context.Context, evt event.Event) error {
		return errors.New("audit store down")
	})

	user, err := env.svc.ProvisionUser(ctx, admin, "sam", domain.RolePlayer)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStats(user.ID), env.stats(t, user.ID))
}

func TestProvisionUser_Validation(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	_, err := env.svc.ProvisionUser(ctx, player(1), "quinn", domain.RolePlayer)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = env.svc.ProvisionUser(ctx, admin, "", domain.RolePlayer)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.svc.ProvisionUser(ctx, admin, "quinn", domain.Role("root"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInitializeAllStats(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	env.repo.seedUser("a", domain.RolePlayer, false)
	env.repo.seedUser("b", domain.RolePlayer, false)
	env.repo.seedUser("c", domain.RolePlayer, true)

	n, err := env.svc.InitializeAllStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = env.svc.InitializeAllStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGetUserInventory_UnknownUser(t *testing.T) {
	env := newTestEnv(t, DefaultOptions())

	_, err := env.svc.GetUserInventory(context.Background(), admin, 42)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
