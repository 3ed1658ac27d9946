package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/repository"
)

type entryKey struct {
	userID int64
	itemID int64
}

type fakeState struct {
	users   map[int64]domain.User
	items   map[int64]domain.Item
	stats   map[int64]domain.UserStats
	entries map[entryKey]domain.InventoryEntry

	nextUserID int64
	nextItemID int64
}

func (s *fakeState) clone() *fakeState {
	c := &fakeState{
		users:      make(map[int64]domain.User, len(s.users)),
		items:      make(map[int64]domain.Item, len(s.items)),
		stats:      make(map[int64]domain.UserStats, len(s.stats)),
		entries:    make(map[entryKey]domain.InventoryEntry, len(s.entries)),
		nextUserID: s.nextUserID,
		nextItemID: s.nextItemID,
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.stats {
		c.stats[k] = v
	}
	for k, v := range s.entries {
		c.entries[k] = v
	}
	return c
}

// FakeRepository is a stateful in-memory repository.Inventory. Transactions
// run one at a time and work on a copy of the state that replaces it on
// commit, which makes them trivially serializable.
type FakeRepository struct {
	mu    sync.Mutex
	txMu  sync.Mutex
	state *fakeState

	// conflicts makes the next n commits fail with repository.ErrTxConflict.
	conflicts int
	commits   int

	// ensureStatsErr is returned by the next ensureStatsFailures EnsureStats calls.
	ensureStatsErr      error
	ensureStatsFailures int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{state: &fakeState{
		users:   make(map[int64]domain.User),
		items:   make(map[int64]domain.Item),
		stats:   make(map[int64]domain.UserStats),
		entries: make(map[entryKey]domain.InventoryEntry),
	}}
}

// failNextCommits injects n serialization failures
func (f *FakeRepository) failNextCommits(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conflicts = n
}

// failNextEnsureStats makes the next n EnsureStats calls return err
func (f *FakeRepository) failNextEnsureStats(n int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensureStatsFailures = n
	f.ensureStatsErr = err
}

func (f *FakeRepository) commitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commits
}

// seedUser adds a user, with default stats when withStats is set
func (f *FakeRepository) seedUser(username string, role domain.Role, withStats bool) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.nextUserID++
	id := f.state.nextUserID
	f.state.users[id] = domain.User{ID: id, Username: username, Role: role, CreatedAt: time.Now()}
	if withStats {
		f.state.stats[id] = domain.DefaultStats(id)
	}
	return id
}

func (f *FakeRepository) setStats(stats domain.UserStats) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.stats[stats.UserID] = stats
}

func (f *FakeRepository) entry(userID, itemID int64) (domain.InventoryEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.state.entries[entryKey{userID, itemID}]
	return e, ok
}

// Catalog

func (f *FakeRepository) UpsertItem(ctx context.Context, def domain.ItemDefinition) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return upsertItem(f.state, def), nil
}

func (f *FakeRepository) GetItemByID(ctx context.Context, id int64) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.state.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	return &item, nil
}

func (f *FakeRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.state.items {
		if strings.EqualFold(item.Name, name) {
			return &item, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
}

func (f *FakeRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]domain.Item, 0, len(f.state.items))
	for _, item := range f.state.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *FakeRepository) RestockItem(ctx context.Context, itemID int64, quantity int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return restockItem(f.state, itemID, quantity), nil
}

// Stats

func (f *FakeRepository) GetStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return getStats(f.state, userID)
}

func (f *FakeRepository) EnsureStats(ctx context.Context, userID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ensureStatsFailures > 0 {
		f.ensureStatsFailures--
		return false, f.ensureStatsErr
	}
	if _, ok := f.state.users[userID]; !ok {
		return false, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, userID)
	}
	if _, ok := f.state.stats[userID]; ok {
		return false, nil
	}
	f.state.stats[userID] = domain.DefaultStats(userID)
	return true, nil
}

func (f *FakeRepository) InitializeMissingStats(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id := range f.state.users {
		if _, ok := f.state.stats[id]; !ok {
			f.state.stats[id] = domain.DefaultStats(id)
			n++
		}
	}
	return n, nil
}

// Ledger

func (f *FakeRepository) GetQuantity(ctx context.Context, userID, itemID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.entries[entryKey{userID, itemID}].Quantity, nil
}

func (f *FakeRepository) ListUserInventory(ctx context.Context, userID int64) ([]domain.InventorySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slots := []domain.InventorySlot{}
	for k, e := range f.state.entries {
		if k.userID != userID {
			continue
		}
		item := f.state.items[k.itemID]
		slots = append(slots, domain.InventorySlot{
			ItemID:      item.ID,
			Name:        item.Name,
			Description: item.Description,
			Type:        item.Type,
			Effect:      item.Effect,
			EffectValue: item.EffectValue,
			Quantity:    e.Quantity,
			Equipped:    e.Equipped,
		})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].ItemID < slots[j].ItemID })
	return slots, nil
}

// Users

func (f *FakeRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.state.users[userID]
	return ok, nil
}

func (f *FakeRepository) ListUserIDs(ctx context.Context) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, 0, len(f.state.users))
	for id := range f.state.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *FakeRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.state.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUserNotFound, username)
}

func (f *FakeRepository) CreateUser(ctx context.Context, username string, role domain.Role) (*domain.User, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.state.users {
		if u.Username == username {
			return &u, false, nil
		}
	}
	f.state.nextUserID++
	u := domain.User{ID: f.state.nextUserID, Username: username, Role: role, CreatedAt: time.Now()}
	f.state.users[u.ID] = u
	return &u, true, nil
}

func (f *FakeRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	f.txMu.Lock()
	f.mu.Lock()
	defer f.mu.Unlock()
	return &fakeTx{repo: f, state: f.state.clone()}, nil
}

type fakeTx struct {
	repo  *FakeRepository
	state *fakeState
	done  bool
}

func (t *fakeTx) finish() error {
	if t.done {
		return errors.New(repository.ErrMsgTxClosed)
	}
	t.done = true
	t.repo.txMu.Unlock()
	return nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.done {
		return errors.New(repository.ErrMsgTxClosed)
	}
	t.repo.mu.Lock()
	conflict := t.repo.conflicts > 0
	if conflict {
		t.repo.conflicts--
	} else {
		t.repo.state = t.state
		t.repo.commits++
	}
	t.repo.mu.Unlock()

	_ = t.finish()
	if conflict {
		return fmt.Errorf("%w: injected", repository.ErrTxConflict)
	}
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	return t.finish()
}

func (t *fakeTx) GetEntryForUpdate(ctx context.Context, userID, itemID int64) (*domain.InventoryEntry, error) {
	e, ok := t.state.entries[entryKey{userID, itemID}]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (t *fakeTx) IncreaseQuantity(ctx context.Context, userID, itemID int64, amount int) (int, error) {
	if _, ok := t.state.users[userID]; !ok {
		return 0, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, userID)
	}
	if _, ok := t.state.items[itemID]; !ok {
		return 0, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
	}
	k := entryKey{userID, itemID}
	e, ok := t.state.entries[k]
	if !ok {
		e = domain.InventoryEntry{UserID: userID, ItemID: itemID, EquippedEffect: domain.EffectNone}
	}
	e.Quantity += amount
	t.state.entries[k] = e
	return e.Quantity, nil
}

func (t *fakeTx) DecreaseQuantity(ctx context.Context, userID, itemID int64, amount int) (int, error) {
	k := entryKey{userID, itemID}
	e := t.state.entries[k]
	if e.Quantity < amount {
		return 0, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientQuantity, e.Quantity, amount)
	}
	e.Quantity -= amount
	if e.Quantity == 0 {
		delete(t.state.entries, k)
		return 0, nil
	}
	t.state.entries[k] = e
	return e.Quantity, nil
}

func (t *fakeTx) SetEquipped(ctx context.Context, userID, itemID int64, equipped bool, effect domain.EffectType, value int) error {
	k := entryKey{userID, itemID}
	e, ok := t.state.entries[k]
	if !ok {
		return fmt.Errorf("%w: user %d holds no item %d", domain.ErrInsufficientQuantity, userID, itemID)
	}
	if !equipped {
		effect, value = domain.EffectNone, 0
	}
	e.Equipped, e.EquippedEffect, e.EquippedValue = equipped, effect, value
	t.state.entries[k] = e
	return nil
}

func (t *fakeTx) GetStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	return getStats(t.state, userID)
}

func (t *fakeTx) ApplyStatDelta(ctx context.Context, userID int64, stat domain.Stat, delta int) (*domain.UserStats, error) {
	s, ok := t.state.stats[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", domain.ErrStatsNotFound, userID)
	}
	s.Apply(stat, delta)
	t.state.stats[userID] = s
	return &s, nil
}

func (t *fakeTx) UpsertItem(ctx context.Context, def domain.ItemDefinition) (*domain.Item, error) {
	return upsertItem(t.state, def), nil
}

func (t *fakeTx) RestockItem(ctx context.Context, itemID int64, quantity int) (int64, error) {
	return restockItem(t.state, itemID, quantity), nil
}

func upsertItem(s *fakeState, def domain.ItemDefinition) *domain.Item {
	now := time.Now()
	for id, item := range s.items {
		if item.Name == def.Name {
			item.Description, item.Type = def.Description, def.Type
			item.Effect, item.EffectValue = def.Effect, def.EffectValue
			item.UpdatedAt = now
			s.items[id] = item
			return &item
		}
	}
	s.nextItemID++
	item := domain.Item{
		ID:          s.nextItemID,
		Name:        def.Name,
		Description: def.Description,
		Type:        def.Type,
		Effect:      def.Effect,
		EffectValue: def.EffectValue,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.items[item.ID] = item
	return &item
}

func restockItem(s *fakeState, itemID int64, quantity int) int64 {
	var n int64
	for k, e := range s.entries {
		if k.itemID == itemID {
			e.Quantity = quantity
			s.entries[k] = e
			n++
		}
	}
	return n
}

func getStats(s *fakeState, userID int64) (*domain.UserStats, error) {
	stats, ok := s.stats[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", domain.ErrStatsNotFound, userID)
	}
	return &stats, nil
}
