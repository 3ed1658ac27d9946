package inventory

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/event"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/metrics"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/repository"
)

// AssignItem adds quantity units of itemID to userID's ledger. Assignment
// alone never changes stats.
func (s *service) AssignItem(ctx context.Context, caller domain.Caller, userID, itemID int64, quantity int) (total int, err error) {
	ctx, span := tracer.Start(ctx, "inventory.AssignItem", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("item.id", itemID),
		attribute.Int("quantity", quantity),
	))
	defer func() { endSpan(span, err) }()

	if err := s.requireAdmin(caller); err != nil {
		return 0, err
	}
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgInvalidQuantity)
	}
	if _, err := s.getItemCached(ctx, itemID); err != nil {
		return 0, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return 0, err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	err = s.withTx(ctx, "assign_item", func(tx repository.InventoryTx) error {
		total, err = tx.IncreaseQuantity(ctx, userID, itemID, quantity)
		return err
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info(LogMsgItemAssigned, "user_id", userID, "item_id", itemID, "quantity", quantity, "total", total)
	s.publish(ctx, event.NewItemAssignedEvent(userID, itemID, quantity))
	return total, nil
}

// ActOnItem applies action to quantity units of itemID held by userID. The
// ledger change and the stat change commit in one transaction.
func (s *service) ActOnItem(ctx context.Context, caller domain.Caller, userID, itemID int64, quantity int, action domain.Action) (result *domain.ActionResult, err error) {
	ctx, span := tracer.Start(ctx, "inventory.ActOnItem", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("item.id", itemID),
		attribute.Int("quantity", quantity),
		attribute.String("action", string(action)),
	))
	defer func() {
		metrics.RecordAction(string(action), resultLabel(err))
		endSpan(span, err)
	}()

	if err := s.requireAccess(caller, userID); err != nil {
		return nil, err
	}
	if err := validateAction(action, quantity); err != nil {
		return nil, err
	}
	item, err := s.getItemCached(ctx, itemID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	err = s.withTx(ctx, "act_on_item", func(tx repository.InventoryTx) error {
		var err error
		switch action {
		case domain.ActionConsume:
			result, err = s.consume(ctx, tx, userID, item, quantity)
		case domain.ActionDelete:
			result, err = s.remove(ctx, tx, userID, item, quantity)
		case domain.ActionEquip:
			result, err = s.equip(ctx, tx, userID, item)
		case domain.ActionUnequip:
			result, err = s.unequip(ctx, tx, userID, item)
		}
		return err
	})

	log := logger.FromContext(ctx)
	if err != nil {
		log.Debug(LogMsgActionFailed, "user_id", userID, "item_id", itemID, "action", action, "error", err)
		return nil, err
	}

	log.Info(LogMsgActionApplied,
		"user_id", userID, "item_id", itemID, "action", action,
		"quantity", quantity, "remaining", result.Remaining, "hp", result.Stats.HP,
		"attack", result.Stats.Attack, "defense", result.Stats.Defense)
	s.publish(ctx, event.NewItemActionEvent(action, userID, quantity, *result))
	return result, nil
}

func validateAction(action domain.Action, quantity int) error {
	switch action {
	case domain.ActionConsume, domain.ActionDelete:
		if quantity <= 0 {
			return fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgInvalidQuantity)
		}
	case domain.ActionEquip, domain.ActionUnequip:
		if quantity != 1 {
			return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgSingleUnit)
		}
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownAction, action)
	}
	return nil
}

// consume removes quantity units and applies the consume effect once.
// Consuming the last unit of an equipped entry also takes its bonus away.
func (s *service) consume(ctx context.Context, tx repository.InventoryTx, userID int64, item *domain.Item, quantity int) (*domain.ActionResult, error) {
	entry, err := tx.GetEntryForUpdate(ctx, userID, item.ID)
	if err != nil {
		return nil, err
	}
	remaining, err := tx.DecreaseQuantity(ctx, userID, item.ID, quantity)
	if err != nil {
		return nil, err
	}

	if entry.Equipped && remaining == 0 {
		if _, err := s.engine.Apply(ctx, tx, userID, entry.EquippedEffect, entry.EquippedValue, domain.ActionUnequip); err != nil {
			return nil, err
		}
	}

	stats, err := s.engine.Apply(ctx, tx, userID, item.Effect, item.EffectValue, domain.ActionConsume)
	if err != nil {
		return nil, err
	}
	return &domain.ActionResult{
		Action:    domain.ActionConsume,
		ItemID:    item.ID,
		Remaining: remaining,
		Equipped:  entry.Equipped && remaining > 0,
		Stats:     *stats,
	}, nil
}

// remove deletes quantity units. The equip bonus is reversed when the last
// unit of an equipped entry goes, or on every delete when
// ForceUnequipOnDelete is set.
func (s *service) remove(ctx context.Context, tx repository.InventoryTx, userID int64, item *domain.Item, quantity int) (*domain.ActionResult, error) {
	entry, err := tx.GetEntryForUpdate(ctx, userID, item.ID)
	if err != nil {
		return nil, err
	}
	remaining, err := tx.DecreaseQuantity(ctx, userID, item.ID, quantity)
	if err != nil {
		return nil, err
	}

	effectType, value := domain.EffectNone, 0
	stillEquipped := entry.Equipped && remaining > 0
	switch {
	case s.opts.ForceUnequipOnDelete:
		effectType, value = item.Effect, item.EffectValue
		if entry.Equipped {
			effectType, value = entry.EquippedEffect, entry.EquippedValue
		}
		if stillEquipped {
			if err := tx.SetEquipped(ctx, userID, item.ID, false, domain.EffectNone, 0); err != nil {
				return nil, err
			}
			stillEquipped = false
		}
	case entry.Equipped && remaining == 0:
		effectType, value = entry.EquippedEffect, entry.EquippedValue
	}

	stats, err := s.engine.Apply(ctx, tx, userID, effectType, value, domain.ActionUnequip)
	if err != nil {
		return nil, err
	}
	return &domain.ActionResult{
		Action:    domain.ActionDelete,
		ItemID:    item.ID,
		Remaining: remaining,
		Equipped:  stillEquipped,
		Stats:     *stats,
	}, nil
}

// equip marks one held unit as worn and applies its bonus. The applied effect
// is stored on the entry so unequip reverses exactly what was added.
func (s *service) equip(ctx context.Context, tx repository.InventoryTx, userID int64, item *domain.Item) (*domain.ActionResult, error) {
	entry, err := tx.GetEntryForUpdate(ctx, userID, item.ID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: have 0, need 1", domain.ErrInsufficientQuantity)
	}
	if entry.Equipped {
		return nil, fmt.Errorf("%w: item %d", domain.ErrAlreadyEquipped, item.ID)
	}

	if err := tx.SetEquipped(ctx, userID, item.ID, true, item.Effect, item.EffectValue); err != nil {
		return nil, err
	}
	stats, err := s.engine.Apply(ctx, tx, userID, item.Effect, item.EffectValue, domain.ActionEquip)
	if err != nil {
		return nil, err
	}
	return &domain.ActionResult{
		Action:    domain.ActionEquip,
		ItemID:    item.ID,
		Remaining: entry.Quantity,
		Equipped:  true,
		Stats:     *stats,
	}, nil
}

// unequip clears the worn flag and reverses the stored bonus
func (s *service) unequip(ctx context.Context, tx repository.InventoryTx, userID int64, item *domain.Item) (*domain.ActionResult, error) {
	entry, err := tx.GetEntryForUpdate(ctx, userID, item.ID)
	if err != nil {
		return nil, err
	}
	if entry == nil || !entry.Equipped {
		return nil, fmt.Errorf("%w: item %d", domain.ErrNotEquipped, item.ID)
	}

	if err := tx.SetEquipped(ctx, userID, item.ID, false, domain.EffectNone, 0); err != nil {
		return nil, err
	}
	stats, err := s.engine.Apply(ctx, tx, userID, entry.EquippedEffect, entry.EquippedValue, domain.ActionUnequip)
	if err != nil {
		return nil, err
	}
	return &domain.ActionResult{
		Action:    domain.ActionUnequip,
		ItemID:    item.ID,
		Remaining: entry.Quantity,
		Equipped:  false,
		Stats:     *stats,
	}, nil
}

// GetUserInventory lists what userID holds
func (s *service) GetUserInventory(ctx context.Context, caller domain.Caller, userID int64) ([]domain.InventorySlot, error) {
	if err := s.requireAccess(caller, userID); err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListUserInventory(ctx, userID)
}
