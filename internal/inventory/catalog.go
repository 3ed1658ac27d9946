package inventory

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/repository"
)

// CreateItem defines an item by name and, when initialQuantity is positive,
// forces that quantity onto every ledger row already holding the item. It
// never grants the item to users who do not hold it.
func (s *service) CreateItem(ctx context.Context, caller domain.Caller, def domain.ItemDefinition, initialQuantity int) (item *domain.Item, err error) {
	ctx, span := tracer.Start(ctx, "inventory.CreateItem")
	defer func() { endSpan(span, err) }()

	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	if initialQuantity < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNegativeRestock)
	}
	def, err = def.Normalize()
	if err != nil {
		return nil, err
	}

	var restocked int64
	err = s.withTx(ctx, "create_item", func(tx repository.InventoryTx) error {
		defined, err := tx.UpsertItem(ctx, def)
		if err != nil {
			return err
		}
		item = defined

		restocked = 0
		if initialQuantity > 0 {
			restocked, err = tx.RestockItem(ctx, item.ID, initialQuantity)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.itemCache.Remove(item.ID)
	span.SetAttributes(attribute.Int64("item.id", item.ID), attribute.Int64("item.restocked_rows", restocked))

	log := logger.FromContext(ctx)
	log.Info(LogMsgItemDefined, "item_id", item.ID, "name", item.Name, "effect", item.Effect, "value", item.EffectValue)
	if restocked > 0 {
		log.Info(LogMsgItemRestocked, "item_id", item.ID, "rows", restocked, "quantity", initialQuantity)
	}
	return item, nil
}

// GetItem looks up a catalog item by id
func (s *service) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	return s.getItemCached(ctx, itemID)
}

// GetItemByName looks up a catalog item by its unique name
func (s *service) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return s.repo.GetItemByName(ctx, name)
}

// ListItems returns the whole catalog
func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.ListItems(ctx)
}
