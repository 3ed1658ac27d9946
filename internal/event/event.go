package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"`
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// Inventory event types
const (
	UserCreated    Type = "user.created"
	ItemAssigned   Type = "item.assigned"
	ItemConsumed   Type = "item.consumed"
	ItemEquipped   Type = "item.equipped"
	ItemUnequipped Type = "item.unequipped"
	ItemDeleted    Type = "item.deleted"
)

// UserCreatedPayloadV1 is published once when the user store creates a user
type UserCreatedPayloadV1 struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// ItemActionPayloadV1 describes a completed inventory mutation
type ItemActionPayloadV1 struct {
	UserID    int64            `json:"user_id"`
	ItemID    int64            `json:"item_id"`
	Quantity  int              `json:"quantity"`
	Remaining int              `json:"remaining"`
	Stats     domain.UserStats `json:"stats"`
}

// NewUserCreatedEvent creates a user.created event
func NewUserCreatedEvent(user domain.User) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      UserCreated,
		Payload:   UserCreatedPayloadV1{UserID: user.ID, Username: user.Username},
		Timestamp: time.Now().Unix(),
	}
}

// NewItemActionEvent creates the event matching a completed action
func NewItemActionEvent(action domain.Action, userID int64, quantity int, result domain.ActionResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeForAction(action),
		Payload: ItemActionPayloadV1{
			UserID:    userID,
			ItemID:    result.ItemID,
			Quantity:  quantity,
			Remaining: result.Remaining,
			Stats:     result.Stats,
		},
		Timestamp: time.Now().Unix(),
	}
}

// NewItemAssignedEvent creates an item.assigned event
func NewItemAssignedEvent(userID, itemID int64, quantity int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemAssigned,
		Payload: ItemActionPayloadV1{
			UserID:   userID,
			ItemID:   itemID,
			Quantity: quantity,
		},
		Timestamp: time.Now().Unix(),
	}
}

// TypeForAction maps an inventory action to its event type
func TypeForAction(action domain.Action) Type {
	switch action {
	case domain.ActionConsume:
		return ItemConsumed
	case domain.ActionEquip:
		return ItemEquipped
	case domain.ActionUnequip:
		return ItemUnequipped
	default:
		return ItemDeleted
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of event.Type synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
