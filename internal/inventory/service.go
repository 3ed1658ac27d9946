// Package inventory orchestrates the item catalog, the inventory ledger and
// the stat ledger behind an explicit caller capability.
package inventory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/concurrency"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/effect"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/event"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/repository"
)

var tracer = otel.Tracer("github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/inventory")

// Service defines the inventory operations
type Service interface {
	// Catalog
	CreateItem(ctx context.Context, caller domain.Caller, def domain.ItemDefinition, initialQuantity int) (*domain.Item, error)
	GetItem(ctx context.Context, itemID int64) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)

	// Ledger
	AssignItem(ctx context.Context, caller domain.Caller, userID, itemID int64, quantity int) (int, error)
	ActOnItem(ctx context.Context, caller domain.Caller, userID, itemID int64, quantity int, action domain.Action) (*domain.ActionResult, error)
	GetUserInventory(ctx context.Context, caller domain.Caller, userID int64) ([]domain.InventorySlot, error)

	// Stats and users
	GetUserStats(ctx context.Context, caller domain.Caller, userID int64) (*domain.UserStats, error)
	ProvisionUser(ctx context.Context, caller domain.Caller, username string, role domain.Role) (*domain.User, error)
	EnsureInitialized(ctx context.Context, userID int64) error
	InitializeAllStats(ctx context.Context) (int64, error)
}

// Options tunes a service
type Options struct {
	// ForceUnequipOnDelete reverses the item bonus on every delete, whether or
	// not the entry was equipped.
	ForceUnequipOnDelete bool
	// MaxRetries bounds how often a conflicting transaction is retried.
	MaxRetries   int
	ItemCacheTTL time.Duration
	ItemCacheMax int
}

// DefaultOptions returns the production defaults
func DefaultOptions() Options {
	return Options{
		MaxRetries:   DefaultMaxRetries,
		ItemCacheTTL: DefaultItemCacheTTL,
		ItemCacheMax: DefaultItemCacheSize,
	}
}

// service implements the Service interface
type service struct {
	repo   repository.Inventory
	bus    event.Bus
	engine *effect.Engine
	locks  *concurrency.LockManager[int64]
	opts   Options

	// Items by id; invalidated whenever CreateItem rewrites a definition.
	itemCache *expirable.LRU[int64, domain.Item]
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory, bus event.Bus, opts Options) Service {
	if opts.ItemCacheMax <= 0 {
		opts.ItemCacheMax = DefaultItemCacheSize
	}
	if opts.ItemCacheTTL <= 0 {
		opts.ItemCacheTTL = DefaultItemCacheTTL
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &service{
		repo:      repo,
		bus:       bus,
		engine:    effect.NewEngine(),
		locks:     concurrency.NewLockManager[int64](),
		opts:      opts,
		itemCache: expirable.NewLRU[int64, domain.Item](opts.ItemCacheMax, nil, opts.ItemCacheTTL),
	}
}
