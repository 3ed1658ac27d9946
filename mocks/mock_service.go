// Package mocks holds testify mocks of the service interfaces for
// cross-package tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/inventory"
)

var _ inventory.Service = (*MockService)(nil)

// MockService is a mock of inventory.Service
type MockService struct {
	mock.Mock
}

// NewMockService creates a MockService whose expectations are asserted when
// the test ends
func NewMockService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockService {
	m := &MockService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockService) CreateItem(ctx context.Context, caller domain.Caller, def domain.ItemDefinition, initialQuantity int) (*domain.Item, error) {
	args := m.Called(ctx, caller, def, initialQuantity)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *MockService) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *MockService) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	args := m.Called(ctx, name)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *MockService) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *MockService) AssignItem(ctx context.Context, caller domain.Caller, userID, itemID int64, quantity int) (int, error) {
	args := m.Called(ctx, caller, userID, itemID, quantity)
	return args.Int(0), args.Error(1)
}

func (m *MockService) ActOnItem(ctx context.Context, caller domain.Caller, userID, itemID int64, quantity int, action domain.Action) (*domain.ActionResult, error) {
	args := m.Called(ctx, caller, userID, itemID, quantity, action)
	result, _ := args.Get(0).(*domain.ActionResult)
	return result, args.Error(1)
}

func (m *MockService) GetUserInventory(ctx context.Context, caller domain.Caller, userID int64) ([]domain.InventorySlot, error) {
	args := m.Called(ctx, caller, userID)
	slots, _ := args.Get(0).([]domain.InventorySlot)
	return slots, args.Error(1)
}

func (m *MockService) GetUserStats(ctx context.Context, caller domain.Caller, userID int64) (*domain.UserStats, error) {
	args := m.Called(ctx, caller, userID)
	stats, _ := args.Get(0).(*domain.UserStats)
	return stats, args.Error(1)
}

func (m *MockService) ProvisionUser(ctx context.Context, caller domain.Caller, username string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, caller, username, role)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockService) EnsureInitialized(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockService) InitializeAllStats(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}
