package mocks

import (
	"context"

	"github.com/sachinkumar2222/Productr/domain"
)

// MockProductService implements domain.ProductService for testing handlers.
type MockProductService struct {
	CreateFunc        func(ctx context.Context, callerID string, input domain.ProductInput) (*domain.Product, error)
	ListFunc          func(ctx context.Context, callerID string, published *bool) ([]domain.Product, error)
	GetFunc           func(ctx context.Context, callerID, id string) (*domain.Product, error)
	UpdateFunc        func(ctx context.Context, callerID, id string, upd domain.ProductUpdate) (*domain.Product, error)
	DeleteFunc        func(ctx context.Context, callerID, id string) error
	TogglePublishFunc func(ctx context.Context, callerID, id string) (bool, error)
}

// NewMockProductService creates a new MockProductService.
func NewMockProductService() *MockProductService {
	return &MockProductService{}
}

func (m *MockProductService) Create(ctx context.Context, callerID string, input domain.ProductInput) (*domain.Product, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, callerID, input)
	}
	return &domain.Product{OwnerID: callerID}, nil
}

func (m *MockProductService) List(ctx context.Context, callerID string, published *bool) ([]domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, callerID, published)
	}
	return nil, nil
}

func (m *MockProductService) Get(ctx context.Context, callerID, id string) (*domain.Product, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, callerID, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockProductService) Update(ctx context.Context, callerID, id string, upd domain.ProductUpdate) (*domain.Product, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, callerID, id, upd)
	}
	return nil, domain.ErrNotFound
}

func (m *MockProductService) Delete(ctx context.Context, callerID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, callerID, id)
	}
	return domain.ErrNotFound
}

func (m *MockProductService) TogglePublish(ctx context.Context, callerID, id string) (bool, error) {
	if m.TogglePublishFunc != nil {
		return m.TogglePublishFunc(ctx, callerID, id)
	}
	return false, domain.ErrNotFound
}

// Compile-time interface compliance verification
var _ domain.ProductService = (*MockProductService)(nil)
