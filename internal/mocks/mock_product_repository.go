package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/sachinkumar2222/Productr/domain"
)

// MockProductRepository implements domain.ProductRepository for testing
// with an in-memory map as the default behavior.
type MockProductRepository struct {
	CreateFunc       func(ctx context.Context, product *domain.Product) error
	FindByIDFunc     func(ctx context.Context, id string) (*domain.Product, error)
	ListByOwnerFunc  func(ctx context.Context, ownerID string, published *bool) ([]domain.Product, error)
	UpdateFunc       func(ctx context.Context, product *domain.Product) error
	DeleteFunc       func(ctx context.Context, id string) error
	SetPublishedFunc func(ctx context.Context, id string, published bool) error

	mu       sync.Mutex
	products map[string]*domain.Product
}

// NewMockProductRepository creates a new MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{products: make(map[string]*domain.Product)}
}

func copyProduct(p *domain.Product) *domain.Product {
	cp := *p
	if p.Images != nil {
		cp.Images = append(make([]string, 0, len(p.Images)), p.Images...)
	}
	return &cp
}

// Create stores a copy of the product.
func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = copyProduct(product)
	return nil
}

// FindByID returns a copy or domain.ErrNotFound.
func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyProduct(p), nil
}

// ListByOwner filters by owner and optional publish flag, newest first.
func (m *MockProductRepository) ListByOwner(ctx context.Context, ownerID string, published *bool) ([]domain.Product, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID, published)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Product
	for _, p := range m.products {
		if p.OwnerID != ownerID {
			continue
		}
		if published != nil && p.IsPublished != *published {
			continue
		}
		out = append(out, *copyProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update overwrites the stored product.
func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	m.products[product.ID] = copyProduct(product)
	return nil
}

// Delete removes the stored product.
func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

// SetPublished updates only the publish flag.
func (m *MockProductRepository) SetPublished(ctx context.Context, id string, published bool) error {
	if m.SetPublishedFunc != nil {
		return m.SetPublishedFunc(ctx, id, published)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsPublished = published
	return nil
}

// Stored returns a copy of the product for assertions.
func (m *MockProductRepository) Stored(id string) *domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil
	}
	return copyProduct(p)
}

// Compile-time interface compliance verification
var _ domain.ProductRepository = (*MockProductRepository)(nil)
