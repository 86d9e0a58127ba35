package mocks

import (
	"context"
	"sync"

	"github.com/sachinkumar2222/Productr/domain"
)

// Delivery records one code delivery attempt.
type Delivery struct {
	Key  domain.RecipientKey
	Code string
}

// MockNotificationSender implements domain.NotificationSender for testing.
type MockNotificationSender struct {
	DeliverFunc func(ctx context.Context, key domain.RecipientKey, code string) error

	mu         sync.Mutex
	Deliveries []Delivery
}

// NewMockNotificationSender creates a new MockNotificationSender.
func NewMockNotificationSender() *MockNotificationSender {
	return &MockNotificationSender{}
}

// Deliver records the attempt and defaults to success.
func (m *MockNotificationSender) Deliver(ctx context.Context, key domain.RecipientKey, code string) error {
	m.mu.Lock()
	m.Deliveries = append(m.Deliveries, Delivery{Key: key, Code: code})
	m.mu.Unlock()

	if m.DeliverFunc != nil {
		return m.DeliverFunc(ctx, key, code)
	}
	return nil
}

// LastDelivery returns the most recent delivery, or nil.
func (m *MockNotificationSender) LastDelivery() *Delivery {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Deliveries) == 0 {
		return nil
	}
	d := m.Deliveries[len(m.Deliveries)-1]
	return &d
}

// Compile-time interface compliance verification
var _ domain.NotificationSender = (*MockNotificationSender)(nil)
