package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
)

type OrderEventPublisher struct {
	mock.Mock
}

func NewOrderEventPublisher(t constructorTestingT) *OrderEventPublisher {
	m := &OrderEventPublisher{}
	register(t, &m.Mock, m)
	return m
}

func (m *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t constructorTestingT) *QRGenerator {
	m := &QRGenerator{}
	register(t, &m.Mock, m)
	return m
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var qrCode []byte
	if v := args.Get(0); v != nil {
		qrCode = v.([]byte)
	}
	return qrCode, args.Error(1)
}

type SessionVerifier struct {
	mock.Mock
}

func NewSessionVerifier(t constructorTestingT) *SessionVerifier {
	m := &SessionVerifier{}
	register(t, &m.Mock, m)
	return m
}

func (m *SessionVerifier) Verify(ctx context.Context, token string) (domain.Identity, error) {
	args := m.Called(ctx, token)
	identity, _ := args.Get(0).(domain.Identity)
	return identity, args.Error(1)
}
