package mocks

import (
	"context"
	"time"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
	"github.com/Deshmaneparas/food-delivery-sys/internal/service"

	"github.com/stretchr/testify/mock"
)

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t constructorTestingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *OrderServiceInterface) Place(ctx context.Context, customerID, restaurantID int, lines []service.RequestedLine) (*domain.Order, error) {
	args := m.Called(ctx, customerID, restaurantID, lines)
	var order *domain.Order
	if v := args.Get(0); v != nil {
		order = v.(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderServiceInterface) AdvanceStatus(ctx context.Context, orderID int, next string, actor domain.Identity) (*domain.Order, error) {
	args := m.Called(ctx, orderID, next, actor)
	var order *domain.Order
	if v := args.Get(0); v != nil {
		order = v.(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderServiceInterface) ListForCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	var orders []domain.Order
	if v := args.Get(0); v != nil {
		orders = v.([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) ListForRestaurantAdmin(ctx context.Context, adminID int) ([]domain.Order, error) {
	args := m.Called(ctx, adminID)
	var orders []domain.Order
	if v := args.Get(0); v != nil {
		orders = v.([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) ListAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	var orders []domain.Order
	if v := args.Get(0); v != nil {
		orders = v.([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) Delete(ctx context.Context, orderID int) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *OrderServiceInterface) QRCode(ctx context.Context, orderID int) ([]byte, error) {
	args := m.Called(ctx, orderID)
	var qrCode []byte
	if v := args.Get(0); v != nil {
		qrCode = v.([]byte)
	}
	return qrCode, args.Error(1)
}

type SubscriptionServiceInterface struct {
	mock.Mock
}

func NewSubscriptionServiceInterface(t constructorTestingT) *SubscriptionServiceInterface {
	m := &SubscriptionServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *SubscriptionServiceInterface) Subscribe(ctx context.Context, customerID, menuItemID int, subscriptionType string, startDate time.Time) (*domain.Subscription, error) {
	args := m.Called(ctx, customerID, menuItemID, subscriptionType, startDate)
	var sub *domain.Subscription
	if v := args.Get(0); v != nil {
		sub = v.(*domain.Subscription)
	}
	return sub, args.Error(1)
}

func (m *SubscriptionServiceInterface) ListForCustomer(ctx context.Context, customerID int) ([]service.SubscriptionView, error) {
	args := m.Called(ctx, customerID)
	var views []service.SubscriptionView
	if v := args.Get(0); v != nil {
		views = v.([]service.SubscriptionView)
	}
	return views, args.Error(1)
}

func (m *SubscriptionServiceInterface) Delete(ctx context.Context, subscriptionID int) error {
	return m.Called(ctx, subscriptionID).Error(0)
}

type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t constructorTestingT) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *CatalogServiceInterface) CreateRestaurant(ctx context.Context, adminID int, restaurant *domain.Restaurant) error {
	return m.Called(ctx, adminID, restaurant).Error(0)
}

func (m *CatalogServiceInterface) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	var restaurants []domain.Restaurant
	if v := args.Get(0); v != nil {
		restaurants = v.([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *CatalogServiceInterface) ListMyRestaurants(ctx context.Context, adminID int) ([]domain.Restaurant, error) {
	args := m.Called(ctx, adminID)
	var restaurants []domain.Restaurant
	if v := args.Get(0); v != nil {
		restaurants = v.([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *CatalogServiceInterface) AddMenuItem(ctx context.Context, adminID int, item *domain.MenuItem) error {
	return m.Called(ctx, adminID, item).Error(0)
}

func (m *CatalogServiceInterface) RestaurantMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	var items []domain.MenuItem
	if v := args.Get(0); v != nil {
		items = v.([]domain.MenuItem)
	}
	return items, args.Error(1)
}
