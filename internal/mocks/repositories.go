package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
)

type constructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t constructorTestingT, m *mock.Mock, target interface{ AssertExpectations(mock.TestingT) bool }) {
	m.Test(t)
	t.Cleanup(func() { target.AssertExpectations(t) })
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t constructorTestingT) *OrderRepository {
	m := &OrderRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *OrderRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepository) SetQRCode(ctx context.Context, orderID int, qrCode []byte) error {
	return m.Called(ctx, orderID, qrCode).Error(0)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID int, next string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, next)
	var order *domain.Order
	if v := args.Get(0); v != nil {
		order = v.(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderRepository) ListByCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	var orders []domain.Order
	if v := args.Get(0); v != nil {
		orders = v.([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) ListByRestaurantAdmin(ctx context.Context, adminID int) ([]domain.Order, error) {
	args := m.Called(ctx, adminID)
	var orders []domain.Order
	if v := args.Get(0); v != nil {
		orders = v.([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	var orders []domain.Order
	if v := args.Get(0); v != nil {
		orders = v.([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) DeleteOrder(ctx context.Context, orderID int) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *OrderRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	args := m.Called(ctx, orderID)
	var qrCode []byte
	if v := args.Get(0); v != nil {
		qrCode = v.([]byte)
	}
	return qrCode, args.Error(1)
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t constructorTestingT) *MenuRepository {
	m := &MenuRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *MenuRepository) GetMenuItemsByIDs(ctx context.Context, ids []int) ([]domain.MenuItem, error) {
	args := m.Called(ctx, ids)
	var items []domain.MenuItem
	if v := args.Get(0); v != nil {
		items = v.([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *MenuRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	var item *domain.MenuItem
	if v := args.Get(0); v != nil {
		item = v.(*domain.MenuItem)
	}
	return item, args.Error(1)
}

func (m *MenuRepository) ListByRestaurant(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	var items []domain.MenuItem
	if v := args.Get(0); v != nil {
		items = v.([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *MenuRepository) InsertMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

type SubscriptionRepository struct {
	mock.Mock
}

func NewSubscriptionRepository(t constructorTestingT) *SubscriptionRepository {
	m := &SubscriptionRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *SubscriptionRepository) InsertSubscription(ctx context.Context, sub *domain.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *SubscriptionRepository) ListByCustomer(ctx context.Context, customerID int) ([]domain.Subscription, error) {
	args := m.Called(ctx, customerID)
	var subs []domain.Subscription
	if v := args.Get(0); v != nil {
		subs = v.([]domain.Subscription)
	}
	return subs, args.Error(1)
}

func (m *SubscriptionRepository) DeleteSubscription(ctx context.Context, subscriptionID int) error {
	return m.Called(ctx, subscriptionID).Error(0)
}

type RestaurantRepository struct {
	mock.Mock
}

func NewRestaurantRepository(t constructorTestingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *RestaurantRepository) InsertRestaurant(ctx context.Context, restaurant *domain.Restaurant) error {
	return m.Called(ctx, restaurant).Error(0)
}

func (m *RestaurantRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	var restaurants []domain.Restaurant
	if v := args.Get(0); v != nil {
		restaurants = v.([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *RestaurantRepository) ListByAdmin(ctx context.Context, adminID int) ([]domain.Restaurant, error) {
	args := m.Called(ctx, adminID)
	var restaurants []domain.Restaurant
	if v := args.Get(0); v != nil {
		restaurants = v.([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *RestaurantRepository) RestaurantExists(ctx context.Context, restaurantID int) (bool, error) {
	args := m.Called(ctx, restaurantID)
	return args.Bool(0), args.Error(1)
}

func (m *RestaurantRepository) AdministeredBy(ctx context.Context, restaurantID, adminID int) (bool, error) {
	args := m.Called(ctx, restaurantID, adminID)
	return args.Bool(0), args.Error(1)
}
