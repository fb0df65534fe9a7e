package service

import (
	"context"
	"time"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
)

type OrderServiceInterface interface {
	Place(ctx context.Context, customerID, restaurantID int, lines []RequestedLine) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, orderID int, next string, actor domain.Identity) (*domain.Order, error)
	ListForCustomer(ctx context.Context, customerID int) ([]domain.Order, error)
	ListForRestaurantAdmin(ctx context.Context, adminID int) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	Delete(ctx context.Context, orderID int) error
	QRCode(ctx context.Context, orderID int) ([]byte, error)
}

type SubscriptionServiceInterface interface {
	Subscribe(ctx context.Context, customerID, menuItemID int, subscriptionType string, startDate time.Time) (*domain.Subscription, error)
	ListForCustomer(ctx context.Context, customerID int) ([]SubscriptionView, error)
	Delete(ctx context.Context, subscriptionID int) error
}

type CatalogServiceInterface interface {
	CreateRestaurant(ctx context.Context, adminID int, restaurant *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListMyRestaurants(ctx context.Context, adminID int) ([]domain.Restaurant, error)
	AddMenuItem(ctx context.Context, adminID int, item *domain.MenuItem) error
	RestaurantMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
}

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
	SetQRCode(ctx context.Context, orderID int, qrCode []byte) error
	UpdateOrderStatus(ctx context.Context, orderID int, next string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int) ([]domain.Order, error)
	ListByRestaurantAdmin(ctx context.Context, adminID int) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	DeleteOrder(ctx context.Context, orderID int) error
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type SubscriptionRepository interface {
	InsertSubscription(ctx context.Context, sub *domain.Subscription) error
	ListByCustomer(ctx context.Context, customerID int) ([]domain.Subscription, error)
	DeleteSubscription(ctx context.Context, subscriptionID int) error
}

type MenuRepository interface {
	GetMenuItemsByIDs(ctx context.Context, ids []int) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	InsertMenuItem(ctx context.Context, item *domain.MenuItem) error
}

type RestaurantRepository interface {
	InsertRestaurant(ctx context.Context, restaurant *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListByAdmin(ctx context.Context, adminID int) ([]domain.Restaurant, error)
	RestaurantExists(ctx context.Context, restaurantID int) (bool, error)
	AdministeredBy(ctx context.Context, restaurantID, adminID int) (bool, error)
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

var _ OrderServiceInterface = (*OrderService)(nil)
var _ SubscriptionServiceInterface = (*SubscriptionService)(nil)
var _ CatalogServiceInterface = (*CatalogService)(nil)
