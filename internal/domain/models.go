package domain

import "time"

const (
	RoleCustomer        = "Customer"
	RoleRestaurantAdmin = "Restaurant Admin"
	RoleSuperAdmin      = "Super Admin"
)

// Identity is what the auth boundary hands to every request.
type Identity struct {
	ID   int    `json:"id"`
	Role string `json:"role"`
}

type Restaurant struct {
	ID          int       `json:"id"`
	AdminID     int       `json:"admin_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuItem is the live catalog entry. The order path only ever reads it;
// order history keeps its own frozen copy in OrderItem.
type MenuItem struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderItem is the snapshot of a menu item captured at placement time.
// Name, description and price are stored with the order and must never be
// re-joined against the live catalog.
type OrderItem struct {
	MenuItemID  int     `json:"menu_item_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type Order struct {
	ID           int         `json:"id"`
	CustomerID   int         `json:"customer_id"`
	RestaurantID int         `json:"restaurant_id"`
	Status       string      `json:"status"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
}

const (
	SubscriptionWeekly  = "Weekly"
	SubscriptionMonthly = "Monthly"
)

type Subscription struct {
	ID               int       `json:"id"`
	CustomerID       int       `json:"customer_id"`
	MenuItemID       int       `json:"menu_item_id"`
	SubscriptionType string    `json:"subscription_type"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	CreatedAt        time.Time `json:"created_at"`
}

const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "status_changed"
)

// OrderEvent is published to the order-events topic so downstream
// consumers (notifications, dashboards) can react without polling.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	CustomerID   int       `json:"customer_id"`
	RestaurantID int       `json:"restaurant_id"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}
