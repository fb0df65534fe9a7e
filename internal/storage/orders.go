package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
)

type OrderRepo struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{DB: db}
}

// InsertOrder writes the order and all of its snapshot lines in one
// transaction. Any failure rolls the whole order back; no partial record
// survives.
func (r *OrderRepo) InsertOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, restaurant_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, order.CustomerID, order.RestaurantID, order.Status).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, name, description, price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, item.MenuItemID, item.Name, item.Description, item.Price, item.Quantity)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// UpdateOrderStatus locks the row, revalidates the transition against the
// committed status and applies it. Two racing transitions on the same order
// serialize on the row lock; the loser sees the winner's status.
func (r *OrderRepo) UpdateOrderStatus(ctx context.Context, orderID int, next string) (*domain.Order, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var order domain.Order
	err = tx.QueryRowContext(ctx, `
		SELECT id, customer_id, restaurant_id, status, created_at
		FROM orders
		WHERE id = $1
		FOR UPDATE
	`, orderID).Scan(&order.ID, &order.CustomerID, &order.RestaurantID, &order.Status, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("lock order: %w", err)
	}

	if order.Status == next {
		return nil, fmt.Errorf("%w: order %d is already %s", domain.ErrConflict, orderID, next)
	}
	if !domain.CanTransition(order.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, next)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, next, orderID); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	committed = true

	order.Status = next
	items, err := r.loadItems(ctx, []int{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	return &order, nil
}

func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	return r.list(ctx, `
		SELECT id, customer_id, restaurant_id, status, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
}

// ListByRestaurantAdmin scopes the listing to restaurants administered by
// the caller; orders of other restaurants are never exposed.
func (r *OrderRepo) ListByRestaurantAdmin(ctx context.Context, adminID int) ([]domain.Order, error) {
	return r.list(ctx, `
		SELECT o.id, o.customer_id, o.restaurant_id, o.status, o.created_at
		FROM orders o
		JOIN restaurants r ON o.restaurant_id = r.id
		WHERE r.admin_id = $1
		ORDER BY o.created_at DESC
	`, adminID)
}

func (r *OrderRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	return r.list(ctx, `
		SELECT id, customer_id, restaurant_id, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
}

func (r *OrderRepo) DeleteOrder(ctx context.Context, orderID int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	return nil
}

func (r *OrderRepo) SetQRCode(ctx context.Context, orderID int, qrCode []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qrCode, orderID)
	return err
}

func (r *OrderRepo) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	var qrCode []byte
	err := r.DB.QueryRowContext(ctx, `SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qrCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	ids := []int{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.RestaurantID, &order.Status, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

// loadItems reads the frozen snapshot rows for a batch of orders. The live
// menu_items table is deliberately not joined here.
func (r *OrderRepo) loadItems(ctx context.Context, orderIDs []int) (map[int][]domain.OrderItem, error) {
	byOrder := make(map[int][]domain.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return byOrder, nil
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT order_id, menu_item_id, name, COALESCE(description, ''), price, quantity
		FROM order_items
		WHERE order_id = ANY($1)
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int
		var item domain.OrderItem
		if err := rows.Scan(&orderID, &item.MenuItemID, &item.Name, &item.Description, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		byOrder[orderID] = append(byOrder[orderID], item)
	}
	return byOrder, rows.Err()
}
