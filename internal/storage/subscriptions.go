package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
)

type SubscriptionRepo struct {
	DB *sql.DB
}

func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepo {
	return &SubscriptionRepo{DB: db}
}

func (r *SubscriptionRepo) InsertSubscription(ctx context.Context, sub *domain.Subscription) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO subscriptions (customer_id, menu_item_id, subscription_type, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, sub.CustomerID, sub.MenuItemID, sub.SubscriptionType, sub.StartDate, sub.EndDate).
		Scan(&sub.ID, &sub.CreatedAt)
}

func (r *SubscriptionRepo) ListByCustomer(ctx context.Context, customerID int) ([]domain.Subscription, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, customer_id, menu_item_id, subscription_type, start_date, end_date, created_at
		FROM subscriptions
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []domain.Subscription{}
	for rows.Next() {
		var sub domain.Subscription
		if err := rows.Scan(&sub.ID, &sub.CustomerID, &sub.MenuItemID, &sub.SubscriptionType,
			&sub.StartDate, &sub.EndDate, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *SubscriptionRepo) DeleteSubscription(ctx context.Context, subscriptionID int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = $1`, subscriptionID)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("%w: subscription %d", domain.ErrNotFound, subscriptionID)
	}
	return nil
}
