package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
)

type MenuRepo struct {
	DB *sql.DB
}

func NewMenuRepo(db *sql.DB) *MenuRepo {
	return &MenuRepo{DB: db}
}

// GetMenuItemsByIDs fetches every referenced item in one round trip.
func (r *MenuRepo) GetMenuItemsByIDs(ctx context.Context, ids []int) ([]domain.MenuItem, error) {
	items := []domain.MenuItem{}
	if len(ids) == 0 {
		return items, nil
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), created_at
		FROM menu_items
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetMenuItem returns nil without error when the item does not exist.
func (r *MenuRepo) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), created_at
		FROM menu_items
		WHERE id = $1
	`, id).Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepo) ListByRestaurant(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MenuRepo) InsertMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (restaurant_id, name, description, price, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, item.RestaurantID, item.Name, item.Description, item.Price, item.ImageURL).
		Scan(&item.ID, &item.CreatedAt)
}

type RestaurantRepo struct {
	DB *sql.DB
}

func NewRestaurantRepo(db *sql.DB) *RestaurantRepo {
	return &RestaurantRepo{DB: db}
}

func (r *RestaurantRepo) InsertRestaurant(ctx context.Context, restaurant *domain.Restaurant) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (admin_id, name, address, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, restaurant.AdminID, restaurant.Name, restaurant.Address, restaurant.Description, restaurant.ImageURL).
		Scan(&restaurant.ID, &restaurant.CreatedAt)
}

func (r *RestaurantRepo) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return r.listWhere(ctx, ``)
}

func (r *RestaurantRepo) ListByAdmin(ctx context.Context, adminID int) ([]domain.Restaurant, error) {
	return r.listWhere(ctx, `WHERE admin_id = $1`, adminID)
}

func (r *RestaurantRepo) RestaurantExists(ctx context.Context, restaurantID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)`, restaurantID).Scan(&exists)
	return exists, err
}

func (r *RestaurantRepo) AdministeredBy(ctx context.Context, restaurantID, adminID int) (bool, error) {
	var owned bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1 AND admin_id = $2)`,
		restaurantID, adminID).Scan(&owned)
	return owned, err
}

func (r *RestaurantRepo) listWhere(ctx context.Context, where string, args ...interface{}) ([]domain.Restaurant, error) {
	query := `
		SELECT id, admin_id, name, COALESCE(address, ''), COALESCE(description, ''), COALESCE(image_url, ''), created_at
		FROM restaurants ` + where + `
		ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var restaurant domain.Restaurant
		if err := rows.Scan(&restaurant.ID, &restaurant.AdminID, &restaurant.Name, &restaurant.Address,
			&restaurant.Description, &restaurant.ImageURL, &restaurant.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, rows.Err()
}
