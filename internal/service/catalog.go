package service

import (
	"context"
	"fmt"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
)

// CatalogService is the thin restaurant/menu glue around the repositories.
// The order path never goes through it; orders read the catalog only via
// the snapshot resolver.
type CatalogService struct {
	restaurants RestaurantRepository
	menu        MenuRepository
}

func NewCatalogService(restaurants RestaurantRepository, menu MenuRepository) *CatalogService {
	return &CatalogService{restaurants: restaurants, menu: menu}
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, adminID int, restaurant *domain.Restaurant) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if restaurant.Name == "" {
		return fmt.Errorf("%w: restaurant name is required", domain.ErrInvalidInput)
	}
	restaurant.AdminID = adminID
	return s.restaurants.InsertRestaurant(ctx, restaurant)
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.restaurants.ListRestaurants(ctx)
}

func (s *CatalogService) ListMyRestaurants(ctx context.Context, adminID int) ([]domain.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.restaurants.ListByAdmin(ctx, adminID)
}

// AddMenuItem only lets an admin extend the menu of a restaurant they own.
func (s *CatalogService) AddMenuItem(ctx context.Context, adminID int, item *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if item.Name == "" || item.Price <= 0 || item.RestaurantID <= 0 {
		return fmt.Errorf("%w: name, positive price and restaurant are required", domain.ErrInvalidInput)
	}

	owned, err := s.restaurants.AdministeredBy(ctx, item.RestaurantID, adminID)
	if err != nil {
		return fmt.Errorf("check restaurant admin: %w", err)
	}
	if !owned {
		return fmt.Errorf("%w: restaurant %d is not administered by user %d", domain.ErrUnauthorized, item.RestaurantID, adminID)
	}

	return s.menu.InsertMenuItem(ctx, item)
}

func (s *CatalogService) RestaurantMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	exists, err := s.restaurants.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: restaurant %d", domain.ErrNotFound, restaurantID)
	}
	return s.menu.ListByRestaurant(ctx, restaurantID)
}
