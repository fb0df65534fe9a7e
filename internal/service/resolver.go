package service

import (
	"context"
	"fmt"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
)

// RequestedLine is one cart line as sent by the client: a menu item
// reference plus a quantity.
type RequestedLine struct {
	MenuItemID int `json:"menuItem"`
	Quantity   int `json:"quantity"`
}

// SnapshotResolver turns requested cart lines into priced order items. All
// referenced menu items are fetched in one batched query; each line freezes
// the item's name, description and price as they are at this moment.
type SnapshotResolver struct {
	menu MenuRepository
}

func NewSnapshotResolver(menu MenuRepository) *SnapshotResolver {
	return &SnapshotResolver{menu: menu}
}

// Resolve is all-or-nothing: if any referenced id is unknown, no snapshots
// are returned. A missing or non-positive quantity counts as 1.
func (r *SnapshotResolver) Resolve(ctx context.Context, lines []RequestedLine) ([]domain.OrderItem, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no items requested", domain.ErrInvalidInput)
	}

	ids := make([]int, 0, len(lines))
	for _, line := range lines {
		if line.MenuItemID > 0 {
			ids = append(ids, line.MenuItemID)
		}
	}

	menuItems, err := r.menu.GetMenuItemsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch menu items: %w", err)
	}

	byID := make(map[int]domain.MenuItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.ID] = item
	}

	snapshots := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		item, ok := byID[line.MenuItemID]
		if !ok {
			return nil, fmt.Errorf("%w: menu item %d", domain.ErrNotFound, line.MenuItemID)
		}

		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}

		snapshots = append(snapshots, domain.OrderItem{
			MenuItemID:  item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Quantity:    quantity,
		})
	}

	return snapshots, nil
}
