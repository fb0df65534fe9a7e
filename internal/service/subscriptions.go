package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
)

// SubscriptionView is the read model returned to clients: the stored record
// plus the derived active flag. Active is never persisted.
type SubscriptionView struct {
	domain.Subscription
	IsActive bool `json:"is_active"`
}

type SubscriptionService struct {
	subscriptions SubscriptionRepository
	menu          MenuRepository
	now           func() time.Time
}

func NewSubscriptionService(subscriptions SubscriptionRepository, menu MenuRepository) *SubscriptionService {
	return &SubscriptionService{
		subscriptions: subscriptions,
		menu:          menu,
		now:           time.Now,
	}
}

// ComputeEndDate derives the subscription end from its start. Weekly adds
// seven days. Monthly uses Go's normalizing calendar addition, so a start
// day missing from the target month rolls forward (Jan 31 + 1 month lands
// in early March) — the same rule the ordering clients have always applied.
func ComputeEndDate(startDate time.Time, subscriptionType string) (time.Time, error) {
	switch subscriptionType {
	case domain.SubscriptionWeekly:
		return startDate.AddDate(0, 0, 7), nil
	case domain.SubscriptionMonthly:
		return startDate.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown subscription type %q", domain.ErrInvalidInput, subscriptionType)
	}
}

// IsActive reports whether the subscription is still running at the given
// instant. The end date itself counts as active.
func IsActive(sub domain.Subscription, now time.Time) bool {
	return !now.After(sub.EndDate)
}

// Subscribe validates the menu item against the live catalog, computes the
// end date server-side (any client-sent end date is ignored) and persists
// the record. Subscriptions are immutable once created.
func (s *SubscriptionService) Subscribe(ctx context.Context, customerID, menuItemID int, subscriptionType string, startDate time.Time) (*domain.Subscription, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if menuItemID <= 0 || startDate.IsZero() {
		return nil, fmt.Errorf("%w: menu item and start date are required", domain.ErrInvalidInput)
	}

	endDate, err := ComputeEndDate(startDate, subscriptionType)
	if err != nil {
		return nil, err
	}

	item, err := s.menu.GetMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, fmt.Errorf("fetch menu item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %d", domain.ErrNotFound, menuItemID)
	}

	sub := &domain.Subscription{
		CustomerID:       customerID,
		MenuItemID:       menuItemID,
		SubscriptionType: subscriptionType,
		StartDate:        startDate,
		EndDate:          endDate,
	}

	if err := s.subscriptions.InsertSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("insert subscription: %w", err)
	}

	return sub, nil
}

func (s *SubscriptionService) ListForCustomer(ctx context.Context, customerID int) ([]SubscriptionView, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	subs, err := s.subscriptions.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]SubscriptionView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, SubscriptionView{
			Subscription: sub,
			IsActive:     IsActive(sub, now),
		})
	}
	return views, nil
}

func (s *SubscriptionService) Delete(ctx context.Context, subscriptionID int) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.subscriptions.DeleteSubscription(ctx, subscriptionID)
}
