package tests

import (
	"context"
	"testing"
	"time"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
	"github.com/Deshmaneparas/food-delivery-sys/internal/mocks"
	"github.com/Deshmaneparas/food-delivery-sys/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestComputeEndDate(t *testing.T) {
	tests := []struct {
		name             string
		start            time.Time
		subscriptionType string
		expected         time.Time
	}{
		{"weekly_adds_seven_days", date(2024, time.January, 1), domain.SubscriptionWeekly, date(2024, time.January, 8)},
		{"monthly_adds_one_month", date(2024, time.January, 1), domain.SubscriptionMonthly, date(2024, time.February, 1)},
		{"weekly_crosses_month_boundary", date(2024, time.January, 28), domain.SubscriptionWeekly, date(2024, time.February, 4)},
		// Jan 31 + 1 month normalizes forward: Feb 31 does not exist, so a
		// leap-year February rolls to Mar 2.
		{"monthly_rollover_leap_year", date(2024, time.January, 31), domain.SubscriptionMonthly, date(2024, time.March, 2)},
		{"monthly_rollover_common_year", date(2023, time.January, 31), domain.SubscriptionMonthly, date(2023, time.March, 3)},
		{"monthly_december_wraps_year", date(2024, time.December, 15), domain.SubscriptionMonthly, date(2025, time.January, 15)},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			endDate, err := service.ComputeEndDate(testCase.start, testCase.subscriptionType)
			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, endDate)
		})
	}

	t.Run("unknown_type_rejected", func(t *testing.T) {
		_, err := service.ComputeEndDate(date(2024, time.January, 1), "Fortnightly")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestIsActive(t *testing.T) {
	sub := domain.Subscription{EndDate: date(2024, time.June, 10)}

	assert.True(t, service.IsActive(sub, date(2024, time.June, 9)))
	assert.True(t, service.IsActive(sub, date(2024, time.June, 10)))
	assert.False(t, service.IsActive(sub, date(2024, time.June, 11)))
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	ctx := context.Background()
	menuItem := &domain.MenuItem{ID: 5, RestaurantID: 10, Name: "Thali", Price: 8.00}

	t.Run("computes_end_date_server_side", func(t *testing.T) {
		subscriptions := mocks.NewSubscriptionRepository(t)
		menu := mocks.NewMenuRepository(t)
		svc := service.NewSubscriptionService(subscriptions, menu)

		menu.On("GetMenuItem", mock.Anything, 5).Return(menuItem, nil).Once()
		subscriptions.On("InsertSubscription", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { args.Get(1).(*domain.Subscription).ID = 42 }).
			Return(nil).Once()

		sub, err := svc.Subscribe(ctx, 100, 5, domain.SubscriptionWeekly, date(2024, time.January, 1))

		assert.NoError(t, err)
		assert.Equal(t, 42, sub.ID)
		assert.Equal(t, date(2024, time.January, 8), sub.EndDate)
		assert.Equal(t, 100, sub.CustomerID)
	})

	t.Run("unknown_menu_item_is_not_found", func(t *testing.T) {
		subscriptions := mocks.NewSubscriptionRepository(t)
		menu := mocks.NewMenuRepository(t)
		svc := service.NewSubscriptionService(subscriptions, menu)

		menu.On("GetMenuItem", mock.Anything, 5).Return(nil, nil).Once()

		_, err := svc.Subscribe(ctx, 100, 5, domain.SubscriptionMonthly, date(2024, time.January, 1))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid_type_rejected_before_any_lookup", func(t *testing.T) {
		subscriptions := mocks.NewSubscriptionRepository(t)
		menu := mocks.NewMenuRepository(t)
		svc := service.NewSubscriptionService(subscriptions, menu)

		_, err := svc.Subscribe(ctx, 100, 5, "Daily", date(2024, time.January, 1))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("zero_start_date_rejected", func(t *testing.T) {
		subscriptions := mocks.NewSubscriptionRepository(t)
		menu := mocks.NewMenuRepository(t)
		svc := service.NewSubscriptionService(subscriptions, menu)

		_, err := svc.Subscribe(ctx, 100, 5, domain.SubscriptionWeekly, time.Time{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSubscriptionService_ListForCustomer(t *testing.T) {
	subscriptions := mocks.NewSubscriptionRepository(t)
	menu := mocks.NewMenuRepository(t)
	svc := service.NewSubscriptionService(subscriptions, menu)

	now := time.Now()
	stored := []domain.Subscription{
		{ID: 2, CustomerID: 100, EndDate: now.AddDate(0, 0, 5)},
		{ID: 1, CustomerID: 100, EndDate: now.AddDate(0, 0, -5)},
	}
	subscriptions.On("ListByCustomer", mock.Anything, 100).Return(stored, nil).Once()

	views, err := svc.ListForCustomer(context.Background(), 100)

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.True(t, views[0].IsActive)
	assert.False(t, views[1].IsActive)
}
