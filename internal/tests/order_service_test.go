package tests

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
	"github.com/Deshmaneparas/food-delivery-sys/internal/mocks"
	"github.com/Deshmaneparas/food-delivery-sys/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderService(t *testing.T) (*service.OrderService, *mocks.OrderRepository, *mocks.MenuRepository, *mocks.QRGenerator, *mocks.OrderEventPublisher) {
	orders := mocks.NewOrderRepository(t)
	menu := mocks.NewMenuRepository(t)
	qr := mocks.NewQRGenerator(t)
	publisher := mocks.NewOrderEventPublisher(t)

	svc := service.NewOrderService(orders, service.NewSnapshotResolver(menu), qr, publisher)
	return svc, orders, menu, qr, publisher
}

func TestOrderService_Place(t *testing.T) {
	ctx := context.Background()

	catalog := []domain.MenuItem{
		{ID: 1, RestaurantID: 10, Name: "Biryani", Price: 12.00},
		{ID: 2, RestaurantID: 10, Name: "Naan", Price: 2.50},
	}

	t.Run("success_creates_pending_order_with_snapshots", func(t *testing.T) {
		svc, orders, menu, qr, publisher := newOrderService(t)

		menu.On("GetMenuItemsByIDs", mock.Anything, []int{1, 2}).Return(catalog, nil).Once()
		orders.On("InsertOrder", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				order := args.Get(1).(*domain.Order)
				order.ID = 7
			}).Return(nil).Once()
		qr.On("Generate", 7).Return([]byte("png"), nil).Once()
		orders.On("SetQRCode", mock.Anything, 7, []byte("png")).Return(nil).Once()
		publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(event domain.OrderEvent) bool {
			return event.Type == domain.EventOrderPlaced && event.OrderID == 7
		})).Return(nil).Once()

		order, err := svc.Place(ctx, 100, 10, []service.RequestedLine{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 3},
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, order.Status)
		assert.Equal(t, 100, order.CustomerID)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, 12.00, order.Items[0].Price)
		assert.Equal(t, 2*12.00+3*2.50, service.OrderTotal(order))
	})

	t.Run("missing_restaurant_is_invalid_input", func(t *testing.T) {
		svc, _, _, _, _ := newOrderService(t)

		_, err := svc.Place(ctx, 100, 0, []service.RequestedLine{{MenuItemID: 1, Quantity: 1}})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("empty_items_is_invalid_input", func(t *testing.T) {
		svc, _, _, _, _ := newOrderService(t)

		_, err := svc.Place(ctx, 100, 10, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unresolvable_item_creates_nothing", func(t *testing.T) {
		svc, _, menu, _, _ := newOrderService(t)

		menu.On("GetMenuItemsByIDs", mock.Anything, []int{1, 404}).Return(catalog[:1], nil).Once()

		_, err := svc.Place(ctx, 100, 10, []service.RequestedLine{
			{MenuItemID: 1, Quantity: 1},
			{MenuItemID: 404, Quantity: 1},
		})
		// InsertOrder is never expected on the mock, so AssertExpectations
		// also proves nothing was written.
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("insert_failure_propagates", func(t *testing.T) {
		svc, orders, menu, _, _ := newOrderService(t)

		menu.On("GetMenuItemsByIDs", mock.Anything, []int{1}).Return(catalog[:1], nil).Once()
		orders.On("InsertOrder", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		_, err := svc.Place(ctx, 100, 10, []service.RequestedLine{{MenuItemID: 1, Quantity: 1}})
		assert.Error(t, err)
	})
}

func TestOrderService_PlacedTotalSurvivesPriceChange(t *testing.T) {
	ctx := context.Background()
	svc, orders, menu, qr, publisher := newOrderService(t)

	liveItem := domain.MenuItem{ID: 1, RestaurantID: 10, Name: "Dosa", Price: 5.00}
	menu.On("GetMenuItemsByIDs", mock.Anything, []int{1}).Return([]domain.MenuItem{liveItem}, nil).Once()
	orders.On("InsertOrder", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Order).ID = 3 }).Return(nil).Once()
	qr.On("Generate", 3).Return([]byte("png"), nil).Once()
	orders.On("SetQRCode", mock.Anything, 3, mock.Anything).Return(nil).Once()
	publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()

	order, err := svc.Place(ctx, 100, 10, []service.RequestedLine{{MenuItemID: 1, Quantity: 4}})
	assert.NoError(t, err)
	assert.Equal(t, 20.00, service.OrderTotal(order))

	// The live catalog price changes afterwards; the frozen line must not.
	liveItem.Price = 50.00
	assert.Equal(t, 20.00, service.OrderTotal(order))
	assert.Equal(t, 5.00, order.Items[0].Price)
}

func TestOrderService_AdvanceStatus(t *testing.T) {
	ctx := context.Background()
	restaurantAdmin := domain.Identity{ID: 55, Role: domain.RoleRestaurantAdmin}

	t.Run("customer_actors_are_rejected", func(t *testing.T) {
		svc, _, _, _, _ := newOrderService(t)

		_, err := svc.AdvanceStatus(ctx, 7, domain.StatusAccepted, domain.Identity{ID: 1, Role: domain.RoleCustomer})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown_status_is_invalid_input", func(t *testing.T) {
		svc, _, _, _, _ := newOrderService(t)

		_, err := svc.AdvanceStatus(ctx, 7, "Teleported", restaurantAdmin)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("success_publishes_status_change", func(t *testing.T) {
		svc, orders, _, _, publisher := newOrderService(t)

		updated := &domain.Order{ID: 7, CustomerID: 100, RestaurantID: 10, Status: domain.StatusAccepted}
		orders.On("UpdateOrderStatus", mock.Anything, 7, domain.StatusAccepted).Return(updated, nil).Once()
		publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(event domain.OrderEvent) bool {
			return event.Type == domain.EventStatusChanged && event.Status == domain.StatusAccepted
		})).Return(nil).Once()

		order, err := svc.AdvanceStatus(ctx, 7, domain.StatusAccepted, restaurantAdmin)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, order.Status)
	})

	t.Run("repository_conflict_propagates_without_event", func(t *testing.T) {
		svc, orders, _, _, _ := newOrderService(t)

		orders.On("UpdateOrderStatus", mock.Anything, 7, domain.StatusAccepted).
			Return(nil, fmt.Errorf("%w: order 7 is already Accepted", domain.ErrConflict)).Once()

		_, err := svc.AdvanceStatus(ctx, 7, domain.StatusAccepted, restaurantAdmin)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("publish_failure_does_not_fail_the_transition", func(t *testing.T) {
		svc, orders, _, _, publisher := newOrderService(t)

		updated := &domain.Order{ID: 7, Status: domain.StatusCancelled}
		orders.On("UpdateOrderStatus", mock.Anything, 7, domain.StatusCancelled).Return(updated, nil).Once()
		publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).
			Return(errors.New("broker unreachable")).Once()

		order, err := svc.AdvanceStatus(ctx, 7, domain.StatusCancelled, restaurantAdmin)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, order.Status)
	})
}

func TestStatusGraph(t *testing.T) {
	tests := []struct {
		from, to string
		legal    bool
	}{
		{domain.StatusPending, domain.StatusAccepted, true},
		{domain.StatusPending, domain.StatusCancelled, true},
		{domain.StatusPending, domain.StatusOutForDelivery, false},
		{domain.StatusPending, domain.StatusDelivered, false},
		{domain.StatusAccepted, domain.StatusOutForDelivery, true},
		{domain.StatusAccepted, domain.StatusCancelled, true},
		{domain.StatusOutForDelivery, domain.StatusDelivered, true},
		{domain.StatusOutForDelivery, domain.StatusCancelled, false},
		{domain.StatusDelivered, domain.StatusCancelled, false},
		{domain.StatusDelivered, domain.StatusPending, false},
		{domain.StatusCancelled, domain.StatusAccepted, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.from+"_to_"+testCase.to, func(t *testing.T) {
			assert.Equal(t, testCase.legal, domain.CanTransition(testCase.from, testCase.to))
		})
	}

	assert.True(t, domain.TerminalStatus(domain.StatusDelivered))
	assert.True(t, domain.TerminalStatus(domain.StatusCancelled))
	assert.False(t, domain.TerminalStatus(domain.StatusPending))
}

func TestOrderTotal_SkipsMalformedLines(t *testing.T) {
	order := &domain.Order{Items: []domain.OrderItem{
		{MenuItemID: 1, Price: 10.00, Quantity: 2},
		{MenuItemID: 2, Price: 4.00, Quantity: 0}, // absent snapshot contributes zero
	}}
	assert.Equal(t, 20.00, service.OrderTotal(order))
}
