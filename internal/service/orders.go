package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
)

const storeTimeout = 5 * time.Second

type OrderService struct {
	orders    OrderRepository
	resolver  *SnapshotResolver
	qr        QRGenerator
	publisher OrderEventPublisher
}

func NewOrderService(orders OrderRepository, resolver *SnapshotResolver, qr QRGenerator, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		resolver:  resolver,
		qr:        qr,
		publisher: publisher,
	}
}

// Place resolves the requested lines into priced snapshots and persists the
// order in one transaction. Either a complete Pending order with every
// requested line exists afterwards, or nothing was written.
func (s *OrderService) Place(ctx context.Context, customerID, restaurantID int, lines []RequestedLine) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if restaurantID <= 0 || len(lines) == 0 {
		return nil, fmt.Errorf("%w: restaurant and items are required", domain.ErrInvalidInput)
	}

	items, err := s.resolver.Resolve(ctx, lines)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Status:       domain.StatusPending,
		Items:        items,
	}

	if err := s.orders.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	// The QR code is auxiliary: a failure here must not undo the order.
	if qrCode, err := s.qr.Generate(order.ID); err != nil {
		log.Printf("Warning: failed to generate QR code for order %d: %v", order.ID, err)
	} else if err := s.orders.SetQRCode(ctx, order.ID, qrCode); err != nil {
		log.Printf("Warning: failed to store QR code for order %d: %v", order.ID, err)
	}

	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventOrderPlaced,
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		Timestamp:    time.Now().UTC(),
	})

	return order, nil
}

// AdvanceStatus applies one edge of the status graph. Only restaurant-side
// actors may call it; the repository serializes concurrent transitions on
// the same order and revalidates against the committed status.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID int, next string, actor domain.Identity) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if actor.Role != domain.RoleRestaurantAdmin && actor.Role != domain.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: only restaurant admins may update order status", domain.ErrUnauthorized)
	}
	if !domain.ValidStatus(next) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, next)
	}

	order, err := s.orders.UpdateOrderStatus(ctx, orderID, next)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventStatusChanged,
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		Timestamp:    time.Now().UTC(),
	})

	return order, nil
}

func (s *OrderService) ListForCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.orders.ListByCustomer(ctx, customerID)
}

func (s *OrderService) ListForRestaurantAdmin(ctx context.Context, adminID int) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.orders.ListByRestaurantAdmin(ctx, adminID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.orders.ListAll(ctx)
}

func (s *OrderService) Delete(ctx context.Context, orderID int) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.orders.DeleteOrder(ctx, orderID)
}

func (s *OrderService) QRCode(ctx context.Context, orderID int) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.orders.GetQRCode(ctx, orderID)
}

// OrderTotal sums the frozen snapshot lines. A line with no snapshot data
// contributes zero; read paths never fail over a malformed line.
func OrderTotal(order *domain.Order) float64 {
	var total float64
	for _, item := range order.Items {
		if item.Quantity < 1 {
			continue
		}
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s event for order %d: %v", event.Type, event.OrderID, err)
	}
}
