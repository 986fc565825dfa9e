package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tastybites/internal/domain"
)

var (
	ErrEmptyOrder        = errors.New("order has no items")
	ErrMissingCustomer   = errors.New("customer name is required")
	ErrMissingLocation   = errors.New("location is required")
	ErrBadQuantity       = errors.New("item quantity must be at least 1")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrOrderNotFound     = errors.New("order not found")
)

type OrderService struct {
	repo      OrderRepository
	publisher OrderEventPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, publisher OrderEventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr}
}

// Place writes a new order. Status is always pending and the total is fixed
// from the submitted line items; it is never recomputed afterwards.
func (s *OrderService) Place(ctx context.Context, order *domain.Order) error {
	if strings.TrimSpace(order.Customer) == "" {
		return ErrMissingCustomer
	}
	if strings.TrimSpace(order.Location) == "" {
		return ErrMissingLocation
	}
	if len(order.Items) == 0 {
		return ErrEmptyOrder
	}
	for _, item := range order.Items {
		if item.Quantity < 1 {
			return ErrBadQuantity
		}
	}

	order.Status = domain.StatusPending
	order.Total = 0
	for _, item := range order.Items {
		order.Total += item.Price * float64(item.Quantity)
	}

	return s.repo.CreateOrder(order)
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repo.ListOrders()
}

// Track looks an order up by id. A missing order returns (nil, nil):
// not-found is an expected outcome, not a failure.
func (s *OrderService) Track(id int) (*domain.Order, error) {
	return s.repo.GetOrder(id)
}

// AdvanceStatus moves an order exactly one step forward. On success, if the
// customer field looks like an email address, a status event is published
// best-effort; publish failures never roll back the transition.
func (s *OrderService) AdvanceStatus(ctx context.Context, id, userID int, status string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if !domain.CanTransition(order.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateOrderStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status

	if s.publisher != nil && strings.Contains(order.Customer, "@") {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:      domain.EventStatusChange,
			OrderID:   order.ID,
			Status:    status,
			Email:     order.Customer,
			Timestamp: time.Now(),
		})
	}

	return order, nil
}

func (s *OrderService) QRCode(orderID int) ([]byte, error) {
	return s.qrEncoder.Generate(orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
