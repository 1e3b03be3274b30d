package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"sabor-do-para/internal/domain"
)

var (
	ErrEmptyCart           = errors.New("cannot submit an order with no items")
	ErrInvalidItem         = errors.New("order items must have positive quantity and non-negative price")
	ErrTotalMismatch       = errors.New("order total does not match the sum of its items")
	ErrMissingCustomerInfo = errors.New("delivery orders require name, phone and address")
	ErrOutsideServiceArea  = errors.New("address is outside the delivery area")
	ErrOrderNotFound       = errors.New("order not found")
	ErrTableNotFound       = errors.New("table not found")
	ErrInvalidTransition   = errors.New("status transition is not allowed")
)

// Forward moves of the order state machine. Canceled is reachable from
// any non-terminal state; archived is reachable only through the bulk
// end-of-shift operation, never through Transition.
var transitions = map[domain.OrderStatus]domain.OrderStatus{
	domain.StatusPending:   domain.StatusPreparing,
	domain.StatusPreparing: domain.StatusReady,
	domain.StatusReady:     domain.StatusDelivered,
}

func legalTransition(from, to domain.OrderStatus) bool {
	if to == domain.StatusCanceled {
		return !from.Terminal()
	}
	return transitions[from] == to
}

type SubmitRequest struct {
	Items         []domain.CartItem    `json:"items"`
	Total         float64              `json:"total"`
	TableID       int                  `json:"table_id,omitempty"`
	Customer      *domain.CustomerInfo `json:"customer,omitempty"`
	PaymentMethod string               `json:"payment_method,omitempty"`
}

// OrderService owns the order lifecycle: it turns submitted carts into
// pending orders, enforces the status state machine centrally (the store
// is a dumb record keeper) and publishes a change-feed event after every
// successful write.
type OrderService struct {
	orders    OrderRepository
	tables    TableRepository
	publisher EventPublisher
	area      AreaPolicy
	sales     SalesRecorder
}

func NewOrderService(orders OrderRepository, tables TableRepository, publisher EventPublisher, area AreaPolicy, sales SalesRecorder) *OrderService {
	return &OrderService{
		orders:    orders,
		tables:    tables,
		publisher: publisher,
		area:      area,
		sales:     sales,
	}
}

func (s *OrderService) Submit(ctx context.Context, req SubmitRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	sum := 0.0
	for _, item := range req.Items {
		if item.Quantity <= 0 || item.Product.Price < 0 {
			return nil, ErrInvalidItem
		}
		sum += item.LineTotal()
	}
	// The caller's total is trusted as the cart's derived value, but a
	// tampered payload must not slip through.
	if math.Abs(sum-req.Total) > 0.005 {
		return nil, ErrTotalMismatch
	}

	order := &domain.Order{
		Items:         req.Items,
		Total:         req.Total,
		Status:        domain.StatusPending,
		PaymentMethod: req.PaymentMethod,
	}

	if req.TableID != 0 {
		table, err := s.tables.GetTable(ctx, req.TableID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrTableNotFound
			}
			return nil, fmt.Errorf("failed to resolve table: %w", err)
		}
		order.TableID = table.ID
		order.TableNumber = table.Number
	} else {
		if req.Customer == nil ||
			strings.TrimSpace(req.Customer.Name) == "" ||
			strings.TrimSpace(req.Customer.Phone) == "" ||
			strings.TrimSpace(req.Customer.Address) == "" {
			return nil, ErrMissingCustomerInfo
		}
		if !s.area.Allows(req.Customer.Address) {
			return nil, ErrOutsideServiceArea
		}
		order.Customer = req.Customer
	}

	if err := s.orders.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:      domain.EventInsert,
		OrderID:   order.ID,
		New:       order,
		Timestamp: time.Now(),
	})

	return order, nil
}

// Transition applies one status change. Re-sending the current status is
// a no-op success so kitchen retries are safe.
func (s *OrderService) Transition(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() || status == domain.StatusArchived {
		return nil, ErrInvalidTransition
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if order.Status == status {
		return order, nil
	}
	if !legalTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if err := s.orders.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	old := *order
	order.Status = status

	_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:      domain.EventUpdate,
		OrderID:   order.ID,
		New:       order,
		Old:       &old,
		Timestamp: time.Now(),
	})

	return order, nil
}

// CloseAllForTable moves every non-archived order of the table to the
// final status in one bulk update (closing the tab).
func (s *OrderService) CloseAllForTable(ctx context.Context, tableID int, final domain.OrderStatus) (int64, error) {
	if !final.Valid() || final == domain.StatusArchived {
		return 0, ErrInvalidTransition
	}

	affected, err := s.orders.CloseOrdersForTable(ctx, tableID, final)
	if err != nil {
		return 0, fmt.Errorf("failed to close orders for table %d: %w", tableID, err)
	}

	if affected > 0 {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:      domain.EventUpdate,
			Timestamp: time.Now(),
		})
	}
	return affected, nil
}

// DeleteAllForTable removes every order row of the table. Used only
// alongside table deletion.
func (s *OrderService) DeleteAllForTable(ctx context.Context, tableID int) (int64, error) {
	affected, err := s.orders.DeleteOrdersForTable(ctx, tableID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete orders for table %d: %w", tableID, err)
	}

	if affected > 0 {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:      domain.EventDelete,
			Timestamp: time.Now(),
		})
	}
	return affected, nil
}

// ArchiveAllReady is the end-of-shift operation: every ready or delivered
// order becomes archived in one bulk update. Orders still pending or
// preparing are untouched and returned so the operator can be warned.
func (s *OrderService) ArchiveAllReady(ctx context.Context) (int64, []domain.Order, error) {
	open, err := s.orders.ListOpenOrders(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to list open orders: %w", err)
	}

	stillOpen := []domain.Order{}
	var finished []domain.Order
	for _, o := range open {
		switch o.Status {
		case domain.StatusReady, domain.StatusDelivered:
			finished = append(finished, o)
		case domain.StatusPending, domain.StatusPreparing:
			stillOpen = append(stillOpen, o)
		}
	}

	archived, err := s.orders.ArchiveFinishedOrders(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to archive orders: %w", err)
	}

	if s.sales != nil {
		for _, o := range finished {
			_ = s.sales.RecordSale(ctx, o)
		}
	}

	if archived > 0 {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:      domain.EventUpdate,
			Timestamp: time.Now(),
		})
	}

	return archived, stillOpen, nil
}

func (s *OrderService) ListOpen(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListOpenOrders(ctx)
}

func (s *OrderService) ListArchived(ctx context.Context, from, to *time.Time) ([]domain.Order, error) {
	return s.orders.ListArchivedOrders(ctx, from, to)
}
