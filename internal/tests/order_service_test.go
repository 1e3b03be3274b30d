package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sabor-do-para/internal/domain"
	"sabor-do-para/internal/mocks"
	"sabor-do-para/internal/service"
)

func newOrderService(t *testing.T) (*service.OrderService, *mocks.OrderRepository, *mocks.TableRepository, *mocks.EventPublisher, *mocks.AreaPolicy) {
	orders := mocks.NewOrderRepository(t)
	tables := mocks.NewTableRepository(t)
	publisher := mocks.NewEventPublisher(t)
	area := mocks.NewAreaPolicy(t)

	svc := service.NewOrderService(orders, tables, publisher, area, nil)
	return svc, orders, tables, publisher, area
}

func cartLines() []domain.CartItem {
	return []domain.CartItem{
		{Product: domain.Product{ID: 1, Name: "X-Burguer Especial", Price: 28.90}, Quantity: 2},
	}
}

func TestOrderService_Submit_TableOrder(t *testing.T) {
	svc, orders, tables, publisher, _ := newOrderService(t)
	ctx := context.Background()

	tables.On("GetTable", ctx, 5).
		Return(&domain.Table{ID: 5, Number: "5"}, nil).Once()
	orders.On("InsertOrder", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Order).ID = 42
		}).
		Return(nil).Once()
	publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Type == domain.EventInsert && e.OrderID == 42
	})).Return(nil).Once()

	order, err := svc.Submit(ctx, service.SubmitRequest{
		Items:   cartLines(),
		Total:   57.80,
		TableID: 5,
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, "5", order.TableNumber)
	assert.InDelta(t, 57.80, order.Total, 0.001)
	assert.Equal(t, cartLines(), order.Items)
}

func TestOrderService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name          string
		req           service.SubmitRequest
		prepareMocks  func(tables *mocks.TableRepository, area *mocks.AreaPolicy)
		expectedError error
	}{
		{
			name:          "empty_cart",
			req:           service.SubmitRequest{Total: 0, TableID: 1},
			expectedError: service.ErrEmptyCart,
		},
		{
			name: "non_positive_quantity",
			req: service.SubmitRequest{
				Items:   []domain.CartItem{{Product: domain.Product{ID: 1, Price: 10}, Quantity: 0}},
				TableID: 1,
			},
			expectedError: service.ErrInvalidItem,
		},
		{
			name:          "total_mismatch",
			req:           service.SubmitRequest{Items: cartLines(), Total: 10.00, TableID: 1},
			expectedError: service.ErrTotalMismatch,
		},
		{
			name:          "delivery_missing_customer",
			req:           service.SubmitRequest{Items: cartLines(), Total: 57.80},
			expectedError: service.ErrMissingCustomerInfo,
		},
		{
			name: "delivery_blank_phone",
			req: service.SubmitRequest{
				Items:    cartLines(),
				Total:    57.80,
				Customer: &domain.CustomerInfo{Name: "Ana", Phone: "  ", Address: "Rua A, Nazaré"},
			},
			expectedError: service.ErrMissingCustomerInfo,
		},
		{
			name: "delivery_outside_area",
			req: service.SubmitRequest{
				Items:    cartLines(),
				Total:    57.80,
				Customer: &domain.CustomerInfo{Name: "Ana", Phone: "9199", Address: "Rua Longe, Outra Cidade"},
			},
			prepareMocks: func(_ *mocks.TableRepository, area *mocks.AreaPolicy) {
				area.On("Allows", "Rua Longe, Outra Cidade").Return(false).Once()
			},
			expectedError: service.ErrOutsideServiceArea,
		},
		{
			name: "unknown_table",
			req:  service.SubmitRequest{Items: cartLines(), Total: 57.80, TableID: 9},
			prepareMocks: func(tables *mocks.TableRepository, _ *mocks.AreaPolicy) {
				tables.On("GetTable", mock.Anything, 9).Return(nil, sql.ErrNoRows).Once()
			},
			expectedError: service.ErrTableNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, _, tables, _, area := newOrderService(t)
			if testCase.prepareMocks != nil {
				testCase.prepareMocks(tables, area)
			}

			order, err := svc.Submit(context.Background(), testCase.req)
			assert.ErrorIs(t, err, testCase.expectedError)
			assert.Nil(t, order)
		})
	}
}

func TestOrderService_Submit_DeliverySuccess(t *testing.T) {
	svc, orders, _, publisher, area := newOrderService(t)
	ctx := context.Background()

	customer := &domain.CustomerInfo{Name: "Ana", Phone: "91988887777", Address: "Trav. Padre Eutíquio, Batista Campos"}

	area.On("Allows", customer.Address).Return(true).Once()
	orders.On("InsertOrder", ctx, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Customer == customer && o.TableID == 0 && o.Status == domain.StatusPending
	})).Return(nil).Once()
	publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

	order, err := svc.Submit(ctx, service.SubmitRequest{
		Items:    cartLines(),
		Total:    57.80,
		Customer: customer,
	})

	assert.NoError(t, err)
	assert.True(t, order.Delivery())
}

func TestOrderService_Submit_StoreFailureIsRetryable(t *testing.T) {
	svc, orders, tables, _, _ := newOrderService(t)
	ctx := context.Background()

	tables.On("GetTable", ctx, 1).Return(&domain.Table{ID: 1, Number: "1"}, nil).Once()
	orders.On("InsertOrder", ctx, mock.Anything).Return(assert.AnError).Once()

	order, err := svc.Submit(ctx, service.SubmitRequest{Items: cartLines(), Total: 57.80, TableID: 1})

	assert.Error(t, err)
	assert.Nil(t, order)
}

func TestOrderService_Transition(t *testing.T) {
	tests := []struct {
		name          string
		current       domain.OrderStatus
		target        domain.OrderStatus
		expectUpdate  bool
		expectedError error
	}{
		{name: "pending_to_preparing", current: domain.StatusPending, target: domain.StatusPreparing, expectUpdate: true},
		{name: "preparing_to_ready", current: domain.StatusPreparing, target: domain.StatusReady, expectUpdate: true},
		{name: "ready_to_delivered", current: domain.StatusReady, target: domain.StatusDelivered, expectUpdate: true},
		{name: "cancel_from_pending", current: domain.StatusPending, target: domain.StatusCanceled, expectUpdate: true},
		{name: "cancel_from_ready", current: domain.StatusReady, target: domain.StatusCanceled, expectUpdate: true},
		{name: "idempotent_same_status", current: domain.StatusPreparing, target: domain.StatusPreparing},
		{name: "backwards_rejected", current: domain.StatusReady, target: domain.StatusPending, expectedError: service.ErrInvalidTransition},
		{name: "skip_ahead_rejected", current: domain.StatusPending, target: domain.StatusReady, expectedError: service.ErrInvalidTransition},
		{name: "archive_target_rejected", current: domain.StatusReady, target: domain.StatusArchived, expectedError: service.ErrInvalidTransition},
		{name: "out_of_canceled_rejected", current: domain.StatusCanceled, target: domain.StatusPending, expectedError: service.ErrInvalidTransition},
		{name: "unknown_status_rejected", current: domain.StatusPending, target: "frito", expectedError: service.ErrInvalidTransition},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, orders, _, publisher, _ := newOrderService(t)
			ctx := context.Background()

			if testCase.target.Valid() && testCase.target != domain.StatusArchived {
				orders.On("GetOrder", ctx, 7).
					Return(&domain.Order{ID: 7, Status: testCase.current}, nil).Once()
			}
			if testCase.expectUpdate {
				orders.On("UpdateOrderStatus", ctx, 7, testCase.target).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventUpdate &&
						e.New.Status == testCase.target &&
						e.Old.Status == testCase.current
				})).Return(nil).Once()
			}

			order, err := svc.Transition(ctx, 7, testCase.target)

			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				if testCase.expectUpdate {
					assert.Equal(t, testCase.target, order.Status)
				} else {
					assert.Equal(t, testCase.current, order.Status)
				}
			}
		})
	}
}

func TestOrderService_Transition_RepeatIsNoOp(t *testing.T) {
	svc, orders, _, publisher, _ := newOrderService(t)
	ctx := context.Background()

	orders.On("GetOrder", ctx, 3).
		Return(&domain.Order{ID: 3, Status: domain.StatusPending}, nil).Once()
	orders.On("UpdateOrderStatus", ctx, 3, domain.StatusPreparing).Return(nil).Once()
	publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

	first, err := svc.Transition(ctx, 3, domain.StatusPreparing)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, first.Status)

	// Second identical call: read reflects the new status, no update issued.
	orders.On("GetOrder", ctx, 3).
		Return(&domain.Order{ID: 3, Status: domain.StatusPreparing}, nil).Once()

	second, err := svc.Transition(ctx, 3, domain.StatusPreparing)
	assert.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
}

func TestOrderService_Transition_OrderNotFound(t *testing.T) {
	svc, orders, _, _, _ := newOrderService(t)
	ctx := context.Background()

	orders.On("GetOrder", ctx, 404).Return(nil, sql.ErrNoRows).Once()

	_, err := svc.Transition(ctx, 404, domain.StatusPreparing)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestOrderService_ArchiveAllReady_ScopeAndWarnings(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	tables := mocks.NewTableRepository(t)
	publisher := mocks.NewEventPublisher(t)
	sales := mocks.NewSalesRecorder(t)
	svc := service.NewOrderService(orders, tables, publisher, service.AllowAllPolicy{}, sales)

	ctx := context.Background()
	open := []domain.Order{
		{ID: 1, Status: domain.StatusReady, Total: 30},
		{ID: 2, Status: domain.StatusPending, Total: 15},
		{ID: 3, Status: domain.StatusDelivered, Total: 45},
		{ID: 4, Status: domain.StatusPreparing, Total: 22},
	}

	orders.On("ListOpenOrders", ctx).Return(open, nil).Once()
	orders.On("ArchiveFinishedOrders", ctx).Return(int64(2), nil).Once()
	sales.On("RecordSale", ctx, open[0]).Return(nil).Once()
	sales.On("RecordSale", ctx, open[2]).Return(nil).Once()
	publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

	archived, stillOpen, err := svc.ArchiveAllReady(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), archived)
	assert.Len(t, stillOpen, 2)
	assert.Equal(t, 2, stillOpen[0].ID)
	assert.Equal(t, 4, stillOpen[1].ID)
}

func TestOrderService_ArchiveAllReady_NothingFinished(t *testing.T) {
	svc, orders, _, _, _ := newOrderService(t)
	ctx := context.Background()

	orders.On("ListOpenOrders", ctx).
		Return([]domain.Order{{ID: 1, Status: domain.StatusPending}}, nil).Once()
	orders.On("ArchiveFinishedOrders", ctx).Return(int64(0), nil).Once()

	archived, stillOpen, err := svc.ArchiveAllReady(ctx)

	assert.NoError(t, err)
	assert.Zero(t, archived)
	assert.Len(t, stillOpen, 1)
}

func TestOrderService_CloseAllForTable(t *testing.T) {
	svc, orders, _, publisher, _ := newOrderService(t)
	ctx := context.Background()

	orders.On("CloseOrdersForTable", ctx, 12, domain.StatusDelivered).Return(int64(3), nil).Once()
	publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

	closed, err := svc.CloseAllForTable(ctx, 12, domain.StatusDelivered)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), closed)
}

func TestOrderService_CloseAllForTable_RejectsArchivedTarget(t *testing.T) {
	svc, _, _, _, _ := newOrderService(t)

	_, err := svc.CloseAllForTable(context.Background(), 12, domain.StatusArchived)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

func TestOrderService_DeleteAllForTable(t *testing.T) {
	svc, orders, _, publisher, _ := newOrderService(t)
	ctx := context.Background()

	orders.On("DeleteOrdersForTable", ctx, 2).Return(int64(5), nil).Once()
	publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Type == domain.EventDelete
	})).Return(nil).Once()

	deleted, err := svc.DeleteAllForTable(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
}
