package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sabor-do-para/internal/domain"
)

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type AreaPolicy struct {
	mock.Mock
}

func NewAreaPolicy(t testingT) *AreaPolicy {
	m := &AreaPolicy{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AreaPolicy) Allows(address string) bool {
	return m.Called(address).Bool(0)
}

type SalesRecorder struct {
	mock.Mock
}

func NewSalesRecorder(t testingT) *SalesRecorder {
	m := &SalesRecorder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SalesRecorder) RecordSale(ctx context.Context, order domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *SalesRecorder) DayTotals(ctx context.Context, day string) (*domain.DailySales, error) {
	ret := m.Called(ctx, day)
	var totals *domain.DailySales
	if ret.Get(0) != nil {
		totals = ret.Get(0).(*domain.DailySales)
	}
	return totals, ret.Error(1)
}

func (m *SalesRecorder) TopProducts(ctx context.Context, day string, limit int) ([]domain.ProductSales, error) {
	ret := m.Called(ctx, day, limit)
	var top []domain.ProductSales
	if ret.Get(0) != nil {
		top = ret.Get(0).([]domain.ProductSales)
	}
	return top, ret.Error(1)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(url string) ([]byte, error) {
	ret := m.Called(url)
	var png []byte
	if ret.Get(0) != nil {
		png = ret.Get(0).([]byte)
	}
	return png, ret.Error(1)
}

type Broadcaster struct {
	mock.Mock
}

func NewBroadcaster(t testingT) *Broadcaster {
	m := &Broadcaster{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Broadcaster) BroadcastSnapshot(orders []domain.Order) {
	m.Called(orders)
}

func (m *Broadcaster) BroadcastNewOrder(order *domain.Order) {
	m.Called(order)
}

type OrdersLoader struct {
	mock.Mock
}

func NewOrdersLoader(t testingT) *OrdersLoader {
	m := &OrdersLoader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrdersLoader) ListOpen(ctx context.Context) ([]domain.Order, error) {
	ret := m.Called(ctx)
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}
