// Package mocks holds testify mocks for the service-layer interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"sabor-do-para/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	ret := m.Called(ctx, id)
	var order *domain.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*domain.Order)
	}
	return order, ret.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *OrderRepository) ListOpenOrders(ctx context.Context) ([]domain.Order, error) {
	ret := m.Called(ctx)
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}

func (m *OrderRepository) ListArchivedOrders(ctx context.Context, from, to *time.Time) ([]domain.Order, error) {
	ret := m.Called(ctx, from, to)
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}

func (m *OrderRepository) CloseOrdersForTable(ctx context.Context, tableID int, final domain.OrderStatus) (int64, error) {
	ret := m.Called(ctx, tableID, final)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *OrderRepository) DeleteOrdersForTable(ctx context.Context, tableID int) (int64, error) {
	ret := m.Called(ctx, tableID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *OrderRepository) ArchiveFinishedOrders(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

type ProductRepository struct {
	mock.Mock
}

func NewProductRepository(t testingT) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProductRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepository) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	ret := m.Called(ctx, category)
	var products []domain.Product
	if ret.Get(0) != nil {
		products = ret.Get(0).([]domain.Product)
	}
	return products, ret.Error(1)
}

func (m *ProductRepository) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	ret := m.Called(ctx, id)
	var p *domain.Product
	if ret.Get(0) != nil {
		p = ret.Get(0).(*domain.Product)
	}
	return p, ret.Error(1)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepository) DeleteProduct(ctx context.Context, id int) (int64, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *ProductRepository) CountProducts(ctx context.Context) (int, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(int), ret.Error(1)
}

type TableRepository struct {
	mock.Mock
}

func NewTableRepository(t testingT) *TableRepository {
	m := &TableRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableRepository) CreateTable(ctx context.Context, table *domain.Table) error {
	return m.Called(ctx, table).Error(0)
}

func (m *TableRepository) ListTables(ctx context.Context) ([]domain.Table, error) {
	ret := m.Called(ctx)
	var tables []domain.Table
	if ret.Get(0) != nil {
		tables = ret.Get(0).([]domain.Table)
	}
	return tables, ret.Error(1)
}

func (m *TableRepository) GetTable(ctx context.Context, id int) (*domain.Table, error) {
	ret := m.Called(ctx, id)
	var table *domain.Table
	if ret.Get(0) != nil {
		table = ret.Get(0).(*domain.Table)
	}
	return table, ret.Error(1)
}

func (m *TableRepository) UpdateTableQR(ctx context.Context, id int, qrURL string, png []byte) error {
	return m.Called(ctx, id, qrURL, png).Error(0)
}

func (m *TableRepository) DeleteTable(ctx context.Context, id int) (int64, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}
