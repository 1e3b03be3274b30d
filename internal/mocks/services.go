package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"sabor-do-para/internal/domain"
	"sabor-do-para/internal/service"
)

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) Submit(ctx context.Context, req service.SubmitRequest) (*domain.Order, error) {
	ret := m.Called(ctx, req)
	var order *domain.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*domain.Order)
	}
	return order, ret.Error(1)
}

func (m *OrderServiceInterface) Transition(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error) {
	ret := m.Called(ctx, orderID, status)
	var order *domain.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*domain.Order)
	}
	return order, ret.Error(1)
}

func (m *OrderServiceInterface) CloseAllForTable(ctx context.Context, tableID int, final domain.OrderStatus) (int64, error) {
	ret := m.Called(ctx, tableID, final)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *OrderServiceInterface) DeleteAllForTable(ctx context.Context, tableID int) (int64, error) {
	ret := m.Called(ctx, tableID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *OrderServiceInterface) ArchiveAllReady(ctx context.Context) (int64, []domain.Order, error) {
	ret := m.Called(ctx)
	var stillOpen []domain.Order
	if ret.Get(1) != nil {
		stillOpen = ret.Get(1).([]domain.Order)
	}
	return ret.Get(0).(int64), stillOpen, ret.Error(2)
}

func (m *OrderServiceInterface) ListOpen(ctx context.Context) ([]domain.Order, error) {
	ret := m.Called(ctx)
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}

func (m *OrderServiceInterface) ListArchived(ctx context.Context, from, to *time.Time) ([]domain.Order, error) {
	ret := m.Called(ctx, from, to)
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}

type ProductServiceInterface struct {
	mock.Mock
}

func NewProductServiceInterface(t testingT) *ProductServiceInterface {
	m := &ProductServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProductServiceInterface) Create(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductServiceInterface) List(ctx context.Context, category string) ([]domain.Product, error) {
	ret := m.Called(ctx, category)
	var products []domain.Product
	if ret.Get(0) != nil {
		products = ret.Get(0).([]domain.Product)
	}
	return products, ret.Error(1)
}

func (m *ProductServiceInterface) Get(ctx context.Context, id int) (*domain.Product, error) {
	ret := m.Called(ctx, id)
	var p *domain.Product
	if ret.Get(0) != nil {
		p = ret.Get(0).(*domain.Product)
	}
	return p, ret.Error(1)
}

func (m *ProductServiceInterface) Update(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductServiceInterface) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductServiceInterface) Seed(ctx context.Context) (int, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(int), ret.Error(1)
}

type TableServiceInterface struct {
	mock.Mock
}

func NewTableServiceInterface(t testingT) *TableServiceInterface {
	m := &TableServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableServiceInterface) Create(ctx context.Context, number string) (*domain.Table, error) {
	ret := m.Called(ctx, number)
	var table *domain.Table
	if ret.Get(0) != nil {
		table = ret.Get(0).(*domain.Table)
	}
	return table, ret.Error(1)
}

func (m *TableServiceInterface) List(ctx context.Context) ([]domain.Table, error) {
	ret := m.Called(ctx)
	var tables []domain.Table
	if ret.Get(0) != nil {
		tables = ret.Get(0).([]domain.Table)
	}
	return tables, ret.Error(1)
}

func (m *TableServiceInterface) Get(ctx context.Context, id int) (*domain.Table, error) {
	ret := m.Called(ctx, id)
	var table *domain.Table
	if ret.Get(0) != nil {
		table = ret.Get(0).(*domain.Table)
	}
	return table, ret.Error(1)
}

func (m *TableServiceInterface) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *TableServiceInterface) GenerateQR(ctx context.Context, id int, baseURL string) (*domain.Table, error) {
	ret := m.Called(ctx, id, baseURL)
	var table *domain.Table
	if ret.Get(0) != nil {
		table = ret.Get(0).(*domain.Table)
	}
	return table, ret.Error(1)
}

type ReportServiceInterface struct {
	mock.Mock
}

func NewReportServiceInterface(t testingT) *ReportServiceInterface {
	m := &ReportServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReportServiceInterface) Range(ctx context.Context, from, to *time.Time) (*domain.SalesReport, error) {
	ret := m.Called(ctx, from, to)
	var report *domain.SalesReport
	if ret.Get(0) != nil {
		report = ret.Get(0).(*domain.SalesReport)
	}
	return report, ret.Error(1)
}

func (m *ReportServiceInterface) Daily(ctx context.Context, day string) (*domain.DailySales, error) {
	ret := m.Called(ctx, day)
	var totals *domain.DailySales
	if ret.Get(0) != nil {
		totals = ret.Get(0).(*domain.DailySales)
	}
	return totals, ret.Error(1)
}

func (m *ReportServiceInterface) TopProducts(ctx context.Context, day string, limit int) ([]domain.ProductSales, error) {
	ret := m.Called(ctx, day, limit)
	var top []domain.ProductSales
	if ret.Get(0) != nil {
		top = ret.Get(0).([]domain.ProductSales)
	}
	return top, ret.Error(1)
}
