package service

import (
	"context"
	"time"

	"sabor-do-para/internal/domain"
)

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) error
	ListOpenOrders(ctx context.Context) ([]domain.Order, error)
	ListArchivedOrders(ctx context.Context, from, to *time.Time) ([]domain.Order, error)
	CloseOrdersForTable(ctx context.Context, tableID int, final domain.OrderStatus) (int64, error)
	DeleteOrdersForTable(ctx context.Context, tableID int) (int64, error)
	ArchiveFinishedOrders(ctx context.Context) (int64, error)
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, p *domain.Product) error
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id int) (int64, error)
	CountProducts(ctx context.Context) (int, error)
}

type TableRepository interface {
	CreateTable(ctx context.Context, t *domain.Table) error
	ListTables(ctx context.Context) ([]domain.Table, error)
	GetTable(ctx context.Context, id int) (*domain.Table, error)
	UpdateTableQR(ctx context.Context, id int, qrURL string, png []byte) error
	DeleteTable(ctx context.Context, id int) (int64, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// AreaPolicy decides whether a delivery address can be served. It is a
// swappable policy so the submission flow never embeds address rules.
type AreaPolicy interface {
	Allows(address string) bool
}

type SalesRecorder interface {
	RecordSale(ctx context.Context, order domain.Order) error
	DayTotals(ctx context.Context, day string) (*domain.DailySales, error)
	TopProducts(ctx context.Context, day string, limit int) ([]domain.ProductSales, error)
}

type QRGenerator interface {
	Generate(url string) ([]byte, error)
}

type OrderServiceInterface interface {
	Submit(ctx context.Context, req SubmitRequest) (*domain.Order, error)
	Transition(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error)
	CloseAllForTable(ctx context.Context, tableID int, final domain.OrderStatus) (int64, error)
	DeleteAllForTable(ctx context.Context, tableID int) (int64, error)
	ArchiveAllReady(ctx context.Context) (int64, []domain.Order, error)
	ListOpen(ctx context.Context) ([]domain.Order, error)
	ListArchived(ctx context.Context, from, to *time.Time) ([]domain.Order, error)
}

type ProductServiceInterface interface {
	Create(ctx context.Context, p *domain.Product) error
	List(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int) error
	Seed(ctx context.Context) (int, error)
}

type TableServiceInterface interface {
	Create(ctx context.Context, number string) (*domain.Table, error)
	List(ctx context.Context) ([]domain.Table, error)
	Get(ctx context.Context, id int) (*domain.Table, error)
	Delete(ctx context.Context, id int) error
	GenerateQR(ctx context.Context, id int, baseURL string) (*domain.Table, error)
}

type ReportServiceInterface interface {
	Range(ctx context.Context, from, to *time.Time) (*domain.SalesReport, error)
	Daily(ctx context.Context, day string) (*domain.DailySales, error)
	TopProducts(ctx context.Context, day string, limit int) ([]domain.ProductSales, error)
}

var _ OrderServiceInterface = (*OrderService)(nil)
var _ ProductServiceInterface = (*ProductService)(nil)
var _ TableServiceInterface = (*TableService)(nil)
var _ ReportServiceInterface = (*ReportService)(nil)
