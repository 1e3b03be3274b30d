package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"sabor-do-para/internal/domain"
)

// ReportService reads over archived orders only. Daily figures come from
// the Redis aggregates the archive operation maintains, with a database
// fallback for days Redis no longer holds.
type ReportService struct {
	orders OrderRepository
	sales  SalesRecorder
}

func NewReportService(orders OrderRepository, sales SalesRecorder) *ReportService {
	return &ReportService{orders: orders, sales: sales}
}

func (s *ReportService) Range(ctx context.Context, from, to *time.Time) (*domain.SalesReport, error) {
	orders, err := s.orders.ListArchivedOrders(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load archived orders: %w", err)
	}

	report := &domain.SalesReport{Orders: orders, OrderCount: len(orders)}
	for _, o := range orders {
		report.Revenue += o.Total
	}
	return report, nil
}

func (s *ReportService) Daily(ctx context.Context, day string) (*domain.DailySales, error) {
	if s.sales != nil {
		if totals, err := s.sales.DayTotals(ctx, day); err == nil && totals != nil {
			return totals, nil
		}
	}
	return s.dailyFromDB(ctx, day)
}

func (s *ReportService) dailyFromDB(ctx context.Context, day string) (*domain.DailySales, error) {
	from, to, err := dayBounds(day)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListArchivedOrders(ctx, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("failed to load archived orders: %w", err)
	}

	totals := &domain.DailySales{Day: day, Orders: len(orders)}
	for _, o := range orders {
		totals.Revenue += o.Total
	}
	return totals, nil
}

func (s *ReportService) TopProducts(ctx context.Context, day string, limit int) ([]domain.ProductSales, error) {
	if limit <= 0 {
		limit = 10
	}

	if s.sales != nil {
		if top, err := s.sales.TopProducts(ctx, day, limit); err == nil && len(top) > 0 {
			return top, nil
		}
	}
	return s.topFromDB(ctx, day, limit)
}

func (s *ReportService) topFromDB(ctx context.Context, day string, limit int) ([]domain.ProductSales, error) {
	from, to, err := dayBounds(day)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListArchivedOrders(ctx, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("failed to load archived orders: %w", err)
	}

	counts := map[string]float64{}
	for _, o := range orders {
		for _, item := range o.Items {
			counts[item.Product.Name] += float64(item.Quantity)
		}
	}

	top := make([]domain.ProductSales, 0, len(counts))
	for name, qty := range counts {
		top = append(top, domain.ProductSales{Name: name, Quantity: qty})
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Quantity > top[j].Quantity })
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

func dayBounds(day string) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid day %q: %w", day, err)
	}
	return from, from.Add(24 * time.Hour), nil
}
