package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"sabor-do-para/internal/domain"
)

// SalesCache mirrors end-of-shift figures in Redis so the report screens
// read aggregates without scanning order rows. The database stays the
// source of truth; these keys expire after the retention window.
type SalesCache struct {
	Client    *redis.Client
	Retention time.Duration
}

func NewSalesCache(client *redis.Client, retention time.Duration) *SalesCache {
	return &SalesCache{Client: client, Retention: retention}
}

func dailyKey(day string) string { return "report:daily:" + day }
func topKey(day string) string   { return "report:top:" + day }

func (c *SalesCache) RecordSale(ctx context.Context, order domain.Order) error {
	day := order.CreatedAt.Format("2006-01-02")

	key := dailyKey(day)
	if err := c.Client.HIncrByFloat(ctx, key, "revenue", order.Total).Err(); err != nil {
		return err
	}
	c.Client.HIncrBy(ctx, key, "orders", 1)
	c.Client.Expire(ctx, key, c.Retention)

	top := topKey(day)
	for _, item := range order.Items {
		c.Client.ZIncrBy(ctx, top, float64(item.Quantity), item.Product.Name)
	}
	c.Client.Expire(ctx, top, c.Retention)
	return nil
}

// DayTotals returns nil when Redis holds nothing for the day, letting
// the caller fall back to the database.
func (c *SalesCache) DayTotals(ctx context.Context, day string) (*domain.DailySales, error) {
	fields, err := c.Client.HGetAll(ctx, dailyKey(day)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	revenue, _ := strconv.ParseFloat(fields["revenue"], 64)
	orders, _ := strconv.Atoi(fields["orders"])
	return &domain.DailySales{Day: day, Revenue: revenue, Orders: orders}, nil
}

func (c *SalesCache) TopProducts(ctx context.Context, day string, limit int) ([]domain.ProductSales, error) {
	members, err := c.Client.ZRevRangeWithScores(ctx, topKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	top := make([]domain.ProductSales, 0, len(members))
	for _, m := range members {
		name, ok := m.Member.(string)
		if !ok {
			continue
		}
		top = append(top, domain.ProductSales{Name: name, Quantity: m.Score})
	}
	return top, nil
}
