package sync

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"sabor-do-para/internal/domain"
)

type OrdersLoader interface {
	ListOpen(ctx context.Context) ([]domain.Order, error)
}

type Broadcaster interface {
	BroadcastSnapshot(orders []domain.Order)
	BroadcastNewOrder(order *domain.Order)
}

// Consumer bridges the order change feed to the kitchen displays. Any
// event triggers a wholesale reload of the open-order view; incremental
// patching buys nothing at tens of concurrent orders and wholesale reload
// makes every display converge on the store's state after races.
type Consumer struct {
	Reader *kafka.Reader
	Orders OrdersLoader
	Board  Broadcaster

	// PollInterval drives the staleness fallback: even with the feed
	// silent or broken, displays get a fresh snapshot this often.
	PollInterval time.Duration
}

func NewConsumer(reader *kafka.Reader, orders OrdersLoader, board Broadcaster) *Consumer {
	return &Consumer{
		Reader:       reader,
		Orders:       orders,
		Board:        board,
		PollInterval: 30 * time.Second,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting kitchen sync consumer...")

	if c.PollInterval > 0 {
		go c.poll(ctx)
	}

	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling event: %v", err)
			continue
		}

		c.Process(ctx, event)
	}
}

// Process pushes the arrival alert for inserts, then reloads and
// broadcasts the open-order snapshot for every event type.
func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) {
	if event.Type == domain.EventInsert && event.New != nil {
		c.Board.BroadcastNewOrder(event.New)
	}

	orders, err := c.Orders.ListOpen(ctx)
	if err != nil {
		log.Printf("Error reloading open orders: %v", err)
		return
	}
	c.Board.BroadcastSnapshot(orders)
}

func (c *Consumer) poll(ctx context.Context) {
	ticker := time.NewTicker(c.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			orders, err := c.Orders.ListOpen(ctx)
			if err != nil {
				log.Printf("Error polling open orders: %v", err)
				continue
			}
			c.Board.BroadcastSnapshot(orders)
		}
	}
}
