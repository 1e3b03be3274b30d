package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCanceled  OrderStatus = "canceled"
	StatusArchived  OrderStatus = "archived"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCanceled, StatusArchived:
		return true
	}
	return false
}

// Terminal states accept no further transitions. Archived is only ever
// reached through the bulk end-of-shift operation.
func (s OrderStatus) Terminal() bool {
	return s == StatusCanceled || s == StatusArchived
}

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

// CartItem is a frozen snapshot of a product line at the moment it was
// put in the cart. Once an order is submitted the snapshots never change.
type CartItem struct {
	Product     Product  `json:"product"`
	Quantity    int      `json:"quantity"`
	Observation string   `json:"observation,omitempty"`
	Extras      []string `json:"extras,omitempty"`
}

func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Order struct {
	ID            int           `json:"id"`
	TableID       int           `json:"table_id,omitempty"`
	TableNumber   string        `json:"table_number,omitempty"`
	Customer      *CustomerInfo `json:"customer,omitempty"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Delivery reports whether the order belongs to a remote customer rather
// than a table.
func (o Order) Delivery() bool {
	return o.TableID == 0 && o.Customer != nil
}

type Table struct {
	ID        int       `json:"id"`
	Number    string    `json:"number"`
	QRURL     string    `json:"qr_url,omitempty"`
	QRCode    []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// OrderEvent is the change-feed message published to Kafka after every
// successful write to the order store. Bulk operations emit a single
// event with no order attached; consumers reload wholesale either way.
type OrderEvent struct {
	Type      EventType `json:"type"`
	OrderID   int       `json:"order_id,omitempty"`
	New       *Order    `json:"new,omitempty"`
	Old       *Order    `json:"old,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type DailySales struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type ProductSales struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

type SalesReport struct {
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
	Orders     []Order `json:"orders"`
}
