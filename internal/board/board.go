// Package board is the pure projection behind the kitchen display:
// lane partitioning, the single forward action per lane, and the card
// labels. No I/O lives here.
package board

import (
	"fmt"
	"strconv"
	"time"

	"sabor-do-para/internal/domain"
)

// Lanes are the three kitchen columns. Delivered, canceled and archived
// orders never appear on the board.
type Lanes struct {
	Pending   []domain.Order `json:"pending"`
	Preparing []domain.Order `json:"preparing"`
	Ready     []domain.Order `json:"ready"`
}

func Partition(orders []domain.Order) Lanes {
	lanes := Lanes{
		Pending:   []domain.Order{},
		Preparing: []domain.Order{},
		Ready:     []domain.Order{},
	}
	for _, o := range orders {
		switch o.Status {
		case domain.StatusPending:
			lanes.Pending = append(lanes.Pending, o)
		case domain.StatusPreparing:
			lanes.Preparing = append(lanes.Preparing, o)
		case domain.StatusReady:
			lanes.Ready = append(lanes.Ready, o)
		}
	}
	return lanes
}

// NextAction returns the one forward action a lane exposes. The ready
// lane has none; it only participates in the global finalize-shift.
func NextAction(status domain.OrderStatus) (domain.OrderStatus, string, bool) {
	switch status {
	case domain.StatusPending:
		return domain.StatusPreparing, "Aceitar Pedido", true
	case domain.StatusPreparing:
		return domain.StatusReady, "Marcar como Pronto", true
	}
	return "", "", false
}

// TableLabel is the badge on an order card: a zero-padded two-character
// table number, or "R" for remote (delivery) orders.
func TableLabel(o domain.Order) string {
	if _, err := strconv.Atoi(o.TableNumber); err == nil && o.TableNumber != "" {
		if len(o.TableNumber) >= 2 {
			return o.TableNumber
		}
		return "0" + o.TableNumber
	}
	return "R"
}

// ElapsedLabel buckets the order's age in whole minutes.
func ElapsedLabel(createdAt, now time.Time) string {
	minutes := int(now.Sub(createdAt).Minutes())
	if minutes < 1 {
		return "Agora"
	}
	if minutes == 1 {
		return "1 min"
	}
	return fmt.Sprintf("%d min", minutes)
}
