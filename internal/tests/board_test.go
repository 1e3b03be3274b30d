package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sabor-do-para/internal/board"
	"sabor-do-para/internal/domain"
)

func TestBoard_PartitionProducesThreeLanes(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Status: domain.StatusPending},
		{ID: 2, Status: domain.StatusPreparing},
		{ID: 3, Status: domain.StatusReady},
		{ID: 4, Status: domain.StatusDelivered},
		{ID: 5, Status: domain.StatusCanceled},
		{ID: 6, Status: domain.StatusArchived},
		{ID: 7, Status: domain.StatusPending},
	}

	lanes := board.Partition(orders)

	assert.Len(t, lanes.Pending, 2)
	assert.Len(t, lanes.Preparing, 1)
	assert.Len(t, lanes.Ready, 1)
	// Delivered, canceled and archived never reach the board.
	total := len(lanes.Pending) + len(lanes.Preparing) + len(lanes.Ready)
	assert.Equal(t, 4, total)
}

func TestBoard_NextAction(t *testing.T) {
	next, label, ok := board.NextAction(domain.StatusPending)
	assert.True(t, ok)
	assert.Equal(t, domain.StatusPreparing, next)
	assert.Equal(t, "Aceitar Pedido", label)

	next, label, ok = board.NextAction(domain.StatusPreparing)
	assert.True(t, ok)
	assert.Equal(t, domain.StatusReady, next)
	assert.Equal(t, "Marcar como Pronto", label)

	_, _, ok = board.NextAction(domain.StatusReady)
	assert.False(t, ok)
	_, _, ok = board.NextAction(domain.StatusArchived)
	assert.False(t, ok)
}

func TestBoard_TableLabel(t *testing.T) {
	tests := []struct {
		name     string
		order    domain.Order
		expected string
	}{
		{name: "single_digit_padded", order: domain.Order{TableNumber: "5"}, expected: "05"},
		{name: "two_digits_kept", order: domain.Order{TableNumber: "12"}, expected: "12"},
		{name: "delivery_marker", order: domain.Order{Customer: &domain.CustomerInfo{Name: "Ana"}}, expected: "R"},
		{name: "non_numeric_marker", order: domain.Order{TableNumber: "balcão"}, expected: "R"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, board.TableLabel(testCase.order))
		})
	}
}

func TestBoard_ElapsedLabel(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		age      time.Duration
		expected string
	}{
		{name: "under_a_minute", age: 30 * time.Second, expected: "Agora"},
		{name: "one_minute", age: 90 * time.Second, expected: "1 min"},
		{name: "many_minutes", age: 17 * time.Minute, expected: "17 min"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, board.ElapsedLabel(now.Add(-testCase.age), now))
		})
	}
}
