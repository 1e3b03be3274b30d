package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"sabor-do-para/internal/domain"
)

var ErrTableNumber = errors.New("table number is required")

// TableService manages the physical tables and their QR targets. Orders
// reference tables by ID; the printed number is only a display attribute,
// so renumbering a table never strands its open orders.
type TableService struct {
	tables TableRepository
	orders OrderServiceInterface
	qr     QRGenerator
}

func NewTableService(tables TableRepository, orders OrderServiceInterface, qr QRGenerator) *TableService {
	return &TableService{tables: tables, orders: orders, qr: qr}
}

func (s *TableService) Create(ctx context.Context, number string) (*domain.Table, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrTableNumber
	}

	table := &domain.Table{Number: number}
	if err := s.tables.CreateTable(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return table, nil
}

func (s *TableService) List(ctx context.Context) ([]domain.Table, error) {
	return s.tables.ListTables(ctx)
}

func (s *TableService) Get(ctx context.Context, id int) (*domain.Table, error) {
	table, err := s.tables.GetTable(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return table, nil
}

// Delete removes the table and every order row that referenced it.
func (s *TableService) Delete(ctx context.Context, id int) error {
	if _, err := s.orders.DeleteAllForTable(ctx, id); err != nil {
		return err
	}

	affected, err := s.tables.DeleteTable(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTableNotFound
	}
	return nil
}

// GenerateQR builds the menu URL for the table and caches the rendered
// PNG on the row so repeat fetches skip regeneration.
func (s *TableService) GenerateQR(ctx context.Context, id int, baseURL string) (*domain.Table, error) {
	table, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	qrURL := fmt.Sprintf("%s/menu?mesa=%s", strings.TrimRight(baseURL, "/"), table.Number)
	png, err := s.qr.Generate(qrURL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	if err := s.tables.UpdateTableQR(ctx, id, qrURL, png); err != nil {
		return nil, fmt.Errorf("failed to store QR code: %w", err)
	}

	table.QRURL = qrURL
	table.QRCode = png
	return table, nil
}
