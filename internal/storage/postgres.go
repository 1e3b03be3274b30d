package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sabor-do-para/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL,
			category TEXT NOT NULL,
			image_url TEXT,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS tables (
			id SERIAL PRIMARY KEY,
			number TEXT NOT NULL,
			qr_url TEXT,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			table_id INT,
			table_number TEXT,
			customer_name TEXT,
			customer_phone TEXT,
			customer_address TEXT,
			items JSONB NOT NULL,
			total NUMERIC(10,2) NOT NULL,
			status TEXT NOT NULL,
			payment_method TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_table ON orders (table_id)",
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (r *PostgresRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	items, err := domain.EncodeItems(order.Items)
	if err != nil {
		return err
	}

	var tableID sql.NullInt64
	if order.TableID != 0 {
		tableID = sql.NullInt64{Int64: int64(order.TableID), Valid: true}
	}

	var name, phone, address sql.NullString
	if order.Customer != nil {
		name = sql.NullString{String: order.Customer.Name, Valid: true}
		phone = sql.NullString{String: order.Customer.Phone, Valid: true}
		address = sql.NullString{String: order.Customer.Address, Valid: true}
	}

	return r.DB.QueryRowContext(ctx, `
		INSERT INTO orders (table_id, table_number, customer_name, customer_phone, customer_address, items, total, status, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		tableID, order.TableNumber, name, phone, address, items, order.Total, order.Status, order.PaymentMethod,
	).Scan(&order.ID, &order.CreatedAt)
}

const orderColumns = `id, COALESCE(table_id, 0), COALESCE(table_number, ''), COALESCE(customer_name, ''),
		COALESCE(customer_phone, ''), COALESCE(customer_address, ''), items, total, status, COALESCE(payment_method, ''), created_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	var order domain.Order
	var name, phone, address string
	var items []byte

	if err := row.Scan(&order.ID, &order.TableID, &order.TableNumber, &name, &phone, &address,
		&items, &order.Total, &order.Status, &order.PaymentMethod, &order.CreatedAt); err != nil {
		return nil, err
	}

	decoded, legacyCustomer, err := domain.DecodeItems(items)
	if err != nil {
		return nil, err
	}
	order.Items = decoded

	if name != "" || phone != "" || address != "" {
		order.Customer = &domain.CustomerInfo{Name: name, Phone: phone, Address: address}
	} else if legacyCustomer != nil {
		order.Customer = legacyCustomer
	}
	return &order, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	return scanOrder(row)
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) listOrders(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) ListOpenOrders(ctx context.Context) ([]domain.Order, error) {
	return r.listOrders(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status != 'archived'
		ORDER BY created_at DESC`)
}

func (r *PostgresRepository) ListArchivedOrders(ctx context.Context, from, to *time.Time) ([]domain.Order, error) {
	if from != nil && to != nil {
		return r.listOrders(ctx, `
			SELECT `+orderColumns+`
			FROM orders
			WHERE status = 'archived' AND created_at >= $1 AND created_at < $2
			ORDER BY created_at DESC`, *from, *to)
	}
	return r.listOrders(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = 'archived'
		ORDER BY created_at DESC`)
}

func (r *PostgresRepository) CloseOrdersForTable(ctx context.Context, tableID int, final domain.OrderStatus) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE table_id = $2 AND status != 'archived'", final, tableID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteOrdersForTable(ctx context.Context, tableID int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM orders WHERE table_id = $1", tableID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ArchiveFinishedOrders(ctx context.Context) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET status = 'archived' WHERE status IN ('ready', 'delivered')")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
