package storage

import (
	"context"

	"sabor-do-para/internal/domain"
)

func (r *PostgresRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, category, image_url, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.Available,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PostgresRepository) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, category, COALESCE(image_url, ''), available, created_at
		FROM products`
	args := []interface{}{}
	if category != "" {
		query += " WHERE category = $1"
		args = append(args, category)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL, &p.Available, &p.CreatedAt); err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	var p domain.Product
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(description, ''), price, category, COALESCE(image_url, ''), available, created_at
		FROM products
		WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL, &p.Available, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, category = $4, image_url = $5, available = $6
		WHERE id = $7`,
		p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.Available, p.ID)
	return err
}

func (r *PostgresRepository) DeleteProduct(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CountProducts(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	return count, err
}

func (r *PostgresRepository) CreateTable(ctx context.Context, t *domain.Table) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO tables (number) VALUES ($1) RETURNING id, created_at",
		t.Number,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *PostgresRepository) ListTables(ctx context.Context) ([]domain.Table, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, number, COALESCE(qr_url, ''), created_at
		FROM tables
		ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.QRURL, &t.CreatedAt); err != nil {
			continue
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) GetTable(ctx context.Context, id int) (*domain.Table, error) {
	var t domain.Table
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, number, COALESCE(qr_url, ''), qr_code, created_at
		FROM tables
		WHERE id = $1`, id,
	).Scan(&t.ID, &t.Number, &t.QRURL, &t.QRCode, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) UpdateTableQR(ctx context.Context, id int, qrURL string, png []byte) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE tables SET qr_url = $1, qr_code = $2 WHERE id = $3", qrURL, png, id)
	return err
}

func (r *PostgresRepository) DeleteTable(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM tables WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
