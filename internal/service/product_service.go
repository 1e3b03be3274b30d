package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"sabor-do-para/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductName     = errors.New("product name is required")
	ErrProductPrice    = errors.New("product price cannot be negative")
)

type ProductService struct {
	products ProductRepository
}

func NewProductService(products ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) Create(ctx context.Context, p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrProductName
	}
	if p.Price < 0 {
		return ErrProductPrice
	}
	return s.products.CreateProduct(ctx, p)
}

func (s *ProductService) List(ctx context.Context, category string) ([]domain.Product, error) {
	return s.products.ListProducts(ctx, category)
}

func (s *ProductService) Get(ctx context.Context, id int) (*domain.Product, error) {
	p, err := s.products.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrProductName
	}
	if p.Price < 0 {
		return ErrProductPrice
	}
	return s.products.UpdateProduct(ctx, p)
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	affected, err := s.products.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Seed loads the default menu when the product table is empty. Returns
// the number of products inserted (zero when the menu already exists).
func (s *ProductService) Seed(ctx context.Context) (int, error) {
	count, err := s.products.CountProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, p := range DefaultMenu() {
		p := p
		if err := s.products.CreateProduct(ctx, &p); err != nil {
			return inserted, fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
		inserted++
	}
	return inserted, nil
}
