package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sabor-do-para/internal/domain"
	"sabor-do-para/internal/mocks"
	"sabor-do-para/internal/service"
)

func TestProductService_Create(t *testing.T) {
	tests := []struct {
		name        string
		product     domain.Product
		expectedErr error
	}{
		{
			name:    "success",
			product: domain.Product{Name: "Açaí com Farinha", Price: 15.90, Category: "sobremesas"},
		},
		{
			name:        "blank_name",
			product:     domain.Product{Name: "   ", Price: 10},
			expectedErr: service.ErrProductName,
		},
		{
			name:        "negative_price",
			product:     domain.Product{Name: "Tacacá", Price: -1},
			expectedErr: service.ErrProductPrice,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			products := mocks.NewProductRepository(t)
			if testCase.expectedErr == nil {
				products.On("CreateProduct", mock.Anything, &testCase.product).Return(nil).Once()
			}

			svc := service.NewProductService(products)
			err := svc.Create(context.Background(), &testCase.product)

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductService_Get_NotFound(t *testing.T) {
	products := mocks.NewProductRepository(t)
	products.On("GetProduct", mock.Anything, 99).Return(nil, sql.ErrNoRows).Once()

	svc := service.NewProductService(products)
	p, err := svc.Get(context.Background(), 99)

	assert.ErrorIs(t, err, service.ErrProductNotFound)
	assert.Nil(t, p)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	products := mocks.NewProductRepository(t)
	products.On("DeleteProduct", mock.Anything, 99).Return(int64(0), nil).Once()

	svc := service.NewProductService(products)
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), service.ErrProductNotFound)
}

func TestProductService_Seed(t *testing.T) {
	t.Run("empty_table_gets_default_menu", func(t *testing.T) {
		products := mocks.NewProductRepository(t)
		products.On("CountProducts", mock.Anything).Return(0, nil).Once()
		products.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil).Times(len(service.DefaultMenu()))

		svc := service.NewProductService(products)
		inserted, err := svc.Seed(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, len(service.DefaultMenu()), inserted)
	})

	t.Run("existing_menu_untouched", func(t *testing.T) {
		products := mocks.NewProductRepository(t)
		products.On("CountProducts", mock.Anything).Return(12, nil).Once()

		svc := service.NewProductService(products)
		inserted, err := svc.Seed(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, inserted)
		products.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("count_failure", func(t *testing.T) {
		products := mocks.NewProductRepository(t)
		products.On("CountProducts", mock.Anything).
			Return(0, errors.New("connection refused")).Once()

		svc := service.NewProductService(products)
		_, err := svc.Seed(context.Background())
		assert.Error(t, err)
	})
}
