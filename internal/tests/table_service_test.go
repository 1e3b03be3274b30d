package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sabor-do-para/internal/domain"
	"sabor-do-para/internal/mocks"
	"sabor-do-para/internal/service"
)

func TestTableService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tables := mocks.NewTableRepository(t)
		tables.On("CreateTable", mock.Anything, mock.MatchedBy(func(table *domain.Table) bool {
			return table.Number == "7"
		})).Return(nil).Once()

		svc := service.NewTableService(tables, mocks.NewOrderServiceInterface(t), mocks.NewQRGenerator(t))
		table, err := svc.Create(context.Background(), "  7  ")

		assert.NoError(t, err)
		assert.Equal(t, "7", table.Number)
	})

	t.Run("blank_number", func(t *testing.T) {
		svc := service.NewTableService(mocks.NewTableRepository(t),
			mocks.NewOrderServiceInterface(t), mocks.NewQRGenerator(t))
		table, err := svc.Create(context.Background(), "   ")

		assert.ErrorIs(t, err, service.ErrTableNumber)
		assert.Nil(t, table)
	})
}

func TestTableService_Delete_CascadesOrders(t *testing.T) {
	tables := mocks.NewTableRepository(t)
	orders := mocks.NewOrderServiceInterface(t)

	orders.On("DeleteAllForTable", mock.Anything, 3).Return(int64(2), nil).Once()
	tables.On("DeleteTable", mock.Anything, 3).Return(int64(1), nil).Once()

	svc := service.NewTableService(tables, orders, mocks.NewQRGenerator(t))
	assert.NoError(t, svc.Delete(context.Background(), 3))
}

func TestTableService_Delete_NotFound(t *testing.T) {
	tables := mocks.NewTableRepository(t)
	orders := mocks.NewOrderServiceInterface(t)

	orders.On("DeleteAllForTable", mock.Anything, 99).Return(int64(0), nil).Once()
	tables.On("DeleteTable", mock.Anything, 99).Return(int64(0), nil).Once()

	svc := service.NewTableService(tables, orders, mocks.NewQRGenerator(t))
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), service.ErrTableNotFound)
}

func TestTableService_GenerateQR(t *testing.T) {
	tables := mocks.NewTableRepository(t)
	qr := mocks.NewQRGenerator(t)
	png := []byte{0x89, 'P', 'N', 'G'}

	tables.On("GetTable", mock.Anything, 3).
		Return(&domain.Table{ID: 3, Number: "3"}, nil).Once()
	qr.On("Generate", "http://localhost/menu?mesa=3").Return(png, nil).Once()
	tables.On("UpdateTableQR", mock.Anything, 3, "http://localhost/menu?mesa=3", png).
		Return(nil).Once()

	svc := service.NewTableService(tables, mocks.NewOrderServiceInterface(t), qr)
	table, err := svc.GenerateQR(context.Background(), 3, "http://localhost/")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost/menu?mesa=3", table.QRURL)
	assert.Equal(t, png, table.QRCode)
}

func TestTableService_GenerateQR_TableMissing(t *testing.T) {
	tables := mocks.NewTableRepository(t)
	tables.On("GetTable", mock.Anything, 42).Return(nil, sql.ErrNoRows).Once()

	svc := service.NewTableService(tables, mocks.NewOrderServiceInterface(t), mocks.NewQRGenerator(t))
	table, err := svc.GenerateQR(context.Background(), 42, "http://localhost")

	assert.ErrorIs(t, err, service.ErrTableNotFound)
	assert.Nil(t, table)
}
