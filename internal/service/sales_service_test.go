package service

import (
	"testing"
	"time"

	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleReq(productID uuid.UUID, qty int, price int64, customer string) SaleRequest {
	return SaleRequest{
		ProductID:    productID,
		Quantity:     qty,
		UnitPrice:    decimal.NewFromInt(price),
		CustomerName: customer,
	}
}

func TestRecordSaleDeductsStockAndComputesTotal(t *testing.T) {
	env := newTestEnv(t)
	maize := env.createProduct(t, "Maize Seeds", 1250, 500)

	sale, err := env.selling.RecordSale(saleReq(maize.ID, 50, 500, "Abeokuta Farms Co."), actorKeeper)
	require.NoError(t, err)

	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(25000)),
		"expected total 25000, got %s", sale.TotalAmount)
	assert.Equal(t, 1200, env.productStock(t, maize.ID))
	assert.Equal(t, "N/A", sale.CustomerPhone)
	assert.Equal(t, actorKeeper.Name, sale.ProcessedBy)

	logs, err := env.auditRepo.List(repository.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, model.ActionNewSale, logs[0].Action)
	assert.Contains(t, logs[0].Details, "Abeokuta Farms Co.")
	assert.Contains(t, logs[0].Details, "25000.00")
}

func TestRecordSaleOfExactStockAllowed(t *testing.T) {
	env := newTestEnv(t)
	cocoa := env.createProduct(t, "Cocoa Beans", 12, 5)

	_, err := env.selling.RecordSale(saleReq(cocoa.ID, 12, 90000, "Lagos Exports"), actorManager)
	require.NoError(t, err)
	assert.Equal(t, 0, env.productStock(t, cocoa.ID))
}

func TestRecordSaleInsufficientStockHasNoPartialEffect(t *testing.T) {
	env := newTestEnv(t)
	cocoa := env.createProduct(t, "Cocoa Beans", 12, 5)

	_, err := env.selling.RecordSale(saleReq(cocoa.ID, 13, 90000, "Lagos Exports"), actorManager)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 12, env.productStock(t, cocoa.ID))
	sales, err := env.sales.FindAll()
	require.NoError(t, err)
	assert.Empty(t, sales)
	assert.EqualValues(t, 0, env.auditCount(t))
}

func TestRecordSaleInputValidation(t *testing.T) {
	env := newTestEnv(t)
	maize := env.createProduct(t, "Maize Seeds", 1250, 500)

	cases := []struct {
		name string
		req  SaleRequest
	}{
		{"zero quantity", saleReq(maize.ID, 0, 500, "Customer")},
		{"negative quantity", saleReq(maize.ID, -3, 500, "Customer")},
		{"negative price", SaleRequest{ProductID: maize.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(-1), CustomerName: "Customer"}},
		{"blank customer", saleReq(maize.ID, 1, 500, "   ")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.selling.RecordSale(tc.req, actorKeeper)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Equal(t, 1250, env.productStock(t, maize.ID))
	assert.EqualValues(t, 0, env.auditCount(t))
}

func TestRecordSaleZeroPriceAllowed(t *testing.T) {
	env := newTestEnv(t)
	maize := env.createProduct(t, "Maize Seeds", 100, 10)

	sale, err := env.selling.RecordSale(saleReq(maize.ID, 5, 0, "Charity Drive"), actorKeeper)
	require.NoError(t, err)
	assert.True(t, sale.TotalAmount.IsZero())
	assert.Equal(t, 95, env.productStock(t, maize.ID))
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.selling.RecordSale(saleReq(uuid.New(), 1, 500, "Customer"), actorKeeper)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 0, env.auditCount(t))
}

func TestRecordSalePermissionDenied(t *testing.T) {
	env := newTestEnv(t)
	maize := env.createProduct(t, "Maize Seeds", 1250, 500)

	_, err := env.selling.RecordSale(saleReq(maize.ID, 50, 500, "Customer"), actorAuditor)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	assert.Equal(t, 1250, env.productStock(t, maize.ID))
	assert.EqualValues(t, 0, env.auditCount(t))
}

func TestRecordSaleDecimalPricing(t *testing.T) {
	env := newTestEnv(t)
	maize := env.createProduct(t, "Maize Seeds", 1000, 100)

	// 3 * 0.10 must be exactly 0.30, not 0.30000000000000004.
	price, err := decimal.NewFromString("0.10")
	require.NoError(t, err)

	sale, err := env.selling.RecordSale(SaleRequest{
		ProductID:    maize.ID,
		Quantity:     3,
		UnitPrice:    price,
		CustomerName: "Penny Buyer",
	}, actorKeeper)
	require.NoError(t, err)
	assert.Equal(t, "0.30", sale.TotalAmount.StringFixed(2))
}

func TestLedgerIsMostRecentFirst(t *testing.T) {
	env := newTestEnv(t)
	maize := env.createProduct(t, "Maize Seeds", 1000, 100)

	_, err := env.selling.RecordSale(saleReq(maize.ID, 10, 500, "First Buyer"), actorKeeper)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = env.selling.RecordSale(saleReq(maize.ID, 20, 500, "Second Buyer"), actorKeeper)
	require.NoError(t, err)

	sales, err := env.selling.GetAllSales()
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "Second Buyer", sales[0].CustomerName)
	assert.Equal(t, "First Buyer", sales[1].CustomerName)
}

func TestTotalRevenueSumsLedger(t *testing.T) {
	env := newTestEnv(t)
	maize := env.createProduct(t, "Maize Seeds", 1000, 100)

	_, err := env.selling.RecordSale(saleReq(maize.ID, 10, 500, "Buyer A"), actorKeeper)
	require.NoError(t, err)
	_, err = env.selling.RecordSale(saleReq(maize.ID, 4, 250, "Buyer B"), actorKeeper)
	require.NoError(t, err)

	total, err := env.selling.TotalRevenue()
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(6000)), "got %s", total)
}
