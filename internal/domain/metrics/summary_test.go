package metrics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvaldez/inventario-sucursales/internal/domain/entity"
	"github.com/hvaldez/inventario-sucursales/internal/domain/metrics"
)

func TestSummarizeCategoryProducts_Vacio(t *testing.T) {
	s := metrics.SummarizeCategoryProducts(nil)

	assert.Equal(t, 0, s.ProductCount)
	assert.Equal(t, 0, s.TotalStock)
	assert.True(t, s.TotalValue.IsZero())
	assert.Equal(t, 0, s.OfferCount)
	assert.Equal(t, 0, s.LowStockCount)
}

func TestSummarizeCategoryProducts(t *testing.T) {
	products := []entity.Product{
		{
			ID: "p1", Stock: 4,
			Price: decimal.NewFromInt(200),
		},
		{
			ID: "p2", Stock: 2,
			Price: decimal.NewFromInt(150),
			Offer: &entity.Offer{Price: decimal.NewFromInt(120)},
		},
		{
			ID: "p3", Stock: 1,
			Price: decimal.NewFromInt(80),
			Offer: &entity.Offer{Price: decimal.NewFromInt(70)},
		},
	}

	s := metrics.SummarizeCategoryProducts(products)

	assert.Equal(t, 3, s.ProductCount)
	assert.Equal(t, 7, s.TotalStock)
	// El valor usa el precio efectivo (oferta cuando existe):
	// 4*200 + 2*120 + 1*70 = 1110.
	assert.True(t, decimal.NewFromInt(1110).Equal(s.TotalValue), "valor total %s", s.TotalValue)
	assert.Equal(t, 2, s.OfferCount)
	assert.Equal(t, 2, s.LowStockCount, "stock 2 y 1 quedan en o bajo el umbral")
}

func TestSummarizeCategoryProducts_UmbralInclusivo(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Stock: metrics.LowStockThreshold, Price: decimal.NewFromInt(10)},
		{ID: "p2", Stock: metrics.LowStockThreshold + 1, Price: decimal.NewFromInt(10)},
		{ID: "p3", Stock: 0, Price: decimal.NewFromInt(10)},
	}

	s := metrics.SummarizeCategoryProducts(products)
	assert.Equal(t, 2, s.LowStockCount, "el umbral es inclusivo y el agotado también cuenta")
}

func TestSummarizeByCategory(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", CategoryID: "c1", Stock: 1, Price: decimal.NewFromInt(100)},
		{ID: "p2", CategoryID: "c2", Stock: 5, Price: decimal.NewFromInt(50)},
		{ID: "p3", CategoryID: "c1", Stock: 2, Price: decimal.NewFromInt(30)},
	}

	byCat := metrics.SummarizeByCategory(products)
	require.Len(t, byCat, 2)

	c1 := byCat["c1"]
	assert.Equal(t, 2, c1.ProductCount)
	assert.Equal(t, 3, c1.TotalStock)
	assert.True(t, decimal.NewFromInt(160).Equal(c1.TotalValue))

	c2 := byCat["c2"]
	assert.Equal(t, 1, c2.ProductCount)
	assert.True(t, decimal.NewFromInt(250).Equal(c2.TotalValue))
}
