package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreMetrics(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	m := uc.StoreMetrics("suc-valle-oriente")
	require.NotNil(t, m)

	assert.Equal(t, 4, m.Totals.ProductCount)
	assert.Equal(t, 23, m.Totals.TotalStock)
	assert.Equal(t, 1, m.Totals.OfferCount)
	assert.Equal(t, 2, m.Totals.LowStockCount)
	// 6*8999 + 12*1699 + 3*1199 (oferta) + 2*1899 = 81777.
	assert.True(t, decimal.NewFromInt(81777).Equal(m.Totals.TotalValue), "valor total %s", m.Totals.TotalValue)

	require.Len(t, m.Categories, 3)
	assert.Equal(t, "Accesorios", m.Categories[0].CategoryName, "desglose ordenado por nombre")
	assert.Equal(t, "Consolas", m.Categories[1].CategoryName)
	assert.Equal(t, "Juegos", m.Categories[2].CategoryName)

	juegos := m.Categories[2]
	assert.Equal(t, 2, juegos.ProductCount)
	assert.Equal(t, 15, juegos.TotalStock)
	assert.Equal(t, 1, juegos.OfferCount)
}

func TestStoreMetrics_SucursalInexistente(t *testing.T) {
	uc, _ := newReadyUseCase(t)
	assert.Nil(t, uc.StoreMetrics("no-existe"))
}
