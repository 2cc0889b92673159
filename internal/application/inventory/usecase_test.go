package inventory_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvaldez/inventario-sucursales/internal/application/dto"
	"github.com/hvaldez/inventario-sucursales/internal/application/inventory"
	"github.com/hvaldez/inventario-sucursales/internal/domain"
	"github.com/hvaldez/inventario-sucursales/internal/domain/entity"
)

// fakeGateway guarda el blob en memoria y cuenta lecturas y escrituras para
// verificar cuándo persiste la fachada.
type fakeGateway struct {
	data map[string][]byte
	gets int
	sets int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{data: map[string][]byte{}}
}

func (g *fakeGateway) Get(key string) ([]byte, error) {
	g.gets++
	raw, ok := g.data[key]
	if !ok {
		return nil, nil
	}
	return raw, nil
}

func (g *fakeGateway) Set(key string, value []byte) error {
	g.sets++
	g.data[key] = value
	return nil
}

func (g *fakeGateway) Clear() error {
	g.data = map[string][]byte{}
	return nil
}

func newReadyUseCase(t *testing.T) (*inventory.UseCase, *fakeGateway) {
	t.Helper()
	gw := newFakeGateway()
	uc := inventory.NewUseCase(gw, nil, nil)
	require.NoError(t, uc.ResetToDefaults())
	return uc, gw
}

func TestLoad_Idempotente(t *testing.T) {
	gw := newFakeGateway()
	uc := inventory.NewUseCase(gw, nil, nil)

	require.NoError(t, uc.Load())
	assert.True(t, uc.Ready())
	assert.Equal(t, 1, gw.gets)
	assert.Equal(t, 1, gw.sets, "sin blob previo se persiste el dataset por defecto")

	// Segunda carga: no vuelve a tocar el almacenamiento.
	require.NoError(t, uc.Load())
	assert.Equal(t, 1, gw.gets)
	assert.Equal(t, 1, gw.sets)
}

func TestLoad_BlobCorrupto(t *testing.T) {
	gw := newFakeGateway()
	gw.data[inventory.StorageKey] = []byte("{esto no es json")
	uc := inventory.NewUseCase(gw, nil, nil)

	require.NoError(t, uc.Load(), "un blob corrupto nunca llega como error al caller")
	assert.True(t, uc.Ready())
	assert.Len(t, uc.Stores().Items, 2, "cae al dataset por defecto")
}

func TestLoad_BlobExistente(t *testing.T) {
	gw := newFakeGateway()
	seed := inventory.NewUseCase(gw, nil, nil)
	require.NoError(t, seed.ResetToDefaults())
	setsAfterSeed := gw.sets

	uc := inventory.NewUseCase(gw, nil, nil)
	require.NoError(t, uc.Load())
	assert.Equal(t, setsAfterSeed, gw.sets, "con blob válido no hay reescritura")
	assert.Len(t, uc.Stores().Items, 2)
	assert.Len(t, uc.SnapshotProducts(), 6)
}

func TestAddStore(t *testing.T) {
	uc, gw := newReadyUseCase(t)
	before := len(uc.Stores().Items)
	setsBefore := gw.sets

	created, err := uc.AddStore(dto.CreateStoreRequest{
		Name:     "Nintendo Store Monterrey",
		Location: "Plaza Fiesta San Agustín",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Nintendo Store Monterrey", created.Name)
	assert.Equal(t, setsBefore+1, gw.sets)

	list := uc.Stores()
	require.Len(t, list.Items, before+1)
	for _, s := range list.Items[:before] {
		assert.NotEqual(t, s.ID, created.ID, "id nuevo y único")
	}
	assert.Equal(t, created.ID, list.Items[before].ID)
}

func TestAddStore_SinNombre(t *testing.T) {
	uc, _ := newReadyUseCase(t)
	_, err := uc.AddStore(dto.CreateStoreRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStore_NoExiste(t *testing.T) {
	uc, _ := newReadyUseCase(t)
	name := "Otro nombre"
	got, err := uc.UpdateStore("no-existe", dto.UpdateStoreRequest{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, got, "falla silenciosa, sin error")
}

func TestRemoveStore_Cascada(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	require.NoError(t, uc.RemoveStore("suc-valle-oriente"))

	assert.Len(t, uc.Stores().Items, 1)
	assert.Empty(t, uc.Categories("suc-valle-oriente").Items)
	assert.Empty(t, uc.Products("suc-valle-oriente", "").Items)
	for _, m := range uc.Movements("").Items {
		assert.NotEqual(t, "suc-valle-oriente", m.StoreID, "los movimientos de la sucursal también se van")
	}

	assert.ErrorIs(t, uc.RemoveStore("suc-valle-oriente"), domain.ErrNotFound)
}

func TestAddCategory_Duplicada(t *testing.T) {
	uc, gw := newReadyUseCase(t)

	_, err := uc.AddCategory(dto.CreateCategoryRequest{StoreID: "suc-valle-oriente", Name: "Pruebas"})
	require.NoError(t, err)

	before := len(uc.Categories("").Items)
	setsBefore := gw.sets

	// Mismo nombre normalizado (mayúsculas y espacios no cuentan).
	_, err = uc.AddCategory(dto.CreateCategoryRequest{StoreID: "suc-valle-oriente", Name: "  pruebas "})
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)
	assert.Len(t, uc.Categories("").Items, before, "el estado no se mutó")
	assert.Equal(t, setsBefore, gw.sets, "tampoco se persistió nada")

	// El mismo nombre en otra sucursal sí es válido.
	_, err = uc.AddCategory(dto.CreateCategoryRequest{StoreID: "suc-plaza-fiesta", Name: "Pruebas"})
	assert.NoError(t, err)
}

func TestRemoveCategory_Cascada(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	require.NoError(t, uc.RemoveCategory("cat-vo-juegos"))
	assert.Empty(t, uc.Products("", "cat-vo-juegos").Items)
	assert.Empty(t, uc.Movements("prod-vo-zelda").Items)
	assert.ErrorIs(t, uc.RemoveCategory("cat-vo-juegos"), domain.ErrNotFound)
}

func TestAddProduct_ConOferta(t *testing.T) {
	uc, _ := newReadyUseCase(t)
	offer := decimal.NewFromInt(8999)

	created, err := uc.AddProduct(dto.CreateProductRequest{
		StoreID:    "suc-valle-oriente",
		CategoryID: "cat-vo-consolas",
		Name:       "Consola Switch 2",
		Unit:       "pieza",
		Price:      decimal.NewFromInt(9499),
		Stock:      5,
		HasOffer:   true,
		OfferPrice: &offer,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.HasOffer)
	require.NotNil(t, created.OfferPrice)
	assert.True(t, offer.Equal(*created.OfferPrice))

	// Aparece filtrado por sucursal y categoría.
	list := uc.Products("suc-valle-oriente", "cat-vo-consolas")
	found := false
	for _, p := range list.Items {
		if p.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)

	// El alta con stock inicial registra un movimiento de carga inicial.
	movs := uc.Movements(created.ID)
	require.Len(t, movs.Items, 1)
	assert.Equal(t, entity.MovementKindInitial, movs.Items[0].Kind)
	assert.Equal(t, 5, movs.Items[0].ResultingStock)
}

func TestCategoriaYProductoNuevos_ExtremoAExtremo(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	category, err := uc.AddCategory(dto.CreateCategoryRequest{
		StoreID: "suc-valle-oriente",
		Name:    "Pruebas",
	})
	require.NoError(t, err)

	offer := decimal.NewFromInt(8999)
	created, err := uc.AddProduct(dto.CreateProductRequest{
		StoreID:    "suc-valle-oriente",
		CategoryID: category.ID,
		Name:       "X",
		Price:      decimal.NewFromInt(9499),
		Stock:      5,
		HasOffer:   true,
		OfferPrice: &offer,
	})
	require.NoError(t, err)

	list := uc.Products("", category.ID)
	require.Len(t, list.Items, 1)
	got := list.Items[0]
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.HasOffer)
	require.NotNil(t, got.OfferPrice)
	assert.True(t, offer.Equal(*got.OfferPrice))
	assert.Equal(t, 5, got.Stock)
}

func TestAddProduct_OfertaSinPrecio(t *testing.T) {
	uc, _ := newReadyUseCase(t)
	_, err := uc.AddProduct(dto.CreateProductRequest{
		StoreID:    "suc-valle-oriente",
		CategoryID: "cat-vo-consolas",
		Name:       "Consola",
		Price:      decimal.NewFromInt(100),
		HasOffer:   true,
	})
	assert.ErrorIs(t, err, domain.ErrOfferWithoutPrice)
}

func TestAddProduct_OfertaApagadaIgnoraPrecio(t *testing.T) {
	uc, _ := newReadyUseCase(t)
	offer := decimal.NewFromInt(50)

	created, err := uc.AddProduct(dto.CreateProductRequest{
		StoreID:    "suc-valle-oriente",
		CategoryID: "cat-vo-consolas",
		Name:       "Sin oferta",
		Price:      decimal.NewFromInt(100),
		HasOffer:   false,
		OfferPrice: &offer,
	})
	require.NoError(t, err)
	assert.False(t, created.HasOffer)
	assert.Nil(t, created.OfferPrice, "sin oferta activa no se conserva precio de oferta")
}

func TestAddProduct_CategoriaDeOtraSucursal(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	// cat-pf-consolas pertenece a Plaza Fiesta, no a Valle Oriente.
	_, err := uc.AddProduct(dto.CreateProductRequest{
		StoreID:    "suc-valle-oriente",
		CategoryID: "cat-pf-consolas",
		Name:       "Cruce inválido",
		Price:      decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddProduct_PrellenaDesdePlantilla(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	created, err := uc.AddProduct(dto.CreateProductRequest{
		StoreID:    "suc-plaza-fiesta",
		CategoryID: "cat-pf-consolas",
		TemplateID: "tpl-switch-oled",
		Stock:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Consola Switch OLED Blanca", created.Name, "nombre heredado de la plantilla")
	assert.False(t, created.Price.IsZero(), "precio base heredado de la plantilla")

	// La referencia queda registrada en la plantilla.
	tpl, ok := uc.TemplateIndex()["tpl-switch-oled"]
	require.True(t, ok)
	found := false
	for _, ref := range tpl.References {
		if ref.StoreID == "suc-plaza-fiesta" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestUpdateProduct_NoExiste(t *testing.T) {
	uc, _ := newReadyUseCase(t)
	name := "Nuevo"
	got, err := uc.UpdateProduct("no-existe", dto.UpdateProductRequest{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateProduct_HistorialDePrecios(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	before := uc.ProductByID("prod-vo-zelda")
	require.NotNil(t, before)
	historyBefore := len(before.PriceHistory)

	newPrice := decimal.NewFromInt(1499)
	updated, err := uc.UpdateProduct("prod-vo-zelda", dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.True(t, newPrice.Equal(updated.Price))
	require.NotNil(t, updated.PreviousPrice)
	assert.True(t, before.Price.Equal(*updated.PreviousPrice))
	require.Len(t, updated.PriceHistory, historyBefore+1)
	last := updated.PriceHistory[len(updated.PriceHistory)-1]
	assert.True(t, newPrice.Equal(last.Price))
	assert.NotNil(t, updated.PriceUpdatedAt)

	// Mismo precio otra vez: no crece el historial.
	again, err := uc.UpdateProduct("prod-vo-zelda", dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Len(t, again.PriceHistory, historyBefore+1)
}

func TestUpdateProduct_OfertaRederivada(t *testing.T) {
	uc, _ := newReadyUseCase(t)
	offer := decimal.NewFromInt(1299)
	on, off := true, false

	// Activar con precio.
	updated, err := uc.UpdateProduct("prod-vo-zelda", dto.UpdateProductRequest{HasOffer: &on, OfferPrice: &offer})
	require.NoError(t, err)
	assert.True(t, updated.HasOffer)

	// Activar de nuevo sin precio conserva el vigente.
	updated, err = uc.UpdateProduct("prod-vo-zelda", dto.UpdateProductRequest{HasOffer: &on})
	require.NoError(t, err)
	require.NotNil(t, updated.OfferPrice)
	assert.True(t, offer.Equal(*updated.OfferPrice))

	// Apagar limpia el precio de oferta.
	updated, err = uc.UpdateProduct("prod-vo-zelda", dto.UpdateProductRequest{HasOffer: &off})
	require.NoError(t, err)
	assert.False(t, updated.HasOffer)
	assert.Nil(t, updated.OfferPrice)

	// Activar sin precio y sin oferta vigente es inválido.
	_, err = uc.UpdateProduct("prod-vo-zelda", dto.UpdateProductRequest{HasOffer: &on})
	assert.ErrorIs(t, err, domain.ErrOfferWithoutPrice)
}

func TestSetProductStock_Negativo(t *testing.T) {
	uc, _ := newReadyUseCase(t)
	_, err := uc.SetProductStock("prod-vo-zelda", -1)
	assert.ErrorIs(t, err, domain.ErrNegativeStock)
}

func TestToggleOffer_SinPrecio(t *testing.T) {
	uc, _ := newReadyUseCase(t)
	_, err := uc.ToggleOffer("prod-vo-zelda", true, nil)
	assert.ErrorIs(t, err, domain.ErrOfferWithoutPrice)
}

func TestAdjustStock(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	before := uc.ProductByID("prod-vo-zelda")
	require.NotNil(t, before)

	mov, err := uc.AdjustStock("prod-vo-zelda", dto.AdjustStockRequest{
		Delta:  -2,
		Reason: entity.MovementReasonSale,
		Note:   "venta mostrador",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementKindDecrease, mov.Kind)
	assert.Equal(t, 2, mov.Quantity, "la cantidad siempre es positiva")
	assert.Equal(t, before.Stock, mov.PreviousStock)
	assert.Equal(t, before.Stock-2, mov.ResultingStock)

	after := uc.ProductByID("prod-vo-zelda")
	assert.Equal(t, before.Stock-2, after.Stock)

	movs := uc.Movements("prod-vo-zelda")
	assert.Equal(t, mov.ID, movs.Items[len(movs.Items)-1].ID)
}

func TestAdjustStock_RechazaNegativo(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	before := uc.ProductByID("prod-vo-zelda")
	require.NotNil(t, before)
	movsBefore := len(uc.Movements("prod-vo-zelda").Items)

	_, err := uc.AdjustStock("prod-vo-zelda", dto.AdjustStockRequest{
		Delta:  -(before.Stock + 1),
		Reason: entity.MovementReasonSale,
	})
	assert.ErrorIs(t, err, domain.ErrNegativeStock)

	// Se rechaza completo, no se recorta a cero.
	after := uc.ProductByID("prod-vo-zelda")
	assert.Equal(t, before.Stock, after.Stock)
	assert.Len(t, uc.Movements("prod-vo-zelda").Items, movsBefore)
}

func TestAdjustStock_Validaciones(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	_, err := uc.AdjustStock("prod-vo-zelda", dto.AdjustStockRequest{Delta: 0, Reason: entity.MovementReasonSale})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AdjustStock("prod-vo-zelda", dto.AdjustStockRequest{Delta: 1, Reason: "regalo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AdjustStock("no-existe", dto.AdjustStockRequest{Delta: 1, Reason: entity.MovementReasonRestock})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveProduct(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	require.NoError(t, uc.RemoveProduct("prod-vo-zelda"))
	assert.Nil(t, uc.ProductByID("prod-vo-zelda"))
	assert.Empty(t, uc.Movements("prod-vo-zelda").Items)
	assert.True(t, errors.Is(uc.RemoveProduct("prod-vo-zelda"), domain.ErrNotFound))
}

func TestSearchProducts_FachadaConPlantillas(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	// El alias vive solo en la plantilla tpl-switch-oled; los dos productos
	// que la referencian deben aparecer.
	res := uc.SearchProducts("045496882297")
	require.Len(t, res.Items, 2)
	assert.Equal(t, "prod-vo-oled", res.Items[0].ID)
	assert.Equal(t, "prod-pf-oled", res.Items[1].ID)

	// Consulta vacía: catálogo completo.
	assert.Len(t, uc.SearchProducts("").Items, 6)
}

func TestScanBarcode_ResuelveSucursal(t *testing.T) {
	uc, _ := newReadyUseCase(t)

	res := uc.ScanBarcode("045496882280")
	require.Len(t, res.Items, 2, "código directo en Valle Oriente y por plantilla en Plaza Fiesta")
	assert.Equal(t, "prod-vo-oled", res.Items[0].Product.ID)
	assert.Equal(t, "Game Center Valle Oriente", res.Items[0].StoreName)
	assert.Equal(t, "prod-pf-oled", res.Items[1].Product.ID)
	assert.Equal(t, "Game Center Plaza Fiesta", res.Items[1].StoreName)
}
