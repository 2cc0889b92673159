package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvaldez/inventario-sucursales/internal/application/inventory"
	"github.com/hvaldez/inventario-sucursales/internal/application/report"
	"github.com/hvaldez/inventario-sucursales/internal/domain"
)

type memGateway struct {
	data map[string][]byte
}

func (g *memGateway) Get(key string) ([]byte, error) { return g.data[key], nil }
func (g *memGateway) Set(key string, value []byte) error {
	g.data[key] = value
	return nil
}
func (g *memGateway) Clear() error {
	g.data = map[string][]byte{}
	return nil
}

type stubRenderer struct {
	storeCalls  int
	globalCalls int
}

func (r *stubRenderer) RenderStoreListing(section report.StoreSection) ([]byte, error) {
	r.storeCalls++
	return []byte("%PDF-" + section.StoreName), nil
}

func (r *stubRenderer) RenderGlobalListing(sections []report.StoreSection) ([]byte, error) {
	r.globalCalls++
	return []byte("%PDF-global"), nil
}

func newReportUseCase(t *testing.T, pdf report.DocumentRenderer) *report.UseCase {
	t.Helper()
	inv := inventory.NewUseCase(&memGateway{data: map[string][]byte{}}, nil, nil)
	require.NoError(t, inv.ResetToDefaults())
	return report.NewUseCase(inv, pdf)
}

func TestStoreListingText_UneCategoriasPorNombre(t *testing.T) {
	uc := newReportUseCase(t, nil)

	out, err := uc.StoreListingText("suc-valle-oriente", report.Options{
		Comment:     "Corte semanal",
		ArrivalNote: "Reposición el viernes",
	})
	require.NoError(t, err)

	// Los renglones llevan el nombre de la categoría, no su id.
	assert.Contains(t, out, "-- Consolas --")
	assert.Contains(t, out, "-- Juegos --")
	assert.NotContains(t, out, "cat-vo-")
	assert.Contains(t, out, "Corte semanal")
	assert.Contains(t, out, "Próxima llegada: Reposición el viernes")

	// La oferta del dataset aparece con precio efectivo y anterior.
	assert.Contains(t, out, "Mario Kart 8 Deluxe")
	assert.Contains(t, out, "(antes $1,499.00)")
}

func TestStoreListingText_SucursalInexistente(t *testing.T) {
	uc := newReportUseCase(t, nil)
	_, err := uc.StoreListingText("no-existe", report.Options{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreListingHTML_ImprimeCodigoHeredado(t *testing.T) {
	uc := newReportUseCase(t, nil)

	// prod-vo-control no tiene códigos propios: en el reporte sale el SKU
	// maestro de su plantilla, renderizado como barras.
	out, err := uc.StoreListingHTML("suc-valle-oriente", report.Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "Control Pro Inalámbrico")
	assert.Contains(t, out, "<svg")
}

func TestGlobalListing_TodasLasSucursales(t *testing.T) {
	uc := newReportUseCase(t, nil)

	text := uc.GlobalListingText()
	assert.True(t, strings.HasPrefix(text, "INVENTARIO GLOBAL\n"))
	assert.Contains(t, text, "Game Center Valle Oriente")
	assert.Contains(t, text, "Game Center Plaza Fiesta")

	html := uc.GlobalListingHTML()
	assert.Contains(t, html, "<h1>Inventario global</h1>")
	assert.Contains(t, html, "Game Center Valle Oriente")
}

func TestStoreSalesText_ExcluyeAgotados(t *testing.T) {
	uc := newReportUseCase(t, nil)

	out, err := uc.StoreSalesText("suc-plaza-fiesta", report.Options{})
	require.NoError(t, err)
	assert.NotContains(t, out, "Super Smash Bros Ultimate", "sin existencia no se ofrece")
	assert.Contains(t, out, "Consola Switch OLED Blanca")
}

func TestListingPDF(t *testing.T) {
	renderer := &stubRenderer{}
	uc := newReportUseCase(t, renderer)

	raw, err := uc.StoreListingPDF("suc-valle-oriente", report.Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, 1, renderer.storeCalls)

	raw, err = uc.GlobalListingPDF()
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, 1, renderer.globalCalls)

	_, err = uc.StoreListingPDF("no-existe", report.Options{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListingPDF_SinRenderer(t *testing.T) {
	uc := newReportUseCase(t, nil)
	_, err := uc.StoreListingPDF("suc-valle-oriente", report.Options{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
