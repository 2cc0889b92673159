package report

import (
	"fmt"
	"strings"
)

// Builders de texto plano, pensados para compartirse por mensajería: mismas
// reglas de agrupación que el HTML, alineación con puntos y moneda en ASCII.

// Orden fijo de secciones del reporte de ventas.
var salesSectionOrder = []string{"Consolas", "Juegos", "Accesorios", OtherCategoryLabel}

const textNameWidth = 34

// padName alinea "nombre....x cantidad" rellenando con puntos.
func padName(name string, quantity int) string {
	qty := fmt.Sprintf("x%d", quantity)
	dots := textNameWidth - len([]rune(name))
	if dots < 2 {
		dots = 2
	}
	return name + strings.Repeat(".", dots) + qty
}

// BuildStoreListingText arma el listado de una sucursal en texto plano.
func BuildStoreListingText(section StoreSection) string {
	var b strings.Builder
	writeTextHeader(&b, section.StoreName, section.Location)
	writeSectionNotesText(&b, section)
	writeStoreText(&b, section)
	return b.String()
}

// BuildGlobalListingText arma el listado consolidado de la cadena.
func BuildGlobalListingText(sections []StoreSection) string {
	var b strings.Builder
	writeTextHeader(&b, "INVENTARIO GLOBAL", "")
	for _, section := range sections {
		b.WriteString("\n")
		writeTextHeader(&b, section.StoreName, section.Location)
		writeSectionNotesText(&b, section)
		writeStoreText(&b, section)
	}
	return b.String()
}

// BuildStoreSalesText arma la lista de venta de una sucursal con el orden
// fijo de secciones Consolas, Juegos, Accesorios, Otros. Solo incluye
// productos con existencia; lo demás no se ofrece.
func BuildStoreSalesText(section StoreSection) string {
	available, _ := SplitAvailability(section.Rows)

	buckets := make(map[string][]ProductRow, len(salesSectionOrder))
	known := make(map[string]bool, len(salesSectionOrder))
	for _, name := range salesSectionOrder {
		known[name] = true
	}
	for _, r := range available {
		name := strings.TrimSpace(r.CategoryName)
		if !known[name] {
			name = OtherCategoryLabel
		}
		buckets[name] = append(buckets[name], r)
	}

	var b strings.Builder
	writeTextHeader(&b, "LISTA DE VENTA - "+section.StoreName, section.Location)
	for _, name := range salesSectionOrder {
		rows := buckets[name]
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n== %s ==\n", strings.ToUpper(name))
		for _, r := range SortedByName(rows) {
			fmt.Fprintf(&b, "%s  %s", padName(r.Name, r.Quantity), formatCurrency(r.EffectivePrice()))
			if r.OfferPrice != nil {
				fmt.Fprintf(&b, " (antes %s)", formatCurrency(r.Price))
			}
			b.WriteString("\n")
			if r.Note != "" {
				fmt.Fprintf(&b, "   * %s\n", r.Note)
			}
		}
	}
	return b.String()
}

func writeTextHeader(b *strings.Builder, title, location string) {
	b.WriteString(title + "\n")
	if location != "" {
		b.WriteString(location + "\n")
	}
	b.WriteString(strings.Repeat("=", len([]rune(title))) + "\n")
}

func writeSectionNotesText(b *strings.Builder, section StoreSection) {
	if section.Comment != "" {
		b.WriteString(section.Comment + "\n")
	}
	if section.ArrivalNote != "" {
		b.WriteString("Próxima llegada: " + section.ArrivalNote + "\n")
	}
}

func writeStoreText(b *strings.Builder, section StoreSection) {
	available, outOfStock := SplitAvailability(section.Rows)

	for _, group := range GroupByCategory(available) {
		fmt.Fprintf(b, "\n-- %s --\n", group.Name)
		for _, r := range group.Rows {
			fmt.Fprintf(b, "%s  %s", padName(r.Name, r.Quantity), formatCurrency(r.EffectivePrice()))
			if r.OfferPrice != nil {
				fmt.Fprintf(b, " (antes %s)", formatCurrency(r.Price))
			}
			b.WriteString("\n")
		}
	}

	if len(outOfStock) > 0 {
		b.WriteString("\n-- AGOTADOS --\n")
		for _, r := range SortedByName(outOfStock) {
			fmt.Fprintf(b, "%s\n", padName(r.Name, 0))
		}
	}
}
