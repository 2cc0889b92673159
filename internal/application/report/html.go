package report

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// Builders HTML para listados compartibles (el colaborador de exportación
// convierte el HTML en PDF). Todo texto del usuario pasa por escape para
// impedir inyección de marcado.

const htmlHeader = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 24px; color: #222; }
h1 { font-size: 20px; color: #00467f; }
h2 { font-size: 16px; border-bottom: 2px solid #00467f; padding-bottom: 4px; }
h3 { font-size: 13px; color: #646464; margin-bottom: 4px; }
table { width: 100%; border-collapse: collapse; margin-bottom: 16px; }
th { text-align: left; background: #00467f; color: #fff; padding: 4px 8px; font-size: 12px; }
td { padding: 4px 8px; border-bottom: 1px solid #ddd; font-size: 12px; vertical-align: middle; }
.agotado { color: #b00020; }
.nota { font-style: italic; color: #646464; font-size: 12px; }
</style>
</head>
<body>
`

const htmlFooter = "</body>\n</html>\n"

// BuildStoreListingHTML arma el listado de una sucursal agrupado por
// categoría: disponibles primero y una sección final de agotados, cada
// renglón con su código de barras renderizado inline.
func BuildStoreListingHTML(section StoreSection) string {
	var b strings.Builder
	b.WriteString(htmlHeader)
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(section.StoreName))
	if section.Location != "" {
		fmt.Fprintf(&b, "<h3>%s</h3>\n", html.EscapeString(section.Location))
	}
	writeSectionNotes(&b, section)
	writeStoreTables(&b, section)
	b.WriteString(htmlFooter)
	return b.String()
}

// BuildGlobalListingHTML arma el listado consolidado de todas las
// sucursales, una tras otra en el mismo documento.
func BuildGlobalListingHTML(sections []StoreSection) string {
	var b strings.Builder
	b.WriteString(htmlHeader)
	b.WriteString("<h1>Inventario global</h1>\n")
	for _, section := range sections {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(section.StoreName))
		if section.Location != "" {
			fmt.Fprintf(&b, "<h3>%s</h3>\n", html.EscapeString(section.Location))
		}
		writeSectionNotes(&b, section)
		writeStoreTables(&b, section)
	}
	b.WriteString(htmlFooter)
	return b.String()
}

func writeSectionNotes(b *strings.Builder, section StoreSection) {
	if section.Comment != "" {
		fmt.Fprintf(b, "<p class=\"nota\">%s</p>\n", html.EscapeString(section.Comment))
	}
	if section.ArrivalNote != "" {
		fmt.Fprintf(b, "<p class=\"nota\">Próxima llegada: %s</p>\n", html.EscapeString(section.ArrivalNote))
	}
}

func writeStoreTables(b *strings.Builder, section StoreSection) {
	available, outOfStock := SplitAvailability(section.Rows)

	for _, group := range GroupByCategory(available) {
		fmt.Fprintf(b, "<h2>%s</h2>\n", html.EscapeString(group.Name))
		writeProductTable(b, group.Rows, false)
	}

	if len(outOfStock) > 0 {
		b.WriteString("<h2 class=\"agotado\">Agotados</h2>\n")
		writeProductTable(b, SortedByName(outOfStock), true)
	}
}

func writeProductTable(b *strings.Builder, rows []ProductRow, outOfStock bool) {
	b.WriteString("<table>\n<tr><th>Producto</th><th>Cantidad</th><th>Precio</th><th>Código</th></tr>\n")
	for _, r := range rows {
		price := formatCurrency(r.EffectivePrice())
		if r.OfferPrice != nil {
			price = fmt.Sprintf("%s <s>%s</s>", price, formatCurrency(r.Price))
		}
		class := ""
		if outOfStock {
			class = " class=\"agotado\""
		}
		fmt.Fprintf(b, "<tr%s><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>\n",
			class,
			html.EscapeString(r.Name),
			r.Quantity,
			price,
			BarcodeSVG(r.Barcode),
		)
		if r.Note != "" {
			fmt.Fprintf(b, "<tr><td colspan=\"4\" class=\"nota\">%s</td></tr>\n", html.EscapeString(r.Note))
		}
	}
	b.WriteString("</table>\n")
}

func SortedByName(rows []ProductRow) []ProductRow {
	out := make([]ProductRow, len(rows))
	copy(out, rows)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
