package report

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.Make("es-MX"))

// formatCurrency formatea un monto en pesos con separador de miles y lo
// deja seguro para texto plano: los espacios duros del locale se cambian
// por espacios normales y no queda ningún símbolo fuera de ASCII.
func formatCurrency(v decimal.Decimal) string {
	f, _ := v.Float64()
	s := currencyPrinter.Sprintf("$%.2f", f)
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "MXN", "")
	return strings.TrimSpace(s)
}
