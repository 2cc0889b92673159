package report

import (
	"fmt"
	"strings"
)

// Tabla mínima de patrones Code 39. Cada carácter son nueve elementos que
// alternan barra/espacio empezando por barra; n = angosto, w = ancho.
var code39Patterns = map[rune]string{
	'0': "nnnwwnwnn", '1': "wnnwnnnnw", '2': "nnwwnnnnw", '3': "wnwwnnnnn",
	'4': "nnnwwnnnw", '5': "wnnwwnnnn", '6': "nnwwwnnnn", '7': "nnnwnnwnw",
	'8': "wnnwnnwnn", '9': "nnwwnnwnn",
	'A': "wnnnnwnnw", 'B': "nnwnnwnnw", 'C': "wnwnnwnnn", 'D': "nnnnwwnnw",
	'E': "wnnnwwnnn", 'F': "nnwnwwnnn", 'G': "nnnnnwwnw", 'H': "wnnnnwwnn",
	'I': "nnwnnwwnn", 'J': "nnnnwwwnn", 'K': "wnnnnnnww", 'L': "nnwnnnnww",
	'M': "wnwnnnnwn", 'N': "nnnnwnnww", 'O': "wnnnwnnwn", 'P': "nnwnwnnwn",
	'Q': "nnnnnnwww", 'R': "wnnnnnwwn", 'S': "nnwnnnwwn", 'T': "nnnnwnwwn",
	'U': "wwnnnnnnw", 'V': "nwwnnnnnw", 'W': "wwwnnnnnn", 'X': "nwnnwnnnw",
	'Y': "wwnnwnnnn", 'Z': "nwwnwnnnn",
	'-': "nwnnnnwnw", '.': "wwnnnnwnn", ' ': "nwwnnnwnn", '*': "nwnnwnwnn",
	'$': "nwnwnwnnn", '/': "nwnwnnnwn", '+': "nwnnnwnwn", '%': "nnnwnwnwn",
}

const (
	barcodeNarrow = 2  // px por módulo angosto
	barcodeWide   = 5  // px por módulo ancho
	barcodeHeight = 40 // px
)

// BarcodeSVG dibuja el código como barras Code 39 en un SVG inline, sin
// dependencias de render externas (el HTML debe funcionar sin conexión).
// El código se envuelve en los asteriscos de inicio/fin. Devuelve cadena
// vacía si algún carácter no es codificable.
func BarcodeSVG(code string) string {
	text := "*" + strings.ToUpper(strings.TrimSpace(code)) + "*"
	if len(text) == 2 {
		return ""
	}

	type bar struct{ x, width int }
	var bars []bar
	x := 0
	for _, ch := range text {
		pattern, ok := code39Patterns[ch]
		if !ok {
			return ""
		}
		for i, m := range pattern {
			width := barcodeNarrow
			if m == 'w' {
				width = barcodeWide
			}
			if i%2 == 0 { // posiciones pares son barras, impares espacios
				bars = append(bars, bar{x: x, width: width})
			}
			x += width
		}
		x += barcodeNarrow // espacio entre caracteres
	}
	totalWidth := x - barcodeNarrow

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		totalWidth, barcodeHeight, totalWidth, barcodeHeight)
	for _, r := range bars {
		fmt.Fprintf(&b, `<rect x="%d" y="0" width="%d" height="%d" fill="#000"/>`, r.x, r.width, barcodeHeight)
	}
	b.WriteString(`</svg>`)
	return b.String()
}
