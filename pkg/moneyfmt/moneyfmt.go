// Package moneyfmt formatea montos para superficies de presentación (PDF,
// reportes) con separadores localizados. Las superficies de integración
// (CSV, XML, JSON) usan decimal.StringFixed sin formato.
package moneyfmt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.LatinAmericanSpanish)

// Format devuelve el monto redondeado a centavos con separador de miles.
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("$ %.2f", f)
}

// FormatPercent devuelve una tasa porcentual para mostrar (ej: "5.00 %").
func FormatPercent(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f %%", f)
}
