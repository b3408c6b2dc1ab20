// Package planning contiene el motor puro de planeación de pagos a proveedores:
// aritmética de fechas a granularidad de día, puntaje de prioridad por
// estrategia, y cálculo de mora y descuento por pronto pago.
//
// Todo el paquete es computación pura: el "ahora" siempre llega como parámetro
// explícito para que cada corrida sea reproducible y testeable.
package planning

import (
	"fmt"
	"time"

	"github.com/tu-usuario/pagos-pro/internal/domain"
)

// DateLayout formato de fecha aceptado en entradas externas (ISO, solo fecha).
const DateLayout = "2006-01-02"

// AtMidnight normaliza una fecha a medianoche UTC conservando año/mes/día.
// Ambos operandos de una resta deben pasar por aquí para que la diferencia
// sea siempre un número exacto de días, sin deriva por zona horaria ni DST.
func AtMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween devuelve los días calendario completos entre a y b (b - a).
// Negativo significa que a es posterior a b; el caller recorta a cero donde
// la semántica ("días de mora", "días de anticipación") lo exige.
func DaysBetween(a, b time.Time) int {
	return int(AtMidnight(b).Sub(AtMidnight(a)).Hours() / 24)
}

// ParseDate parsea una fecha estricta YYYY-MM-DD. Un formato inválido retorna
// domain.ErrInvalidDate en lugar de coercionar silenciosamente.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q no cumple el formato %s", domain.ErrInvalidDate, s, DateLayout)
	}
	return t, nil
}
