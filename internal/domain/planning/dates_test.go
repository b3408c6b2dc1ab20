package planning_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pagos-pro/internal/domain"
	"github.com/tu-usuario/pagos-pro/internal/domain/planning"
)

func TestDaysBetween_DiasCompletos(t *testing.T) {
	a := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 15, planning.DaysBetween(a, b))
	assert.Equal(t, -15, planning.DaysBetween(b, a), "el orden invertido da el negativo")
	assert.Equal(t, 0, planning.DaysBetween(a, a))
}

func TestDaysBetween_NormalizaLaHoraDelDia(t *testing.T) {
	// 23:59 de un día vs 00:01 del siguiente: 1 día calendario exacto.
	a := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, planning.DaysBetween(a, b),
		"ambos operandos se normalizan a medianoche antes de restar")
}

func TestDaysBetween_ZonasHorariasDistintas(t *testing.T) {
	bogota := time.FixedZone("America/Bogota", -5*60*60)
	// El mismo día calendario visto desde dos zonas no debe producir deriva.
	a := time.Date(2026, 3, 10, 20, 0, 0, 0, bogota)
	b := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, planning.DaysBetween(a, b),
		"la normalización usa solo año/mes/día de cada operando")
}

func TestDaysBetween_CruceDeMes(t *testing.T) {
	a := time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	// Enero 28 → Marzo 3 de 2026 (no bisiesto): 3 + 28 + 3 = 34 días.
	assert.Equal(t, 34, planning.DaysBetween(a, b))
}

func TestAtMidnight_TruncaLaHora(t *testing.T) {
	tt := time.Date(2026, 7, 4, 18, 45, 12, 999, time.UTC)
	got := planning.AtMidnight(tt)

	assert.Equal(t, time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_FormatoValido(t *testing.T) {
	got, err := planning.ParseDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_FormatoInvalidoRetornaErrInvalidDate(t *testing.T) {
	for _, s := range []string{"10/03/2026", "2026-13-40", "ayer", ""} {
		_, err := planning.ParseDate(s)
		require.Error(t, err, "entrada %q", s)
		assert.ErrorIs(t, err, domain.ErrInvalidDate,
			"el parseo fallido debe exponer ErrInvalidDate, no una coerción silenciosa")
	}
}
