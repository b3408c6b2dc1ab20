package planning

import (
	"time"

	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
)

// Strategy selecciona el objetivo de negocio que ordena las facturas.
type Strategy string

// Estrategias de priorización disponibles. Un valor desconocido no falla:
// cae a la fórmula por defecto (degradación controlada).
const (
	StrategyByDueDate         Strategy = "BY_DUE_DATE"
	StrategyByImportance      Strategy = "BY_IMPORTANCE"
	StrategyMinimizePenalties Strategy = "MINIMIZE_PENALTIES"
	StrategyMaximizeDiscounts Strategy = "MAXIMIZE_DISCOUNTS"
	StrategyOptimizeCashFlow  Strategy = "OPTIMIZE_CASH_FLOW"
)

// Strategies lista las estrategias soportadas (para documentación y UI).
func Strategies() []Strategy {
	return []Strategy{
		StrategyByDueDate,
		StrategyByImportance,
		StrategyMinimizePenalties,
		StrategyMaximizeDiscounts,
		StrategyOptimizeCashFlow,
	}
}

// IsKnown indica si la estrategia es una de las soportadas.
func (s Strategy) IsKnown() bool {
	switch s {
	case StrategyByDueDate, StrategyByImportance, StrategyMinimizePenalties,
		StrategyMaximizeDiscounts, StrategyOptimizeCashFlow:
		return true
	}
	return false
}

// ScoreResult puntaje de urgencia de una factura. Efímero: se recalcula en
// cada corrida relativo al "ahora" inyectado.
type ScoreResult struct {
	InvoiceID string
	Score     float64
}

// scoreFunc calcula el puntaje crudo de una estrategia. El recorte a cero
// se aplica una sola vez en Score, no en cada fórmula.
type scoreFunc func(inv *entity.Invoice, daysUntilDue int) float64

// scoreByStrategy despacho por estrategia: una función pura por fórmula.
// Agregar una estrategia es agregar una entrada, no tocar un condicional.
var scoreByStrategy = map[Strategy]scoreFunc{
	StrategyByDueDate:         scoreByDueDate,
	StrategyByImportance:      scoreByImportance,
	StrategyMinimizePenalties: scoreMinimizePenalties,
	StrategyMaximizeDiscounts: scoreMaximizeDiscounts,
	StrategyOptimizeCashFlow:  scoreOptimizeCashFlow,
}

// Tabla de puntaje base por importancia (estrategia BY_IMPORTANCE).
var importanceBase = map[entity.Importance]float64{
	entity.ImportanceCritical: 1000,
	entity.ImportanceHigh:     750,
	entity.ImportanceNormal:   500,
	entity.ImportanceLow:      250,
}

// Tabla de peso por importancia para el compuesto OPTIMIZE_CASH_FLOW.
var importanceWeight = map[entity.Importance]float64{
	entity.ImportanceCritical: 500,
	entity.ImportanceHigh:     300,
	entity.ImportanceNormal:   100,
	entity.ImportanceLow:      0,
}

// Score calcula el puntaje de urgencia de la factura bajo la estrategia dada,
// relativo a now. Invariante duro: el resultado nunca es negativo, sin importar
// lo que produzca la fórmula cruda. Un proveedor ausente usa defaults seguros
// (importancia NORMAL, tasas en cero) y jamás causa pánico.
func Score(inv *entity.Invoice, strategy Strategy, now time.Time) float64 {
	daysUntilDue := DaysBetween(now, inv.DueDate)

	fn, ok := scoreByStrategy[strategy]
	if !ok {
		fn = scoreDefault
	}
	raw := fn(inv, daysUntilDue)
	if raw < 0 {
		return 0
	}
	return raw
}

// scoreByDueDate: más cercana al vencimiento, más alta. Una factura vencida
// recibe un bono creciente (x10 por día de mora) para dominar el ranking por
// encima de cualquier factura futura.
func scoreByDueDate(_ *entity.Invoice, daysUntilDue int) float64 {
	raw := 1000 - float64(daysUntilDue)
	if daysUntilDue < 0 {
		raw += float64(-daysUntilDue) * 10
	}
	return raw
}

// scoreByImportance: base por nivel de importancia del proveedor; restar los
// días al vencimiento desempata dentro del mismo nivel por cercanía de fecha.
func scoreByImportance(inv *entity.Invoice, daysUntilDue int) float64 {
	return importanceBase[inv.ImportanceOrDefault()] - float64(daysUntilDue)
}

// scoreMinimizePenalties: si hay tasa de mora, ranquear por la magnitud de la
// exposición financiera (tasa * monto * 10); sin tasa, caer a urgencia simple.
func scoreMinimizePenalties(inv *entity.Invoice, daysUntilDue int) float64 {
	rate := inv.LatePenaltyRate()
	if rate.IsPositive() {
		exposure, _ := rate.Mul(inv.Amount).Float64()
		return exposure * 10
	}
	return 500 - float64(daysUntilDue)
}

// scoreMaximizeDiscounts: premiar la captura de descuento mientras la ventana
// de pronto pago (>7 días de anticipación) siga alcanzable.
func scoreMaximizeDiscounts(inv *entity.Invoice, daysUntilDue int) float64 {
	rate := inv.EarlyDiscountRate()
	if rate.IsPositive() && daysUntilDue > 7 {
		capture, _ := rate.Mul(inv.Amount).Float64()
		return capture * float64(daysUntilDue)
	}
	return 100 - float64(daysUntilDue)
}

// scoreOptimizeCashFlow: compuesto ponderado urgencia/importancia/mora/descuento.
// Los pesos 0.4/0.3/0.2/0.1 son constantes de diseño: urgencia sobre
// importancia, importancia sobre riesgo de mora, mora sobre oportunidad de
// descuento.
func scoreOptimizeCashFlow(inv *entity.Invoice, daysUntilDue int) float64 {
	urgency := 1000 - float64(daysUntilDue)
	importance := importanceWeight[inv.ImportanceOrDefault()]
	penaltyRate, _ := inv.LatePenaltyRate().Float64()
	discountRate, _ := inv.EarlyDiscountRate().Float64()

	return 0.4*urgency + 0.3*importance + 0.2*(penaltyRate*10) + 0.1*(discountRate*5)
}

// scoreDefault: fórmula de respaldo para estrategias desconocidas.
func scoreDefault(_ *entity.Invoice, daysUntilDue int) float64 {
	return 500 - float64(daysUntilDue)
}
