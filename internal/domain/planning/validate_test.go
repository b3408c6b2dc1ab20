package planning_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pagos-pro/internal/domain"
	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
	"github.com/tu-usuario/pagos-pro/internal/domain/planning"
)

func validInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:      "fac-1",
		Amount:  decimal.NewFromInt(100),
		DueDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateInvoice_Valida(t *testing.T) {
	require.NoError(t, planning.ValidateInvoice(validInvoice()))
}

func TestValidateInvoice_MontoNoPositivoFallaRapido(t *testing.T) {
	for _, amount := range []int64{0, -50} {
		inv := validInvoice()
		inv.Amount = decimal.NewFromInt(amount)

		err := planning.ValidateInvoice(inv)
		require.Error(t, err, "monto %d", amount)
		assert.ErrorIs(t, err, domain.ErrInvalidInvoice,
			"un monto no positivo es error del caller, no un puntaje sin sentido")
	}
}

func TestValidateInvoice_SinVencimientoEsErrInvalidDate(t *testing.T) {
	inv := validInvoice()
	inv.DueDate = time.Time{}

	err := planning.ValidateInvoice(inv)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestValidateInvoice_TasasNegativasRechazadas(t *testing.T) {
	inv := validInvoice()
	inv.Supplier = &entity.Supplier{LatePaymentPenalty: decimal.NewFromInt(-1)}

	err := planning.ValidateInvoice(inv)
	assert.ErrorIs(t, err, domain.ErrInvalidInvoice)
}

func TestValidateInvoice_NulaYSinID(t *testing.T) {
	assert.ErrorIs(t, planning.ValidateInvoice(nil), domain.ErrInvalidInvoice)

	inv := validInvoice()
	inv.ID = ""
	assert.ErrorIs(t, planning.ValidateInvoice(inv), domain.ErrInvalidInvoice)
}
