package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebtorInsertValidate(t *testing.T) {
	base := func() DebtorInsert {
		return DebtorInsert{
			CustomerName: "Alice",
			Product:      "Rice 25kg",
			Amount:       decimal.NewFromInt(50),
			DueDate:      time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("empty status defaults to pending", func(t *testing.T) {
		d := base()
		require.NoError(t, d.Validate())
		assert.Equal(t, DebtorStatusPending, d.Status)
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		for _, st := range []DebtorStatus{DebtorStatusPartial, DebtorStatusOverdue} {
			d := base()
			d.Status = st
			require.NoError(t, d.Validate())
			assert.Equal(t, st, d.Status)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		d := base()
		d.Status = DebtorStatus("defaulted")
		assert.Error(t, d.Validate())
	})

	t.Run("missing customer is rejected", func(t *testing.T) {
		d := base()
		d.CustomerName = ""
		assert.Error(t, d.Validate())
	})
}

func TestDebtorStatusMirrorsPaymentStatus(t *testing.T) {
	// debtors opened for a sale carry the sale's payment status, so every
	// non-paid payment status must be a valid debtor status
	for _, ps := range []PaymentStatus{PaymentStatusPending, PaymentStatusPartial, PaymentStatusOverdue} {
		assert.True(t, DebtorStatus(ps).Valid(), string(ps))
	}
}
