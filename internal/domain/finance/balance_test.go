package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/finance"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// 1500 × 100 payés intégralement: reste 0, statut Payé.
func TestComputeBalance_PaiementComplet(t *testing.T) {
	b := finance.ComputeBalance(d(1500), d(100), d(150000), d(0))

	assert.True(t, d(150000).Equal(b.Total), "prix_total")
	assert.True(t, decimal.Zero.Equal(b.Remaining), "reste_a_payer")
	assert.True(t, b.IsComplete)
	assert.Equal(t, entity.StatusPaye, finance.PaymentStatus(b))
}

// Même réception, 100 000 payés: reste 50 000, statut Paiement incomplet.
func TestComputeBalance_PaiementIncomplet(t *testing.T) {
	b := finance.ComputeBalance(d(1500), d(100), d(100000), d(0))

	assert.True(t, d(50000).Equal(b.Remaining))
	assert.False(t, b.IsComplete)
	assert.Equal(t, entity.StatusPaiementIncomplet, finance.PaymentStatus(b))
}

func TestComputeBalance_AvanceComptee(t *testing.T) {
	b := finance.ComputeBalance(d(1500), d(100), d(100000), d(50000))

	assert.True(t, d(150000).Equal(b.Paid))
	assert.True(t, b.IsComplete)
}

func TestComputeBalance_ToleranceArrondi(t *testing.T) {
	price := decimal.RequireFromString("1333.33")
	b := finance.ComputeBalance(price, d(3), decimal.RequireFromString("3999"), d(0))
	assert.True(t, decimal.RequireFromString("0.99").Equal(b.Remaining))
	assert.True(t, b.IsComplete, "un reste ≤ 1 est considéré soldé")

	b = finance.ComputeBalance(d(1000), d(3), decimal.RequireFromString("2998.5"), d(0))
	assert.False(t, b.IsComplete, "un reste > 1 ne l'est pas")
}

func TestComposeEncaissement(t *testing.T) {
	assert.Equal(t, "Mobile money: MP240611.1532", finance.ComposeEncaissement(" Mobile money ", "MP240611.1532"))
	assert.Equal(t, "Espèces", finance.ComposeEncaissement("Espèces", ""))

	kind, value := finance.ParseEncaissement("Chèque: 0012345")
	assert.Equal(t, "Chèque", kind)
	assert.Equal(t, "0012345", value)

	kind, value = finance.ParseEncaissement("Espèces")
	assert.Equal(t, "Espèces", kind)
	assert.Empty(t, value)
}
