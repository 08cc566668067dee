// Package finance regroupe les calculs dérivés des formulaires de facturation:
// prix total, total payé, reste à payer et statut de paiement.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// CompletionTolerance écart (en Ariary) en dessous duquel un paiement est considéré complet.
var CompletionTolerance = decimal.NewFromInt(1)

// Balance résultat de ComputeBalance.
type Balance struct {
	Total      decimal.Decimal `json:"prix_total"`
	Paid       decimal.Decimal `json:"total_paye"`
	Remaining  decimal.Decimal `json:"reste_a_payer"`
	IsComplete bool            `json:"paiement_complet"`
}

// ComputeBalance calcule le solde d'une ligne de paiement.
//
//	Total     = unitPrice × quantity
//	Paid      = amountPaid + advance
//	Remaining = Total − Paid
//	IsComplete ⇔ Remaining ≤ CompletionTolerance
//
// Remaining peut être négatif (trop-perçu); c'est aux validations de le refuser.
func ComputeBalance(unitPrice, quantity, amountPaid, advance decimal.Decimal) Balance {
	total := unitPrice.Mul(quantity)
	paid := amountPaid.Add(advance)
	remaining := total.Sub(paid)
	return Balance{
		Total:      total,
		Paid:       paid,
		Remaining:  remaining,
		IsComplete: remaining.LessThanOrEqual(CompletionTolerance),
	}
}

// FacturationBalance solde d'une facturation.
func FacturationBalance(f *entity.Facturation) Balance {
	return ComputeBalance(f.PrixUnitaire, f.Quantite, f.MontantPaye, f.PaiementAvance)
}

// ImpayeBalance solde d'un impayé (pas d'avance).
func ImpayeBalance(i *entity.Impaye) Balance {
	return ComputeBalance(i.PrixUnitaire, i.Quantite, i.MontantPaye, decimal.Zero)
}

// PaymentStatus statut de paiement envoyé au backend pour un solde.
func PaymentStatus(b Balance) string {
	if b.IsComplete {
		return entity.StatusPaye
	}
	return entity.StatusPaiementIncomplet
}
