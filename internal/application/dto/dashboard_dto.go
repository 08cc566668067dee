package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO réponse de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	// Réceptions par statut (toutes périodes)
	ReceptionsByStatus map[string]int `json:"receptions_by_status"`

	// Mois en cours
	MonthlyNetWeight  map[string]decimal.Decimal `json:"monthly_net_weight"` // par type de matière
	MonthlyBilled     decimal.Decimal            `json:"monthly_billed"`     // prix total des facturations du mois
	MonthlyPaid       decimal.Decimal            `json:"monthly_paid"`       // montant payé + avances + impayés réglés
	MonthlyDeliveries int                        `json:"monthly_deliveries"`

	// Encours
	Outstanding        decimal.Decimal `json:"outstanding"` // somme des restes à payer
	UnpaidReceptions   int             `json:"unpaid_receptions"`
	PendingQualityTest int             `json:"pending_quality_test"`

	DateLabel string `json:"date_label"` // ex. "Mars 2026"
	Stale     bool   `json:"stale"`      // dernier chargement en échec
}
