package dto

import (
	"github.com/shopspring/decimal"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/finance"
)

// ListQuery filtres communs des vues liste. From et To au format AAAA-MM-JJ, bornes incluses.
type ListQuery struct {
	PageRequest
	Q      string `query:"q"`
	Type   string `query:"type"`
	Statut string `query:"statut"`
	From   string `query:"from"`
	To     string `query:"to"`
}

// ExportRow facturation avec la réception correspondante (vue exports).
type ExportRow struct {
	entity.Facturation
	Reception *ReceptionResponse `json:"reception,omitempty"`
	Calculs   finance.Balance    `json:"calculs"`
}

// ImpayeRow impayé et reste à payer.
type ImpayeRow struct {
	entity.Impaye
	Fournisseur string          `json:"nom_fournisseur"`
	Balance     finance.Balance `json:"solde"`
}

// TransportRow fiche de livraison et statut courant de sa réception.
type TransportRow struct {
	entity.FicheLivraison
	ReceptionStatut string `json:"reception_statut"`
	Fournisseur     string `json:"nom_fournisseur"`
}

// StockRow poids reçu, livré et disponible pour un type de matière.
type StockRow struct {
	Type       string          `json:"type"`
	Label      string          `json:"label"`
	Unite      string          `json:"unite"`
	Receptions int             `json:"receptions"`
	Recu       decimal.Decimal `json:"poids_recu"`
	Livre      decimal.Decimal `json:"poids_livre"`
	Disponible decimal.Decimal `json:"poids_disponible"`
}
