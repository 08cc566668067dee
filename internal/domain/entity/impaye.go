package entity

import "github.com/shopspring/decimal"

// ImpayeCalculs calculs fournis par le serveur pour un impayé.
type ImpayeCalculs struct {
	PrixTotal       decimal.Decimal `json:"prix_total"`
	ResteAPayer     decimal.Decimal `json:"reste_a_payer"`
	PaiementComplet bool            `json:"paiement_complet"`
}

// Impaye ajustement de solde restant dû sur une réception.
type Impaye struct {
	ID            int64           `json:"id"`
	ReceptionID   int64           `json:"reception_id"`
	DatePaiement  string          `json:"date_paiement"`
	NumeroFacture string          `json:"numero_facture"`
	Designation   string          `json:"designation"`
	Encaissement  string          `json:"encaissement"`
	PrixUnitaire  decimal.Decimal `json:"prix_unitaire"`
	Quantite      decimal.Decimal `json:"quantite"`
	MontantPaye   decimal.Decimal `json:"montant_paye"`
	Statut        string          `json:"statut,omitempty"`
	Calculs       *ImpayeCalculs  `json:"calculs,omitempty"`
	CreatedAt     *Timestamp      `json:"created_at,omitempty"`
	UpdatedAt     *Timestamp      `json:"updated_at,omitempty"`
}

// ReceptionSolde solde d'une réception: Exists=false quand le backend n'a rien (404).
type ReceptionSolde struct {
	Exists  bool           `json:"exists"`
	Data    *Impaye        `json:"data"`
	Calculs *ImpayeCalculs `json:"calculs"`
}
