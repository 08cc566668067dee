package dto

import (
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/finance"
)

// FacturationRequest formulaire de facturation.
// L'encaissement se saisit soit en deux parties (mode + référence), soit déjà composé.
type FacturationRequest struct {
	ReceptionID        int64  `json:"reception_id"`
	DatePaiement       string `json:"date_paiement"`
	NumeroFacture      string `json:"numero_facture"`
	Designation        string `json:"designation"`
	EncaissementType   string `json:"encaissement_type"`
	EncaissementValeur string `json:"encaissement_valeur"`
	Encaissement       string `json:"encaissement"`
	PrixUnitaire       Amount `json:"prix_unitaire"`
	Quantite           Amount `json:"quantite"`
	PaiementAvance     Amount `json:"paiement_avance"`
	MontantPaye        Amount `json:"montant_paye"`
}

// ImpayeRequest formulaire de règlement d'un solde.
type ImpayeRequest struct {
	ReceptionID        int64  `json:"reception_id"`
	DatePaiement       string `json:"date_paiement"`
	NumeroFacture      string `json:"numero_facture"`
	Designation        string `json:"designation"`
	EncaissementType   string `json:"encaissement_type"`
	EncaissementValeur string `json:"encaissement_valeur"`
	Encaissement       string `json:"encaissement"`
	PrixUnitaire       Amount `json:"prix_unitaire"`
	Quantite           Amount `json:"quantite"`
	MontantPaye        Amount `json:"montant_paye"`
}

// PreviewResponse calculs dérivés affichés pendant la saisie.
type PreviewResponse struct {
	finance.Balance
	Statut   string              `json:"statut"`
	Valid    bool                `json:"valid"`
	Messages []string            `json:"messages"`
	Errors   map[string][]string `json:"errors,omitempty"`
}

// FacturationResult résultat d'une soumission de facturation.
type FacturationResult struct {
	Facturation entity.Facturation `json:"facturation"`
	Action      string             `json:"action"` // created | updated
	Balance     finance.Balance    `json:"calculs"`
}

// ImpayeResult résultat d'une soumission d'impayé.
type ImpayeResult struct {
	Impaye  entity.Impaye   `json:"impaye"`
	Balance finance.Balance `json:"calculs"`
}

// ImpayePrefill valeurs proposées à l'ouverture du formulaire d'impayé.
type ImpayePrefill struct {
	Exists  bool                  `json:"exists"`
	Impaye  *entity.Impaye        `json:"data"`
	Calculs *entity.ImpayeCalculs `json:"calculs"`
}

// FacturationPrefill facturation existante de la réception, le cas échéant.
type FacturationPrefill struct {
	Exists      bool                `json:"exists"`
	Facturation *entity.Facturation `json:"data"`
}
