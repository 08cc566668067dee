package entity

import "github.com/shopspring/decimal"

// Facturation enregistrement de paiement rattaché à une seule réception.
// Encaissement est composé "<type>: <valeur>" (ex. "Mobile money: MP240611.1532.A12345").
type Facturation struct {
	ID             int64           `json:"id"`
	ReceptionID    int64           `json:"reception_id"`
	DatePaiement   string          `json:"date_paiement"` // AAAA-MM-JJ
	NumeroFacture  string          `json:"numero_facture"`
	Designation    string          `json:"designation"`
	Encaissement   string          `json:"encaissement"`
	PrixUnitaire   decimal.Decimal `json:"prix_unitaire"`
	Quantite       decimal.Decimal `json:"quantite"`
	PaiementAvance decimal.Decimal `json:"paiement_avance"`
	MontantPaye    decimal.Decimal `json:"montant_paye"`
	Statut         string          `json:"statut,omitempty"`
	CreatedAt      *Timestamp      `json:"created_at,omitempty"`
	UpdatedAt      *Timestamp      `json:"updated_at,omitempty"`
}

// FacturationCheck réponse de /facturations/check-reception/{id}.
type FacturationCheck struct {
	Exists bool         `json:"exists"`
	Data   *Facturation `json:"data"`
}
