package dto

import (
	"time"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// ReceptionRequest corps de POST /api/receptions et PUT /api/receptions/:id.
// Sur PUT, les champs absents ne sont pas modifiés.
type ReceptionRequest struct {
	Type                    *string `json:"type"`
	DateHeure               *string `json:"date_heure"`
	Designation             *string `json:"designation"`
	Provenance              *string `json:"provenance"`
	NomFournisseur          *string `json:"nom_fournisseur"`
	NifFournisseur          *string `json:"nif_fournisseur"`
	ContactFournisseur      *string `json:"contact_fournisseur"`
	LocalisationFournisseur *string `json:"localisation_fournisseur"`
	PoidsBrut               *Amount `json:"poids_brut"`
	PoidsNet                *Amount `json:"poids_net"`
	Unite                   *string `json:"unite"`
	PoidsEmballage          *Amount `json:"poids_emballage"`
	TauxDessiccation        *Amount `json:"taux_dessiccation"`
	TauxHumidite            *Amount `json:"taux_humidite"`
	PoidsAgreage            *Amount `json:"poids_agreage"`
	Densite                 *Amount `json:"densite"`
}

// ReceptionResponse réception enrichie du libellé de matière.
type ReceptionResponse struct {
	entity.Reception
	TypeLabel string `json:"type_label"`
}

// NewReceptionResponse construit la réponse.
func NewReceptionResponse(r entity.Reception) ReceptionResponse {
	return ReceptionResponse{Reception: r, TypeLabel: entity.MaterialLabel(r.Type)}
}

// TransitionsResponse statut courant et actions permises pour une réception.
type TransitionsResponse struct {
	ReceptionID          int64    `json:"reception_id"`
	CurrentStatus        string   `json:"current_status"`
	AvailableTransitions []string `json:"available_transitions"`
	CanDeliver           bool     `json:"can_deliver"`
}

// RefreshResponse taille des listes après rechargement du cache.
type RefreshResponse struct {
	Receptions      int       `json:"receptions"`
	Facturations    int       `json:"facturations"`
	Impayes         int       `json:"impayes"`
	FicheLivraisons int       `json:"fiche_livraisons"`
	FetchedAt       time.Time `json:"fetched_at"`
}
