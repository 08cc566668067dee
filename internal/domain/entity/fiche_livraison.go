package entity

import "github.com/shopspring/decimal"

// FicheLivraison bon de livraison d'un lot.
type FicheLivraison struct {
	ID                  int64           `json:"id"`
	ReceptionID         int64           `json:"reception_id"`
	DateLivraison       string          `json:"date_livraison"`
	LivreurNom          string          `json:"livreur_nom"`
	LivreurPrenom       string          `json:"livreur_prenom"`
	LivreurCIN          string          `json:"livreur_cin"`
	LivreurContact      string          `json:"livreur_contact"`
	LivreurVehicule     string          `json:"livreur_vehicule"`
	DestinataireNom     string          `json:"destinataire_nom"`
	DestinatairePrenom  string          `json:"destinataire_prenom"`
	DestinataireContact string          `json:"destinataire_contact"`
	LieuDepart          string          `json:"lieu_depart"`
	Destination         string          `json:"destination"`
	TypeProduit         string          `json:"type_produit"`
	PoidsNet            decimal.Decimal `json:"poids_net"`
	RistourneRegionale  decimal.Decimal `json:"ristourne_regionale"`
	RistourneCommunale  decimal.Decimal `json:"ristourne_communale"`
	CreatedAt           *Timestamp      `json:"created_at,omitempty"`
}
