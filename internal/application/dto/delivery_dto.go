package dto

import "github.com/viaconsulting/dashboard-huiles/internal/domain/entity"

// FicheLivraisonRequest formulaire du bon de livraison.
// TypeProduit et PoidsNet sont repris de la réception s'ils sont vides.
type FicheLivraisonRequest struct {
	ReceptionID         int64   `json:"reception_id"`
	DateLivraison       string  `json:"date_livraison"`
	LivreurNom          string  `json:"livreur_nom"`
	LivreurPrenom       string  `json:"livreur_prenom"`
	LivreurCIN          string  `json:"livreur_cin"`
	LivreurContact      string  `json:"livreur_contact"`
	LivreurVehicule     string  `json:"livreur_vehicule"`
	DestinataireNom     string  `json:"destinataire_nom"`
	DestinatairePrenom  string  `json:"destinataire_prenom"`
	DestinataireContact string  `json:"destinataire_contact"`
	LieuDepart          string  `json:"lieu_depart"`
	Destination         string  `json:"destination"`
	TypeProduit         string  `json:"type_produit"`
	PoidsNet            *Amount `json:"poids_net"`
	RistourneRegionale  Amount  `json:"ristourne_regionale"`
	RistourneCommunale  Amount  `json:"ristourne_communale"`
}

// FicheLivraisonResult fiche créée et statut de la réception après rechargement.
type FicheLivraisonResult struct {
	Fiche           entity.FicheLivraison `json:"fiche_livraison"`
	ReceptionStatut string                `json:"reception_statut"`
}
