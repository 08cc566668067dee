package viaapi

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// Les payloads d'écriture sont des listes blanches: seuls les champs ci-dessous partent
// vers le backend. Les montants sont envoyés comme nombres JSON (json.Number), pas comme chaînes.

func num(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func receptionPayload(r *entity.Reception) map[string]any {
	p := map[string]any{
		"type":                     r.Type,
		"designation":              r.Designation,
		"provenance":               r.Provenance,
		"nom_fournisseur":          r.NomFournisseur,
		"nif_fournisseur":          r.NifFournisseur,
		"contact_fournisseur":      r.ContactFournisseur,
		"localisation_fournisseur": r.LocalisationFournisseur,
		"poids_brut":               num(r.PoidsBrut),
		"poids_net":                num(r.PoidsNet),
		"unite":                    r.Unite,
	}
	if !r.DateHeure.IsZero() {
		p["date_heure"] = r.DateHeure
	}
	quality := map[string]decimal.NullDecimal{
		"poids_emballage":   r.PoidsEmballage,
		"taux_dessiccation": r.TauxDessiccation,
		"taux_humidite":     r.TauxHumidite,
		"poids_agreage":     r.PoidsAgreage,
		"densite":           r.Densite,
	}
	// Seuls les champs qualité du type de matière sont transmis.
	for _, field := range entity.QualityFields(r.Type) {
		if v := quality[field]; v.Valid {
			p[field] = num(v.Decimal)
		}
	}
	return p
}

func receptionPatchPayload(pt entity.ReceptionPatch) map[string]any {
	p := map[string]any{}
	putString(p, "type", pt.Type)
	if pt.DateHeure != nil {
		p["date_heure"] = *pt.DateHeure
	}
	putString(p, "designation", pt.Designation)
	putString(p, "provenance", pt.Provenance)
	putString(p, "nom_fournisseur", pt.NomFournisseur)
	putString(p, "nif_fournisseur", pt.NifFournisseur)
	putString(p, "contact_fournisseur", pt.ContactFournisseur)
	putString(p, "localisation_fournisseur", pt.LocalisationFournisseur)
	putNumber(p, "poids_brut", pt.PoidsBrut)
	putNumber(p, "poids_net", pt.PoidsNet)
	putString(p, "unite", pt.Unite)
	putNumber(p, "poids_emballage", pt.PoidsEmballage)
	putNumber(p, "taux_dessiccation", pt.TauxDessiccation)
	putNumber(p, "taux_humidite", pt.TauxHumidite)
	putNumber(p, "poids_agreage", pt.PoidsAgreage)
	putNumber(p, "densite", pt.Densite)
	return p
}

func facturationPayload(f *entity.Facturation) map[string]any {
	p := map[string]any{
		"reception_id":    f.ReceptionID,
		"date_paiement":   f.DatePaiement,
		"numero_facture":  f.NumeroFacture,
		"designation":     f.Designation,
		"encaissement":    f.Encaissement,
		"prix_unitaire":   num(f.PrixUnitaire),
		"quantite":        num(f.Quantite),
		"paiement_avance": num(f.PaiementAvance),
		"montant_paye":    num(f.MontantPaye),
	}
	if f.Statut != "" {
		p["statut"] = f.Statut
	}
	return p
}

func facturationPatchPayload(pt entity.FacturationPatch) map[string]any {
	p := map[string]any{}
	putString(p, "date_paiement", pt.DatePaiement)
	putString(p, "numero_facture", pt.NumeroFacture)
	putString(p, "designation", pt.Designation)
	putString(p, "encaissement", pt.Encaissement)
	putNumber(p, "prix_unitaire", pt.PrixUnitaire)
	putNumber(p, "quantite", pt.Quantite)
	putNumber(p, "paiement_avance", pt.PaiementAvance)
	putNumber(p, "montant_paye", pt.MontantPaye)
	putString(p, "statut", pt.Statut)
	return p
}

func impayePayload(i *entity.Impaye) map[string]any {
	p := map[string]any{
		"reception_id":   i.ReceptionID,
		"date_paiement":  i.DatePaiement,
		"numero_facture": i.NumeroFacture,
		"designation":    i.Designation,
		"encaissement":   i.Encaissement,
		"prix_unitaire":  num(i.PrixUnitaire),
		"quantite":       num(i.Quantite),
		"montant_paye":   num(i.MontantPaye),
	}
	if i.Statut != "" {
		p["statut"] = i.Statut
	}
	return p
}

func impayePatchPayload(pt entity.ImpayePatch) map[string]any {
	p := map[string]any{}
	putString(p, "date_paiement", pt.DatePaiement)
	putString(p, "numero_facture", pt.NumeroFacture)
	putString(p, "designation", pt.Designation)
	putString(p, "encaissement", pt.Encaissement)
	putNumber(p, "prix_unitaire", pt.PrixUnitaire)
	putNumber(p, "quantite", pt.Quantite)
	putNumber(p, "montant_paye", pt.MontantPaye)
	putString(p, "statut", pt.Statut)
	return p
}

func ficheLivraisonPayload(f *entity.FicheLivraison) map[string]any {
	return map[string]any{
		"reception_id":         f.ReceptionID,
		"date_livraison":       f.DateLivraison,
		"livreur_nom":          f.LivreurNom,
		"livreur_prenom":       f.LivreurPrenom,
		"livreur_cin":          f.LivreurCIN,
		"livreur_contact":      f.LivreurContact,
		"livreur_vehicule":     f.LivreurVehicule,
		"destinataire_nom":     f.DestinataireNom,
		"destinataire_prenom":  f.DestinatairePrenom,
		"destinataire_contact": f.DestinataireContact,
		"lieu_depart":          f.LieuDepart,
		"destination":          f.Destination,
		"type_produit":         f.TypeProduit,
		"poids_net":            num(f.PoidsNet),
		"ristourne_regionale":  num(f.RistourneRegionale),
		"ristourne_communale":  num(f.RistourneCommunale),
	}
}

func putString(p map[string]any, key string, v *string) {
	if v != nil {
		p[key] = *v
	}
}

func putNumber(p map[string]any, key string, v *decimal.Decimal) {
	if v != nil {
		p[key] = num(*v)
	}
}
