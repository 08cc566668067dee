package entity

import "github.com/shopspring/decimal"

// Types de matière première reçue.
const (
	MaterialFeuilles = "FG" // feuilles de girofle
	MaterialClous    = "CG" // clous de girofle
	MaterialHuile    = "HE" // huile essentielle
)

// ValidMaterial indique si t est un type de matière connu.
func ValidMaterial(t string) bool {
	switch t {
	case MaterialFeuilles, MaterialClous, MaterialHuile:
		return true
	}
	return false
}

// MaterialLabel libellé affiché pour un type de matière.
func MaterialLabel(t string) string {
	switch t {
	case MaterialFeuilles:
		return "Feuilles de girofle"
	case MaterialClous:
		return "Clous de girofle"
	case MaterialHuile:
		return "Huile essentielle"
	}
	return t
}

// Reception lot de matière première réceptionné.
// Seuls les champs qualité pertinents pour Type sont renseignés (NullDecimal invalide sinon).
type Reception struct {
	ID                      int64               `json:"id"`
	Type                    string              `json:"type"`
	DateHeure               Timestamp           `json:"date_heure"`
	Designation             string              `json:"designation"`
	Provenance              string              `json:"provenance"`
	NomFournisseur          string              `json:"nom_fournisseur"`
	NifFournisseur          string              `json:"nif_fournisseur"`
	ContactFournisseur      string              `json:"contact_fournisseur"`
	LocalisationFournisseur string              `json:"localisation_fournisseur"`
	PoidsBrut               decimal.Decimal     `json:"poids_brut"`
	PoidsNet                decimal.Decimal     `json:"poids_net"`
	Unite                   string              `json:"unite"`
	PoidsEmballage          decimal.NullDecimal `json:"poids_emballage"`
	TauxDessiccation        decimal.NullDecimal `json:"taux_dessiccation"`
	TauxHumidite            decimal.NullDecimal `json:"taux_humidite"`
	PoidsAgreage            decimal.NullDecimal `json:"poids_agreage"`
	Densite                 decimal.NullDecimal `json:"densite"`
	Statut                  string              `json:"statut"`
	CreatedAt               *Timestamp          `json:"created_at,omitempty"`
	UpdatedAt               *Timestamp          `json:"updated_at,omitempty"`
}

// QualityFields noms des champs qualité attendus pour un type de matière.
func QualityFields(materialType string) []string {
	switch materialType {
	case MaterialFeuilles:
		return []string{"poids_emballage", "taux_humidite"}
	case MaterialClous:
		return []string{"poids_emballage", "taux_dessiccation", "taux_humidite", "poids_agreage"}
	case MaterialHuile:
		return []string{"poids_emballage", "densite"}
	}
	return nil
}
