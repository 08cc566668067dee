package entity

import "github.com/shopspring/decimal"

// Les patchs portent des pointeurs: nil = champ non fourni, donc non envoyé au backend.

// ReceptionPatch modification partielle d'une réception.
type ReceptionPatch struct {
	Type                    *string
	DateHeure               *Timestamp
	Designation             *string
	Provenance              *string
	NomFournisseur          *string
	NifFournisseur          *string
	ContactFournisseur      *string
	LocalisationFournisseur *string
	PoidsBrut               *decimal.Decimal
	PoidsNet                *decimal.Decimal
	Unite                   *string
	PoidsEmballage          *decimal.Decimal
	TauxDessiccation        *decimal.Decimal
	TauxHumidite            *decimal.Decimal
	PoidsAgreage            *decimal.Decimal
	Densite                 *decimal.Decimal
}

// Apply reporte les champs fournis sur r.
func (p ReceptionPatch) Apply(r *Reception) {
	setString(&r.Type, p.Type)
	if p.DateHeure != nil {
		r.DateHeure = *p.DateHeure
	}
	setString(&r.Designation, p.Designation)
	setString(&r.Provenance, p.Provenance)
	setString(&r.NomFournisseur, p.NomFournisseur)
	setString(&r.NifFournisseur, p.NifFournisseur)
	setString(&r.ContactFournisseur, p.ContactFournisseur)
	setString(&r.LocalisationFournisseur, p.LocalisationFournisseur)
	setDecimal(&r.PoidsBrut, p.PoidsBrut)
	setDecimal(&r.PoidsNet, p.PoidsNet)
	setString(&r.Unite, p.Unite)
	setNullDecimal(&r.PoidsEmballage, p.PoidsEmballage)
	setNullDecimal(&r.TauxDessiccation, p.TauxDessiccation)
	setNullDecimal(&r.TauxHumidite, p.TauxHumidite)
	setNullDecimal(&r.PoidsAgreage, p.PoidsAgreage)
	setNullDecimal(&r.Densite, p.Densite)
}

// FacturationPatch modification partielle d'une facturation.
type FacturationPatch struct {
	DatePaiement   *string
	NumeroFacture  *string
	Designation    *string
	Encaissement   *string
	PrixUnitaire   *decimal.Decimal
	Quantite       *decimal.Decimal
	PaiementAvance *decimal.Decimal
	MontantPaye    *decimal.Decimal
	Statut         *string
}

// Apply reporte les champs fournis sur f.
func (p FacturationPatch) Apply(f *Facturation) {
	setString(&f.DatePaiement, p.DatePaiement)
	setString(&f.NumeroFacture, p.NumeroFacture)
	setString(&f.Designation, p.Designation)
	setString(&f.Encaissement, p.Encaissement)
	setDecimal(&f.PrixUnitaire, p.PrixUnitaire)
	setDecimal(&f.Quantite, p.Quantite)
	setDecimal(&f.PaiementAvance, p.PaiementAvance)
	setDecimal(&f.MontantPaye, p.MontantPaye)
	setString(&f.Statut, p.Statut)
}

// ImpayePatch modification partielle d'un impayé.
type ImpayePatch struct {
	DatePaiement  *string
	NumeroFacture *string
	Designation   *string
	Encaissement  *string
	PrixUnitaire  *decimal.Decimal
	Quantite      *decimal.Decimal
	MontantPaye   *decimal.Decimal
	Statut        *string
}

// Apply reporte les champs fournis sur i.
func (p ImpayePatch) Apply(i *Impaye) {
	setString(&i.DatePaiement, p.DatePaiement)
	setString(&i.NumeroFacture, p.NumeroFacture)
	setString(&i.Designation, p.Designation)
	setString(&i.Encaissement, p.Encaissement)
	setDecimal(&i.PrixUnitaire, p.PrixUnitaire)
	setDecimal(&i.Quantite, p.Quantite)
	setDecimal(&i.MontantPaye, p.MontantPaye)
	setString(&i.Statut, p.Statut)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setDecimal(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}

func setNullDecimal(dst *decimal.NullDecimal, src *decimal.Decimal) {
	if src != nil {
		*dst = decimal.NewNullDecimal(*src)
	}
}
