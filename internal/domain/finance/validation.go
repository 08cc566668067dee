package finance

import (
	"sort"
	"strings"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// Violations erreurs par champ, au format {champ: [messages]}.
type Violations map[string][]string

func (v Violations) add(field, msg string) {
	v[field] = append(v[field], msg)
}

// Empty indique l'absence de violation.
func (v Violations) Empty() bool { return len(v) == 0 }

// Messages liste à plat, ordonnée par nom de champ.
func (v Violations) Messages() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(v))
	for _, k := range keys {
		out = append(out, v[k]...)
	}
	return out
}

// FacturationViolations contrôle champs requis et plafond de paiement d'une facturation.
func FacturationViolations(f *entity.Facturation) Violations {
	v := Violations{}
	if f.ReceptionID <= 0 {
		v.add("reception_id", "La réception est obligatoire")
	}
	if strings.TrimSpace(f.DatePaiement) == "" {
		v.add("date_paiement", "La date de paiement est obligatoire")
	}
	if strings.TrimSpace(f.NumeroFacture) == "" {
		v.add("numero_facture", "Le numéro de facture est obligatoire")
	}
	if strings.TrimSpace(f.Encaissement) == "" {
		v.add("encaissement", "Le mode d'encaissement est obligatoire")
	}
	if !f.PrixUnitaire.IsPositive() {
		v.add("prix_unitaire", "Le prix unitaire doit être supérieur à 0")
	}
	if !f.Quantite.IsPositive() {
		v.add("quantite", "La quantité doit être supérieure à 0")
	}
	if f.MontantPaye.IsNegative() {
		v.add("montant_paye", "Le montant payé ne peut pas être négatif")
	}
	if f.PaiementAvance.IsNegative() {
		v.add("paiement_avance", "Le paiement d'avance ne peut pas être négatif")
	}
	b := FacturationBalance(f)
	if b.Paid.GreaterThan(b.Total) {
		v.add("montant_paye", "Le montant payé et l'avance dépassent le prix total")
	}
	return v
}

// ImpayeViolations contrôle champs requis et bornes du montant d'un impayé.
func ImpayeViolations(i *entity.Impaye) Violations {
	v := Violations{}
	if i.ReceptionID <= 0 {
		v.add("reception_id", "La réception est obligatoire")
	}
	if strings.TrimSpace(i.DatePaiement) == "" {
		v.add("date_paiement", "La date de paiement est obligatoire")
	}
	if strings.TrimSpace(i.NumeroFacture) == "" {
		v.add("numero_facture", "Le numéro de facture est obligatoire")
	}
	if !i.PrixUnitaire.IsPositive() {
		v.add("prix_unitaire", "Le prix unitaire doit être supérieur à 0")
	}
	if !i.Quantite.IsPositive() {
		v.add("quantite", "La quantité doit être supérieure à 0")
	}
	if !i.MontantPaye.IsPositive() {
		v.add("montant_paye", "Le montant payé doit être supérieur à 0")
	} else if b := ImpayeBalance(i); i.MontantPaye.GreaterThan(b.Total) {
		v.add("montant_paye", "Le montant payé dépasse le prix total")
	}
	return v
}

// ValidateFacturation version consultative: messages lisibles, vide si valide.
func ValidateFacturation(f *entity.Facturation) []string {
	return FacturationViolations(f).Messages()
}

// ValidateImpaye version consultative: messages lisibles, vide si valide.
func ValidateImpaye(i *entity.Impaye) []string {
	return ImpayeViolations(i).Messages()
}
