package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/finance"
)

func validFacturation() *entity.Facturation {
	return &entity.Facturation{
		ReceptionID:   7,
		DatePaiement:  "2024-06-11",
		NumeroFacture: "FAC-0007",
		Designation:   "Clous de girofle",
		Encaissement:  "Espèces: caisse 12",
		PrixUnitaire:  d(1500),
		Quantite:      d(100),
		MontantPaye:   d(100000),
	}
}

func TestValidateFacturation_OK(t *testing.T) {
	assert.Empty(t, finance.ValidateFacturation(validFacturation()))
}

func TestValidateFacturation_DepassementTotal(t *testing.T) {
	f := validFacturation()
	f.MontantPaye = d(120000)
	f.PaiementAvance = d(40000)

	v := finance.FacturationViolations(f)
	assert.Contains(t, v, "montant_paye")
	assert.Len(t, finance.ValidateFacturation(f), 1)
}

func TestValidateFacturation_ChampsRequis(t *testing.T) {
	v := finance.FacturationViolations(&entity.Facturation{})
	for _, field := range []string{"reception_id", "date_paiement", "numero_facture", "encaissement", "prix_unitaire", "quantite"} {
		assert.Contains(t, v, field)
	}
}

func TestValidateImpaye(t *testing.T) {
	i := &entity.Impaye{
		ReceptionID:   7,
		DatePaiement:  "2024-06-12",
		NumeroFacture: "IMP-0007",
		PrixUnitaire:  d(1500),
		Quantite:      d(100),
		MontantPaye:   d(50000),
	}
	assert.Empty(t, finance.ValidateImpaye(i))

	i.MontantPaye = d(0)
	assert.Contains(t, finance.ImpayeViolations(i), "montant_paye", "montant nul refusé")

	i.MontantPaye = d(150001)
	assert.Contains(t, finance.ImpayeViolations(i), "montant_paye", "montant supérieur au total refusé")

	i.MontantPaye = d(150000)
	assert.True(t, finance.ImpayeViolations(i).Empty(), "montant égal au total accepté")
}
