package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/viaconsulting/dashboard-huiles/internal/application/billing"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/finance"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0 Ar", formatMoney(decimal.Zero))
	assert.Equal(t, "950 Ar", formatMoney(decimal.NewFromInt(950)))
	assert.Equal(t, "150 000 Ar", formatMoney(decimal.NewFromInt(150000)))
	assert.Equal(t, "1 000 000 Ar", formatMoney(decimal.NewFromInt(1000000)))
	assert.Equal(t, "-1 500 Ar", formatMoney(decimal.NewFromInt(-1500)))
	assert.Equal(t, "13 Ar", formatMoney(decimal.RequireFromString("12.6")))
}

func TestFormatDay(t *testing.T) {
	assert.Equal(t, "10/03/2026", formatDay("2026-03-10"))
	assert.Equal(t, "—", formatDay(""))
}

func TestGenerateFacturationPDF(t *testing.T) {
	f := entity.Facturation{
		ID: 7, ReceptionID: 4, DatePaiement: "2026-03-10", NumeroFacture: "FAC-2026-001",
		Encaissement: "Espèces", PrixUnitaire: decimal.NewFromInt(1500), Quantite: decimal.NewFromInt(100),
		MontantPaye: decimal.NewFromInt(100000), Statut: entity.StatusPaiementIncomplet,
	}
	doc := appbilling.FacturationDocument{
		Facturation: f,
		Reception:   entity.Reception{ID: 4, Type: entity.MaterialHuile, NomFournisseur: "Distillerie", PoidsNet: decimal.NewFromInt(100), Unite: "L"},
		Impayes:     []entity.Impaye{{DatePaiement: "2026-03-12", MontantPaye: decimal.NewFromInt(50000)}},
		Balance:     finance.ComputeBalance(f.PrixUnitaire, f.Quantite, decimal.NewFromInt(150000), decimal.Zero),
	}
	out, err := NewMarotoPDFGenerator("").GenerateFacturationPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateFicheLivraisonPDF(t *testing.T) {
	doc := appbilling.FicheLivraisonDocument{
		Fiche: entity.FicheLivraison{
			ID: 10, ReceptionID: 6, DateLivraison: "2026-03-15", LivreurNom: "Randria",
			Destination: "Toamasina", PoidsNet: decimal.NewFromInt(50),
			RistourneRegionale: decimal.NewFromInt(2500), RistourneCommunale: decimal.NewFromInt(1500),
		},
		Reception: entity.Reception{ID: 6, Type: entity.MaterialHuile, Unite: "L"},
	}
	out, err := NewMarotoPDFGenerator("Via Consulting").GenerateFicheLivraisonPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
