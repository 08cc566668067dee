package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viaconsulting/dashboard-huiles/internal/application/billing"
	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/infrastructure/memapi"
)

func setup(t *testing.T) (*store.ReceptionStore, *memapi.Backend) {
	t.Helper()
	b := memapi.Demo()
	s := store.New(b, zerolog.Nop())
	require.NoError(t, s.Fetch(context.Background()))
	return s, b
}

func receptionWithStatus(t *testing.T, s *store.ReceptionStore, status string) entity.Reception {
	t.Helper()
	for _, r := range s.Snapshot().Receptions {
		if r.Statut == status {
			return r
		}
	}
	t.Fatalf("aucune réception au statut %q", status)
	return entity.Reception{}
}

func amount(v int64) dto.Amount { return dto.NewAmount(decimal.NewFromInt(v)) }

func facturationRequest(receptionID int64, paye int64) dto.FacturationRequest {
	return dto.FacturationRequest{
		ReceptionID:        receptionID,
		DatePaiement:       "2026-03-10",
		NumeroFacture:      "FAC-2026-200",
		Designation:        "Huile essentielle",
		EncaissementType:   "Mobile money",
		EncaissementValeur: "034 12 345 67",
		PrixUnitaire:       amount(1500),
		Quantite:           amount(100),
		MontantPaye:        amount(paye),
	}
}

func TestFacturationPreview(t *testing.T) {
	s, _ := setup(t)
	uc := billing.NewFacturationUseCase(s, zerolog.Nop())
	r := receptionWithStatus(t, s, entity.StatusValide)

	p := uc.Preview(facturationRequest(r.ID, 150000))
	assert.True(t, p.Valid)
	assert.True(t, decimal.NewFromInt(150000).Equal(p.Total))
	assert.True(t, p.Remaining.IsZero())
	assert.Equal(t, entity.StatusPaye, p.Statut)

	p = uc.Preview(facturationRequest(r.ID, 100000))
	assert.True(t, decimal.NewFromInt(50000).Equal(p.Remaining))
	assert.Equal(t, entity.StatusPaiementIncomplet, p.Statut)

	p = uc.Preview(facturationRequest(r.ID, 150001))
	assert.False(t, p.Valid)
	assert.Contains(t, p.Errors, "montant_paye")
}

func TestFacturationSubmit_CreeAvecStatutDerive(t *testing.T) {
	s, b := setup(t)
	uc := billing.NewFacturationUseCase(s, zerolog.Nop())
	r := receptionWithStatus(t, s, entity.StatusValide)

	res, err := uc.Submit(context.Background(), facturationRequest(r.ID, 150000))
	require.NoError(t, err)
	assert.Equal(t, billing.ActionCreated, res.Action)
	assert.Equal(t, entity.StatusPaye, res.Facturation.Statut)
	assert.Equal(t, "Mobile money: 034 12 345 67", res.Facturation.Encaissement)
	assert.Equal(t, 1, b.Calls("CreateFacturation"))

	got, _ := s.Snapshot().Reception(r.ID)
	assert.Equal(t, entity.StatusPaye, got.Statut)
}

func TestFacturationSubmit_MetAJourSiExistante(t *testing.T) {
	s, b := setup(t)
	uc := billing.NewFacturationUseCase(s, zerolog.Nop())
	r := receptionWithStatus(t, s, entity.StatusPaiementIncomplet)
	existing := s.Snapshot().FacturationsByReception(r.ID)
	require.Len(t, existing, 1)

	in := facturationRequest(r.ID, 9000000)
	in.NumeroFacture = existing[0].NumeroFacture
	in.PrixUnitaire = amount(30000)
	in.Quantite = amount(300)

	res, err := uc.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, billing.ActionUpdated, res.Action)
	assert.Equal(t, existing[0].ID, res.Facturation.ID)
	assert.Equal(t, entity.StatusPaye, res.Facturation.Statut)
	assert.Equal(t, 0, b.Calls("CreateFacturation"))
	assert.Len(t, s.Snapshot().FacturationsByReception(r.ID), 1)
}

func TestFacturationSubmit_RefusAvantAppelReseau(t *testing.T) {
	s, b := setup(t)
	uc := billing.NewFacturationUseCase(s, zerolog.Nop())
	r := receptionWithStatus(t, s, entity.StatusValide)

	in := facturationRequest(r.ID, 100000)
	in.PaiementAvance = amount(60000) // 160000 > 150000
	_, err := uc.Submit(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, domain.FieldErrors(err), "montant_paye")

	in = facturationRequest(r.ID, 0)
	in.NumeroFacture = ""
	in.DatePaiement = " "
	_, err = uc.Submit(context.Background(), in)
	require.Error(t, err)
	fields := domain.FieldErrors(err)
	assert.Contains(t, fields, "numero_facture")
	assert.Contains(t, fields, "date_paiement")

	in = facturationRequest(9999, 1000)
	_, err = uc.Submit(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, domain.FieldErrors(err), "reception_id")

	assert.Equal(t, 0, b.Calls("CheckFacturationReception"))
	assert.Equal(t, 0, b.Calls("CreateFacturation"))
}

func TestFacturationSubmit_NumeroEnDouble(t *testing.T) {
	s, b := setup(t)
	uc := billing.NewFacturationUseCase(s, zerolog.Nop())
	r := receptionWithStatus(t, s, entity.StatusValide)

	in := facturationRequest(r.ID, 1000)
	in.NumeroFacture = "fac-2026-001" // utilisé par une autre réception
	_, err := uc.Submit(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Equal(t, 0, b.Calls("CreateFacturation"))
}

func TestFacturationSubmit_CacheNonCharge(t *testing.T) {
	b := memapi.Demo()
	s := store.New(b, zerolog.Nop())
	uc := billing.NewFacturationUseCase(s, zerolog.Nop())

	in := facturationRequest(3, 1000) // réception Validé du jeu de démonstration
	in.NumeroFacture = "FAC-2026-001"
	_, err := uc.Submit(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotLoaded)
	assert.Equal(t, 0, b.Calls("CheckFacturationReception"))
	assert.Equal(t, 0, b.Calls("CreateFacturation"))

	// premier chargement en échec: toujours bloqué, pas de "réception introuvable"
	b.FailOn("ListReceptions", &domain.APIError{Status: 503, Message: "maintenance"})
	require.Error(t, s.Fetch(context.Background()))
	_, err = uc.Submit(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotLoaded)
	assert.Nil(t, domain.FieldErrors(err))
	assert.Equal(t, 0, b.Calls("CreateFacturation"))

	b.FailOn("ListReceptions", nil)
	require.NoError(t, s.Fetch(context.Background()))
	_, err = uc.Submit(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 0, b.Calls("CreateFacturation"))
}

func TestImpaye_PrefillEtSubmit(t *testing.T) {
	ctx := context.Background()
	s, _ := setup(t)
	uc := billing.NewImpayeUseCase(s, zerolog.Nop())
	r := receptionWithStatus(t, s, entity.StatusPaiementIncomplet)

	pre, err := uc.Prefill(ctx, r.ID)
	require.NoError(t, err)
	require.True(t, pre.Exists)
	require.NotNil(t, pre.Impaye)
	assert.True(t, decimal.NewFromInt(3000000).Equal(pre.Impaye.MontantPaye))
	assert.Equal(t, "FAC-2026-002", pre.Impaye.NumeroFacture)

	res, err := uc.Submit(ctx, dto.ImpayeRequest{
		ReceptionID:      r.ID,
		DatePaiement:     "2026-03-12",
		NumeroFacture:    pre.Impaye.NumeroFacture,
		EncaissementType: "Espèces",
		PrixUnitaire:     dto.NewAmount(pre.Impaye.PrixUnitaire),
		Quantite:         dto.NewAmount(pre.Impaye.Quantite),
		MontantPaye:      dto.NewAmount(pre.Impaye.MontantPaye),
	})
	require.NoError(t, err)
	assert.NotZero(t, res.Impaye.ID)
	assert.Equal(t, "Espèces", res.Impaye.Encaissement)

	got, _ := s.Snapshot().Reception(r.ID)
	assert.Equal(t, entity.StatusPaye, got.Statut)
}

func TestImpaye_PrefillSansFacturation(t *testing.T) {
	s, _ := setup(t)
	uc := billing.NewImpayeUseCase(s, zerolog.Nop())
	r := receptionWithStatus(t, s, entity.StatusEnAttenteTest)

	pre, err := uc.Prefill(context.Background(), r.ID)
	require.NoError(t, err)
	assert.False(t, pre.Exists)
	assert.Nil(t, pre.Impaye)
}

func TestImpayeSubmit_Refus(t *testing.T) {
	ctx := context.Background()
	s, b := setup(t)
	uc := billing.NewImpayeUseCase(s, zerolog.Nop())
	r := receptionWithStatus(t, s, entity.StatusPaiementIncomplet)

	base := dto.ImpayeRequest{
		ReceptionID:   r.ID,
		DatePaiement:  "2026-03-12",
		NumeroFacture: "FAC-2026-002",
		PrixUnitaire:  amount(30000),
		Quantite:      amount(300),
	}

	in := base
	in.MontantPaye = amount(0)
	_, err := uc.Submit(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.MontantPaye = amount(9000001)
	_, err = uc.Submit(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, b.Calls("GetReceptionSolde"), "refus avant tout appel réseau")

	in.MontantPaye = amount(4000000) // reste à payer: 3 000 000
	_, err = uc.Submit(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, domain.FieldErrors(err), "montant_paye")
	assert.Equal(t, 0, b.Calls("CreateImpaye"))
}

type fakeGenerator struct {
	facturation *billing.FacturationDocument
	fiche       *billing.FicheLivraisonDocument
}

func (g *fakeGenerator) GenerateFacturationPDF(_ context.Context, doc billing.FacturationDocument) ([]byte, error) {
	g.facturation = &doc
	return []byte("%PDF-fake"), nil
}

func (g *fakeGenerator) GenerateFicheLivraisonPDF(_ context.Context, doc billing.FicheLivraisonDocument) ([]byte, error) {
	g.fiche = &doc
	return []byte("%PDF-fake"), nil
}

func TestPDFUseCase(t *testing.T) {
	ctx := context.Background()
	s, _ := setup(t)
	gen := &fakeGenerator{}
	uc := billing.NewPDFUseCase(s, gen)

	f := s.Snapshot().Facturations[0]
	out, name, err := uc.DownloadFacturationPDF(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	assert.Equal(t, "facture_FAC-2026-001.pdf", name)
	require.NotNil(t, gen.facturation)
	assert.Equal(t, f.ReceptionID, gen.facturation.Reception.ID)

	fiche := s.Snapshot().FicheLivraisons[0]
	_, name, err = uc.DownloadFicheLivraisonPDF(ctx, fiche.ID)
	require.NoError(t, err)
	assert.Contains(t, name, "bon_livraison_")
	assert.Equal(t, fiche.ReceptionID, gen.fiche.Reception.ID)

	_, _, err = uc.DownloadFacturationPDF(ctx, 424242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFacturation_ByStatus(t *testing.T) {
	s, b := setup(t)
	uc := billing.NewFacturationUseCase(s, zerolog.Nop())

	paid, err := uc.ByStatus(context.Background(), " "+entity.StatusPaye+" ")
	require.NoError(t, err)
	assert.Len(t, paid, 2)
	assert.Equal(t, 1, b.Calls("ListFacturationsByStatus"))

	_, err = uc.ByStatus(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, b.Calls("ListFacturationsByStatus"))
}
