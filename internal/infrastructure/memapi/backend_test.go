package memapi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/infrastructure/memapi"
)

func newReception(t *testing.T, b *memapi.Backend) *entity.Reception {
	t.Helper()
	r, err := b.CreateReception(context.Background(), &entity.Reception{
		Type:     entity.MaterialHuile,
		PoidsNet: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	return r
}

func TestCreateReception_StatutInitial(t *testing.T) {
	b := memapi.New()
	r := newReception(t, b)
	assert.Equal(t, entity.StatusEnAttenteTest, r.Statut)

	tr, err := b.GetReceptionTransitions(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{entity.StatusEnCoursTest}, tr.AvailableTransitions)
}

func TestFacturation_StatutReceptionSuitLeSolde(t *testing.T) {
	ctx := context.Background()
	b := memapi.New()
	r := newReception(t, b)

	_, err := b.CreateFacturation(ctx, &entity.Facturation{
		ReceptionID:   r.ID,
		NumeroFacture: "F-1",
		PrixUnitaire:  decimal.NewFromInt(1500),
		Quantite:      decimal.NewFromInt(100),
		MontantPaye:   decimal.NewFromInt(100000),
	})
	require.NoError(t, err)

	got, err := b.GetReception(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaiementIncomplet, got.Statut)

	solde, err := b.GetReceptionSolde(ctx, r.ID)
	require.NoError(t, err)
	require.True(t, solde.Exists)
	assert.True(t, decimal.NewFromInt(50000).Equal(solde.Calculs.ResteAPayer))

	_, err = b.CreateImpaye(ctx, &entity.Impaye{ReceptionID: r.ID, MontantPaye: decimal.NewFromInt(50000)})
	require.NoError(t, err)
	got, _ = b.GetReception(ctx, r.ID)
	assert.Equal(t, entity.StatusPaye, got.Statut)
}

func TestCreateFacturation_NumeroEnDouble(t *testing.T) {
	ctx := context.Background()
	b := memapi.New()
	r := newReception(t, b)
	f := &entity.Facturation{ReceptionID: r.ID, NumeroFacture: "F-1", PrixUnitaire: decimal.NewFromInt(1), Quantite: decimal.NewFromInt(1)}
	_, err := b.CreateFacturation(ctx, f)
	require.NoError(t, err)

	_, err = b.CreateFacturation(ctx, f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, domain.FieldErrors(err), "numero_facture")
}

func TestMarquerCommeLivre_RefuseHorsTransition(t *testing.T) {
	ctx := context.Background()
	b := memapi.New()
	r := newReception(t, b)

	_, err := b.MarquerCommeLivre(ctx, r.ID)
	require.Error(t, err)

	require.NoError(t, b.SetStatus(r.ID, entity.StatusPaye))
	got, err := b.MarquerCommeLivre(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusLivre, got.Statut)
}

func TestFailOnEtSparse(t *testing.T) {
	ctx := context.Background()
	b := memapi.New()
	boom := errors.New("boom")
	b.FailOn("ListReceptions", boom)
	_, err := b.ListReceptions(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, b.Calls("ListReceptions"))

	b.FailOn("ListReceptions", nil)
	b.SetSparse(true)
	r := newReception(t, b)
	assert.NotZero(t, r.ID)
	assert.Empty(t, r.Statut)
}

func TestDemo(t *testing.T) {
	b := memapi.Demo()
	list, err := b.ListReceptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 6)
	fiches, err := b.ListFicheLivraisons(context.Background())
	require.NoError(t, err)
	assert.Len(t, fiches, 1)
}
