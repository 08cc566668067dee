package views_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/application/views"
	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/infrastructure/memapi"
)

func setup(t *testing.T) *views.UseCase {
	t.Helper()
	s := store.New(memapi.Demo(), zerolog.Nop())
	require.NoError(t, s.Fetch(context.Background()))
	return views.NewUseCase(s)
}

func TestReceptions_TriEtPagination(t *testing.T) {
	uc := setup(t)
	res, err := uc.Receptions(dto.ListQuery{PageRequest: dto.PageRequest{Limit: 4}})
	require.NoError(t, err)
	assert.Equal(t, 6, res.Page.Total)
	require.Len(t, res.Items, 4)
	for i := 1; i < len(res.Items); i++ {
		assert.False(t, res.Items[i].DateHeure.After(res.Items[i-1].DateHeure.Time), "tri par date décroissante")
	}

	next, err := uc.Receptions(dto.ListQuery{PageRequest: dto.PageRequest{Limit: 4, Offset: 4}})
	require.NoError(t, err)
	assert.Len(t, next.Items, 2)

	all, err := uc.Receptions(dto.ListQuery{PageRequest: dto.PageRequest{Limit: 1000}})
	require.NoError(t, err)
	assert.Equal(t, dto.MaxLimit, all.Page.Limit)

	def, err := uc.Receptions(dto.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, dto.DefaultLimit, def.Page.Limit)
}

func TestReceptions_RechercheSansAccents(t *testing.T) {
	uc := setup(t)
	res, err := uc.Receptions(dto.ListQuery{Q: "fenerive"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Fénérive-Est", res.Items[0].Provenance)

	res, err = uc.Receptions(dto.ListQuery{Q: "MANANARA", Type: "he"})
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)

	res, err = uc.Receptions(dto.ListQuery{Statut: "paye"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, entity.StatusPaye, res.Items[0].Statut)
}

func TestReceptions_PlageDeDates(t *testing.T) {
	uc := setup(t)
	res, err := uc.Receptions(dto.ListQuery{From: "2026-03-02", To: "2026-03-02"})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	_, err = uc.Receptions(dto.ListQuery{From: "02/03/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Receptions(dto.ListQuery{From: "2026-03-05", To: "2026-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAgreage(t *testing.T) {
	uc := setup(t)
	prov, err := uc.AgreageProvisoire(dto.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, prov.Items, 2)

	def, err := uc.AgreageDefinitif(dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, def.Items, 1)
	assert.Equal(t, entity.StatusValide, def.Items[0].Statut)
}

func TestExportsEtTransport(t *testing.T) {
	uc := setup(t)
	ex, err := uc.Exports(dto.ListQuery{Q: "fac-2026-002"})
	require.NoError(t, err)
	require.Len(t, ex.Items, 1)
	require.NotNil(t, ex.Items[0].Reception)
	assert.True(t, decimal.NewFromInt(3000000).Equal(ex.Items[0].Calculs.Remaining))

	tr, err := uc.Transport(dto.ListQuery{Q: "toamasina"})
	require.NoError(t, err)
	require.Len(t, tr.Items, 1)
	assert.Equal(t, entity.StatusLivre, tr.Items[0].ReceptionStatut)
}

func TestStock(t *testing.T) {
	uc := setup(t)
	rows, err := uc.Stock(dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	he := rows[2]
	assert.Equal(t, entity.MaterialHuile, he.Type)
	assert.Equal(t, 3, he.Receptions)
	assert.True(t, decimal.NewFromInt(250).Equal(he.Recu))
	assert.True(t, decimal.NewFromInt(50).Equal(he.Livre))
	assert.True(t, decimal.NewFromInt(200).Equal(he.Disponible))

	only, err := uc.Stock(dto.ListQuery{Type: "FG"})
	require.NoError(t, err)
	assert.Len(t, only, 1)
}

func TestReceptionBalance(t *testing.T) {
	b := views.ReceptionBalance(
		[]entity.Facturation{{PrixUnitaire: decimal.NewFromInt(1500), Quantite: decimal.NewFromInt(100), MontantPaye: decimal.NewFromInt(100000)}},
		[]entity.Impaye{{MontantPaye: decimal.NewFromInt(49999)}},
	)
	assert.True(t, b.IsComplete)
	assert.True(t, decimal.NewFromInt(1).Equal(b.Remaining))

	assert.True(t, views.ReceptionBalance(nil, nil).Total.IsZero())
}
