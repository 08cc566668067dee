package reception_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/application/reception"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/infrastructure/memapi"
)

func str(s string) *string { return &s }

func amt(s string) *dto.Amount {
	a := dto.ParseAmount(s)
	return &a
}

func setup(t *testing.T) (*reception.UseCase, *store.ReceptionStore, *memapi.Backend) {
	t.Helper()
	b := memapi.Demo()
	s := store.New(b, zerolog.Nop())
	require.NoError(t, s.Fetch(context.Background()))
	return reception.NewUseCase(s), s, b
}

func validRequest() dto.ReceptionRequest {
	return dto.ReceptionRequest{
		Type:           str("cg"),
		DateHeure:      str("2026-03-20 09:15"),
		Designation:    str("Clous de girofle"),
		Provenance:     str("Fénérive-Est"),
		NomFournisseur: str("Rasoa"),
		PoidsBrut:      amt("210"),
		PoidsNet:       amt("200"),
		TauxHumidite:   amt("13,5"),
		PoidsAgreage:   amt("198"),
		Densite:        amt("1.04"), // sans objet pour CG
	}
}

func TestCreate(t *testing.T) {
	uc, s, _ := setup(t)
	res, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.MaterialClous, res.Type)
	assert.Equal(t, "Clous de girofle", res.TypeLabel)
	assert.Equal(t, "kg", res.Unite)
	assert.Equal(t, entity.StatusEnAttenteTest, res.Statut)
	assert.Equal(t, "13.5", res.TauxHumidite.Decimal.String())
	assert.False(t, res.Densite.Valid)

	_, ok := s.Snapshot().Reception(res.ID)
	assert.True(t, ok)
}

func TestCreate_Validation(t *testing.T) {
	uc, _, b := setup(t)
	in := validRequest()
	in.Type = str("XX")
	in.DateHeure = str("hier")
	in.PoidsNet = amt("250")
	in.TauxHumidite = amt("140")

	_, err := uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	fields := domain.FieldErrors(err)
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "date_heure")
	assert.Equal(t, 0, b.Calls("CreateReception"))

	in = validRequest()
	in.PoidsNet = amt("250")
	in.TauxHumidite = amt("140")
	_, err = uc.Create(context.Background(), in)
	fields = domain.FieldErrors(err)
	assert.Contains(t, fields, "poids_net")
	assert.Contains(t, fields, "taux_humidite")
}

func TestUpdate(t *testing.T) {
	uc, s, _ := setup(t)
	r := s.Snapshot().Receptions[0]

	res, err := uc.Update(context.Background(), r.ID, dto.ReceptionRequest{NomFournisseur: str("  Coopérative Nord ")})
	require.NoError(t, err)
	assert.Equal(t, "Coopérative Nord", res.NomFournisseur)
	assert.Equal(t, r.Designation, res.Designation)

	_, err = uc.Update(context.Background(), r.ID, dto.ReceptionRequest{PoidsNet: amt("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(context.Background(), 9999, dto.ReceptionRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	uc, s, _ := setup(t)
	r := s.Snapshot().Receptions[0]

	require.NoError(t, uc.Delete(context.Background(), r.ID))
	_, err := uc.Get(r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), r.ID), domain.ErrNotFound)
}
