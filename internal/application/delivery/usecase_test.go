package delivery_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viaconsulting/dashboard-huiles/internal/application/delivery"
	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/infrastructure/memapi"
)

func setup(t *testing.T) (*delivery.UseCase, *store.ReceptionStore, *memapi.Backend) {
	t.Helper()
	b := memapi.Demo()
	s := store.New(b, zerolog.Nop())
	require.NoError(t, s.Fetch(context.Background()))
	return delivery.NewUseCase(s, zerolog.Nop()), s, b
}

func idWithStatus(t *testing.T, s *store.ReceptionStore, status string) int64 {
	t.Helper()
	for _, r := range s.Snapshot().Receptions {
		if r.Statut == status {
			return r.ID
		}
	}
	t.Fatalf("aucune réception au statut %q", status)
	return 0
}

func ficheRequest(receptionID int64) dto.FicheLivraisonRequest {
	return dto.FicheLivraisonRequest{
		ReceptionID:     receptionID,
		DateLivraison:   "2026-03-15",
		LivreurNom:      "Randria",
		LivreurContact:  "032 00 000 00",
		LieuDepart:      "Maroantsetra",
		Destination:     "Toamasina",
		DestinataireNom: "Via Consulting",
	}
}

func TestTransitions(t *testing.T) {
	uc, s, _ := setup(t)

	tr, err := uc.Transitions(context.Background(), idWithStatus(t, s, entity.StatusPaye))
	require.NoError(t, err)
	assert.True(t, tr.CanDeliver)
	assert.Equal(t, entity.StatusPaye, tr.CurrentStatus)

	tr, err = uc.Transitions(context.Background(), idWithStatus(t, s, entity.StatusEnCoursTest))
	require.NoError(t, err)
	assert.False(t, tr.CanDeliver)
	assert.ElementsMatch(t, []string{entity.StatusValide, entity.StatusRefuse}, tr.AvailableTransitions)
}

func TestCreateFicheLivraison_Autorisee(t *testing.T) {
	uc, s, _ := setup(t)
	id := idWithStatus(t, s, entity.StatusPaye)
	rec, _ := s.Snapshot().Reception(id)

	res, err := uc.CreateFicheLivraison(context.Background(), ficheRequest(id))
	require.NoError(t, err)
	assert.NotZero(t, res.Fiche.ID)
	assert.Equal(t, entity.MaterialLabel(rec.Type), res.Fiche.TypeProduit)
	assert.True(t, rec.PoidsNet.Equal(res.Fiche.PoidsNet))
	assert.Len(t, s.Snapshot().FicheLivraisonsByReception(id), 1)
}

func TestCreateFicheLivraison_TransitionRefusee(t *testing.T) {
	uc, s, b := setup(t)
	id := idWithStatus(t, s, entity.StatusEnAttenteTest)

	_, err := uc.CreateFicheLivraison(context.Background(), ficheRequest(id))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransitionNotAllowed)
	assert.Equal(t, 0, b.Calls("CreateFicheLivraison"))
}

func TestCreateFicheLivraison_Validation(t *testing.T) {
	uc, s, b := setup(t)
	in := ficheRequest(idWithStatus(t, s, entity.StatusPaye))
	in.Destination = ""
	in.RistourneCommunale = dto.ParseAmount("-5")

	_, err := uc.CreateFicheLivraison(context.Background(), in)
	require.Error(t, err)
	fields := domain.FieldErrors(err)
	assert.Contains(t, fields, "destination")
	assert.Contains(t, fields, "ristourne_communale")
	assert.Equal(t, 0, b.Calls("GetReceptionTransitions"))
}

func TestMarquerCommeLivre(t *testing.T) {
	uc, s, _ := setup(t)

	_, err := uc.MarquerCommeLivre(context.Background(), idWithStatus(t, s, entity.StatusValide))
	assert.ErrorIs(t, err, domain.ErrTransitionNotAllowed)

	id := idWithStatus(t, s, entity.StatusPaye)
	rec, err := uc.MarquerCommeLivre(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusLivre, rec.Statut)

	cached, _ := s.Snapshot().Reception(id)
	assert.Equal(t, entity.StatusLivre, cached.Statut)
}
