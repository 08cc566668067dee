package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

func TestReduce_ChargementsConcurrents(t *testing.T) {
	s := State{InitialLoading: true}
	s = reduce(s, fetchStarted{})
	s = reduce(s, fetchStarted{})
	assert.True(t, s.Loading)

	newer := fetchSucceeded{seq: 2, receptions: []entity.Reception{{ID: 1}, {ID: 2}}}
	older := fetchSucceeded{seq: 1, receptions: []entity.Reception{{ID: 1}}}
	s = reduce(s, newer)
	assert.True(t, s.Loading)
	s = reduce(s, older)
	assert.False(t, s.Loading)
	assert.False(t, s.InitialLoading)
	assert.Len(t, s.Receptions, 2, "un chargement plus ancien ne remplace pas un plus récent")
}

func TestReduce_StatutLocal(t *testing.T) {
	s := State{Receptions: []entity.Reception{{ID: 7, Statut: entity.StatusPaye}}}
	orig := s.Receptions
	s = reduce(s, receptionStatus{id: 7, status: entity.StatusLivre})
	assert.Equal(t, entity.StatusLivre, s.Receptions[0].Statut)
	assert.Equal(t, entity.StatusPaye, orig[0].Statut)

	v := s.Version
	s = reduce(s, receptionStatus{id: 99, status: entity.StatusLivre})
	assert.Len(t, s.Receptions, 1)
	assert.Equal(t, v+1, s.Version)
}

func TestReduce_MiseAJourAbsenteAjoute(t *testing.T) {
	s := reduce(State{}, facturationUpdated{f: entity.Facturation{ID: 3}})
	assert.Len(t, s.Facturations, 1)
	s = reduce(s, facturationRemoved{id: 3})
	assert.Empty(t, s.Facturations)
}

func TestMerge(t *testing.T) {
	sent := entity.Facturation{ReceptionID: 4, NumeroFacture: "F-1", Designation: "Achat"}
	got := merge(sent, &entity.Facturation{ID: 12, Statut: entity.StatusPaye, Designation: "Achat HE"})
	assert.Equal(t, int64(12), got.ID)
	assert.Equal(t, int64(4), got.ReceptionID)
	assert.Equal(t, "F-1", got.NumeroFacture)
	assert.Equal(t, "Achat HE", got.Designation)
	assert.Equal(t, entity.StatusPaye, got.Statut)

	assert.Equal(t, sent, merge(sent, nil))
}
