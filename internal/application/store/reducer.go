package store

import (
	"time"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// action événement appliqué à State par reduce.
type action interface{ isAction() }

type (
	fetchStarted   struct{}
	fetchSucceeded struct {
		receptions      []entity.Reception
		facturations    []entity.Facturation
		impayes         []entity.Impaye
		ficheLivraisons []entity.FicheLivraison
		at              time.Time
		seq             uint64
	}
	fetchFailed      struct{ message string }
	mutationStarted  struct{}
	mutationFinished struct{ message string } // message vide = succès
	receptionAdded   struct{ r entity.Reception }
	receptionUpdated struct{ r entity.Reception }
	receptionRemoved struct{ id int64 }
	receptionStatus  struct {
		id     int64
		status string
	}
	facturationAdded   struct{ f entity.Facturation }
	facturationUpdated struct{ f entity.Facturation }
	facturationRemoved struct{ id int64 }
	impayeAdded        struct{ i entity.Impaye }
	impayeUpdated      struct{ i entity.Impaye }
	impayeRemoved      struct{ id int64 }
	ficheAdded         struct{ f entity.FicheLivraison }
	errorCleared       struct{}
)

func (fetchStarted) isAction()       {}
func (fetchSucceeded) isAction()     {}
func (fetchFailed) isAction()        {}
func (mutationStarted) isAction()    {}
func (mutationFinished) isAction()   {}
func (receptionAdded) isAction()     {}
func (receptionUpdated) isAction()   {}
func (receptionRemoved) isAction()   {}
func (receptionStatus) isAction()    {}
func (facturationAdded) isAction()   {}
func (facturationUpdated) isAction() {}
func (facturationRemoved) isAction() {}
func (impayeAdded) isAction()        {}
func (impayeUpdated) isAction()      {}
func (impayeRemoved) isAction()      {}
func (ficheAdded) isAction()         {}
func (errorCleared) isAction()       {}

// reduce fonction pure: renvoie le nouvel état sans modifier les tranches de s.
func reduce(s State, a action) State {
	switch a := a.(type) {
	case fetchStarted:
		s.inflight++
	case fetchSucceeded:
		s.inflight--
		if a.seq < s.appliedSeq {
			// un chargement plus récent a déjà été appliqué
			break
		}
		s.appliedSeq = a.seq
		s.Receptions = a.receptions
		s.Facturations = a.facturations
		s.Impayes = a.impayes
		s.FicheLivraisons = a.ficheLivraisons
		s.FetchedAt = a.at
		s.InitialLoading = false
		s.Error = ""
	case fetchFailed:
		s.inflight--
		s.InitialLoading = false
		s.Error = a.message
	case mutationStarted:
		s.inflight++
	case mutationFinished:
		s.inflight--
		if a.message != "" {
			s.Error = a.message
		}
	case receptionAdded:
		s.Receptions = appended(s.Receptions, a.r)
	case receptionUpdated:
		s.Receptions = replaced(s.Receptions, a.r, func(r entity.Reception) bool { return r.ID == a.r.ID })
	case receptionRemoved:
		s.Receptions = removed(s.Receptions, func(r entity.Reception) bool { return r.ID == a.id })
	case receptionStatus:
		if r, ok := s.Reception(a.id); ok {
			r.Statut = a.status
			s.Receptions = replaced(s.Receptions, r, func(x entity.Reception) bool { return x.ID == a.id })
		}
	case facturationAdded:
		s.Facturations = appended(s.Facturations, a.f)
	case facturationUpdated:
		s.Facturations = replaced(s.Facturations, a.f, func(f entity.Facturation) bool { return f.ID == a.f.ID })
	case facturationRemoved:
		s.Facturations = removed(s.Facturations, func(f entity.Facturation) bool { return f.ID == a.id })
	case impayeAdded:
		s.Impayes = appended(s.Impayes, a.i)
	case impayeUpdated:
		s.Impayes = replaced(s.Impayes, a.i, func(i entity.Impaye) bool { return i.ID == a.i.ID })
	case impayeRemoved:
		s.Impayes = removed(s.Impayes, func(i entity.Impaye) bool { return i.ID == a.id })
	case ficheAdded:
		s.FicheLivraisons = appended(s.FicheLivraisons, a.f)
	case errorCleared:
		s.Error = ""
	default:
		return s
	}
	if s.inflight < 0 {
		s.inflight = 0
	}
	s.Loading = s.inflight > 0
	s.Version++
	return s
}

func appended[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}

// replaced remplace le premier élément qui correspond, ou l'ajoute s'il est absent.
func replaced[T any](list []T, v T, match func(T) bool) []T {
	out := make([]T, len(list))
	copy(out, list)
	for i := range out {
		if match(out[i]) {
			out[i] = v
			return out
		}
	}
	return append(out, v)
}

func removed[T any](list []T, match func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if !match(v) {
			out = append(out, v)
		}
	}
	return out
}
