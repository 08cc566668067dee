package store

import (
	"time"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// State vue instantanée du cache. Les tranches ne sont jamais modifiées en place par le
// réducteur: une State obtenue via Snapshot reste valide après les mises à jour suivantes.
type State struct {
	Receptions      []entity.Reception
	Facturations    []entity.Facturation
	Impayes         []entity.Impaye
	FicheLivraisons []entity.FicheLivraison

	Loading        bool
	InitialLoading bool
	Error          string
	Version        uint64
	FetchedAt      time.Time

	inflight   int
	appliedSeq uint64
}

// Reception renvoie la réception id.
func (s State) Reception(id int64) (entity.Reception, bool) {
	for _, r := range s.Receptions {
		if r.ID == id {
			return r, true
		}
	}
	return entity.Reception{}, false
}

// Facturation renvoie la facturation id.
func (s State) Facturation(id int64) (entity.Facturation, bool) {
	for _, f := range s.Facturations {
		if f.ID == id {
			return f, true
		}
	}
	return entity.Facturation{}, false
}

// Impaye renvoie l'impayé id.
func (s State) Impaye(id int64) (entity.Impaye, bool) {
	for _, i := range s.Impayes {
		if i.ID == id {
			return i, true
		}
	}
	return entity.Impaye{}, false
}

// FicheLivraison renvoie la fiche id.
func (s State) FicheLivraison(id int64) (entity.FicheLivraison, bool) {
	for _, f := range s.FicheLivraisons {
		if f.ID == id {
			return f, true
		}
	}
	return entity.FicheLivraison{}, false
}

// FacturationsByReception facturations rattachées à receptionID.
func (s State) FacturationsByReception(receptionID int64) []entity.Facturation {
	var out []entity.Facturation
	for _, f := range s.Facturations {
		if f.ReceptionID == receptionID {
			out = append(out, f)
		}
	}
	return out
}

// ImpayesByReception impayés rattachés à receptionID.
func (s State) ImpayesByReception(receptionID int64) []entity.Impaye {
	var out []entity.Impaye
	for _, i := range s.Impayes {
		if i.ReceptionID == receptionID {
			out = append(out, i)
		}
	}
	return out
}

// FicheLivraisonsByReception fiches rattachées à receptionID.
func (s State) FicheLivraisonsByReception(receptionID int64) []entity.FicheLivraison {
	var out []entity.FicheLivraison
	for _, f := range s.FicheLivraisons {
		if f.ReceptionID == receptionID {
			out = append(out, f)
		}
	}
	return out
}
