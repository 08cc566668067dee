// Package views projections en lecture seule du cache pour les pages liste du tableau de bord.
// Aucune vue ne modifie de statut: les actions passent par les cas d'usage dédiés.
package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/pkg/textfold"
)

const dateLayout = "2006-01-02"

// Snapshotter fournit l'état courant du cache.
type Snapshotter interface {
	Snapshot() store.State
}

// filter ListQuery décodée.
type filter struct {
	q      string
	typ    string
	statut string
	from   time.Time
	to     time.Time // exclu: lendemain de la borne saisie
}

func parseQuery(in dto.ListQuery) (filter, error) {
	f := filter{
		q:      strings.TrimSpace(in.Q),
		typ:    strings.ToUpper(strings.TrimSpace(in.Type)),
		statut: strings.TrimSpace(in.Statut),
	}
	var err error
	if s := strings.TrimSpace(in.From); s != "" {
		if f.from, err = time.ParseInLocation(dateLayout, s, time.Local); err != nil {
			return f, fmt.Errorf("%w: date de début invalide %q", domain.ErrInvalidInput, s)
		}
	}
	if s := strings.TrimSpace(in.To); s != "" {
		if f.to, err = time.ParseInLocation(dateLayout, s, time.Local); err != nil {
			return f, fmt.Errorf("%w: date de fin invalide %q", domain.ErrInvalidInput, s)
		}
		f.to = f.to.AddDate(0, 0, 1)
	}
	if !f.from.IsZero() && !f.to.IsZero() && !f.from.Before(f.to) {
		return f, fmt.Errorf("%w: la date de début doit précéder la date de fin", domain.ErrInvalidInput)
	}
	return f, nil
}

func (f filter) matchType(t string) bool { return f.typ == "" || strings.EqualFold(f.typ, t) }

func (f filter) matchStatut(s string) bool {
	return f.statut == "" || textfold.Fold(f.statut) == textfold.Fold(s)
}

// matchDate: sans borne, tout passe; avec borne, une date absente est exclue.
func (f filter) matchDate(t time.Time) bool {
	if f.from.IsZero() && f.to.IsZero() {
		return true
	}
	if t.IsZero() {
		return false
	}
	if !f.from.IsZero() && t.Before(f.from) {
		return false
	}
	if !f.to.IsZero() && !t.Before(f.to) {
		return false
	}
	return true
}

func (f filter) matchText(fields ...string) bool { return textfold.Contains(f.q, fields...) }

// parseDay lit une date AAAA-MM-JJ (ou date/heure); zéro si illisible.
func parseDay(s string) time.Time {
	s = strings.TrimSpace(s)
	if len(s) >= len(dateLayout) {
		if t, err := time.ParseInLocation(dateLayout, s[:len(dateLayout)], time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// dated élément et sa clé de tri.
type dated[T any] struct {
	item T
	at   time.Time
	id   int64
}

// page trie par date décroissante (puis id décroissant) et découpe selon p.
func page[T any](rows []dated[T], p dto.PageRequest) dto.ListResponse[T] {
	p.DefaultPage()
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].at.Equal(rows[j].at) {
			return rows[i].at.After(rows[j].at)
		}
		return rows[i].id > rows[j].id
	})
	total := len(rows)
	start := min(p.Offset, total)
	end := min(start+p.Limit, total)
	items := make([]T, 0, end-start)
	for _, r := range rows[start:end] {
		items = append(items, r.item)
	}
	return dto.ListResponse[T]{
		Items: items,
		Page:  dto.PageResponse{Limit: p.Limit, Offset: p.Offset, Total: total},
	}
}
