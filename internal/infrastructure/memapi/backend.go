// Package memapi backend de gestion en mémoire, substituable au client HTTP.
// Il sert au mode démonstration (API_URL=memory://) et aux tests des couches supérieures.
// Comme le vrai backend, il est seul à attribuer les statuts et à déclarer les transitions.
package memapi

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/finance"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/repository"
)

var _ repository.Gateway = (*Backend)(nil)

// DefaultTransitions graphe de statuts appliqué par défaut.
var DefaultTransitions = map[string][]string{
	entity.StatusEnAttenteTest:     {entity.StatusEnCoursTest},
	entity.StatusEnCoursTest:       {entity.StatusValide, entity.StatusRefuse},
	entity.StatusValide:            {entity.StatusDefinitif},
	entity.StatusDefinitif:         {entity.StatusEnAttentePaiement},
	entity.StatusEnAttentePaiement: {entity.StatusPaye, entity.StatusPaiementIncomplet},
	entity.StatusPaiementIncomplet: {entity.StatusPaye},
	entity.StatusPaye:              {entity.StatusLivre},
}

// Backend état complet du backend simulé.
type Backend struct {
	mu sync.Mutex

	receptions   []entity.Reception
	facturations []entity.Facturation
	impayes      []entity.Impaye
	fiches       []entity.FicheLivraison
	nextID       int64

	transitions map[string][]string
	failures    map[string]error
	calls       map[string]int
	sparse      bool
	now         func() time.Time
}

// New backend vide avec DefaultTransitions.
func New() *Backend {
	return &Backend{
		nextID:      1,
		transitions: DefaultTransitions,
		failures:    map[string]error{},
		calls:       map[string]int{},
		now:         time.Now,
	}
}

// FailOn force l'opération op (nom de méthode, ex. "ListImpayes") à renvoyer err. nil rétablit.
func (b *Backend) FailOn(op string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		delete(b.failures, op)
		return
	}
	b.failures[op] = err
}

// Calls nombre d'appels reçus par op.
func (b *Backend) Calls(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[op]
}

// SetSparse: les créations et mises à jour ne renvoient plus que l'id, comme certains
// contrôleurs du backend réel.
func (b *Backend) SetSparse(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sparse = v
}

// SetTransitions remplace le graphe de statuts.
func (b *Backend) SetTransitions(t map[string][]string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.transitions = t
}

// SetStatus force le statut d'une réception (préparation de scénarios).
func (b *Backend) SetStatus(id int64, status string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	r := b.reception(id)
	if r == nil {
		return notFound("réception")
	}
	r.Statut = status
	return nil
}

// enter verrouille, comptabilise l'appel et renvoie l'échec programmé éventuel.
// L'appelant doit appeler b.mu.Unlock.
func (b *Backend) enter(ctx context.Context, op string) error {
	b.mu.Lock()
	b.calls[op]++
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("memapi: %s: %w: %w", op, domain.ErrUpstream, err)
	}
	return b.failures[op]
}

func (b *Backend) id() int64 {
	id := b.nextID
	b.nextID++
	return id
}

func (b *Backend) stamp() *entity.Timestamp {
	return &entity.Timestamp{Time: b.now().Truncate(time.Second)}
}

func notFound(what string) error {
	return &domain.APIError{Status: http.StatusNotFound, Message: what + " introuvable"}
}

func unprocessable(field, msg string) error {
	return &domain.APIError{
		Status:  http.StatusUnprocessableEntity,
		Message: msg,
		Fields:  map[string][]string{field: {msg}},
	}
}

func (b *Backend) reception(id int64) *entity.Reception {
	for i := range b.receptions {
		if b.receptions[i].ID == id {
			return &b.receptions[i]
		}
	}
	return nil
}

func (b *Backend) facturationFor(receptionID int64) *entity.Facturation {
	for i := len(b.facturations) - 1; i >= 0; i-- {
		if b.facturations[i].ReceptionID == receptionID {
			return &b.facturations[i]
		}
	}
	return nil
}

func (b *Backend) allowed(current, target string) bool {
	for _, t := range b.transitions[current] {
		if strings.EqualFold(t, target) {
			return true
		}
	}
	return false
}

// solde cumule la facturation et les impayés de la réception.
func (b *Backend) solde(receptionID int64) *entity.ReceptionSolde {
	f := b.facturationFor(receptionID)
	if f == nil {
		return &entity.ReceptionSolde{Exists: false}
	}
	paid := f.MontantPaye
	var last *entity.Impaye
	for i := range b.impayes {
		if b.impayes[i].ReceptionID == receptionID {
			paid = paid.Add(b.impayes[i].MontantPaye)
			last = &b.impayes[i]
		}
	}
	bal := finance.ComputeBalance(f.PrixUnitaire, f.Quantite, paid, f.PaiementAvance)
	calc := &entity.ImpayeCalculs{PrixTotal: bal.Total, ResteAPayer: bal.Remaining, PaiementComplet: bal.IsComplete}
	data := last
	if data == nil {
		data = &entity.Impaye{
			ReceptionID:   receptionID,
			DatePaiement:  f.DatePaiement,
			NumeroFacture: f.NumeroFacture,
			Designation:   f.Designation,
			Encaissement:  f.Encaissement,
			PrixUnitaire:  f.PrixUnitaire,
			Quantite:      f.Quantite,
			MontantPaye:   decimal.Zero,
		}
	}
	cp := *data
	cp.Calculs = calc
	return &entity.ReceptionSolde{Exists: true, Data: &cp, Calculs: calc}
}

// syncPaymentStatus aligne le statut de la réception sur son solde.
func (b *Backend) syncPaymentStatus(receptionID int64) {
	r := b.reception(receptionID)
	if r == nil || r.Statut == entity.StatusLivre {
		return
	}
	s := b.solde(receptionID)
	if !s.Exists {
		return
	}
	if s.Calculs.PaiementComplet {
		r.Statut = entity.StatusPaye
	} else {
		r.Statut = entity.StatusPaiementIncomplet
	}
	r.UpdatedAt = b.stamp()
}

func sortByID[T any](list []T, id func(T) int64) []T {
	out := make([]T, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}
