// Package store tient le cache partagé des réceptions, facturations, impayés et fiches de
// livraison. Toutes les vues lisent ce cache; toutes les mutations passent par lui.
//
// Règle de cohérence: une mutation est d'abord appliquée localement, puis, pour tout ce qui
// touche aux finances ou au statut, le cache est rechargé en entier depuis le backend
// (seul maître des statuts). Un échec du rechargement n'annule pas la mutation réussie:
// il est seulement consigné dans State.Error.
package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/repository"
)

// ReceptionStore cache partagé, sûr pour un usage concurrent.
type ReceptionStore struct {
	api   repository.Gateway
	log   zerolog.Logger
	now   func() time.Time
	group singleflight.Group
	seq   atomic.Uint64

	mu    sync.RWMutex
	state State
}

// New crée un store vide; InitialLoading reste vrai jusqu'au premier Fetch.
func New(api repository.Gateway, log zerolog.Logger) *ReceptionStore {
	return &ReceptionStore{
		api:   api,
		log:   log.With().Str("component", "store").Logger(),
		now:   time.Now,
		state: State{InitialLoading: true},
	}
}

// Snapshot renvoie l'état courant. Les tranches sont partagées mais jamais modifiées.
func (s *ReceptionStore) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ClearError efface le message d'erreur affiché.
func (s *ReceptionStore) ClearError() { s.dispatch(errorCleared{}) }

func (s *ReceptionStore) dispatch(a action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, a)
	return s.state
}

// ── Chargement ──────────────────────────────────────────────────────────────

// Fetch recharge les quatre collections en parallèle et les remplace d'un bloc.
// Des appels simultanés partagent la même requête. En cas d'échec, les collections
// précédentes restent en place et Error est renseigné.
func (s *ReceptionStore) Fetch(ctx context.Context) error {
	_, err, _ := s.group.Do("fetch", func() (any, error) {
		return nil, s.fetch(ctx)
	})
	return err
}

func (s *ReceptionStore) fetch(ctx context.Context) error {
	s.dispatch(fetchStarted{})

	res := fetchSucceeded{seq: s.seq.Add(1)}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.receptions, err = s.api.ListReceptions(gctx)
		return err
	})
	g.Go(func() (err error) {
		res.facturations, err = s.api.ListFacturations(gctx)
		return err
	})
	g.Go(func() (err error) {
		res.impayes, err = s.api.ListImpayes(gctx)
		return err
	})
	g.Go(func() (err error) {
		res.ficheLivraisons, err = s.api.ListFicheLivraisons(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		msg := domain.DisplayMessage(err)
		s.dispatch(fetchFailed{message: msg})
		s.log.Error().Err(err).Msg("chargement des données impossible")
		return fmt.Errorf("store: chargement: %w", err)
	}

	res.receptions = nonNil(res.receptions)
	res.facturations = nonNil(res.facturations)
	res.impayes = nonNil(res.impayes)
	res.ficheLivraisons = nonNil(res.ficheLivraisons)
	res.at = s.now()
	st := s.dispatch(res)
	s.log.Debug().
		Int("receptions", len(st.Receptions)).
		Int("facturations", len(st.Facturations)).
		Int("impayes", len(st.Impayes)).
		Int("fiches", len(st.FicheLivraisons)).
		Msg("données chargées")
	return nil
}

// Invalidate force un rechargement complet, sans rejoindre un chargement déjà en vol.
func (s *ReceptionStore) Invalidate(ctx context.Context) error {
	return s.fetch(ctx)
}

// reconcile recharge après une mutation réussie. Il ne rejoint pas un Fetch déjà en vol
// (parti avant la mutation). L'annulation du contexte appelant n'interrompt pas le rechargement.
func (s *ReceptionStore) reconcile(ctx context.Context, reason string) {
	if err := s.fetch(context.WithoutCancel(ctx)); err != nil {
		s.log.Warn().Err(err).Str("after", reason).Msg("rechargement après mutation en échec")
	}
}

// begin marque une mutation en cours. La fonction renvoyée la clôt et renvoie err inchangé.
func (s *ReceptionStore) begin(op string) func(error) error {
	s.dispatch(mutationStarted{})
	return func(err error) error {
		if err == nil {
			s.dispatch(mutationFinished{})
			return nil
		}
		s.dispatch(mutationFinished{message: domain.DisplayMessage(err)})
		s.log.Error().Err(err).Str("op", op).Msg("mutation refusée")
		return err
	}
}

// ── Réceptions ──────────────────────────────────────────────────────────────

// CreateReception crée la réception et l'ajoute au cache.
func (s *ReceptionStore) CreateReception(ctx context.Context, r *entity.Reception) (*entity.Reception, error) {
	done := s.begin("create_reception")
	created, err := s.api.CreateReception(ctx, r)
	if err != nil {
		return nil, done(err)
	}
	rec := merge(*r, created)
	s.dispatch(receptionAdded{r: rec})
	_ = done(nil)
	return &rec, nil
}

// UpdateReception applique p et remplace l'entrée du cache.
func (s *ReceptionStore) UpdateReception(ctx context.Context, id int64, p entity.ReceptionPatch) (*entity.Reception, error) {
	done := s.begin("update_reception")
	updated, err := s.api.UpdateReception(ctx, id, p)
	if err != nil {
		return nil, done(err)
	}
	base, _ := s.Snapshot().Reception(id)
	base.ID = id
	p.Apply(&base)
	rec := merge(base, updated)
	s.dispatch(receptionUpdated{r: rec})
	_ = done(nil)
	return &rec, nil
}

// DeleteReception supprime la réception du backend puis du cache.
func (s *ReceptionStore) DeleteReception(ctx context.Context, id int64) error {
	done := s.begin("delete_reception")
	if err := s.api.DeleteReception(ctx, id); err != nil {
		return done(err)
	}
	s.dispatch(receptionRemoved{id: id})
	return done(nil)
}

// MarquerCommeLivre demande la transition vers « Livré » puis recharge le cache.
func (s *ReceptionStore) MarquerCommeLivre(ctx context.Context, id int64) (*entity.Reception, error) {
	done := s.begin("marquer_livre")
	updated, err := s.api.MarquerCommeLivre(ctx, id)
	if err != nil {
		return nil, done(err)
	}
	if updated != nil {
		base, _ := s.Snapshot().Reception(id)
		base.ID = id
		s.dispatch(receptionUpdated{r: merge(base, updated)})
	} else {
		s.dispatch(receptionStatus{id: id, status: entity.StatusLivre})
	}
	_ = done(nil)
	s.reconcile(ctx, "marquer_livre")
	rec, ok := s.Snapshot().Reception(id)
	if !ok {
		return updated, nil
	}
	return &rec, nil
}

// ── Facturations ────────────────────────────────────────────────────────────

// CreateFacturation crée la facturation puis recharge le cache.
func (s *ReceptionStore) CreateFacturation(ctx context.Context, f *entity.Facturation) (*entity.Facturation, error) {
	done := s.begin("create_facturation")
	created, err := s.api.CreateFacturation(ctx, f)
	if err != nil {
		return nil, done(err)
	}
	out := merge(*f, created)
	s.dispatch(facturationAdded{f: out})
	_ = done(nil)
	s.reconcile(ctx, "create_facturation")
	if got, ok := s.Snapshot().Facturation(out.ID); ok && out.ID != 0 {
		return &got, nil
	}
	return &out, nil
}

// UpdateFacturation modifie la facturation puis recharge le cache.
func (s *ReceptionStore) UpdateFacturation(ctx context.Context, id int64, p entity.FacturationPatch) (*entity.Facturation, error) {
	done := s.begin("update_facturation")
	updated, err := s.api.UpdateFacturation(ctx, id, p)
	if err != nil {
		return nil, done(err)
	}
	base, _ := s.Snapshot().Facturation(id)
	base.ID = id
	p.Apply(&base)
	out := merge(base, updated)
	s.dispatch(facturationUpdated{f: out})
	_ = done(nil)
	s.reconcile(ctx, "update_facturation")
	if got, ok := s.Snapshot().Facturation(id); ok {
		return &got, nil
	}
	return &out, nil
}

// DeleteFacturation supprime la facturation puis recharge le cache.
func (s *ReceptionStore) DeleteFacturation(ctx context.Context, id int64) error {
	done := s.begin("delete_facturation")
	if err := s.api.DeleteFacturation(ctx, id); err != nil {
		return done(err)
	}
	s.dispatch(facturationRemoved{id: id})
	_ = done(nil)
	s.reconcile(ctx, "delete_facturation")
	return nil
}

// ── Impayés ─────────────────────────────────────────────────────────────────

// CreateImpaye enregistre un paiement sur solde puis recharge le cache.
func (s *ReceptionStore) CreateImpaye(ctx context.Context, i *entity.Impaye) (*entity.Impaye, error) {
	done := s.begin("create_impaye")
	created, err := s.api.CreateImpaye(ctx, i)
	if err != nil {
		return nil, done(err)
	}
	out := merge(*i, created)
	s.dispatch(impayeAdded{i: out})
	_ = done(nil)
	s.reconcile(ctx, "create_impaye")
	if got, ok := s.Snapshot().Impaye(out.ID); ok && out.ID != 0 {
		return &got, nil
	}
	return &out, nil
}

// UpdateImpaye modifie l'impayé puis recharge le cache.
func (s *ReceptionStore) UpdateImpaye(ctx context.Context, id int64, p entity.ImpayePatch) (*entity.Impaye, error) {
	done := s.begin("update_impaye")
	updated, err := s.api.UpdateImpaye(ctx, id, p)
	if err != nil {
		return nil, done(err)
	}
	base, _ := s.Snapshot().Impaye(id)
	base.ID = id
	p.Apply(&base)
	out := merge(base, updated)
	s.dispatch(impayeUpdated{i: out})
	_ = done(nil)
	s.reconcile(ctx, "update_impaye")
	if got, ok := s.Snapshot().Impaye(id); ok {
		return &got, nil
	}
	return &out, nil
}

// DeleteImpaye supprime l'impayé puis recharge le cache.
func (s *ReceptionStore) DeleteImpaye(ctx context.Context, id int64) error {
	done := s.begin("delete_impaye")
	if err := s.api.DeleteImpaye(ctx, id); err != nil {
		return done(err)
	}
	s.dispatch(impayeRemoved{id: id})
	_ = done(nil)
	s.reconcile(ctx, "delete_impaye")
	return nil
}

// ── Fiches de livraison ─────────────────────────────────────────────────────

// CreateFicheLivraison enregistre la fiche puis recharge le cache (le backend peut
// faire évoluer le statut de la réception).
func (s *ReceptionStore) CreateFicheLivraison(ctx context.Context, f *entity.FicheLivraison) (*entity.FicheLivraison, error) {
	done := s.begin("create_fiche_livraison")
	created, err := s.api.CreateFicheLivraison(ctx, f)
	if err != nil {
		return nil, done(err)
	}
	out := merge(*f, created)
	s.dispatch(ficheAdded{f: out})
	_ = done(nil)
	s.reconcile(ctx, "create_fiche_livraison")
	if got, ok := s.Snapshot().FicheLivraison(out.ID); ok && out.ID != 0 {
		return &got, nil
	}
	return &out, nil
}

// ── Lectures directes (sans cache) ──────────────────────────────────────────

// GetReceptionTransitions interroge toujours le backend.
func (s *ReceptionStore) GetReceptionTransitions(ctx context.Context, id int64) (*entity.ReceptionTransitions, error) {
	return s.api.GetReceptionTransitions(ctx, id)
}

// CheckFacturationReception indique si une facturation existe déjà pour la réception.
func (s *ReceptionStore) CheckFacturationReception(ctx context.Context, receptionID int64) (*entity.FacturationCheck, error) {
	return s.api.CheckFacturationReception(ctx, receptionID)
}

// CheckImpayeReception renvoie l'état de solde connu côté impayés.
func (s *ReceptionStore) CheckImpayeReception(ctx context.Context, receptionID int64) (*entity.ReceptionSolde, error) {
	return s.api.CheckImpayeReception(ctx, receptionID)
}

// GetReceptionSolde renvoie le solde; Exists=false si le backend n'a rien.
func (s *ReceptionStore) GetReceptionSolde(ctx context.Context, receptionID int64) (*entity.ReceptionSolde, error) {
	return s.api.GetReceptionSolde(ctx, receptionID)
}

// ListFacturationsByStatus filtre côté backend, sans toucher au cache.
func (s *ReceptionStore) ListFacturationsByStatus(ctx context.Context, status string) ([]entity.Facturation, error) {
	return s.api.ListFacturationsByStatus(ctx, status)
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
