package memapi

import (
	"context"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

func (b *Backend) ListReceptions(ctx context.Context) ([]entity.Reception, error) {
	err := b.enter(ctx, "ListReceptions")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return sortByID(b.receptions, func(r entity.Reception) int64 { return r.ID }), nil
}

func (b *Backend) GetReception(ctx context.Context, id int64) (*entity.Reception, error) {
	err := b.enter(ctx, "GetReception")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	r := b.reception(id)
	if r == nil {
		return nil, notFound("réception")
	}
	cp := *r
	return &cp, nil
}

func (b *Backend) CreateReception(ctx context.Context, r *entity.Reception) (*entity.Reception, error) {
	err := b.enter(ctx, "CreateReception")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if !entity.ValidMaterial(r.Type) {
		return nil, unprocessable("type", "Le type de matière est invalide.")
	}
	rec := *r
	rec.ID = b.id()
	rec.Statut = entity.StatusEnAttenteTest
	rec.CreatedAt = b.stamp()
	rec.UpdatedAt = rec.CreatedAt
	b.receptions = append(b.receptions, rec)
	if b.sparse {
		return &entity.Reception{ID: rec.ID}, nil
	}
	return &rec, nil
}

func (b *Backend) UpdateReception(ctx context.Context, id int64, p entity.ReceptionPatch) (*entity.Reception, error) {
	err := b.enter(ctx, "UpdateReception")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	r := b.reception(id)
	if r == nil {
		return nil, notFound("réception")
	}
	p.Apply(r)
	r.UpdatedAt = b.stamp()
	if b.sparse {
		return &entity.Reception{ID: id}, nil
	}
	cp := *r
	return &cp, nil
}

func (b *Backend) DeleteReception(ctx context.Context, id int64) error {
	err := b.enter(ctx, "DeleteReception")
	defer b.mu.Unlock()
	if err != nil {
		return err
	}
	if b.reception(id) == nil {
		return notFound("réception")
	}
	b.receptions = without(b.receptions, func(r entity.Reception) bool { return r.ID == id })
	b.facturations = without(b.facturations, func(f entity.Facturation) bool { return f.ReceptionID == id })
	b.impayes = without(b.impayes, func(i entity.Impaye) bool { return i.ReceptionID == id })
	b.fiches = without(b.fiches, func(f entity.FicheLivraison) bool { return f.ReceptionID == id })
	return nil
}

func (b *Backend) GetReceptionTransitions(ctx context.Context, id int64) (*entity.ReceptionTransitions, error) {
	err := b.enter(ctx, "GetReceptionTransitions")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	r := b.reception(id)
	if r == nil {
		return nil, notFound("réception")
	}
	avail := append([]string{}, b.transitions[r.Statut]...)
	return &entity.ReceptionTransitions{ReceptionID: id, CurrentStatus: r.Statut, AvailableTransitions: avail}, nil
}

func (b *Backend) MarquerCommeLivre(ctx context.Context, id int64) (*entity.Reception, error) {
	err := b.enter(ctx, "MarquerCommeLivre")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	r := b.reception(id)
	if r == nil {
		return nil, notFound("réception")
	}
	if !b.allowed(r.Statut, entity.StatusLivre) {
		return nil, unprocessable("statut", "Transition vers Livré non autorisée depuis "+r.Statut+".")
	}
	r.Statut = entity.StatusLivre
	r.UpdatedAt = b.stamp()
	if b.sparse {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (b *Backend) GetReceptionSolde(ctx context.Context, id int64) (*entity.ReceptionSolde, error) {
	err := b.enter(ctx, "GetReceptionSolde")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return b.solde(id), nil
}

func without[T any](list []T, match func(T) bool) []T {
	out := list[:0:0]
	for _, v := range list {
		if !match(v) {
			out = append(out, v)
		}
	}
	return out
}
