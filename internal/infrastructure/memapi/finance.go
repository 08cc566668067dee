package memapi

import (
	"context"
	"strings"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/finance"
)

func (b *Backend) ListFacturations(ctx context.Context) ([]entity.Facturation, error) {
	err := b.enter(ctx, "ListFacturations")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return sortByID(b.facturations, func(f entity.Facturation) int64 { return f.ID }), nil
}

func (b *Backend) ListFacturationsByStatus(ctx context.Context, status string) ([]entity.Facturation, error) {
	err := b.enter(ctx, "ListFacturationsByStatus")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := []entity.Facturation{}
	for _, f := range b.facturations {
		if strings.EqualFold(f.Statut, status) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (b *Backend) CreateFacturation(ctx context.Context, f *entity.Facturation) (*entity.Facturation, error) {
	err := b.enter(ctx, "CreateFacturation")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if b.reception(f.ReceptionID) == nil {
		return nil, unprocessable("reception_id", "La réception sélectionnée est invalide.")
	}
	for _, other := range b.facturations {
		if other.NumeroFacture == f.NumeroFacture {
			return nil, unprocessable("numero_facture", "Le numéro de facture est déjà utilisé.")
		}
	}
	rec := *f
	rec.ID = b.id()
	if rec.Statut == "" {
		rec.Statut = finance.PaymentStatus(finance.FacturationBalance(&rec))
	}
	rec.CreatedAt = b.stamp()
	rec.UpdatedAt = rec.CreatedAt
	b.facturations = append(b.facturations, rec)
	b.syncPaymentStatus(rec.ReceptionID)
	if b.sparse {
		return &entity.Facturation{ID: rec.ID}, nil
	}
	return &rec, nil
}

func (b *Backend) UpdateFacturation(ctx context.Context, id int64, p entity.FacturationPatch) (*entity.Facturation, error) {
	err := b.enter(ctx, "UpdateFacturation")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	for i := range b.facturations {
		f := &b.facturations[i]
		if f.ID != id {
			continue
		}
		p.Apply(f)
		if p.Statut == nil {
			f.Statut = finance.PaymentStatus(finance.FacturationBalance(f))
		}
		f.UpdatedAt = b.stamp()
		b.syncPaymentStatus(f.ReceptionID)
		if b.sparse {
			return &entity.Facturation{ID: id}, nil
		}
		cp := *f
		return &cp, nil
	}
	return nil, notFound("facturation")
}

func (b *Backend) DeleteFacturation(ctx context.Context, id int64) error {
	err := b.enter(ctx, "DeleteFacturation")
	defer b.mu.Unlock()
	if err != nil {
		return err
	}
	n := len(b.facturations)
	b.facturations = without(b.facturations, func(f entity.Facturation) bool { return f.ID == id })
	if len(b.facturations) == n {
		return notFound("facturation")
	}
	return nil
}

func (b *Backend) CheckFacturationReception(ctx context.Context, receptionID int64) (*entity.FacturationCheck, error) {
	err := b.enter(ctx, "CheckFacturationReception")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	f := b.facturationFor(receptionID)
	if f == nil {
		return &entity.FacturationCheck{Exists: false}, nil
	}
	cp := *f
	return &entity.FacturationCheck{Exists: true, Data: &cp}, nil
}

func (b *Backend) ListImpayes(ctx context.Context) ([]entity.Impaye, error) {
	err := b.enter(ctx, "ListImpayes")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return sortByID(b.impayes, func(i entity.Impaye) int64 { return i.ID }), nil
}

func (b *Backend) CreateImpaye(ctx context.Context, i *entity.Impaye) (*entity.Impaye, error) {
	err := b.enter(ctx, "CreateImpaye")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s := b.solde(i.ReceptionID)
	if !s.Exists {
		return nil, unprocessable("reception_id", "Aucune facturation pour cette réception.")
	}
	if i.MontantPaye.GreaterThan(s.Calculs.ResteAPayer.Add(finance.CompletionTolerance)) {
		return nil, unprocessable("montant_paye", "Le montant dépasse le reste à payer.")
	}
	rec := *i
	rec.ID = b.id()
	rec.Calculs = nil
	rec.CreatedAt = b.stamp()
	rec.UpdatedAt = rec.CreatedAt
	b.impayes = append(b.impayes, rec)
	b.syncPaymentStatus(rec.ReceptionID)
	for k := range b.impayes {
		if b.impayes[k].ID == rec.ID {
			b.impayes[k].Statut = b.reception(rec.ReceptionID).Statut
			rec = b.impayes[k]
		}
	}
	if b.sparse {
		return &entity.Impaye{ID: rec.ID}, nil
	}
	return &rec, nil
}

func (b *Backend) UpdateImpaye(ctx context.Context, id int64, p entity.ImpayePatch) (*entity.Impaye, error) {
	err := b.enter(ctx, "UpdateImpaye")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	for k := range b.impayes {
		i := &b.impayes[k]
		if i.ID != id {
			continue
		}
		p.Apply(i)
		i.UpdatedAt = b.stamp()
		b.syncPaymentStatus(i.ReceptionID)
		if b.sparse {
			return &entity.Impaye{ID: id}, nil
		}
		cp := *i
		return &cp, nil
	}
	return nil, notFound("impayé")
}

func (b *Backend) DeleteImpaye(ctx context.Context, id int64) error {
	err := b.enter(ctx, "DeleteImpaye")
	defer b.mu.Unlock()
	if err != nil {
		return err
	}
	var receptionID int64
	for _, i := range b.impayes {
		if i.ID == id {
			receptionID = i.ReceptionID
		}
	}
	if receptionID == 0 {
		return notFound("impayé")
	}
	b.impayes = without(b.impayes, func(i entity.Impaye) bool { return i.ID == id })
	b.syncPaymentStatus(receptionID)
	return nil
}

func (b *Backend) CheckImpayeReception(ctx context.Context, receptionID int64) (*entity.ReceptionSolde, error) {
	err := b.enter(ctx, "CheckImpayeReception")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return b.solde(receptionID), nil
}

func (b *Backend) ListFicheLivraisons(ctx context.Context) ([]entity.FicheLivraison, error) {
	err := b.enter(ctx, "ListFicheLivraisons")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return sortByID(b.fiches, func(f entity.FicheLivraison) int64 { return f.ID }), nil
}

func (b *Backend) CreateFicheLivraison(ctx context.Context, f *entity.FicheLivraison) (*entity.FicheLivraison, error) {
	err := b.enter(ctx, "CreateFicheLivraison")
	defer b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	r := b.reception(f.ReceptionID)
	if r == nil {
		return nil, unprocessable("reception_id", "La réception sélectionnée est invalide.")
	}
	if !b.allowed(r.Statut, entity.StatusLivre) {
		return nil, unprocessable("reception_id", "La réception n'est pas prête pour la livraison.")
	}
	rec := *f
	rec.ID = b.id()
	rec.CreatedAt = b.stamp()
	b.fiches = append(b.fiches, rec)
	if b.sparse {
		return &entity.FicheLivraison{ID: rec.ID}, nil
	}
	return &rec, nil
}
