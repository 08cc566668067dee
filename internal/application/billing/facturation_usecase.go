package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/finance"
)

// Actions renvoyées par FacturationUseCase.Submit.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// FacturationUseCase formulaire de facturation: calculs, validation, création ou mise à jour.
type FacturationUseCase struct {
	store FinanceStore
	log   zerolog.Logger
}

// NewFacturationUseCase construit le cas d'usage.
func NewFacturationUseCase(store FinanceStore, log zerolog.Logger) *FacturationUseCase {
	return &FacturationUseCase{store: store, log: log}
}

// Preview calculs et contrôles sans appel réseau.
func (uc *FacturationUseCase) Preview(in dto.FacturationRequest) dto.PreviewResponse {
	f := facturationFromRequest(in)
	b := finance.FacturationBalance(&f)
	v := uc.violations(&f)
	return dto.PreviewResponse{
		Balance:  b,
		Statut:   finance.PaymentStatus(b),
		Valid:    v.Empty(),
		Messages: v.Messages(),
		Errors:   v,
	}
}

// Prefill facturation déjà saisie pour la réception.
func (uc *FacturationUseCase) Prefill(ctx context.Context, receptionID int64) (*dto.FacturationPrefill, error) {
	check, err := uc.store.CheckFacturationReception(ctx, receptionID)
	if err != nil {
		return nil, fmt.Errorf("facturation: vérification réception %d: %w", receptionID, err)
	}
	return &dto.FacturationPrefill{Exists: check.Exists, Facturation: check.Data}, nil
}

// Submit valide puis enregistre la facturation de la réception. Si une facturation existe déjà
// pour cette réception, elle est mise à jour.
//
// Erreurs:
//   - *domain.ValidationError (ErrInvalidInput): saisie refusée, aucun appel réseau.
//   - domain.ErrDuplicate: numéro de facture déjà utilisé par une autre réception.
//   - domain.ErrNotLoaded: cache jamais chargé, l'unicité du numéro ne peut pas être contrôlée.
//   - erreurs du backend telles quelles.
func (uc *FacturationUseCase) Submit(ctx context.Context, in dto.FacturationRequest) (*dto.FacturationResult, error) {
	f := facturationFromRequest(in)
	if err := uc.check(&f, 0); err != nil {
		return nil, err
	}

	check, err := uc.store.CheckFacturationReception(ctx, f.ReceptionID)
	if err != nil {
		return nil, fmt.Errorf("facturation: vérification réception %d: %w", f.ReceptionID, err)
	}
	if check.Exists && check.Data != nil && check.Data.ID != 0 {
		return uc.update(ctx, check.Data.ID, f)
	}

	created, err := uc.store.CreateFacturation(ctx, &f)
	if err != nil {
		return nil, err
	}
	return &dto.FacturationResult{
		Facturation: *created,
		Action:      ActionCreated,
		Balance:     finance.FacturationBalance(created),
	}, nil
}

// Update remplace les valeurs de la facturation id.
func (uc *FacturationUseCase) Update(ctx context.Context, id int64, in dto.FacturationRequest) (*dto.FacturationResult, error) {
	f := facturationFromRequest(in)
	if f.ReceptionID == 0 {
		if existing, ok := uc.store.Snapshot().Facturation(id); ok {
			f.ReceptionID = existing.ReceptionID
		}
	}
	if err := uc.check(&f, id); err != nil {
		return nil, err
	}
	return uc.update(ctx, id, f)
}

// ByStatus facturations du statut demandé, lues directement au backend.
func (uc *FacturationUseCase) ByStatus(ctx context.Context, status string) ([]entity.Facturation, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, fmt.Errorf("facturation: statut vide: %w", domain.ErrInvalidInput)
	}
	return uc.store.ListFacturationsByStatus(ctx, status)
}

// Delete supprime la facturation id.
func (uc *FacturationUseCase) Delete(ctx context.Context, id int64) error {
	return uc.store.DeleteFacturation(ctx, id)
}

func (uc *FacturationUseCase) update(ctx context.Context, id int64, f entity.Facturation) (*dto.FacturationResult, error) {
	updated, err := uc.store.UpdateFacturation(ctx, id, entity.FacturationPatch{
		DatePaiement:   &f.DatePaiement,
		NumeroFacture:  &f.NumeroFacture,
		Designation:    &f.Designation,
		Encaissement:   &f.Encaissement,
		PrixUnitaire:   &f.PrixUnitaire,
		Quantite:       &f.Quantite,
		PaiementAvance: &f.PaiementAvance,
		MontantPaye:    &f.MontantPaye,
		Statut:         &f.Statut,
	})
	if err != nil {
		return nil, err
	}
	return &dto.FacturationResult{
		Facturation: *updated,
		Action:      ActionUpdated,
		Balance:     finance.FacturationBalance(updated),
	}, nil
}

// check validation stricte, contrôle d'unicité du numéro et statut dérivé.
// selfID est la facturation en cours de modification (0 en création).
func (uc *FacturationUseCase) check(f *entity.Facturation, selfID int64) error {
	st := uc.store.Snapshot()
	if !loaded(st) {
		return fmt.Errorf("facturation: contrôle du numéro %s impossible: %w", f.NumeroFacture, domain.ErrNotLoaded)
	}
	if v := uc.violations(f); !v.Empty() {
		return domain.NewValidationError(v)
	}
	numero := strings.TrimSpace(f.NumeroFacture)
	for _, other := range st.Facturations {
		if other.ID == selfID || other.ReceptionID == f.ReceptionID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(other.NumeroFacture), numero) {
			uc.log.Warn().
				Str("numero_facture", numero).
				Int64("reception_id", f.ReceptionID).
				Int64("autre_reception_id", other.ReceptionID).
				Msg("numéro de facture déjà utilisé")
			return fmt.Errorf("%w: le numéro de facture %s est déjà utilisé pour la réception %d",
				domain.ErrDuplicate, numero, other.ReceptionID)
		}
	}
	f.Statut = finance.PaymentStatus(finance.FacturationBalance(f))
	return nil
}

// violations contrôles de saisie, plus l'existence de la réception quand le cache est chargé.
func (uc *FacturationUseCase) violations(f *entity.Facturation) finance.Violations {
	v := finance.FacturationViolations(f)
	if f.ReceptionID > 0 {
		if st := uc.store.Snapshot(); loaded(st) {
			if _, ok := st.Reception(f.ReceptionID); !ok {
				v["reception_id"] = append(v["reception_id"], "La réception sélectionnée est introuvable")
			}
		}
	}
	return v
}

// loaded vrai dès qu'un chargement a abouti, même si le suivant a échoué.
func loaded(st store.State) bool {
	return !st.InitialLoading && !st.FetchedAt.IsZero()
}

func facturationFromRequest(in dto.FacturationRequest) entity.Facturation {
	return entity.Facturation{
		ReceptionID:    in.ReceptionID,
		DatePaiement:   strings.TrimSpace(in.DatePaiement),
		NumeroFacture:  strings.TrimSpace(in.NumeroFacture),
		Designation:    strings.TrimSpace(in.Designation),
		Encaissement:   encaissement(in.Encaissement, in.EncaissementType, in.EncaissementValeur),
		PrixUnitaire:   in.PrixUnitaire.Decimal,
		Quantite:       in.Quantite.Decimal,
		PaiementAvance: in.PaiementAvance.Decimal,
		MontantPaye:    in.MontantPaye.Decimal,
	}
}

func encaissement(raw, kind, value string) string {
	if strings.TrimSpace(kind) != "" {
		return finance.ComposeEncaissement(kind, value)
	}
	return strings.TrimSpace(raw)
}
