package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/finance"
)

// ImpayeUseCase règlement du solde restant d'une réception.
type ImpayeUseCase struct {
	store FinanceStore
	log   zerolog.Logger
}

// NewImpayeUseCase construit le cas d'usage.
func NewImpayeUseCase(store FinanceStore, log zerolog.Logger) *ImpayeUseCase {
	return &ImpayeUseCase{store: store, log: log}
}

// Prefill propose les valeurs du formulaire à partir du solde de la réception:
// références de la facture d'origine et montant égal au reste à payer.
func (uc *ImpayeUseCase) Prefill(ctx context.Context, receptionID int64) (*dto.ImpayePrefill, error) {
	solde, err := uc.store.GetReceptionSolde(ctx, receptionID)
	if err != nil {
		return nil, fmt.Errorf("impayé: solde réception %d: %w", receptionID, err)
	}
	if solde == nil || !solde.Exists {
		return &dto.ImpayePrefill{Exists: false}, nil
	}
	out := &dto.ImpayePrefill{Exists: true, Calculs: solde.Calculs}
	if solde.Data != nil {
		i := *solde.Data
		i.ID = 0
		i.ReceptionID = receptionID
		if solde.Calculs != nil {
			i.MontantPaye = solde.Calculs.ResteAPayer
		}
		out.Impaye = &i
	}
	return out, nil
}

// Preview calculs et contrôles sans appel réseau.
func (uc *ImpayeUseCase) Preview(in dto.ImpayeRequest) dto.PreviewResponse {
	i := impayeFromRequest(in)
	b := finance.ImpayeBalance(&i)
	v := finance.ImpayeViolations(&i)
	return dto.PreviewResponse{
		Balance:  b,
		Statut:   finance.PaymentStatus(b),
		Valid:    v.Empty(),
		Messages: v.Messages(),
		Errors:   v,
	}
}

// Submit valide puis enregistre le paiement. La saisie est refusée avant tout appel réseau si
// le montant est nul ou dépasse prix unitaire × quantité; elle l'est aussi s'il dépasse le reste
// à payer connu du backend. Le statut envoyé est Payé quand ce paiement solde la réception.
func (uc *ImpayeUseCase) Submit(ctx context.Context, in dto.ImpayeRequest) (*dto.ImpayeResult, error) {
	i := impayeFromRequest(in)
	if v := finance.ImpayeViolations(&i); !v.Empty() {
		return nil, domain.NewValidationError(v)
	}

	solde, err := uc.store.GetReceptionSolde(ctx, i.ReceptionID)
	if err != nil {
		return nil, fmt.Errorf("impayé: solde réception %d: %w", i.ReceptionID, err)
	}
	i.Statut = finance.PaymentStatus(finance.ImpayeBalance(&i))
	if solde != nil && solde.Exists && solde.Calculs != nil {
		remaining := solde.Calculs.ResteAPayer
		if i.MontantPaye.GreaterThan(remaining.Add(finance.CompletionTolerance)) {
			return nil, domain.NewValidationError(map[string][]string{
				"montant_paye": {"Le montant payé dépasse le reste à payer (" + remaining.String() + ")"},
			})
		}
		if remaining.Sub(i.MontantPaye).LessThanOrEqual(finance.CompletionTolerance) {
			i.Statut = entity.StatusPaye
		} else {
			i.Statut = entity.StatusPaiementIncomplet
		}
	}

	created, err := uc.store.CreateImpaye(ctx, &i)
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Int64("reception_id", created.ReceptionID).
		Str("montant_paye", created.MontantPaye.String()).
		Str("statut", created.Statut).
		Msg("impayé enregistré")
	return &dto.ImpayeResult{Impaye: *created, Balance: finance.ImpayeBalance(created)}, nil
}

// Update remplace les valeurs de l'impayé id après validation stricte.
func (uc *ImpayeUseCase) Update(ctx context.Context, id int64, in dto.ImpayeRequest) (*dto.ImpayeResult, error) {
	i := impayeFromRequest(in)
	if i.ReceptionID == 0 {
		if existing, ok := uc.store.Snapshot().Impaye(id); ok {
			i.ReceptionID = existing.ReceptionID
		}
	}
	if v := finance.ImpayeViolations(&i); !v.Empty() {
		return nil, domain.NewValidationError(v)
	}
	statut := finance.PaymentStatus(finance.ImpayeBalance(&i))
	updated, err := uc.store.UpdateImpaye(ctx, id, entity.ImpayePatch{
		DatePaiement:  &i.DatePaiement,
		NumeroFacture: &i.NumeroFacture,
		Designation:   &i.Designation,
		Encaissement:  &i.Encaissement,
		PrixUnitaire:  &i.PrixUnitaire,
		Quantite:      &i.Quantite,
		MontantPaye:   &i.MontantPaye,
		Statut:        &statut,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ImpayeResult{Impaye: *updated, Balance: finance.ImpayeBalance(updated)}, nil
}

// Delete supprime l'impayé id.
func (uc *ImpayeUseCase) Delete(ctx context.Context, id int64) error {
	return uc.store.DeleteImpaye(ctx, id)
}

func impayeFromRequest(in dto.ImpayeRequest) entity.Impaye {
	return entity.Impaye{
		ReceptionID:   in.ReceptionID,
		DatePaiement:  strings.TrimSpace(in.DatePaiement),
		NumeroFacture: strings.TrimSpace(in.NumeroFacture),
		Designation:   strings.TrimSpace(in.Designation),
		Encaissement:  encaissement(in.Encaissement, in.EncaissementType, in.EncaissementValeur),
		PrixUnitaire:  in.PrixUnitaire.Decimal,
		Quantite:      in.Quantite.Decimal,
		MontantPaye:   in.MontantPaye.Decimal,
	}
}
