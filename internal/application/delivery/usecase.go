// Package delivery regroupe les actions de livraison d'une réception: bon de livraison et
// passage au statut Livré. Les deux sont conditionnées aux transitions déclarées par le backend.
package delivery

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/workflow"
)

// Store partie du store utilisée par les livraisons.
type Store interface {
	Snapshot() store.State
	GetReceptionTransitions(ctx context.Context, id int64) (*entity.ReceptionTransitions, error)
	CreateFicheLivraison(ctx context.Context, f *entity.FicheLivraison) (*entity.FicheLivraison, error)
	MarquerCommeLivre(ctx context.Context, id int64) (*entity.Reception, error)
}

// UseCase actions de livraison.
type UseCase struct {
	store Store
	log   zerolog.Logger
}

// NewUseCase construit le cas d'usage.
func NewUseCase(store Store, log zerolog.Logger) *UseCase {
	return &UseCase{store: store, log: log}
}

// Transitions interroge le backend (jamais de cache) et indique si la livraison est permise.
func (uc *UseCase) Transitions(ctx context.Context, receptionID int64) (*dto.TransitionsResponse, error) {
	gate, err := uc.gate(ctx, receptionID)
	if err != nil {
		return nil, err
	}
	return &dto.TransitionsResponse{
		ReceptionID:          gate.ReceptionID,
		CurrentStatus:        gate.Current,
		AvailableTransitions: gate.Available,
		CanDeliver:           gate.Allows(workflow.TransitionLivraison),
	}, nil
}

// CreateFicheLivraison valide la saisie, vérifie que la réception peut être livrée puis
// enregistre le bon. Type de produit et poids net sont repris de la réception s'ils manquent.
func (uc *UseCase) CreateFicheLivraison(ctx context.Context, in dto.FicheLivraisonRequest) (*dto.FicheLivraisonResult, error) {
	f := ficheFromRequest(in)
	if v := violations(&f); len(v) > 0 {
		return nil, domain.NewValidationError(v)
	}

	rec, ok := uc.store.Snapshot().Reception(f.ReceptionID)
	if !ok {
		return nil, fmt.Errorf("livraison: réception %d: %w", f.ReceptionID, domain.ErrNotFound)
	}
	if f.TypeProduit == "" {
		f.TypeProduit = entity.MaterialLabel(rec.Type)
	}
	if in.PoidsNet == nil {
		f.PoidsNet = rec.PoidsNet
	}

	gate, err := uc.gate(ctx, f.ReceptionID)
	if err != nil {
		return nil, err
	}
	if err := gate.Require(workflow.TransitionLivraison); err != nil {
		uc.log.Warn().Int64("reception_id", f.ReceptionID).Str("statut", gate.Current).Msg("bon de livraison refusé")
		return nil, err
	}

	created, err := uc.store.CreateFicheLivraison(ctx, &f)
	if err != nil {
		return nil, err
	}
	after, _ := uc.store.Snapshot().Reception(f.ReceptionID)
	return &dto.FicheLivraisonResult{Fiche: *created, ReceptionStatut: after.Statut}, nil
}

// MarquerCommeLivre passe la réception au statut Livré si le backend le permet.
func (uc *UseCase) MarquerCommeLivre(ctx context.Context, receptionID int64) (*entity.Reception, error) {
	gate, err := uc.gate(ctx, receptionID)
	if err != nil {
		return nil, err
	}
	if err := gate.Require(workflow.TransitionLivraison); err != nil {
		return nil, err
	}
	rec, err := uc.store.MarquerCommeLivre(ctx, receptionID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return &entity.Reception{ID: receptionID, Statut: entity.StatusLivre}, nil
	}
	return rec, nil
}

func (uc *UseCase) gate(ctx context.Context, receptionID int64) (workflow.Gate, error) {
	tr, err := uc.store.GetReceptionTransitions(ctx, receptionID)
	if err != nil {
		return workflow.Gate{}, fmt.Errorf("livraison: transitions réception %d: %w", receptionID, err)
	}
	return workflow.NewGate(tr), nil
}

func violations(f *entity.FicheLivraison) map[string][]string {
	v := map[string][]string{}
	required := map[string]string{
		"date_livraison":   f.DateLivraison,
		"livreur_nom":      f.LivreurNom,
		"livreur_contact":  f.LivreurContact,
		"lieu_depart":      f.LieuDepart,
		"destination":      f.Destination,
		"destinataire_nom": f.DestinataireNom,
	}
	for field, val := range required {
		if val == "" {
			v[field] = append(v[field], "Ce champ est obligatoire")
		}
	}
	if f.ReceptionID <= 0 {
		v["reception_id"] = append(v["reception_id"], "La réception est obligatoire")
	}
	if f.RistourneRegionale.IsNegative() {
		v["ristourne_regionale"] = append(v["ristourne_regionale"], "La ristourne ne peut pas être négative")
	}
	if f.RistourneCommunale.IsNegative() {
		v["ristourne_communale"] = append(v["ristourne_communale"], "La ristourne ne peut pas être négative")
	}
	if f.PoidsNet.IsNegative() {
		v["poids_net"] = append(v["poids_net"], "Le poids net ne peut pas être négatif")
	}
	return v
}

func ficheFromRequest(in dto.FicheLivraisonRequest) entity.FicheLivraison {
	f := entity.FicheLivraison{
		ReceptionID:         in.ReceptionID,
		DateLivraison:       strings.TrimSpace(in.DateLivraison),
		LivreurNom:          strings.TrimSpace(in.LivreurNom),
		LivreurPrenom:       strings.TrimSpace(in.LivreurPrenom),
		LivreurCIN:          strings.TrimSpace(in.LivreurCIN),
		LivreurContact:      strings.TrimSpace(in.LivreurContact),
		LivreurVehicule:     strings.TrimSpace(in.LivreurVehicule),
		DestinataireNom:     strings.TrimSpace(in.DestinataireNom),
		DestinatairePrenom:  strings.TrimSpace(in.DestinatairePrenom),
		DestinataireContact: strings.TrimSpace(in.DestinataireContact),
		LieuDepart:          strings.TrimSpace(in.LieuDepart),
		Destination:         strings.TrimSpace(in.Destination),
		TypeProduit:         strings.TrimSpace(in.TypeProduit),
		RistourneRegionale:  in.RistourneRegionale.Decimal,
		RistourneCommunale:  in.RistourneCommunale.Decimal,
	}
	if in.PoidsNet != nil {
		f.PoidsNet = in.PoidsNet.Decimal
	}
	return f
}
