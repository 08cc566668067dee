// Package reception formulaire de réception de matière première: création, modification
// et suppression confirmée.
package reception

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// Store partie du store utilisée par les réceptions.
type Store interface {
	Snapshot() store.State
	CreateReception(ctx context.Context, r *entity.Reception) (*entity.Reception, error)
	UpdateReception(ctx context.Context, id int64, p entity.ReceptionPatch) (*entity.Reception, error)
	DeleteReception(ctx context.Context, id int64) error
}

var hundred = decimal.NewFromInt(100)

// UseCase création, modification et suppression des réceptions.
type UseCase struct {
	store Store
}

// NewUseCase construit le cas d'usage.
func NewUseCase(store Store) *UseCase {
	return &UseCase{store: store}
}

// Get réception id depuis le cache.
func (uc *UseCase) Get(id int64) (*dto.ReceptionResponse, error) {
	r, ok := uc.store.Snapshot().Reception(id)
	if !ok {
		return nil, fmt.Errorf("réception %d: %w", id, domain.ErrNotFound)
	}
	out := dto.NewReceptionResponse(r)
	return &out, nil
}

// Create valide et enregistre une nouvelle réception. Seuls les champs qualité du type de
// matière sont conservés; le statut est attribué par le backend.
func (uc *UseCase) Create(ctx context.Context, in dto.ReceptionRequest) (*dto.ReceptionResponse, error) {
	var r entity.Reception
	p, v := patchFromRequest(in)
	p.Apply(&r)
	if r.Unite == "" {
		r.Unite = defaultUnit(r.Type)
	}
	keepQualityFields(&r)
	validate(&r, v)
	if len(v) > 0 {
		return nil, domain.NewValidationError(v)
	}
	created, err := uc.store.CreateReception(ctx, &r)
	if err != nil {
		return nil, err
	}
	out := dto.NewReceptionResponse(*created)
	return &out, nil
}

// Update applique les champs fournis. La réception modifiée doit rester valide.
func (uc *UseCase) Update(ctx context.Context, id int64, in dto.ReceptionRequest) (*dto.ReceptionResponse, error) {
	current, ok := uc.store.Snapshot().Reception(id)
	if !ok {
		return nil, fmt.Errorf("réception %d: %w", id, domain.ErrNotFound)
	}
	p, v := patchFromRequest(in)
	merged := current
	p.Apply(&merged)
	keepQualityFields(&merged)
	validate(&merged, v)
	if len(v) > 0 {
		return nil, domain.NewValidationError(v)
	}
	updated, err := uc.store.UpdateReception(ctx, id, p)
	if err != nil {
		return nil, err
	}
	out := dto.NewReceptionResponse(*updated)
	return &out, nil
}

// Delete supprime la réception après confirmation.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	if _, ok := uc.store.Snapshot().Reception(id); !ok {
		return fmt.Errorf("réception %d: %w", id, domain.ErrNotFound)
	}
	return uc.store.DeleteReception(ctx, id)
}

// patchFromRequest convertit la saisie; les dates illisibles sont signalées dans v.
func patchFromRequest(in dto.ReceptionRequest) (entity.ReceptionPatch, map[string][]string) {
	v := map[string][]string{}
	p := entity.ReceptionPatch{
		Type:                    trimmed(in.Type),
		Designation:             trimmed(in.Designation),
		Provenance:              trimmed(in.Provenance),
		NomFournisseur:          trimmed(in.NomFournisseur),
		NifFournisseur:          trimmed(in.NifFournisseur),
		ContactFournisseur:      trimmed(in.ContactFournisseur),
		LocalisationFournisseur: trimmed(in.LocalisationFournisseur),
		PoidsBrut:               in.PoidsBrut.Ptr(),
		PoidsNet:                in.PoidsNet.Ptr(),
		Unite:                   trimmed(in.Unite),
		PoidsEmballage:          in.PoidsEmballage.Ptr(),
		TauxDessiccation:        in.TauxDessiccation.Ptr(),
		TauxHumidite:            in.TauxHumidite.Ptr(),
		PoidsAgreage:            in.PoidsAgreage.Ptr(),
		Densite:                 in.Densite.Ptr(),
	}
	if p.Type != nil {
		t := strings.ToUpper(*p.Type)
		p.Type = &t
	}
	if in.DateHeure != nil {
		ts, err := entity.ParseTimestamp(strings.TrimSpace(*in.DateHeure))
		if err != nil {
			v["date_heure"] = append(v["date_heure"], "La date de réception est invalide")
		} else {
			p.DateHeure = &ts
		}
	}
	return p, v
}

func validate(r *entity.Reception, v map[string][]string) {
	add := func(field, msg string) { v[field] = append(v[field], msg) }

	if !entity.ValidMaterial(r.Type) {
		add("type", "Le type de matière doit être FG, CG ou HE")
	}
	if r.DateHeure.IsZero() && len(v["date_heure"]) == 0 {
		add("date_heure", "La date de réception est obligatoire")
	}
	if r.Designation == "" {
		add("designation", "La désignation est obligatoire")
	}
	if r.NomFournisseur == "" {
		add("nom_fournisseur", "Le nom du fournisseur est obligatoire")
	}
	if r.Provenance == "" {
		add("provenance", "La provenance est obligatoire")
	}
	if !r.PoidsBrut.IsPositive() {
		add("poids_brut", "Le poids brut doit être supérieur à 0")
	}
	if !r.PoidsNet.IsPositive() {
		add("poids_net", "Le poids net doit être supérieur à 0")
	} else if r.PoidsNet.GreaterThan(r.PoidsBrut) && r.PoidsBrut.IsPositive() {
		add("poids_net", "Le poids net ne peut pas dépasser le poids brut")
	}

	for _, q := range []struct {
		field string
		val   decimal.NullDecimal
		pct   bool
	}{
		{"poids_emballage", r.PoidsEmballage, false},
		{"taux_dessiccation", r.TauxDessiccation, true},
		{"taux_humidite", r.TauxHumidite, true},
		{"poids_agreage", r.PoidsAgreage, false},
		{"densite", r.Densite, false},
	} {
		if !q.val.Valid {
			continue
		}
		if q.val.Decimal.IsNegative() {
			add(q.field, "La valeur ne peut pas être négative")
		} else if q.pct && q.val.Decimal.GreaterThan(hundred) {
			add(q.field, "Le taux doit être compris entre 0 et 100")
		}
	}
	if r.Type == entity.MaterialHuile && r.Densite.Valid && r.Densite.Decimal.IsZero() {
		add("densite", "La densité doit être supérieure à 0")
	}
}

// keepQualityFields efface les champs qualité qui ne concernent pas le type de matière.
func keepQualityFields(r *entity.Reception) {
	keep := map[string]bool{}
	for _, f := range entity.QualityFields(r.Type) {
		keep[f] = true
	}
	drop := func(field string, d *decimal.NullDecimal) {
		if !keep[field] {
			*d = decimal.NullDecimal{}
		}
	}
	drop("poids_emballage", &r.PoidsEmballage)
	drop("taux_dessiccation", &r.TauxDessiccation)
	drop("taux_humidite", &r.TauxHumidite)
	drop("poids_agreage", &r.PoidsAgreage)
	drop("densite", &r.Densite)
}

func defaultUnit(materialType string) string {
	if materialType == entity.MaterialHuile {
		return "L"
	}
	return "kg"
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
