package repository

import (
	"context"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// ReceptionRepository port vers le backend pour les réceptions.
// L'implémentation est distante (HTTP); le backend reste seul maître des statuts.
type ReceptionRepository interface {
	ListReceptions(ctx context.Context) ([]entity.Reception, error)
	GetReception(ctx context.Context, id int64) (*entity.Reception, error)
	CreateReception(ctx context.Context, r *entity.Reception) (*entity.Reception, error)
	UpdateReception(ctx context.Context, id int64, p entity.ReceptionPatch) (*entity.Reception, error)
	DeleteReception(ctx context.Context, id int64) error
	// GetReceptionTransitions statut courant + available_transitions, sans cache.
	GetReceptionTransitions(ctx context.Context, id int64) (*entity.ReceptionTransitions, error)
	// MarquerCommeLivre peut renvoyer nil si le backend ne renvoie pas l'enregistrement.
	MarquerCommeLivre(ctx context.Context, id int64) (*entity.Reception, error)
	// GetReceptionSolde traite 404 comme « pas de données » (Exists=false), pas comme une erreur.
	GetReceptionSolde(ctx context.Context, id int64) (*entity.ReceptionSolde, error)
}
