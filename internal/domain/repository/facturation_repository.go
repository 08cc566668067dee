package repository

import (
	"context"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// FacturationRepository port vers le backend pour les facturations.
type FacturationRepository interface {
	ListFacturations(ctx context.Context) ([]entity.Facturation, error)
	ListFacturationsByStatus(ctx context.Context, status string) ([]entity.Facturation, error)
	CreateFacturation(ctx context.Context, f *entity.Facturation) (*entity.Facturation, error)
	UpdateFacturation(ctx context.Context, id int64, p entity.FacturationPatch) (*entity.Facturation, error)
	DeleteFacturation(ctx context.Context, id int64) error
	CheckFacturationReception(ctx context.Context, receptionID int64) (*entity.FacturationCheck, error)
}
