package repository

import (
	"context"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// ImpayeRepository port vers le backend pour les impayés.
type ImpayeRepository interface {
	ListImpayes(ctx context.Context) ([]entity.Impaye, error)
	CreateImpaye(ctx context.Context, i *entity.Impaye) (*entity.Impaye, error)
	UpdateImpaye(ctx context.Context, id int64, p entity.ImpayePatch) (*entity.Impaye, error)
	DeleteImpaye(ctx context.Context, id int64) error
	CheckImpayeReception(ctx context.Context, receptionID int64) (*entity.ReceptionSolde, error)
}
