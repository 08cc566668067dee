package billing

import (
	"context"

	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// FinanceStore partie du store utilisée par les formulaires financiers.
type FinanceStore interface {
	Snapshot() store.State
	ListFacturationsByStatus(ctx context.Context, status string) ([]entity.Facturation, error)
	CheckFacturationReception(ctx context.Context, receptionID int64) (*entity.FacturationCheck, error)
	GetReceptionSolde(ctx context.Context, receptionID int64) (*entity.ReceptionSolde, error)
	CreateFacturation(ctx context.Context, f *entity.Facturation) (*entity.Facturation, error)
	UpdateFacturation(ctx context.Context, id int64, p entity.FacturationPatch) (*entity.Facturation, error)
	DeleteFacturation(ctx context.Context, id int64) error
	CreateImpaye(ctx context.Context, i *entity.Impaye) (*entity.Impaye, error)
	UpdateImpaye(ctx context.Context, id int64, p entity.ImpayePatch) (*entity.Impaye, error)
	DeleteImpaye(ctx context.Context, id int64) error
}

// DocumentPDFGenerator rendu PDF des documents remis aux fournisseurs et transporteurs.
type DocumentPDFGenerator interface {
	GenerateFacturationPDF(ctx context.Context, doc FacturationDocument) ([]byte, error)
	GenerateFicheLivraisonPDF(ctx context.Context, doc FicheLivraisonDocument) ([]byte, error)
}

var _ FinanceStore = (*store.ReceptionStore)(nil)
