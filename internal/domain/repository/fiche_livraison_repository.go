package repository

import (
	"context"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// FicheLivraisonRepository port vers le backend pour les bons de livraison.
type FicheLivraisonRepository interface {
	ListFicheLivraisons(ctx context.Context) ([]entity.FicheLivraison, error)
	CreateFicheLivraison(ctx context.Context, f *entity.FicheLivraison) (*entity.FicheLivraison, error)
}

// Gateway ensemble des ports distants utilisés par le store.
type Gateway interface {
	ReceptionRepository
	FacturationRepository
	ImpayeRepository
	FicheLivraisonRepository
}
