package viaapi

import (
	"context"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// ListFicheLivraisons GET /fiche-livraisons
func (c *Client) ListFicheLivraisons(ctx context.Context) ([]entity.FicheLivraison, error) {
	raw, err := c.get(ctx, "/fiche-livraisons")
	if err != nil {
		return nil, err
	}
	return decodeList[entity.FicheLivraison](c, raw, "fiche-livraisons", "fiche_livraisons", "fiches", "ficheLivraisons")
}

// CreateFicheLivraison POST /fiche-livraisons
func (c *Client) CreateFicheLivraison(ctx context.Context, f *entity.FicheLivraison) (*entity.FicheLivraison, error) {
	raw, err := c.post(ctx, "/fiche-livraisons", ficheLivraisonPayload(f))
	if err != nil {
		return nil, err
	}
	return decodeObject[entity.FicheLivraison](raw, "fiche de livraison", "fiche_livraison", "fiche")
}
