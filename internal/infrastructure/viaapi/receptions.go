package viaapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// ListReceptions GET /receptions
func (c *Client) ListReceptions(ctx context.Context) ([]entity.Reception, error) {
	raw, err := c.get(ctx, "/receptions")
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Reception](c, raw, "receptions", "receptions")
}

// GetReception GET /receptions/{id}
func (c *Client) GetReception(ctx context.Context, id int64) (*entity.Reception, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/receptions/%d", id))
	if err != nil {
		return nil, err
	}
	return decodeObject[entity.Reception](raw, "reception", "reception")
}

// CreateReception POST /receptions
func (c *Client) CreateReception(ctx context.Context, r *entity.Reception) (*entity.Reception, error) {
	raw, err := c.post(ctx, "/receptions", receptionPayload(r))
	if err != nil {
		return nil, err
	}
	return decodeObject[entity.Reception](raw, "reception", "reception")
}

// UpdateReception PUT /receptions/{id} avec les seuls champs fournis.
func (c *Client) UpdateReception(ctx context.Context, id int64, p entity.ReceptionPatch) (*entity.Reception, error) {
	raw, err := c.put(ctx, fmt.Sprintf("/receptions/%d", id), receptionPatchPayload(p))
	if err != nil {
		return nil, err
	}
	return decodeObject[entity.Reception](raw, "reception", "reception")
}

// DeleteReception DELETE /receptions/{id}
func (c *Client) DeleteReception(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/receptions/%d", id))
}

// GetReceptionTransitions GET /receptions/{id}/transitions
func (c *Client) GetReceptionTransitions(ctx context.Context, id int64) (*entity.ReceptionTransitions, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/receptions/%d/transitions", id))
	if err != nil {
		return nil, err
	}
	t, err := decodeObject[entity.ReceptionTransitions](raw, "transitions", "transitions")
	if err != nil {
		return nil, err
	}
	if t.ReceptionID == 0 {
		t.ReceptionID = id
	}
	if t.AvailableTransitions == nil {
		t.AvailableTransitions = []string{}
	}
	return t, nil
}

// MarquerCommeLivre POST /receptions/{id}/livrer
func (c *Client) MarquerCommeLivre(ctx context.Context, id int64) (*entity.Reception, error) {
	raw, err := c.post(ctx, fmt.Sprintf("/receptions/%d/livrer", id), nil)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	r, err := decodeObject[entity.Reception](raw, "reception", "reception")
	if err != nil || r.ID == 0 {
		// Réponse {message: "..."} sans enregistrement: le store rechargera.
		return nil, nil
	}
	return r, nil
}

// GetReceptionSolde GET /receptions/{id}/solde. Un 404 signifie « aucun solde »
// et renvoie {exists:false, data:null, calculs:null}.
func (c *Client) GetReceptionSolde(ctx context.Context, id int64) (*entity.ReceptionSolde, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/receptions/%d/solde", id))
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return &entity.ReceptionSolde{Exists: false}, nil
		}
		return nil, err
	}
	return decodeSolde(raw)
}

// decodeSolde lit {exists, data, calculs}, éventuellement enveloppé dans {data:{...}}.
// Sans clé "exists", la présence d'un enregistrement fait foi.
func decodeSolde(raw []byte) (*entity.ReceptionSolde, error) {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return &entity.ReceptionSolde{Exists: false}, nil
	}
	root := gjson.ParseBytes(raw)
	if !root.Get("exists").Exists() && root.Get("data.exists").Exists() {
		root = root.Get("data")
	}

	out := &entity.ReceptionSolde{}
	if ex := root.Get("exists"); ex.Exists() {
		out.Exists = ex.Bool()
		if d := root.Get("data"); d.IsObject() {
			imp, err := decodeObject[entity.Impaye]([]byte(d.Raw), "solde")
			if err != nil {
				return nil, err
			}
			out.Data = imp
		}
	} else {
		imp, err := decodeObject[entity.Impaye](raw, "solde", "impaye")
		if err != nil {
			return nil, err
		}
		if imp.ID != 0 || imp.ReceptionID != 0 {
			out.Exists = true
			out.Data = imp
		}
	}

	calc := root.Get("calculs")
	if !calc.IsObject() && out.Data != nil && out.Data.Calculs != nil {
		out.Calculs = out.Data.Calculs
	}
	if calc.IsObject() {
		c, err := decodeObject[entity.ImpayeCalculs]([]byte(calc.Raw), "calculs")
		if err != nil {
			return nil, err
		}
		out.Calculs = c
	}
	return out, nil
}
