package viaapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// ListFacturations GET /facturations
func (c *Client) ListFacturations(ctx context.Context) ([]entity.Facturation, error) {
	raw, err := c.get(ctx, "/facturations")
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Facturation](c, raw, "facturations", "facturations")
}

// ListFacturationsByStatus GET /facturations/status/{status}
func (c *Client) ListFacturationsByStatus(ctx context.Context, status string) ([]entity.Facturation, error) {
	raw, err := c.get(ctx, "/facturations/status/"+url.PathEscape(status))
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Facturation](c, raw, "facturations", "facturations")
}

// CreateFacturation POST /facturations
func (c *Client) CreateFacturation(ctx context.Context, f *entity.Facturation) (*entity.Facturation, error) {
	raw, err := c.post(ctx, "/facturations", facturationPayload(f))
	if err != nil {
		return nil, err
	}
	return decodeObject[entity.Facturation](raw, "facturation", "facturation")
}

// UpdateFacturation PUT /facturations/{id}
func (c *Client) UpdateFacturation(ctx context.Context, id int64, p entity.FacturationPatch) (*entity.Facturation, error) {
	raw, err := c.put(ctx, fmt.Sprintf("/facturations/%d", id), facturationPatchPayload(p))
	if err != nil {
		return nil, err
	}
	return decodeObject[entity.Facturation](raw, "facturation", "facturation")
}

// DeleteFacturation DELETE /facturations/{id}
func (c *Client) DeleteFacturation(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/facturations/%d", id))
}

// CheckFacturationReception GET /facturations/check-reception/{id}
func (c *Client) CheckFacturationReception(ctx context.Context, receptionID int64) (*entity.FacturationCheck, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/facturations/check-reception/%d", receptionID))
	if err != nil {
		return nil, err
	}
	root := gjson.ParseBytes(raw)
	if !root.Get("exists").Exists() && root.Get("data.exists").Exists() {
		root = root.Get("data")
	}
	out := &entity.FacturationCheck{Exists: root.Get("exists").Bool()}
	if d := root.Get("data"); d.IsObject() {
		f, err := decodeObject[entity.Facturation]([]byte(d.Raw), "facturation")
		if err != nil {
			return nil, err
		}
		out.Data = f
	}
	return out, nil
}
