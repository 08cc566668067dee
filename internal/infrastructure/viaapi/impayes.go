package viaapi

import (
	"context"
	"fmt"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// ListImpayes GET /impayes
func (c *Client) ListImpayes(ctx context.Context) ([]entity.Impaye, error) {
	raw, err := c.get(ctx, "/impayes")
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Impaye](c, raw, "impayes", "impayes")
}

// CreateImpaye POST /impayes
func (c *Client) CreateImpaye(ctx context.Context, i *entity.Impaye) (*entity.Impaye, error) {
	raw, err := c.post(ctx, "/impayes", impayePayload(i))
	if err != nil {
		return nil, err
	}
	return decodeObject[entity.Impaye](raw, "impaye", "impaye")
}

// UpdateImpaye PUT /impayes/{id}
func (c *Client) UpdateImpaye(ctx context.Context, id int64, p entity.ImpayePatch) (*entity.Impaye, error) {
	raw, err := c.put(ctx, fmt.Sprintf("/impayes/%d", id), impayePatchPayload(p))
	if err != nil {
		return nil, err
	}
	return decodeObject[entity.Impaye](raw, "impaye", "impaye")
}

// DeleteImpaye DELETE /impayes/{id}
func (c *Client) DeleteImpaye(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/impayes/%d", id))
}

// CheckImpayeReception GET /impayes/check-reception/{id}
func (c *Client) CheckImpayeReception(ctx context.Context, receptionID int64) (*entity.ReceptionSolde, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/impayes/check-reception/%d", receptionID))
	if err != nil {
		return nil, err
	}
	return decodeSolde(raw)
}
