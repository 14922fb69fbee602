package api

import (
	"context"
	"fmt"

	"github.com/x88a9/edge-lab/internal/model"
)

// ListSystems returns every trading system visible to the account.
func (c *Client) ListSystems(ctx context.Context) ([]model.System, error) {
	var systems []model.System
	err := c.get(ctx, "systems", "/systems", nil, &systems)
	return systems, err
}

// GetSystem fetches one system by id.
func (c *Client) GetSystem(ctx context.Context, id string) (model.System, error) {
	var system model.System
	err := c.get(ctx, "systems", fmt.Sprintf("/systems/%s", id), nil, &system)
	return system, err
}

// CreateSystem registers a new system.
func (c *Client) CreateSystem(ctx context.Context, payload model.CreateSystem) (model.System, error) {
	var system model.System
	if err := model.ValidatePayload(payload); err != nil {
		return system, err
	}
	err := c.post(ctx, "systems", "/systems", payload, &system)
	return system, err
}

// ListSystemVariants returns the variants belonging to a system.
func (c *Client) ListSystemVariants(ctx context.Context, systemID string) ([]model.Variant, error) {
	var variants []model.Variant
	err := c.get(ctx, "systems", fmt.Sprintf("/systems/%s/variants", systemID), nil, &variants)
	return variants, err
}
