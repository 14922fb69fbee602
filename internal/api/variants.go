package api

import (
	"context"
	"fmt"

	"github.com/x88a9/edge-lab/internal/model"
)

// ListVariants returns every variant across all systems.
func (c *Client) ListVariants(ctx context.Context) ([]model.Variant, error) {
	var variants []model.Variant
	err := c.get(ctx, "variants", "/variants/", nil, &variants)
	return variants, err
}

// GetVariant fetches one variant by id.
func (c *Client) GetVariant(ctx context.Context, id string) (model.Variant, error) {
	var variant model.Variant
	err := c.get(ctx, "variants", fmt.Sprintf("/variants/%s", id), nil, &variant)
	return variant, err
}

// CreateVariant registers a new parameterized variant of a system.
func (c *Client) CreateVariant(ctx context.Context, payload model.CreateVariant) (model.Variant, error) {
	var variant model.Variant
	if err := model.ValidatePayload(payload); err != nil {
		return variant, err
	}
	err := c.post(ctx, "variants", "/variants/", payload, &variant)
	return variant, err
}

// ListVariantRuns returns the runs recorded against a variant.
func (c *Client) ListVariantRuns(ctx context.Context, variantID string) ([]model.Run, error) {
	var runs []model.Run
	err := c.get(ctx, "variants", fmt.Sprintf("/variants/%s/runs", variantID), nil, &runs)
	return runs, err
}

// GetVariantSummary returns the server-computed cross-run aggregate for
// a variant.
func (c *Client) GetVariantSummary(ctx context.Context, variantID string) (model.VariantSummary, error) {
	var summary model.VariantSummary
	err := c.get(ctx, "variants", fmt.Sprintf("/variants/%s/summary", variantID), nil, &summary)
	return summary, err
}
