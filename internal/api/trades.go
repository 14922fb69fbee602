package api

import (
	"context"
	"fmt"

	"github.com/x88a9/edge-lab/internal/model"
)

// ListTrades returns every trade, optionally scoped to a run via the
// run_id query parameter server-side; use Client.RunTrades for the
// scoped view.
func (c *Client) ListTrades(ctx context.Context) ([]model.Trade, error) {
	var trades []model.Trade
	err := c.get(ctx, "trades", "/trades/", nil, &trades)
	return trades, err
}

// GetTrade fetches one trade by id.
func (c *Client) GetTrade(ctx context.Context, id string) (model.Trade, error) {
	var trade model.Trade
	err := c.get(ctx, "trades", fmt.Sprintf("/trades/%s", id), nil, &trade)
	return trade, err
}

// CreateTrade records a trade against a run. The stop loss side check
// runs locally so an invalid stop never reaches the wire.
func (c *Client) CreateTrade(ctx context.Context, payload model.TradePayload) (model.Trade, error) {
	var trade model.Trade
	if err := validateTrade(payload); err != nil {
		return trade, err
	}
	err := c.post(ctx, "trades", "/trades/", payload, &trade)
	return trade, err
}

// UpdateTrade replaces a trade's fields. The server recomputes returns
// and downstream metrics and marks the run's analytics snapshot dirty.
func (c *Client) UpdateTrade(ctx context.Context, id string, payload model.TradePayload) (model.Trade, error) {
	var trade model.Trade
	if err := validateTrade(payload); err != nil {
		return trade, err
	}
	err := c.put(ctx, "trades", fmt.Sprintf("/trades/%s", id), payload, &trade)
	return trade, err
}

// DeleteTrade removes a trade from its run.
func (c *Client) DeleteTrade(ctx context.Context, id string) error {
	return c.delete(ctx, "trades", fmt.Sprintf("/trades/%s", id))
}

func validateTrade(payload model.TradePayload) error {
	if err := model.ValidatePayload(payload); err != nil {
		return err
	}
	return model.ValidateStopLoss(payload.Direction, payload.EntryPrice, payload.StopLoss)
}
