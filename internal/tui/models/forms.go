package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/x88a9/edge-lab/internal/model"
)

func (a App) newSystemForm() *Form {
	client := a.client
	return NewForm("New system",
		func(values []string) (tea.Cmd, error) {
			payload := model.CreateSystem{
				Name:        values[0],
				DisplayName: values[1],
				Asset:       values[2],
				Description: values[3],
			}
			return func() tea.Msg {
				ctx, cancel := apiCtx()
				defer cancel()
				_, err := client.CreateSystem(ctx, payload)
				return errOr(err, mutationDoneMsg{toast: "system created"})
			}, nil
		},
		NewField("name", "mean-reversion", "", true),
		NewField("display name", "Mean Reversion", "", true),
		NewField("asset", "EURUSD", "", true),
		NewField("description", "", "", false),
	)
}

func (a App) newVariantForm(systemID string) *Form {
	client := a.client
	return NewForm("New variant",
		func(values []string) (tea.Cmd, error) {
			version, err := strconv.Atoi(values[2])
			if err != nil || version <= 0 {
				return nil, errors.New("version must be a positive integer")
			}
			params := json.RawMessage(values[4])
			if !json.Valid(params) {
				return nil, errors.New("parameters must be valid JSON")
			}
			payload := model.CreateVariant{
				StrategyID:    systemID,
				Name:          values[0],
				DisplayName:   values[1],
				VersionNumber: version,
				ParameterHash: values[3],
				ParameterJSON: params,
				Description:   values[5],
			}
			return func() tea.Msg {
				ctx, cancel := apiCtx()
				defer cancel()
				_, err := client.CreateVariant(ctx, payload)
				return errOr(err, mutationDoneMsg{toast: "variant created"})
			}, nil
		},
		NewField("name", "breakout-tight", "", true),
		NewField("display name", "Breakout (tight stop)", "", true),
		NewField("version", "1", "1", true),
		NewField("parameter hash", "", "", true),
		NewField("parameters json", `{"stop_atr": 1.5}`, "{}", true),
		NewField("description", "", "", false),
	)
}

func (a App) newRunForm(variantID string) *Form {
	client := a.client
	return NewForm("New run",
		func(values []string) (tea.Cmd, error) {
			capital, err := model.ParsePositiveAmount(values[1])
			if err != nil {
				return nil, fmt.Errorf("initial capital: %w", err)
			}
			runType := values[2]
			switch runType {
			case model.RunTypeBacktest, model.RunTypeForward, model.RunTypeMonteCarlo:
			default:
				return nil, errors.New("run type must be backtest, forward or montecarlo")
			}
			payload := model.CreateRun{
				VariantID:      variantID,
				DisplayName:    values[0],
				InitialCapital: capital,
				RunType:        runType,
				Description:    values[4],
			}
			if values[3] != "" {
				limit, err := strconv.Atoi(values[3])
				if err != nil || limit <= 0 {
					return nil, errors.New("trade limit must be a positive integer")
				}
				payload.TradeLimit = &limit
			}
			return func() tea.Msg {
				ctx, cancel := apiCtx()
				defer cancel()
				_, err := client.CreateRun(ctx, payload)
				return errOr(err, mutationDoneMsg{toast: "run created"})
			}, nil
		},
		NewField("display name", "forward test Q3", "", true),
		NewField("initial capital", "10000", "10000", true),
		NewField("run type", "backtest | forward | montecarlo", model.RunTypeBacktest, true),
		NewField("trade limit", "optional", "", false),
		NewField("description", "", "", false),
	)
}

// newTradeForm creates the add/edit trade form. Passing an existing
// trade pre-fills the draft and turns submit into an update.
func (a App) newTradeForm(runID string, existing *model.Trade) *Form {
	client := a.client

	title := "New trade"
	var entry, exit, stop, size, direction, timeframe, timestamp string
	direction = model.DirectionLong
	if existing != nil {
		title = "Edit trade"
		entry = strconv.FormatFloat(existing.EntryPrice, 'f', -1, 64)
		exit = strconv.FormatFloat(existing.ExitPrice, 'f', -1, 64)
		size = strconv.FormatFloat(existing.Size, 'f', -1, 64)
		direction = existing.Direction
		timeframe = existing.Timeframe
		timestamp = existing.Timestamp
		if existing.StopLoss != nil {
			stop = strconv.FormatFloat(*existing.StopLoss, 'f', -1, 64)
		}
	}

	return NewForm(title,
		func(values []string) (tea.Cmd, error) {
			entryPrice, err := model.ParsePositiveAmount(values[0])
			if err != nil {
				return nil, fmt.Errorf("entry price: %w", err)
			}
			exitPrice, err := model.ParsePositiveAmount(values[1])
			if err != nil {
				return nil, fmt.Errorf("exit price: %w", err)
			}
			tradeSize, err := model.ParsePositiveAmount(values[3])
			if err != nil {
				return nil, fmt.Errorf("size: %w", err)
			}

			payload := model.TradePayload{
				RunID:      runID,
				EntryPrice: entryPrice,
				ExitPrice:  exitPrice,
				Size:       tradeSize,
				Direction:  values[4],
				Timeframe:  values[5],
				Timestamp:  values[6],
			}
			if values[2] != "" {
				stopLoss, err := model.ParsePositiveAmount(values[2])
				if err != nil {
					return nil, fmt.Errorf("stop loss: %w", err)
				}
				payload.StopLoss = &stopLoss
			}
			if err := model.ValidateStopLoss(payload.Direction, payload.EntryPrice, payload.StopLoss); err != nil {
				return nil, err
			}

			if existing != nil {
				tradeID := existing.ID
				return func() tea.Msg {
					ctx, cancel := apiCtx()
					defer cancel()
					_, err := client.UpdateTrade(ctx, tradeID, payload)
					return errOr(err, mutationDoneMsg{toast: "trade updated"})
				}, nil
			}

			// Patch the draft into the trades tab immediately; the
			// post-create refetch replaces it with server values.
			raw, logReturn, err := model.ComputeReturns(entryPrice, exitPrice, payload.Direction)
			if err != nil {
				return nil, err
			}
			draft := model.Trade{
				RunID:      runID,
				EntryPrice: entryPrice,
				ExitPrice:  exitPrice,
				StopLoss:   payload.StopLoss,
				Size:       tradeSize,
				Direction:  payload.Direction,
				RawReturn:  raw,
				LogReturn:  logReturn,
				Timeframe:  payload.Timeframe,
				Timestamp:  payload.Timestamp,
			}
			return tea.Batch(
				func() tea.Msg { return tradeDraftMsg{trade: draft} },
				func() tea.Msg {
					ctx, cancel := apiCtx()
					defer cancel()
					_, err := client.CreateTrade(ctx, payload)
					return errOr(err, mutationDoneMsg{toast: "trade recorded"})
				},
			), nil
		},
		NewField("entry price", "1.0842", entry, true),
		NewField("exit price", "1.0901", exit, true),
		NewField("stop loss", "optional", stop, false),
		NewField("size", "1.0", size, true),
		NewField("direction", "long | short", direction, true),
		NewField("timeframe", "H1 | H4 | D1", timeframe, false),
		NewField("timestamp", "2026-01-15T09:30:00Z", timestamp, false),
	)
}
