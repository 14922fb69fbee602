// Package api provides the typed HTTP client for the Edge Lab REST API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnavailable indicates the API could not be reached at all.
	ErrUnavailable = errors.New("edge lab api unreachable")

	// ErrUnauthorized indicates the session token was missing or rejected.
	// The triggering call is terminal; the session has already been
	// invalidated by the time this is returned.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotComputed indicates an analytics snapshot has not been computed
	// for the run yet. Missing, not broken: callers should offer a compute
	// action rather than an error message.
	ErrNotComputed = errors.New("analytics not computed")
)

// Error is a non-2xx API response with its detail body collapsed to a
// single message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Is lets callers match the sentinel categories with errors.Is.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == 401
	case ErrNotFound:
		return e.Status == 404
	}
	return false
}

// errorBody mirrors the server's error envelope. FastAPI-style backends
// put the payload under "detail"; it may be a plain string, a list of
// {msg: ...} objects, or an arbitrary object.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// CollapseDetail flattens a structured error body into one display
// string. Unparseable bodies fall back to the raw text.
func CollapseDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}
	return collapseRaw(envelope.Detail)
}

func collapseRaw(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var msgs []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &msgs); err == nil && len(msgs) > 0 {
		parts := make([]string, 0, len(msgs))
		for _, m := range msgs {
			if m.Msg != "" {
				parts = append(parts, m.Msg)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}

	// Arbitrary object: render it verbatim rather than dropping it.
	return strings.TrimSpace(string(raw))
}
