package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/config"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/utils"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

const userAgent = "familyvault"

type httpAIBackend struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAIBackend constructs an HTTP/REST implementation of [AIBackend].
// It normalises and validates the base URL from cfg.AIAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if cfg.AIAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPAIBackend(cfg config.Adapter, logger *logger.Logger) (AIBackend, error) {
	baseURL, err := normalizeBaseURL(cfg.AIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid ai proxy address: %w", err)
	}

	client := utils.NewHTTPClient(userAgent)
	client.SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpAIBackend{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do implements [AIBackend]. It POSTs req as JSON to /api/ai/<kind>. The
// response kind defaults to the request kind when the proxy omits it.
func (h *httpAIBackend) Do(ctx context.Context, req models.AIRequest) (models.AIResponse, error) {
	if !isKnownKind(req.Kind) {
		return models.AIResponse{}, fmt.Errorf("%w: unsupported request kind %q", ErrBadRequest, req.Kind)
	}

	started := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/ai/" + string(req.Kind))
	if err != nil {
		h.logger.Err(err).Str("func", "httpAIBackend.Do").Str("kind", string(req.Kind)).Msg("ai proxy request failed")
		return models.AIResponse{}, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	h.logger.Debug().
		Str("func", "httpAIBackend.Do").
		Str("kind", string(req.Kind)).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(started)).
		Msg("ai proxy responded")

	if err = mapHTTPError(resp); err != nil {
		return models.AIResponse{}, err
	}

	var out models.AIResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.AIResponse{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if out.Kind == "" {
		out.Kind = req.Kind
	}

	return out, nil
}

func isKnownKind(k models.AIRequestKind) bool {
	switch k {
	case models.AIChat, models.AIImage, models.AIVideo, models.AITranscribe, models.AISpeech:
		return true
	}
	return false
}
