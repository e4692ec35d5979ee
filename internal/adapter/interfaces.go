// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the remote AI proxy.
//
// The primary abstraction is [AIBackend], which decouples the client from
// the protocol used to reach the hosted model. The package ships an
// HTTP/REST implementation ([NewHTTPAIBackend]) that posts JSON to the
// proxy.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] without knowing the
// transport (e.g. [ErrBackendUnavailable] for 5xx, [ErrBadRequest] for 4xx).
package adapter

import (
	"context"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ai_backend_mock.go -package=mock

// AIBackend forwards an opaque request to the hosted model and returns its
// opaque response. Implementations only move bytes; they do not interpret
// prompts or results.
type AIBackend interface {
	// Do sends req and returns the decoded response. Returns
	// [ErrBadRequest] for requests the proxy rejects and
	// [ErrBackendUnavailable] when the proxy cannot be reached or fails.
	Do(ctx context.Context, req models.AIRequest) (models.AIResponse, error)
}
