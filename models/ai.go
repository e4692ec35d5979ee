// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// AIRequestKind names the remote model capability a request targets.
type AIRequestKind string

const (
	AIChat       AIRequestKind = "chat"
	AIImage      AIRequestKind = "image"
	AIVideo      AIRequestKind = "video"
	AITranscribe AIRequestKind = "transcribe"
	AISpeech     AIRequestKind = "speech"
)

// AIRequest is the opaque request object forwarded to the hosted model
// through the proxy. Payload carries capability-specific fields untouched.
type AIRequest struct {
	Kind    AIRequestKind   `json:"kind"`
	Model   string          `json:"model,omitempty"`
	Prompt  string          `json:"prompt,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// AIResponse is the opaque response returned by the proxy.
type AIResponse struct {
	Kind     AIRequestKind   `json:"kind"`
	Text     string          `json:"text,omitempty"`
	MediaURL string          `json:"mediaUrl,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}
