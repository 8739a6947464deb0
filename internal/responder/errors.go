// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package responder

import (
	"errors"
	"strings"

	"github.com/loralabs/lora-tui/internal/gemini"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorKind categorizes response failures for display handling.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConnectivity
	KindAuth
	KindTimeout
	KindRateLimit
)

// User-facing Turkish messages.
const (
	msgOffline    = "İnternet bağlantınız yok. Lütfen bağlantınızı kontrol edin ve tekrar deneyin."
	msgAuth       = "API anahtarı hatası. Lütfen sistem yöneticisiyle iletişime geçin."
	msgTimeout    = "İstek zaman aşımına uğradı. Lütfen tekrar deneyin."
	msgNetwork    = "Bağlantı hatası. Lütfen internet bağlantınızı kontrol edin."
	msgQuota      = "API kullanım limiti aşıldı. Lütfen daha sonra tekrar deneyin."
	msgUnexpected = "Beklenmeyen bir hata oluştu. Lütfen tekrar deneyin."
)

// FallbackMessage is the response text substituted when generation fails in a
// way that cannot even be reported as an error.
const FallbackMessage = "Üzgünüm, bir hata oluştu. Lütfen tekrar deneyin."

// ResponseError is a classified generation failure. Message is what the user
// sees; Cause carries the underlying error for logs.
type ResponseError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ResponseError) Error() string {
	return e.Message
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// classify maps a generation failure to a *ResponseError. Precedence:
// connection, API key, timeout, network, quota; anything else passes through
// with its original message.
func classify(err error) *ResponseError {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr
	}

	msg := err.Error()
	switch {
	case gemini.IsConnection(err):
		return &ResponseError{Kind: KindConnectivity, Message: msgOffline, Cause: err}
	case gemini.IsAuth(err) || strings.Contains(msg, "API key"):
		return &ResponseError{Kind: KindAuth, Message: msgAuth, Cause: err}
	case gemini.IsTimeout(err) || strings.Contains(msg, "timeout"):
		return &ResponseError{Kind: KindTimeout, Message: msgTimeout, Cause: err}
	case strings.Contains(msg, "network"):
		return &ResponseError{Kind: KindConnectivity, Message: msgNetwork, Cause: err}
	case gemini.IsRateLimited(err) || strings.Contains(msg, "quota"):
		return &ResponseError{Kind: KindRateLimit, Message: msgQuota, Cause: err}
	default:
		return &ResponseError{Kind: KindUnknown, Message: msg, Cause: err}
	}
}
