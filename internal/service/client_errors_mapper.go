// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/adapter"
)

// mapLoginError translates the adapter's transport error of a login call into
// a service business error. The server's detail text is kept for the log.
func mapLoginError(err error) error {
	if err == nil {
		return nil
	}

	detail := extractDetail(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrBadRequest):
		return withDetail(ErrWrongCredentials, detail)
	case errors.Is(err, adapter.ErrForbidden):
		return withDetail(ErrLoginForbidden, detail)
	}

	return err
}

func withDetail(sentinel error, detail string) error {
	if detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}

// extractDetail extracts the body from a message of the form
// "bad request: <body>" and unwraps {"detail": "..."} when the body is JSON.
func extractDetail(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		msg = msg[idx+2:]
	}

	var body struct {
		Detail any `json:"detail"`
	}
	if json.Unmarshal([]byte(msg), &body) != nil || body.Detail == nil {
		return msg
	}

	if s, ok := body.Detail.(string); ok {
		return s
	}
	// validation errors come as a list of objects
	raw, _ := json.Marshal(body.Detail)
	return string(raw)
}
