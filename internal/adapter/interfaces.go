// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the REST transport used by the messaging client.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPServerAdapter]) rooted at the versioned API prefix, e.g.
// "http://localhost:8000/api/v1".
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrPayloadTooLarge] for 413).
package adapter

import (
	"context"
	"io"

	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the messaging server. Implementations
// are responsible for serialisation, bearer header management, and mapping
// transport-level errors to the sentinel values defined in this package.
//
// None of the methods refresh credentials on their own: a 401 is returned as
// [ErrUnauthorized] and the session layer decides what to do with it.
type ServerAdapter interface {
	// SetToken stores the access token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the access token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Login exchanges a username and password for a credential pair via the
	// OAuth2 password form at POST /auth/login.
	Login(ctx context.Context, username, password string) (models.TokenResponse, error)

	// Refresh exchanges refreshToken for a new credential pair at
	// POST /auth/refresh. It is sent without the bearer header.
	Refresh(ctx context.Context, refreshToken string) (models.TokenResponse, error)

	// Me returns the account the current access token belongs to.
	Me(ctx context.Context) (models.User, error)

	// Conversations lists the conversations of the current account.
	Conversations(ctx context.Context) ([]models.Conversation, error)

	// Messages returns one page of a conversation, oldest first.
	Messages(ctx context.Context, page models.MessagePage) ([]models.Message, error)

	// MessagesSince returns messages of a conversation newer than
	// lastMessageID, up to page.Limit.
	MessagesSince(ctx context.Context, page models.MessagePage, lastMessageID int64) (models.MessageSinceResponse, error)

	// MarkRead marks ids as read on the server and returns the number of
	// rows the server updated.
	MarkRead(ctx context.Context, ids []int64) (int, error)

	// UploadFile streams r as a multipart "file" field to POST /files/upload.
	UploadFile(ctx context.Context, fileName string, r io.Reader) (models.UploadResponse, error)

	// UploadPhoto streams r as a multipart "file" field to
	// POST /files/upload-photo.
	UploadPhoto(ctx context.Context, fileName string, r io.Reader) (models.PhotoUploadResponse, error)

	// ResourceURL resolves a message reference (photo id, relative path or
	// absolute URL) into an absolute URL carrying the access token.
	ResourceURL(ref string) string

	// FetchResource downloads the bytes behind ref and reports their
	// content type.
	FetchResource(ctx context.Context, ref string) ([]byte, string, error)

	// Friends lists the accepted contacts of the current account.
	Friends(ctx context.Context) ([]models.Friend, error)
}
