package service

import "errors"

var (
	// ErrAuthExpired means the session is gone and cannot be refreshed; the
	// user has to sign in again.
	ErrAuthExpired = errors.New("session expired")

	// ErrResourceFetchFailed wraps the error of a failed resource fetch. The
	// resource goes back to absent so the next Acquire retries.
	ErrResourceFetchFailed = errors.New("resource fetch failed")

	// ErrOversizePayload rejects a payload larger than the configured maximum
	// before anything is sent.
	ErrOversizePayload = errors.New("payload exceeds maximum file size")

	ErrEmptyPayload           = errors.New("empty payload")
	ErrNoConversationOpen     = errors.New("no conversation open")
	ErrInvalidConversationKey = errors.New("invalid conversation key")
	ErrInvalidDataProvided    = errors.New("invalid data provided")
	ErrPreviewEncodingFailed  = errors.New("preview encoding failed")
	ErrMissingPhotoID         = errors.New("photo upload returned no photo id")

	// ErrWrongCredentials is returned by Login for a rejected username or
	// password.
	ErrWrongCredentials = errors.New("wrong username or password")
	// ErrLoginForbidden is returned by Login when the server refuses the
	// account itself (disabled, agreement not accepted).
	ErrLoginForbidden = errors.New("login forbidden")
)
