// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// messaging client's user-facing surfaces.
//
// All Msg* constants are short human-readable status lines shown to the user
// or written into log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the client.
package app

const (
	// MsgSessionExpired is shown when the session cannot be refreshed and the
	// user has to sign in again.
	MsgSessionExpired = "session expired, please sign in again"

	// MsgWrongCredentials is shown when the server rejects the username or
	// password.
	MsgWrongCredentials = "wrong username or password"

	// MsgLoginForbidden is shown when the account itself may not sign in.
	MsgLoginForbidden = "this account cannot sign in"

	// MsgInvalidDataProvided is shown when required input is missing.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgOffline is shown when the realtime channel is down; messages are
	// synced once it is back.
	MsgOffline = "offline, waiting for connection"

	// MsgFileTooLarge is shown when a payload exceeds the maximum file size.
	MsgFileTooLarge = "file is too large"

	// MsgEmptyFile is shown when a payload has no bytes.
	MsgEmptyFile = "file is empty"

	// MsgNoConversationOpen is shown when sending without a conversation.
	MsgNoConversationOpen = "open a conversation first"

	// MsgResourceUnavailable is shown when an attachment cannot be loaded.
	MsgResourceUnavailable = "attachment could not be loaded"

	// MsgCacheUnavailable is shown when the local database could not be
	// opened and history will not survive a restart.
	MsgCacheUnavailable = "local storage unavailable, history will not be kept"

	// MsgServerError is shown for 5xx responses.
	MsgServerError = "server error, try again later"

	// MsgNotFound is shown when the server does not know the requested item.
	MsgNotFound = "not found"

	// MsgSomethingWentWrong is the fallback for unclassified errors.
	MsgSomethingWentWrong = "something went wrong"
)

// Connection status lines.
const (
	MsgConnected    = "connected"
	MsgConnecting   = "connecting"
	MsgDisconnected = "disconnected"
	MsgGaveUp       = "connection lost, reconnect manually"
)
