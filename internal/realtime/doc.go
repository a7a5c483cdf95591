// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package realtime implements the client side of the server's websocket
// channel.
//
// A [Channel] owns exactly one connection at a time. It authenticates the
// connection with a bearer token obtained right before dialing, keeps it
// alive with application-level ping/pong frames and decodes every inbound
// frame into a typed [models.Event] that is fanned out to subscribers.
//
// Lost connections are re-established according to why they were lost:
//
//   - the server closed the connection: reconnect once after a fixed delay;
//   - the client called [Channel.Disconnect]: stay disconnected;
//   - anything else (dial failures, read errors, missed pongs): exponential
//     backoff capped at a maximum delay, then a single last-resort retry.
//
// Connections replaced by a newer one (token renewal, manual reconnect) are
// tracked by generation number so that late events from them are dropped.
package realtime
