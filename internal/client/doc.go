// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless messaging client runtime.
//
// It wires configuration, local storage, the server adapter, the realtime
// channel and the client services into a single process lifecycle, and ships
// a Renderer that writes every state change as a structured log line.
package client
