// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal application runtime.
//
// It runs the terminal UI under a context that is cancelled on termination
// signals and reports how the session ended.
package client
