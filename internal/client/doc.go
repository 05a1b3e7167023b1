// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It owns the process lifecycle of the terminal client: it derives a context
// cancelled on SIGINT/SIGTERM and runs the UI under it until the user quits.
package client
