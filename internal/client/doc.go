// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the startup checks, prepares the auth directory and identity,
// wires storages, services and the clipboard, and hands control to the
// terminal UI for the rest of the process lifecycle.
package client
