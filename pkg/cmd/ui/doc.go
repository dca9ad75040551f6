// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package ui is the single place commands write to the terminal.
package ui
