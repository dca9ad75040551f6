// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the release version of sti.
package version

// Version is set at build time
// (-ldflags "-X carvel.dev/sti/pkg/version.Version=...").
var Version = "develop"
