// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

// UI is how commands talk to the user: Printf is for results,
// Warnf and Debugf go to stderr (the latter only with --debug).
type UI interface {
	Printf(string, ...interface{})
	Debugf(string, ...interface{})
	Warnf(str string, args ...interface{})
}
