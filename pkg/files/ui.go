// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

// UI receives debug output while writing files.
type UI interface {
	Debugf(string, ...interface{})
}
