// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"carvel.dev/sti/pkg/filepos"
)

// ParseError describes where source text stopped matching the grammar.
type ParseError struct {
	Position *filepos.Position
	Msg      string
}

func (e ParseError) Error() string {
	return e.Msg + " at " + e.Position.AsString()
}
