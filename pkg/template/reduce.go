// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"strings"
)

// Reduce concatenates literal characters and the values of inserts in
// template order. Ignore inserts contribute nothing.
//
// Values must come from resolving the declarations the template was
// verified against; a missing value panics.
func Reduce(template Template, values *Values) string {
	var sb strings.Builder

	for _, part := range template {
		switch typedPart := part.(type) {
		case CharPart:
			sb.WriteRune(typedPart.Char)

		case InsertPart:
			if typedPart.Var.IsIgnore() {
				continue
			}
			val, found := values.Get(typedPart.Var)
			if !found {
				panic(fmt.Sprintf("Internal inconsistency: no value resolved for verified variable '%s'", typedPart.Var))
			}
			sb.WriteString(val)

		default:
			panic(fmt.Sprintf("unknown template part %T", typedPart))
		}
	}

	return sb.String()
}
