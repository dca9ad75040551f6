// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package template provides the core templating engine for sti.

A source file is parsed (see package texttemplate) into a Body: a list of
declarations and a Template made of literal characters and inserts. Turning a
Body into text happens in three steps, each of which can only consume the
output of the one before it:

  - Verify proves every insert refers to a declared variable (or to the ignore
    variable "_") and produces a VerifiedBody. All undefined inserts are reported
    at once.
  - VerifiedBody.Resolve asks Inputs for values of the declarations, falling back
    to declared defaults, and produces a VerifiedTemplate. It stops at the first
    missing value.
  - VerifiedTemplate.Reduce substitutes values into the template.

All of these types are immutable once built and are safe to share between
goroutines.
*/
package template
