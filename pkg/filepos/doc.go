// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a file)
plus the line and column within that source.

File positions are crucial when reporting errors to the user: a parse error
points at the character that could not be consumed, and an undefined variable
points at the insert that references it.

Not all Position point within a source (e.g. values supplied on the command
line). A nil or zero-value *Position represents this case.
*/
package filepos
