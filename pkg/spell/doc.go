// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package spell provides the ability to suggest an exact spelling of a word.

In the context of sti, this is useful for errors that involve misspelled
variable names: an insert of %{nmae} next to a declaration of "name".
*/
package spell
