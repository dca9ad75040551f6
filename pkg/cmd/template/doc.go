// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package template implements the "template" and "check" commands (not to be
confused with "pkg/template" home of the templating mechanism itself).

Front-and-center is template.Options. This is both the host of sti settings
parsed from the command-line through Cobra AND the top-level logic that
implements the command. RunWithFiles is the part that does not touch the
file system or the terminal, which is what tests exercise.
*/
package template
