// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd holds sti's commands as instances of cobra.Command
(not to be confused with ./cmd which contains the main package).

For a list of commands run:

	$ sti help

Without a subcommand, sti evaluates templates, same as "sti template".
*/
package cmd
