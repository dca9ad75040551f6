// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	cmdtpl "carvel.dev/sti/pkg/cmd/template"
	"carvel.dev/sti/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type StiOptions struct{}

func NewDefaultStiOptions() *StiOptions {
	return &StiOptions{}
}

func NewDefaultStiCmd() *cobra.Command {
	return NewStiCmd(NewDefaultStiOptions())
}

// NewStiCmd builds the root command. Templating is the root command's own
// action so that `sti -f tpl.sti` works without a subcommand.
func NewStiCmd(o *StiOptions) *cobra.Command {
	cmd := NewCmd(cmdtpl.NewOptions())

	cmd.Use = "sti"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "sti fills in string templates"
	cmd.Long = `sti fills in string templates.

A template declares its variables up front and then lists its text:

	{name, greeting ? "Hello"}->%{greeting}, %{name}!

Values come from --values-env, --values-file, -v and --value-file,
later flags overriding earlier ones. Declared defaults apply last.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewCmd(cmdtpl.NewOptions()))
	cmd.AddCommand(NewCheckCmd(cmdtpl.NewCheckOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
