// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/sti/pkg/cmd/template"
	"github.com/spf13/cobra"
)

func NewCheckCmd(o *template.CheckOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Parse and verify templates without evaluating them",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.BindFlags(cmd.Flags())
	return cmd
}
