// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"carvel.dev/sti/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct{}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE:  func(c *cobra.Command, _ []string) error { return o.Run(c) },
	}
	return cmd
}

func (o *VersionOptions) Run(c *cobra.Command) error {
	fmt.Fprintf(c.OutOrStdout(), "sti version %s\n", version.Version)

	return nil
}
