// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"errors"
	"fmt"

	"carvel.dev/sti/pkg/cmd/ui"
	"carvel.dev/sti/pkg/eval"
	"carvel.dev/sti/pkg/files"
)

// CheckOptions parses and verifies templates without any values.
type CheckOptions struct {
	Debug      bool
	FilesFlags FilesFlags
}

func NewCheckOptions() *CheckOptions {
	return &CheckOptions{}
}

func (o *CheckOptions) BindFlags(cmdFlags CmdFlags) {
	cmdFlags.BoolVar(&o.Debug, "debug", false, "Enable debug output")
	o.FilesFlags.Set(cmdFlags)
}

func (o *CheckOptions) Run() error {
	ui := ui.NewTTY(o.Debug)

	filesToCheck, err := o.FilesFlags.Input()
	if err != nil {
		return err
	}

	return o.RunWithFiles(filesToCheck, ui)
}

// RunWithFiles checks every file, even after one fails, and reports
// the problems of all files together.
func (o *CheckOptions) RunWithFiles(filesToCheck []*files.File, ui ui.UI) error {
	var errs []error

	for _, file := range filesToCheck {
		src, err := file.Bytes()
		if err != nil {
			errs = append(errs, fmt.Errorf("Reading template %s: %s", file.Description(), err))
			continue
		}

		prepared, err := eval.Prepare(file.RelativePath(), src)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		ui.Printf("ok: %s (%d declarations)\n", file.RelativePath(), len(prepared.Decls()))
	}

	return errors.Join(errs...)
}
