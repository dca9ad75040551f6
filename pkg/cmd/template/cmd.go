// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"carvel.dev/sti/pkg/cmd/ui"
	"carvel.dev/sti/pkg/eval"
	"carvel.dev/sti/pkg/files"
	"carvel.dev/sti/pkg/template"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Debug   bool
	Inspect bool
	Watch   bool

	FilesFlags  FilesFlags
	ValuesFlags ValuesFlags
	OutputFlags OutputFlags
}

type Input struct {
	Files  []*files.File
	Inputs template.Inputs
}

type Output struct {
	Files []files.OutputFile
	Err   error
}

// Combined joins the output of all templates in order.
func (o Output) Combined() []byte {
	var buf bytes.Buffer
	for _, file := range o.Files {
		buf.Write(file.Bytes())
	}
	return buf.Bytes()
}

func NewOptions() *Options {
	return &Options{OutputFlags: OutputFlags{Format: OutputFormatText}}
}

// BindFlags registers template flags for template command.
func (o *Options) BindFlags(cmdFlags CmdFlags) {
	cmdFlags.BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmdFlags.BoolVar(&o.Inspect, "inspect", false, "Print resolved values (in declaration order) instead of output")
	cmdFlags.BoolVar(&o.Watch, "watch", false, "Evaluate again whenever a template or values file changes")
	o.FilesFlags.Set(cmdFlags)
	o.ValuesFlags.Set(cmdFlags)
	o.OutputFlags.Set(cmdFlags)
}

func (o *Options) Run() error {
	ui := ui.NewTTY(o.Debug)

	if err := o.OutputFlags.Validate(); err != nil {
		return err
	}

	if !o.Watch {
		return o.runOnce(ui)
	}

	paths, err := o.watchedPaths()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	watcher := NewWatcher(paths, ui)
	watcher.IgnoreOutputs(o.OutputFlags.File, o.OutputFlags.Directory)

	return watcher.Run(ctx, func() error { return o.runOnce(ui) })
}

func (o *Options) runOnce(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	in, err := o.Input()
	if err != nil {
		return err
	}

	return o.OutputFlags.Write(o.RunWithFiles(in, ui), ui)
}

// Input loads template files and values as given by flags.
func (o *Options) Input() (Input, error) {
	filesToProcess, err := o.FilesFlags.Input()
	if err != nil {
		return Input{}, err
	}

	inputs, err := o.ValuesFlags.Inputs()
	if err != nil {
		return Input{}, err
	}

	return Input{Files: filesToProcess, Inputs: inputs}, nil
}

// RunWithFiles evaluates every file with the same inputs. It stops at the
// first file that fails.
func (o *Options) RunWithFiles(in Input, ui ui.UI) Output {
	var outputFiles []files.OutputFile

	for _, file := range in.Files {
		src, err := file.Bytes()
		if err != nil {
			return Output{Err: fmt.Errorf("Reading template %s: %s", file.Description(), err)}
		}

		prepared, err := eval.Prepare(file.RelativePath(), src)
		if err != nil {
			return Output{Err: err}
		}

		ui.Debugf("### template %s (%d declarations)\n", file.RelativePath(), len(prepared.Decls()))

		var result []byte

		if o.Inspect {
			values, err := prepared.Values(in.Inputs)
			if err != nil {
				return Output{Err: err}
			}
			result, err = o.inspectValues(file, values)
			if err != nil {
				return Output{Err: err}
			}
		} else {
			str, err := prepared.Evaluate(in.Inputs)
			if err != nil {
				return Output{Err: err}
			}
			result, err = o.OutputFlags.Convert(str)
			if err != nil {
				return Output{Err: err}
			}
		}

		outputFiles = append(outputFiles, files.NewOutputFile(file.OutputRelativePath(), result))
	}

	return Output{Files: outputFiles}
}

func (o *Options) inspectValues(file *files.File, values *template.Values) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}

	values.Iterate(func(v template.Var, val string) {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: val})
	})

	bs, err := yaml.Marshal(mapping)
	if err != nil {
		return nil, fmt.Errorf("Marshaling values: %s", err)
	}

	header := fmt.Sprintf("---\n# values for %s\n", file.RelativePath())

	return append([]byte(header), bs...), nil
}

func (o *Options) watchedPaths() ([]string, error) {
	templatePaths, err := o.FilesFlags.LocalPaths()
	if err != nil {
		return nil, err
	}
	valuesPaths, err := o.ValuesFlags.LocalPaths()
	if err != nil {
		return nil, err
	}
	return append(templatePaths, valuesPaths...), nil
}
