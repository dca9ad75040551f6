// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"carvel.dev/sti/pkg/files"
	"carvel.dev/sti/pkg/template"
)

// ValuesFlags collects template inputs. Later sources override earlier ones:
// env vars, then values files, then key-value flags, then file contents.
type ValuesFlags struct {
	EnvPrefixes []string
	Files       []string
	KVs         []string
	KVFiles     []string

	// Environ defaults to os.Environ
	Environ func() []string
}

func (s *ValuesFlags) Set(flags CmdFlags) {
	flags.StringArrayVar(&s.EnvPrefixes, "values-env", nil, "Extract values from prefixed env vars (format: PREFIX for PREFIX_name=value) (can be specified multiple times)")
	flags.StringArrayVar(&s.Files, "values-file", nil, "Read values from a JSON, YAML or TOML file of string values (ie local path, HTTP URL, -) (can be specified multiple times)")
	flags.StringArrayVarP(&s.KVs, "value", "v", nil, "Set specific value (format: name=value) (can be specified multiple times)")
	flags.StringArrayVar(&s.KVFiles, "value-file", nil, "Set specific value to given file contents (format: name=/file/path) (can be specified multiple times)")
}

func (s *ValuesFlags) Inputs() (*template.OrderedInputs, error) {
	result := template.NewOrderedInputs()

	for _, prefix := range s.EnvPrefixes {
		vals, err := s.env(prefix)
		if err != nil {
			return nil, fmt.Errorf("Extracting values from env under prefix '%s': %s", prefix, err)
		}
		result.Merge(vals)
	}

	if len(s.Files) > 0 {
		valuesFiles, err := files.NewFiles(s.Files, false)
		if err != nil {
			return nil, err
		}
		for _, file := range valuesFiles {
			vals, err := NewValuesFile(file).Inputs()
			if err != nil {
				return nil, err
			}
			result.Merge(vals)
		}
	}

	for _, kv := range s.KVs {
		vals, err := s.kv(kv)
		if err != nil {
			return nil, fmt.Errorf("Extracting value from KV: %s", err)
		}
		result.Merge(vals)
	}

	for _, kv := range s.KVFiles {
		vals, err := s.file(kv)
		if err != nil {
			return nil, fmt.Errorf("Extracting value from file: %s", err)
		}
		result.Merge(vals)
	}

	return result, nil
}

// LocalPaths lists files whose changes affect values.
func (s *ValuesFlags) LocalPaths() ([]string, error) {
	var result []string
	for _, path := range s.Files {
		if path == "-" {
			return nil, fmt.Errorf("Expected values files to be local files when watching, but found '-'")
		}
		if isLocalPath(path) {
			result = append(result, filepath.Clean(path))
		}
	}
	for _, kv := range s.KVFiles {
		pieces := strings.SplitN(kv, "=", 2)
		if len(pieces) == 2 {
			result = append(result, filepath.Clean(pieces[1]))
		}
	}
	return result, nil
}

func (s *ValuesFlags) env(prefix string) (*template.OrderedInputs, error) {
	result := template.NewOrderedInputs()

	environ := s.Environ
	if environ == nil {
		environ = os.Environ
	}

	for _, envVar := range environ() {
		pieces := strings.SplitN(envVar, "=", 2)
		if len(pieces) != 2 {
			return nil, fmt.Errorf("Expected env variable to be key-value pair (format: key=value)")
		}

		if !strings.HasPrefix(pieces[0], prefix+"_") {
			continue
		}

		result.Set(strings.TrimPrefix(pieces[0], prefix+"_"), pieces[1])
	}

	return result, nil
}

func (s *ValuesFlags) kv(kv string) (*template.OrderedInputs, error) {
	result := template.NewOrderedInputs()

	pieces := strings.SplitN(kv, "=", 2)
	if len(pieces) != 2 {
		return nil, fmt.Errorf("Expected format name=value")
	}

	result.Set(pieces[0], pieces[1])

	return result, nil
}

func (s *ValuesFlags) file(kv string) (*template.OrderedInputs, error) {
	result := template.NewOrderedInputs()

	pieces := strings.SplitN(kv, "=", 2)
	if len(pieces) != 2 {
		return nil, fmt.Errorf("Expected format name=/file/path")
	}

	contents, err := os.ReadFile(pieces[1])
	if err != nil {
		return nil, fmt.Errorf("Reading file '%s': %s", pieces[1], err)
	}

	result.Set(pieces[0], string(contents))

	return result, nil
}

func isLocalPath(path string) bool {
	return !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://")
}
