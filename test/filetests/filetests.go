// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filetests houses a test harness for evaluating templates and asserting
the expected output.
*/
package filetests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cmdtpl "carvel.dev/sti/pkg/cmd/template"
	"carvel.dev/sti/pkg/eval"
	"carvel.dev/sti/pkg/files"
	"carvel.dev/sti/pkg/template"
	"github.com/k14s/difflib"
)

const (
	valuesHeader    = "#! values\n"
	valuesSeparator = "\n---\n"
	outputSeparator = "\n+++\n\n"
)

// EvaluateTemplate is the processing desired from a source template to the final result.
type EvaluateTemplate func(name, src string, inputs template.Inputs) (string, error)

// FileTests contain a suite of test cases, each described in a separate file, verifying the behavior of templates.
//
// Test cases:
//   - are found within the directory at "PathToTests"
//   - conventionally have a .tpltest extension
//   - top-half is the template; bottom-half is the expected output; divided by `+++` and a blank line.
//   - may start with a `#! values` line, followed by YAML values and a `---` line, ahead of the template
//
// The template ends right before the `+++` line, so it never includes a trailing newline of its own.
// The expected output ends right before the final newline of the file.
//
// Expected output starting with `ERR:` indicates that expected output is an error message.
//
// For example:
//
//	#! values
//	name: Ada
//	---
//	{name}->Hello, %{name}!
//	+++
//
//	Hello, Ada!
type FileTests struct {
	PathToTests string
	EvalFunc    EvaluateTemplate
}

// Run runs each test: enumerates each file within FileTests.PathToTests; splits and evaluates using FileTests.EvalFunc.
func (f FileTests) Run(t *testing.T) {
	var testFiles []string

	err := filepath.Walk(f.PathToTests, func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		testFiles = append(testFiles, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to enumerate filetests: %s", err)
	}
	if len(testFiles) == 0 {
		t.Fatalf("Expected at least one filetest in %s", f.PathToTests)
	}

	if f.EvalFunc == nil {
		f.EvalFunc = DefaultEvalTemplate
	}

	for _, filePath := range testFiles {
		t.Run(filePath, func(t *testing.T) {
			contents, err := os.ReadFile(filePath)
			if err != nil {
				t.Fatal(err)
			}

			pieces := strings.SplitN(string(contents), outputSeparator, 2)
			if len(pieces) != 2 {
				t.Fatalf("expected file %s to include +++ separator", filePath)
			}

			inputs, src, err := splitValues(pieces[0])
			if err != nil {
				t.Fatalf("%s", err)
			}

			expectedStr := strings.TrimSuffix(pieces[1], "\n")
			resultStr, evalErr := f.EvalFunc(filepath.Base(filePath), src, inputs)

			switch {
			case strings.HasPrefix(expectedStr, "ERR:"):
				if evalErr == nil {
					err = fmt.Errorf("expected eval error, but did not receive it (output: %q)", resultStr)
				} else {
					expectedStr = strings.TrimPrefix(expectedStr, "ERR:")
					expectedStr = strings.TrimPrefix(expectedStr, " ")
					err = expectEquals(
						TrimTrailingMultilineWhitespace(evalErr.Error()),
						TrimTrailingMultilineWhitespace(expectedStr))
				}
			default:
				if evalErr != nil {
					err = fmt.Errorf("eval error: %v", evalErr)
				} else {
					err = expectEquals(resultStr, expectedStr)
				}
			}

			if err != nil {
				t.Fatalf("%s", err)
			}
		})
	}
}

// DefaultEvalTemplate runs the full pipeline on the template "src".
func DefaultEvalTemplate(name, src string, inputs template.Inputs) (string, error) {
	return eval.EvaluateNamed(name, src, inputs)
}

func splitValues(src string) (template.Inputs, string, error) {
	if !strings.HasPrefix(src, valuesHeader) {
		return template.NewOrderedInputs(), src, nil
	}

	pieces := strings.SplitN(strings.TrimPrefix(src, valuesHeader), valuesSeparator, 2)
	if len(pieces) != 2 {
		return nil, "", fmt.Errorf("expected values to be followed by --- separator")
	}

	valuesFile := files.MustNewFileFromSource(files.NewBytesSource("values.yml", []byte(pieces[0])))

	inputs, err := cmdtpl.NewValuesFile(valuesFile).Inputs()
	if err != nil {
		return nil, "", fmt.Errorf("reading values: %s", err)
	}
	return inputs, pieces[1], nil
}

func expectEquals(resultStr, expectedStr string) error {
	if resultStr != expectedStr {
		return fmt.Errorf("not equal\n\n### result %d chars:\n>>>%s<<<\n###expected %d chars:\n>>>%s<<<\n### diff:\n%s",
			len(resultStr), resultStr, len(expectedStr), expectedStr, difflib.PPDiff(
				strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n")))
	}
	return nil
}

// TrimTrailingMultilineWhitespace returns a string with trailing whitespace trimmed from every line as well
// as trimmed trailing empty lines
func TrimTrailingMultilineWhitespace(s string) string {
	var trimmedLines []string
	for _, line := range strings.Split(s, "\n") {
		trimmedLine := strings.TrimRight(line, "\t ")
		trimmedLines = append(trimmedLines, trimmedLine)
	}
	multiline := strings.Join(trimmedLines, "\n")
	return strings.TrimRight(multiline, "\n")
}
