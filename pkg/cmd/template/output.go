// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"bytes"
	"fmt"
	"strings"

	"carvel.dev/sti/pkg/cmd/ui"
	"carvel.dev/sti/pkg/files"
	"github.com/yuin/goldmark"
)

const (
	OutputFormatText             = "text"
	OutputFormatHTMLFromMarkdown = "html-from-markdown"
)

var outputFormats = []string{OutputFormatText, OutputFormatHTMLFromMarkdown}

type OutputFlags struct {
	File      string
	Directory string
	Format    string
}

func (s *OutputFlags) Set(flags CmdFlags) {
	flags.StringVarP(&s.File, "output", "o", "", "File to write combined output to (written atomically; default is stdout)")
	flags.StringVar(&s.Directory, "output-directory", "", "Directory to write one output file per template to")
	flags.StringVar(&s.Format, "output-format", OutputFormatText,
		fmt.Sprintf("Output format (one of '%s')", strings.Join(outputFormats, "', '")))
}

func (s *OutputFlags) Validate() error {
	if len(s.File) > 0 && len(s.Directory) > 0 {
		return fmt.Errorf("Expected only one of --output or --output-directory to be specified")
	}
	for _, format := range outputFormats {
		if s.format() == format {
			return nil
		}
	}
	return fmt.Errorf("Unknown output format '%s' (expected one of '%s')",
		s.Format, strings.Join(outputFormats, "', '"))
}

func (s *OutputFlags) format() string {
	if len(s.Format) == 0 {
		return OutputFormatText
	}
	return s.Format
}

// Convert applies the output format to evaluated template output.
func (s *OutputFlags) Convert(output string) ([]byte, error) {
	switch s.format() {
	case OutputFormatHTMLFromMarkdown:
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(output), &buf); err != nil {
			return nil, fmt.Errorf("Converting markdown to HTML: %s", err)
		}
		return buf.Bytes(), nil
	default:
		return []byte(output), nil
	}
}

func (s *OutputFlags) Write(out Output, ui ui.UI) error {
	if out.Err != nil {
		return out.Err
	}

	switch {
	case len(s.Directory) > 0:
		return files.NewOutputDirectory(s.Directory, out.Files, ui).Write()

	case len(s.File) > 0:
		ui.Debugf("writing: %s\n", s.File)
		err := files.WriteFileAtomically(s.File, out.Combined())
		if err != nil {
			return fmt.Errorf("Writing output file '%s': %s", s.File, err)
		}
		return nil

	default:
		ui.Debugf("### result\n")
		ui.Printf("%s", out.Combined()) // no newline
		return nil
	}
}
