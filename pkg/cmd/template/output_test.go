// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	cmdtpl "carvel.dev/sti/pkg/cmd/template"
	"carvel.dev/sti/pkg/cmd/ui"
	"carvel.dev/sti/pkg/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoFileOutput() cmdtpl.Output {
	return cmdtpl.Output{Files: []files.OutputFile{
		files.NewOutputFile("a.txt", []byte("first\n")),
		files.NewOutputFile("nested/b.txt", []byte("second\n")),
	}}
}

func TestOutputFlagsValidate(t *testing.T) {
	require.NoError(t, (&cmdtpl.OutputFlags{}).Validate())
	require.NoError(t, (&cmdtpl.OutputFlags{Format: cmdtpl.OutputFormatHTMLFromMarkdown}).Validate())

	err := (&cmdtpl.OutputFlags{File: "out.txt", Directory: "out"}).Validate()
	require.EqualError(t, err, "Expected only one of --output or --output-directory to be specified")

	err = (&cmdtpl.OutputFlags{Format: "pdf"}).Validate()
	require.EqualError(t, err, "Unknown output format 'pdf' (expected one of 'text', 'html-from-markdown')")
}

func TestOutputFlagsWriteStdout(t *testing.T) {
	stdout := &bytes.Buffer{}
	err := (&cmdtpl.OutputFlags{}).Write(twoFileOutput(), ui.NewCustomWriterTTY(false, stdout, &bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", stdout.String())
}

func TestOutputFlagsWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeper", "out.txt")
	stdout := &bytes.Buffer{}

	err := (&cmdtpl.OutputFlags{File: path}).Write(twoFileOutput(), ui.NewCustomWriterTTY(false, stdout, &bytes.Buffer{}))
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(contents))
	assert.Empty(t, stdout.String())
}

func TestOutputFlagsWriteDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("kept"), 0600))

	err := (&cmdtpl.OutputFlags{Directory: dir}).Write(twoFileOutput(), testUI())
	require.NoError(t, err)

	for path, expected := range map[string]string{
		"a.txt":        "first\n",
		"nested/b.txt": "second\n",
		"keep.txt":     "kept",
	} {
		contents, err := os.ReadFile(filepath.Join(dir, path))
		require.NoError(t, err)
		assert.Equal(t, expected, string(contents))
	}
}

func TestOutputFlagsWriteReturnsOutputErr(t *testing.T) {
	stdout := &bytes.Buffer{}
	out := twoFileOutput()
	out.Err = errors.New("boom")

	err := (&cmdtpl.OutputFlags{}).Write(out, ui.NewCustomWriterTTY(false, stdout, &bytes.Buffer{}))
	require.EqualError(t, err, "boom")
	assert.Empty(t, stdout.String())
}

func TestOutputFlagsConvert(t *testing.T) {
	out, err := (&cmdtpl.OutputFlags{}).Convert("# not converted\n")
	require.NoError(t, err)
	assert.Equal(t, "# not converted\n", string(out))

	out, err = (&cmdtpl.OutputFlags{Format: cmdtpl.OutputFormatHTMLFromMarkdown}).Convert("- one\n- two\n")
	require.NoError(t, err)
	assert.Equal(t, "<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n", string(out))
}
