// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"path/filepath"

	"carvel.dev/sti/pkg/files"
)

type FilesFlags struct {
	Files     []string
	Recursive bool
}

func (s *FilesFlags) Set(flags CmdFlags) {
	flags.StringArrayVarP(&s.Files, "file", "f", nil, "Template file (ie local path, HTTP URL, -) (can be specified multiple times)")
	flags.BoolVarP(&s.Recursive, "recursive", "R", true, "Walk directories given via -f (true by default)")
}

func (s *FilesFlags) Input() ([]*files.File, error) {
	if len(s.Files) == 0 {
		return nil, fmt.Errorf("Expected at least one template file to be given (hint: use -f)")
	}

	allFiles, err := files.NewFiles(s.Files, s.Recursive)
	if err != nil {
		return nil, err
	}

	// directories may also hold values files and outputs
	var result []*files.File
	for _, file := range allFiles {
		if file.Type() == files.TypeTemplate || !file.IsFromDirectory() {
			result = append(result, file)
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("Expected at least one template file (with '.sti' extension) in given directories")
	}
	return result, nil
}

// LocalPaths lists the given paths that can be watched for changes.
func (s *FilesFlags) LocalPaths() ([]string, error) {
	var result []string
	for _, path := range s.Files {
		if path == "-" {
			return nil, fmt.Errorf("Expected template files to be local files when watching, but found '-'")
		}
		if !isLocalPath(path) {
			continue
		}
		result = append(result, filepath.Clean(path))
	}
	return result, nil
}
