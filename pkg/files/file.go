// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	jsonExts     = []string{".json"}
	yamlExts     = []string{".yaml", ".yml"}
	tomlExts     = []string{".toml"}
	templateExts = []string{".sti"}
)

type Type int

const (
	TypeUnknown Type = iota
	TypeJSON
	TypeYAML
	TypeTOML
	TypeTemplate
)

type File struct {
	src     Source
	relPath string
}

// NewFiles enumerates the given paths: "-" is stdin, http(s) URLs are
// fetched, directories are walked (in lexical order) when recursive is set.
func NewFiles(paths []string, recursive bool) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewStdinSource())

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			fileSrcs = append(fileSrcs, NewCachedSource(NewHTTPSource(path)))

		default:
			fileInfo, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("Checking file '%s'", path)
			}

			if fileInfo.IsDir() {
				if !recursive {
					return nil, fmt.Errorf("Expected file '%s' to not be a directory", path)
				}

				var selectedPaths []string

				err := filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
					if err != nil || fi.IsDir() {
						return err
					}
					selectedPaths = append(selectedPaths, walkedPath)
					return nil
				})
				if err != nil {
					return nil, fmt.Errorf("Listing files '%s'", path)
				}

				sort.Strings(selectedPaths)

				for _, selectedPath := range selectedPaths {
					fileSrcs = append(fileSrcs, NewLocalSource(selectedPath, path))
				}
			} else {
				fileSrcs = append(fileSrcs, NewLocalSource(path, ""))
			}
		}
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(fileSrc)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

// IsFromDirectory is true for files found by walking a directory.
func (r *File) IsFromDirectory() bool {
	if localSrc, ok := r.src.(LocalSource); ok {
		return len(localSrc.dir) > 0
	}
	return false
}

func (r *File) Type() Type {
	switch {
	case r.matchesExt(jsonExts):
		return TypeJSON
	case r.matchesExt(yamlExts):
		return TypeYAML
	case r.matchesExt(tomlExts):
		return TypeTOML
	case r.matchesExt(templateExts):
		return TypeTemplate
	default:
		return TypeUnknown
	}
}

// OutputRelativePath is the relative path with a template extension removed
// (e.g. "greeting.txt.sti" becomes "greeting.txt").
func (r *File) OutputRelativePath() string {
	for _, ext := range templateExts {
		if strings.HasSuffix(r.relPath, ext) {
			return strings.TrimSuffix(r.relPath, ext)
		}
	}
	return r.relPath
}

func (r *File) matchesExt(exts []string) bool {
	filename := filepath.Base(r.RelativePath())
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
