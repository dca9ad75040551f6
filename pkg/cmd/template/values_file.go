// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"encoding/json"
	"fmt"
	"sort"

	"carvel.dev/sti/pkg/files"
	"carvel.dev/sti/pkg/template"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ValuesFile is a flat map of names to string values.
// Files that are neither JSON nor TOML are read as YAML.
type ValuesFile struct {
	file *files.File
}

func NewValuesFile(file *files.File) ValuesFile {
	return ValuesFile{file}
}

func (f ValuesFile) Inputs() (*template.OrderedInputs, error) {
	data, err := f.file.Bytes()
	if err != nil {
		return nil, fmt.Errorf("Reading values %s: %s", f.file.Description(), err)
	}

	switch f.file.Type() {
	case files.TypeJSON:
		var vals map[string]interface{}
		if err := json.Unmarshal(data, &vals); err != nil {
			return nil, fmt.Errorf("Unmarshaling JSON values %s: %s", f.file.Description(), err)
		}
		return f.fromMap(vals)

	case files.TypeTOML:
		var vals map[string]interface{}
		if _, err := toml.Decode(string(data), &vals); err != nil {
			return nil, fmt.Errorf("Unmarshaling TOML values %s: %s", f.file.Description(), err)
		}
		return f.fromMap(vals)

	default:
		return f.fromYAML(data)
	}
}

// fromMap sorts keys since JSON and TOML objects carry no order.
func (f ValuesFile) fromMap(vals map[string]interface{}) (*template.OrderedInputs, error) {
	var keys []string
	for key := range vals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := template.NewOrderedInputs()
	for _, key := range keys {
		strVal, ok := vals[key].(string)
		if !ok {
			return nil, f.nonStringErr(key, fmt.Sprintf("%T", vals[key]))
		}
		result.Set(key, strVal)
	}
	return result, nil
}

// fromYAML keeps the order of keys as written.
func (f ValuesFile) fromYAML(data []byte) (*template.OrderedInputs, error) {
	result := template.NewOrderedInputs()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("Unmarshaling YAML values %s: %s", f.file.Description(), err)
	}

	// empty document
	if len(doc.Content) == 0 {
		return result, nil
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("Expected values %s to be a map of names to strings", f.file.Description())
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, val := mapping.Content[i], mapping.Content[i+1]
		if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!str" {
			return nil, f.nonStringErr(key.Value, val.ShortTag())
		}
		result.Set(key.Value, val.Value)
	}

	return result, nil
}

func (f ValuesFile) nonStringErr(key, actualType string) error {
	return fmt.Errorf("Expected value '%s' in values %s to be a string, but was %s (hint: quote the value)",
		key, f.file.Description(), actualType)
}
