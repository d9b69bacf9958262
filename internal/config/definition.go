// Package config loads DSL definitions from YAML or JSON files.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefinitionFile is the on-disk shape of a DSL definition.
type DefinitionFile struct {
	Name    string       `mapstructure:"name"`
	Package string       `mapstructure:"package"`
	Actions []ActionSpec `mapstructure:"actions"`
}

// ActionSpec declares one action. Keyword and transition lists may be written
// either as sequences or as comma-separated strings.
type ActionSpec struct {
	Method      string      `mapstructure:"method"`
	Type        string      `mapstructure:"type"`
	Extends     []string    `mapstructure:"extends"`
	Returns     string      `mapstructure:"returns"`
	Params      []ParamSpec `mapstructure:"params"`
	Keywords    []string    `mapstructure:"keywords"`
	Transitions []string    `mapstructure:"transitions"`

	Entry       bool `mapstructure:"entry"`
	Terminal    bool `mapstructure:"terminal"`
	Composite   bool `mapstructure:"composite"`
	UsePrevious bool `mapstructure:"use_previous"`
}

// ParamSpec declares a method parameter.
type ParamSpec struct {
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
}

// ParseDefinition decodes a definition payload. format is "json" or "yaml".
func ParseDefinition(data []byte, format string) (*DefinitionFile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("config: definition payload is empty")
	}

	var raw map[string]any
	switch format {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("config: failed to parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("config: failed to parse yaml: %w", err)
		}
	}

	var def DefinitionFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       trimmedStringToSliceHook(","),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &def,
	})
	if err != nil {
		return nil, fmt.Errorf("config: failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("config: failed to decode definition: %w", err)
	}
	return &def, nil
}

// LoadFile reads a definition from fs, choosing the format by extension.
func LoadFile(fs afero.Fs, path string) (*DefinitionFile, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	def, err := ParseDefinition(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = defaultName(path)
	}
	return def, nil
}

func defaultName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return exportedName(base) + "Dsl"
}

// trimmedStringToSliceHook splits comma separated strings into trimmed, non-empty items.
func trimmedStringToSliceHook(sep string) mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
			return data, nil
		}
		var items []string
		for _, item := range strings.Split(data.(string), sep) {
			if s := strings.TrimSpace(item); s != "" {
				items = append(items, s)
			}
		}
		return items, nil
	}
}
