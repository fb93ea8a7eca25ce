package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	regerrors "github.com/alexisbeaulieu97/uiregistry/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseRegistry loads a registry document from disk, validates it, and returns
// the resulting model. Files ending in .toml are decoded as TOML, anything
// else as YAML.
func ParseRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, regerrors.NewParseError(path, 0, err)
	}

	reg, err := DecodeRegistry(path, data)
	if err != nil {
		return nil, err
	}

	if err := ValidateRegistry(reg); err != nil {
		return nil, err
	}

	return reg, nil
}

// DecodeRegistry decodes a registry document without validating it. path is
// used for format detection and error reporting only.
func DecodeRegistry(path string, data []byte) (*Registry, error) {
	var reg Registry

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&reg); err != nil {
			return nil, regerrors.NewParseError(path, tomlLine(err), err)
		}
		return &reg, nil
	}

	if err := decodeYAML(path, data, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func decodeYAML(path string, data []byte, out any) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return regerrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return extractLine(err)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
