package config

import (
	"embed"
	"os"

	"github.com/alexisbeaulieu97/uiregistry/internal/colors"
	regerrors "github.com/alexisbeaulieu97/uiregistry/pkg/errors"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Data is everything besides the registry that a build compiles against.
type Data struct {
	Styles  []Style
	Colors  colors.Palettes
	Mapping colors.Mapping
	Themes  []colors.Theme
}

// DataFiles names optional override documents. Empty paths fall back to the
// embedded defaults.
type DataFiles struct {
	Styles  string
	Colors  string
	Mapping string
	Themes  string
}

// LoadData decodes and validates the styles, colors, mapping and themes
// documents.
func LoadData(files DataFiles) (*Data, error) {
	var data Data

	if err := loadDocument(files.Styles, "builtin/styles.yaml", &data.Styles); err != nil {
		return nil, err
	}
	if err := loadDocument(files.Colors, "builtin/colors.yaml", &data.Colors); err != nil {
		return nil, err
	}
	if err := loadDocument(files.Mapping, "builtin/mapping.yaml", &data.Mapping); err != nil {
		return nil, err
	}
	if err := loadDocument(files.Themes, "builtin/themes.yaml", &data.Themes); err != nil {
		return nil, err
	}

	if err := ValidateData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// DefaultData returns the embedded defaults.
func DefaultData() (*Data, error) {
	return LoadData(DataFiles{})
}

func loadDocument(override, builtin string, out any) error {
	path := override
	var (
		raw []byte
		err error
	)
	if override != "" {
		raw, err = os.ReadFile(override)
	} else {
		path = builtin
		raw, err = builtinFS.ReadFile(builtin)
	}
	if err != nil {
		return regerrors.NewParseError(path, 0, err)
	}
	return decodeYAML(path, raw, out)
}
