package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	settings, err := LoadSettings(NewViper(), "")
	require.NoError(t, err)
	require.Equal(t, DefaultSettings(), settings)
}

func TestLoadSettingsFromFileAndEnv(t *testing.T) {
	path := writeFile(t, "uiregistry.yaml", `output_dir: public/r
import_root: ./lib/registry
ignore:
  - super-form
  - data-table
styles_file: data/styles.yaml
`)
	t.Setenv("UIREGISTRY_COMPONENT_EXT", ".tsx")
	t.Setenv("UIREGISTRY_NO_COLOR", "true")

	settings, err := LoadSettings(NewViper(), path)
	require.NoError(t, err)
	require.Equal(t, "public/r", settings.OutputDir)
	require.Equal(t, "./lib/registry", settings.ImportRoot)
	require.Equal(t, []string{"super-form", "data-table"}, settings.Ignore)
	require.Equal(t, ".tsx", settings.ComponentExt)
	require.True(t, settings.NoColor)
	require.Equal(t, "registry.yaml", settings.Registry)
	require.Equal(t, DataFiles{Styles: "data/styles.yaml"}, settings.DataFiles())
}

func TestLoadSettingsExplicitMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadSettings(NewViper(), "/does/not/exist/uiregistry.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "read settings")
}
