package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. UIREGISTRY_OUTPUT_DIR.
const EnvPrefix = "UIREGISTRY"

// Settings controls where a build reads from and writes to.
type Settings struct {
	Registry     string   `mapstructure:"registry"`
	SourceDir    string   `mapstructure:"source_dir"`
	SourceRef    string   `mapstructure:"source_ref"`
	OutputDir    string   `mapstructure:"output_dir"`
	IndexModule  string   `mapstructure:"index_module"`
	ImportRoot   string   `mapstructure:"import_root"`
	ComponentExt string   `mapstructure:"component_ext"`
	Ignore       []string `mapstructure:"ignore"`
	StylesFile   string   `mapstructure:"styles_file"`
	ColorsFile   string   `mapstructure:"colors_file"`
	MappingFile  string   `mapstructure:"mapping_file"`
	ThemesFile   string   `mapstructure:"themes_file"`
	LogLevel     string   `mapstructure:"log_level"`
	NoColor      bool     `mapstructure:"no_color"`
}

// DefaultSettings mirrors the layout of a documentation site checkout.
func DefaultSettings() Settings {
	return Settings{
		Registry:     "registry.yaml",
		SourceDir:    "src/lib/registry",
		OutputDir:    "static/registry",
		IndexModule:  "__registry__/index.js",
		ImportRoot:   "../src/lib/registry",
		ComponentExt: ".vue",
		Ignore:       []string{"super-form"},
		LogLevel:     "info",
	}
}

// DataFiles returns the override documents named by the settings.
func (s Settings) DataFiles() DataFiles {
	return DataFiles{
		Styles:  s.StylesFile,
		Colors:  s.ColorsFile,
		Mapping: s.MappingFile,
		Themes:  s.ThemesFile,
	}
}

// NewViper returns a viper instance seeded with defaults and environment
// bindings. Callers bind flags before calling LoadSettings.
func NewViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("registry", defaults.Registry)
	v.SetDefault("source_dir", defaults.SourceDir)
	v.SetDefault("source_ref", defaults.SourceRef)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("index_module", defaults.IndexModule)
	v.SetDefault("import_root", defaults.ImportRoot)
	v.SetDefault("component_ext", defaults.ComponentExt)
	v.SetDefault("ignore", defaults.Ignore)
	v.SetDefault("styles_file", "")
	v.SetDefault("colors_file", "")
	v.SetDefault("mapping_file", "")
	v.SetDefault("themes_file", "")
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("no_color", defaults.NoColor)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// LoadSettings reads the optional settings file and unmarshals the merged
// configuration. An empty cfgFile searches the working directory for
// uiregistry.yaml; a missing file is not an error in that case.
func LoadSettings(v *viper.Viper, cfgFile string) (Settings, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("uiregistry")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}
