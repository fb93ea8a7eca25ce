package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uiregistry/internal/colors"
	regerrors "github.com/alexisbeaulieu97/uiregistry/pkg/errors"
)

func TestDefaultDataIsComplete(t *testing.T) {
	t.Parallel()

	data, err := DefaultData()
	require.NoError(t, err)

	require.Equal(t, []Style{{Name: "default", Label: "Default"}, {Name: "new-york", Label: "New York"}}, data.Styles)

	for _, name := range colors.BasePalettes {
		value, ok := data.Colors.Get(name)
		require.True(t, ok, name)
		require.Len(t, value.Scales, 11, name)
	}

	white, ok := data.Colors.Get("white")
	require.True(t, ok)
	require.NotNil(t, white.Single)
	require.Equal(t, "hsl(0,0%,100%)", white.Single.HSL)

	require.Equal(t, []string{"inherit", "current", "transparent", "black", "white"}, data.Colors.Keys()[:5])
	require.Equal(t, []string{"light", "dark"}, data.Mapping.Keys())

	light, _ := data.Mapping.Get("light")
	foreground, _ := light.Get("foreground")
	require.Equal(t, "{{base}}-950", foreground)

	require.NotEmpty(t, data.Themes)
	require.Equal(t, "zinc", data.Themes[0].Name)
	require.NotEmpty(t, data.Themes[0].CSSVars.Light["background"])
}

func TestLoadDataOverrides(t *testing.T) {
	t.Parallel()

	styles := writeFile(t, "styles.yaml", "- name: compact\n  label: Compact\n")
	themes := writeFile(t, "themes.yaml", `- name: mono
  label: Mono
  cssVars:
    light:
      background: 0 0% 100%
    dark:
      background: 0 0% 0%
`)

	data, err := LoadData(DataFiles{Styles: styles, Themes: themes})
	require.NoError(t, err)
	require.Equal(t, []Style{{Name: "compact", Label: "Compact"}}, data.Styles)
	require.Len(t, data.Themes, 1)
	require.Equal(t, "0 0% 0%", data.Themes[0].CSSVars.Dark["background"])

	// untouched documents still come from the embedded defaults
	require.Equal(t, 2, data.Mapping.Len())
}

func TestLoadDataReportsBrokenOverride(t *testing.T) {
	t.Parallel()

	mapping := writeFile(t, "mapping.yaml", "light:\n  background: [unclosed\n")

	_, err := LoadData(DataFiles{Mapping: mapping})
	var parseErr *regerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, mapping, parseErr.Path)
}
