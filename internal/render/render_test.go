package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uiregistry/internal/colors"
	"github.com/alexisbeaulieu97/uiregistry/internal/config"
	"github.com/alexisbeaulieu97/uiregistry/internal/registry"
)

var roles = []string{
	"background", "foreground", "muted", "muted-foreground", "popover", "popover-foreground",
	"card", "card-foreground", "border", "input", "primary", "primary-foreground",
	"secondary", "secondary-foreground", "accent", "accent-foreground",
	"destructive", "destructive-foreground", "ring",
}

func uniformVars(value string) map[string]string {
	vars := make(map[string]string, len(roles))
	for _, role := range roles {
		vars[role] = value
	}
	return vars
}

func TestBaseStyles(t *testing.T) {
	t.Parallel()

	require.Equal(t, "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n", BaseStyles())
}

func TestVariablesStyles(t *testing.T) {
	t.Parallel()

	out, err := VariablesStyles(Vars{Light: uniformVars("0 0% 100%"), Dark: uniformVars("0 0% 0%")})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n \n@layer base {\n  :root {\n    --background: 0 0% 100%;\n"))
	require.Contains(t, out, "    --ring: 0 0% 100%;\n \n    --radius: 0.5rem;\n  }\n \n  .dark {\n    --background: 0 0% 0%;\n")
	require.True(t, strings.HasSuffix(out, "    @apply bg-background text-foreground;\n  }\n}"))
	require.Equal(t, 1, strings.Count(out, "--radius"))
	require.Equal(t, 2, strings.Count(out, "--destructive-foreground:"))
	require.NotContains(t, out, "\n\n", "separator lines hold a single space")
}

func TestVariablesStylesMissingRoleRendersEmpty(t *testing.T) {
	t.Parallel()

	light := uniformVars("1 1% 1%")
	delete(light, "ring")

	out, err := VariablesStyles(Vars{Light: light})
	require.NoError(t, err)
	require.Contains(t, out, "    --ring: ;\n \n    --radius: 0.5rem;")
	require.Contains(t, out, "  .dark {\n    --background: ;\n")
}

func TestThemeBlock(t *testing.T) {
	t.Parallel()

	out, err := ThemeBlock("zinc", Vars{Light: uniformVars("240 10% 3.9%"), Dark: uniformVars("0 0% 98%")})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "\n  .theme-zinc {\n    --background: 240 10% 3.9%;\n"))
	require.Contains(t, out, "    --radius: 0.5rem;\n  }\n \n  .dark .theme-zinc {\n    --background: 0 0% 98%;\n")
	require.True(t, strings.HasSuffix(out, "    --ring: 0 0% 98%;\n  }"))
	require.Contains(t, out, "    --foreground: 0 0% 98%;\n \n    --muted: 0 0% 98%;\n")
	require.NotContains(t, out[1:], "\n\n")
}

func TestThemesCSSJoinsInDeclarationOrder(t *testing.T) {
	t.Parallel()

	themes := []colors.Theme{
		{Name: "zinc", CSSVars: colors.ThemeVars{Light: uniformVars("a"), Dark: uniformVars("b")}},
		{Name: "rose", CSSVars: colors.ThemeVars{Light: uniformVars("c"), Dark: uniformVars("d")}},
	}

	out, err := ThemesCSS(themes)
	require.NoError(t, err)

	zinc, err := ThemeBlock("zinc", Vars{Light: uniformVars("a"), Dark: uniformVars("b")})
	require.NoError(t, err)
	rose, err := ThemeBlock("rose", Vars{Light: uniformVars("c"), Dark: uniformVars("d")})
	require.NoError(t, err)

	require.Equal(t, zinc+"\n"+rose, out)
	require.Less(t, strings.Index(out, ".theme-zinc"), strings.Index(out, ".theme-rose"))

	empty, err := ThemesCSS(nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestIndexModule(t *testing.T) {
	t.Parallel()

	index := registry.BuildIndex(
		[]config.Style{{Name: "default", Label: "Default"}},
		[]config.Item{
			{Name: "button-demo", Type: config.TypeExample, RegistryDependencies: []string{"button"}, Files: []string{"example/ButtonDemo.vue"}},
			{Name: "theming", Type: config.TypeComponent, Files: []string{"component/Theming.vue", "component/Theme.ts"}},
		},
		registry.IndexOptions{ImportRoot: "../src/lib/registry", ComponentExt: ".vue"},
	)

	out, err := IndexModule(index)
	require.NoError(t, err)

	want := `
// This file is autogenerated by uiregistry build.
// Do not edit this file directly.
export const Index = {
  "default": {
    "button-demo": {
      name: "button-demo",
      type: "components:example",
      registryDependencies: ["button"],
      component: () => import("../src/lib/registry/default/example/button-demo.vue").then((m) => m.default),
      files: ["../src/lib/registry/default/example/ButtonDemo.vue"],
    },
    "theming": {
      name: "theming",
      type: "components:component",
      registryDependencies: [],
      component: () => import("../src/lib/registry/default/component/theming.vue").then((m) => m.default),
      files: ["../src/lib/registry/default/component/Theming.vue","../src/lib/registry/default/component/Theme.ts"],
    },
  },
}
`
	require.Equal(t, want, out)
}

func TestIndexModuleWithoutStyles(t *testing.T) {
	t.Parallel()

	out, err := IndexModule(registry.StyleIndex{})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "export const Index = {\n}\n"))
}
