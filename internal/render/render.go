// Package render turns resolved colors and the style index into text artifacts.
// All functions are pure: templates are parsed once and never mutated, so
// palettes and themes can be rendered from any goroutine.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/uiregistry/internal/colors"
	"github.com/alexisbeaulieu97/uiregistry/internal/registry"
)

// Radius is the border radius constant written next to the light variables.
const Radius = "0.5rem"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("render").
		Option("missingkey=zero").
		Funcs(template.FuncMap{
			"json":   encodeJSON,
			"list":   nonNilList,
			"quoted": quotedList,
		}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// Vars holds the role -> channel values of both modes. A role missing from a
// map renders as an empty value.
type Vars struct {
	Light map[string]string
	Dark  map[string]string
}

// BaseStyles returns the static tailwind directives shared by every palette.
func BaseStyles() string {
	out, err := execute("base.css.tmpl", nil)
	if err != nil {
		panic(err)
	}
	return out
}

// VariablesStyles renders the :root / .dark variable stylesheet.
func VariablesStyles(vars Vars) (string, error) {
	out, err := execute("variables.css.tmpl", struct {
		Vars
		Radius string
	}{vars, Radius})
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(out, "\n"), nil
}

// ThemeBlock renders the .theme-<name> and .dark .theme-<name> blocks.
func ThemeBlock(name string, vars Vars) (string, error) {
	out, err := execute("theme.css.tmpl", struct {
		Vars
		Name   string
		Radius string
	}{vars, name, Radius})
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(out, "\n"), nil
}

// ThemesCSS renders every theme in order, one newline between blocks.
func ThemesCSS(themes []colors.Theme) (string, error) {
	blocks := make([]string, 0, len(themes))
	for _, theme := range themes {
		block, err := ThemeBlock(theme.Name, Vars{Light: theme.CSSVars.Light, Dark: theme.CSSVars.Dark})
		if err != nil {
			return "", fmt.Errorf("theme %s: %w", theme.Name, err)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n"), nil
}

// IndexModule renders the generated module mapping every style's composite
// items to a deferred import.
func IndexModule(index registry.StyleIndex) (string, error) {
	return execute("index.js.tmpl", index)
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func nonNilList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func quotedList(values []string) (string, error) {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		encoded, err := encodeJSON(v)
		if err != nil {
			return "", err
		}
		quoted = append(quoted, encoded)
	}
	return strings.Join(quoted, ","), nil
}
