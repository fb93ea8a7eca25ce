package colors

import (
	"fmt"
	"strconv"
	"strings"
)

// Warning records a mapping reference that produced no concrete value. These
// never stop a build on their own.
type Warning struct {
	Palette   string
	Mode      string
	Role      string
	Reference string
	Reason    string
}

func (w Warning) String() string {
	if w.Mode == "" {
		return fmt.Sprintf("%s: %q: %s", w.Palette, w.Reference, w.Reason)
	}
	return fmt.Sprintf("%s: %s.%s: %q: %s", w.Palette, w.Mode, w.Role, w.Reference, w.Reason)
}

// Resolved is the color artifact for one base palette. The two template fields
// are filled in by the renderer.
type Resolved struct {
	Name                 string                   `json:"-"`
	InlineColors         Ordered[Ordered[string]] `json:"inlineColors"`
	CSSVars              Ordered[Ordered[string]] `json:"cssVars"`
	InlineColorsTemplate string                   `json:"inlineColorsTemplate"`
	CSSVarsTemplate      string                   `json:"cssVarsTemplate"`
}

// Vars returns the concrete channel values for mode.
func (r Resolved) Vars(mode string) map[string]string {
	vars, _ := r.CSSVars.Get(mode)
	return vars.Map()
}

// Resolve expands mapping once per palette, in the order given.
func Resolve(index Index, mapping Mapping, palettes []string) ([]Resolved, []Warning) {
	resolved := make([]Resolved, 0, len(palettes))
	var warnings []Warning

	for _, palette := range palettes {
		r, w := resolvePalette(index, mapping, palette)
		resolved = append(resolved, r)
		warnings = append(warnings, w...)
	}

	return resolved, warnings
}

func resolvePalette(index Index, mapping Mapping, palette string) (Resolved, []Warning) {
	out := Resolved{Name: palette}
	var warnings []Warning

	for _, mode := range mapping.Keys() {
		roles, _ := mapping.Get(mode)

		var (
			inline Ordered[string]
			vars   Ordered[string]
		)
		for _, role := range roles.Keys() {
			raw, _ := roles.Get(role)

			// Only string references are color values.
			reference, ok := raw.(string)
			if !ok {
				continue
			}

			reference = strings.ReplaceAll(reference, Placeholder+"-", palette+"-")
			inline.Set(role, reference)

			channel, reason := lookup(index, reference)
			if reason != "" {
				warnings = append(warnings, Warning{
					Palette:   palette,
					Mode:      mode,
					Role:      role,
					Reference: reference,
					Reason:    reason,
				})
				continue
			}
			vars.Set(role, channel)
		}

		out.InlineColors.Set(mode, inline)
		out.CSSVars.Set(mode, vars)
	}

	return out, warnings
}

// lookup finds the hsl channel for "<color>-<scale>" or a bare "<color>". A
// non-empty reason explains why nothing was found.
func lookup(index Index, reference string) (string, string) {
	parts := strings.Split(reference, "-")
	name := parts[0]

	entry, ok := index.Get(name)
	if !ok {
		return "", fmt.Sprintf("unknown color %q", name)
	}

	if len(parts) > 1 && parts[1] != "" {
		scale, err := strconv.Atoi(parts[1])
		if err != nil {
			return "", fmt.Sprintf("malformed scale %q", parts[1])
		}
		shade, found := entry.Find(scale)
		if !found {
			return "", fmt.Sprintf("color %q has no scale %d", name, scale)
		}
		return shade.HSLChannel, ""
	}

	if entry.Single == nil {
		return "", fmt.Sprintf("color %q is not a single shade", name)
	}
	return entry.Single.HSLChannel, ""
}
