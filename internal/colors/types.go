// Package colors resolves the palette-agnostic color mapping into concrete
// values for each base palette.
package colors

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Placeholder marks the current base palette inside a mapping reference.
const Placeholder = "{{base}}"

// BasePalettes lists the palettes every build resolves, in output order.
var BasePalettes = []string{"slate", "gray", "zinc", "neutral", "stone", "lime"}

// Scale is a single shade of a palette.
type Scale struct {
	Scale int    `yaml:"scale,omitempty" json:"scale,omitempty"`
	Hex   string `yaml:"hex" json:"hex,omitempty"`
	RGB   string `yaml:"rgb" json:"rgb" validate:"required"`
	HSL   string `yaml:"hsl" json:"hsl" validate:"required"`
}

// Value is one entry of the colors document: a literal, a single shade, or a
// list of shades.
type Value struct {
	Literal string
	Single  *Scale
	Scales  []Scale
}

// UnmarshalYAML picks the variant from the node kind.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	*v = Value{}
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&v.Literal)
	case yaml.MappingNode:
		var scale Scale
		if err := node.Decode(&scale); err != nil {
			return err
		}
		v.Single = &scale
		return nil
	case yaml.SequenceNode:
		return node.Decode(&v.Scales)
	default:
		return fmt.Errorf("line %d: color must be a string, a shade or a list of shades", node.Line)
	}
}

// Palettes is the ordered colors document.
type Palettes = Ordered[Value]

// Mapping is mode -> role -> reference. String references may contain the
// Placeholder; any other value is carried through untouched.
type Mapping = Ordered[Ordered[any]]

// ThemeVars holds concrete channel values per mode.
type ThemeVars struct {
	Light map[string]string `yaml:"light" json:"light"`
	Dark  map[string]string `yaml:"dark" json:"dark"`
}

// Theme is a named, fully resolved color set rendered into scoped CSS blocks.
type Theme struct {
	Name        string            `yaml:"name" json:"name" validate:"required,item_name"`
	Label       string            `yaml:"label" json:"label"`
	ActiveColor map[string]string `yaml:"activeColor,omitempty" json:"activeColor,omitempty"`
	CSSVars     ThemeVars         `yaml:"cssVars" json:"cssVars"`
}
