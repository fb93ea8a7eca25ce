package config

import "strings"

// ItemType classifies a registry item. UI items are packaged with their
// sources; every other type is published through the lazy style index.
type ItemType string

const (
	TypeUI        ItemType = "components:ui"
	TypeComponent ItemType = "components:component"
	TypeExample   ItemType = "components:example"
)

// IsUI reports whether items of this type are packaged as source payloads.
func (t ItemType) IsUI() bool {
	return t == TypeUI
}

// Subcategory returns the segment after the first colon, e.g. "example".
func (t ItemType) Subcategory() string {
	_, sub, found := strings.Cut(string(t), ":")
	if !found {
		return string(t)
	}
	return sub
}

// Registry is the declarative list of components compiled by a build.
type Registry struct {
	Items []Item `yaml:"items" toml:"items" validate:"dive"`
}

// Item is one registry entry. Field order matches the published JSON.
type Item struct {
	Name                 string   `json:"name" yaml:"name" toml:"name" validate:"required,item_name"`
	Dependencies         []string `json:"dependencies,omitzero" yaml:"dependencies,omitempty" toml:"dependencies" validate:"omitempty,dive,required"`
	DevDependencies      []string `json:"devDependencies,omitzero" yaml:"devDependencies,omitempty" toml:"devDependencies" validate:"omitempty,dive,required"`
	RegistryDependencies []string `json:"registryDependencies,omitzero" yaml:"registryDependencies,omitempty" toml:"registryDependencies" validate:"omitempty,dive,item_name"`
	Files                []string `json:"files" yaml:"files" toml:"files" validate:"required,min=1,dive,rel_path"`
	Type                 ItemType `json:"type" yaml:"type" toml:"type" validate:"required,oneof=components:ui components:component components:example"`
}

// Style is a visual variant of the whole component set.
type Style struct {
	Name  string `json:"name" yaml:"name" validate:"required,item_name"`
	Label string `json:"label" yaml:"label" validate:"required"`
}

// UIItems returns the packaged items in declaration order.
func (r *Registry) UIItems() []Item {
	var items []Item
	for _, item := range r.Items {
		if item.Type.IsUI() {
			items = append(items, item)
		}
	}
	return items
}

// CompositeItems returns the items published through the style index.
func (r *Registry) CompositeItems() []Item {
	var items []Item
	for _, item := range r.Items {
		if !item.Type.IsUI() {
			items = append(items, item)
		}
	}
	return items
}
