// Package registry assembles the per-style component index and packages UI
// component sources.
package registry

import "github.com/alexisbeaulieu97/uiregistry/internal/config"

// IndexOptions controls how deferred component references are spelled.
type IndexOptions struct {
	// ImportRoot prefixes every generated import path, e.g. "../src/lib/registry".
	ImportRoot string
	// ComponentExt is appended to the component name, e.g. ".vue".
	ComponentExt string
}

// Entry describes one composite item of one style. Component and Files are
// import paths for the generated module; Source and SourceFiles are the same
// files relative to the style's source tree.
type Entry struct {
	Name                 string
	Type                 config.ItemType
	RegistryDependencies []string
	Component            string
	Files                []string
	Source               string
	SourceFiles          []string
}

// StyleEntries groups the entries of one style in registry order.
type StyleEntries struct {
	Style   string
	Entries []Entry
}

// StyleIndex is the lazy-loadable index of every non-UI item, per style.
type StyleIndex struct {
	Styles []StyleEntries
}

// BuildIndex produces one entry per (style, composite item). Styles form the
// outer loop. Nothing is read from disk.
func BuildIndex(styles []config.Style, items []config.Item, opts IndexOptions) StyleIndex {
	index := StyleIndex{Styles: make([]StyleEntries, 0, len(styles))}

	for _, style := range styles {
		group := StyleEntries{Style: style.Name}
		for _, item := range items {
			if item.Type.IsUI() {
				continue
			}
			group.Entries = append(group.Entries, newEntry(style.Name, item, opts))
		}
		index.Styles = append(index.Styles, group)
	}

	return index
}

func newEntry(style string, item config.Item, opts IndexOptions) Entry {
	base := opts.ImportRoot + "/" + style + "/"
	source := item.Type.Subcategory() + "/" + item.Name + opts.ComponentExt

	files := make([]string, 0, len(item.Files))
	for _, file := range item.Files {
		files = append(files, base+file)
	}

	return Entry{
		Name:                 item.Name,
		Type:                 item.Type,
		RegistryDependencies: item.RegistryDependencies,
		Component:            base + source,
		Files:                files,
		Source:               source,
		SourceFiles:          append([]string(nil), item.Files...),
	}
}

// Lookup finds the entry for name within style.
func (s StyleIndex) Lookup(style, name string) (Entry, bool) {
	for _, group := range s.Styles {
		if group.Style != style {
			continue
		}
		for _, entry := range group.Entries {
			if entry.Name == name {
				return entry, true
			}
		}
		return Entry{}, false
	}
	return Entry{}, false
}

// Len reports the total number of entries across all styles.
func (s StyleIndex) Len() int {
	n := 0
	for _, group := range s.Styles {
		n += len(group.Entries)
	}
	return n
}
