package registry

import (
	"path"

	"github.com/alexisbeaulieu97/uiregistry/internal/config"
	"github.com/alexisbeaulieu97/uiregistry/internal/source"
	regerrors "github.com/alexisbeaulieu97/uiregistry/pkg/errors"
)

// File is one packaged source file.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Payload is the installable form of a UI item for one style. Field order
// matches the registry item with files replaced by their contents.
type Payload struct {
	Name                 string          `json:"name"`
	Dependencies         []string        `json:"dependencies,omitzero"`
	DevDependencies      []string        `json:"devDependencies,omitzero"`
	RegistryDependencies []string        `json:"registryDependencies,omitzero"`
	Files                []File          `json:"files"`
	Type                 config.ItemType `json:"type"`
}

// Packager reads UI item sources from a Tree.
type Packager struct {
	tree source.Tree
}

// NewPackager returns a Packager backed by tree.
func NewPackager(tree source.Tree) *Packager {
	return &Packager{tree: tree}
}

// Package reads every declared file of item under style, in declaration
// order. A missing or unreadable file fails with MissingSourceError.
func (p *Packager) Package(style string, item config.Item) (Payload, error) {
	files, err := readFiles(p.tree, style, item.Name, item.Files)
	if err != nil {
		return Payload{}, err
	}

	return Payload{
		Name:                 item.Name,
		Dependencies:         item.Dependencies,
		DevDependencies:      item.DevDependencies,
		RegistryDependencies: item.RegistryDependencies,
		Files:                files,
		Type:                 item.Type,
	}, nil
}

func readFiles(tree source.Tree, style, item string, rels []string) ([]File, error) {
	files := make([]File, 0, len(rels))
	for _, rel := range rels {
		content, err := tree.ReadFile(style, rel)
		if err != nil {
			return nil, regerrors.NewMissingSourceError(style, item, rel, err)
		}
		files = append(files, File{Name: path.Base(rel), Content: string(content)})
	}
	return files, nil
}
