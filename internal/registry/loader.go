package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/uiregistry/internal/config"
	"github.com/alexisbeaulieu97/uiregistry/internal/source"
	regerrors "github.com/alexisbeaulieu97/uiregistry/pkg/errors"
)

// ErrComponentNotFound is returned when no index entry matches a lookup.
var ErrComponentNotFound = errors.New("component not found")

// Component is a resolved composite item with its sources loaded.
type Component struct {
	Style                string
	Name                 string
	Type                 config.ItemType
	RegistryDependencies []string
	Import               string
	Source               File
	Files                []File
}

// Loader resolves a deferred component reference on demand.
type Loader interface {
	Load(style, name string) (*Component, error)
}

// TreeLoader loads index entries from a source tree the first time they are
// requested and caches the result. Safe for concurrent use.
type TreeLoader struct {
	index StyleIndex
	tree  source.Tree

	mu     sync.RWMutex
	loaded map[string]*Component
}

// NewTreeLoader returns a Loader over index backed by tree.
func NewTreeLoader(index StyleIndex, tree source.Tree) *TreeLoader {
	return &TreeLoader{
		index:  index,
		tree:   tree,
		loaded: make(map[string]*Component),
	}
}

func (l *TreeLoader) Load(style, name string) (*Component, error) {
	key := style + "/" + name

	l.mu.RLock()
	component, ok := l.loaded[key]
	l.mu.RUnlock()
	if ok {
		return component, nil
	}

	entry, ok := l.index.Lookup(style, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrComponentNotFound, style, name)
	}

	primary, err := readFiles(l.tree, style, name, []string{entry.Source})
	if err != nil {
		return nil, err
	}
	files, err := readFiles(l.tree, style, name, entry.SourceFiles)
	if err != nil {
		return nil, err
	}

	component = &Component{
		Style:                style,
		Name:                 entry.Name,
		Type:                 entry.Type,
		RegistryDependencies: entry.RegistryDependencies,
		Import:               entry.Component,
		Source:               primary[0],
		Files:                files,
	}

	l.mu.Lock()
	if existing, ok := l.loaded[key]; ok {
		component = existing
	} else {
		l.loaded[key] = component
	}
	l.mu.Unlock()

	return component, nil
}

var _ Loader = (*TreeLoader)(nil)

// IsMissingSource reports whether err came from an unreadable component file.
func IsMissingSource(err error) bool {
	var missing *regerrors.MissingSourceError
	return errors.As(err, &missing)
}
