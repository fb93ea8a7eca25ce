// Package artifact writes build outputs to a destination tree.
package artifact

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/uiregistry/pkg/diff"
	regerrors "github.com/alexisbeaulieu97/uiregistry/pkg/errors"
)

// Sink receives artifacts. Paths are slash-separated and relative to the
// sink's root unless absolute.
type Sink interface {
	WriteFile(path string, data []byte) error
	RemoveAll(path string) error
}

// DirSink writes artifacts to disk below Root.
type DirSink struct {
	Root string
}

// NewDirSink returns a Sink rooted at root. An empty root means the working
// directory.
func NewDirSink(root string) *DirSink {
	return &DirSink{Root: root}
}

// WriteFile replaces path atomically, creating parent directories as needed.
func (s *DirSink) WriteFile(path string, data []byte) error {
	full := resolve(s.Root, path)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return regerrors.NewArtifactError("mkdir", path, err)
	}

	tmpPath := full + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return regerrors.NewArtifactError("write", path, err)
	}

	if err := os.Rename(tmpPath, full); err != nil {
		_ = os.Remove(tmpPath)
		return regerrors.NewArtifactError("rename", path, err)
	}

	return nil
}

// RemoveAll deletes path and anything below it. A missing path is not an error.
func (s *DirSink) RemoveAll(path string) error {
	if err := os.RemoveAll(resolve(s.Root, path)); err != nil {
		return regerrors.NewArtifactError("remove", path, err)
	}
	return nil
}

// DriftKind classifies a difference between the built and the existing tree.
type DriftKind string

const (
	DriftMissing DriftKind = "missing"
	DriftChanged DriftKind = "changed"
	DriftStale   DriftKind = "stale"
)

// Drift is one artifact whose on-disk state differs from the build.
type Drift struct {
	Path string
	Kind DriftKind
	Diff string
}

// CheckSink compares artifacts with the files already below Root and never
// modifies the disk.
type CheckSink struct {
	Root string

	drift   []Drift
	written map[string]bool
	cleared []string
}

// NewCheckSink returns a Sink that records drift against root.
func NewCheckSink(root string) *CheckSink {
	return &CheckSink{Root: root, written: make(map[string]bool)}
}

func (s *CheckSink) WriteFile(path string, data []byte) error {
	full := resolve(s.Root, path)
	s.written[filepath.Clean(full)] = true

	current, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.drift = append(s.drift, Drift{Path: path, Kind: DriftMissing})
			return nil
		}
		return regerrors.NewArtifactError("read", path, err)
	}

	if !bytes.Equal(current, data) {
		s.drift = append(s.drift, Drift{
			Path: path,
			Kind: DriftChanged,
			Diff: diff.GenerateUnifiedDiff(current, data, "a/"+path, "b/"+path),
		})
	}
	return nil
}

// RemoveAll remembers path so files below it that the build does not
// recreate are reported as stale.
func (s *CheckSink) RemoveAll(path string) error {
	s.cleared = append(s.cleared, path)
	return nil
}

// Drift returns every difference found, in write order followed by stale
// files in lexical order.
func (s *CheckSink) Drift() ([]Drift, error) {
	out := append([]Drift(nil), s.drift...)

	var stale []string
	for _, cleared := range s.cleared {
		root := resolve(s.Root, cleared)
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			if d.IsDir() || s.written[filepath.Clean(p)] {
				return nil
			}
			rel, relErr := filepath.Rel(root, p)
			if relErr != nil {
				return relErr
			}
			name := cleared
			if rel != "." {
				name = strings.TrimSuffix(cleared, "/") + "/" + filepath.ToSlash(rel)
			}
			stale = append(stale, name)
			return nil
		})
		if err != nil {
			return nil, regerrors.NewArtifactError("scan", cleared, err)
		}
	}

	slices.Sort(stale)
	for _, name := range slices.Compact(stale) {
		out = append(out, Drift{Path: name, Kind: DriftStale})
	}
	return out, nil
}

func resolve(root, path string) string {
	native := filepath.FromSlash(path)
	if filepath.IsAbs(native) || root == "" {
		return native
	}
	return filepath.Join(root, native)
}
