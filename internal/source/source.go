// Package source reads component files from a style's source tree.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Tree resolves a file relative to a style's directory. Missing files report
// an error that matches fs.ErrNotExist.
type Tree interface {
	ReadFile(style, rel string) ([]byte, error)
}

// DirTree reads from <Root>/<style>/<rel> on disk.
type DirTree struct {
	Root string
}

// NewDirTree returns a Tree rooted at dir.
func NewDirTree(dir string) DirTree {
	return DirTree{Root: dir}
}

func (d DirTree) ReadFile(style, rel string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.Root, style, filepath.FromSlash(rel)))
}

// GitTree reads the same layout from a committed revision instead of the
// working copy.
type GitTree struct {
	tree   *object.Tree
	prefix string
	rev    string
}

// OpenGitTree resolves rev in the repository containing dir. dir may be any
// directory inside the worktree.
func OpenGitTree(dir, rev string) (*GitTree, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	prefix, err := relativeTo(wt.Filesystem.Root(), dir)
	if err != nil {
		return nil, err
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", hash, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("load tree of %s: %w", hash, err)
	}

	return &GitTree{tree: tree, prefix: prefix, rev: rev}, nil
}

func (g *GitTree) ReadFile(style, rel string) ([]byte, error) {
	name := path.Join(g.prefix, style, rel)

	file, err := g.tree.File(name)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, &fs.PathError{Op: "open", Path: g.rev + ":" + name, Err: fs.ErrNotExist}
		}
		return nil, fmt.Errorf("read %s:%s: %w", g.rev, name, err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("read %s:%s: %w", g.rev, name, err)
	}
	return []byte(contents), nil
}

func relativeTo(root, dir string) (string, error) {
	absRoot, err := canonical(root)
	if err != nil {
		return "", err
	}
	absDir, err := canonical(dir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(absRoot, absDir)
	if err != nil {
		return "", fmt.Errorf("locate %s in worktree: %w", dir, err)
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

func canonical(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", p, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", p, err)
	}
	return resolved, nil
}
