// SPDX-License-Identifier: MIT

package globstari

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// DiskFileTree is a [FileTree] rooted at the host filesystem.
//
// Adapted from DiskFileTree in globstari-traverse.cpp; backed by
// afero.NewOsFs() rather than raw os calls so the same traversal logic
// exercises [AferoFileTree] and [DiskFileTree] identically in tests. afero's
// OsFs does not resolve symlinks on its own, so Canonicalize calls
// filepath.EvalSymlinks directly.
type DiskFileTree struct {
	fs          afero.Fs
	ignoreNames []string
}

// NewDiskFileTree returns a DiskFileTree that looks for ".eignore" in every
// directory it visits.
func NewDiskFileTree() *DiskFileTree {
	return &DiskFileTree{
		fs:          afero.NewOsFs(),
		ignoreNames: []string{defaultIgnoreFileName},
	}
}

// RootEntry implements [FileTree].
func (t *DiskFileTree) RootEntry(path string) (Entry, error) {
	canon, err := t.Canonicalize(path)
	if err != nil {
		return Entry{}, err
	}

	info, err := t.fs.Stat(canon)
	if err != nil {
		return Entry{}, fmt.Errorf("stat %s: %w", canon, err)
	}

	kind := File
	if info.IsDir() {
		kind = Directory
	}
	return Entry{Kind: kind, CanonicalPath: canon}, nil
}

// ReadDir implements [FileTree]. Entries that are neither a directory nor a
// regular file once symlinks are resolved (sockets, devices, broken links,
// and the rest) are silently excluded.
func (t *DiskFileTree) ReadDir(dir Entry) ([]Entry, error) {
	infos, err := afero.ReadDir(t.fs, dir.CanonicalPath)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir.CanonicalPath, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		childPath := joinPath(dir.CanonicalPath, info.Name())

		mode := info.Mode()
		if mode&os.ModeSymlink != 0 {
			resolved, err := t.fs.Stat(childPath)
			if err != nil {
				continue
			}
			mode = resolved.Mode()
		}

		var kind EntryKind
		switch {
		case mode.IsDir():
			kind = Directory
		case mode.IsRegular():
			kind = File
		default:
			continue
		}

		entries = append(entries, Entry{Kind: kind, CanonicalPath: childPath})
	}

	return entries, nil
}

// IgnoresFor implements [FileTree], returning the single configured ignore
// file name for every directory.
func (t *DiskFileTree) IgnoresFor(Entry) []string {
	return t.ignoreNames
}

// ReadFile implements [FileTree].
func (t *DiskFileTree) ReadFile(path string) (io.ReadCloser, error) {
	return t.fs.Open(path)
}

// Canonicalize implements [FileTree]: it resolves path to an absolute,
// symlink-free, slash-separated form. A path that does not exist on disk
// returns an empty string and no error; any other failure propagates.
func (t *DiskFileTree) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("resolve symlinks %s: %w", abs, err)
	}

	return filepath.ToSlash(resolved), nil
}
