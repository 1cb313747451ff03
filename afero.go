// SPDX-License-Identifier: MIT

package globstari

import (
	"fmt"
	"io"
	"path"

	"github.com/spf13/afero"
)

// AferoFileTree is a [FileTree] rooted at any afero.Fs, including an
// in-memory afero.NewMemMapFs() tree — useful for tests that want a
// traversal fixture without touching disk.
//
// Unlike [DiskFileTree], Canonicalize here never resolves symlinks: most
// afero.Fs backends (afero.NewMemMapFs in particular) have no concept of
// one. It only cleans the path into the same absolute, slash-separated form
// DiskFileTree produces for paths that already exist.
type AferoFileTree struct {
	fs          afero.Fs
	ignoreNames []string
}

// NewAferoFileTree returns an AferoFileTree over fs that looks for
// ".eignore" in every directory it visits.
func NewAferoFileTree(fs afero.Fs) *AferoFileTree {
	return &AferoFileTree{
		fs:          fs,
		ignoreNames: []string{defaultIgnoreFileName},
	}
}

// RootEntry implements [FileTree].
func (t *AferoFileTree) RootEntry(p string) (Entry, error) {
	canon, err := t.Canonicalize(p)
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

// ReadDir implements [FileTree].
func (t *AferoFileTree) ReadDir(dir Entry) ([]Entry, error) {
	infos, err := afero.ReadDir(t.fs, dir.CanonicalPath)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir.CanonicalPath, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		kind := File
		if info.IsDir() {
			kind = Directory
		}
		entries = append(entries, Entry{
			Kind:          kind,
			CanonicalPath: joinPath(dir.CanonicalPath, info.Name()),
		})
	}

	return entries, nil
}

// IgnoresFor implements [FileTree], returning the single configured ignore
// file name for every directory.
func (t *AferoFileTree) IgnoresFor(Entry) []string {
	return t.ignoreNames
}

// ReadFile implements [FileTree].
func (t *AferoFileTree) ReadFile(p string) (io.ReadCloser, error) {
	return t.fs.Open(p)
}

// Canonicalize implements [FileTree] by cleaning p into an absolute,
// slash-separated path, without touching the backing filesystem.
func (t *AferoFileTree) Canonicalize(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidInput)
	}

	clean := path.Clean(p)
	if !path.IsAbs(clean) {
		clean = path.Clean("/" + clean)
	}
	return clean, nil
}
