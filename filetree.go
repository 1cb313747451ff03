// SPDX-License-Identifier: MIT

package globstari

import "io"

// defaultIgnoreFileName is the name of the per-directory ignore file
// consulted when a [FileTree] does not override [FileTree.IgnoresFor].
const defaultIgnoreFileName = ".eignore"

// FileTree abstracts the tree a [Traverser] walks. It is implemented by
// [DiskFileTree] (the host filesystem) and [AferoFileTree] (any afero.Fs).
type FileTree interface {
	// RootEntry returns the Entry for path, which need not yet have been
	// canonicalized by the caller.
	RootEntry(path string) (Entry, error)

	// ReadDir returns the immediate children of dir, an Entry previously
	// produced by RootEntry or ReadDir with Kind == Directory.
	ReadDir(dir Entry) ([]Entry, error)

	// IgnoresFor returns the names of the ignore files to look for inside
	// dir, most often a single name like ".eignore". A relative name is
	// resolved inside dir; an absolute one is used as given. An empty slice
	// means dir contributes no ignore file of its own.
	IgnoresFor(dir Entry) []string

	// ReadFile opens path, a file previously returned by ReadDir or one of
	// the names returned by IgnoresFor, resolved as described there.
	// The caller closes the returned reader.
	ReadFile(path string) (io.ReadCloser, error)

	// Canonicalize resolves path (symlinks, "..", and so on) to the form
	// used as Entry.CanonicalPath and as the seen-set key.
	Canonicalize(path string) (string, error)
}

// ProcessEntry is called once for every Entry a [Traverser] visits.
type ProcessEntry interface {
	Process(entry Entry) (ProcessStatus, error)
}

// ProcessEntryFunc adapts a function to [ProcessEntry].
type ProcessEntryFunc func(entry Entry) (ProcessStatus, error)

// Process calls f.
func (f ProcessEntryFunc) Process(entry Entry) (ProcessStatus, error) {
	return f(entry)
}

// IgnoreObserver is an optional interface a [ProcessEntry] may also
// implement to be notified whenever the inherited ignore chain matches an
// entry — including entries whose Entry.NeverIgnore suppressed the skip.
// Detected with a type assertion, the way [io.Closer] and similar optional
// behaviors are detected elsewhere in the standard library.
type IgnoreObserver interface {
	Ignored(entry Entry)
}
