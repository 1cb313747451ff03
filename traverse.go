// SPDX-License-Identifier: MIT

package globstari

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// TraverseOptions configures a [Traverser].
type TraverseOptions struct {
	// MaxDepth caps how deep the traversal descends below the root, which
	// is depth 0. -1 disables the cap entirely. 0 processes only the root
	// and never descends into its children.
	MaxDepth int
	// Logger receives Debug-level traversal tracing. Nil disables logging.
	Logger *zap.Logger
}

func (o TraverseOptions) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// workItem is one entry queued for a breadth-first visit, paired with the
// ignore [Matcher] inherited from its parent directory (the chain does not
// yet include this entry's own ignore file, even if it is a directory).
type workItem struct {
	entry         Entry
	parentIgnores *Matcher
}

// Traverser walks a [FileTree] breadth-first from one root, composing each
// directory's ignore file on top of the chain inherited from its ancestors,
// and calling a [ProcessEntry] for entries the needle selects.
//
// Adapted from the Traverser class in globstari-traverse.cpp.
type Traverser struct {
	tree    FileTree
	process ProcessEntry
	needle  *Matcher
	opts    TraverseOptions
	logger  *zap.Logger

	ran bool
}

// NewTraverser returns a Traverser ready to [Traverser.Run] once. needle
// must already be finalized.
func NewTraverser(tree FileTree, process ProcessEntry, needle *Matcher, opts TraverseOptions) *Traverser {
	return &Traverser{
		tree:    tree,
		process: process,
		needle:  needle,
		opts:    opts,
		logger:  opts.logger(),
	}
}

// Run walks the tree rooted at rootPath. A Traverser runs at most once;
// calling Run again returns [ErrInvalidState].
func (t *Traverser) Run(rootPath string) error {
	if t.ran {
		return fmt.Errorf("%w: Traverser already run", ErrInvalidState)
	}
	t.ran = true

	if !t.needle.Ready() {
		return fmt.Errorf("%w: needle Matcher not finalized", ErrInvalidState)
	}
	if len(t.needle.layers) == 0 {
		return fmt.Errorf("%w: needle Matcher has no globs", ErrInvalidInput)
	}

	root, err := t.tree.RootEntry(rootPath)
	if err != nil {
		return fmt.Errorf("root entry %s: %w", rootPath, err)
	}
	root.Depth = 0

	seen := map[string]bool{root.CanonicalPath: true}
	queue := []workItem{{entry: root, parentIgnores: nil}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		status, descend, err := t.visit(&item)
		if err != nil {
			return err
		}
		if status == Stop {
			t.logger.Debug("traversal stopped", zap.String("path", item.entry.CanonicalPath))
			return nil
		}
		if !descend || item.entry.Kind != Directory {
			continue
		}
		if t.opts.MaxDepth >= 0 && item.entry.Depth >= t.opts.MaxDepth {
			continue
		}

		children, err := t.tree.ReadDir(item.entry)
		if err != nil {
			return fmt.Errorf("read dir %s: %w", item.entry.CanonicalPath, err)
		}

		dirIgnores, err := t.loadIgnores(item.entry, item.parentIgnores)
		if err != nil {
			return err
		}

		for _, child := range children {
			canon, err := t.tree.Canonicalize(child.CanonicalPath)
			if err != nil {
				return fmt.Errorf("canonicalize %s: %w", child.CanonicalPath, err)
			}
			if seen[canon] {
				continue
			}
			seen[canon] = true

			child.CanonicalPath = canon
			child.Depth = item.entry.Depth + 1
			queue = append(queue, workItem{entry: child, parentIgnores: dirIgnores})
		}
	}

	return nil
}

// visit decides, and if appropriate invokes, [ProcessEntry] for one entry.
// It returns the status Process reported (Continue if Process was never
// called) and whether the caller should descend into this entry's
// children, assuming it is a directory.
func (t *Traverser) visit(item *workItem) (status ProcessStatus, descend bool, err error) {
	entry := &item.entry

	if item.parentIgnores != nil {
		result, err := item.parentIgnores.Check(entry.CanonicalPath)
		if err != nil {
			return Continue, false, fmt.Errorf("check ignores for %s: %w", entry.CanonicalPath, err)
		}
		entry.Ignored = result == Excluded
	}

	if entry.Ignored {
		t.logger.Debug("entry ignored", zap.String("path", entry.CanonicalPath), zap.Bool("neverIgnore", entry.NeverIgnore))
		if observer, ok := t.process.(IgnoreObserver); ok {
			observer.Ignored(*entry)
		}
		if !entry.NeverIgnore {
			return Continue, false, nil
		}
	}

	needleResult, err := t.needle.Check(entry.CanonicalPath)
	if err != nil {
		return Continue, false, fmt.Errorf("check needle for %s: %w", entry.CanonicalPath, err)
	}

	// Files are handed to Process only on an explicit needle match.
	// Directories are handed to Process whenever the needle did not
	// explicitly rule them out, since Process needs a chance to control
	// descent into every directory, matched or not. An Excluded directory
	// is not descended into.
	callProcess := needleResult == Included ||
		(entry.Kind == Directory && needleResult != Excluded)

	if !callProcess {
		return Continue, needleResult != Excluded, nil
	}

	t.logger.Debug("processing entry",
		zap.String("path", entry.CanonicalPath),
		zap.Stringer("kind", entry.Kind),
		zap.Stringer("needle", needleResult),
	)

	status, err = t.process.Process(*entry)
	if err != nil {
		return Continue, false, fmt.Errorf("process %s: %w", entry.CanonicalPath, err)
	}

	return status, status != Skip, nil
}

// loadIgnores composes dir's own ignore file(s), if any, on top of
// delegate. If dir contributes no ignore file, delegate is returned
// unchanged — there is no reason to allocate an empty pass-through layer.
func (t *Traverser) loadIgnores(dir Entry, delegate *Matcher) (*Matcher, error) {
	names := t.tree.IgnoresFor(dir)
	if len(names) == 0 {
		return delegate, nil
	}

	matcher := NewMatcher(delegate)
	loaded := false

	for _, name := range names {
		path := name
		if !strings.HasPrefix(name, "/") {
			path = joinPath(dir.CanonicalPath, name)
		}

		f, err := t.tree.ReadFile(path)
		if err != nil {
			// A missing or unreadable ignore file is skipped, not an error.
			t.logger.Debug("ignore file not read", zap.String("path", path), zap.Error(err))
			continue
		}

		globs, parseErr := ParseIgnorePatterns(f)
		closeErr := f.Close()
		if parseErr != nil {
			return nil, fmt.Errorf("parse ignore file %s: %w", path, parseErr)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("close ignore file %s: %w", path, closeErr)
		}

		for _, glob := range globs {
			if err := matcher.AddAnchored(glob, dir.CanonicalPath); err != nil {
				return nil, fmt.Errorf("ignore file %s: %w", path, err)
			}
		}
		loaded = true
	}

	if !loaded {
		return delegate, nil
	}

	if err := matcher.Finalize(); err != nil {
		return nil, err
	}
	t.logger.Debug("loaded ignore file", zap.String("dir", dir.CanonicalPath), zap.Strings("names", names))
	return matcher, nil
}

// joinPath joins a canonical directory path and a bare file name with "/",
// without relying on the host's path separator.
func joinPath(dir, name string) string {
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		return "/" + name
	}
	return dir + "/" + name
}

// Run compiles needleGlobs into a [Matcher] anchored at rootPath and walks
// the tree once, calling process for every entry the needle selects. It is
// the one-shot convenience entry point; build a [Traverser] directly for
// more control.
func Run(tree FileTree, process ProcessEntry, rootPath string, needleGlobs []string, opts TraverseOptions) error {
	if len(needleGlobs) == 0 {
		return fmt.Errorf("%w: needleGlobs is empty", ErrInvalidInput)
	}

	canonicalRoot, err := tree.Canonicalize(rootPath)
	if err != nil {
		return fmt.Errorf("canonicalize root %s: %w", rootPath, err)
	}
	if canonicalRoot == "" {
		return fmt.Errorf("%w: root path %q does not exist", ErrInvalidInput, rootPath)
	}

	needle := NewMatcher(nil)
	for _, glob := range needleGlobs {
		if err := needle.AddAnchored(glob, canonicalRoot); err != nil {
			return fmt.Errorf("needle glob %q: %w", glob, err)
		}
	}
	if err := needle.Finalize(); err != nil {
		return fmt.Errorf("finalize needle: %w", err)
	}

	return NewTraverser(tree, process, needle, opts).Run(canonicalRoot)
}
