// SPDX-License-Identifier: MIT

package globstari

import (
	"fmt"
	"sort"
)

// GlobSet is a set of globs, compiled together into one decision: does a
// path match any of them. A GlobSet starts open, accepting [GlobSet.Add]
// calls, and becomes queryable once [GlobSet.Finalize] is called; the
// transition is one-way.
//
// Adapted from GlobSetImpl in globstari.cpp.
type GlobSet struct {
	globs     map[string]struct{}
	criteria  []*criterion
	finalized bool
}

// NewGlobSet returns an open, empty GlobSet.
func NewGlobSet() *GlobSet {
	return &GlobSet{globs: make(map[string]struct{})}
}

// Add registers a glob with the set. It returns [ErrInvalidState] if the
// set has already been finalized, and [ErrInvalidInput] if glob is empty.
// Adding the same glob twice is not an error; duplicates collapse.
func (g *GlobSet) Add(glob string) error {
	if g.finalized {
		return fmt.Errorf("%w: GlobSet already finalized", ErrInvalidState)
	}
	if glob == "" {
		return fmt.Errorf("%w: empty glob", ErrInvalidInput)
	}

	g.globs[glob] = struct{}{}
	return nil
}

// Finalize compiles the set's globs into queryable criteria. Finalizing an
// already-finalized set, or one with no globs, is not an error.
func (g *GlobSet) Finalize() error {
	if g.finalized {
		return nil
	}

	ordered := make([]string, 0, len(g.globs))
	for glob := range g.globs {
		ordered = append(ordered, glob)
	}
	// Map iteration order is random; sort so the compiled regex is
	// deterministic across runs with the same input globs.
	sort.Strings(ordered)

	criteria, err := buildCriteria(ordered)
	if err != nil {
		return err
	}

	g.criteria = criteria
	g.finalized = true
	return nil
}

// Finalized reports whether Finalize has been called.
func (g *GlobSet) Finalized() bool {
	return g.finalized
}

// Contains reports whether path satisfies any glob in the set. An empty
// path never matches. It returns [ErrInvalidState] if the set has not been
// finalized.
func (g *GlobSet) Contains(path string) (bool, error) {
	if !g.finalized {
		return false, fmt.Errorf("%w: GlobSet not finalized", ErrInvalidState)
	}
	if path == "" {
		return false, nil
	}

	for _, c := range g.criteria {
		if c.accepts(path) {
			return true, nil
		}
	}
	return false, nil
}
