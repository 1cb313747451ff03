// SPDX-License-Identifier: MIT

package globstari

import (
	"fmt"
	"strings"
)

// matcherLayer is one run of same-polarity globs inside a [Matcher],
// compiled together into a single [GlobSet].
type matcherLayer struct {
	polarity Polarity
	set      *GlobSet
}

// Matcher evaluates a path against an ordered sequence of Include/Exclude
// globs, optionally falling back to a delegate Matcher when nothing in this
// Matcher matches. Delegation is how the traversal composes a directory's
// own ignore file on top of everything it inherited from its ancestors: the
// child Matcher holds the directory's own globs, and its delegate is the
// parent directory's Matcher.
//
// Invariant: all layers are built in glob-addition order and checked back
// to front, so a later glob always overrides an earlier one that matches
// the same path — the same "last match wins" rule [GlobSet] itself does not
// enforce (a GlobSet has no polarity; a Matcher is what adds one).
//
// Adapted from the Matcher class in globstari-matcher.cpp.
type Matcher struct {
	layers    []*matcherLayer
	delegate  *Matcher
	finalized bool
}

// NewMatcher returns an open Matcher with no layers. delegate may be nil;
// otherwise it is consulted by [Matcher.Check] whenever this Matcher's own
// layers leave a path Unknown.
func NewMatcher(delegate *Matcher) *Matcher {
	return &Matcher{delegate: delegate}
}

// Add registers glob with the matcher: a leading "!" gives it Exclude
// polarity, otherwise Include. Consecutive globs of the same polarity share
// one layer; a polarity change starts a new layer. It returns
// [ErrInvalidState] once the matcher has been finalized, and
// [ErrInvalidInput] for an empty glob.
func (m *Matcher) Add(glob string) error {
	if m.finalized {
		return fmt.Errorf("%w: Matcher already finalized", ErrInvalidState)
	}
	if glob == "" {
		return fmt.Errorf("%w: empty glob", ErrInvalidInput)
	}

	polarity, bare := splitPolarity(glob)
	if bare == "" {
		return fmt.Errorf("%w: empty glob after \"!\"", ErrInvalidInput)
	}

	if n := len(m.layers); n > 0 && m.layers[n-1].polarity == polarity {
		return m.layers[n-1].set.Add(bare)
	}

	set := NewGlobSet()
	if err := set.Add(bare); err != nil {
		return err
	}
	m.layers = append(m.layers, &matcherLayer{polarity: polarity, set: set})
	return nil
}

// AddAnchored is [Matcher.Add] for a glob that must be anchored at root
// first, per the §3 anchoring rules (see [anchorGlob]).
func (m *Matcher) AddAnchored(glob, root string) error {
	return m.Add(anchorGlob(glob, root))
}

// Finalize finalizes every layer's GlobSet. Finalizing an empty or
// already-finalized Matcher is not an error; its delegate, if any, must be
// finalized separately.
func (m *Matcher) Finalize() error {
	if m.finalized {
		return nil
	}

	for _, l := range m.layers {
		if err := l.set.Finalize(); err != nil {
			return err
		}
	}
	m.finalized = true
	return nil
}

// Ready reports whether this Matcher, and its delegate chain if any, are
// all finalized and safe to [Matcher.Check] or [Matcher.Contains].
func (m *Matcher) Ready() bool {
	if !m.finalized {
		return false
	}
	return m.delegate == nil || m.delegate.Ready()
}

// Check decides path by walking this Matcher's layers from last-added to
// first-added. The first layer whose GlobSet contains path wins: Included
// for an Include layer, Excluded for an Exclude layer. If no layer matches,
// Check falls through to the delegate (if any); with no delegate, or a
// delegate that also leaves it undecided, the result is Unknown.
//
// path must be absolute; the empty path is allowed and always yields
// Unknown. A non-empty relative path returns [ErrInvalidInput].
//
// It returns [ErrInvalidState] if the matcher (or its delegate chain) is
// not [Matcher.Ready].
func (m *Matcher) Check(path string) (PathCheckResult, error) {
	if !m.Ready() {
		return Unknown, fmt.Errorf("%w: Matcher or its delegate chain not finalized", ErrInvalidState)
	}
	if path != "" && !strings.HasPrefix(path, "/") {
		return Unknown, fmt.Errorf("%w: path %q is not absolute", ErrInvalidInput, path)
	}

	for i := len(m.layers) - 1; i >= 0; i-- {
		l := m.layers[i]
		ok, err := l.set.Contains(path)
		if err != nil {
			return Unknown, err
		}
		if !ok {
			continue
		}
		if l.polarity == Exclude {
			return Excluded, nil
		}
		return Included, nil
	}

	if m.delegate != nil {
		return m.delegate.Check(path)
	}
	return Unknown, nil
}

// Contains reports whether Check resolves path to Included. An Excluded or
// Unknown result both report false.
func (m *Matcher) Contains(path string) (bool, error) {
	result, err := m.Check(path)
	if err != nil {
		return false, err
	}
	return result == Included, nil
}
