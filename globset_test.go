// SPDX-License-Identifier: MIT

package globstari

import (
	"errors"
	"testing"
)

func TestGlobSetLifecycle(t *testing.T) {
	t.Parallel()

	g := NewGlobSet()
	if g.Finalized() {
		t.Fatalf("new GlobSet reports Finalized")
	}

	if err := g.Add("*.go"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := g.Contains("main.go"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Contains before Finalize err=%v, want ErrInvalidState", err)
	}

	if err := g.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if !g.Finalized() {
		t.Fatalf("Finalized() = false after Finalize")
	}

	if err := g.Add("*.md"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Add after Finalize err=%v, want ErrInvalidState", err)
	}

	ok, err := g.Contains("main.go")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if !ok {
		t.Fatalf("Contains(main.go) = false, want true")
	}
}

func TestGlobSetEmptyPathNeverMatches(t *testing.T) {
	t.Parallel()

	g := NewGlobSet()
	if err := g.Add("*"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := g.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	ok, err := g.Contains("")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if ok {
		t.Fatalf("Contains(\"\") = true, want false")
	}
}

func TestGlobSetDuplicateGlobsCollapse(t *testing.T) {
	t.Parallel()

	g := NewGlobSet()
	if err := g.Add("*.go"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := g.Add("*.go"); err != nil {
		t.Fatalf("Add duplicate: %v", err)
	}
	if err := g.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if len(g.criteria) != 1 {
		t.Fatalf("len(criteria)=%d, want 1 (single alternation criterion)", len(g.criteria))
	}
}

func TestGlobSetRejectsEmptyGlob(t *testing.T) {
	t.Parallel()

	g := NewGlobSet()
	if err := g.Add(""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Add(\"\") err=%v, want ErrInvalidInput", err)
	}
}

func TestGlobSetFinalizeEmptySetIsNotAnError(t *testing.T) {
	t.Parallel()

	g := NewGlobSet()
	if err := g.Finalize(); err != nil {
		t.Fatalf("Finalize empty set: %v", err)
	}

	ok, err := g.Contains("anything")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if ok {
		t.Fatalf("Contains(anything) on empty set = true, want false")
	}
}

func TestGlobSetMixedRangeAndPlainGlobs(t *testing.T) {
	t.Parallel()

	g := NewGlobSet()
	for _, glob := range []string{"*.md", "build-{1..5}.log", "*.txt"} {
		if err := g.Add(glob); err != nil {
			t.Fatalf("Add(%q): %v", glob, err)
		}
	}
	if err := g.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	// One alternation criterion for the two plain globs, one criterion per
	// numeric-range glob.
	if len(g.criteria) != 2 {
		t.Fatalf("len(criteria)=%d, want 2", len(g.criteria))
	}

	for path, want := range map[string]bool{
		"readme.md":    true,
		"notes.txt":    true,
		"build-3.log":  true,
		"build-9.log":  false,
		"picture.jpeg": false,
	} {
		ok, err := g.Contains(path)
		if err != nil {
			t.Fatalf("Contains(%q): %v", path, err)
		}
		if ok != want {
			t.Fatalf("Contains(%q)=%v, want %v", path, ok, want)
		}
	}
}
