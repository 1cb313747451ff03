// SPDX-License-Identifier: MIT

package globstari

import "testing"

func TestParseIgnorePatterns(t *testing.T) {
	t.Parallel()

	input := "\n" +
		"# comment\n" +
		"*.tmp\n" +
		"!keep.tmp\n" +
		"\\#literal\n" +
		"\\!bang\n" +
		"name\\ \n" +
		"trailing # inline comment\n"

	globs, err := ParseIgnorePatternsString(input)
	if err != nil {
		t.Fatalf("ParseIgnorePatternsString: %v", err)
	}

	want := []string{
		"!*.tmp",
		"keep.tmp",
		"!#literal",
		"!!bang",
		"!name ",
		"!trailing",
	}

	if len(globs) != len(want) {
		t.Fatalf("globs=%q, want %q", globs, want)
	}
	for i := range want {
		if globs[i] != want[i] {
			t.Fatalf("globs[%d]=%q, want %q", i, globs[i], want[i])
		}
	}
}

func TestParseIgnorePatternsBlankAndCommentLines(t *testing.T) {
	t.Parallel()

	globs, err := ParseIgnorePatternsString("\n   \n# nothing here\n*.log\n")
	if err != nil {
		t.Fatalf("ParseIgnorePatternsString: %v", err)
	}

	if len(globs) != 1 || globs[0] != "!*.log" {
		t.Fatalf("globs=%q, want [\"!*.log\"]", globs)
	}
}

func TestParseIgnorePatternsTrimsLeadingWhitespace(t *testing.T) {
	t.Parallel()

	globs, err := ParseIgnorePatternsString("  *.tmp\n\t!keep.tmp\n")
	if err != nil {
		t.Fatalf("ParseIgnorePatternsString: %v", err)
	}

	want := []string{"!*.tmp", "keep.tmp"}
	if len(globs) != len(want) {
		t.Fatalf("globs=%q, want %q", globs, want)
	}
	for i := range want {
		if globs[i] != want[i] {
			t.Fatalf("globs[%d]=%q, want %q", i, globs[i], want[i])
		}
	}
}

func TestParseIgnorePatternsIntegratesWithMatcher(t *testing.T) {
	t.Parallel()

	globs, err := ParseIgnorePatternsString("build/**\n!build/keep.txt\n")
	if err != nil {
		t.Fatalf("ParseIgnorePatternsString: %v", err)
	}

	m := NewMatcher(nil)
	for _, g := range globs {
		if err := m.AddAnchored(g, "/repo"); err != nil {
			t.Fatalf("AddAnchored(%q): %v", g, err)
		}
	}
	if err := m.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if got := checkResult(t, m, "/repo/build/output.o"); got != Excluded {
		t.Fatalf("/repo/build/output.o = %v, want Excluded (ignored)", got)
	}
	if got := checkResult(t, m, "/repo/build/keep.txt"); got != Included {
		t.Fatalf("/repo/build/keep.txt = %v, want Included (un-ignored)", got)
	}
	if got := checkResult(t, m, "/repo/README.md"); got != Unknown {
		t.Fatalf("/repo/README.md = %v, want Unknown", got)
	}
}

func TestTrimTrailingSpaces(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"name  ":   "name",
		`name\ `:   "name ",
		"no-space": "no-space",
		"a\t\t":    "a",
	}

	for in, want := range cases {
		if got := trimTrailingSpaces(in); got != want {
			t.Fatalf("trimTrailingSpaces(%q)=%q, want %q", in, got, want)
		}
	}
}
