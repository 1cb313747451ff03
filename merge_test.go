// SPDX-License-Identifier: MIT

package globstari

import "testing"

func TestMergeGlobs(t *testing.T) {
	t.Parallel()

	a := []string{"*.tmp"}
	b := []string{"keep.tmp", "build/**"}

	merged := MergeGlobs(a, nil, b)
	if len(merged) != 3 {
		t.Fatalf("len(merged)=%d, want 3", len(merged))
	}
	if merged[0] != "*.tmp" || merged[1] != "keep.tmp" || merged[2] != "build/**" {
		t.Fatalf("unexpected merged order: %+v", merged)
	}

	// The result must not alias an input slice's backing array.
	b[0] = "mutated"
	if merged[1] != "keep.tmp" {
		t.Fatalf("merged slice was unexpectedly aliased")
	}
}

func TestMergeGlobsEmpty(t *testing.T) {
	t.Parallel()

	if merged := MergeGlobs(); len(merged) != 0 {
		t.Fatalf("MergeGlobs() = %v, want empty", merged)
	}
}
