// SPDX-License-Identifier: MIT

package globstari

// MergeGlobs merges ordered glob-pattern slices into one, preserving input
// order: the slice a caller passes to [Matcher.AddAnchored] in order, for
// example the patterns of several ignore files that must go into the same
// layer-building pass in file order. The traversal itself does not call it;
// it adds each ignore file's patterns directly.
func MergeGlobs(globSets ...[]string) []string {
	total := 0
	for _, set := range globSets {
		total += len(set)
	}

	out := make([]string, 0, total)
	for _, set := range globSets {
		out = append(out, set...)
	}

	return out
}
