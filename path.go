// SPDX-License-Identifier: MIT

package globstari

import "strings"

// globSpecialChars lists the bytes that are special inside a compiled glob
// and therefore must be escaped when splicing a literal path into one.
// Adapted from editorconfig-core-c/src/lib/ec_glob.c's ec_special_chars, via
// globstari.cpp.
const globSpecialChars = "?[]\\*-{},"

// escapeGlobLiteral backslash-escapes every byte of s that is special to the
// glob compiler, so that s can be spliced into a larger glob and matched
// literally.
func escapeGlobLiteral(s string) string {
	if strings.IndexAny(s, globSpecialChars) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(globSpecialChars, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// anchorGlob applies the §3 anchoring rules: splice glob onto root so that
// it only matches entries under root. One trailing "/" on root is dropped
// first, so the filesystem root "/" (or an empty root) anchors globs at the
// top of the tree.
//
//   - glob contains no "/": root + "/**/" + glob
//   - glob starts with "/": root + glob
//   - otherwise: root + "/" + glob
//
// The "!" exclusion prefix, if present, is preserved at the front of the
// result rather than splicing it into the middle of the anchored glob.
func anchorGlob(glob, root string) string {
	polarity, bare := splitPolarity(glob)

	escapedRoot := escapeGlobLiteral(strings.TrimSuffix(root, "/"))

	var anchored string
	switch {
	case !strings.Contains(bare, "/"):
		anchored = escapedRoot + "/**/" + bare
	case strings.HasPrefix(bare, "/"):
		anchored = escapedRoot + bare
	default:
		anchored = escapedRoot + "/" + bare
	}

	if polarity == Exclude {
		return "!" + anchored
	}
	return anchored
}

// splitPolarity splits a leading "!" off glob, returning its polarity and
// the remaining pattern text.
func splitPolarity(glob string) (Polarity, string) {
	if strings.HasPrefix(glob, "!") {
		return Exclude, glob[1:]
	}
	return Include, glob
}
