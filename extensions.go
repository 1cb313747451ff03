// SPDX-License-Identifier: MIT

package globstari

import "strings"

// NeedleFromExtensions builds an Include-only needle from a list of file
// extensions.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//
// Empty values are skipped. Returned globs are "*.ext", lower-cased, and
// preserve input order.
func NeedleFromExtensions(exts []string) []string {
	globs := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = strings.ToLower(ext)
		if ext == "" {
			continue
		}

		globs = append(globs, "*."+ext)
	}

	return globs
}
