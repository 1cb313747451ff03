// SPDX-License-Identifier: MIT

package globstari

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseIgnorePatterns parses one ignore file into an ordered list of globs
// ready to hand to [Matcher.AddAnchored] in order.
//
// Format, line by line:
//   - leading whitespace is trimmed
//   - trailing whitespace is trimmed unless escaped with "\"
//   - blank lines are skipped
//   - a line starting with "#" is a comment and is skipped entirely
//   - an unescaped "#" elsewhere on the line starts a trailing comment;
//     everything from it onward is discarded
//   - a line starting with "!" un-ignores a pattern instead of ignoring one
//   - a leading "\#" or "\!" is unescaped to a literal "#" or "!", so a
//     pattern can itself start with one of those characters without being
//     read as a comment or an un-ignore
//
// The returned globs already carry [Matcher]'s own "!" convention, which is
// the opposite of an ignore line's: a plain ignore-file line means "ignore
// this", so it comes back prefixed with "!" (Exclude polarity), while a
// "!"-prefixed un-ignore line comes back with no prefix (Include polarity).
//
// Extended with the trailing-comment handling gitignore-style ignore files
// also support.
func ParseIgnorePatterns(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	globs := make([]string, 0, 16)

	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		line = strings.TrimLeft(line, " \t")
		line = trimTrailingSpaces(line)
		if line == "" {
			continue
		}

		if line[0] == '#' {
			continue
		}

		line = truncateAtComment(line)
		if line == "" {
			continue
		}

		unignore := false
		switch {
		case strings.HasPrefix(line, "!"):
			unignore = true
			line = line[1:]
		case strings.HasPrefix(line, `\!`):
			line = line[1:]
		case strings.HasPrefix(line, `\#`):
			line = line[1:]
		}

		if line == "" {
			continue
		}

		if unignore {
			globs = append(globs, line)
		} else {
			globs = append(globs, "!"+line)
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan ignore patterns: %w", err)
	}

	return globs, nil
}

// ParseIgnorePatternsString is [ParseIgnorePatterns] for an in-memory
// ignore file.
func ParseIgnorePatternsString(src string) ([]string, error) {
	return ParseIgnorePatterns(strings.NewReader(src))
}

// truncateAtComment discards everything from the first unescaped "#"
// onward, then trims any whitespace that comment left dangling.
func truncateAtComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == '\\' && i+1 < len(line) {
			i++
			continue
		}
		if line[i] == '#' {
			return trimTrailingSpaces(line[:i])
		}
	}
	return line
}

// trimTrailingSpaces removes trailing spaces and tabs unless escaped by
// "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
