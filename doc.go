// SPDX-License-Identifier: MIT

/*
Package globstari implements selective hierarchical traversal of a tree of
named entries (typically files and directories) against EditorConfig-style
glob patterns, with per-directory ignore files inherited down the tree.

"Globstari" = glob, glob-star, and i-gnores.

Basic flow:
  - compile a needle (an ordered list of globs, optionally prefixed with "!")
    into a [Matcher] anchored at a root path
  - walk the tree breadth-first with a [Traverser], composing each directory's
    ignore file on top of the ignores inherited from its ancestors
  - call a [ProcessEntry] for every entry the needle matches, or that an
    ancestor directory left undecided

For one-shot use, call [Run] directly. For hierarchical ignore policies
outside of a traversal (e.g. deciding whether one path is ignored), build a
[Matcher] chain by hand with [Matcher.Add] and [Matcher.AddAnchored].

The library ships two [FileTree] implementations: [DiskFileTree], rooted at
the host filesystem, and [AferoFileTree], rooted at any afero.Fs — including
an in-memory tree for tests.
*/
package globstari
