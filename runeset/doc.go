// Package runeset stores sets of runes as sorted, non-overlapping inclusive
// ranges and answers membership queries in O(log n).
//
// What
//
//   - Range — one inclusive span [Lo, Hi]. A single rune is the degenerate
//     span Lo == Hi; Lo > Hi denotes the empty span.
//   - Set — an immutable, normalized sequence of ranges: sorted by Lo and
//     merged so that no two entries overlap or even touch
//     (entry[i].Hi < entry[i+1].Lo - 1 always holds).
//   - New(...) — the only constructor. It sorts a private copy of its input,
//     fuses overlapping and adjacent entries, and drops empty ones, so any
//     mix of unordered, duplicated or nested ranges yields the one minimal
//     normal form.
//
// Why
//
//   - Character classes compress well as ranges ("a-zA-Z0-9_" is four
//     entries), and the normal form turns membership into a binary search.
//   - A Set is built once and never mutated afterwards, so it may be shared
//     and queried from any number of goroutines without locks.
//
// Complexity (k = input ranges, n = normalized ranges)
//
//   - New: O(k log k) time, O(k) space.
//   - Contains: O(log n) time (a plain scan below a small threshold).
//   - Len, Min, Max: O(1). Size, Ranges, String: O(n).
package runeset
