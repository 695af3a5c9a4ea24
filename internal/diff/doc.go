// Package diff compares two ordered sequences element by element and reports
// the result as a chronological log of additions, deletions and equalities
// sent to a Sink.
//
// The comparison is a single forward scan. Elements that have no counterpart
// yet are parked in two lookahead buffers, one per side; as soon as the
// current element of one side equals an element parked for the other side,
// everything parked before it is flushed as changes and the other side seeks
// back to just after the match. This is a greedy heuristic and not a minimal
// edit script: the output depends on which buffer sees a match first, and
// always on the first occurrence within that buffer.
//
// Elements still parked when both sides run out are flushed, deletions first.
package diff
