package diff

// Compare rewinds a (the old sequence) and b (the new sequence) and sends sink
// the edit script that turns a into b. Both sides are read in strict
// alternation, one element each per round, until both are exhausted.
//
// An element read from one side is first looked up in the lookahead buffer of
// the other side. On a hit at index ind, the own buffer is flushed entirely
// as changes, the other buffer is flushed as changes up to ind, the element at
// ind is reported as an equality, both buffers are cleared, and the other side
// seeks back to just after the matched element. On a miss, the element is
// appended to the own buffer.
//
// Compare returns the first error returned by sink, if any. A seek out of
// range ends the comparison without error.
func Compare[T comparable](a, b Sequence[T], sink Sink[T]) error {
	a.Rewind()
	b.Rewind()

	// Index of the last element read on each side.
	apos, bpos := -1, -1

	// Elements read but not matched yet, in reading order.
	var amore, bmore []T

	for a.Valid() || b.Valid() {
		if a.Valid() {
			apos++
			if ind := index(bmore, a.Current()); ind != -1 {
				if err := resolve(amore, sink.Deletion, bmore, sink.Addition, ind, sink.Equality); err != nil {
					return err
				}
				bpos = bpos - len(bmore) + ind + 1
				amore, bmore = amore[:0], bmore[:0]
				if err := b.Seek(bpos); err != nil {
					return nil
				}
				a.Next()
				b.Next()
				continue
			}
			amore = append(amore, a.Current())
			a.Next()
		}

		if b.Valid() {
			bpos++
			if ind := index(amore, b.Current()); ind != -1 {
				if err := resolve(bmore, sink.Addition, amore, sink.Deletion, ind, sink.Equality); err != nil {
					return err
				}
				apos = apos - len(amore) + ind + 1
				amore, bmore = amore[:0], bmore[:0]
				if err := a.Seek(apos); err != nil {
					return nil
				}
				a.Next()
				b.Next()
				continue
			}
			bmore = append(bmore, b.Current())
			b.Next()
		}
	}

	for _, v := range amore {
		if err := sink.Deletion(v); err != nil {
			return err
		}
	}
	for _, v := range bmore {
		if err := sink.Addition(v); err != nil {
			return err
		}
	}
	return nil
}

// resolve reports a match found at index ind of other: all of own is sent to
// ownChange, the elements of other before ind are sent to otherChange, and the
// element at ind is sent to equal.
func resolve[T any](own []T, ownChange func(T) error, other []T, otherChange func(T) error, ind int, equal func(T) error) error {
	for _, v := range own {
		if err := ownChange(v); err != nil {
			return err
		}
	}
	for _, v := range other[:ind] {
		if err := otherChange(v); err != nil {
			return err
		}
	}
	return equal(other[ind])
}

// index returns the index of the first occurrence of v in values, or -1.
func index[T comparable](values []T, v T) int {
	for i, w := range values {
		if w == v {
			return i
		}
	}
	return -1
}
