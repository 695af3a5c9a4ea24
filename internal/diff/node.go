package diff

import (
	"bytes"
)

type Node interface {
	// SameAs is an optional shortcut to comparing nodes. This
	// could be implemented, for instance, if the nodes to compare
	// contain hashes of their contents. You'd quickly compare the
	// hashes before comparing contents. If no shortcuts are
	// possible, one should return false.
	SameAs(Node) (bool, error)

	// Content returns the content of the node.
	Content() (string, error)
}

type ByteNode []byte

func (b ByteNode) SameAs(node Node) (bool, error) {
	other, ok := node.(ByteNode)
	if !ok {
		return false, nil
	}
	return bytes.Equal(b, other), nil
}

func (b ByteNode) Content() (string, error) {
	return string(b), nil
}

type StringNode string

func (s StringNode) SameAs(node Node) (bool, error) {
	other, ok := node.(StringNode)
	if !ok {
		return false, nil
	}
	return string(s) == string(other), nil
}

func (s StringNode) Content() (string, error) {
	return string(s), nil
}

// CompareNodes compares the contents of two nodes line by line. If the nodes
// are the same according to a.SameAs, every line of a is reported as an
// equality without running Compare, which would yield the same result.
func CompareNodes(a, b Node, sink Sink[string]) error {
	same, err := a.SameAs(b)
	if err != nil {
		return err
	}
	aContent, err := a.Content()
	if err != nil {
		return err
	}
	if same {
		for _, line := range Lines(aContent) {
			if err := sink.Equality(line); err != nil {
				return err
			}
		}
		return nil
	}
	bContent, err := b.Content()
	if err != nil {
		return err
	}
	return Compare[string](
		NewSliceSequence(Lines(aContent)),
		NewSliceSequence(Lines(bContent)),
		sink,
	)
}
