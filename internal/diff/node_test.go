package diff_test

import (
	"errors"
	"testing"

	"github.com/nicolagi/seqdiff/internal/diff"
)

type contentErrorNode struct {
	err error
}

func (contentErrorNode) SameAs(diff.Node) (bool, error) {
	return false, nil
}

func (node contentErrorNode) Content() (string, error) {
	return "", node.err
}

type sameAsErrorNode struct {
	err error
}

func (node sameAsErrorNode) SameAs(diff.Node) (bool, error) {
	return false, node.err
}

func (sameAsErrorNode) Content() (string, error) {
	panic("not implemented")
}

// sameAsAnyNode claims to be the same as anything. CompareNodes must then
// trust it and never look at the other node's content.
type sameAsAnyNode string

func (sameAsAnyNode) SameAs(diff.Node) (bool, error) {
	return true, nil
}

func (n sameAsAnyNode) Content() (string, error) {
	return string(n), nil
}

func TestNodeSameAs(t *testing.T) {
	someBytes, otherBytes := diff.ByteNode("some text"), diff.ByteNode("other text")
	someString, otherString := diff.StringNode("some text"), diff.StringNode("other text")
	assertNotSame(t, someBytes, otherBytes)
	assertSame(t, someBytes, someBytes)
	assertSame(t, someBytes, diff.ByteNode("some text"))
	assertNotSame(t, someBytes, (diff.ByteNode)(nil))
	assertNotSame(t, someString, otherString)
	assertSame(t, someString, diff.StringNode("some text"))
	assertNotSame(t, someString, diff.ByteNode{})
	// Same content, different representation.
	assertNotSame(t, someBytes, someString)
}

func TestNodeContent(t *testing.T) {
	for _, node := range []diff.Node{diff.ByteNode("some text"), diff.StringNode("some text")} {
		content, err := node.Content()
		if err != nil {
			t.Error(err)
		}
		if got, want := content, "some text"; got != want {
			t.Errorf("%T: got %s, want %s", node, got, want)
		}
	}
}

func TestCompareNodes(t *testing.T) {
	t.Run("same nodes yield only equalities", func(t *testing.T) {
		var r diff.Recorder[string]
		a := diff.StringNode("x\ny\n")
		if err := diff.CompareNodes(a, a, &r); err != nil {
			t.Fatal(err)
		}
		assertEvents(t, "=x =y", r.Events)
	})
	t.Run("the SameAs shortcut is trusted", func(t *testing.T) {
		var r diff.Recorder[string]
		if err := diff.CompareNodes(sameAsAnyNode("x\n"), contentErrorNode{}, &r); err != nil {
			t.Fatal(err)
		}
		assertEvents(t, "=x", r.Events)
	})
	t.Run("different nodes are compared line by line", func(t *testing.T) {
		var r diff.Recorder[string]
		if err := diff.CompareNodes(diff.ByteNode("A\nB\nC\n"), diff.StringNode("A\nX\nC"), &r); err != nil {
			t.Fatal(err)
		}
		assertEvents(t, "=A +X -B =C", r.Events)
	})
	t.Run("SameAs errors are passed on", func(t *testing.T) {
		want := errors.New("same as failure")
		var r diff.Recorder[string]
		err := diff.CompareNodes(sameAsErrorNode{err: want}, diff.StringNode(""), &r)
		if !errors.Is(err, want) {
			t.Errorf("got %v, want %v", err, want)
		}
	})
	t.Run("content errors are passed on", func(t *testing.T) {
		want := errors.New("content failure")
		for _, pair := range [][2]diff.Node{
			{contentErrorNode{err: want}, diff.StringNode("a")},
			{diff.StringNode("a"), contentErrorNode{err: want}},
		} {
			var r diff.Recorder[string]
			err := diff.CompareNodes(pair[0], pair[1], &r)
			if !errors.Is(err, want) {
				t.Errorf("got %v, want %v", err, want)
			}
			if len(r.Events) != 0 {
				t.Errorf("got %d events, want none", len(r.Events))
			}
		}
	})
}

func assertSame(t *testing.T, a, b diff.Node) {
	t.Helper()
	assertComparison(t, a, b, true)
	assertComparison(t, b, a, true)
}

func assertNotSame(t *testing.T, a, b diff.Node) {
	t.Helper()
	assertComparison(t, a, b, false)
	assertComparison(t, b, a, false)
}

func assertComparison(t *testing.T, a, b diff.Node, want bool) {
	t.Helper()
	got, err := a.SameAs(b)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %t, want %t", got, want)
	}
}
