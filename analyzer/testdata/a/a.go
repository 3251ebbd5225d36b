package a

import "bytes"

type Big struct {
	a, b, c, d, e, f, g, h, i, j int64
}

func (b Big) Sum() int64 { return b.a + b.j }

func (b *Big) Reset() { b.a = 0 }

func (b Big) String() string { return "big" }

type Small struct{ a, b int }

func readOnly(b Big) int64 { // want "passed by value"
	return b.a + b.Sum()
}

func consumed(b Big) Big { return b }

func stored(b Big, out *[]Big) { *out = append(*out, b) }

func mutated(b Big) { b.Reset() }

func assigned(b Big) int64 {
	b.a = 1

	return b.a
}

func small(s Small) int { return s.a }

func matched(b Big) int { // want "passed by value"
	switch b {
	case Big{}:
		return 0
	}

	return 1
}

func blank(b Big) { // want "passed by value"
	_ = b
}

func shared(a, b Big) int64 { // want "passed by value" "passed by value"
	return a.a + b.a
}

func (b Big) method(o Big) int64 { // want "passed by value"
	return o.a + b.a
}

func unnamed(Big) {}

func generic[T any](v T) {}

var hook = readHook

func readHook(b Big) int64 { return b.a }

func ignored(b Big) int64 { //nolint:needlesspass
	return b.a
}

//nolint:needlesspass
func ignoredFunc(b Big) int64 { return b.a }

func buffered(buf *bytes.Buffer) int { return buf.Len() }
