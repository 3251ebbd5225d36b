package a

import (
	"bytes"
	"slices"
)

func length(v [64]int) bool { // want "passed by value"
	return len(v) == 42
}

func sliced(v [64]int) []int {
	return v[:]
}

func partial(v [64]int) []int {
	return v[1:3]
}

func written(v [64]int) int {
	s := v[:]
	s[0] = 1

	return v[0]
}

func filled(v [64]int, src []int) int {
	copy(v[:], src)

	return v[0]
}

func copied(dst []int, v [64]int) int { // want "passed by value"
	return copy(dst, v[:])
}

func duplicated(v [64]int) []int { // want "passed by value"
	return slices.Clone(v[:])
}

func text(b [128]byte) string { // want "passed by value"
	return string(b[:])
}

func cloned(b [128]byte) []byte { // want "passed by value"
	return bytes.Clone(b[:])
}

func prefix(b [128]byte) []byte {
	return b[:4]
}

func head(b [128]byte) []byte { // want "passed by value"
	return bytes.Clone(b[:4])
}

func measured(b [128]byte) int { // want "passed by value"
	return len(b[4:])
}

func ranged(b [128]byte) int { // want "passed by value"
	n := 0
	for _, c := range b {
		n += int(c)
	}

	return n
}

func constant(v [64]int) int { // want "passed by value"
	const n = len(v)

	return n + v[0]
}

func compared(v, w [64]int) bool { return v == w }
