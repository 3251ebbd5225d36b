package nofix

type Big [16]int64

func readOnly(b Big) int64 { // want "passed by value"
	return b[0] + b[15]
}

func sliced(v Big) []int64 {
	return v[:]
}

func summed(v Big) int64 { // want "passed by value"
	n := int64(len(v[1:]))
	for _, x := range v {
		n += x
	}

	return n
}

func consumed(b Big) Big { return b }
