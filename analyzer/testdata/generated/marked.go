package generated

// Code generated by hand. DO NOT EDIT.
func marked(b Big) int64 {
	return b[0]
}

func unmarked(b Big) int64 { // want "passed by value"
	return b[0]
}
