// Code generated by hand. DO NOT EDIT.

package generated

type Big [16]int64

func readOnly(b Big) int64 {
	return b[0] + b[15]
}
