package threshold

type Small struct{ a, b int }

type Tiny struct{ a int32 }

func small(s Small) int { // want "passed by value"
	return s.a
}

func tiny(t Tiny) int32 {
	return t.a
}

func pair[T any](p struct{ a, b T }) {} // want "passed by value"

func single[T any](v T) {} // want "passed by value"
