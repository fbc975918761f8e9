// Package either provides a two-variant success-or-failure container.
package either

// Either holds exactly one of a failure value L or a success value R.
// The zero value is a Wrong carrying the zero L.
type Either[L, R any] struct {
	wrong   L
	right   R
	isRight bool
}

// Right returns an Either carrying the success value v.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// Wrong returns an Either carrying the failure value v.
func Wrong[L, R any](v L) Either[L, R] {
	return Either[L, R]{wrong: v}
}

// IsRight reports whether e carries a success value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsWrong reports whether e carries a failure value.
func (e Either[L, R]) IsWrong() bool {
	return !e.isRight
}

// Right returns the success value. It is the zero R unless IsRight.
func (e Either[L, R]) Right() R {
	return e.right
}

// Wrong returns the failure value. It is the zero L unless IsWrong.
func (e Either[L, R]) Wrong() L {
	return e.wrong
}
