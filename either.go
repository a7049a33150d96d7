package either

import "fmt"

type (
	// Either represents one of two values (left or right).
	// By convention left holds a failure and right a success,
	// but nothing in the type enforces that meaning.
	Either[L, R any] interface {
		fmt.Stringer
		fmt.GoStringer

		// IsLeft returns true if the left value is held.
		IsLeft() bool

		// IsRight returns true if the right value is held.
		IsRight() bool

		// TakeLeft returns the left value and true if held.
		TakeLeft() (L, bool)

		// TakeRight returns the right value and true if held.
		TakeRight() (R, bool)

		// LeftOr returns the left value or the default.
		LeftOr(L) L

		// RightOr returns the right value or the default.
		RightOr(R) R

		// Fold invokes exactly one of the actions with the held value.
		Fold(onLeft func(L), onRight func(R))

		// Find returns the right value and true if the predicate holds.
		Find(predicate func(R) bool) (R, bool)

		// Exists reports whether the right value satisfies the predicate.
		// The predicate is never invoked on a left value.
		Exists(predicate func(R) bool) bool

		// MarshalLog renders the value for logr sinks.
		MarshalLog() any

		either(L, R)
	}

	// left represents the left side of an Either.
	left[L, R any] struct {
		val L
	}

	// right represents the right side of an Either.
	right[L, R any] struct {
		val R
	}
)


// Left returns a new Either with a left value.
func Left[L, R any](val L) Either[L, R] {
	return left[L, R]{val}
}

// Right returns a new Either with a right value.
func Right[L, R any](val R) Either[L, R] {
	return right[L, R]{val}
}


// left

func (l left[L, R]) IsLeft() bool  { return true }
func (l left[L, R]) IsRight() bool { return false }

func (l left[L, R]) TakeLeft() (L, bool) {
	return l.val, true
}

func (l left[L, R]) TakeRight() (r R, _ bool) {
	return r, false
}

func (l left[L, R]) LeftOr(L) L {
	return l.val
}

func (l left[L, R]) RightOr(r R) R {
	return r
}

func (l left[L, R]) Fold(onLeft func(L), _ func(R)) {
	if onLeft != nil {
		onLeft(l.val)
	}
}

func (l left[L, R]) Find(func(R) bool) (r R, _ bool) {
	return r, false
}

func (l left[L, R]) Exists(func(R) bool) bool {
	return false
}

func (l left[L, R]) String() string {
	return fmt.Sprint(l.val)
}

func (l left[L, R]) GoString() string {
	return fmt.Sprintf("either.Left(%#v)", l.val)
}

func (l left[L, R]) MarshalLog() any {
	return map[string]any{"left": l.val}
}

func (l left[L, R]) either(L, R) {}

// retypeLeft reinterprets the unused right type without touching the value.
func retypeLeft[L, R, U any](l left[L, R]) left[L, U] {
	return left[L, U]{l.val}
}


// right

func (r right[L, R]) IsLeft() bool  { return false }
func (r right[L, R]) IsRight() bool { return true }

func (r right[L, R]) TakeLeft() (l L, _ bool) {
	return l, false
}

func (r right[L, R]) TakeRight() (R, bool) {
	return r.val, true
}

func (r right[L, R]) LeftOr(l L) L {
	return l
}

func (r right[L, R]) RightOr(R) R {
	return r.val
}

func (r right[L, R]) Fold(_ func(L), onRight func(R)) {
	if onRight != nil {
		onRight(r.val)
	}
}

func (r right[L, R]) Find(predicate func(R) bool) (R, bool) {
	if predicate != nil && predicate(r.val) {
		return r.val, true
	}
	var zero R
	return zero, false
}

func (r right[L, R]) Exists(predicate func(R) bool) bool {
	return predicate != nil && predicate(r.val)
}

func (r right[L, R]) String() string {
	return fmt.Sprint(r.val)
}

func (r right[L, R]) GoString() string {
	return fmt.Sprintf("either.Right(%#v)", r.val)
}

func (r right[L, R]) MarshalLog() any {
	return map[string]any{"right": r.val}
}

func (r right[L, R]) either(L, R) {}

func retypeRight[L, R, U any](r right[L, R]) right[U, R] {
	return right[U, R]{r.val}
}
