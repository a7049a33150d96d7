package either

import "fmt"

// Map (map/fmap)
func Map[L, R, U any](e Either[L, R], f func(R) U) Either[L, U] {
	if e == nil {
		panic("e cannot be nil")
	}
	if f == nil {
		panic("f cannot be nil")
	}
	switch v := e.(type) {
	case right[L, R]:
		return right[L, U]{f(v.val)}
	case left[L, R]:
		return retypeLeft[L, R, U](v)
	default:
		panic(fmt.Sprintf("invalid either: %#v", e))
	}
}

// MapLeft (mapLeft)
func MapLeft[L, R, U any](e Either[L, R], f func(L) U) Either[U, R] {
	if e == nil {
		panic("e cannot be nil")
	}
	if f == nil {
		panic("f cannot be nil")
	}
	switch v := e.(type) {
	case left[L, R]:
		return left[U, R]{f(v.val)}
	case right[L, R]:
		return retypeRight[L, R, U](v)
	default:
		panic(fmt.Sprintf("invalid either: %#v", e))
	}
}

// Bimap (bimap) applies only the mapper matching the held variant.
func Bimap[L, R, A, B any](
	e  Either[L, R],
	fl func(L) A,
	fr func(R) B,
) Either[A, B] {
	if e == nil {
		panic("e cannot be nil")
	}
	if fl == nil || fr == nil {
		panic("f cannot be nil")
	}
	switch v := e.(type) {
	case left[L, R]:
		return left[A, B]{fl(v.val)}
	case right[L, R]:
		return right[A, B]{fr(v.val)}
	default:
		panic(fmt.Sprintf("invalid either: %#v", e))
	}
}

// FlatMap (flatMap/bind/chain/liftM)
func FlatMap[L, R, U any](e Either[L, R], f func(R) Either[L, U]) Either[L, U] {
	if e == nil {
		panic("e cannot be nil")
	}
	if f == nil {
		panic("f cannot be nil")
	}
	switch v := e.(type) {
	case right[L, R]:
		return f(v.val)
	case left[L, R]:
		return retypeLeft[L, R, U](v)
	default:
		panic(fmt.Sprintf("invalid either: %#v", e))
	}
}

// Seq (seq)
func Seq[L, R, U any](e Either[L, R], next Either[L, U]) Either[L, U] {
	return FlatMap(e, func(R) Either[L, U] { return next })
}

// Apply (apply/<*>/ap)
func Apply[L, R, U any](ef Either[L, func(R) U], e Either[L, R]) Either[L, U] {
	return FlatMap(ef, func(f func(R) U) Either[L, U] {
		return Map(e, f)
	})
}

// Swap exchanges the left and right values.
func Swap[L, R any](e Either[L, R]) Either[R, L] {
	if e == nil {
		panic("e cannot be nil")
	}
	switch v := e.(type) {
	case left[L, R]:
		return right[R, L]{v.val}
	case right[L, R]:
		return left[R, L]{v.val}
	default:
		panic(fmt.Sprintf("invalid either: %#v", e))
	}
}

// Reduce (fold/either) collapses both variants into a single value.
func Reduce[L, R, A any](e Either[L, R], fl func(L) A, fr func(R) A) A {
	if e == nil {
		panic("e cannot be nil")
	}
	var a A
	switch v := e.(type) {
	case left[L, R]:
		if fl != nil {
			a = fl(v.val)
		}
	case right[L, R]:
		if fr != nil {
			a = fr(v.val)
		}
	default:
		panic(fmt.Sprintf("invalid either: %#v", e))
	}
	return a
}
