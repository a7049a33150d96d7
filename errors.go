package either

import "github.com/hashicorp/go-multierror"

// FromError returns Left(err) if err is not nil, otherwise Right(value).
func FromError[R any](value R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](value)
}

// Try runs fn and captures its outcome.
func Try[R any](fn func() (R, error)) Either[error, R] {
	if fn == nil {
		panic("fn cannot be nil")
	}
	value, err := fn()
	return FromError(value, err)
}

// Unwrap returns the conventional Go (value, error) pair.
func Unwrap[R any](e Either[error, R]) (R, error) {
	if e == nil {
		panic("e cannot be nil")
	}
	if err, ok := e.TakeLeft(); ok {
		var zero R
		return zero, err
	}
	r, _ := e.TakeRight()
	return r, nil
}

// Collect gathers all right values in order.
// If any left is present, every left error is aggregated
// into a single *multierror.Error and the rights are dropped.
func Collect[R any](es ...Either[error, R]) Either[error, []R] {
	var (
		errs   error
		values = make([]R, 0, len(es))
	)
	for _, e := range es {
		if e == nil {
			panic("e cannot be nil")
		}
		e.Fold(
			func(err error) {
				errs = multierror.Append(errs, err)
			},
			func(r R) {
				values = append(values, r)
			})
	}
	if errs != nil {
		return Left[error, []R](errs)
	}
	return Right[error](values)
}

// Partition splits the values by variant preserving order.
func Partition[L, R any](es ...Either[L, R]) (lefts []L, rights []R) {
	for _, e := range es {
		if e == nil {
			panic("e cannot be nil")
		}
		e.Fold(
			func(l L) { lefts = append(lefts, l) },
			func(r R) { rights = append(rights, r) })
	}
	return
}
