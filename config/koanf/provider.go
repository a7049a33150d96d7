package koanf

import (
	"fmt"
	"strconv"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/miruken-go/either"
)

// Load unmarshals the configuration at path into a new T.
// Fields are matched using the `path` struct tag.
// An empty path loads from the root.
func Load[T any](k *koanf.Koanf, path string) either.Either[error, T] {
	return load[T](k, path, false)
}

// LoadFlat is like Load but resolves fields from fully
// qualified `path` tags i.e. `path:"services.customerUrl"`.
func LoadFlat[T any](k *koanf.Koanf, path string) either.Either[error, T] {
	return load[T](k, path, true)
}

// LoadFrom loads p into k and then unmarshals the configuration at path.
// Provider and merge failures, i.e. a MergeStrict type conflict, are left.
func LoadFrom[T any](
	k    *koanf.Koanf,
	p    koanf.Provider,
	pa   koanf.Parser,
	path string,
	opts ...koanf.Option,
) either.Either[error, T] {
	if k == nil {
		panic("k cannot be nil")
	}
	if err := k.Load(p, pa, opts...); err != nil {
		return either.Left[error, T](fmt.Errorf("config: %w", err))
	}
	return Load[T](k, path)
}

// Validated runs the configuration's own validation on a right value.
func Validated[T interface{ Validate() error }](
	e either.Either[error, T],
) either.Either[error, T] {
	return either.FlatMap(e, func(cfg T) either.Either[error, T] {
		if err := cfg.Validate(); err != nil {
			return either.Left[error, T](fmt.Errorf("config: %w", err))
		}
		return either.Right[error](cfg)
	})
}

func load[T any](k *koanf.Koanf, path string, flat bool) either.Either[error, T] {
	if k == nil {
		panic("k cannot be nil")
	}
	if path != "" && !k.Exists(path) {
		return either.Left[error, T](fmt.Errorf("config: path %q not found", path))
	}
	var out T
	if err := k.UnmarshalWithConf(path, &out,
		koanf.UnmarshalConf{Tag: "path", FlatPaths: flat}); err != nil {
		return either.Left[error, T](fmt.Errorf("config: %w", err))
	}
	return either.Right[error](out)
}

// Merge extends the default merge to include slice conversions.
func Merge(src, dest map[string]any) error {
	ConvertSlices(src)
	maps.Merge(src, dest)
	return nil
}

// MergeStrict extends the strict merge to include slice conversions.
func MergeStrict(src, dest map[string]any) error {
	ConvertSlices(src)
	return maps.MergeStrict(src, dest)
}

// ConvertSlices converts maps with all integral keys into a
// slice with corresponding indices.
// returns the slice and true if successful
func ConvertSlices(m map[string]any) (any, bool) {
	var (
		invalid bool
		slice   []any
	)
	for k, v := range m {
		if c, ok := v.(map[string]any); ok {
			if cs, ok := ConvertSlices(c); ok {
				v, m[k] = cs, cs
			}
		}
		if !invalid {
			if i, err := strconv.Atoi(k); err == nil {
				if slice == nil {
					slice = make([]any, len(m))
				}
				if i >= len(slice) {
					ns := make([]any, i+1)
					copy(ns, slice)
					slice = ns
				}
				slice[i] = v
			} else if slice != nil {
				invalid = true
			}
		}
	}
	if slice != nil && !invalid {
		return slice, true
	}
	return nil, false
}
