package play

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	play "github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/miruken-go/either"
)

type (
	// TypeRules express the validation constraints for a type
	// without depending on validation struct tags.
	TypeRules struct {
		Type        any
		Constraints map[string]string
	}

	// Rules express the validation constraints for a set of types.
	Rules []TypeRules

	// Validator checks values using the go playground validator.
	// https://github.com/go-playground/validator/
	Validator struct {
		validate   *play.Validate
		translator ut.Translator
	}

	// FieldError reports a single failing field.
	FieldError struct {
		Path string
		Err  error
	}
)


// FieldError

func (e *FieldError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}


// Validator

// New creates a Validator registering the supplied rules.
// configure may customize the underlying validator and
// translator, if present, is used to render messages.
func New(
	rules      Rules,
	configure  func(*play.Validate) error,
	translator ut.Translator,
) (*Validator, error) {
	validate := play.New()
	if configure != nil {
		if err := configure(validate); err != nil {
			return nil, err
		}
	}
	for _, rule := range rules {
		validate.RegisterStructValidationMapRules(rule.Constraints, rule.Type)
	}
	return &Validator{validate, translator}, nil
}

// Validate returns the underlying go playground validator.
func (v *Validator) Validate() *play.Validate {
	return v.validate
}

func (v *Validator) check(target any) error {
	if !isStruct(target) {
		return nil
	}
	if err := v.validate.Struct(target); err != nil {
		var fieldErrors play.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return err
		}
		if v.translator == nil {
			return v.addErrors(fieldErrors)
		}
		return v.translateErrors(fieldErrors)
	}
	return nil
}

func (v *Validator) addErrors(
	fieldErrors play.ValidationErrors,
) error {
	var errs *multierror.Error
	for _, err := range fieldErrors {
		errs = multierror.Append(errs,
			&FieldError{Path: fieldPath(err.StructNamespace()), Err: err})
	}
	return errs
}

func (v *Validator) translateErrors(
	fieldErrors play.ValidationErrors,
) error {
	var errs *multierror.Error
	for _, err := range fieldErrors {
		errs = multierror.Append(errs, &FieldError{
			Path: fieldPath(err.StructNamespace()),
			Err:  errors.New(err.Translate(v.translator)),
		})
	}
	return errs
}


// Check returns value on the right if it satisfies its constraints.
// Otherwise, a *multierror.Error of *FieldError is returned on the left.
// Values that are not structs, including nil pointers, are always right.
func Check[T any](v *Validator, value T) either.Either[error, T] {
	if v == nil {
		panic("v cannot be nil")
	}
	if err := v.check(value); err != nil {
		return either.Left[error, T](err)
	}
	return either.Right[error](value)
}

// Type is a helper function to define the constraints for a type.
func Type[T any](constraints map[string]string) TypeRules {
	var t T
	return TypeRules{Type: t, Constraints: constraints}
}

// fieldPath drops the root struct name from a namespace.
func fieldPath(ns string) string {
	if parts := strings.SplitN(ns, ".", 2); len(parts) > 1 {
		return parts[1]
	}
	return ""
}

func isStruct(val any) bool {
	if val == nil {
		return false
	}
	v := reflect.ValueOf(val)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return v.Kind() == reflect.Struct
}
