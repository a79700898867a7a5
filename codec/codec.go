// Package codec defines the contract shared by the serialization formats:
// the Codec interface, the options bundle forwarded by the facade and the
// error taxonomy.
package codec

import (
	"reflect"

	"github.com/spf13/afero"
)

// Codec is a paired serialize/deserialize strategy for one wire format.
//
// Implementations hold no state between calls and must be safe for
// concurrent use.
type Codec interface {
	// Name returns the codec name used in diagnostics.
	Name() string

	// MarshalText encodes value into its text transport form.
	MarshalText(value any, opts Options) (string, error)
	// MarshalFile encodes value into a newly created (or truncated) file.
	MarshalFile(fs afero.Fs, path string, value any, opts Options) error

	// UnmarshalText decodes text produced by MarshalText into out,
	// which must be a non-nil pointer.
	UnmarshalText(text string, out any, opts Options) error
	// UnmarshalFile decodes the file produced by MarshalFile into out,
	// which must be a non-nil pointer.
	UnmarshalFile(fs afero.Fs, path string, out any, opts Options) error
}

// IsNil reports whether value is nil or a nil pointer, map, slice,
// interface, func or chan.
func IsNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// CheckValue returns an invalid argument error for nil values.
func CheckValue(value any) error {
	if IsNil(value) {
		return NewInvalidArgumentError("unable to serialize nil value")
	}

	return nil
}

// CheckOut returns an invalid argument error unless out is a non-nil pointer.
func CheckOut(out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return NewInvalidArgumentError("output must be a non-nil pointer, got " + describe(out))
	}

	return nil
}

func describe(value any) string {
	if value == nil {
		return "nil"
	}

	return reflect.TypeOf(value).String()
}
