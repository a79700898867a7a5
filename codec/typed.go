package codec

import (
	"github.com/spf13/afero"
)

// Typed binds a Codec to a Go type and a filesystem.
type Typed[T any] struct {
	codec Codec
	fs    afero.Fs
}

// NewTyped creates a Typed wrapper over codec using the OS filesystem.
func NewTyped[T any](codec Codec) Typed[T] {
	return Typed[T]{
		codec: codec,
		fs:    afero.NewOsFs(),
	}
}

// WithFs returns a copy of t working on fs.
func (t Typed[T]) WithFs(fs afero.Fs) Typed[T] {
	t.fs = fs

	return t
}

func zero[T any]() T {
	var out T
	return out
}

// Marshal encodes value into its text transport form.
func (t Typed[T]) Marshal(value T, opts ...Option) (string, error) {
	if err := CheckValue(value); err != nil {
		return "", err
	}

	return t.codec.MarshalText(value, NewOptions(opts...)) //nolint:wrapcheck
}

// MarshalFile encodes value into the file at path.
func (t Typed[T]) MarshalFile(path string, value T, opts ...Option) error {
	if err := CheckValue(value); err != nil {
		return err
	}

	return t.codec.MarshalFile(t.fs, path, value, NewOptions(opts...)) //nolint:wrapcheck
}

// Unmarshal decodes text into a new T.
func (t Typed[T]) Unmarshal(text string, opts ...Option) (T, error) {
	var out T

	err := t.codec.UnmarshalText(text, &out, NewOptions(opts...))
	if err != nil {
		return zero[T](), err //nolint:wrapcheck
	}

	return out, nil
}

// UnmarshalFile decodes the file at path into a new T.
func (t Typed[T]) UnmarshalFile(path string, opts ...Option) (T, error) {
	var out T

	err := t.codec.UnmarshalFile(t.fs, path, &out, NewOptions(opts...))
	if err != nil {
		return zero[T](), err //nolint:wrapcheck
	}

	return out, nil
}
