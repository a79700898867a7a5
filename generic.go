package serializer

import (
	"github.com/tarantool/go-serializer/codec"
)

var defaultSerializer = New() //nolint:gochecknoglobals

// Default returns the Serializer used by the package-level functions. It
// works on the OS filesystem and does not log.
func Default() *Serializer {
	return defaultSerializer
}

func zero[T any]() T {
	var out T
	return out
}

// Serialize encodes value into the text form of format.
func Serialize[T any](value T, format Format, opts ...codec.Option) (string, error) {
	return defaultSerializer.Serialize(value, format, opts...)
}

// SerializeToFile encodes value into the file at path.
func SerializeToFile[T any](value T, format Format, path string, opts ...codec.Option) error {
	return defaultSerializer.SerializeToFile(value, format, path, opts...)
}

// Deserialize decodes text in format into a new T.
func Deserialize[T any](text string, format Format, opts ...codec.Option) (T, error) {
	return DeserializeWith[T](defaultSerializer, text, format, opts...)
}

// DeserializeFile decodes the file at path in format into a new T.
func DeserializeFile[T any](path string, format Format, opts ...codec.Option) (T, error) {
	return DeserializeFileWith[T](defaultSerializer, path, format, opts...)
}

// DeserializeWith is Deserialize over a custom Serializer.
func DeserializeWith[T any](s *Serializer, text string, format Format, opts ...codec.Option) (T, error) {
	var out T

	if err := s.Deserialize(text, format, &out, opts...); err != nil {
		return zero[T](), err
	}

	return out, nil
}

// DeserializeFileWith is DeserializeFile over a custom Serializer.
func DeserializeFileWith[T any](s *Serializer, path string, format Format, opts ...codec.Option) (T, error) {
	var out T

	if err := s.DeserializeFile(path, format, &out, opts...); err != nil {
		return zero[T](), err
	}

	return out, nil
}
