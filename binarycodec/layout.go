package binarycodec

import (
	"encoding/binary"
	"fmt"

	"github.com/tarantool/go-serializer/codec"
)

// Version is the only layout version this package reads and writes.
const Version byte = 1

// HeaderTag is the tag of the mandatory header field.
const HeaderTag uint64 = 0

// Field is a single tagged field of a payload.
type Field struct {
	Tag   uint64
	Value []byte
}

// Layout is a parsed payload.
type Layout struct {
	Version byte
	Fields  []Field
}

// Header is the decoded value of the header field.
type Header struct {
	ValueEncoding codec.ValueEncoding
	Fingerprint   []byte
}

func (h Header) field() Field {
	value := make([]byte, 0, 1+len(h.Fingerprint))
	value = append(value, byte(h.ValueEncoding))
	value = append(value, h.Fingerprint...)

	return Field{Tag: HeaderTag, Value: value}
}

func errMalformed(expected, found string, cause error) error {
	parent := codec.ErrMalformedPayload
	if cause != nil {
		parent = fmt.Errorf("%w: %w", codec.ErrMalformedPayload, cause)
	}

	return codec.NewSchemaMismatchError(expected, found, parent)
}

func readUvarint(data []byte, what string) (uint64, []byte, error) {
	value, n := binary.Uvarint(data)
	switch {
	case n == 0:
		return 0, nil, errMalformed(what, "end of payload", nil)
	case n < 0:
		return 0, nil, errMalformed(what, "overflowing uvarint", nil)
	case n != uvarintLen(value):
		return 0, nil, errMalformed(what, "non-minimal uvarint", nil)
	}

	return value, data[n:], nil
}

func uvarintLen(value uint64) int {
	n := 1
	for value >= 0x80 {
		value >>= 7
		n++
	}

	return n
}

// ReadLayout parses the version byte and the field sequence of data without
// interpreting field values. Field values alias data.
func ReadLayout(data []byte) (Layout, error) {
	if len(data) == 0 {
		return Layout{}, errMalformed("version byte", "empty payload", nil) //nolint:exhaustruct
	}

	if data[0] != Version {
		return Layout{}, codec.NewSchemaMismatchError( //nolint:exhaustruct
			fmt.Sprintf("version %d", Version),
			fmt.Sprintf("version %d", data[0]),
			nil,
		)
	}

	var (
		rest   = data[1:]
		fields []Field
	)

	for len(rest) > 0 {
		var (
			tag, length uint64
			err         error
		)

		tag, rest, err = readUvarint(rest, "field tag")
		if err != nil {
			return Layout{}, err //nolint:exhaustruct
		}

		if len(fields) > 0 && tag <= fields[len(fields)-1].Tag {
			return Layout{}, errMalformed( //nolint:exhaustruct
				fmt.Sprintf("tag greater than %d", fields[len(fields)-1].Tag),
				fmt.Sprintf("tag %d", tag),
				nil,
			)
		}

		length, rest, err = readUvarint(rest, fmt.Sprintf("length of field %d", tag))
		if err != nil {
			return Layout{}, err //nolint:exhaustruct
		}

		if length > uint64(len(rest)) {
			return Layout{}, errMalformed( //nolint:exhaustruct
				fmt.Sprintf("%d bytes of field %d", length, tag),
				fmt.Sprintf("%d bytes", len(rest)),
				nil,
			)
		}

		fields = append(fields, Field{Tag: tag, Value: rest[:length:length]})
		rest = rest[length:]
	}

	switch {
	case len(fields) == 0:
		return Layout{}, errMalformed("header field", "no fields", nil) //nolint:exhaustruct
	case fields[0].Tag != HeaderTag:
		return Layout{}, errMalformed("header field", fmt.Sprintf("tag %d", fields[0].Tag), nil) //nolint:exhaustruct
	case len(fields[0].Value) == 0:
		return Layout{}, errMalformed("value encoding in header", "empty header", nil) //nolint:exhaustruct
	}

	return Layout{Version: data[0], Fields: fields}, nil
}

// Header decodes the header field.
func (l Layout) Header() (Header, error) {
	if len(l.Fields) == 0 || l.Fields[0].Tag != HeaderTag || len(l.Fields[0].Value) == 0 {
		return Header{}, errMalformed("header field", "none", nil) //nolint:exhaustruct
	}

	value := l.Fields[0].Value

	return Header{
		ValueEncoding: codec.ValueEncoding(value[0]),
		Fingerprint:   value[1:],
	}, nil
}

// Bytes serializes the layout back into a payload.
func (l Layout) Bytes() []byte {
	size := 1
	for _, field := range l.Fields {
		size += uvarintLen(field.Tag) + uvarintLen(uint64(len(field.Value))) + len(field.Value)
	}

	out := make([]byte, 0, size)
	out = append(out, l.Version)

	for _, field := range l.Fields {
		out = binary.AppendUvarint(out, field.Tag)
		out = binary.AppendUvarint(out, uint64(len(field.Value)))
		out = append(out, field.Value...)
	}

	return out
}
