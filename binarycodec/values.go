package binarycodec

import (
	"bytes"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-serializer/codec"
)

// valueEncoding encodes a single field value.
type valueEncoding interface {
	encode(value any) ([]byte, error)
	decode(data []byte, out any) error
}

type msgpackValues struct{}

func (msgpackValues) encode(value any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := msgpack.NewEncoder(&buf)
	encoder.SetSortMapKeys(true)

	if err := encoder.Encode(value); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return buf.Bytes(), nil
}

func (msgpackValues) decode(data []byte, out any) error {
	reader := bytes.NewReader(data)

	decoder := msgpack.NewDecoder(reader)
	decoder.DisallowUnknownFields(true)

	if err := decoder.Decode(out); err != nil {
		return err //nolint:wrapcheck
	}

	if reader.Len() != 0 {
		return fmt.Errorf("%d trailing bytes", reader.Len())
	}

	return nil
}

type cborValues struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func mustCBOR() cborValues {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cbor encoding mode: %s", err))
	}

	dec, err := cbor.DecOptions{ //nolint:exhaustruct
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("cbor decoding mode: %s", err))
	}

	return cborValues{enc: enc, dec: dec}
}

func (c cborValues) encode(value any) ([]byte, error) {
	return c.enc.Marshal(value) //nolint:wrapcheck
}

func (c cborValues) decode(data []byte, out any) error {
	// Unmarshal rejects trailing bytes itself.
	return c.dec.Unmarshal(data, out) //nolint:wrapcheck
}

// cbor modes are immutable and safe for concurrent use.
var cborEncoding = mustCBOR() //nolint:gochecknoglobals

func valueEncodingFor(encoding codec.ValueEncoding) (valueEncoding, bool) {
	switch encoding {
	case codec.ValueEncodingMsgpack:
		return msgpackValues{}, true
	case codec.ValueEncodingCBOR:
		return cborEncoding, true
	default:
		return nil, false
	}
}

// DecodeValue decodes a single field value without a target type, for
// inspection. Maps, slices and scalars come back in the generic form of the
// value encoding.
func DecodeValue(encoding codec.ValueEncoding, data []byte) (any, error) {
	values, ok := valueEncodingFor(encoding)
	if !ok {
		return nil, errUnknownValueEncoding(encoding)
	}

	var out any
	if err := values.decode(data, &out); err != nil {
		return nil, errMalformed("decodable "+encoding.String()+" value", fmt.Sprintf("%d bytes", len(data)), err)
	}

	return out, nil
}

func errUnknownValueEncoding(encoding codec.ValueEncoding) error {
	return errMalformed("known value encoding", encoding.String(), nil)
}
