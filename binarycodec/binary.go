package binarycodec

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io/fs"
	"reflect"
	"strconv"

	"github.com/spf13/afero"

	"github.com/tarantool/go-serializer/codec"
	"github.com/tarantool/go-serializer/hasher"
)

const filePerm fs.FileMode = 0o644

// Codec is the binary codec.Codec implementation. The zero value is ready to
// use and fingerprints schemas with XXH64.
type Codec struct {
	hasher hasher.Hasher
}

var _ codec.Codec = Codec{} //nolint:exhaustruct

// New creates a binary codec fingerprinting schemas with XXH64.
func New() Codec {
	return Codec{
		hasher: hasher.NewXXHash64Hasher(),
	}
}

// WithHasher returns a copy of the codec fingerprinting schemas with h.
// Payloads can only be decoded by a codec using the same hasher. A nil h
// selects the default XXH64 hasher.
func (c Codec) WithHasher(h hasher.Hasher) Codec {
	c.hasher = h

	return c
}

// Name implements codec.Codec.
func (c Codec) Name() string {
	return "binary"
}

func (c Codec) fingerprint(s schema) ([]byte, error) {
	h := c.hasher
	if h == nil {
		h = hasher.NewXXHash64Hasher()
	}

	digest, err := h.Hash([]byte(s.describe()))
	if err != nil {
		return nil, fmt.Errorf("failed to compute schema fingerprint: %w", err)
	}

	return digest, nil
}

// Marshal encodes value into a raw payload.
func (c Codec) Marshal(value any, opts codec.Options) ([]byte, error) {
	if err := codec.CheckValue(value); err != nil {
		return nil, err //nolint:wrapcheck
	}

	values, ok := valueEncodingFor(opts.ValueEncoding)
	if !ok {
		return nil, codec.NewInvalidArgumentError("unknown value encoding " + opts.ValueEncoding.String())
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, codec.NewInvalidArgumentError("unable to serialize nil value")
		}

		rv = rv.Elem()
	}

	sch, err := schemaOf(rv.Type())
	if err != nil {
		return nil, err
	}

	fingerprint, err := c.fingerprint(sch)
	if err != nil {
		return nil, err
	}

	layout := Layout{
		Version: Version,
		Fields:  make([]Field, 0, len(sch.fields)+1),
	}
	layout.Fields = append(layout.Fields, Header{ValueEncoding: opts.ValueEncoding, Fingerprint: fingerprint}.field())

	if !sch.structured {
		data, err := values.encode(rv.Interface())
		if err != nil {
			return nil, codec.NewMarshalError(err) //nolint:wrapcheck
		}

		layout.Fields = append(layout.Fields, Field{Tag: scalarTag, Value: data})

		return layout.Bytes(), nil
	}

	for _, f := range sch.fields {
		data, err := values.encode(rv.Field(f.index).Interface())
		if err != nil {
			return nil, codec.NewMarshalError(fmt.Errorf("field %s: %w", f.name, err)) //nolint:wrapcheck
		}

		layout.Fields = append(layout.Fields, Field{Tag: f.tag, Value: data})
	}

	return layout.Bytes(), nil
}

// Unmarshal decodes a raw payload into out. On failure out is not modified.
func (c Codec) Unmarshal(data []byte, out any, opts codec.Options) error {
	if err := codec.CheckOut(out); err != nil {
		return err //nolint:wrapcheck
	}

	if opts.MaxPayloadSize > 0 && len(data) > opts.MaxPayloadSize {
		return errOversize(len(data), opts.MaxPayloadSize)
	}

	layout, err := ReadLayout(data)
	if err != nil {
		return err
	}

	header, err := layout.Header()
	if err != nil {
		return err
	}

	values, ok := valueEncodingFor(header.ValueEncoding)
	if !ok {
		return errUnknownValueEncoding(header.ValueEncoding)
	}

	target := reflect.ValueOf(out).Elem()

	sch, err := schemaOf(baseType(target.Type()))
	if err != nil {
		return err
	}

	fingerprint, err := c.fingerprint(sch)
	if err != nil {
		return err
	}

	if !bytes.Equal(fingerprint, header.Fingerprint) {
		return codec.NewSchemaMismatchError( //nolint:wrapcheck
			fmt.Sprintf("fingerprint %s of %s", hex.EncodeToString(fingerprint), sch.typ),
			"fingerprint "+hex.EncodeToString(header.Fingerprint),
			nil,
		)
	}

	if !sch.structured && (len(layout.Fields) != 2 || layout.Fields[1].Tag != scalarTag) {
		return errMalformed(fmt.Sprintf("single field %d", scalarTag), fmt.Sprintf("%d value fields", len(layout.Fields)-1), nil)
	}

	decoded := reflect.New(sch.typ).Elem()

	for _, field := range layout.Fields[1:] {
		var dst reflect.Value

		switch sf, known := sch.field(field.Tag); {
		case !sch.structured && field.Tag == scalarTag:
			dst = decoded
		case sch.structured && known:
			dst = decoded.Field(sf.index)
		default:
			return errMalformed(fmt.Sprintf("one of tags %v", sch.tags()), "tag "+strconv.FormatUint(field.Tag, 10), nil)
		}

		if err := values.decode(field.Value, dst.Addr().Interface()); err != nil {
			return codec.NewSchemaMismatchError( //nolint:wrapcheck
				fmt.Sprintf("%s value of field %d as %s", header.ValueEncoding, field.Tag, dst.Type()),
				fmt.Sprintf("%d undecodable bytes", len(field.Value)),
				err,
			)
		}
	}

	assign(target, decoded)

	return nil
}

// assign stores base into target, allocating intermediate pointers when the
// target type is a pointer chain ending in base's type.
func assign(target, base reflect.Value) {
	for target.Kind() == reflect.Pointer {
		ptr := reflect.New(target.Type().Elem())
		target.Set(ptr)
		target = ptr.Elem()
	}

	target.Set(base)
}

func errOversize(size, limit int) error {
	return errMalformed(fmt.Sprintf("at most %d bytes", limit), fmt.Sprintf("%d bytes", size), nil)
}

// MarshalText implements codec.Codec. The payload is wrapped in base64.
func (c Codec) MarshalText(value any, opts codec.Options) (string, error) {
	data, err := c.Marshal(value, opts)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// UnmarshalText implements codec.Codec.
func (c Codec) UnmarshalText(text string, out any, opts codec.Options) error {
	if opts.MaxPayloadSize > 0 && base64.StdEncoding.DecodedLen(len(text)) > opts.MaxPayloadSize {
		return errOversize(base64.StdEncoding.DecodedLen(len(text)), opts.MaxPayloadSize)
	}

	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return errMalformed("base64 text", "invalid base64", err)
	}

	return c.Unmarshal(data, out, opts)
}

// MarshalFile implements codec.Codec. The file holds the raw payload.
func (c Codec) MarshalFile(fsys afero.Fs, path string, value any, opts codec.Options) error {
	data, err := c.Marshal(value, opts)
	if err != nil {
		return err
	}

	return afero.WriteFile(fsys, path, data, filePerm) //nolint:wrapcheck
}

// UnmarshalFile implements codec.Codec.
func (c Codec) UnmarshalFile(fsys afero.Fs, path string, out any, opts codec.Options) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if opts.MaxPayloadSize > 0 && info.Size() > int64(opts.MaxPayloadSize) {
		return errMalformed(fmt.Sprintf("at most %d bytes", opts.MaxPayloadSize), fmt.Sprintf("%d bytes", info.Size()), nil)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return c.Unmarshal(data, out, opts)
}
