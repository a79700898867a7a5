package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"reflect"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/transform"

	"github.com/tarantool/go-serializer/codec"
)

const filePerm fs.FileMode = 0o644

// Codec is the XML codec.Codec implementation.
type Codec struct{}

var _ codec.Codec = Codec{}

// New creates an XML codec.
func New() Codec {
	return Codec{}
}

// Name implements codec.Codec.
func (Codec) Name() string {
	return "xml"
}

// render writes the document in UTF-8, declaring declared as its encoding.
func render(value any, opts codec.Options, declared string) ([]byte, error) {
	if err := codec.CheckValue(value); err != nil {
		return nil, err //nolint:wrapcheck
	}

	var body bytes.Buffer

	encoder := xml.NewEncoder(&body)
	encoder.Indent(opts.Prefix, opts.Indent)

	if err := encoder.Encode(value); err != nil {
		return nil, codec.NewMarshalError(err) //nolint:wrapcheck
	}

	if err := encoder.Close(); err != nil {
		return nil, codec.NewMarshalError(err) //nolint:wrapcheck
	}

	doc, err := declareNamespaces(body.Bytes(), opts.Namespaces)
	if err != nil {
		return nil, err
	}

	if opts.OmitDeclaration {
		return doc, nil
	}

	var out bytes.Buffer

	out.Grow(len(doc) + len(declared) + 40)
	out.WriteString(`<?xml version="1.0" encoding="`)
	out.WriteString(declared)
	out.WriteString(`"?>`)

	if opts.Indent != "" || opts.Prefix != "" {
		out.WriteByte('\n')
	}

	out.Write(doc)

	return out.Bytes(), nil
}

// MarshalText implements codec.Codec.
func (Codec) MarshalText(value any, opts codec.Options) (string, error) {
	doc, err := render(value, opts, defaultEncoding)
	if err != nil {
		return "", err
	}

	return string(doc), nil
}

// MarshalFile implements codec.Codec.
func (Codec) MarshalFile(fsys afero.Fs, path string, value any, opts codec.Options) error {
	enc, name, err := lookupEncoding(opts.Encoding.UnwrapOr(defaultEncoding))
	if err != nil {
		return err
	}

	doc, err := render(value, opts, name)
	if err != nil {
		return err
	}

	if !isUTF8(name) {
		doc, _, err = transform.Bytes(enc.NewEncoder(), doc)
		if err != nil {
			return codec.NewMarshalError(fmt.Errorf("failed to encode as %s: %w", name, err)) //nolint:wrapcheck
		}
	}

	return afero.WriteFile(fsys, path, doc, filePerm) //nolint:wrapcheck
}

// UnmarshalText implements codec.Codec.
func (Codec) UnmarshalText(text string, out any, opts codec.Options) error {
	if err := codec.CheckOut(out); err != nil {
		return err //nolint:wrapcheck
	}

	return decode(strings.NewReader(text), out, opts, passThrough)
}

// UnmarshalFile implements codec.Codec.
func (Codec) UnmarshalFile(fsys afero.Fs, path string, out any, opts codec.Options) error {
	if err := codec.CheckOut(out); err != nil {
		return err //nolint:wrapcheck
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !opts.Encoding.IsSome() {
		return decode(bytes.NewReader(data), out, opts, transcodeCharset)
	}

	enc, name, err := lookupEncoding(opts.Encoding.UnwrapOr(defaultEncoding))
	if err != nil {
		return err
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return codec.NewSchemaMismatchError("text in "+name, "undecodable bytes", err) //nolint:wrapcheck
	}

	if err := checkDeclaredEncoding(decoded, name); err != nil {
		return err
	}

	return decode(bytes.NewReader(decoded), out, opts, passThrough)
}

func decode(
	r io.Reader,
	out any,
	opts codec.Options,
	charset func(label string, input io.Reader) (io.Reader, error),
) error {
	target := reflect.ValueOf(out).Elem()
	expected := rootName(target.Type())

	decoder := xml.NewDecoder(r)
	decoder.Strict = opts.Strict.UnwrapOr(true)
	decoder.DefaultSpace = opts.DefaultNamespace
	decoder.CharsetReader = charset

	start, err := nextStart(decoder)
	if err != nil {
		return err
	}

	if expected.Local != "" && !sameName(expected, start.Name) {
		return codec.NewSchemaMismatchError("root element "+formatName(expected), formatName(start.Name), nil) //nolint:wrapcheck
	}

	decoded := reflect.New(target.Type())
	if err := decoder.DecodeElement(decoded.Interface(), &start); err != nil {
		return codec.NewSchemaMismatchError( //nolint:wrapcheck
			"content of "+formatName(start.Name)+" matching "+target.Type().String(),
			"incompatible content",
			err,
		)
	}

	if err := expectEnd(decoder); err != nil {
		return err
	}

	target.Set(decoded.Elem())

	return nil
}

func nextStart(decoder *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := decoder.Token()
		switch {
		case errors.Is(err, io.EOF):
			return xml.StartElement{}, codec.NewSchemaMismatchError( //nolint:exhaustruct,wrapcheck
				"root element", "end of document", codec.ErrMalformedPayload)
		case err != nil:
			return xml.StartElement{}, codec.NewSchemaMismatchError( //nolint:exhaustruct,wrapcheck
				"well-formed XML", "syntax error", err)
		}

		switch token := token.(type) {
		case xml.StartElement:
			return token, nil
		case xml.CharData:
			if len(bytes.TrimSpace(token)) != 0 {
				return xml.StartElement{}, codec.NewSchemaMismatchError( //nolint:exhaustruct,wrapcheck
					"root element", "text outside of root element", codec.ErrMalformedPayload)
			}
		}
	}
}

func expectEnd(decoder *xml.Decoder) error {
	for {
		token, err := decoder.Token()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return codec.NewSchemaMismatchError("well-formed XML", "syntax error", err) //nolint:wrapcheck
		}

		switch token := token.(type) {
		case xml.StartElement:
			return codec.NewSchemaMismatchError( //nolint:wrapcheck
				"end of document", "second root element "+formatName(token.Name), codec.ErrMalformedPayload)
		case xml.CharData:
			if len(bytes.TrimSpace(token)) != 0 {
				return codec.NewSchemaMismatchError( //nolint:wrapcheck
					"end of document", "text after root element", codec.ErrMalformedPayload)
			}
		}
	}
}

var (
	xmlNameType     = reflect.TypeFor[xml.Name]()
	unmarshalerType = reflect.TypeFor[xml.Unmarshaler]()
)

// rootName returns the element name typ marshals to, or an empty name when it
// can only be known at run time.
func rootName(typ reflect.Type) xml.Name {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if reflect.PointerTo(typ).Implements(unmarshalerType) {
		return xml.Name{} //nolint:exhaustruct
	}

	if typ.Kind() == reflect.Struct {
		if field, ok := typ.FieldByName("XMLName"); ok && field.Type == xmlNameType {
			tag, _, _ := strings.Cut(field.Tag.Get("xml"), ",")
			if tag == "" {
				return xml.Name{} //nolint:exhaustruct
			}

			if space, local, ok := strings.Cut(tag, " "); ok {
				return xml.Name{Space: space, Local: local}
			}

			return xml.Name{Space: "", Local: tag}
		}
	}

	return xml.Name{Space: "", Local: typ.Name()}
}

func sameName(expected, found xml.Name) bool {
	if expected.Local != found.Local {
		return false
	}

	return expected.Space == "" || expected.Space == found.Space
}

func formatName(name xml.Name) string {
	if name.Space == "" {
		return "<" + name.Local + ">"
	}

	return "<" + name.Local + " xmlns=\"" + name.Space + "\">"
}
