package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/tarantool/go-serializer/codec"
)

const defaultEncoding = "UTF-8"

func isUTF8(name string) bool {
	return strings.EqualFold(name, defaultEncoding)
}

// lookupEncoding resolves an IANA charset name into an encoding and its
// canonical name.
func lookupEncoding(name string) (encoding.Encoding, string, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, "", codec.NewInvalidArgumentError("unsupported encoding " + strconv.Quote(name))
	}

	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}

	return enc, canonical, nil
}

// transcodeCharset is the xml.Decoder CharsetReader hook for raw bytes: the
// input is decoded from the charset named by the declaration.
func transcodeCharset(label string, input io.Reader) (io.Reader, error) {
	enc, _, err := lookupEncoding(label)
	if err != nil {
		return nil, err
	}

	return transform.NewReader(input, enc.NewDecoder()), nil
}

// passThrough is the CharsetReader hook for input that is already UTF-8.
func passThrough(_ string, input io.Reader) (io.Reader, error) {
	return input, nil
}

// checkDeclaredEncoding fails when the XML declaration of doc names a charset
// other than readAs. Documents without a declared encoding are accepted.
func checkDeclaredEncoding(doc []byte, readAs string) error {
	decoder := xml.NewDecoder(bytes.NewReader(doc))
	decoder.CharsetReader = passThrough

	token, err := decoder.RawToken()
	if err != nil {
		// Syntax errors are reported by the decoding pass.
		return nil //nolint:nilerr
	}

	inst, ok := token.(xml.ProcInst)
	if !ok || inst.Target != "xml" {
		return nil
	}

	label := pseudoAttr(inst.Inst, "encoding")
	if label == "" {
		return nil
	}

	_, canonical, err := lookupEncoding(label)
	if err != nil {
		return codec.NewSchemaMismatchError("document in "+readAs, "declared encoding "+strconv.Quote(label), err) //nolint:wrapcheck
	}

	if !strings.EqualFold(canonical, readAs) {
		return codec.NewSchemaMismatchError("document in "+readAs, "declared encoding "+canonical, nil) //nolint:wrapcheck
	}

	return nil
}

// pseudoAttr returns the value of a pseudo-attribute of a processing
// instruction, such as encoding in the XML declaration.
func pseudoAttr(inst []byte, name string) string {
	_, rest, ok := bytes.Cut(inst, []byte(name))
	if !ok {
		return ""
	}

	rest = bytes.TrimLeft(rest, " \t\r\n")
	if len(rest) == 0 || rest[0] != '=' {
		return ""
	}

	rest = bytes.TrimLeft(rest[1:], " \t\r\n")
	if len(rest) == 0 || (rest[0] != '"' && rest[0] != '\'') {
		return ""
	}

	value, _, ok := bytes.Cut(rest[1:], rest[:1])
	if !ok {
		return ""
	}

	return string(value)
}
