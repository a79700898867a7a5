package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tarantool/go-serializer/codec"
)

// declareNamespaces adds xmlns attributes to the root start tag of doc, which
// must be encoding/xml output.
func declareNamespaces(doc []byte, namespaces []codec.Namespace) ([]byte, error) {
	if len(namespaces) == 0 {
		return doc, nil
	}

	open := bytes.IndexByte(doc, '<')
	if open < 0 {
		return doc, nil
	}

	nameEnd := open + 1
	for nameEnd < len(doc) && !isTagNameEnd(doc[nameEnd]) {
		nameEnd++
	}

	tagEnd := bytes.IndexByte(doc[nameEnd:], '>')
	if tagEnd < 0 {
		return doc, nil
	}

	rootTag := doc[open : nameEnd+tagEnd]

	var attrs bytes.Buffer

	seen := make(map[string]bool, len(namespaces))

	for _, ns := range namespaces {
		if ns.Prefix != "" && !isNCName(ns.Prefix) {
			return nil, codec.NewInvalidArgumentError("invalid namespace prefix " + strconv.Quote(ns.Prefix))
		}

		if seen[ns.Prefix] {
			return nil, codec.NewInvalidArgumentError("namespace prefix " + strconv.Quote(ns.Prefix) + " declared twice")
		}

		seen[ns.Prefix] = true

		attr := "xmlns"
		if ns.Prefix != "" {
			attr += ":" + ns.Prefix
		}

		var uri bytes.Buffer
		if err := xml.EscapeText(&uri, []byte(ns.URI)); err != nil {
			return nil, codec.NewMarshalError(err) //nolint:wrapcheck
		}

		// The encoder already declared the default namespace of an XMLName tag.
		if existing, ok := attrValue(rootTag, attr); ok {
			if existing != uri.String() {
				return nil, codec.NewInvalidArgumentError(fmt.Sprintf(
					"namespace %s=%q conflicts with %q declared by the root element", attr, ns.URI, existing))
			}

			continue
		}

		attrs.WriteByte(' ')
		attrs.WriteString(attr)
		attrs.WriteString(`="`)
		attrs.Write(uri.Bytes())
		attrs.WriteByte('"')
	}

	out := make([]byte, 0, len(doc)+attrs.Len())
	out = append(out, doc[:nameEnd]...)
	out = append(out, attrs.Bytes()...)
	out = append(out, doc[nameEnd:]...)

	return out, nil
}

// attrValue returns the raw value of attribute name in an encoding/xml start
// tag, which always quotes values with double quotes.
func attrValue(tag []byte, name string) (string, bool) {
	_, rest, ok := bytes.Cut(tag, []byte(" "+name+`="`))
	if !ok {
		return "", false
	}

	value, _, ok := bytes.Cut(rest, []byte(`"`))
	if !ok {
		return "", false
	}

	return string(value), true
}

func isTagNameEnd(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '>', '/':
		return true
	default:
		return false
	}
}

func isNCName(name string) bool {
	if strings.ContainsAny(name, ": \t\r\n") {
		return false
	}

	for i, r := range name {
		switch {
		case unicode.IsLetter(r), r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return false
		}
	}

	return true
}
