package serializer

import (
	"strconv"
	"strings"

	"github.com/tarantool/go-serializer/codec"
)

// Format selects the codec used by the facade.
type Format int

const (
	// Binary is the versioned tagged-field binary format, base64 wrapped in text.
	Binary Format = iota + 1
	// XML is the encoding/xml based format.
	XML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case Binary:
		return "binary"
	case XML:
		return "xml"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFormat converts a format name into a Format. Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "binary":
		return Binary, nil
	case "xml":
		return XML, nil
	default:
		return 0, codec.NewInvalidArgumentError("unknown format " + strconv.Quote(name))
	}
}

func errUnknownFormat(format Format) error {
	return codec.NewInvalidArgumentError("invalid formatter option " + format.String())
}
