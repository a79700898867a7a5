package codec

import (
	"strconv"
	"strings"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-serializer/internal/options"
)

// DefaultMaxPayloadSize bounds the payloads accepted by binary decoders.
const DefaultMaxPayloadSize = 64 << 20

// Namespace is an XML namespace declaration put on the root element.
// An empty Prefix declares the default namespace.
type Namespace struct {
	Prefix string `yaml:"prefix"`
	URI    string `yaml:"uri"`
}

// ValueEncoding selects how binary field values are encoded.
type ValueEncoding uint8

const (
	// ValueEncodingMsgpack encodes field values with MessagePack.
	ValueEncodingMsgpack ValueEncoding = 1
	// ValueEncodingCBOR encodes field values with deterministic CBOR.
	ValueEncodingCBOR ValueEncoding = 2
)

// String implements fmt.Stringer.
func (e ValueEncoding) String() string {
	switch e {
	case ValueEncodingMsgpack:
		return "msgpack"
	case ValueEncodingCBOR:
		return "cbor"
	default:
		return "ValueEncoding(" + strconv.Itoa(int(e)) + ")"
	}
}

// ParseValueEncoding converts a name produced by ValueEncoding.String back.
func ParseValueEncoding(name string) (ValueEncoding, error) {
	switch strings.ToLower(name) {
	case "msgpack":
		return ValueEncodingMsgpack, nil
	case "cbor":
		return ValueEncodingCBOR, nil
	default:
		return 0, NewInvalidArgumentError("unknown value encoding " + strconv.Quote(name))
	}
}

// Options is the configuration bundle forwarded to codecs.
// The XML codec ignores binary fields and vice versa.
type Options struct {
	// Namespaces are declared on the XML root element in the given order.
	Namespaces []Namespace
	// Prefix and Indent configure XML writer indentation.
	Prefix string
	Indent string
	// OmitDeclaration suppresses the XML declaration.
	OmitDeclaration bool
	// Encoding is the IANA charset name used for XML files.
	Encoding option.Generic[string]
	// Strict toggles strict XML parsing, on by default.
	Strict option.Generic[bool]
	// DefaultNamespace is applied to unqualified XML elements while reading.
	DefaultNamespace string

	// ValueEncoding selects the binary field value encoding.
	ValueEncoding ValueEncoding
	// MaxPayloadSize bounds binary payloads accepted by the decoder.
	MaxPayloadSize int
}

// Option configures Options.
type Option = options.OptionCallback[Options]

// DefaultOptions returns the codec defaults.
func DefaultOptions() Options {
	return Options{
		Namespaces:       nil,
		Prefix:           "",
		Indent:           "",
		OmitDeclaration:  false,
		Encoding:         option.None[string](),
		Strict:           option.None[bool](),
		DefaultNamespace: "",
		ValueEncoding:    ValueEncodingMsgpack,
		MaxPayloadSize:   DefaultMaxPayloadSize,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	return options.ApplyOptions[Options](DefaultOptions, opts)
}

// WithNamespace declares a single XML namespace.
func WithNamespace(prefix, uri string) Option {
	return func(opts *Options) {
		opts.Namespaces = append(opts.Namespaces, Namespace{Prefix: prefix, URI: uri})
	}
}

// WithNamespaces declares XML namespaces.
func WithNamespaces(namespaces ...Namespace) Option {
	return func(opts *Options) {
		opts.Namespaces = append(opts.Namespaces, namespaces...)
	}
}

// WithIndent makes the XML writer put each element on a new line, starting
// with prefix and followed by copies of indent per nesting level.
func WithIndent(prefix, indent string) Option {
	return func(opts *Options) {
		opts.Prefix = prefix
		opts.Indent = indent
	}
}

// WithoutDeclaration suppresses the XML declaration.
func WithoutDeclaration() Option {
	return func(opts *Options) {
		opts.OmitDeclaration = true
	}
}

// WithEncoding sets the charset used for XML files.
func WithEncoding(name string) Option {
	return func(opts *Options) {
		opts.Encoding = option.Some(name)
	}
}

// WithStrict toggles strict XML parsing.
func WithStrict(strict bool) Option {
	return func(opts *Options) {
		opts.Strict = option.Some(strict)
	}
}

// WithDefaultNamespace sets the namespace of unqualified elements while reading XML.
func WithDefaultNamespace(uri string) Option {
	return func(opts *Options) {
		opts.DefaultNamespace = uri
	}
}

// WithValueEncoding selects the binary field value encoding.
func WithValueEncoding(encoding ValueEncoding) Option {
	return func(opts *Options) {
		opts.ValueEncoding = encoding
	}
}

// WithMaxPayloadSize bounds the binary payloads accepted by the decoder.
func WithMaxPayloadSize(size int) Option {
	return func(opts *Options) {
		opts.MaxPayloadSize = size
	}
}
