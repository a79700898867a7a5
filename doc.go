// Package serializer provides a uniform facade over the serialization
// formats of this module, selected by a [Format] tag at call time.
//
// Values can be serialized to a string or a file and read back:
//
//	text, err := serializer.Serialize(person, serializer.XML, codec.WithIndent("", "  "))
//	person, err := serializer.Deserialize[Person](text, serializer.XML)
//
// Both [XML] and [Binary] formats are registered by default. The binary format
// is a versioned tagged-field layout described in the
// [github.com/tarantool/go-serializer/binarycodec] package; XML goes through
// encoding/xml, see [github.com/tarantool/go-serializer/xmlcodec].
//
// Every call is independent: the facade and the codecs keep no state between
// calls and are safe for concurrent use.
package serializer
