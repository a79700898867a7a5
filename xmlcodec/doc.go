// Package xmlcodec implements codec.Codec on top of encoding/xml.
//
// Only exported struct fields take part in serialization: unexported state
// is silently omitted on write and left at its zero value on read. Field
// mapping follows the encoding/xml `xml` struct tags.
//
// Text input and output are always UTF-8: a Go string is already decoded, so
// the charset named by the declaration of a text document is ignored. Files
// are transcoded to the charset selected with [codec.WithEncoding] and the
// XML declaration names that charset. On read, a file is decoded from the
// charset declared in the document, resolved through the IANA registry. When
// [codec.WithEncoding] is given the file is decoded from that charset instead,
// and a declaration naming any other charset, UTF-8 included, is a schema
// mismatch. Charsets that are not ASCII-compatible (UTF-16) can only be read
// when the charset is passed with [codec.WithEncoding].
//
// The root element must carry the name the target type marshals to: the
// XMLName tag when present, the type name otherwise.
package xmlcodec
