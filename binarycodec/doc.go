// Package binarycodec implements a versioned, self-describing tagged-field
// binary codec.
//
// # Layout
//
// A payload is a version byte followed by a sequence of fields:
//
//	payload := version field*
//	version := 0x01
//	field   := uvarint(tag) uvarint(length) byte[length]
//
// Tags are strictly ascending and encoded minimally. Tag 0 is the header
// and must come first; its value is one byte naming the value encoding
// (1 = MessagePack, 2 = CBOR) followed by the schema fingerprint of the
// encoded type.
//
// For struct types every exported field is carried in its own field. The tag
// comes from the `binary:"N"` struct tag (N >= 1) or, when absent, from the
// 1-based position of the field among the exported fields of the struct.
// `binary:"-"` excludes a field. Any other type is carried as a single field
// with tag 1. Field values are encoded with the value encoding named in the
// header; both encodings are deterministic, so equal values always produce
// identical payloads.
//
// # Safety
//
// Decoding never instantiates types named by the payload: the target type is
// always the one supplied by the caller. Wrong versions, unknown or
// out-of-order tags, truncated data, trailing bytes, fingerprint mismatches
// and oversized payloads are rejected with a [codec.SchemaMismatchError] and
// the output value is left untouched.
//
// The text form of a payload is standard padded base64; files hold raw bytes.
package binarycodec
