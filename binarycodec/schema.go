package binarycodec

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/tarantool/go-serializer/codec"
)

const (
	structTag = "binary"
	// scalarTag carries values of non-struct types.
	scalarTag uint64 = 1
)

type schemaField struct {
	tag   uint64
	index int
	name  string
}

// schema is the tag assignment of a type. It is derived on every call,
// nothing is cached between calls.
type schema struct {
	typ        reflect.Type
	structured bool
	fields     []schemaField
}

func baseType(typ reflect.Type) reflect.Type {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ
}

func schemaOf(typ reflect.Type) (schema, error) {
	if typ.Kind() != reflect.Struct || !hasExportedFields(typ) {
		return schema{typ: typ, structured: false, fields: nil}, nil
	}

	var (
		fields   []schemaField
		position uint64
		seen     = make(map[uint64]string)
	)

	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		position++

		tag := position

		switch value, ok := field.Tag.Lookup(structTag); {
		case !ok:
		case value == "-":
			continue
		default:
			parsed, err := strconv.ParseUint(value, 10, 64)
			if err != nil || parsed == HeaderTag {
				return schema{}, codec.NewInvalidArgumentError(fmt.Sprintf( //nolint:exhaustruct
					"field %s.%s: binary tag must be a positive integer, got %q", typ, field.Name, value))
			}

			tag = parsed
		}

		if other, ok := seen[tag]; ok {
			return schema{}, codec.NewInvalidArgumentError(fmt.Sprintf( //nolint:exhaustruct
				"fields %s.%s and %s.%s share binary tag %d", typ, other, typ, field.Name, tag))
		}

		seen[tag] = field.Name
		fields = append(fields, schemaField{tag: tag, index: i, name: field.Name})
	}

	slices.SortFunc(fields, func(a, b schemaField) int {
		switch {
		case a.tag < b.tag:
			return -1
		case a.tag > b.tag:
			return 1
		default:
			return 0
		}
	})

	return schema{typ: typ, structured: true, fields: fields}, nil
}

func (s schema) field(tag uint64) (schemaField, bool) {
	idx, found := slices.BinarySearchFunc(s.fields, tag, func(f schemaField, tag uint64) int {
		switch {
		case f.tag < tag:
			return -1
		case f.tag > tag:
			return 1
		default:
			return 0
		}
	})
	if !found {
		return schemaField{}, false //nolint:exhaustruct
	}

	return s.fields[idx], true
}

func (s schema) tags() []uint64 {
	if !s.structured {
		return []uint64{scalarTag}
	}

	out := make([]uint64, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, f.tag)
	}

	return out
}

// describe returns the canonical shape description the fingerprint is
// computed from. Top-level fields are identified by tag, nested struct
// fields by name, matching how the value encodings address them.
func (s schema) describe() string {
	if !s.structured {
		return describeType(s.typ, nil)
	}

	var b strings.Builder

	b.WriteString("fields{")

	for _, f := range s.fields {
		b.WriteString(strconv.FormatUint(f.tag, 10))
		b.WriteByte(':')
		b.WriteString(describeType(s.typ.Field(f.index).Type, nil))
		b.WriteByte(';')
	}

	b.WriteByte('}')

	return b.String()
}

func hasExportedFields(typ reflect.Type) bool {
	for i := range typ.NumField() {
		if typ.Field(i).IsExported() {
			return true
		}
	}

	return false
}

func describeType(typ reflect.Type, visiting map[reflect.Type]bool) string {
	switch typ.Kind() { //nolint:exhaustive
	case reflect.Pointer:
		return "*" + describeType(typ.Elem(), visiting)
	case reflect.Slice:
		return "[]" + describeType(typ.Elem(), visiting)
	case reflect.Array:
		return "[" + strconv.Itoa(typ.Len()) + "]" + describeType(typ.Elem(), visiting)
	case reflect.Map:
		return "map[" + describeType(typ.Key(), visiting) + "]" + describeType(typ.Elem(), visiting)
	case reflect.Struct:
		if !hasExportedFields(typ) {
			// Opaque structs (time.Time and friends) encode themselves.
			return typ.String()
		}

		if visiting[typ] {
			return "recursive(" + typ.String() + ")"
		}

		if visiting == nil {
			visiting = make(map[reflect.Type]bool)
		}

		visiting[typ] = true
		defer delete(visiting, typ)

		var b strings.Builder

		b.WriteString("struct{")

		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}

			b.WriteString(field.Name)
			b.WriteByte(':')
			b.WriteString(describeType(field.Type, visiting))
			b.WriteByte(';')
		}

		b.WriteByte('}')

		return b.String()
	default:
		return typ.Kind().String()
	}
}
