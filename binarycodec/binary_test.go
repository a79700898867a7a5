package binarycodec_test

import (
	"encoding/base64"
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-serializer/binarycodec"
	"github.com/tarantool/go-serializer/codec"
	"github.com/tarantool/go-serializer/hasher"
)

type Person struct {
	Name string `xml:"name"`
	Age  int    `xml:"age"`
}

type Address struct {
	City  string
	Lines []string
}

type Profile struct {
	ID      uint64
	Person  Person
	Home    *Address
	Labels  map[string]int
	Ratings []float64
	Active  bool
	note    string
}

type Tagged struct {
	Late  string `binary:"5"`
	Early int    `binary:"2"`
	Skip  string `binary:"-"`
}

var valueEncodings = []codec.ValueEncoding{ //nolint:gochecknoglobals
	codec.ValueEncodingMsgpack,
	codec.ValueEncodingCBOR,
}

func ada() Person {
	return Person{Name: "Ada", Age: 37}
}

func marshal(t *testing.T, value any, opts ...codec.Option) []byte {
	t.Helper()

	data, err := binarycodec.New().Marshal(value, codec.NewOptions(opts...))
	require.NoError(t, err)

	return data
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	profile := Profile{
		ID:      42,
		Person:  ada(),
		Home:    &Address{City: "London", Lines: []string{"12 St James's Square"}},
		Labels:  map[string]int{"math": 1, "poetry": 2},
		Ratings: []float64{4.5, 5},
		Active:  true,
		note:    "",
	}

	for _, encoding := range valueEncodings {
		t.Run(encoding.String(), func(t *testing.T) {
			t.Parallel()

			c := binarycodec.New()
			opts := codec.NewOptions(codec.WithValueEncoding(encoding))

			text, err := c.MarshalText(profile, opts)
			require.NoError(t, err)

			var decoded Profile
			require.NoError(t, c.UnmarshalText(text, &decoded, opts))
			assert.Equal(t, profile, decoded)
		})
	}
}

func TestCodec_RoundTrip_Scalars(t *testing.T) {
	t.Parallel()

	for _, encoding := range valueEncodings {
		t.Run(encoding.String(), func(t *testing.T) {
			t.Parallel()

			c := binarycodec.New()
			opts := codec.NewOptions(codec.WithValueEncoding(encoding))

			text, err := c.MarshalText("hello", opts)
			require.NoError(t, err)

			var str string
			require.NoError(t, c.UnmarshalText(text, &str, opts))
			assert.Equal(t, "hello", str)

			text, err = c.MarshalText([]int{3, 1, 2}, opts)
			require.NoError(t, err)

			var ints []int
			require.NoError(t, c.UnmarshalText(text, &ints, opts))
			assert.Equal(t, []int{3, 1, 2}, ints)

			text, err = c.MarshalText(map[string]bool{"b": true, "a": false}, opts)
			require.NoError(t, err)

			var set map[string]bool
			require.NoError(t, c.UnmarshalText(text, &set, opts))
			assert.Equal(t, map[string]bool{"b": true, "a": false}, set)
		})
	}
}

func TestCodec_RoundTrip_Pointer(t *testing.T) {
	t.Parallel()

	c := binarycodec.New()
	person := ada()

	text, err := c.MarshalText(&person, codec.NewOptions())
	require.NoError(t, err)

	var decoded *Person
	require.NoError(t, c.UnmarshalText(text, &decoded, codec.NewOptions()))
	require.NotNil(t, decoded)
	assert.Equal(t, person, *decoded)

	// Pointer and value share the wire form.
	var value Person
	require.NoError(t, c.UnmarshalText(text, &value, codec.NewOptions()))
	assert.Equal(t, person, value)
}

func TestCodec_UnexportedFieldsOmitted(t *testing.T) {
	t.Parallel()

	c := binarycodec.New()
	profile := Profile{ID: 1, note: "secret"} //nolint:exhaustruct

	text, err := c.MarshalText(profile, codec.NewOptions())
	require.NoError(t, err)

	var decoded Profile
	require.NoError(t, c.UnmarshalText(text, &decoded, codec.NewOptions()))
	assert.Equal(t, uint64(1), decoded.ID)
	assert.Empty(t, decoded.note)
}

func TestCodec_Deterministic(t *testing.T) {
	t.Parallel()

	for _, encoding := range valueEncodings {
		t.Run(encoding.String(), func(t *testing.T) {
			t.Parallel()

			labels := map[string]int{"z": 26, "a": 1, "m": 13, "q": 17}
			value := Profile{ID: 7, Person: ada(), Labels: labels} //nolint:exhaustruct

			first := marshal(t, value, codec.WithValueEncoding(encoding))
			for range 20 {
				assert.Equal(t, first, marshal(t, value, codec.WithValueEncoding(encoding)))
			}

			layout, err := binarycodec.ReadLayout(first)
			require.NoError(t, err)
			assert.Equal(t, first, layout.Bytes())
		})
	}
}

func TestCodec_Layout(t *testing.T) {
	t.Parallel()

	data := marshal(t, ada(), codec.WithValueEncoding(codec.ValueEncodingCBOR))
	assert.Equal(t, binarycodec.Version, data[0])

	layout, err := binarycodec.ReadLayout(data)
	require.NoError(t, err)
	require.Len(t, layout.Fields, 3)

	assert.Equal(t, binarycodec.HeaderTag, layout.Fields[0].Tag)
	assert.Equal(t, binarycodec.Field{Tag: 1, Value: []byte{0x63, 'A', 'd', 'a'}}, layout.Fields[1])
	assert.Equal(t, binarycodec.Field{Tag: 2, Value: []byte{0x18, 0x25}}, layout.Fields[2])

	header, err := layout.Header()
	require.NoError(t, err)
	assert.Equal(t, codec.ValueEncodingCBOR, header.ValueEncoding)
	assert.Len(t, header.Fingerprint, 8)
}

func TestCodec_ExplicitTags(t *testing.T) {
	t.Parallel()

	value := Tagged{Late: "late", Early: 2, Skip: "dropped"}
	data := marshal(t, value)

	layout, err := binarycodec.ReadLayout(data)
	require.NoError(t, err)

	tags := make([]uint64, 0, len(layout.Fields))
	for _, field := range layout.Fields {
		tags = append(tags, field.Tag)
	}

	assert.Equal(t, []uint64{0, 2, 5}, tags)

	var decoded Tagged
	require.NoError(t, binarycodec.New().Unmarshal(data, &decoded, codec.NewOptions()))
	assert.Equal(t, Tagged{Late: "late", Early: 2, Skip: ""}, decoded)
}

func TestCodec_InvalidTags(t *testing.T) {
	t.Parallel()

	type duplicate struct {
		A string
		B string `binary:"1"`
	}

	type zero struct {
		A string `binary:"0"`
	}

	type word struct {
		A string `binary:"first"`
	}

	tests := []struct {
		name  string
		value any
	}{
		{"duplicate", duplicate{A: "a", B: "b"}},
		{"header tag", zero{A: "a"}},
		{"not a number", word{A: "a"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := binarycodec.New().Marshal(test.value, codec.NewOptions())
			require.ErrorIs(t, err, codec.ErrInvalidArgument)
		})
	}
}

func TestCodec_Marshal_InvalidArgument(t *testing.T) {
	t.Parallel()

	var (
		nilPerson *Person
		nilMap    map[string]int
	)

	tests := []struct {
		name  string
		value any
		opts  codec.Options
	}{
		{"nil", nil, codec.NewOptions()},
		{"nil pointer", nilPerson, codec.NewOptions()},
		{"nil map", nilMap, codec.NewOptions()},
		{"unknown value encoding", ada(), codec.NewOptions(codec.WithValueEncoding(9))},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := binarycodec.New().MarshalText(test.value, test.opts)
			require.ErrorIs(t, err, codec.ErrInvalidArgument)
		})
	}
}

func TestCodec_Marshal_Unsupported(t *testing.T) {
	t.Parallel()

	type withChan struct {
		C chan int
	}

	_, err := binarycodec.New().Marshal(withChan{C: make(chan int)}, codec.NewOptions())
	require.Error(t, err)

	var marshalErr codec.MarshalError
	require.ErrorAs(t, err, &marshalErr)
}

func TestCodec_Unmarshal_InvalidOut(t *testing.T) {
	t.Parallel()

	data := marshal(t, ada())

	var person Person

	err := binarycodec.New().Unmarshal(data, person, codec.NewOptions())
	require.ErrorIs(t, err, codec.ErrInvalidArgument)

	err = binarycodec.New().Unmarshal(data, nil, codec.NewOptions())
	require.ErrorIs(t, err, codec.ErrInvalidArgument)
}

func withLayout(t *testing.T, data []byte, change func(*binarycodec.Layout)) []byte {
	t.Helper()

	layout, err := binarycodec.ReadLayout(data)
	require.NoError(t, err)

	layout.Fields = append([]binarycodec.Field(nil), layout.Fields...)
	change(&layout)

	return layout.Bytes()
}

func TestCodec_Unmarshal_SchemaMismatch(t *testing.T) {
	t.Parallel()

	valid := marshal(t, ada())

	tests := []struct {
		name      string
		data      []byte
		malformed bool
	}{
		{
			name:      "empty",
			data:      []byte{},
			malformed: true,
		},
		{
			name:      "bad version",
			data:      append([]byte{2}, valid[1:]...),
			malformed: false,
		},
		{
			name:      "version only",
			data:      []byte{binarycodec.Version},
			malformed: true,
		},
		{
			name:      "truncated",
			data:      valid[:len(valid)-1],
			malformed: true,
		},
		{
			name:      "truncated uvarint",
			data:      append(append([]byte(nil), valid...), 0x80),
			malformed: true,
		},
		{
			name:      "non-minimal uvarint",
			data:      append(append([]byte(nil), valid...), 0x83, 0x00, 0x00),
			malformed: true,
		},
		{
			name:      "trailing tag",
			data:      append(append([]byte(nil), valid...), 0x05),
			malformed: true,
		},
		{
			name: "missing header",
			data: withLayout(t, valid, func(l *binarycodec.Layout) {
				l.Fields = l.Fields[1:]
			}),
			malformed: true,
		},
		{
			name: "out of order",
			data: withLayout(t, valid, func(l *binarycodec.Layout) {
				l.Fields[1], l.Fields[2] = l.Fields[2], l.Fields[1]
			}),
			malformed: true,
		},
		{
			name: "duplicate tag",
			data: withLayout(t, valid, func(l *binarycodec.Layout) {
				l.Fields[2] = binarycodec.Field{Tag: 1, Value: l.Fields[2].Value}
			}),
			malformed: true,
		},
		{
			name: "unknown tag",
			data: withLayout(t, valid, func(l *binarycodec.Layout) {
				l.Fields = append(l.Fields, binarycodec.Field{Tag: 9, Value: []byte{0x01}})
			}),
			malformed: true,
		},
		{
			name: "unknown value encoding",
			data: withLayout(t, valid, func(l *binarycodec.Layout) {
				header := append([]byte{9}, l.Fields[0].Value[1:]...)
				l.Fields[0] = binarycodec.Field{Tag: binarycodec.HeaderTag, Value: header}
			}),
			malformed: true,
		},
		{
			name: "undecodable value",
			data: withLayout(t, valid, func(l *binarycodec.Layout) {
				l.Fields[2] = binarycodec.Field{Tag: 2, Value: []byte{0xa1, 'x'}}
			}),
			malformed: false,
		},
		{
			name: "trailing bytes in value",
			data: withLayout(t, valid, func(l *binarycodec.Layout) {
				l.Fields[1] = binarycodec.Field{Tag: 1, Value: append(append([]byte(nil), l.Fields[1].Value...), 0x00)}
			}),
			malformed: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			out := Person{Name: "Grace", Age: 85}

			err := binarycodec.New().Unmarshal(test.data, &out, codec.NewOptions())
			require.ErrorIs(t, err, codec.ErrSchemaMismatch)
			assert.Equal(t, test.malformed, errors.Is(err, codec.ErrMalformedPayload))
			assert.Equal(t, Person{Name: "Grace", Age: 85}, out)
		})
	}
}

func TestCodec_Unmarshal_FingerprintMismatch(t *testing.T) {
	t.Parallel()

	type renamed struct {
		Title string
		Pages int
	}

	type retyped struct {
		Name string
		Age  string
	}

	data := marshal(t, ada())

	var compatible renamed
	require.NoError(t, binarycodec.New().Unmarshal(data, &compatible, codec.NewOptions()))
	assert.Equal(t, renamed{Title: "Ada", Pages: 37}, compatible)

	out := retyped{Name: "untouched", Age: "untouched"}

	err := binarycodec.New().Unmarshal(data, &out, codec.NewOptions())
	require.ErrorIs(t, err, codec.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "fingerprint")
	assert.Equal(t, retyped{Name: "untouched", Age: "untouched"}, out)

	var number int

	err = binarycodec.New().Unmarshal(data, &number, codec.NewOptions())
	require.ErrorIs(t, err, codec.ErrSchemaMismatch)
}

func TestCodec_WithHasher(t *testing.T) {
	t.Parallel()

	sha := binarycodec.New().WithHasher(hasher.NewSHA256Hasher())

	data, err := sha.Marshal(ada(), codec.NewOptions())
	require.NoError(t, err)

	layout, err := binarycodec.ReadLayout(data)
	require.NoError(t, err)

	header, err := layout.Header()
	require.NoError(t, err)
	assert.Len(t, header.Fingerprint, 32)

	var person Person
	require.NoError(t, sha.Unmarshal(data, &person, codec.NewOptions()))
	assert.Equal(t, ada(), person)

	err = binarycodec.New().Unmarshal(data, &person, codec.NewOptions())
	require.ErrorIs(t, err, codec.ErrSchemaMismatch)
}

func TestCodec_ZeroValue(t *testing.T) {
	t.Parallel()

	codecs := map[string]binarycodec.Codec{
		"zero value": {},
		"nil hasher": binarycodec.New().WithHasher(nil),
	}

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			text, err := c.MarshalText(ada(), codec.NewOptions())
			require.NoError(t, err)

			expected, err := binarycodec.New().MarshalText(ada(), codec.NewOptions())
			require.NoError(t, err)
			assert.Equal(t, expected, text)

			var person Person
			require.NoError(t, c.UnmarshalText(text, &person, codec.NewOptions()))
			assert.Equal(t, ada(), person)
		})
	}
}

func TestCodec_UnmarshalText_Invalid(t *testing.T) {
	t.Parallel()

	c := binarycodec.New()
	text, err := c.MarshalText(ada(), codec.NewOptions())
	require.NoError(t, err)

	var person Person

	err = c.UnmarshalText("not base64!", &person, codec.NewOptions())
	require.ErrorIs(t, err, codec.ErrSchemaMismatch)
	require.ErrorIs(t, err, codec.ErrMalformedPayload)

	err = c.UnmarshalText(text, &person, codec.NewOptions(codec.WithMaxPayloadSize(4)))
	require.ErrorIs(t, err, codec.ErrSchemaMismatch)
	require.ErrorIs(t, err, codec.ErrMalformedPayload)
	assert.Empty(t, person)
}

func TestCodec_File(t *testing.T) {
	t.Parallel()

	for _, encoding := range valueEncodings {
		t.Run(encoding.String(), func(t *testing.T) {
			t.Parallel()

			fsys := afero.NewMemMapFs()
			c := binarycodec.New()
			opts := codec.NewOptions(codec.WithValueEncoding(encoding))

			require.NoError(t, c.MarshalFile(fsys, "/data/person.bin", ada(), opts))

			raw, err := afero.ReadFile(fsys, "/data/person.bin")
			require.NoError(t, err)
			assert.Equal(t, marshal(t, ada(), codec.WithValueEncoding(encoding)), raw)

			text, err := c.MarshalText(ada(), opts)
			require.NoError(t, err)
			assert.Equal(t, base64.StdEncoding.EncodeToString(raw), text)

			var person Person
			require.NoError(t, c.UnmarshalFile(fsys, "/data/person.bin", &person, opts))
			assert.Equal(t, ada(), person)
		})
	}
}

func TestCodec_File_Overwrite(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	c := binarycodec.New()

	require.NoError(t, afero.WriteFile(fsys, "/person.bin", make([]byte, 1024), 0o600))
	require.NoError(t, c.MarshalFile(fsys, "/person.bin", ada(), codec.NewOptions()))

	var person Person
	require.NoError(t, c.UnmarshalFile(fsys, "/person.bin", &person, codec.NewOptions()))
	assert.Equal(t, ada(), person)
}

func TestCodec_File_Errors(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	c := binarycodec.New()

	var person Person

	err := c.UnmarshalFile(fsys, "/missing.bin", &person, codec.NewOptions())
	require.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, c.MarshalFile(fsys, "/person.bin", ada(), codec.NewOptions()))

	err = c.UnmarshalFile(fsys, "/person.bin", &person, codec.NewOptions(codec.WithMaxPayloadSize(2)))
	require.ErrorIs(t, err, codec.ErrSchemaMismatch)
	assert.Empty(t, person)

	err = c.MarshalFile(afero.NewReadOnlyFs(fsys), "/other.bin", ada(), codec.NewOptions())
	require.Error(t, err)

	exists, err := afero.Exists(fsys, "/other.bin")
	require.NoError(t, err)
	assert.False(t, exists)
}
