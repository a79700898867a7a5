package codec_test

import (
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-serializer/codec"
)

const fullSettings = `
namespaces:
  - prefix: p
    uri: urn:people
  - uri: urn:default
indent: "  "
omit_declaration: true
encoding: windows-1252
strict: false
default_namespace: urn:read
value_encoding: cbor
max_payload_size: 4096
`

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	settings, err := codec.LoadSettings([]byte(fullSettings))
	require.NoError(t, err)

	option, err := settings.Options()
	require.NoError(t, err)

	opts := codec.NewOptions(option)
	assert.Equal(t, []codec.Namespace{
		{Prefix: "p", URI: "urn:people"},
		{Prefix: "", URI: "urn:default"},
	}, opts.Namespaces)
	assert.Equal(t, "  ", opts.Indent)
	assert.True(t, opts.OmitDeclaration)
	assert.Equal(t, "windows-1252", opts.Encoding.UnwrapOr(""))
	assert.False(t, opts.Strict.UnwrapOr(true))
	assert.Equal(t, "urn:read", opts.DefaultNamespace)
	assert.Equal(t, codec.ValueEncodingCBOR, opts.ValueEncoding)
	assert.Equal(t, 4096, opts.MaxPayloadSize)
}

func TestLoadSettings_Empty(t *testing.T) {
	t.Parallel()

	settings, err := codec.LoadSettings(nil)
	require.NoError(t, err)

	option, err := settings.Options()
	require.NoError(t, err)

	assert.Equal(t, codec.DefaultOptions(), codec.NewOptions(option))
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "compression: gzip\n"},
		{"wrong type", "max_payload_size: many\n"},
		{"broken yaml", "indent: [\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := codec.LoadSettings([]byte(test.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to load settings")
		})
	}
}

func TestSettings_Options_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings codec.Settings
	}{
		{"unknown value encoding", codec.Settings{ValueEncoding: "gob"}},
		{"negative payload size", codec.Settings{MaxPayloadSize: -1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := test.settings.Options()
			require.ErrorIs(t, err, codec.ErrInvalidArgument)
		})
	}
}

func TestLoadSettingsFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/etc/serializer.yaml", []byte("value_encoding: msgpack\n"), 0o644))

	settings, err := codec.LoadSettingsFile(fsys, "/etc/serializer.yaml")
	require.NoError(t, err)
	assert.Equal(t, "msgpack", settings.ValueEncoding)

	_, err = codec.LoadSettingsFile(fsys, "/etc/missing.yaml")
	require.ErrorIs(t, err, fs.ErrNotExist)
}
