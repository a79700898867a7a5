package serializer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serializer "github.com/tarantool/go-serializer"
	"github.com/tarantool/go-serializer/codec"
)

func TestFormat_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "binary", serializer.Binary.String())
	assert.Equal(t, "xml", serializer.XML.String())
	assert.Equal(t, "Format(0)", serializer.Format(0).String())
	assert.Equal(t, "Format(42)", serializer.Format(42).String())
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected serializer.Format
	}{
		{"binary", serializer.Binary},
		{"BINARY", serializer.Binary},
		{"xml", serializer.XML},
		{" Xml ", serializer.XML},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			format, err := serializer.ParseFormat(test.name)
			require.NoError(t, err)
			assert.Equal(t, test.expected, format)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := serializer.ParseFormat("json")
		require.ErrorIs(t, err, codec.ErrInvalidArgument)
	})
}
