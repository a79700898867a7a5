package xmlcodec //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-serializer/codec"
)

func TestPseudoAttr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		inst     string
		expected string
	}{
		{`version="1.0" encoding="UTF-8"`, "UTF-8"},
		{`version='1.0' encoding = 'ISO-8859-1' standalone="yes"`, "ISO-8859-1"},
		{`version="1.0"`, ""},
		{`version="1.0" encoding=UTF-8`, ""},
		{`version="1.0" encoding="UTF-8`, ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, pseudoAttr([]byte(test.inst), "encoding"), test.inst)
	}
}

func TestCheckDeclaredEncoding(t *testing.T) {
	t.Parallel()

	accepted := []string{
		`<a/>`,
		`<?xml version="1.0"?><a/>`,
		`<?xml version="1.0" encoding="latin1"?><a/>`,
		`<?xml version="1.0" encoding="iso-8859-1"?><a/>`,
		`not xml at all <`,
	}

	for _, doc := range accepted {
		require.NoError(t, checkDeclaredEncoding([]byte(doc), "ISO-8859-1"), doc)
	}

	rejected := []string{
		`<?xml version="1.0" encoding="UTF-8"?><a/>`,
		`<?xml version="1.0" encoding="windows-1252"?><a/>`,
		`<?xml version="1.0" encoding="x-unknown-charset"?><a/>`,
	}

	for _, doc := range rejected {
		require.ErrorIs(t, checkDeclaredEncoding([]byte(doc), "ISO-8859-1"), codec.ErrSchemaMismatch, doc)
	}
}
