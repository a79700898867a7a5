package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-serializer/codec"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		nilPtr   *int
		nilMap   map[string]int
		nilSlice []int
		nilFunc  func()
		nilChan  chan int
		nilIface error
		number   = 1
	)

	tests := []struct {
		name  string
		value any
		isNil bool
	}{
		{"untyped nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"nil map", nilMap, true},
		{"nil slice", nilSlice, true},
		{"nil func", nilFunc, true},
		{"nil chan", nilChan, true},
		{"nil interface", nilIface, true},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"empty struct", struct{}{}, false},
		{"pointer", &number, false},
		{"empty slice", []int{}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.isNil, codec.IsNil(test.value))
		})
	}
}

func TestCheckValue(t *testing.T) {
	t.Parallel()

	var nilPtr *struct{}

	require.ErrorIs(t, codec.CheckValue(nil), codec.ErrInvalidArgument)
	require.ErrorIs(t, codec.CheckValue(nilPtr), codec.ErrInvalidArgument)
	require.NoError(t, codec.CheckValue(struct{}{}))
}

func TestCheckOut(t *testing.T) {
	t.Parallel()

	var (
		nilPtr *int
		value  int
	)

	err := codec.CheckOut(value)
	require.ErrorIs(t, err, codec.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "got int")

	err = codec.CheckOut(nil)
	require.ErrorIs(t, err, codec.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "got nil")

	require.ErrorIs(t, codec.CheckOut(nilPtr), codec.ErrInvalidArgument)
	require.NoError(t, codec.CheckOut(&value))
}
