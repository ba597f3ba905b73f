package util

import (
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapType(t *testing.T) {
	tests := []struct {
		name  string
		input reflect.Type
		want  reflect.Type
	}{
		{"non-pointer", reflect.TypeOf(""), reflect.TypeOf("")},
		{"single pointer", reflect.TypeOf((*int)(nil)), reflect.TypeOf(0)},
		{"double pointer", reflect.TypeOf((**float64)(nil)), reflect.TypeOf(0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnwrapType(tt.input))
		})
	}
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, reflect.Int, TypeOf[int]().Kind())
	assert.Equal(t, reflect.Interface, TypeOf[io.Reader]().Kind(), "interface types are not lost")
	assert.Equal(t, reflect.Ptr, TypeOf[*string]().Kind())
}

func TestPointerTo(t *testing.T) {
	ptr, ok := PointerTo(reflect.TypeOf(0), 42)
	require.True(t, ok)
	p, isIntPtr := ptr.(*int)
	require.True(t, isIntPtr)
	assert.Equal(t, 42, *p)

	_, ok = PointerTo(reflect.TypeOf(0), "42")
	assert.False(t, ok, "string is not assignable to int")

	_, ok = PointerTo(reflect.TypeOf(0), nil)
	assert.False(t, ok)
}
