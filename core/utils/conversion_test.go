package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringOr(t *testing.T) {
	assert.Equal(t, "hello", StringOr("hello", "fb"))
	assert.Equal(t, "bytes", StringOr([]byte("bytes"), "fb"))
	assert.Equal(t, "fb", StringOr(nil, "fb"))
	assert.Equal(t, "fb", StringOr(42, "fb"))
}

func TestIntOr(t *testing.T) {
	assert.Equal(t, 5, IntOr(5, 1))
	assert.Equal(t, 5, IntOr(int64(5), 1))
	assert.Equal(t, 5, IntOr(float64(5.9), 1))
	assert.Equal(t, 5, IntOr("5", 1))
	assert.Equal(t, 5, IntOr([]byte(" 5 "), 1))
	assert.Equal(t, 1, IntOr("not a number", 1))
	assert.Equal(t, 1, IntOr(nil, 1))
	assert.Equal(t, 1, IntOr(true, 1))
}

func TestFloatOr(t *testing.T) {
	assert.Equal(t, 4.6, FloatOr(4.6, 1))
	assert.Equal(t, 4.0, FloatOr(4, 1))
	assert.Equal(t, 4.6, FloatOr("4.6", 1))
	assert.Equal(t, 4.6, FloatOr([]byte("4.6"), 1))
	assert.Equal(t, 1.0, FloatOr("", 1))
	assert.Equal(t, 1.0, FloatOr(nil, 1))
}

func TestBoolOr(t *testing.T) {
	assert.True(t, BoolOr(true, false))
	assert.True(t, BoolOr(1, false))
	assert.True(t, BoolOr(int64(1), false))
	assert.False(t, BoolOr(0, true))
	assert.True(t, BoolOr("true", false))
	assert.True(t, BoolOr([]byte("1"), false))
	assert.False(t, BoolOr("0", true))
	assert.True(t, BoolOr("garbage", true))
	assert.False(t, BoolOr(nil, false))
}

func TestStringSliceOr(t *testing.T) {
	fb := []string{"a", "b"}

	assert.Equal(t, []string{"x"}, StringSliceOr([]string{"x"}, fb))
	assert.Equal(t, []string{"x", "7"}, StringSliceOr([]any{"x", 7}, fb))
	assert.Equal(t, []string{"x", "y"}, StringSliceOr(`["x","y"]`, fb))
	assert.Equal(t, []string{"x"}, StringSliceOr([]byte(`["x"]`), fb))
	assert.Equal(t, fb, StringSliceOr("not json", fb))
	assert.Equal(t, fb, StringSliceOr(nil, fb))
	assert.Equal(t, fb, StringSliceOr(42, fb))
}
