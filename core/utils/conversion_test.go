package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "hello", ToString("hello"))
	assert.Equal(t, "bytes", ToString([]byte("bytes")))
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "4.5", ToString(4.5))
	assert.Equal(t, "true", ToString(true))
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 0, ToInt(nil))
	assert.Equal(t, 7, ToInt(7))
	assert.Equal(t, 7, ToInt(int64(7)))
	assert.Equal(t, 7, ToInt(uint8(7)))
	assert.Equal(t, 7, ToInt(7.9))
	assert.Equal(t, 7, ToInt("7"))
	assert.Equal(t, 0, ToInt("not a number"))
	assert.Equal(t, 7, ToInt([]byte("7")))
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 0.0, ToFloat(nil))
	assert.Equal(t, 4.5, ToFloat(4.5))
	assert.Equal(t, 4.5, ToFloat(float32(4.5)))
	assert.Equal(t, 7.0, ToFloat(7))
	assert.Equal(t, 4.5, ToFloat("4.5"))
	assert.Equal(t, 0.0, ToFloat("n/a"))
	assert.Equal(t, 4.5, ToFloat([]byte("4.5")))
}
