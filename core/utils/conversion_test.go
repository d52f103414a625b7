package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 7, ToInt(" 7 "))
	assert.Equal(t, -2, ToInt("-2"))
	assert.Equal(t, 0, ToInt("abc"))
	assert.Equal(t, 0, ToInt(""))
}

func TestToBool(t *testing.T) {
	for _, in := range []string{"true", "TRUE", "yes", "on", "1", " True "} {
		assert.True(t, ToBool(in), "ToBool(%q)", in)
	}
	for _, in := range []string{"false", "", "0", "no", "maybe"} {
		assert.False(t, ToBool(in), "ToBool(%q)", in)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 50, Clamp(0, 50, 1, 500))
	assert.Equal(t, 50, Clamp(-3, 50, 1, 500))
	assert.Equal(t, 500, Clamp(1000, 50, 1, 500))
	assert.Equal(t, 20, Clamp(20, 50, 1, 500))
}
