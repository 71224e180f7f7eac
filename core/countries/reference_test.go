package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorldReferenceByName(t *testing.T) {
	ref := NewWorldReference()

	name, ok := ref.ByName("United States")
	assert.True(t, ok)
	assert.Equal(t, "United States", name)

	_, ok = ref.ByName("Atlantis")
	assert.False(t, ok)
}

func TestWorldReferenceByAltName(t *testing.T) {
	ref := NewWorldReference()

	name, ok := ref.ByAltName("United States of America")
	assert.True(t, ok)
	assert.Equal(t, "United States", name)

	_, ok = ref.ByAltName("United States")
	assert.False(t, ok)
}
