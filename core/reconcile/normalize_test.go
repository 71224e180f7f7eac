package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"St. Clair's Bay", "stclairsbay"},
		{"ST CLAIRS BAY", "stclairsbay"},
		{"J-Bay", "jbay"},
		{"J Bay", "jbay"},
		{"Supertubes 2", "supertubes2"},
		{"  Nazaré  ", "nazaré"},
		{"", ""},
		{"...", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeName(c.in), "input %q", c.in)
	}
}

func TestNormalizeNameNonString(t *testing.T) {
	assert.Equal(t, "", NormalizeName(nil))
	assert.Equal(t, "42", NormalizeName(42))
	assert.Equal(t, "45", NormalizeName(4.5))
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{"St. Clair's Bay", "J-Bay", "Nazaré", ""}

	for _, in := range inputs {
		once := NormalizeName(in)
		assert.Equal(t, once, NormalizeName(once))
	}
}
