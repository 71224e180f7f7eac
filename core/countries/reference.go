package countries

import (
	"github.com/pariz/gountries"
)

// Reference resolves country names against an authoritative data set. Both
// lookups are exact-match; ByName covers the canonical name, ByAltName covers
// secondary spellings such as official long-form names.
type Reference interface {
	ByName(name string) (string, bool)
	ByAltName(name string) (string, bool)
}

// WorldReference is a Reference backed by the gountries data set. Lookups
// resolve to the common country name, which is what the catalog stores.
type WorldReference struct {
	byName map[string]string
	byAlt  map[string]string
}

// NewWorldReference builds the lookup maps from the embedded gountries data.
func NewWorldReference() *WorldReference {
	query := gountries.New()

	ref := &WorldReference{
		byName: map[string]string{},
		byAlt:  map[string]string{},
	}
	for _, country := range query.FindAllCountries() {
		common := country.Name.Common
		if common == "" {
			continue
		}
		ref.byName[common] = common
		if official := country.Name.Official; official != "" {
			ref.byAlt[official] = common
		}
	}
	return ref
}

// ByName resolves an exact common country name.
func (r *WorldReference) ByName(name string) (string, bool) {
	out, ok := r.byName[name]
	return out, ok
}

// ByAltName resolves an exact official country name to its common name.
func (r *WorldReference) ByAltName(name string) (string, bool) {
	out, ok := r.byAlt[name]
	return out, ok
}
