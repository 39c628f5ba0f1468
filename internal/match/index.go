package match

import "strings"

// Index holds the lookup tables derived from the identifier universe. It is
// rebuilt for every matching pass and never outlives it.
type Index struct {
	byLower map[string]string
	byNorm  map[string]string
}

// BuildIndex indexes the identifier universe by lowercased and by normalized
// form. Both tables map back to the original-cased identifier. Identifiers
// that collide under a key overwrite each other, last write wins; collisions
// are rare enough that losing one identifier beats failing the run.
func BuildIndex(identifiers []string) *Index {
	ix := &Index{
		byLower: make(map[string]string, len(identifiers)),
		byNorm:  make(map[string]string, len(identifiers)),
	}
	for _, id := range identifiers {
		ix.byLower[strings.ToLower(id)] = id
		ix.byNorm[Normalize(id)] = id
	}
	return ix
}

// Canonical resolves an identifier case-insensitively against the universe,
// returning the original-cased identifier.
func (ix *Index) Canonical(id string) (string, bool) {
	v, ok := ix.byLower[strings.ToLower(id)]
	return v, ok
}

// Lookup resolves a normalization key against the universe.
func (ix *Index) Lookup(key string) (string, bool) {
	v, ok := ix.byNorm[key]
	return v, ok
}
