package match

// freeSuffix is the one suffix the provider appends to identifiers of
// free-tier variants. Pricing pages list "GLM 4.7", the API serves
// "glm-4.7-free"; the suffix never shows up in the display name. Fixed
// policy, not configurable.
const freeSuffix = "free"

// Deterministic resolves display names through normalization alone: the
// normalized name, then the normalized name with the free suffix appended.
// Unmatched names are skipped. The returned set is deduplicated and in
// first-match order.
func Deterministic(names []string, ix *Index) []string {
	rs := newResultSet()
	for _, name := range names {
		key := Normalize(name)
		if id, ok := ix.Lookup(key); ok {
			rs.add(id)
			continue
		}
		if id, ok := ix.Lookup(key + freeSuffix); ok {
			rs.add(id)
		}
	}
	return rs.ids()
}

// resultSet is an insertion-ordered string set.
type resultSet struct {
	order []string
	seen  map[string]struct{}
}

func newResultSet() *resultSet {
	return &resultSet{seen: map[string]struct{}{}}
}

func (rs *resultSet) add(id string) {
	if _, ok := rs.seen[id]; ok {
		return
	}
	rs.seen[id] = struct{}{}
	rs.order = append(rs.order, id)
}

func (rs *resultSet) addAll(ids []string) {
	for _, id := range ids {
		rs.add(id)
	}
}

func (rs *resultSet) empty() bool { return len(rs.order) == 0 }

func (rs *resultSet) ids() []string { return rs.order }
