package scan

import "sort"

// Group collects every discovered file sharing one stem. A group with more
// than one member is a collision: directory nesting and extension do not
// disambiguate, because the stem alone ends up embedded in the rewritten
// records.
type Group struct {
	Stem    string
	Members []FileEntry
}

// Collision reports whether the group holds more than one file.
func (g Group) Collision() bool {
	return len(g.Members) > 1
}

// BuildIndex groups the entire entry set by stem. It returns every group,
// not just collisions, so callers can filter however they need; members keep
// their scan order. The grouping key is the stem exactly as computed by Scan,
// with no case or whitespace normalization.
func BuildIndex(entries []FileEntry) map[string]Group {
	index := make(map[string]Group)
	for _, entry := range entries {
		group := index[entry.Stem]
		group.Stem = entry.Stem
		group.Members = append(group.Members, entry)
		index[entry.Stem] = group
	}
	return index
}

// Collisions filters the index down to colliding groups, sorted by stem so
// the report order is stable regardless of map iteration order.
func Collisions(index map[string]Group) []Group {
	var collisions []Group
	for _, group := range index {
		if group.Collision() {
			collisions = append(collisions, group)
		}
	}
	sort.Slice(collisions, func(i, j int) bool {
		return collisions[i].Stem < collisions[j].Stem
	})
	return collisions
}
