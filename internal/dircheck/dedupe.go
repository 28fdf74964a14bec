package dircheck

import "strings"

// NormalizeKey produces the duplicate-detection key for an identity
// value: surrounding whitespace trimmed, then lowercased.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FindDuplicates groups records by normalized identity key and returns
// every group with two or more members.
//
// Group order follows first-seen key order and member order follows the
// input record order, so identical input always yields identical output.
// Records with an empty or whitespace-only identity value never join a
// group. When no record carries an identity value at all, detection is
// disabled and the result is empty.
func FindDuplicates(records []Record) []DuplicateGroup {
	groups := make(map[string]*DuplicateGroup)
	var order []string

	for i, rec := range records {
		name := rec.Fields[IdentityField]
		key := NormalizeKey(name)
		if key == "" {
			continue
		}

		g, ok := groups[key]
		if !ok {
			g = &DuplicateGroup{Key: key, Display: name}
			groups[key] = g
			order = append(order, key)
		}
		g.Members = append(g.Members, GroupMember{Position: i, Record: rec})
	}

	var out []DuplicateGroup
	for _, key := range order {
		if g := groups[key]; len(g.Members) >= 2 {
			out = append(out, *g)
		}
	}
	return out
}
