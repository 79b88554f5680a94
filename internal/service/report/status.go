package report

import "strings"

// statusSet answers case-insensitive, whitespace-trimmed membership
// checks against a configured set of status values. The three sets used
// by the aggregators (counted, revenue, canceled) are independent and
// nothing enforces mutual exclusivity between them; callers pick
// disjoint sets by convention.
type statusSet map[string]struct{}

func newStatusSet(values []string) statusSet {
	set := make(statusSet, len(values))
	for _, v := range values {
		set[normalizeStatus(v)] = struct{}{}
	}
	return set
}

func (s statusSet) contains(raw string) bool {
	_, ok := s[normalizeStatus(raw)]
	return ok
}

func normalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
