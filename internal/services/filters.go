package services

import "github.com/leewillemse/portfolio-backend/internal/store"

// FilterRule binds a query parameter to the stored field it matches against.
type FilterRule struct {
	Param      string
	Field      string
	AnyElement bool
}

var (
	ProjectFilters = []FilterRule{
		{Param: "tag", Field: "highlights", AnyElement: true},
		{Param: "tech", Field: "tech_stack", AnyElement: true},
	}
	CertificateFilters = []FilterRule{
		{Param: "skill", Field: "skill_category"},
	}
	JournalFilters = []FilterRule{
		{Param: "tag", Field: "tags", AnyElement: true},
	}
)

// BuildFilter translates query parameters into store predicates. Absent
// parameters contribute nothing; multiple parameters combine with AND.
func BuildFilter(rules []FilterRule, get func(string) string) store.Filter {
	filter := store.Filter{}
	for _, rule := range rules {
		if value := get(rule.Param); value != "" {
			filter[rule.Field] = store.Match{Substring: value, AnyElement: rule.AnyElement}
		}
	}
	return filter
}
