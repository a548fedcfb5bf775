// Package browse derives the project listing from the catalog and the
// visitor's current category, technology filter and search query.
package browse

import (
	"slices"
	"strings"

	"github.com/changomango/portfolio/internal/content"
)

// FilterAll is the technology filter that matches every project.
const FilterAll = "all"

// FilteredProjects returns the projects of activeCategory that match
// activeFilter and searchQuery, featured first, then newest first. Equal
// keys keep catalog order. The catalog is never modified.
func FilteredProjects(catalog []content.Project, activeCategory, activeFilter, searchQuery string) []content.Project {
	filter := strings.ToLower(activeFilter)
	query := strings.ToLower(searchQuery)

	out := make([]content.Project, 0, len(catalog))
	for _, p := range catalog {
		if p.Category != activeCategory {
			continue
		}
		if filter != FilterAll && !anyTagContains(p.TechStack, filter) {
			continue
		}
		if query != "" && !matchesSearch(p, query) {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, compareProjects)
	return out
}

func compareProjects(a, b content.Project) int {
	if a.Featured != b.Featured {
		if a.Featured {
			return -1
		}
		return 1
	}
	return b.Time().Compare(a.Time())
}

func anyTagContains(tags []string, needle string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// matchesSearch expects query to be lowercase already.
func matchesSearch(p content.Project, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		anyTagContains(p.TechStack, query)
}
