package browse

import (
	"strings"

	"github.com/changomango/portfolio/internal/content"
)

// FilterOption is one button of the technology filter control.
type FilterOption struct {
	Label  string
	Value  string
	Active bool
}

// Page is the display-ready model of the projects listing.
type Page struct {
	State      State
	Category   content.Category
	Categories []content.Category
	Filters    []FilterOption
	Projects   []content.Project
	Empty      bool
}

// View builds the listing for state. An unknown category renders the first
// declared one's header, with no results.
func View(site *content.Site, state State) Page {
	category, ok := site.Category(state.ActiveCategory)
	if !ok && len(site.Categories) > 0 {
		category = site.Categories[0]
	}

	filters := make([]FilterOption, 0, len(category.Filters)+1)
	filters = append(filters, FilterOption{
		Label:  "All",
		Value:  FilterAll,
		Active: state.ActiveFilter == FilterAll,
	})
	for _, f := range category.Filters {
		v := strings.ToLower(f)
		filters = append(filters, FilterOption{Label: f, Value: v, Active: state.ActiveFilter == v})
	}

	projects := FilteredProjects(site.Projects, state.ActiveCategory, state.ActiveFilter, state.SearchQuery)
	return Page{
		State:      state,
		Category:   category,
		Categories: site.Categories,
		Filters:    filters,
		Projects:   projects,
		Empty:      len(projects) == 0,
	}
}
