package browse

import (
	"net/url"
	"strings"

	"github.com/changomango/portfolio/internal/content"
)

// ViewMode selects how results are laid out.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Query parameter names understood by FromQuery.
const (
	ParamCategory = "category"
	ParamFilter   = "filter"
	ParamSearch   = "q"
	ParamView     = "view"
	ParamSwitch   = "switch"
)

// State is the listing state of one browsing session. Transitions return a
// new State; a State is never modified in place.
type State struct {
	ActiveCategory string
	ActiveFilter   string
	SearchQuery    string
	ViewMode       ViewMode
}

// NewState starts a session in the category named by categoryParam, or in
// the first declared category when the parameter is empty or unknown.
func NewState(categories []content.Category, categoryParam string) State {
	return State{
		ActiveCategory: resolveCategory(categories, categoryParam),
		ActiveFilter:   FilterAll,
		ViewMode:       ViewGrid,
	}
}

func resolveCategory(categories []content.Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return id
		}
	}
	if len(categories) > 0 {
		return categories[0].ID
	}
	return ""
}

// SwitchCategory moves to another category. Tag vocabularies differ per
// category, so the technology filter and search are cleared in the same
// step.
func (s State) SwitchCategory(id string) State {
	s.ActiveCategory = id
	s.ActiveFilter = FilterAll
	s.SearchQuery = ""
	return s
}

// WithFilter sets the technology filter. Filters are matched lowercase; an
// empty filter means FilterAll.
func (s State) WithFilter(filter string) State {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		filter = FilterAll
	}
	s.ActiveFilter = filter
	return s
}

// WithSearch sets the free-text query.
func (s State) WithSearch(query string) State {
	s.SearchQuery = query
	return s
}

// WithViewMode sets the layout; anything other than list means grid.
func (s State) WithViewMode(mode ViewMode) State {
	if mode != ViewList {
		mode = ViewGrid
	}
	s.ViewMode = mode
	return s
}

// FromQuery rebuilds a State from request parameters. A "switch" parameter
// is applied last as a category switch, discarding filter and search.
func FromQuery(categories []content.Category, q url.Values) State {
	s := NewState(categories, q.Get(ParamCategory)).
		WithFilter(q.Get(ParamFilter)).
		WithSearch(q.Get(ParamSearch)).
		WithViewMode(ViewMode(q.Get(ParamView)))

	if next := q.Get(ParamSwitch); next != "" {
		s = s.SwitchCategory(resolveCategory(categories, next))
	}
	return s
}

// Query encodes s so that FromQuery(Query()) round-trips it. Defaults are
// left out to keep links short.
func (s State) Query() url.Values {
	q := url.Values{}
	q.Set(ParamCategory, s.ActiveCategory)
	if s.ActiveFilter != "" && s.ActiveFilter != FilterAll {
		q.Set(ParamFilter, s.ActiveFilter)
	}
	if s.SearchQuery != "" {
		q.Set(ParamSearch, s.SearchQuery)
	}
	if s.ViewMode == ViewList {
		q.Set(ParamView, string(ViewList))
	}
	return q
}
