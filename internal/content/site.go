// Package content defines the site's static configuration and project
// catalog. Content is built once and never mutated; a reload replaces the
// whole Site.
package content

import (
	"slices"
	"time"

	"github.com/changomango/portfolio/internal/textutil"
)

// Site is everything the pages render.
type Site struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	URL         string          `yaml:"url"`
	Keywords    []string        `yaml:"keywords"`
	OGImage     string          `yaml:"og_image"`
	Author      Author          `yaml:"author"`
	Navigation  []NavItem       `yaml:"navigation"`
	Social      Social          `yaml:"social"`
	Categories  []Category      `yaml:"categories"`
	Skills      []SkillCategory `yaml:"skills"`
	Contact     Contact         `yaml:"contact"`
	Features    Features        `yaml:"features"`
	About       []string        `yaml:"about"`
	Projects    []Project       `yaml:"projects"`
}

type Author struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	URL      string `yaml:"url"`
	Twitter  string `yaml:"twitter"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
}

type NavItem struct {
	Title string `yaml:"title"`
	Href  string `yaml:"href"`
}

type Social struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Twitter  string `yaml:"twitter"`
	Email    string `yaml:"email"`
}

// Category is a primary filter axis for projects. Filters is the
// technology vocabulary offered by the filter control for this category.
type Category struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Slug        string   `yaml:"slug"`
	Filters     []string `yaml:"filters"`
}

type SkillCategory struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

type Contact struct {
	Email        string `yaml:"email"`
	Location     string `yaml:"location"`
	Timezone     string `yaml:"timezone"`
	Availability string `yaml:"availability"`
}

type Features struct {
	Blog        bool `yaml:"blog"`
	DarkMode    bool `yaml:"dark_mode"`
	ContactForm bool `yaml:"contact_form"`
	Analytics   bool `yaml:"analytics"`
	Comments    bool `yaml:"comments"`
}

// Project statuses.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
	StatusResearch   = "research"
	StatusPlanning   = "planning"
)

// Project is one portfolio entry.
type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Featured    bool     `yaml:"featured"`
	TechStack   []string `yaml:"tech_stack"`
	Links       Links    `yaml:"links"`
	Image       string   `yaml:"image"`
	Status      string   `yaml:"status"`
	Date        string   `yaml:"date"`
	Metrics     []Metric `yaml:"metrics,omitempty"`
}

// Links are each optional.
type Links struct {
	GitHub string `yaml:"github,omitempty"`
	Demo   string `yaml:"demo,omitempty"`
	Paper  string `yaml:"paper,omitempty"`
	Docs   string `yaml:"docs,omitempty"`
}

type Metric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Time returns the parsed project date, or the zero time if Date is not a
// valid ISO date.
func (p Project) Time() time.Time {
	t, err := textutil.ParseDate(p.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// StatusLabel is the badge text for a project status.
func StatusLabel(status string) string {
	switch status {
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return "In Progress"
	case StatusResearch:
		return "Research"
	case StatusPlanning:
		return "Planning"
	}
	return textutil.CapitalizeWords(status)
}

// Category returns the category with the given id.
func (s *Site) Category(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryIcon returns the icon glyph for a category id, or "" if unknown.
func (s *Site) CategoryIcon(id string) string {
	c, _ := s.Category(id)
	return c.Icon
}

// Project returns the catalog entry with the given id.
func (s *Site) Project(id string) (Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// FeaturedProjects returns featured entries across all categories, most
// recent first.
func (s *Site) FeaturedProjects() []Project {
	var out []Project
	for _, p := range s.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b Project) int {
		return b.Time().Compare(a.Time())
	})
	return out
}
