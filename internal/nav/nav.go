// Package nav builds the site navigation bar.
package nav

import (
	"strings"

	"github.com/changomango/portfolio/internal/content"
)

// Item is a navigation link as rendered.
type Item struct {
	Title  string
	Href   string
	Active bool
}

// Items marks the entry for currentPath as active. The root link is only
// active on "/" itself; other links are also active for their sub-paths.
func Items(site *content.Site, currentPath string) []Item {
	items := make([]Item, 0, len(site.Navigation))
	for _, n := range site.Navigation {
		items = append(items, Item{
			Title:  n.Title,
			Href:   n.Href,
			Active: isActive(n.Href, currentPath),
		})
	}
	return items
}

func isActive(href, path string) bool {
	if href == path {
		return true
	}
	if href == "/" || href == "" {
		return false
	}
	return strings.HasPrefix(path, strings.TrimSuffix(href, "/")+"/")
}

// Menu is the open/closed state of the mobile menu.
type Menu struct {
	Open bool
}

// Toggle flips the menu.
func (m Menu) Toggle() Menu {
	return Menu{Open: !m.Open}
}

// ForRoute is the menu state after navigating: always closed.
func (m Menu) ForRoute() Menu {
	return Menu{}
}

// Brand is the short name shown as the logo: the author's first name.
func Brand(site *content.Site) string {
	name := strings.TrimSpace(site.Author.Name)
	if first, _, ok := strings.Cut(name, " "); ok {
		return first
	}
	return name
}
