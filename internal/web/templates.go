package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"

	"github.com/changomango/portfolio/internal/browse"
	"github.com/changomango/portfolio/internal/content"
	"github.com/changomango/portfolio/internal/textutil"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Description length used on project cards in grid view.
const cardDescriptionLength = 160

var funcs = template.FuncMap{
	"truncate":    textutil.Truncate,
	"slugify":     textutil.Slugify,
	"formatDate":  textutil.FormatDateString,
	"readingTime": readingTime,
	"statusLabel": content.StatusLabel,
	"join":        strings.Join,
	"card": func(p content.Project, icon string, list bool) cardView {
		return cardView{Project: p, Icon: icon, List: list}
	},
	"cardText": func(s string) string {
		return textutil.Truncate(s, cardDescriptionLength)
	},
	"filterHref": func(s browse.State, filter string) string {
		return "?" + s.WithFilter(filter).Query().Encode()
	},
	"switchHref": func(s browse.State, category string) string {
		return "?" + s.SwitchCategory(category).Query().Encode()
	},
	"viewHref": func(s browse.State, mode string) string {
		return "?" + s.WithViewMode(browse.ViewMode(mode)).Query().Encode()
	},
}

// cardView is the input of the "project-card" template.
type cardView struct {
	Project content.Project
	Icon    string
	List    bool
}

func readingTime(paragraphs []string) int {
	return textutil.ReadingTime(strings.Join(paragraphs, " "), textutil.DefaultWordsPerMinute)
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
