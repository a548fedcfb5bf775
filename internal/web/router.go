// Package web renders the portfolio site with gin and html/template. The
// interactive parts (project filters, mobile menu, contact form) are served
// as HTML fragments for HTMX.
package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/changomango/portfolio/internal/analytics"
	"github.com/changomango/portfolio/internal/content"
)

// Deps are the collaborators of the router. Tracker and Admin are optional.
type Deps struct {
	Content   *content.Store
	Logger    *zap.Logger
	Tracker   *analytics.Tracker
	Admin     *analytics.Admin
	ImagesDir string
}

// NewRouter builds the gin engine serving the whole site.
func NewRouter(deps Deps) (*gin.Engine, error) {
	if deps.Content == nil {
		return nil, fmt.Errorf("web: content store is required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}

	h := &handlers{
		content: deps.Content,
		logger:  deps.Logger,
		tracker: deps.Tracker,
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(RequestID())
	r.Use(AccessLog(deps.Logger))
	r.Use(gin.Recovery())
	r.Use(ClientHints())
	if deps.Tracker != nil {
		r.Use(h.trackVisits(deps.Tracker.Middleware()))
	}

	r.StaticFS("/static", http.FS(staticFiles()))
	if deps.ImagesDir != "" {
		r.Static("/images", deps.ImagesDir)
	}

	r.GET("/health/live", health)
	r.GET("/health/ready", health)

	r.GET("/", h.home)
	r.GET("/projects", h.projects)
	r.GET("/projects/results", h.projectResults)
	r.GET("/projects/more", h.loadMore)
	r.GET("/about", h.about)
	r.GET("/contact", h.contactPage)
	r.POST("/contact", h.contactSubmit)
	r.GET("/privacy", h.privacy)
	r.GET("/nav/menu", h.mobileMenu)
	r.POST("/theme", h.setTheme)
	r.POST("/api/beacon", h.beacon)

	if deps.Admin != nil {
		deps.Admin.Register(r)
	}

	r.NoRoute(h.notFound)
	return r, nil
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
