package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/changomango/portfolio/internal/analytics"
	"github.com/changomango/portfolio/internal/apperr"
	"github.com/changomango/portfolio/internal/browse"
	"github.com/changomango/portfolio/internal/content"
	"github.com/changomango/portfolio/internal/nav"
	"github.com/changomango/portfolio/internal/textutil"
	"github.com/changomango/portfolio/internal/theme"
)

type handlers struct {
	content *content.Store
	logger  *zap.Logger
	tracker *analytics.Tracker
}

// page returns the view data every full page needs.
func (h *handlers) page(c *gin.Context, site *content.Site, title string) gin.H {
	pref := theme.FromRequest(c.Request)
	resolved := theme.Light
	if site.Features.DarkMode {
		resolved = theme.Resolve(pref, c.Request)
	}

	fullTitle := site.Name
	if title != "" {
		fullTitle = title + " | " + site.Name
	}
	return gin.H{
		"site":  site,
		"title": fullTitle,
		"nav":   nav.Items(site, c.Request.URL.Path),
		"brand": nav.Brand(site),
		"menu":  nav.Menu{}.ForRoute(),
		"theme": resolved,
		"year":  time.Now().Year(),
	}
}

func (h *handlers) home(c *gin.Context) {
	site := h.content.Current()
	data := h.page(c, site, "")
	data["featured"] = site.FeaturedProjects()
	data["skillsBlurb"] = content.SkillsBlurb
	c.HTML(http.StatusOK, "index.html", data)
}

func (h *handlers) projects(c *gin.Context) {
	site := h.content.Current()
	state := browse.FromQuery(site.Categories, c.Request.URL.Query())

	data := h.page(c, site, "Projects")
	data["page"] = browse.View(site, state)
	c.HTML(http.StatusOK, "projects.html", data)
}

func (h *handlers) projectResults(c *gin.Context) {
	site := h.content.Current()
	state := browse.FromQuery(site.Categories, c.Request.URL.Query())

	c.HTML(http.StatusOK, "project-results.html", gin.H{
		"site": site,
		"page": browse.View(site, state),
	})
}

func (h *handlers) loadMore(c *gin.Context) {
	c.HTML(http.StatusOK, "load-more.html", gin.H{
		"message": "You've reached the end. More projects are on the way.",
	})
}

func (h *handlers) about(c *gin.Context) {
	site := h.content.Current()
	data := h.page(c, site, "About")
	data["paragraphs"] = site.About
	c.HTML(http.StatusOK, "about.html", data)
}

func (h *handlers) contactPage(c *gin.Context) {
	site := h.content.Current()
	if !site.Features.ContactForm {
		h.notFound(c)
		return
	}
	c.HTML(http.StatusOK, "contact.html", h.page(c, site, "Contact"))
}

// contactForm mirrors the fields of the contact template.
type contactForm struct {
	FullName string `form:"fullName"`
	Email    string `form:"email"`
	Message  string `form:"message"`
}

func (f contactForm) problem() string {
	switch {
	case strings.TrimSpace(f.FullName) == "":
		return "Please tell me your name."
	case !textutil.IsValidEmail(strings.TrimSpace(f.Email)):
		return "Please enter a valid email address."
	case strings.TrimSpace(f.Message) == "":
		return "Please write a message."
	}
	return ""
}

// contactSubmit validates the form and acknowledges it. Messages are not
// delivered anywhere; visitors are pointed at the email address instead.
func (h *handlers) contactSubmit(c *gin.Context) {
	site := h.content.Current()
	if !site.Features.ContactForm {
		h.notFound(c)
		return
	}

	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": "Sorry, that form could not be read."})
		return
	}
	if msg := form.problem(); msg != "" {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": msg})
		return
	}

	h.logger.Info("contact form received", zap.Int("message_length", len(form.Message)))
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thanks, " + strings.TrimSpace(form.FullName) + "! For a quick reply, email me directly.",
		"email":   site.Contact.Email,
	})
}

func (h *handlers) privacy(c *gin.Context) {
	site := h.content.Current()
	c.HTML(http.StatusOK, "privacy.html", h.page(c, site, "Privacy Policy"))
}

func (h *handlers) mobileMenu(c *gin.Context) {
	site := h.content.Current()
	open, _ := strconv.ParseBool(c.Query("open"))
	current, _, _ := strings.Cut(localPath(c.GetHeader("HX-Current-URL")), "?")

	c.HTML(http.StatusOK, "nav-menu.html", gin.H{
		"menu": nav.Menu{Open: open}.Toggle(),
		"nav":  nav.Items(site, current),
	})
}

func (h *handlers) setTheme(c *gin.Context) {
	site := h.content.Current()
	back := localPath(c.GetHeader("Referer"))
	if !site.Features.DarkMode {
		c.Redirect(http.StatusSeeOther, back)
		return
	}

	next := theme.Toggle(theme.Resolve(theme.FromRequest(c.Request), c.Request))
	if v := c.PostForm("theme"); v != "" {
		next = theme.Parse(v)
	}
	http.SetCookie(c.Writer, theme.Cookie(next))
	c.Redirect(http.StatusSeeOther, back)
}

// beaconPayload is sent by navigator.sendBeacon.
type beaconPayload struct {
	Name  string  `json:"name" binding:"required,max=64"`
	Value float64 `json:"value"`
	Path  string  `json:"path" binding:"max=512"`
}

func (h *handlers) beacon(c *gin.Context) {
	var p beaconPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid beacon"})
		return
	}
	if h.tracker != nil && h.content.Current().Features.Analytics {
		h.tracker.RecordBeacon(p.Name, p.Value, p.Path)
	}
	c.Status(http.StatusNoContent)
}

// trackVisits runs the tracking middleware only while analytics is enabled
// in the site content.
func (h *handlers) trackVisits(track gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.content.Current().Features.Analytics {
			track(c)
			return
		}
		c.Next()
	}
}

func (h *handlers) notFound(c *gin.Context) {
	site := h.content.Current()
	_ = c.Error(apperr.ErrNotFound)
	c.HTML(http.StatusNotFound, "not-found.html", h.page(c, site, "Not Found"))
}

// localPath returns the path of a same-site URL, or "/" for anything that
// could redirect off-site.
func localPath(raw string) string {
	if raw == "" {
		return "/"
	}
	if i := strings.Index(raw, "://"); i >= 0 {
		rest := raw[i+3:]
		slash := strings.IndexByte(rest, '/')
		if slash < 0 {
			return "/"
		}
		raw = rest[slash:]
	}
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	return raw
}
