package analytics

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/changomango/portfolio/internal/apperr"
)

const (
	adminCookie    = "admin_token"
	adminCookieAge = 24 * 60 * 60
)

// Admin serves the password-protected statistics area.
type Admin struct {
	store    *Store
	tracker  *Tracker
	logger   *zap.Logger
	username string
	password string
	token    string
	secure   bool
}

// NewAdmin creates the admin area. A new session token is generated per
// process, so restarting the server logs everybody out.
func NewAdmin(store *Store, tracker *Tracker, logger *zap.Logger, username, password string, secureCookies bool) (*Admin, error) {
	token, err := RandomToken()
	if err != nil {
		return nil, fmt.Errorf("admin token: %w", err)
	}
	return &Admin{
		store:    store,
		tracker:  tracker,
		logger:   logger,
		username: username,
		password: password,
		token:    token,
		secure:   secureCookies,
	}, nil
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// Authenticate checks admin credentials and returns apperr.ErrUnauthorized
// when they do not match.
func (a *Admin) Authenticate(username, password string) error {
	// Evaluate both so timing does not reveal which one was wrong.
	userOK := equal(username, a.username)
	passOK := equal(password, a.password)
	if !userOK || !passOK {
		return fmt.Errorf("admin login: %w", apperr.ErrUnauthorized)
	}
	return nil
}

// RequireLogin redirects requests without a valid session to the login page.
func (a *Admin) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, a.token) {
			_ = c.Error(fmt.Errorf("admin session: %w", apperr.ErrUnauthorized))
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Register mounts the admin routes on r.
func (a *Admin) Register(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if err := a.Authenticate(c.PostForm("username"), c.PostForm("password")); err != nil {
			_ = c.Error(err)
			a.logger.Warn("admin login failed", zap.String("client", a.tracker.HashIP(c.ClientIP())))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, a.token, adminCookieAge, "/admin", "", a.secure, true)
		a.logger.Info("admin login", zap.String("client", a.tracker.HashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", a.secure, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	group := r.Group("/admin")
	group.Use(a.RequireLogin())

	group.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			a.logger.Error("admin stats failed", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"title": "Admin",
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title":   "Dashboard",
			"stats":   stats,
			"dropped": a.tracker.Dropped(),
		})
	})

	group.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	group.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=site-stats.json")
		c.JSON(http.StatusOK, stats)
	})

	group.POST("/privacy/cleanup", func(c *gin.Context) {
		if a.tracker.retention <= 0 {
			c.JSON(http.StatusOK, gin.H{"removed": 0})
			return
		}
		n, err := a.store.Cleanup(c.Request.Context(), a.tracker.retention)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})
}
