// Package theme stores the visitor's light/dark preference in a cookie.
package theme

import (
	"net/http"
)

// Theme is a colour scheme preference.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

const (
	CookieName = "theme"
	// HintHeader is the client hint carrying the OS colour scheme.
	HintHeader = "Sec-CH-Prefers-Color-Scheme"
	cookieAge  = 365 * 24 * 60 * 60
)

// Parse returns the Theme named by s, or System for anything unknown.
func Parse(s string) Theme {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s)
	}
	return System
}

// FromRequest returns the stored preference, System if none.
func FromRequest(r *http.Request) Theme {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return System
	}
	return Parse(c.Value)
}

// Resolve turns a preference into the scheme to render. System follows the
// client hint and defaults to Light.
func Resolve(pref Theme, r *http.Request) Theme {
	if pref == Light || pref == Dark {
		return pref
	}
	if r != nil && r.Header.Get(HintHeader) == string(Dark) {
		return Dark
	}
	return Light
}

// Toggle flips a resolved scheme.
func Toggle(resolved Theme) Theme {
	if resolved == Dark {
		return Light
	}
	return Dark
}

// Cookie returns the cookie that persists pref.
func Cookie(pref Theme) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    string(pref),
		Path:     "/",
		MaxAge:   cookieAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
