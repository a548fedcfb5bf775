package theme

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Light, Parse("light"))
	assert.Equal(t, Dark, Parse("dark"))
	assert.Equal(t, System, Parse("system"))
	assert.Equal(t, System, Parse("sepia"))
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, System, FromRequest(r))

	r.AddCookie(Cookie(Dark))
	assert.Equal(t, Dark, FromRequest(r))
}

func TestResolve(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, Light, Resolve(System, r))
	assert.Equal(t, Dark, Resolve(Dark, r))

	r.Header.Set(HintHeader, "dark")
	assert.Equal(t, Dark, Resolve(System, r))
	assert.Equal(t, Light, Resolve(Light, r))
	assert.Equal(t, Light, Resolve(System, nil))
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Dark, Toggle(Light))
	assert.Equal(t, Light, Toggle(Dark))
}

func TestCookie(t *testing.T) {
	c := Cookie(Light)
	assert.Equal(t, CookieName, c.Name)
	assert.Equal(t, "light", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Positive(t, c.MaxAge)
}
