// Package bulmaecho provides Echo framework integration for bulma fragments.
//
// Mount a fragment registry onto an Echo instance or group:
//
//	e := echo.New()
//	reg := bulmaecho.Mount(e, bulmaecho.WithKey(key))
//	stats := reg.Fragment("stats", statsFragment)
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	reg := bulmaecho.MountGroup(g)
package bulmaecho

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/bulma/hx"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key  []byte
	path string
}

// WithKey sets the signing and encryption key for the registry.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithPath sets the URL path prefix for fragment routes.
// Defaults to hx.DefaultPrefix.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// Mount creates a registry and mounts its handler on an Echo instance.
//
//	e := echo.New()
//	reg := bulmaecho.Mount(e)
//
//	// With options:
//	reg := bulmaecho.Mount(e, bulmaecho.WithKey(key))
func Mount(e *echo.Echo, opts ...Option) *hx.Registry {
	reg := newRegistry(opts)
	e.Any(reg.Prefix()+"/*", echo.WrapHandler(reg.Handler()))
	return reg
}

// MountGroup creates a registry and mounts its handler on an Echo group.
// Fragments share middleware with the group (auth, logging, etc.).
//
// Fragment URLs built by the registry do not carry the group prefix; set
// WithPath to the full path when links must resolve through the group.
//
//	g := e.Group("/app", authMiddleware)
//	reg := bulmaecho.MountGroup(g, bulmaecho.WithPath("/app/_c"))
func MountGroup(g *echo.Group, opts ...Option) *hx.Registry {
	reg := newRegistry(opts)
	h := reg.Handler()
	route := "/" + lastSegment(reg.Prefix()) + "/*"
	g.Any(route, func(c echo.Context) error {
		// The registry routes on its own prefix, so rewrite the path the
		// group matched into it.
		r := c.Request()
		r.URL.Path = reg.Prefix() + "/" + c.Param("*")
		r.URL.RawPath = ""
		h.ServeHTTP(c.Response(), r)
		return nil
	})
	return reg
}

func lastSegment(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if i := strings.LastIndex(prefix, "/"); i >= 0 {
		return prefix[i+1:]
	}
	return prefix
}

func newRegistry(opts []Option) *hx.Registry {
	o := &options{path: hx.DefaultPrefix}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("bulmaecho: failed to generate random key: %v", err))
		}
	}

	return hx.NewRegistryAt(o.path, key)
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return bulmaecho.Render(c, page())
//	}
func Render(c echo.Context, component templ.Component) error {
	return hx.Render(c.Response(), c.Request(), component)
}
