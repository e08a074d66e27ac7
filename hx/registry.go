package hx

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

// DefaultPrefix is where a Registry serves its fragments.
const DefaultPrefix = "/_c"

// FragmentFunc renders a fragment from its decoded parameters.
type FragmentFunc func(r *http.Request, p Params) (templ.Component, error)

// Fragment is a registered fragment. Use it to build URLs and lazy
// placeholders that point at it.
type Fragment struct {
	name      string
	path      string
	sensitive bool
	fn        FragmentFunc
	reg       *Registry
}

// Sensitive encrypts the fragment's parameters instead of signing them.
//
// Signed mode (default) is debuggable - params are visible in URLs as
// base64 msgpack. Encrypted mode makes them completely opaque.
func (f *Fragment) Sensitive() *Fragment {
	f.sensitive = true
	return f
}

// Name returns the fragment's name.
func (f *Fragment) Name() string {
	return f.name
}

// Path returns the fragment's URL path without parameters.
func (f *Fragment) Path() string {
	return f.path
}

// IsSensitive returns whether the fragment uses encrypted params.
func (f *Fragment) IsSensitive() bool {
	return f.sensitive
}

// URL returns the fragment URL carrying params. If the params cannot be
// encoded the bare path is returned and the failure is logged.
func (f *Fragment) URL(params Params) string {
	u, err := f.encodeURL(params)
	if err != nil {
		f.reg.Logger.Error().Err(err).Str("fragment", f.name).Msg("hx: encoding fragment params")
		return f.path
	}
	return u
}

func (f *Fragment) encodeURL(params Params) (string, error) {
	if len(params) == 0 {
		return f.path, nil
	}
	encoded, err := f.reg.encoder.Encode(params, f.sensitive)
	if err != nil {
		return "", err
	}
	return f.path + "?p=" + url.QueryEscape(encoded), nil
}

// Lazy renders placeholder until the fragment scrolls into view.
func (f *Fragment) Lazy(params Params, placeholder templ.Component) templ.Component {
	return Lazy(f.URL(params), placeholder)
}

// Defer renders placeholder until the page has loaded.
func (f *Fragment) Defer(params Params, placeholder templ.Component) templ.Component {
	return Defer(f.URL(params), placeholder)
}

// Registry manages fragment registration and routing.
type Registry struct {
	mu        sync.RWMutex
	mux       *http.ServeMux
	encoder   *Encoder
	prefix    string
	fragments map[string]*Fragment

	// OnError is called when a fragment request fails.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)

	// Logger receives render failures and unexpected fragment errors.
	// The default discards everything.
	Logger zerolog.Logger
}

// NewRegistry creates a new fragment registry with the given key, serving
// under DefaultPrefix.
func NewRegistry(key []byte) *Registry {
	return NewRegistryAt(DefaultPrefix, key)
}

// NewRegistryAt creates a registry serving under prefix.
func NewRegistryAt(prefix string, key []byte) *Registry {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("hx: failed to create encoder: %v", err))
	}

	reg := &Registry{
		mux:       http.NewServeMux(),
		encoder:   enc,
		prefix:    "/" + strings.Trim(prefix, "/"),
		fragments: make(map[string]*Fragment),
		Logger:    zerolog.Nop(),
	}

	reg.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		if IsNotFound(err) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		if IsBadRequest(err) {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		reg.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("hx: fragment failed")
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}

	reg.mux.HandleFunc(reg.prefix+"/", func(w http.ResponseWriter, r *http.Request) {
		reg.OnError(w, r, ErrNotFound)
	})

	return reg
}

// Prefix returns the path under which fragments are served.
func (reg *Registry) Prefix() string {
	return reg.prefix
}

// Encoder returns the registry's encoder.
func (reg *Registry) Encoder() *Encoder {
	return reg.encoder
}

// Fragment registers fn under name. Panics if the name is already taken
// or is not a single path segment.
func (reg *Registry) Fragment(name string, fn FragmentFunc) *Fragment {
	if name == "" || strings.ContainsAny(name, "/?#{} ") {
		panic(fmt.Sprintf("hx: invalid fragment name %q", name))
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.fragments[name]; exists {
		panic(fmt.Sprintf("hx: fragment name collision for %q", name))
	}

	f := &Fragment{
		name: name,
		path: reg.prefix + "/" + name,
		fn:   fn,
		reg:  reg,
	}
	reg.fragments[name] = f
	reg.mux.HandleFunc(f.path, func(w http.ResponseWriter, r *http.Request) {
		reg.serve(f, w, r)
	})
	return f
}

// Lookup returns the fragment registered under name.
func (reg *Registry) Lookup(name string) (*Fragment, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	f, ok := reg.fragments[name]
	return f, ok
}

// URL returns the URL of the fragment registered under name.
func (reg *Registry) URL(name string, params Params) (string, error) {
	f, ok := reg.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return f.encodeURL(params)
}

func (reg *Registry) serve(f *Fragment, w http.ResponseWriter, r *http.Request) {
	params := Params{}
	if encoded := r.URL.Query().Get("p"); encoded != "" {
		decoded, err := reg.encoder.Decode(encoded, f.sensitive)
		if err != nil {
			reg.OnError(w, r, wrapEncodingError(err))
			return
		}
		params = decoded
	}

	c, err := f.fn(r, params)
	if err != nil {
		reg.OnError(w, r, err)
		return
	}
	if err := Render(w, r, c); err != nil {
		reg.Logger.Error().Err(err).Str("fragment", f.name).Msg("hx: rendering fragment")
	}
}

// Handler returns the HTTP handler for fragment routes.
// Mount this at the registry prefix followed by a slash ("/_c/").
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CSRF protection: mutating methods require HX-Request header
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			if r.Header.Get("HX-Request") != "true" {
				http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
				return
			}
		}

		reg.mux.ServeHTTP(w, r)
	})
}
