package hx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// TestResult holds the response of a fragment request made in a test.
//
// Provides convenience methods for asserting on HTML content, headers,
// status codes and flashes.
type TestResult struct {
	HTML       string
	StatusCode int
	Headers    http.Header
	Flashes    []Flash
}

// TestRequest sends an HTMX request to h and records the response.
//
// This exercises the full HTTP lifecycle including parameter decoding,
// the fragment function and rendering:
//
//	result := hx.TestRequest(reg.Handler(), http.MethodPost, url, map[string]string{
//	    "name": "new name",
//	})
//	if !result.IsOK() {
//	    t.Fatal("expected success")
//	}
func TestRequest(h http.Handler, method, target string, formData map[string]string) *TestResult {
	form := url.Values{}
	for k, v := range formData {
		form.Set(k, v)
	}

	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	if len(formData) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("HX-Request", "true")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
		Flashes:    parseFlashes(rec.Body.String()),
	}
}

// TestGet sends an HTMX GET request to h.
//
//	result := hx.TestGet(reg.Handler(), frag.URL(hx.Params{"id": 1}))
func TestGet(h http.Handler, target string) *TestResult {
	return TestRequest(h, http.MethodGet, target, nil)
}

// TestPost sends an HTMX POST request with form data to h.
func TestPost(h http.Handler, target string, formData map[string]string) *TestResult {
	return TestRequest(h, http.MethodPost, target, formData)
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// HasFlash checks if a flash message was rendered with the given level and message.
func (r *TestResult) HasFlash(level, message string) bool {
	return slices.Contains(r.Flashes, Flash{Level: level, Message: message})
}

// HasFlashLevel checks if any flash message was rendered with the given level.
func (r *TestResult) HasFlashLevel(level string) bool {
	return slices.ContainsFunc(r.Flashes, func(f Flash) bool {
		return f.Level == level
	})
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set with the given value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// parseFlashes extracts flashes from toast notifications in the body.
func parseFlashes(body string) []Flash {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil
	}

	var flashes []Flash
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level, ok := attr(n, "data-flash-level"); ok {
				flashes = append(flashes, Flash{
					Level:   level,
					Message: strings.TrimSpace(text(n)),
				})
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return flashes
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
