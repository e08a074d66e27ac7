package hx

import (
	"net/http"
	"testing"

	"github.com/a-h/templ"
	"github.com/pthm/bulma"
)

func echoHandler(status int, body templ.Component) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Method", r.Method)
		w.Header().Set("X-HX", r.Header.Get("HX-Request"))
		w.Header().Set("X-Name", r.FormValue("name"))
		w.WriteHeader(status)
		_ = body.Render(r.Context(), w)
	})
}

func TestTestGet(t *testing.T) {
	result := TestGet(echoHandler(http.StatusOK, bulma.Plain("hello world")), "/x")

	if !result.IsOK() {
		t.Errorf("IsOK() = false, status %d", result.StatusCode)
	}
	if !result.HasHeader("X-Method", http.MethodGet) {
		t.Errorf("method = %q, want GET", result.GetHeader("X-Method"))
	}
	if !result.HasHeader("X-HX", "true") {
		t.Error("HX-Request header not sent")
	}
	if !result.HTMLContains("hello") {
		t.Errorf("HTMLContains(hello) = false: %s", result.HTML)
	}
	if !result.HTMLContainsAll("hello", "world") {
		t.Error("HTMLContainsAll(hello, world) = false")
	}
	if result.HTMLContainsAll("hello", "mars") {
		t.Error("HTMLContainsAll(hello, mars) = true")
	}
	if !result.HTMLContainsAny("mars", "world") {
		t.Error("HTMLContainsAny(mars, world) = false")
	}
	if result.HTMLContainsAny("mars", "venus") {
		t.Error("HTMLContainsAny(mars, venus) = true")
	}
}

func TestTestPost(t *testing.T) {
	result := TestPost(echoHandler(http.StatusCreated, bulma.Plain("")), "/x", map[string]string{"name": "Ada"})

	if !result.HasStatus(http.StatusCreated) {
		t.Errorf("status = %d, want 201", result.StatusCode)
	}
	if result.IsOK() {
		t.Error("IsOK() = true for 201")
	}
	if !result.HasHeader("X-Method", http.MethodPost) {
		t.Errorf("method = %q, want POST", result.GetHeader("X-Method"))
	}
	if !result.HasHeader("X-Name", "Ada") {
		t.Errorf("form value = %q, want Ada", result.GetHeader("X-Name"))
	}
}

func TestTestResultFlashes(t *testing.T) {
	body := bulma.Fragment(
		bulma.Plain("saved"),
		FlashesOOB([]Flash{
			{Level: FlashSuccess, Message: "Item saved"},
			{Level: FlashWarning, Message: "Quota at 90%"},
		}),
	)
	result := TestGet(echoHandler(http.StatusOK, body), "/x")

	if len(result.Flashes) != 2 {
		t.Fatalf("got %d flashes, want 2: %+v", len(result.Flashes), result.Flashes)
	}
	if !result.HasFlash(FlashSuccess, "Item saved") {
		t.Errorf("HasFlash(success, Item saved) = false: %+v", result.Flashes)
	}
	if !result.HasFlash(FlashWarning, "Quota at 90%") {
		t.Errorf("HasFlash(warning, Quota at 90%%) = false: %+v", result.Flashes)
	}
	if result.HasFlash(FlashSuccess, "Quota at 90%") {
		t.Error("HasFlash matched the wrong level")
	}
	if !result.HasFlashLevel(FlashWarning) {
		t.Error("HasFlashLevel(warning) = false")
	}
	if result.HasFlashLevel(FlashError) {
		t.Error("HasFlashLevel(error) = true")
	}
}

func TestTestResultNoFlashes(t *testing.T) {
	result := TestGet(echoHandler(http.StatusOK, bulma.Plain("<p>plain</p>")), "/x")
	if len(result.Flashes) != 0 {
		t.Errorf("Flashes = %+v, want none", result.Flashes)
	}
}
