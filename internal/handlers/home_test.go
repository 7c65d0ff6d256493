package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hydromix/internal/mixture"
)

func TestHomeRendersDefaultCalculation(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	Home(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}
	body := w.Body.String()
	for _, want := range []string{
		"<!doctype html>",
		"Mixture Calculator",
		`name="container_size"`,
		`value="500"`,
		`<option value="ml" selected>`,
		`<option value="metric" selected>`,
		"120.00",
		"60.00",
		"500 ml",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
}

func TestHomePrefillsFromQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?container_size=1&unit=gallon&system=imperial", nil)
	w := httptest.NewRecorder()
	Home(w, req)

	body := w.Body.String()
	for _, want := range []string{"908.50", "454.25", "1.00 gallons", `<option value="gallon" selected>`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
}

func TestHomeShowsValidationError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?container_size=-2&unit=ml", nil)
	w := httptest.NewRecorder()
	Home(w, req)

	body := w.Body.String()
	if !strings.Contains(body, mixture.MsgInvalidSize) {
		t.Fatalf("expected validation message in body")
	}
	if strings.Contains(body, "Required Amounts") {
		t.Fatal("expected results to be suppressed for invalid input")
	}
}

func TestHomeRejectsOtherPaths(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	w := httptest.NewRecorder()
	Home(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestHomeRejectsPost(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	Home(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
}

func TestHomeLoadsPreset(t *testing.T) {
	withTestDatabase(t)

	req := httptest.NewRequest(http.MethodGet, "/?preset=bucket", nil)
	w := httptest.NewRecorder()
	Home(w, req)

	body := w.Body.String()
	for _, want := range []string{`href="/?preset=milk-jug"`, `<option value="5gallon" selected>`, "4542.49", "5.00 gallons"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
}

func TestHomeFiltersPresetsByVariant(t *testing.T) {
	withTestDatabase(t)
	withDefaults(t, Defaults{System: mixture.Imperial, Variant: mixture.ContainerVariant})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	Home(w, req)

	body := w.Body.String()
	if strings.Contains(body, "preset=pint-jar") {
		t.Fatal("expected fluid ounce presets to be hidden from the container form")
	}
	if !strings.Contains(body, "preset=reservoir-tote") {
		t.Fatal("expected five gallon presets to be offered")
	}
	if !strings.Contains(body, `<option value="gallon" selected>`) {
		t.Fatal("expected imperial container form to default to gallons")
	}
}

func TestHomeIgnoresUnknownPreset(t *testing.T) {
	withTestDatabase(t)

	req := httptest.NewRequest(http.MethodGet, "/?preset=bathtub", nil)
	w := httptest.NewRecorder()
	Home(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `value="500"`) {
		t.Fatal("expected default form values for an unknown preset")
	}
}
