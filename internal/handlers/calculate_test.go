package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"hydromix/internal/mixture"
)

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestCalculateReturnsPartialForHTMX(t *testing.T) {
	t.Parallel()

	req := postForm(url.Values{"container_size": {"17"}, "unit": {"floz"}, "system": {"imperial"}})
	req.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	Calculate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.HasPrefix(body, `<div id="results">`) {
		t.Fatalf("expected results partial, got %q", body)
	}
	if strings.Contains(body, "<html") {
		t.Fatal("expected HTMX response without the page layout")
	}
	for _, want := range []string{"120.66", "60.33", "17.0 fl oz"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected partial to contain %q, got %q", want, body)
		}
	}
}

func TestCalculateReturnsFullPageWithoutHTMX(t *testing.T) {
	t.Parallel()

	req := postForm(url.Values{"container_size": {"1"}, "unit": {"liter"}, "system": {"metric"}})
	w := httptest.NewRecorder()
	Calculate(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "<!doctype html>") {
		t.Fatal("expected full document for a plain form post")
	}
	for _, want := range []string{"240.00", "1.00 L", "2.000x"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
}

func TestCalculateReportsFirstValidationError(t *testing.T) {
	t.Parallel()

	req := postForm(url.Values{"container_size": {"abc"}, "unit": {"barrel"}})
	req.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	Calculate(w, req)

	body := w.Body.String()
	if !strings.Contains(body, mixture.MsgInvalidSize) {
		t.Fatalf("expected size error, got %q", body)
	}
	if strings.Contains(body, mixture.MsgInvalidUnit) {
		t.Fatal("expected only the first validation message to be shown")
	}
}

func TestCalculateRejectsUnitOutsideVariant(t *testing.T) {
	t.Parallel()

	req := postForm(url.Values{"container_size": {"2"}, "unit": {"liter"}, "variant": {"container"}})
	req.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	Calculate(w, req)

	if !strings.Contains(w.Body.String(), mixture.MsgInvalidUnit) {
		t.Fatalf("expected unit error for the container form, got %q", w.Body.String())
	}
}

func TestCalculateRejectsGet(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/calculate", nil)
	w := httptest.NewRecorder()
	Calculate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
}

func TestCalculateRemembersSystem(t *testing.T) {
	sm := withTestSessionManager(t)

	handler := sm.LoadAndSave(http.HandlerFunc(Calculate))
	req := postForm(url.Values{"container_size": {"1"}, "unit": {"gallon"}, "system": {"imperial"}})
	req.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	home := sm.LoadAndSave(http.HandlerFunc(Home))
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	home.ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.Contains(body, `<option value="imperial" selected>`) {
		t.Fatal("expected the remembered system to be preselected")
	}
	if !strings.Contains(body, `<option value="floz" selected>`) {
		t.Fatal("expected the imperial default unit to be preselected")
	}
}

func TestCalculateSliderSwitchesToLargeUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		system string
		slider string
		want   []string
	}{
		{"metric", "750", []string{"180.00", "750 ml"}},
		{"metric", "2500", []string{"600.00", "2.50 L"}},
		{"imperial", "256", []string{"1817.00", "2.00 gallons"}},
	}
	for _, tt := range tests {
		req := postForm(url.Values{"slider": {tt.slider}, "system": {tt.system}, "unit": {"ml"}})
		req.Header.Set("HX-Request", "true")
		w := httptest.NewRecorder()
		Calculate(w, req)

		body := w.Body.String()
		for _, want := range tt.want {
			if !strings.Contains(body, want) {
				t.Fatalf("slider %s %s: expected %q in %q", tt.slider, tt.system, want, body)
			}
		}
	}
}

func TestCalculateSliderStaysWithinContainerVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		system string
		slider string
		want   []string
	}{
		{"metric", "1500", []string{"360.00", "1.50 L", `<option value="ml" selected>`}},
		{"imperial", "256", []string{"1817.00", "2.00 gallons", `<option value="gallon" selected>`}},
	}
	for _, tt := range tests {
		req := postForm(url.Values{"slider": {tt.slider}, "system": {tt.system}, "variant": {"container"}})
		w := httptest.NewRecorder()
		Calculate(w, req)

		body := w.Body.String()
		if strings.Contains(body, mixture.MsgInvalidUnit) {
			t.Fatalf("slider %s %s: unexpected unit error in %q", tt.slider, tt.system, body)
		}
		for _, want := range tt.want {
			if !strings.Contains(body, want) {
				t.Fatalf("slider %s %s: expected %q in %q", tt.slider, tt.system, want, body)
			}
		}
	}
}
