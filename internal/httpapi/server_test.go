package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lvillar/planpdf"
	"github.com/lvillar/planpdf/archive"
	"github.com/lvillar/planpdf/internal/config"
)

const planHTML = `<div style="padding:18px;border-left:4px solid #ff4d4d"><strong>Day 1 – Push</strong><p>Bench press 4x8</p></div>`

func payloadBody(t *testing.T, status string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"status":       status,
		"bmi":          22.86,
		"bmi_category": "Normal Weight",
		"plan_type":    "Muscle Gain Focus",
		"ai_plan":      planHTML,
		"message":      "model overloaded",
		"goal":         "Muscle Gain",
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func newServer(t *testing.T, withArchive bool) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.ProductName = "Test Studio"
	var store Archive
	if withArchive {
		st, err := archive.Open(filepath.Join(t.TempDir(), "plans.db"))
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { st.Close() })
		store = st
	}
	return New(cfg, store, nil)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(t, false).Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("healthz = %d %s", rec.Code, rec.Body)
	}
}

func TestRenderDownload(t *testing.T) {
	h := newServer(t, false).Routes()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plans/pdf", bytes.NewReader(payloadBody(t, "success")))
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, planpdf.DefaultFilename) {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if rec.Header().Get("X-Plan-Pages") != "1" {
		t.Errorf("X-Plan-Pages = %q", rec.Header().Get("X-Plan-Pages"))
	}
	if rec.Header().Get("Location") != "" {
		t.Error("Location set without an archive")
	}
	n, err := planpdf.Verify(rec.Body.Bytes())
	if err != nil || n != 1 {
		t.Errorf("Verify = %d, %v", n, err)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		body []byte
		want int
	}{
		{"malformed json", []byte(`{"status":`), http.StatusBadRequest},
		{"backend failure", nil, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.body
			if body == nil {
				body = payloadBody(t, "error")
			}
			rec := httptest.NewRecorder()
			newServer(t, false).Routes().ServeHTTP(rec,
				httptest.NewRequest(http.MethodPost, "/plans/pdf", bytes.NewReader(body)))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body)
			}
			if !strings.Contains(rec.Header().Get("Content-Type"), "json") {
				t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestBackendMessageReturned(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(t, false).Routes().ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/plans/pdf", bytes.NewReader(payloadBody(t, "error"))))
	if !strings.Contains(rec.Body.String(), "model overloaded") {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestBodyTooLarge(t *testing.T) {
	s := newServer(t, false)
	s.cfg.HTTP.MaxBodyBytes = 16
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/plans/pdf", bytes.NewReader(payloadBody(t, "success"))))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	h := newServer(t, true).Routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/plans/pdf", bytes.NewReader(payloadBody(t, "success"))))
	if rec.Code != http.StatusOK {
		t.Fatalf("render status = %d: %s", rec.Code, rec.Body)
	}
	loc := rec.Header().Get("Location")
	id := rec.Header().Get("X-Plan-Id")
	if loc != "/plans/"+id || id == "" {
		t.Fatalf("Location = %q, X-Plan-Id = %q", loc, id)
	}
	rendered := rec.Body.Bytes()

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, loc, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("download status = %d", rec.Code)
	}
	if !bytes.Equal(rec.Body.Bytes(), rendered) {
		t.Error("archived bytes differ from the rendered download")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plans", nil))
	var list []archive.Record
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != id || list[0].Pages != 1 {
		t.Errorf("list = %+v", list)
	}
}

func TestDownloadMissing(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(t, true).Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plans/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	newServer(t, false).Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plans/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status without archive = %d", rec.Code)
	}
}
