package api

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/FyliaCare/Cv-Builder-App/internal/render"
	"github.com/FyliaCare/Cv-Builder-App/internal/resume"
)

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestGetPreview(t *testing.T) {
	router, session := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/v1/resume/preview", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != render.HTMLContentType {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Jane Doe") {
		t.Fatal("preview missing profile name")
	}

	// Preview follows the selected style.
	if err := session.SetDesign(resume.DesignSettings{Style: resume.StyleClassicBW}); err != nil {
		t.Fatalf("set design: %v", err)
	}
	w = doJSON(t, router, http.MethodGet, "/v1/resume/preview", nil)
	if !strings.Contains(w.Body.String(), "Times New Roman") {
		t.Fatal("preview did not switch to the classic style")
	}
}

func TestDownloadHTML(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/v1/resume/export/html", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="Jane_Doe_CV.html"` {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if !strings.Contains(w.Body.String(), "<h1>Jane Doe</h1>") {
		t.Fatal("export missing name heading")
	}
}

func TestDownloadDocx(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/v1/resume/export/docx", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != render.DocxContentType {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="Jane_Doe_CV.docx"` {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Fatal("expected a zip archive")
	}
}

func TestDownloadHTML_FallbackFileName(t *testing.T) {
	router, session := newTestServer(t)
	session.UpdateProfile(resume.Profile{})

	w := doJSON(t, router, http.MethodGet, "/v1/resume/export/html", nil)
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="candidate_CV.html"` {
		t.Fatalf("unexpected disposition %q", cd)
	}
}
