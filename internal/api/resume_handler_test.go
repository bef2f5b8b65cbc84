package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/FyliaCare/Cv-Builder-App/internal/config"
	"github.com/FyliaCare/Cv-Builder-App/internal/generate"
	"github.com/FyliaCare/Cv-Builder-App/internal/resume"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{Port: 8080},
		Editor: config.EditorConfig{
			DefaultBulletCount: 4,
			MaxBulletCount:     8,
		},
		Photo: config.PhotoConfig{
			MaxBytes:      5 * 1024 * 1024,
			MIMEWhitelist: "image/png,image/jpeg",
		},
	}
}

// newTestServer builds the full engine with deterministic bullet generation.
func newTestServer(t *testing.T) (*gin.Engine, *resume.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testLogger()
	generator := generate.NewWithSource(rand.NewSource(1))
	session := resume.NewSession(resume.NewRecord([]string{"Seed bullet."}))

	router := NewRouter(logger)
	RegisterRoutes(router, session, generator, testConfig(), logger)
	return router, session
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestGetRecord_SeededSession(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/v1/resume", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	var resp recordResponse
	decodeJSON(t, w, &resp)
	if resp.Profile.Name != "Jane Doe" {
		t.Fatalf("expected seeded profile, got %q", resp.Profile.Name)
	}
	if len(resp.Experience) != 1 || len(resp.Education) != 1 {
		t.Fatalf("expected seeded entries, got %d/%d", len(resp.Experience), len(resp.Education))
	}
	if resp.Photo != nil {
		t.Fatalf("expected no photo metadata, got %+v", resp.Photo)
	}
}

func TestUpdateProfile(t *testing.T) {
	router, session := newTestServer(t)

	w := doJSON(t, router, http.MethodPut, "/v1/resume/profile", resume.Profile{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	rec := session.Snapshot()
	if rec.Profile.Name != "Ada Lovelace" || rec.Profile.Email != "ada@example.com" {
		t.Fatalf("profile not applied: %+v", rec.Profile)
	}
}

func TestUpdateDesign(t *testing.T) {
	router, session := newTestServer(t)

	w := doJSON(t, router, http.MethodPut, "/v1/resume/design", map[string]any{
		"style":        resume.StyleClassicBW,
		"accent_color": "#222222",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if got := session.Snapshot().Design.Style; got != resume.StyleClassicBW {
		t.Fatalf("style not applied: %q", got)
	}
}

func TestUpdateDesign_Rejections(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPut, "/v1/resume/design", map[string]any{"style": "Vaporwave"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown style: expected 400 got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/v1/resume/design", map[string]any{
		"style":        resume.StyleModernColor,
		"accent_color": "blue",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad accent: expected 400 got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/v1/resume/design", map[string]any{"accent_color": "#fff"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing style: expected 400 got %d", w.Code)
	}
}

func TestLoadSample(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/v1/resume/sample", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	var resp recordResponse
	decodeJSON(t, w, &resp)
	if resp.Profile.Name != "Jojo Montford" {
		t.Fatalf("expected sample profile, got %q", resp.Profile.Name)
	}
	if len(resp.Experience) == 0 || len(resp.Experience[0].Bullets) != 4 {
		t.Fatalf("expected 4 generated sample bullets, got %+v", resp.Experience)
	}
}

func TestAddExperience_GenerateMode(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/v1/resume/experience", map[string]any{
		"role":        "Sales Manager",
		"company":     "Acme",
		"period":      "2023 — Present",
		"description": "managed regional accounts",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	var entry resume.ExperienceEntry
	decodeJSON(t, w, &entry)
	if entry.ID == "" {
		t.Fatal("expected assigned entry ID")
	}
	if len(entry.Bullets) != 4 {
		t.Fatalf("expected default 4 bullets, got %d", len(entry.Bullets))
	}
	for _, b := range entry.Bullets {
		if !strings.HasSuffix(b, ".") {
			t.Fatalf("bullet %q missing terminal period", b)
		}
	}
}

func TestAddExperience_CountClamped(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/v1/resume/experience", map[string]any{
		"role":        "Engineer",
		"description": "built services",
		"count":       99,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	var entry resume.ExperienceEntry
	decodeJSON(t, w, &entry)
	if len(entry.Bullets) != 8 {
		t.Fatalf("expected clamp to max 8 bullets, got %d", len(entry.Bullets))
	}
}

func TestAddExperience_RawMode(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/v1/resume/experience", map[string]any{
		"role":        "Engineer",
		"description": "shipped the feature\n\nfixed the bug.",
		"mode":        "raw",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	var entry resume.ExperienceEntry
	decodeJSON(t, w, &entry)
	want := []string{"shipped the feature.", "fixed the bug."}
	if len(entry.Bullets) != len(want) {
		t.Fatalf("expected %d raw bullets, got %+v", len(want), entry.Bullets)
	}
	for i := range want {
		if entry.Bullets[i] != want[i] {
			t.Fatalf("bullet %d: want %q got %q", i, want[i], entry.Bullets[i])
		}
	}
}

func TestAddExperience_InvalidMode(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/v1/resume/experience", map[string]any{
		"description": "did things",
		"mode":        "telepathy",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestUpdateExperience(t *testing.T) {
	router, session := newTestServer(t)
	entry := session.AddExperience("Engineer", "Acme", "2020", "built services", []string{"Old."})

	w := doJSON(t, router, http.MethodPut, "/v1/resume/experience/"+entry.ID, map[string]any{
		"role":    "Lead Engineer",
		"company": "Acme",
		"bullets": []string{"New."},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	var updated resume.ExperienceEntry
	decodeJSON(t, w, &updated)
	if updated.Role != "Lead Engineer" || len(updated.Bullets) != 1 || updated.Bullets[0] != "New." {
		t.Fatalf("update not applied: %+v", updated)
	}

	w = doJSON(t, router, http.MethodPut, "/v1/resume/experience/missing", map[string]any{"role": "X"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestRemoveAndClearExperience(t *testing.T) {
	router, session := newTestServer(t)
	entry := session.AddExperience("Engineer", "Acme", "2020", "built services", nil)

	w := doJSON(t, router, http.MethodDelete, "/v1/resume/experience/"+entry.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/v1/resume/experience/"+entry.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/v1/resume/experience", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", w.Code)
	}
	if len(session.Snapshot().Experience) != 0 {
		t.Fatal("expected empty experience list")
	}
}

func TestRegenerateBullets(t *testing.T) {
	router, session := newTestServer(t)
	entry := session.AddExperience("Sales Rep", "Acme", "2020", "managed accounts", []string{"Stale."})

	w := doJSON(t, router, http.MethodPost, "/v1/resume/experience/"+entry.ID+"/bullets/regenerate", map[string]any{
		"count": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	var updated resume.ExperienceEntry
	decodeJSON(t, w, &updated)
	if len(updated.Bullets) != 2 {
		t.Fatalf("expected 2 regenerated bullets, got %+v", updated.Bullets)
	}
	for _, b := range updated.Bullets {
		if b == "Stale." {
			t.Fatal("stale bullet survived regeneration")
		}
	}

	w = doJSON(t, router, http.MethodPost, "/v1/resume/experience/missing/bullets/regenerate", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestEducationEndpoints(t *testing.T) {
	router, session := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/v1/resume/education", map[string]any{
		"degree": "MSc Data Science",
		"school": "UG",
		"year":   "2019",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	var entry resume.EducationEntry
	decodeJSON(t, w, &entry)
	if entry.ID == "" || entry.Degree != "MSc Data Science" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	w = doJSON(t, router, http.MethodDelete, "/v1/resume/education/"+entry.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/v1/resume/education/"+entry.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}

	if len(session.Snapshot().Education) != 1 {
		t.Fatal("seeded education entry should remain")
	}
}

func TestSkillEndpoints(t *testing.T) {
	router, session := newTestServer(t)
	before := len(session.Snapshot().Skills)

	w := doJSON(t, router, http.MethodPost, "/v1/resume/skills", map[string]any{"skill": "Negotiation"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	skills := session.Snapshot().Skills
	if len(skills) != before+1 || skills[0] != "Negotiation" {
		t.Fatalf("skill not front-inserted: %+v", skills)
	}

	w = doJSON(t, router, http.MethodPost, "/v1/resume/skills", map[string]any{"skill": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank skill: expected 400 got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/v1/resume/skills/0", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", w.Code)
	}
	if got := session.Snapshot().Skills; len(got) != before || got[0] == "Negotiation" {
		t.Fatalf("removal did not shift list: %+v", got)
	}

	w = doJSON(t, router, http.MethodDelete, "/v1/resume/skills/99", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("out of range: expected 404 got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/v1/resume/skills/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric index: expected 400 got %d", w.Code)
	}
}

func TestGetRecord_PhotoMetadataOnly(t *testing.T) {
	router, session := newTestServer(t)
	session.SetPhoto([]byte{1, 2, 3, 4}, "image/png")

	w := doJSON(t, router, http.MethodGet, "/v1/resume", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var resp recordResponse
	decodeJSON(t, w, &resp)
	if resp.Photo == nil || resp.Photo.ContentType != "image/png" || resp.Photo.SizeBytes != 4 {
		t.Fatalf("unexpected photo metadata: %+v", resp.Photo)
	}
	if strings.Contains(w.Body.String(), `"data"`) {
		t.Fatal("raw photo bytes must not appear in the record response")
	}
}
