package seasons

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appdb "github.com/canchalibre/canchalibre/internal/db"
	"github.com/canchalibre/canchalibre/internal/testutil"
)

func setupSeasonsTest(t *testing.T) *appdb.DB {
	t.Helper()

	db := testutil.NewTestDB(t)
	InitHandlers(db)
	t.Cleanup(func() { database = nil })
	return db
}

func createSeasonRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/seasons", strings.NewReader(body))
	w := httptest.NewRecorder()
	HandleSeasonCreate(w, req)
	return w
}

func TestHandleSeasonCreate(t *testing.T) {
	setupSeasonsTest(t)

	w := createSeasonRequest(t, `{"name":"Apertura 2026","startDate":"2026-02-01"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var season appdb.Season
	if err := json.Unmarshal(w.Body.Bytes(), &season); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if season.ID == "" {
		t.Fatal("expected a season id")
	}
	if season.IsActive {
		t.Fatal("new season should be inactive")
	}
}

func TestHandleSeasonCreateValidation(t *testing.T) {
	setupSeasonsTest(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"startDate":"2026-02-01"}`},
		{"bad date", `{"name":"Apertura","startDate":"02/01/2026"}`},
		{"unknown field", `{"name":"Apertura","startDate":"2026-02-01","bogus":true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := createSeasonRequest(t, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleSeasonActivate(t *testing.T) {
	db := setupSeasonsTest(t)

	w := createSeasonRequest(t, `{"name":"Apertura 2026","startDate":"2026-02-01"}`)
	var season appdb.Season
	if err := json.Unmarshal(w.Body.Bytes(), &season); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/seasons/"+season.ID+"/activate", nil)
	req.SetPathValue("id", season.ID)
	w = httptest.NewRecorder()
	HandleSeasonActivate(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("activate status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	active, err := db.Queries.GetActiveSeason(context.Background())
	if err != nil {
		t.Fatalf("active season: %v", err)
	}
	if active.ID != season.ID {
		t.Fatalf("active season = %s, want %s", active.ID, season.ID)
	}
}

func TestHandleSeasonActivateMissing(t *testing.T) {
	setupSeasonsTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/seasons/nope/activate", nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	HandleSeasonActivate(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHandleActiveSeasonEmpty(t *testing.T) {
	setupSeasonsTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/seasons/active", nil)
	w := httptest.NewRecorder()
	HandleActiveSeason(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
