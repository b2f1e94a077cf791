package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treat-hunt/internal/storage"
)

type fakeSource struct {
	rounds    []storage.RoundRecord
	lastLimit int
	err       error
}

func (f *fakeSource) TopRounds(gameID string, limit int) ([]storage.RoundRecord, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.rounds) {
		return f.rounds[:limit], nil
	}
	return f.rounds, nil
}

func (f *fakeSource) RoundByID(id string) (storage.RoundRecord, error) {
	for _, r := range f.rounds {
		if r.ID == id {
			return r, nil
		}
	}
	return storage.RoundRecord{}, storage.ErrNotFound
}

func (f *fakeSource) Stats(gameID string) (storage.GameStats, error) {
	return storage.GameStats{GameID: gameID, Rounds: len(f.rounds), HighScore: 42}, f.err
}

func newTestServer(src *fakeSource) *Server {
	return NewServer(src, "treats", log.New(io.Discard))
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRounds(t *testing.T) {
	src := &fakeSource{rounds: []storage.RoundRecord{
		{ID: "a", Points: 40}, {ID: "b", Points: 20}, {ID: "c", Points: 5},
	}}
	s := newTestServer(src)

	rec := get(t, s, "/api/rounds?limit=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var got []storage.RoundRecord
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" {
		t.Errorf("rounds = %+v", got)
	}

	get(t, s, "/api/rounds")
	if src.lastLimit != defaultLimit {
		t.Errorf("default limit = %d, expected %d", src.lastLimit, defaultLimit)
	}
}

func TestRoundsEmptyIsArray(t *testing.T) {
	rec := get(t, newTestServer(&fakeSource{}), "/api/rounds")
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, expected []", body)
	}
}

func TestRoundsBadLimit(t *testing.T) {
	s := newTestServer(&fakeSource{})
	for _, q := range []string{"0", "-3", "101", "ten"} {
		rec := get(t, s, "/api/rounds?limit="+q)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s status = %d, expected 400", q, rec.Code)
		}
	}
}

func TestRoundByID(t *testing.T) {
	s := newTestServer(&fakeSource{rounds: []storage.RoundRecord{{ID: "abc", Points: 9, Outcome: "won"}}})

	rec := get(t, s, "/api/rounds/abc")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	var got storage.RoundRecord
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Points != 9 || got.Outcome != "won" {
		t.Errorf("round = %+v", got)
	}

	if rec := get(t, s, "/api/rounds/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, expected 404", rec.Code)
	}
}

func TestStats(t *testing.T) {
	rec := get(t, newTestServer(&fakeSource{rounds: []storage.RoundRecord{{ID: "x"}}}), "/api/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	var got storage.GameStats
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.GameID != "treats" || got.Rounds != 1 || got.HighScore != 42 {
		t.Errorf("stats = %+v", got)
	}
}

func TestStorageErrorIs500(t *testing.T) {
	s := newTestServer(&fakeSource{err: errors.New("locked")})
	if rec := get(t, s, "/api/stats"); rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, expected 500", rec.Code)
	}
	if rec := get(t, s, "/api/rounds"); rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, expected 500", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	if rec := get(t, newTestServer(&fakeSource{}), "/api/nothing"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, expected 404", rec.Code)
	}
}
