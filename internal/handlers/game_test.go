package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-backend/internal/handlers"
	"trivia-backend/internal/services"
	"trivia-backend/internal/testutil"
)

func TestCreateGameEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	testutil.CreateTestCategory(t, db, "Science")

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", "/api/v1/games",
		map[string]string{"category": "Science"}))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp handlers.CreateGameResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.GameID == 0 {
		t.Error("Expected a fresh game id")
	}
}

func TestCreateGameEndpointUnknownCategory(t *testing.T) {
	app, _ := newTestApp(t)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", "/api/v1/games",
		map[string]string{"category": "Nope"}))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestCreateGameEndpointMissingCategory(t *testing.T) {
	app, _ := newTestApp(t)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", "/api/v1/games", map[string]string{}))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestListGamesEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	category := testutil.CreateTestCategory(t, db, "Science")
	testutil.CreateTestGame(t, db, category.ID)
	testutil.CreateTestGame(t, db, category.ID)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("GET", "/api/v1/games", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var games []services.GameSummary
	testutil.AssertJSON(t, w, &games)
	if len(games) != 2 {
		t.Errorf("Expected 2 games, got %d", len(games))
	}
	for _, g := range games {
		if g.Category != "Science" || g.State != "open" {
			t.Errorf("Unexpected summary: %+v", g)
		}
	}
}

func TestGetGameEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	gameID := setupGame(t, db)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("GET", "/api/v1/games/999", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	w = httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("GET", "/api/v1/games/abc", nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("GET", "/api/v1/games/1", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var summary services.GameSummary
	testutil.AssertJSON(t, w, &summary)
	if summary.GameID != gameID || summary.Category != "Science" {
		t.Errorf("Unexpected summary: %+v", summary)
	}
}
