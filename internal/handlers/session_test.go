package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-backend/internal/handlers"
	"trivia-backend/internal/router"
	"trivia-backend/internal/services"
	"trivia-backend/internal/testutil"
	"trivia-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return router.New(db, ws.NewHub()), db
}

func setupGame(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	category := testutil.CreateTestCategory(t, db, "Science")
	return testutil.CreateTestGame(t, db, category.ID).ID
}

func TestJoinEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	gameID := setupGame(t, db)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", fmt.Sprintf("/api/v1/games/%d/join", gameID),
		map[string]string{"username": "alice"}))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp handlers.JoinResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Category != "Science" {
		t.Errorf("Expected category Science, got %q", resp.Category)
	}
}

func TestJoinEndpointDuplicate(t *testing.T) {
	app, db := newTestApp(t)
	gameID := setupGame(t, db)

	path := fmt.Sprintf("/api/v1/games/%d/join", gameID)
	body := map[string]string{"username": "alice"}

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", path, body))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", path, body))
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestJoinEndpointUnknownGame(t *testing.T) {
	app, _ := newTestApp(t)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", "/api/v1/games/999/join",
		map[string]string{"username": "alice"}))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestJoinEndpointMalformedBody(t *testing.T) {
	app, db := newTestApp(t)
	gameID := setupGame(t, db)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", fmt.Sprintf("/api/v1/games/%d/join", gameID),
		map[string]string{"name": "alice"}))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestScoresEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	gameID := setupGame(t, db)

	join := func(username string) {
		w := httptest.NewRecorder()
		app.ServeHTTP(w, testutil.MakeRequest("POST", fmt.Sprintf("/api/v1/games/%d/join", gameID),
			map[string]string{"username": username}))
		testutil.AssertStatus(t, w, http.StatusCreated)
	}
	submit := func(username string, score int) handlers.SubmitScoreResponse {
		w := httptest.NewRecorder()
		app.ServeHTTP(w, testutil.MakeRequest("POST", fmt.Sprintf("/api/v1/games/%d/scores", gameID),
			map[string]any{"username": username, "score": score}))
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp handlers.SubmitScoreResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	join("alice")
	join("bob")

	if resp := submit("alice", 10); resp.Rank != 1 {
		t.Errorf("Expected rank 1 for alice, got %d", resp.Rank)
	}
	if resp := submit("bob", 5); resp.Rank != 1 {
		t.Errorf("Expected rank 1 for bob (lower score), got %d", resp.Rank)
	}

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("GET", fmt.Sprintf("/api/v1/games/%d/scores", gameID), nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var board []services.ScoreEntry
	testutil.AssertJSON(t, w, &board)
	if len(board) != 2 || board[0].Username != "bob" || board[1].Username != "alice" {
		t.Errorf("Expected ascending [bob alice], got %+v", board)
	}
}

func TestScoresEndpointUnknownPlayer(t *testing.T) {
	app, db := newTestApp(t)
	gameID := setupGame(t, db)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", fmt.Sprintf("/api/v1/games/%d/scores", gameID),
		map[string]any{"username": "ghost", "score": 5}))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestScoresEndpointMissingScore(t *testing.T) {
	app, db := newTestApp(t)
	gameID := setupGame(t, db)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", fmt.Sprintf("/api/v1/games/%d/scores", gameID),
		map[string]any{"username": "alice"}))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestNextAndEndEndpoints(t *testing.T) {
	app, db := newTestApp(t)
	gameID := setupGame(t, db)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", fmt.Sprintf("/api/v1/games/%d/next", gameID), nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("GET", fmt.Sprintf("/api/v1/games/%d", gameID), nil))
	var summary services.GameSummary
	testutil.AssertJSON(t, w, &summary)
	if summary.State != "in_progress" {
		t.Errorf("Expected in_progress after first advance, got %q", summary.State)
	}

	w = httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", fmt.Sprintf("/api/v1/games/%d/end", gameID), nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Ended games reject joins and scores.
	w = httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", fmt.Sprintf("/api/v1/games/%d/join", gameID),
		map[string]string{"username": "late"}))
	testutil.AssertStatus(t, w, http.StatusConflict)

	w = httptest.NewRecorder()
	app.ServeHTTP(w, testutil.MakeRequest("POST", fmt.Sprintf("/api/v1/games/%d/next", gameID), nil))
	testutil.AssertStatus(t, w, http.StatusConflict)
}
