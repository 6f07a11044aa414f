package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trivia-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// SetupTestDB opens a fresh in-memory database with the full schema. One
// connection only: in-memory sqlite is per-connection.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Category{},
		&models.Question{},
		&models.Answer{},
		&models.Game{},
		&models.Player{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CreateTestCategory inserts a category and returns it.
func CreateTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	return &category
}

// CreateTestQuestion inserts a question under a category.
func CreateTestQuestion(t *testing.T, db *gorm.DB, categoryID uint, text string) *models.Question {
	t.Helper()

	question := models.Question{CategoryID: categoryID, Name: text}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return &question
}

// CreateTestGame inserts an open game bound to a category.
func CreateTestGame(t *testing.T, db *gorm.DB, categoryID uint) *models.Game {
	t.Helper()

	game := models.Game{CategoryID: categoryID, State: models.GameStateOpen}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}
	return &game
}

// CreateTestPlayer inserts a player directly, bypassing the session manager.
func CreateTestPlayer(t *testing.T, db *gorm.DB, gameID uint, username string, score int) *models.Player {
	t.Helper()

	player := models.Player{GameID: gameID, Username: username, Score: score, JoinedAt: time.Now()}
	if err := db.Create(&player).Error; err != nil {
		t.Fatalf("Failed to create test player: %v", err)
	}
	return &player
}

// MakeRequest creates an HTTP test request with an optional JSON body.
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}

	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct.
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
