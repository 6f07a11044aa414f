package services

import (
	"errors"
	"fmt"
	"strings"

	"trivia-backend/internal/models"

	"gorm.io/gorm"
)

// GameService is the game registry: it creates Game records bound to one
// category and answers lookups. Per-game session state (roster, scores) lives
// in SessionService.
type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

type GameSummary struct {
	GameID   uint   `json:"game_id"`
	Category string `json:"category"`
	State    string `json:"state"`
}

func (s *GameService) CreateGame(categoryID uint) (*models.Game, error) {
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
		}
		return nil, err
	}

	game := models.Game{CategoryID: category.ID, State: models.GameStateOpen}
	if err := s.db.Create(&game).Error; err != nil {
		return nil, err
	}
	game.Category = category
	return &game, nil
}

// CreateGameByCategoryName resolves the category by name first; the HTTP body
// carries the name, not the id.
func (s *GameService) CreateGameByCategoryName(name string) (*models.Game, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is empty", ErrBadRequest)
	}

	var category models.Category
	if err := s.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %q", ErrNotFound, name)
		}
		return nil, err
	}

	return s.CreateGame(category.ID)
}

func (s *GameService) GetGame(gameID uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.Preload("Category").First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: game %d", ErrNotFound, gameID)
		}
		return nil, err
	}
	return &game, nil
}

func (s *GameService) ListGames() ([]GameSummary, error) {
	var games []models.Game
	if err := s.db.Preload("Category").Order("id ASC").Find(&games).Error; err != nil {
		return nil, err
	}

	summaries := make([]GameSummary, len(games))
	for i, g := range games {
		summaries[i] = GameSummary{
			GameID:   g.ID,
			Category: g.Category.Name,
			State:    g.State,
		}
	}
	return summaries, nil
}
