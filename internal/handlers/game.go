package handlers

import (
	"net/http"
	"strconv"

	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

type CreateGameRequest struct {
	Category string `json:"category" binding:"required,min=1,max=255" example:"Science"`
}

type CreateGameResponse struct {
	GameID uint `json:"game_id" example:"1"`
}

// CreateGame godoc
// @Summary      Create a game
// @Description  Start a new game session bound to a category
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        request body CreateGameRequest true "Game data"
// @Success      201 {object} CreateGameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	game, err := h.gameService.CreateGameByCategoryName(req.Category)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateGameResponse{GameID: game.ID})
}

// ListGames godoc
// @Summary      List games
// @Description  Get every game with its bound category and state
// @Tags         games
// @Produce      json
// @Success      200 {array} services.GameSummary
// @Router       /api/v1/games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.gameService.ListGames()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// GetGame godoc
// @Summary      Get a game
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} services.GameSummary
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		return
	}

	game, err := h.gameService.GetGame(uint(gameID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.GameSummary{
		GameID:   game.ID,
		Category: game.Category.Name,
		State:    game.State,
	})
}
