package handlers

import (
	"net/http"
	"strconv"

	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type JoinRequest struct {
	Username string `json:"username" binding:"required,min=1,max=100" example:"alice"`
}

type JoinResponse struct {
	Category string `json:"category" example:"Science"`
}

type SubmitScoreRequest struct {
	Username string `json:"username" binding:"required,min=1,max=100" example:"alice"`
	Score    *int   `json:"score" binding:"required" example:"10"`
}

type SubmitScoreResponse struct {
	Rank int `json:"rank" example:"1"`
}

func gameIDParam(c *gin.Context) (uint, bool) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		return 0, false
	}
	return uint(gameID), true
}

// Join godoc
// @Summary      Join a game
// @Description  Add a player to the game's roster; usernames are unique per game
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path int true "Game ID"
// @Param        request body JoinRequest true "Player data"
// @Success      201 {object} JoinResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/games/{id}/join [post]
func (h *SessionHandler) Join(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.sessionService.Join(gameID, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, JoinResponse{Category: category})
}

// SubmitScore godoc
// @Summary      Submit a player's score
// @Description  Set the player's score for the round and return their 1-based rank
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path int true "Game ID"
// @Param        request body SubmitScoreRequest true "Score data"
// @Success      200 {object} SubmitScoreResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/games/{id}/scores [post]
func (h *SessionHandler) SubmitScore(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rank, err := h.sessionService.SubmitScore(gameID, req.Username, *req.Score)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubmitScoreResponse{Rank: rank})
}

// GetScores godoc
// @Summary      Get the leaderboard
// @Description  Full roster sorted ascending by score, ties by join order
// @Tags         sessions
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {array} services.ScoreEntry
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{id}/scores [get]
func (h *SessionHandler) GetScores(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	entries, err := h.sessionService.Leaderboard(gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// NextQuestion godoc
// @Summary      Advance to the next question
// @Description  Broadcasts nextQuestion to the game's subscribers; the first call opens play
// @Tags         sessions
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/games/{id}/next [post]
func (h *SessionHandler) NextQuestion(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	if err := h.sessionService.AdvanceQuestion(gameID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "next question"})
}

// EndGame godoc
// @Summary      End a game
// @Description  Move the game to its terminal state; no further joins or scores
// @Tags         sessions
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{id}/end [post]
func (h *SessionHandler) EndGame(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	if err := h.sessionService.EndGame(gameID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "game ended"})
}
