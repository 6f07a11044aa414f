package handlers

import (
	"net/http"

	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255" example:"Science"`
}

type CreateQuestionRequest struct {
	Question string `json:"question" binding:"required,min=1" example:"What is the boiling point of water?"`
}

type CreateAnswersRequest struct {
	Answers []string `json:"answers" binding:"required,min=1,dive,min=1" example:"100C,212F"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  Get the names of all catalog categories
// @Tags         catalog
// @Produce      json
// @Success      200 {array} string
// @Router       /api/v1/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}

	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name
	}
	c.JSON(http.StatusOK, names)
}

// CreateCategory godoc
// @Summary      Create a category
// @Description  Add a new category to the catalog; names are unique
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body CreateCategoryRequest true "Category data"
// @Success      201 {object} models.Category
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.catalogService.CreateCategory(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// ListQuestions godoc
// @Summary      List questions in a category
// @Tags         catalog
// @Produce      json
// @Param        category path string true "Category name"
// @Success      200 {array} string
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/categories/{category}/questions [get]
func (h *CatalogHandler) ListQuestions(c *gin.Context) {
	questions, err := h.catalogService.ListQuestions(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	names := make([]string, len(questions))
	for i, q := range questions {
		names[i] = q.Name
	}
	c.JSON(http.StatusOK, names)
}

// CreateQuestion godoc
// @Summary      Add a question to a category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        category path string true "Category name"
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      201 {object} models.Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/categories/{category}/questions [post]
func (h *CatalogHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.catalogService.CreateQuestion(c.Param("category"), req.Question)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

// ListAnswers godoc
// @Summary      List acceptable answers for a question
// @Description  Read-along answers for the facilitator; nothing is auto-graded
// @Tags         catalog
// @Produce      json
// @Param        category path string true "Category name"
// @Param        question path string true "Question text"
// @Success      200 {array} string
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/categories/{category}/questions/{question}/answers [get]
func (h *CatalogHandler) ListAnswers(c *gin.Context) {
	answers, err := h.catalogService.ListAnswers(c.Param("category"), c.Param("question"))
	if err != nil {
		respondError(c, err)
		return
	}

	names := make([]string, len(answers))
	for i, a := range answers {
		names[i] = a.Name
	}
	c.JSON(http.StatusOK, names)
}

// CreateAnswers godoc
// @Summary      Add answers to a question
// @Description  Store a batch of acceptable answers in one call
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        category path string true "Category name"
// @Param        question path string true "Question text"
// @Param        request body CreateAnswersRequest true "Answer data"
// @Success      201 {array} models.Answer
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/categories/{category}/questions/{question}/answers [post]
func (h *CatalogHandler) CreateAnswers(c *gin.Context) {
	var req CreateAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	answers, err := h.catalogService.CreateAnswers(c.Param("category"), c.Param("question"), req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, answers)
}
