package services

import (
	"errors"
	"fmt"
	"strings"

	"trivia-backend/internal/models"

	"gorm.io/gorm"
)

// CatalogService owns the Category -> Question -> Answer tree. Plain CRUD;
// the only constraint beyond foreign keys is category name uniqueness.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CatalogService) CreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is empty", ErrBadRequest)
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: category %q already exists", ErrConflict, name)
	}

	category := models.Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		// Concurrent create of the same name can slip past the count; the
		// unique index settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: category %q already exists", ErrConflict, name)
		}
		return nil, err
	}
	return &category, nil
}

func (s *CatalogService) GetCategoryByName(name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %q", ErrNotFound, name)
		}
		return nil, err
	}
	return &category, nil
}

func (s *CatalogService) ListQuestions(categoryName string) ([]models.Question, error) {
	category, err := s.GetCategoryByName(categoryName)
	if err != nil {
		return nil, err
	}

	var questions []models.Question
	if err := s.db.Where("category_id = ?", category.ID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *CatalogService) CreateQuestion(categoryName, text string) (*models.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: question text is empty", ErrBadRequest)
	}

	category, err := s.GetCategoryByName(categoryName)
	if err != nil {
		return nil, err
	}

	question := models.Question{CategoryID: category.ID, Name: text}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *CatalogService) getQuestion(categoryName, questionText string) (*models.Question, error) {
	category, err := s.GetCategoryByName(categoryName)
	if err != nil {
		return nil, err
	}

	var question models.Question
	err = s.db.Where("category_id = ? AND name = ?", category.ID, questionText).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %q in category %q", ErrNotFound, questionText, categoryName)
		}
		return nil, err
	}
	return &question, nil
}

func (s *CatalogService) ListAnswers(categoryName, questionText string) ([]models.Answer, error) {
	question, err := s.getQuestion(categoryName, questionText)
	if err != nil {
		return nil, err
	}

	var answers []models.Answer
	if err := s.db.Where("question_id = ?", question.ID).Order("id ASC").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

// CreateAnswers stores a batch of acceptable answers for one question. The
// facilitator submits them together when authoring the catalog.
func (s *CatalogService) CreateAnswers(categoryName, questionText string, texts []string) ([]models.Answer, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: no answers given", ErrBadRequest)
	}

	question, err := s.getQuestion(categoryName, questionText)
	if err != nil {
		return nil, err
	}

	answers := make([]models.Answer, 0, len(texts))
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, fmt.Errorf("%w: answer text is empty", ErrBadRequest)
		}
		answers = append(answers, models.Answer{QuestionID: question.ID, Name: text})
	}

	if err := s.db.Create(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
