package services

import (
	"errors"
	"sync"
	"testing"

	"trivia-backend/internal/testutil"
)

func TestCreateAndListCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCatalogService(db)

	for _, name := range []string{"Science", "History"} {
		if _, err := svc.CreateCategory(name); err != nil {
			t.Fatalf("CreateCategory(%q) failed: %v", name, err)
		}
	}

	categories, err := svc.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(categories))
	}
}

func TestCreateCategoryValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCatalogService(db)

	if _, err := svc.CreateCategory("  "); !errors.Is(err, ErrBadRequest) {
		t.Errorf("Expected ErrBadRequest for empty name, got %v", err)
	}

	if _, err := svc.CreateCategory("Science"); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	if _, err := svc.CreateCategory("Science"); !errors.Is(err, ErrConflict) {
		t.Errorf("Expected ErrConflict for duplicate name, got %v", err)
	}
}

func TestCreateCategoryConcurrentDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCatalogService(db)

	const goroutines = 8
	var wg sync.WaitGroup
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateCategory("Science")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrConflict):
		default:
			t.Errorf("Unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("Exactly one concurrent create may win, got %d", successes)
	}
}

func TestQuestions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCatalogService(db)
	testutil.CreateTestCategory(t, db, "Science")

	if _, err := svc.CreateQuestion("Science", "What freezes at 0C?"); err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}
	if _, err := svc.CreateQuestion("Nope", "Anything?"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown category, got %v", err)
	}
	if _, err := svc.CreateQuestion("Science", ""); !errors.Is(err, ErrBadRequest) {
		t.Errorf("Expected ErrBadRequest for empty text, got %v", err)
	}

	questions, err := svc.ListQuestions("Science")
	if err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}
	if len(questions) != 1 || questions[0].Name != "What freezes at 0C?" {
		t.Errorf("Unexpected questions: %+v", questions)
	}

	if _, err := svc.ListQuestions("Nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestAnswers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCatalogService(db)
	category := testutil.CreateTestCategory(t, db, "Science")
	testutil.CreateTestQuestion(t, db, category.ID, "Boiling point of water?")

	created, err := svc.CreateAnswers("Science", "Boiling point of water?", []string{"100C", "212F"})
	if err != nil {
		t.Fatalf("CreateAnswers failed: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("Expected 2 answers, got %d", len(created))
	}

	answers, err := svc.ListAnswers("Science", "Boiling point of water?")
	if err != nil {
		t.Fatalf("ListAnswers failed: %v", err)
	}
	if len(answers) != 2 || answers[0].Name != "100C" {
		t.Errorf("Unexpected answers: %+v", answers)
	}

	if _, err := svc.CreateAnswers("Science", "Unknown?", []string{"x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown question, got %v", err)
	}
	if _, err := svc.CreateAnswers("Science", "Boiling point of water?", nil); !errors.Is(err, ErrBadRequest) {
		t.Errorf("Expected ErrBadRequest for empty batch, got %v", err)
	}
}
