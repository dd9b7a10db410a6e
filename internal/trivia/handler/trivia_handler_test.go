package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lsurvila/FSND/internal/trivia/dto"
	"github.com/lsurvila/FSND/internal/trivia/models"
	"github.com/lsurvila/FSND/internal/trivia/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock TriviaService ---

type mockTriviaService struct {
	listFn       func(ctx context.Context, page int) (*dto.QuestionsEnvelope, error)
	searchFn     func(ctx context.Context, term string, page int) (*dto.QuestionsEnvelope, error)
	byCategoryFn func(ctx context.Context, categoryID uint, page int) (*dto.QuestionsEnvelope, error)
	createFn     func(ctx context.Context, question *models.Question) error
	deleteFn     func(ctx context.Context, id uint) error
	categoriesFn func(ctx context.Context) (map[uint]string, error)
	quizFn       func(ctx context.Context, categoryID uint, previousIDs []uint) (*models.Question, error)
}

func (m *mockTriviaService) ListQuestions(ctx context.Context, page int) (*dto.QuestionsEnvelope, error) {
	return m.listFn(ctx, page)
}
func (m *mockTriviaService) SearchQuestions(ctx context.Context, term string, page int) (*dto.QuestionsEnvelope, error) {
	return m.searchFn(ctx, term, page)
}
func (m *mockTriviaService) QuestionsByCategory(ctx context.Context, categoryID uint, page int) (*dto.QuestionsEnvelope, error) {
	return m.byCategoryFn(ctx, categoryID, page)
}
func (m *mockTriviaService) CreateQuestion(ctx context.Context, question *models.Question) error {
	return m.createFn(ctx, question)
}
func (m *mockTriviaService) DeleteQuestion(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockTriviaService) Categories(ctx context.Context) (map[uint]string, error) {
	return m.categoriesFn(ctx)
}
func (m *mockTriviaService) QuizQuestion(ctx context.Context, categoryID uint, previousIDs []uint) (*models.Question, error) {
	return m.quizFn(ctx, categoryID, previousIDs)
}

func sampleEnvelope() *dto.QuestionsEnvelope {
	return &dto.QuestionsEnvelope{
		Questions: []dto.QuestionResponse{
			{ID: 1, Question: "question", Answer: "answer", Category: 1, Difficulty: 2},
		},
		TotalQuestions: 12,
		Categories:     map[uint]string{1: "category", 2: "category2"},
	}
}

// --- Tests ---

func TestGetQuestions_Handler_Success(t *testing.T) {
	var gotPage int
	svc := &mockTriviaService{
		listFn: func(ctx context.Context, page int) (*dto.QuestionsEnvelope, error) {
			gotPage = page
			return sampleEnvelope(), nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/questions?page=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewTriviaHandler(svc)
	err := h.GetQuestions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, gotPage)

	var resp map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.JSONEq(t, `12`, string(resp["total_questions"]))
	assert.JSONEq(t, `{"1":"category","2":"category2"}`, string(resp["categories"]))
	assert.JSONEq(t, `null`, string(resp["current_category"]))
}

func TestGetQuestions_Handler_DefaultPage(t *testing.T) {
	var gotPage int
	svc := &mockTriviaService{
		listFn: func(ctx context.Context, page int) (*dto.QuestionsEnvelope, error) {
			gotPage = page
			return sampleEnvelope(), nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewTriviaHandler(svc).GetQuestions(c)

	assert.NoError(t, err)
	assert.Equal(t, 1, gotPage)
}

func TestGetQuestions_Handler_NoCategories(t *testing.T) {
	svc := &mockTriviaService{
		listFn: func(ctx context.Context, page int) (*dto.QuestionsEnvelope, error) {
			return nil, service.ErrNoCategories
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewTriviaHandler(svc).GetQuestions(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestPostQuestions_Handler_Search(t *testing.T) {
	var gotTerm string
	svc := &mockTriviaService{
		searchFn: func(ctx context.Context, term string, page int) (*dto.QuestionsEnvelope, error) {
			gotTerm = term
			return sampleEnvelope(), nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(`{"searchTerm":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewTriviaHandler(svc).PostQuestions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "x", gotTerm)
}

func TestPostQuestions_Handler_Create(t *testing.T) {
	var created *models.Question
	svc := &mockTriviaService{
		createFn: func(ctx context.Context, question *models.Question) error {
			created = question
			return nil
		},
	}

	e := echo.New()
	body := `{"question":"new question","answer":"new answer","category":2,"difficulty":4}`
	req := httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewTriviaHandler(svc).PostQuestions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	if assert.NotNil(t, created) {
		assert.Equal(t, "new question", created.Question)
		assert.Equal(t, uint(2), created.CategoryID)
		assert.Equal(t, 4, created.Difficulty)
	}
}

func TestPostQuestions_Handler_EmptyQuestion(t *testing.T) {
	svc := &mockTriviaService{
		createFn: func(ctx context.Context, question *models.Question) error {
			return service.ErrMissingFields
		},
	}

	e := echo.New()
	body := `{"question":"","answer":"x","category":1,"difficulty":1}`
	req := httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewTriviaHandler(svc).PostQuestions(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestDeleteQuestion_Handler_Success(t *testing.T) {
	var deletedID uint
	svc := &mockTriviaService{
		deleteFn: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/questions/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	err := NewTriviaHandler(svc).DeleteQuestion(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(5), deletedID)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestDeleteQuestion_Handler_MissingID(t *testing.T) {
	svc := &mockTriviaService{
		deleteFn: func(ctx context.Context, id uint) error {
			return service.ErrQuestionNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/questions/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := NewTriviaHandler(svc).DeleteQuestion(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
}

func TestGetCategories_Handler(t *testing.T) {
	svc := &mockTriviaService{
		categoriesFn: func(ctx context.Context) (map[uint]string, error) {
			return map[uint]string{1: "science", 2: "art"}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewTriviaHandler(svc).GetCategories(c)

	assert.NoError(t, err)
	assert.JSONEq(t, `{"categories":{"1":"science","2":"art"}}`, rec.Body.String())
}

func TestGetQuestionsOfCategory_Handler(t *testing.T) {
	currentCategory := uint(2)
	svc := &mockTriviaService{
		byCategoryFn: func(ctx context.Context, categoryID uint, page int) (*dto.QuestionsEnvelope, error) {
			envelope := sampleEnvelope()
			envelope.CurrentCategory = &currentCategory
			return envelope, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/categories/2/questions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	err := NewTriviaHandler(svc).GetQuestionsOfCategory(c)

	assert.NoError(t, err)

	var resp map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.JSONEq(t, `2`, string(resp["current_category"]))
}

func TestGetQuestionsOfCategory_Handler_NotFound(t *testing.T) {
	svc := &mockTriviaService{
		byCategoryFn: func(ctx context.Context, categoryID uint, page int) (*dto.QuestionsEnvelope, error) {
			return nil, service.ErrCategoryNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/categories/99/questions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := NewTriviaHandler(svc).GetQuestionsOfCategory(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestPostQuizzes_Handler(t *testing.T) {
	var gotCategory uint
	var gotPrevious []uint
	svc := &mockTriviaService{
		quizFn: func(ctx context.Context, categoryID uint, previousIDs []uint) (*models.Question, error) {
			gotCategory = categoryID
			gotPrevious = previousIDs
			return &models.Question{ID: 3, Question: "question3", Answer: "answer", CategoryID: 1, Difficulty: 2}, nil
		},
	}

	e := echo.New()
	body := `{"previous_questions":[1,2],"quiz_category":{"id":0}}`
	req := httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewTriviaHandler(svc).PostQuizzes(c)

	assert.NoError(t, err)
	assert.Equal(t, uint(0), gotCategory)
	assert.Equal(t, []uint{1, 2}, gotPrevious)

	var resp dto.QuizResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	if assert.NotNil(t, resp.Question) {
		assert.NotContains(t, []uint{1, 2}, resp.Question.ID)
	}
}

func TestPostQuizzes_Handler_Exhausted(t *testing.T) {
	svc := &mockTriviaService{
		quizFn: func(ctx context.Context, categoryID uint, previousIDs []uint) (*models.Question, error) {
			return nil, nil
		},
	}

	e := echo.New()
	body := `{"previous_questions":[1,2,3],"quiz_category":{"id":1}}`
	req := httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewTriviaHandler(svc).PostQuizzes(c)

	assert.NoError(t, err)
	assert.JSONEq(t, `{"question":null}`, rec.Body.String())
}
