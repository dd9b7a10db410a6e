package dto

import (
	"strings"

	"github.com/lsurvila/FSND/internal/listing"
	"github.com/lsurvila/FSND/internal/trivia/models"
)

type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionsEnvelope is the wrapper every question listing answers with.
// Categories always holds the full category map keyed by id, regardless of
// what filter produced Questions; TotalQuestions counts the filtered set
// before paging.
type QuestionsEnvelope struct {
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      map[uint]string    `json:"categories"`
	CurrentCategory *uint              `json:"current_category"`
}

type CategoriesResponse struct {
	Categories map[uint]string `json:"categories"`
}

type QuizResponse struct {
	Question *QuestionResponse `json:"question"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func ToQuestionResponse(q *models.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// ToQuestionsEnvelope pages the filtered question set and wraps it together
// with the full category map.
func ToQuestionsEnvelope(questions []models.Question, page int, categories []models.Category, currentCategory *uint) *QuestionsEnvelope {
	paged := listing.Paginate(questions, page)

	resp := make([]QuestionResponse, len(paged))
	for i, q := range paged {
		resp[i] = ToQuestionResponse(&q)
	}

	return &QuestionsEnvelope{
		Questions:       resp,
		TotalQuestions:  len(questions),
		Categories:      ToCategoryMap(categories),
		CurrentCategory: currentCategory,
	}
}

func ToCategoryMap(categories []models.Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, category := range categories {
		m[category.ID] = strings.ToLower(category.Type)
	}
	return m
}

func ToQuizResponse(question *models.Question) QuizResponse {
	if question == nil {
		return QuizResponse{Question: nil}
	}
	q := ToQuestionResponse(question)
	return QuizResponse{Question: &q}
}
