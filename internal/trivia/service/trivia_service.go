package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/lsurvila/FSND/internal/trivia/dto"
	"github.com/lsurvila/FSND/internal/trivia/models"
	"github.com/lsurvila/FSND/internal/trivia/repository"
	"gorm.io/gorm"
)

var (
	ErrNoCategories     = errors.New("no categories exist")
	ErrCategoryNotFound = errors.New("category not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrMissingFields    = errors.New("question and answer are required")
)

type TriviaService interface {
	ListQuestions(ctx context.Context, page int) (*dto.QuestionsEnvelope, error)
	SearchQuestions(ctx context.Context, term string, page int) (*dto.QuestionsEnvelope, error)
	QuestionsByCategory(ctx context.Context, categoryID uint, page int) (*dto.QuestionsEnvelope, error)
	CreateQuestion(ctx context.Context, question *models.Question) error
	DeleteQuestion(ctx context.Context, id uint) error
	Categories(ctx context.Context) (map[uint]string, error)
	QuizQuestion(ctx context.Context, categoryID uint, previousIDs []uint) (*models.Question, error)
}

type triviaService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	pick         func(n int) int
}

func NewTriviaService(questionRepo repository.QuestionRepository, categoryRepo repository.CategoryRepository) TriviaService {
	return &triviaService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		pick:         rand.Intn,
	}
}

// ListQuestions returns page n of all questions. A database with no
// categories yet is treated as not set up, hence not found.
func (s *triviaService) ListQuestions(ctx context.Context, page int) (*dto.QuestionsEnvelope, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	questions, err := s.questionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return dto.ToQuestionsEnvelope(questions, page, categories, nil), nil
}

func (s *triviaService) SearchQuestions(ctx context.Context, term string, page int) (*dto.QuestionsEnvelope, error) {
	questions, err := s.questionRepo.SearchByText(ctx, term)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return dto.ToQuestionsEnvelope(questions, page, categories, nil), nil
}

func (s *triviaService) QuestionsByCategory(ctx context.Context, categoryID uint, page int) (*dto.QuestionsEnvelope, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	questions, err := s.questionRepo.FindByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return dto.ToQuestionsEnvelope(questions, page, categories, &categoryID), nil
}

func (s *triviaService) CreateQuestion(ctx context.Context, question *models.Question) error {
	if question.Question == "" || question.Answer == "" {
		return ErrMissingFields
	}

	err := s.questionRepo.Transaction(ctx, func(tx *gorm.DB) error {
		return s.questionRepo.Create(ctx, tx, question)
	})
	if err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

func (s *triviaService) DeleteQuestion(ctx context.Context, id uint) error {
	return s.questionRepo.Transaction(ctx, func(tx *gorm.DB) error {
		affected, err := s.questionRepo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrQuestionNotFound
		}
		return nil
	})
}

func (s *triviaService) Categories(ctx context.Context) (map[uint]string, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryMap(categories), nil
}

// QuizQuestion draws a random question from the category (0 = any) that is
// not among the previously played ids. Nil means the pool is exhausted.
func (s *triviaService) QuizQuestion(ctx context.Context, categoryID uint, previousIDs []uint) (*models.Question, error) {
	available, err := s.questionRepo.FindForQuiz(ctx, categoryID, previousIDs)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, nil
	}
	return &available[s.pick(len(available))], nil
}
