package repository

import (
	"context"

	"github.com/lsurvila/FSND/internal/trivia/models"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, question *models.Question) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
	FindAll(ctx context.Context) ([]models.Question, error)
	SearchByText(ctx context.Context, term string) ([]models.Question, error)
	FindByCategoryID(ctx context.Context, categoryID uint) ([]models.Question, error)
	FindForQuiz(ctx context.Context, categoryID uint, excludeIDs []uint) ([]models.Question, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Transaction runs fn inside a database transaction; any returned error
// rolls the whole write back.
func (r *questionRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *questionRepository) Create(ctx context.Context, tx *gorm.DB, question *models.Question) error {
	return tx.WithContext(ctx).Create(question).Error
}

// Delete reports the number of rows removed so callers can distinguish a
// missing id from a successful delete.
func (r *questionRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	result := tx.WithContext(ctx).Delete(&models.Question{}, id)
	return result.RowsAffected, result.Error
}

func (r *questionRepository) FindAll(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) SearchByText(ctx context.Context, term string) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("question ILIKE ?", "%"+term+"%").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByCategoryID(ctx context.Context, categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// FindForQuiz returns the questions of a category (0 means every category)
// minus the already-played ids.
func (r *questionRepository) FindForQuiz(ctx context.Context, categoryID uint, excludeIDs []uint) ([]models.Question, error) {
	q := r.db.WithContext(ctx).Model(&models.Question{})
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}

	var questions []models.Question
	if err := q.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
