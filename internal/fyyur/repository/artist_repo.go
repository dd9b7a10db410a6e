package repository

import (
	"context"

	"github.com/lsurvila/FSND/internal/fyyur/models"
	"gorm.io/gorm"
)

type ArtistRepository interface {
	Create(ctx context.Context, tx *gorm.DB, artist *models.Artist) error
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
	SearchByName(ctx context.Context, term string) ([]models.Artist, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *artistRepository) Create(ctx context.Context, tx *gorm.DB, artist *models.Artist) error {
	return tx.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("id ASC").
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}
