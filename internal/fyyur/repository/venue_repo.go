package repository

import (
	"context"

	"github.com/lsurvila/FSND/internal/fyyur/models"
	"gorm.io/gorm"
)

type VenueRepository interface {
	Create(ctx context.Context, tx *gorm.DB, venue *models.Venue) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindAll(ctx context.Context) ([]models.Venue, error)
	SearchByName(ctx context.Context, term string) ([]models.Venue, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *venueRepository) Create(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return tx.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchByName does a case-insensitive substring match. An empty term
// matches every venue (substring of everything).
func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("id ASC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}
