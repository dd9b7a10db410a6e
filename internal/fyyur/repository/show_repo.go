package repository

import (
	"context"
	"time"

	"github.com/lsurvila/FSND/internal/fyyur/models"
	"gorm.io/gorm"
)

type ShowRepository interface {
	Create(ctx context.Context, tx *gorm.DB, show *models.Show) error
	FindAll(ctx context.Context) ([]models.Show, error)
	FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error)
	FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error)
	CountUpcomingByVenue(ctx context.Context, now time.Time) (map[uint]int64, error)
	CountUpcomingByArtist(ctx context.Context, now time.Time) (map[uint]int64, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *showRepository) Create(ctx context.Context, tx *gorm.DB, show *models.Show) error {
	return tx.WithContext(ctx).Create(show).Error
}

func (r *showRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		Order("id ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Where("venue_id = ?", venueID).
		Order("start_time ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Where("artist_id = ?", artistID).
		Order("start_time ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

type upcomingCount struct {
	OwnerID uint
	Count   int64
}

// CountUpcomingByVenue returns upcoming-show counts for every venue with at
// least one show strictly after now, in a single grouped query. Venues absent
// from the map have zero upcoming shows.
func (r *showRepository) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[uint]int64, error) {
	return r.countUpcoming(ctx, "venue_id", now)
}

func (r *showRepository) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[uint]int64, error) {
	return r.countUpcoming(ctx, "artist_id", now)
}

func (r *showRepository) countUpcoming(ctx context.Context, ownerColumn string, now time.Time) (map[uint]int64, error) {
	var rows []upcomingCount
	err := r.db.WithContext(ctx).
		Model(&models.Show{}).
		Select(ownerColumn+" AS owner_id, COUNT(*) AS count").
		Where("start_time > ?", now).
		Group(ownerColumn).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.OwnerID] = row.Count
	}
	return counts, nil
}
