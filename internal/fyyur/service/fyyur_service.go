package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lsurvila/FSND/internal/fyyur/dto"
	"github.com/lsurvila/FSND/internal/fyyur/models"
	"github.com/lsurvila/FSND/internal/fyyur/repository"
	"github.com/lsurvila/FSND/internal/listing"
	"github.com/lsurvila/FSND/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
)

type FyyurService interface {
	VenueBoard(ctx context.Context) ([]dto.CityGroup, error)
	SearchVenues(ctx context.Context, term string) (*dto.VenueSearchResponse, error)
	VenueDetail(ctx context.Context, id uint) (*dto.VenueDetail, error)
	ListArtists(ctx context.Context) ([]dto.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string) (*dto.ArtistSearchResponse, error)
	ArtistDetail(ctx context.Context, id uint) (*dto.ArtistDetail, error)
	ListShows(ctx context.Context) ([]dto.ShowListItem, error)
	ShowFormData(ctx context.Context) (*dto.ShowFormResponse, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	CreateArtist(ctx context.Context, artist *models.Artist) error
	CreateShow(ctx context.Context, show *models.Show) error
}

type fyyurService struct {
	venueRepo  repository.VenueRepository
	artistRepo repository.ArtistRepository
	showRepo   repository.ShowRepository
	publisher  *rabbitmq.Publisher
	now        func() time.Time
}

func NewFyyurService(
	venueRepo repository.VenueRepository,
	artistRepo repository.ArtistRepository,
	showRepo repository.ShowRepository,
	publisher *rabbitmq.Publisher,
) FyyurService {
	return &fyyurService{
		venueRepo:  venueRepo,
		artistRepo: artistRepo,
		showRepo:   showRepo,
		publisher:  publisher,
		now:        time.Now,
	}
}

// VenueBoard groups every venue by distinct (city, state). Upcoming-show
// counts come from one grouped aggregate query instead of a count per venue.
func (s *fyyurService) VenueBoard(ctx context.Context) ([]dto.CityGroup, error) {
	venues, err := s.venueRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.showRepo.CountUpcomingByVenue(ctx, s.now())
	if err != nil {
		return nil, err
	}

	return dto.ToVenueBoard(venues, counts), nil
}

func (s *fyyurService) SearchVenues(ctx context.Context, term string) (*dto.VenueSearchResponse, error) {
	venues, err := s.venueRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	counts, err := s.showRepo.CountUpcomingByVenue(ctx, s.now())
	if err != nil {
		return nil, err
	}

	return dto.ToVenueSearchResponse(venues, counts), nil
}

func (s *fyyurService) VenueDetail(ctx context.Context, id uint) (*dto.VenueDetail, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	shows, err := s.showRepo.FindByVenueID(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := listing.Partition(shows, showStart, s.now())
	return dto.ToVenueDetail(venue, past, upcoming), nil
}

func (s *fyyurService) ListArtists(ctx context.Context) ([]dto.ArtistSummary, error) {
	artists, err := s.artistRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.showRepo.CountUpcomingByArtist(ctx, s.now())
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ArtistSummary, len(artists))
	for i, artist := range artists {
		summaries[i] = dto.ToArtistSummary(&artist, counts)
	}
	return summaries, nil
}

func (s *fyyurService) SearchArtists(ctx context.Context, term string) (*dto.ArtistSearchResponse, error) {
	artists, err := s.artistRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	counts, err := s.showRepo.CountUpcomingByArtist(ctx, s.now())
	if err != nil {
		return nil, err
	}

	return dto.ToArtistSearchResponse(artists, counts), nil
}

func (s *fyyurService) ArtistDetail(ctx context.Context, id uint) (*dto.ArtistDetail, error) {
	artist, err := s.artistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}

	shows, err := s.showRepo.FindByArtistID(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := listing.Partition(shows, showStart, s.now())
	return dto.ToArtistDetail(artist, past, upcoming), nil
}

func (s *fyyurService) ListShows(ctx context.Context) ([]dto.ShowListItem, error) {
	shows, err := s.showRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToShowList(shows), nil
}

func (s *fyyurService) ShowFormData(ctx context.Context) (*dto.ShowFormResponse, error) {
	venues, err := s.venueRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	artists, err := s.artistRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	form := &dto.ShowFormResponse{
		Venues:  make([]dto.IDName, len(venues)),
		Artists: make([]dto.IDName, len(artists)),
	}
	for i, venue := range venues {
		form.Venues[i] = dto.IDName{ID: venue.ID, Name: venue.Name}
	}
	for i, artist := range artists {
		form.Artists[i] = dto.IDName{ID: artist.ID, Name: artist.Name}
	}
	return form, nil
}

func (s *fyyurService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	err := s.venueRepo.Transaction(ctx, func(tx *gorm.DB) error {
		return s.venueRepo.Create(ctx, tx, venue)
	})
	if err != nil {
		return fmt.Errorf("create venue: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("venue.created", venue)
	}
	return nil
}

func (s *fyyurService) CreateArtist(ctx context.Context, artist *models.Artist) error {
	err := s.artistRepo.Transaction(ctx, func(tx *gorm.DB) error {
		return s.artistRepo.Create(ctx, tx, artist)
	})
	if err != nil {
		return fmt.Errorf("create artist: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("artist.created", artist)
	}
	return nil
}

// CreateShow relies on the foreign-key constraints to reject shows that
// reference a missing venue or artist; the violation rolls the insert back.
func (s *fyyurService) CreateShow(ctx context.Context, show *models.Show) error {
	err := s.showRepo.Transaction(ctx, func(tx *gorm.DB) error {
		return s.showRepo.Create(ctx, tx, show)
	})
	if err != nil {
		return fmt.Errorf("create show: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("show.created", show)
	}
	return nil
}

func showStart(show models.Show) time.Time {
	return show.StartTime
}
