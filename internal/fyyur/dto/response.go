package dto

import (
	"github.com/lsurvila/FSND/internal/fyyur/models"
)

// StartTimeLayout is the show timestamp format rendered in every view:
// MM/DD/YYYY, HH:MM:SS on a 24-hour clock.
const StartTimeLayout = "01/02/2006, 15:04:05"

type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

type ArtistSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

// CityGroup lists the venues of one distinct (city, state) pair.
type CityGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type VenueSearchResponse struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

type ArtistSearchResponse struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

// VenueShowInfo is a show flattened onto the artist side, as shown on a
// venue's detail page.
type VenueShowInfo struct {
	ArtistID        uint    `json:"artist_id"`
	ArtistName      string  `json:"artist_name"`
	ArtistImageLink *string `json:"artist_image_link"`
	StartTime       string  `json:"start_time"`
}

type ArtistShowInfo struct {
	VenueID        uint    `json:"venue_id"`
	VenueName      string  `json:"venue_name"`
	VenueImageLink *string `json:"venue_image_link"`
	StartTime      string  `json:"start_time"`
}

type VenueDetail struct {
	ID                 uint            `json:"id"`
	Name               string          `json:"name"`
	Genres             []string        `json:"genres"`
	Address            string          `json:"address"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	Phone              string          `json:"phone"`
	Website            *string         `json:"website"`
	FacebookLink       *string         `json:"facebook_link"`
	SeekingTalent      bool            `json:"seeking_talent"`
	SeekingDescription *string         `json:"seeking_description"`
	ImageLink          *string         `json:"image_link"`
	PastShows          []VenueShowInfo `json:"past_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShows      []VenueShowInfo `json:"upcoming_shows"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	ID                 uint             `json:"id"`
	Name               string           `json:"name"`
	Genres             []string         `json:"genres"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	Website            *string          `json:"website"`
	FacebookLink       *string          `json:"facebook_link"`
	SeekingVenue       bool             `json:"seeking_venue"`
	SeekingDescription *string          `json:"seeking_description"`
	ImageLink          *string          `json:"image_link"`
	PastShows          []ArtistShowInfo `json:"past_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShows      []ArtistShowInfo `json:"upcoming_shows"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

type ShowListItem struct {
	VenueID         uint    `json:"venue_id"`
	VenueName       string  `json:"venue_name"`
	ArtistID        uint    `json:"artist_id"`
	ArtistName      string  `json:"artist_name"`
	ArtistImageLink *string `json:"artist_image_link"`
	StartTime       string  `json:"start_time"`
}

// FlashResponse carries the outcome of a create submission. Failed writes
// still answer 200 with success=false, mirroring the flash-and-rerender
// behaviour of the listing pages.
type FlashResponse struct {
	Success bool   `json:"success"`
	Flash   string `json:"flash"`
}

func ToVenueBoard(venues []models.Venue, upcomingCounts map[uint]int64) []CityGroup {
	groups := []CityGroup{}
	index := map[[2]string]int{}

	for _, venue := range venues {
		key := [2]string{venue.City, venue.State}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CityGroup{City: venue.City, State: venue.State, Venues: []VenueSummary{}})
		}
		groups[i].Venues = append(groups[i].Venues, ToVenueSummary(&venue, upcomingCounts))
	}

	return groups
}

func ToVenueSummary(venue *models.Venue, upcomingCounts map[uint]int64) VenueSummary {
	return VenueSummary{
		ID:               venue.ID,
		Name:             venue.Name,
		NumUpcomingShows: upcomingCounts[venue.ID],
	}
}

func ToArtistSummary(artist *models.Artist, upcomingCounts map[uint]int64) ArtistSummary {
	return ArtistSummary{
		ID:               artist.ID,
		Name:             artist.Name,
		NumUpcomingShows: upcomingCounts[artist.ID],
	}
}

func ToVenueSearchResponse(venues []models.Venue, upcomingCounts map[uint]int64) *VenueSearchResponse {
	data := make([]VenueSummary, len(venues))
	for i, venue := range venues {
		data[i] = ToVenueSummary(&venue, upcomingCounts)
	}
	return &VenueSearchResponse{Count: len(data), Data: data}
}

func ToArtistSearchResponse(artists []models.Artist, upcomingCounts map[uint]int64) *ArtistSearchResponse {
	data := make([]ArtistSummary, len(artists))
	for i, artist := range artists {
		data[i] = ToArtistSummary(&artist, upcomingCounts)
	}
	return &ArtistSearchResponse{Count: len(data), Data: data}
}

func ToVenueDetail(venue *models.Venue, past, upcoming []models.Show) *VenueDetail {
	return &VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             venue.Genres,
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          toVenueShowInfos(past),
		PastShowsCount:     len(past),
		UpcomingShows:      toVenueShowInfos(upcoming),
		UpcomingShowsCount: len(upcoming),
	}
}

func ToArtistDetail(artist *models.Artist, past, upcoming []models.Show) *ArtistDetail {
	return &ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             artist.Genres,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          toArtistShowInfos(past),
		PastShowsCount:     len(past),
		UpcomingShows:      toArtistShowInfos(upcoming),
		UpcomingShowsCount: len(upcoming),
	}
}

func toVenueShowInfos(shows []models.Show) []VenueShowInfo {
	infos := make([]VenueShowInfo, len(shows))
	for i, show := range shows {
		info := VenueShowInfo{
			ArtistID:  show.ArtistID,
			StartTime: show.StartTime.Format(StartTimeLayout),
		}
		if show.Artist != nil {
			info.ArtistName = show.Artist.Name
			info.ArtistImageLink = show.Artist.ImageLink
		}
		infos[i] = info
	}
	return infos
}

func toArtistShowInfos(shows []models.Show) []ArtistShowInfo {
	infos := make([]ArtistShowInfo, len(shows))
	for i, show := range shows {
		info := ArtistShowInfo{
			VenueID:   show.VenueID,
			StartTime: show.StartTime.Format(StartTimeLayout),
		}
		if show.Venue != nil {
			info.VenueName = show.Venue.Name
			info.VenueImageLink = show.Venue.ImageLink
		}
		infos[i] = info
	}
	return infos
}

func ToShowList(shows []models.Show) []ShowListItem {
	items := make([]ShowListItem, len(shows))
	for i, show := range shows {
		item := ShowListItem{
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: show.StartTime.Format(StartTimeLayout),
		}
		if show.Venue != nil {
			item.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			item.ArtistName = show.Artist.Name
			item.ArtistImageLink = show.Artist.ImageLink
		}
		items[i] = item
	}
	return items
}
