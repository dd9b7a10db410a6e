package dto

import "time"

type SearchRequest struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}

type CreateVenueRequest struct {
	Name               string   `json:"name" form:"name"`
	City               string   `json:"city" form:"city"`
	State              string   `json:"state" form:"state"`
	Address            string   `json:"address" form:"address"`
	Phone              string   `json:"phone" form:"phone"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
	Website            string   `json:"website" form:"website"`
	Genres             []string `json:"genres" form:"genres"`
	SeekingDescription string   `json:"seeking_talent_description" form:"seeking_talent_description"`
}

type CreateArtistRequest struct {
	Name               string   `json:"name" form:"name"`
	City               string   `json:"city" form:"city"`
	State              string   `json:"state" form:"state"`
	Phone              string   `json:"phone" form:"phone"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
	Website            string   `json:"website" form:"website"`
	Genres             []string `json:"genres" form:"genres"`
	SeekingDescription string   `json:"seeking_venue_description" form:"seeking_venue_description"`
}

type CreateShowRequest struct {
	VenueID   uint      `json:"venue_id" form:"venue_id"`
	ArtistID  uint      `json:"artist_id" form:"artist_id"`
	StartTime time.Time `json:"start_time" form:"start_time"`
}
