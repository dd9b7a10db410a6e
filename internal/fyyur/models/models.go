package models

import "time"

type Venue struct {
	ID                 uint     `gorm:"primaryKey" json:"id"`
	Name               string   `gorm:"not null" json:"name"`
	City               string   `gorm:"size:120;not null" json:"city"`
	State              string   `gorm:"size:120;not null" json:"state"`
	Address            string   `gorm:"size:120;not null" json:"address"`
	Phone              string   `gorm:"size:120;not null" json:"phone"`
	ImageLink          *string  `gorm:"size:500" json:"image_link"`
	FacebookLink       *string  `gorm:"size:120" json:"facebook_link"`
	Website            *string  `gorm:"size:120" json:"website"`
	Genres             []string `gorm:"serializer:json;not null" json:"genres"`
	SeekingTalent      bool     `gorm:"not null" json:"seeking_talent"`
	SeekingDescription *string  `gorm:"size:500" json:"seeking_description"`

	Shows []Show `gorm:"foreignKey:VenueID" json:"-"`
}

type Artist struct {
	ID                 uint     `gorm:"primaryKey" json:"id"`
	Name               string   `gorm:"not null" json:"name"`
	City               string   `gorm:"size:120;not null" json:"city"`
	State              string   `gorm:"size:120;not null" json:"state"`
	Phone              string   `gorm:"size:120;not null" json:"phone"`
	ImageLink          *string  `gorm:"size:500" json:"image_link"`
	FacebookLink       *string  `gorm:"size:120" json:"facebook_link"`
	Website            *string  `gorm:"size:120" json:"website"`
	Genres             []string `gorm:"serializer:json;not null" json:"genres"`
	SeekingVenue       bool     `gorm:"not null" json:"seeking_venue"`
	SeekingDescription *string  `gorm:"size:120" json:"seeking_description"`

	Shows []Show `gorm:"foreignKey:ArtistID" json:"-"`
}

// Show links one artist to one venue at a start time. Both references are
// NOT NULL foreign keys; the database rejects a show pointing at a missing row.
type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VenueID   uint      `gorm:"not null" json:"venue_id"`
	ArtistID  uint      `gorm:"not null" json:"artist_id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`

	Venue  *Venue  `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	Artist *Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
}
