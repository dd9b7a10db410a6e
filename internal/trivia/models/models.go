package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"not null" json:"type"`
}

// Question references its category by id. The original schema kept a loose
// string label here; the typed foreign key replaces it.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"not null" json:"question"`
	Answer     string `gorm:"not null" json:"answer"`
	CategoryID uint   `gorm:"not null" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}
