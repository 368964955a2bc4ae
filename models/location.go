package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a client-owned place used for shoot scheduling. Distinct from
// Site, which belongs to a billing entity.
type Location struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name      string `gorm:"not null"`
	Address   string
	City      string
	State     string
	Country   string
	Latitude  *float64
	Longitude *float64

	gorm.Model
}

func (l *Location) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
