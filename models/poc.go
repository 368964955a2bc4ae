package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POC is a point of contact attached to a site.
type POC struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	SiteID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name  string `gorm:"not null"`
	Phone string `gorm:"not null"`
	Email string
	Role  string

	gorm.Model
}

func (p *POC) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
