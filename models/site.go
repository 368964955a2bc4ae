package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Site struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	EntityID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name    string `gorm:"not null"`
	Address string

	POCs []POC `gorm:"foreignKey:SiteID"`

	gorm.Model
}

func (s *Site) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
