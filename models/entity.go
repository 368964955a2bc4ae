package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillingEntity is a sub-organization under a client used for billing and
// grouping. Sites hang off it.
type BillingEntity struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name  string `gorm:"not null"`
	Notes string

	Sites []Site `gorm:"foreignKey:EntityID"`

	gorm.Model
}

func (e *BillingEntity) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
