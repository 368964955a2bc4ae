package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShootType is a global catalog entry. Code is stored uppercase and at most
// 10 characters; it prefixes generated shoot identifiers.
type ShootType struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"not null"`
	Code        string    `gorm:"type:varchar(10);not null;index"`
	Description string

	Shoots []Shoot `gorm:"foreignKey:ShootTypeID"`

	gorm.Model
}

func (t *ShootType) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
