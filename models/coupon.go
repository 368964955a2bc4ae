package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Discount types
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

var ValidDiscountTypes = []string{DiscountTypePercentage, DiscountTypeFixed}

type Coupon struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Code        string    `gorm:"uniqueIndex;not null"`
	Description string

	DiscountType string  `gorm:"type:varchar(20);not null"`
	Value        float64 `gorm:"type:decimal(10,2);not null"`

	MinOrderAmount *float64 `gorm:"type:decimal(10,2)"`
	MaxUses        *int
	UsedCount      int `gorm:"default:0"`

	ValidFrom  time.Time `gorm:"not null"`
	ValidUntil *time.Time

	// No column default: a zero value written here must stay false, and the
	// controllers set the active-by-default rule explicitly.
	IsActive bool

	gorm.Model
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
