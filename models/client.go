package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"not null"`

	Address      string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Notes        string

	Entities  []BillingEntity `gorm:"foreignKey:ClientID"`
	Locations []Location      `gorm:"foreignKey:ClientID"`
	Shoots    []Shoot         `gorm:"foreignKey:ClientID"`

	gorm.Model
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
