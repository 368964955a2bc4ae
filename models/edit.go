package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Edit statuses
const (
	EditStatusPending    = "pending"
	EditStatusInProgress = "in_progress"
	EditStatusCompleted  = "completed"
	EditStatusDelivered  = "delivered"
)

var ValidEditStatuses = []string{
	EditStatusPending,
	EditStatusInProgress,
	EditStatusCompleted,
	EditStatusDelivered,
}

// Cost statuses
const (
	CostStatusPaid   = "paid"
	CostStatusUnpaid = "unpaid"
	CostStatusOnHold = "onhold"
)

var ValidCostStatuses = []string{CostStatusPaid, CostStatusUnpaid, CostStatusOnHold}

// Edit is a post-production work item, optionally linked to a shoot.
type Edit struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key"`
	Title   string     `gorm:"not null"`
	ShootID *uuid.UUID `gorm:"type:uuid;index"`

	Status     string  `gorm:"type:varchar(20);default:'pending'"`
	Cost       float64 `gorm:"type:decimal(10,2);default:0.0"`
	CostStatus string  `gorm:"type:varchar(20);default:'unpaid'"`

	Editors []User `gorm:"many2many:edit_editors"`

	Notes string

	gorm.Model
}

func (e *Edit) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
