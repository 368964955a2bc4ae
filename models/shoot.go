package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shoot statuses
const (
	ShootStatusPlanned    = "planned"
	ShootStatusInProgress = "in_progress"
	ShootStatusCompleted  = "completed"
	ShootStatusCancelled  = "cancelled"
)

var ValidShootStatuses = []string{
	ShootStatusPlanned,
	ShootStatusInProgress,
	ShootStatusCompleted,
	ShootStatusCancelled,
}

type Shoot struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Code string    `gorm:"not null;index"`

	Title       string
	ClientID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	ShootTypeID uuid.UUID  `gorm:"type:uuid;index;not null"`
	LocationID  *uuid.UUID `gorm:"type:uuid;index"`

	// Primary director of photography
	DirectorID *uuid.UUID `gorm:"type:uuid;index"`

	Executors []User `gorm:"many2many:shoot_executors"`
	Editors   []User `gorm:"many2many:shoot_editors"`

	Status    string `gorm:"type:varchar(20);default:'planned'"`
	StartDate *time.Time
	EndDate   *time.Time
	Notes     string

	Edits []Edit `gorm:"foreignKey:ShootID"`

	gorm.Model
}

func (s *Shoot) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
