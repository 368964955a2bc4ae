package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"studiopro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team member roles
const (
	RoleAdmin        = "admin"
	RolePhotographer = "photographer"
	RoleEditor       = "editor"
)

// ValidRoles lists every role a team member may carry.
var ValidRoles = []string{RoleAdmin, RolePhotographer, RoleEditor}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null"`
	Phone    string

	Roles       StringList `gorm:"type:text;not null"`
	Rating      *float64   // 0-5
	Specialties StringList `gorm:"type:text"`

	LastLogin *time.Time

	// No column default: a zero value written here must stay false, and the
	// controllers set the active-by-default rule explicitly.
	IsActive bool

	gorm.Model
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// StringList stores a list of strings as a JSON-encoded text column so the
// same model works on postgres and sqlite.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return errors.New("type assertion to []byte failed")
}
