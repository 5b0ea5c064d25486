package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CrewMember struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name     string `gorm:"not null" json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Position string `json:"position"` // e.g. "Driver", "Mover", "Team Lead"
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Crews []*Crew `gorm:"many2many:crew_members_association" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *CrewMember) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
