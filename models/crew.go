package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Crew struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Members      []*CrewMember `gorm:"many2many:crew_members_association" json:"members"`
	Appointments []Appointment `gorm:"foreignKey:CrewID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (cr *Crew) BeforeCreate(tx *gorm.DB) (err error) {
	if cr.ID == uuid.Nil {
		cr.ID = uuid.New()
	}
	return
}

// CrewMembership maps the crew_members_association join table so membership
// pairs can be queried and maintained directly.
type CrewMembership struct {
	CrewID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"crew_id"`
	CrewMemberID uuid.UUID `gorm:"type:uuid;primaryKey" json:"crew_member_id"`
}

func (CrewMembership) TableName() string {
	return "crew_members_association"
}
