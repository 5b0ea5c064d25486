package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name    string `gorm:"not null" json:"name"`
	Phone   string `gorm:"not null;uniqueIndex" json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`

	Appointments []Appointment `gorm:"foreignKey:CustomerID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Initialize UUID before creating
func (cu *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if cu.ID == uuid.Nil {
		cu.ID = uuid.New()
	}
	return
}
