package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Valid appointment statuses accepted by the status-transition endpoint.
// Transitions are unrestricted within this set.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

var ValidAppointmentStatuses = []string{
	StatusScheduled,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

func IsValidAppointmentStatus(status string) bool {
	for _, s := range ValidAppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	CustomerID uuid.UUID  `gorm:"type:uuid;index;not null" json:"customer_id"`
	CrewID     *uuid.UUID `gorm:"type:uuid;index" json:"crew_id"`

	AppointmentDate   DateOnly  `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime   TimeOfDay `gorm:"type:time;not null" json:"appointment_time"`
	EstimatedDuration *int      `json:"estimated_duration"` // minutes

	OriginAddress      string `gorm:"not null" json:"origin_address"`
	DestinationAddress string `gorm:"not null" json:"destination_address"`

	Status string `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	Notes  string `json:"notes"`

	EstimatedCost *float64 `json:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Crew     *Crew     `gorm:"foreignKey:CrewID" json:"crew,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	return
}
