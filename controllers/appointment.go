package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"movesched-backend/config"
	"movesched-backend/models"
	"movesched-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateAppointmentInput struct {
	CustomerID         uuid.UUID  `json:"customer_id" binding:"required"`
	CrewID             *uuid.UUID `json:"crew_id"`
	AppointmentDate    string     `json:"appointment_date" binding:"required"`
	AppointmentTime    string     `json:"appointment_time" binding:"required"`
	EstimatedDuration  *int       `json:"estimated_duration"`
	OriginAddress      string     `json:"origin_address" binding:"required"`
	DestinationAddress string     `json:"destination_address" binding:"required"`
	Status             *string    `json:"status"`
	Notes              *string    `json:"notes"`
	EstimatedCost      *float64   `json:"estimated_cost"`
	ActualCost         *float64   `json:"actual_cost"`
}

type UpdateAppointmentInput struct {
	CustomerID         *uuid.UUID `json:"customer_id"`
	CrewID             *uuid.UUID `json:"crew_id"`
	AppointmentDate    *string    `json:"appointment_date"`
	AppointmentTime    *string    `json:"appointment_time"`
	EstimatedDuration  *int       `json:"estimated_duration"`
	OriginAddress      *string    `json:"origin_address"`
	DestinationAddress *string    `json:"destination_address"`
	Status             *string    `json:"status"`
	Notes              *string    `json:"notes"`
	EstimatedCost      *float64   `json:"estimated_cost"`
	ActualCost         *float64   `json:"actual_cost"`
}

type UpdateAppointmentStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// GetAppointments lists appointments, optionally filtered by inclusive date
// range and exact status, ordered by date then time.
func GetAppointments(c *gin.Context) {
	query := config.DB.Preload("Customer").Preload("Crew.Members")

	if startDate := c.Query("start_date"); startDate != "" {
		parsed, err := models.ParseDate(startDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
			return
		}
		query = query.Where("appointment_date >= ?", parsed)
	}
	if endDate := c.Query("end_date"); endDate != "" {
		parsed, err := models.ParseDate(endDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
			return
		}
		query = query.Where("appointment_date <= ?", parsed)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("appointment_date, appointment_time").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment with its customer and crew
func GetAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Customer").Preload("Crew.Members").
		Where("id = ?", appointmentUUID).First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// CreateAppointment creates a new appointment after validating that the
// referenced customer, and crew if given, exist.
func CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest,
			"customer_id, appointment_date, appointment_time, origin_address, and destination_address are required")
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ?", input.CustomerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CrewID != nil {
		var crew models.Crew
		if err := config.DB.Where("id = ?", *input.CrewID).First(&crew).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Crew not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	appointmentDate, err := models.ParseDate(input.AppointmentDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
		return
	}
	appointmentTime, err := models.ParseTime(input.AppointmentTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
		return
	}

	appointment := models.Appointment{
		CustomerID:         input.CustomerID,
		CrewID:             input.CrewID,
		AppointmentDate:    appointmentDate,
		AppointmentTime:    appointmentTime,
		EstimatedDuration:  input.EstimatedDuration,
		OriginAddress:      input.OriginAddress,
		DestinationAddress: input.DestinationAddress,
		EstimatedCost:      input.EstimatedCost,
		ActualCost:         input.ActualCost,
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointmentWithRelations(appointment.ID))
}

// UpdateAppointment applies a partial update, re-validating foreign keys when
// they are present in the input.
func UpdateAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("id = ?", appointmentUUID).First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CustomerID != nil {
		var customer models.Customer
		if err := config.DB.Where("id = ?", *input.CustomerID).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		appointment.CustomerID = *input.CustomerID
	}

	if input.CrewID != nil {
		var crew models.Crew
		if err := config.DB.Where("id = ?", *input.CrewID).First(&crew).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Crew not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		appointment.CrewID = input.CrewID
	}

	if input.AppointmentDate != nil {
		parsed, err := models.ParseDate(*input.AppointmentDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
			return
		}
		appointment.AppointmentDate = parsed
	}
	if input.AppointmentTime != nil {
		parsed, err := models.ParseTime(*input.AppointmentTime)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
			return
		}
		appointment.AppointmentTime = parsed
	}

	if input.EstimatedDuration != nil {
		appointment.EstimatedDuration = input.EstimatedDuration
	}
	if input.OriginAddress != nil {
		appointment.OriginAddress = *input.OriginAddress
	}
	if input.DestinationAddress != nil {
		appointment.DestinationAddress = *input.DestinationAddress
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}
	if input.EstimatedCost != nil {
		appointment.EstimatedCost = input.EstimatedCost
	}
	if input.ActualCost != nil {
		appointment.ActualCost = input.ActualCost
	}

	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointmentWithRelations(appointment.ID))
}

// UpdateAppointmentStatus is the restricted update path accepting only a
// status value from the valid set.
func UpdateAppointmentStatus(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Status is required")
		return
	}

	if !models.IsValidAppointmentStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest,
			fmt.Sprintf("Status must be one of: %s", strings.Join(models.ValidAppointmentStatuses, ", ")))
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("id = ?", appointmentUUID).First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	appointment.Status = input.Status
	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment status")
		return
	}

	c.JSON(http.StatusOK, appointmentWithRelations(appointment.ID))
}

// DeleteAppointment removes an appointment
func DeleteAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Where("id = ?", appointmentUUID).Delete(&models.Appointment{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// appointmentWithRelations reloads an appointment with its customer and crew
// embedded for response bodies.
func appointmentWithRelations(id uuid.UUID) *models.Appointment {
	var appointment models.Appointment
	if err := config.DB.Preload("Customer").Preload("Crew.Members").
		Where("id = ?", id).First(&appointment).Error; err != nil {
		return nil
	}
	return &appointment
}
