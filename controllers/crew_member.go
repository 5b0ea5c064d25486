package controllers

import (
	"errors"
	"net/http"

	"movesched-backend/config"
	"movesched-backend/models"
	"movesched-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateCrewMemberInput struct {
	Name     string  `json:"name" binding:"required"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Position *string `json:"position"`
	IsActive *bool   `json:"is_active"`
}

type UpdateCrewMemberInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Position *string `json:"position"`
	IsActive *bool   `json:"is_active"`
}

// CreateCrewMember creates a new crew member
func CreateCrewMember(c *gin.Context) {
	var input CreateCrewMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	member := models.CrewMember{
		Name:     input.Name,
		IsActive: true,
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.Position != nil {
		member.Position = *input.Position
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create crew member")
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetCrewMembers retrieves all crew members
func GetCrewMembers(c *gin.Context) {
	var members []models.CrewMember
	if err := config.DB.Find(&members).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve crew members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetCrewMember retrieves a specific crew member by ID
func GetCrewMember(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid crew member ID format")
		return
	}

	var member models.CrewMember
	if err := config.DB.Where("id = ?", memberUUID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Crew member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateCrewMember updates an existing crew member
func UpdateCrewMember(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid crew member ID format")
		return
	}

	var input UpdateCrewMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var member models.CrewMember
	if err := config.DB.Where("id = ?", memberUUID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Crew member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.Position != nil {
		member.Position = *input.Position
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update crew member")
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteCrewMember removes a crew member
func DeleteCrewMember(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid crew member ID format")
		return
	}

	var rowsAffected int64
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("crew_member_id = ?", memberUUID).Delete(&models.CrewMembership{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", memberUUID).Delete(&models.CrewMember{})
		rowsAffected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete crew member")
		return
	}
	if rowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Crew member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Crew member deleted successfully"})
}
