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

type CreateCrewInput struct {
	Name        string      `json:"name" binding:"required"`
	Description *string     `json:"description"`
	IsActive    *bool       `json:"is_active"`
	MemberIDs   []uuid.UUID `json:"member_ids"`
}

type UpdateCrewInput struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	IsActive    *bool        `json:"is_active"`
	MemberIDs   *[]uuid.UUID `json:"member_ids"` // nil means leave the member set untouched
}

// CreateCrew creates a new crew, optionally attaching existing crew members.
// Unknown member ids are skipped.
func CreateCrew(c *gin.Context) {
	var input CreateCrewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	crew := models.Crew{
		Name:     input.Name,
		IsActive: true,
	}
	if input.Description != nil {
		crew.Description = *input.Description
	}
	if input.IsActive != nil {
		crew.IsActive = *input.IsActive
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if len(input.MemberIDs) > 0 {
			var members []*models.CrewMember
			if err := tx.Where("id IN ?", input.MemberIDs).Find(&members).Error; err != nil {
				return err
			}
			crew.Members = members
		}
		return tx.Create(&crew).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create crew")
		return
	}

	c.JSON(http.StatusCreated, crewWithMembers(crew.ID))
}

// GetCrews retrieves all crews with their members
func GetCrews(c *gin.Context) {
	var crews []models.Crew
	if err := config.DB.Preload("Members").Find(&crews).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve crews")
		return
	}

	c.JSON(http.StatusOK, crews)
}

// GetCrew retrieves a specific crew by ID with its members
func GetCrew(c *gin.Context) {
	crewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid crew ID format")
		return
	}

	var crew models.Crew
	if err := config.DB.Preload("Members").Where("id = ?", crewUUID).First(&crew).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Crew not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, crew)
}

// UpdateCrew updates an existing crew. When member_ids is present the member
// set is replaced wholesale.
func UpdateCrew(c *gin.Context) {
	crewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid crew ID format")
		return
	}

	var input UpdateCrewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var crew models.Crew
	if err := config.DB.Where("id = ?", crewUUID).First(&crew).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Crew not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		crew.Name = *input.Name
	}
	if input.Description != nil {
		crew.Description = *input.Description
	}
	if input.IsActive != nil {
		crew.IsActive = *input.IsActive
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&crew).Error; err != nil {
			return err
		}
		if input.MemberIDs != nil {
			var members []*models.CrewMember
			if err := tx.Where("id IN ?", *input.MemberIDs).Find(&members).Error; err != nil {
				return err
			}
			if err := tx.Model(&crew).Association("Members").Replace(members); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update crew")
		return
	}

	c.JSON(http.StatusOK, crewWithMembers(crew.ID))
}

// DeleteCrew removes a crew and its membership links. Appointments
// referencing the crew are left untouched.
func DeleteCrew(c *gin.Context) {
	crewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid crew ID format")
		return
	}

	var rowsAffected int64
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("crew_id = ?", crewUUID).Delete(&models.CrewMembership{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", crewUUID).Delete(&models.Crew{})
		rowsAffected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete crew")
		return
	}
	if rowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Crew not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Crew deleted successfully"})
}

type AddCrewMemberInput struct {
	MemberID uuid.UUID `json:"member_id" binding:"required"`
}

// AddMemberToCrew adds a crew member to a crew's member set. Adding a member
// that already belongs to the crew is a no-op.
func AddMemberToCrew(c *gin.Context) {
	crewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid crew ID format")
		return
	}

	var input AddCrewMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Member ID is required")
		return
	}

	var crew models.Crew
	if err := config.DB.Where("id = ?", crewUUID).First(&crew).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Crew not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var member models.CrewMember
	if err := config.DB.Where("id = ?", input.MemberID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Crew member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var existing models.CrewMembership
	err = config.DB.Where("crew_id = ? AND crew_member_id = ?", crew.ID, member.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		membership := models.CrewMembership{CrewID: crew.ID, CrewMemberID: member.ID}
		if err := config.DB.Create(&membership).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add member to crew")
			return
		}
	} else if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, crewWithMembers(crew.ID))
}

// RemoveMemberFromCrew removes a crew member from a crew's member set.
// Removing a member that is not part of the crew is a no-op.
func RemoveMemberFromCrew(c *gin.Context) {
	crewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid crew ID format")
		return
	}
	memberUUID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid crew member ID format")
		return
	}

	var crew models.Crew
	if err := config.DB.Where("id = ?", crewUUID).First(&crew).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Crew not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
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

	if err := config.DB.Where("crew_id = ? AND crew_member_id = ?", crew.ID, member.ID).
		Delete(&models.CrewMembership{}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to remove member from crew")
		return
	}

	c.JSON(http.StatusOK, crewWithMembers(crew.ID))
}

// crewWithMembers reloads a crew with its member set for response bodies.
func crewWithMembers(id uuid.UUID) *models.Crew {
	var crew models.Crew
	if err := config.DB.Preload("Members").Where("id = ?", id).First(&crew).Error; err != nil {
		return nil
	}
	if crew.Members == nil {
		crew.Members = []*models.CrewMember{}
	}
	return &crew
}
