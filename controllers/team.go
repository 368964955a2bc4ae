package controllers

import (
	"errors"
	"net/http"
	"strings"

	"studiopro-backend/config"
	"studiopro-backend/models"
	"studiopro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TeamMemberInput struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Phone       string   `json:"phone"`
	Roles       []string `json:"roles"`
	Rating      *float64 `json:"rating"`
	Specialties []string `json:"specialties"`
	IsActive    *bool    `json:"isActive"`
}

func (in *TeamMemberInput) validate(passwordRequired bool) utils.Violations {
	v := utils.Violations{}
	utils.Required("name", in.Name, v)
	utils.Required("email", in.Email, v)
	if in.Email != "" && !utils.ValidateEmail(in.Email) {
		v["email"] = "invalid_email"
	}
	if passwordRequired && len(in.Password) < 8 {
		v["password"] = "min_length_8"
	}
	if !passwordRequired && in.Password != "" && len(in.Password) < 8 {
		v["password"] = "min_length_8"
	}
	if len(in.Roles) == 0 {
		v["roles"] = "at_least_one_role"
	}
	for _, role := range in.Roles {
		utils.OneOf("roles", role, models.ValidRoles, v)
	}
	if in.Rating != nil {
		utils.RangeFloat("rating", *in.Rating, 0, 5, v)
	}
	return v
}

func CreateTeamMember(c *gin.Context) {
	var input TeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(true); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Team member with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       email,
		Password:    input.Password, // Hashed in BeforeCreate hook
		Phone:       input.Phone,
		Roles:       models.StringList(input.Roles),
		Rating:      input.Rating,
		Specialties: models.StringList(input.Specialties),
		IsActive:    true,
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create team member")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func GetTeamMembers(c *gin.Context) {
	var users []models.User
	query := config.DB.Order("name asc")
	if role := c.Query("role"); role != "" {
		// Roles are stored as a JSON list; match the quoted value
		query = query.Where("roles LIKE ?", "%\""+role+"\"%")
	}
	if err := query.Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve team members")
		return
	}

	c.JSON(http.StatusOK, users)
}

func GetTeamMember(c *gin.Context) {
	memberID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

func UpdateTeamMember(c *gin.Context) {
	memberID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input TeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(false); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if user.Email != email {
		var existing models.User
		if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Another team member with this email already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	user.Name = input.Name
	user.Email = email
	user.Phone = input.Phone
	user.Roles = models.StringList(input.Roles)
	user.Rating = input.Rating
	user.Specialties = models.StringList(input.Specialties)
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	// BeforeCreate does not fire on save; re-hash here when a new password
	// is supplied
	if input.Password != "" {
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
			return
		}
		user.Password = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update team member")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteTeamMember refuses to delete a member still assigned to shoots or
// edits.
func DeleteTeamMember(c *gin.Context) {
	memberID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var count int64
	config.DB.Model(&models.Shoot{}).Where("director_id = ?", memberID).Count(&count)
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Team member is the director of existing shoots")
		return
	}
	for _, table := range []string{"shoot_executors", "shoot_editors", "edit_editors"} {
		config.DB.Table(table).Where("user_id = ?", memberID).Count(&count)
		if count > 0 {
			utils.RespondWithError(c, http.StatusConflict, "Team member is still assigned to shoots or edits")
			return
		}
	}

	result := config.DB.Delete(&models.User{}, "id = ?", memberID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete team member")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}
