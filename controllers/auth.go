package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"studiopro-backend/config"
	"studiopro-backend/models"
	"studiopro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register bootstraps the studio: it creates the first account with the
// admin role. Once any user exists, further accounts are created by an admin
// through the team endpoints, so registration is closed.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	v := utils.Violations{}
	utils.Required("name", input.Name, v)
	utils.Required("email", input.Email, v)
	if input.Email != "" && !utils.ValidateEmail(input.Email) {
		v["email"] = "invalid_email"
	}
	if len(input.Password) < 8 {
		v["password"] = "min_length_8"
	}
	if !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		utils.RespondWithError(c, http.StatusForbidden, "Registration is closed; ask an admin to add you")
		return
	}

	newUser := models.User{
		Name:     input.Name,
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: input.Password, // Hashed in BeforeCreate hook
		Phone:    input.Phone,
		Roles:    models.StringList{models.RoleAdmin},
		IsActive: true,
	}

	if err := config.DB.Create(&newUser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), newUser.Roles)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	setSessionCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":    newUser.ID,
			"email": newUser.Email,
			"name":  newUser.Name,
			"roles": newUser.Roles,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !user.IsActive {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account is deactivated")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Roles)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"roles": user.Roles,
		},
	})
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"name":        user.Name,
			"phone":       user.Phone,
			"roles":       user.Roles,
			"specialties": user.Specialties,
		},
	})
}

// setSessionCookie mirrors the token lifetime so the cookie cannot outlive
// (or die before) the JWT it carries. Secure only in release mode; local
// development runs over plain HTTP.
func setSessionCookie(c *gin.Context, token string) {
	maxAge := utils.TokenExpiryHours() * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		gin.Mode() == gin.ReleaseMode,
		true,
	)
}
