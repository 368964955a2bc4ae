package controllers

import (
	"errors"
	"net/http"

	"studiopro-backend/config"
	"studiopro-backend/models"
	"studiopro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type POCInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (in *POCInput) validate() utils.Violations {
	v := utils.Violations{}
	utils.Required("name", in.Name, v)
	utils.Required("phone", in.Phone, v)
	if in.Phone != "" && !utils.ValidatePhone(in.Phone) {
		v["phone"] = "invalid_phone"
	}
	if in.Email != "" && !utils.ValidateEmail(in.Email) {
		v["email"] = "invalid_email"
	}
	return v
}

// resolveSite verifies the client/entity/site chain from the path and
// returns the site id. Responds itself on any failure.
func resolveSite(c *gin.Context) (uuid.UUID, bool) {
	entityID, ok := resolveEntity(c)
	if !ok {
		return uuid.Nil, false
	}
	siteID, ok := pathUUID(c, "siteId")
	if !ok {
		return uuid.Nil, false
	}

	var site models.Site
	if err := config.DB.Select("id").
		Where("entity_id = ? AND id = ?", entityID, siteID).
		First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Site not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return uuid.Nil, false
	}
	return siteID, true
}

func CreatePOC(c *gin.Context) {
	siteID, ok := resolveSite(c)
	if !ok {
		return
	}

	var input POCInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	poc := models.POC{
		SiteID: siteID,
		Name:   input.Name,
		Phone:  input.Phone,
		Email:  input.Email,
		Role:   input.Role,
	}

	if err := config.DB.Create(&poc).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create point of contact")
		return
	}

	c.JSON(http.StatusCreated, poc)
}

func GetPOCs(c *gin.Context) {
	siteID, ok := resolveSite(c)
	if !ok {
		return
	}

	var pocs []models.POC
	if err := config.DB.Where("site_id = ?", siteID).
		Order("name asc").Find(&pocs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve points of contact")
		return
	}

	c.JSON(http.StatusOK, pocs)
}

func GetPOC(c *gin.Context) {
	siteID, ok := resolveSite(c)
	if !ok {
		return
	}
	pocID, ok := pathUUID(c, "pocId")
	if !ok {
		return
	}

	var poc models.POC
	if err := config.DB.Where("site_id = ? AND id = ?", siteID, pocID).
		First(&poc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Point of contact not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, poc)
}

func UpdatePOC(c *gin.Context) {
	siteID, ok := resolveSite(c)
	if !ok {
		return
	}
	pocID, ok := pathUUID(c, "pocId")
	if !ok {
		return
	}

	var input POCInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	var poc models.POC
	if err := config.DB.Where("site_id = ? AND id = ?", siteID, pocID).
		First(&poc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Point of contact not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	poc.Name = input.Name
	poc.Phone = input.Phone
	poc.Email = input.Email
	poc.Role = input.Role

	if err := config.DB.Save(&poc).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update point of contact")
		return
	}

	c.JSON(http.StatusOK, poc)
}

func DeletePOC(c *gin.Context) {
	siteID, ok := resolveSite(c)
	if !ok {
		return
	}
	pocID, ok := pathUUID(c, "pocId")
	if !ok {
		return
	}

	result := config.DB.Where("site_id = ? AND id = ?", siteID, pocID).
		Delete(&models.POC{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete point of contact")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Point of contact not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Point of contact deleted successfully"})
}
