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

type SiteInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (in *SiteInput) validate() utils.Violations {
	v := utils.Violations{}
	utils.Required("name", in.Name, v)
	return v
}

// resolveEntity verifies the client/entity chain from the path and returns
// the entity id. Responds itself on any failure.
func resolveEntity(c *gin.Context) (uuid.UUID, bool) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return uuid.Nil, false
	}
	entityID, ok := pathUUID(c, "entityId")
	if !ok {
		return uuid.Nil, false
	}

	var entity models.BillingEntity
	if err := config.DB.Select("id").
		Where("client_id = ? AND id = ?", clientID, entityID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Billing entity not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return uuid.Nil, false
	}
	return entityID, true
}

func CreateSite(c *gin.Context) {
	entityID, ok := resolveEntity(c)
	if !ok {
		return
	}

	var input SiteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	site := models.Site{
		EntityID: entityID,
		Name:     input.Name,
		Address:  input.Address,
	}

	if err := config.DB.Create(&site).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create site")
		return
	}

	c.JSON(http.StatusCreated, site)
}

func GetSites(c *gin.Context) {
	entityID, ok := resolveEntity(c)
	if !ok {
		return
	}

	var sites []models.Site
	if err := config.DB.Where("entity_id = ?", entityID).
		Order("name asc").Find(&sites).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sites")
		return
	}

	c.JSON(http.StatusOK, sites)
}

func GetSite(c *gin.Context) {
	entityID, ok := resolveEntity(c)
	if !ok {
		return
	}
	siteID, ok := pathUUID(c, "siteId")
	if !ok {
		return
	}

	var site models.Site
	if err := config.DB.
		Preload("POCs", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		Where("entity_id = ? AND id = ?", entityID, siteID).
		First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Site not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, site)
}

func UpdateSite(c *gin.Context) {
	entityID, ok := resolveEntity(c)
	if !ok {
		return
	}
	siteID, ok := pathUUID(c, "siteId")
	if !ok {
		return
	}

	var input SiteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	var site models.Site
	if err := config.DB.Where("entity_id = ? AND id = ?", entityID, siteID).
		First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Site not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	site.Name = input.Name
	site.Address = input.Address

	if err := config.DB.Save(&site).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update site")
		return
	}

	c.JSON(http.StatusOK, site)
}

// DeleteSite refuses to delete a site that still has points of contact.
func DeleteSite(c *gin.Context) {
	entityID, ok := resolveEntity(c)
	if !ok {
		return
	}
	siteID, ok := pathUUID(c, "siteId")
	if !ok {
		return
	}

	var count int64
	config.DB.Model(&models.POC{}).Where("site_id = ?", siteID).Count(&count)
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Site still has points of contact")
		return
	}

	result := config.DB.Where("entity_id = ? AND id = ?", entityID, siteID).
		Delete(&models.Site{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete site")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Site not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Site deleted successfully"})
}
