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

type EntityInput struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

func (in *EntityInput) validate() utils.Violations {
	v := utils.Violations{}
	utils.Required("name", in.Name, v)
	return v
}

// clientExists responds 404 itself when the client is missing.
func clientExists(c *gin.Context, clientID uuid.UUID) bool {
	var client models.Client
	if err := config.DB.Select("id").First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return false
	}
	return true
}

func CreateEntity(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if !clientExists(c, clientID) {
		return
	}

	var input EntityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	entity := models.BillingEntity{
		ClientID: clientID,
		Name:     input.Name,
		Notes:    input.Notes,
	}

	if err := config.DB.Create(&entity).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create billing entity")
		return
	}

	c.JSON(http.StatusCreated, entity)
}

func GetEntities(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if !clientExists(c, clientID) {
		return
	}

	var entities []models.BillingEntity
	if err := config.DB.Where("client_id = ?", clientID).
		Order("name asc").Find(&entities).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve billing entities")
		return
	}

	c.JSON(http.StatusOK, entities)
}

func GetEntity(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	entityID, ok := pathUUID(c, "entityId")
	if !ok {
		return
	}

	var entity models.BillingEntity
	if err := config.DB.
		Preload("Sites", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		Where("client_id = ? AND id = ?", clientID, entityID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Billing entity not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, entity)
}

func UpdateEntity(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	entityID, ok := pathUUID(c, "entityId")
	if !ok {
		return
	}

	var input EntityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	var entity models.BillingEntity
	if err := config.DB.Where("client_id = ? AND id = ?", clientID, entityID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Billing entity not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	entity.Name = input.Name
	entity.Notes = input.Notes

	if err := config.DB.Save(&entity).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update billing entity")
		return
	}

	c.JSON(http.StatusOK, entity)
}

// DeleteEntity refuses to delete a billing entity that still has sites.
func DeleteEntity(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	entityID, ok := pathUUID(c, "entityId")
	if !ok {
		return
	}

	var count int64
	config.DB.Model(&models.Site{}).Where("entity_id = ?", entityID).Count(&count)
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Billing entity still has sites")
		return
	}

	result := config.DB.Where("client_id = ? AND id = ?", clientID, entityID).
		Delete(&models.BillingEntity{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete billing entity")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Billing entity not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Billing entity deleted successfully"})
}
