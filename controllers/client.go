package controllers

import (
	"errors"
	"net/http"

	"studiopro-backend/config"
	"studiopro-backend/models"
	"studiopro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClientInput is the full-record shape for creating and updating a client.
type ClientInput struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Notes        string `json:"notes"`
}

func (in *ClientInput) validate() utils.Violations {
	v := utils.Violations{}
	utils.Required("name", in.Name, v)
	if in.ContactEmail != "" && !utils.ValidateEmail(in.ContactEmail) {
		v["contactEmail"] = "invalid_email"
	}
	if in.ContactPhone != "" && !utils.ValidatePhone(in.ContactPhone) {
		v["contactPhone"] = "invalid_phone"
	}
	return v
}

func CreateClient(c *gin.Context) {
	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	client := models.Client{
		Name:         input.Name,
		Address:      input.Address,
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Notes:        input.Notes,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func GetClients(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Order("name asc").Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

func GetClient(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := config.DB.
		Preload("Entities", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		Preload("Locations", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient replaces the stored record with the submitted one. Omitted
// optional fields reset; last writer wins.
func UpdateClient(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	client.Name = input.Name
	client.Address = input.Address
	client.ContactName = input.ContactName
	client.ContactEmail = input.ContactEmail
	client.ContactPhone = input.ContactPhone
	client.Notes = input.Notes

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient refuses to delete a client that still owns billing entities,
// locations, or shoots.
func DeleteClient(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var count int64
	config.DB.Model(&models.BillingEntity{}).Where("client_id = ?", clientID).Count(&count)
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Client still has billing entities")
		return
	}
	config.DB.Model(&models.Location{}).Where("client_id = ?", clientID).Count(&count)
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Client still has locations")
		return
	}
	config.DB.Model(&models.Shoot{}).Where("client_id = ?", clientID).Count(&count)
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Client still has shoots")
		return
	}

	result := config.DB.Delete(&models.Client{}, "id = ?", clientID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
