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

type LocationInput struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (in *LocationInput) validate() utils.Violations {
	v := utils.Violations{}
	utils.Required("name", in.Name, v)
	if in.Latitude != nil {
		utils.RangeFloat("latitude", *in.Latitude, -90, 90, v)
	}
	if in.Longitude != nil {
		utils.RangeFloat("longitude", *in.Longitude, -180, 180, v)
	}
	return v
}

func CreateLocation(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if !clientExists(c, clientID) {
		return
	}

	var input LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	location := models.Location{
		ClientID:  clientID,
		Name:      input.Name,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		Country:   input.Country,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}

	if err := config.DB.Create(&location).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create location")
		return
	}

	c.JSON(http.StatusCreated, location)
}

func GetLocations(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if !clientExists(c, clientID) {
		return
	}

	var locations []models.Location
	if err := config.DB.Where("client_id = ?", clientID).
		Order("name asc").Find(&locations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve locations")
		return
	}

	c.JSON(http.StatusOK, locations)
}

func GetLocation(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	locationID, ok := pathUUID(c, "locationId")
	if !ok {
		return
	}

	var location models.Location
	if err := config.DB.Where("client_id = ? AND id = ?", clientID, locationID).
		First(&location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Location not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, location)
}

func UpdateLocation(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	locationID, ok := pathUUID(c, "locationId")
	if !ok {
		return
	}

	var input LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	var location models.Location
	if err := config.DB.Where("client_id = ? AND id = ?", clientID, locationID).
		First(&location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Location not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	location.Name = input.Name
	location.Address = input.Address
	location.City = input.City
	location.State = input.State
	location.Country = input.Country
	location.Latitude = input.Latitude
	location.Longitude = input.Longitude

	if err := config.DB.Save(&location).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update location")
		return
	}

	c.JSON(http.StatusOK, location)
}

// DeleteLocation refuses to delete a location still referenced by a shoot.
func DeleteLocation(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	locationID, ok := pathUUID(c, "locationId")
	if !ok {
		return
	}

	var count int64
	config.DB.Model(&models.Shoot{}).Where("location_id = ?", locationID).Count(&count)
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Location is referenced by shoots")
		return
	}

	result := config.DB.Where("client_id = ? AND id = ?", clientID, locationID).
		Delete(&models.Location{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete location")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Location not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted successfully"})
}
