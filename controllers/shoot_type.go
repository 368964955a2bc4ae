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

type ShootTypeInput struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// normalize uppercases the code; identifiers built from it stay consistent.
func (in *ShootTypeInput) normalize() {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
}

func (in *ShootTypeInput) validate() utils.Violations {
	v := utils.Violations{}
	utils.Required("name", in.Name, v)
	utils.Required("code", in.Code, v)
	if len(in.Code) > 10 {
		v["code"] = "max_length_10"
	}
	return v
}

func CreateShootType(c *gin.Context) {
	var input ShootTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	input.normalize()
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	shootType := models.ShootType{
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
	}

	if err := config.DB.Create(&shootType).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create shoot type")
		return
	}

	c.JSON(http.StatusCreated, shootType)
}

func GetShootTypes(c *gin.Context) {
	var shootTypes []models.ShootType
	if err := config.DB.Order("name asc").Find(&shootTypes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve shoot types")
		return
	}

	c.JSON(http.StatusOK, shootTypes)
}

func GetShootType(c *gin.Context) {
	typeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var shootType models.ShootType
	if err := config.DB.First(&shootType, "id = ?", typeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shoot type not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, shootType)
}

func UpdateShootType(c *gin.Context) {
	typeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input ShootTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	input.normalize()
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	var shootType models.ShootType
	if err := config.DB.First(&shootType, "id = ?", typeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shoot type not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	shootType.Name = input.Name
	shootType.Code = input.Code
	shootType.Description = input.Description

	if err := config.DB.Save(&shootType).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update shoot type")
		return
	}

	c.JSON(http.StatusOK, shootType)
}

// DeleteShootType refuses to delete a catalog entry still referenced by a
// shoot. Existing shoots keep their generated identifiers either way.
func DeleteShootType(c *gin.Context) {
	typeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var count int64
	config.DB.Model(&models.Shoot{}).Where("shoot_type_id = ?", typeID).Count(&count)
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Shoot type is referenced by shoots")
		return
	}

	result := config.DB.Delete(&models.ShootType{}, "id = ?", typeID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete shoot type")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Shoot type not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shoot type deleted successfully"})
}
