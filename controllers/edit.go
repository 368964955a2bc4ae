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

type EditInput struct {
	Title      string      `json:"title"`
	ShootID    *uuid.UUID  `json:"shootId"`
	Status     string      `json:"status"`
	Cost       float64     `json:"cost"`
	CostStatus string      `json:"costStatus"`
	EditorIDs  []uuid.UUID `json:"editorIds"`
	Notes      string      `json:"notes"`
}

func (in *EditInput) validate() utils.Violations {
	v := utils.Violations{}
	utils.Required("title", in.Title, v)
	if in.Status == "" {
		in.Status = models.EditStatusPending
	}
	utils.OneOf("status", in.Status, models.ValidEditStatuses, v)
	if in.CostStatus == "" {
		in.CostStatus = models.CostStatusUnpaid
	}
	utils.OneOf("costStatus", in.CostStatus, models.ValidCostStatuses, v)
	if in.Cost < 0 {
		v["cost"] = "must_be_non_negative"
	}
	return v
}

func CreateEdit(c *gin.Context) {
	var input EditInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	if input.ShootID != nil {
		var shoot models.Shoot
		if err := config.DB.Select("id").First(&shoot, "id = ?", *input.ShootID).Error; err != nil {
			respondRefError(c, err, "Shoot not found")
			return
		}
	}

	editors, ok := loadUsers(c, input.EditorIDs, "Editor not found")
	if !ok {
		return
	}

	edit := models.Edit{
		Title:      input.Title,
		ShootID:    input.ShootID,
		Status:     input.Status,
		Cost:       input.Cost,
		CostStatus: input.CostStatus,
		Notes:      input.Notes,
	}

	if err := config.DB.Create(&edit).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create edit")
		return
	}

	if err := config.DB.Model(&edit).Association("Editors").Replace(editors); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign editors")
		return
	}
	edit.Editors = editors

	c.JSON(http.StatusCreated, edit)
}

func GetEdits(c *gin.Context) {
	var edits []models.Edit
	query := config.DB.Order("created_at desc")
	if shootID := c.Query("shootId"); shootID != "" {
		id, err := uuid.Parse(shootID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid shootId format")
			return
		}
		query = query.Where("shoot_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&edits).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve edits")
		return
	}

	c.JSON(http.StatusOK, edits)
}

func GetEdit(c *gin.Context) {
	editID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var edit models.Edit
	if err := config.DB.Preload("Editors").First(&edit, "id = ?", editID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Edit not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, edit)
}

func UpdateEdit(c *gin.Context) {
	editID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input EditInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	var edit models.Edit
	if err := config.DB.First(&edit, "id = ?", editID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Edit not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ShootID != nil {
		var shoot models.Shoot
		if err := config.DB.Select("id").First(&shoot, "id = ?", *input.ShootID).Error; err != nil {
			respondRefError(c, err, "Shoot not found")
			return
		}
	}

	editors, ok := loadUsers(c, input.EditorIDs, "Editor not found")
	if !ok {
		return
	}

	edit.Title = input.Title
	edit.ShootID = input.ShootID
	edit.Status = input.Status
	edit.Cost = input.Cost
	edit.CostStatus = input.CostStatus
	edit.Notes = input.Notes

	if err := config.DB.Save(&edit).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update edit")
		return
	}

	if err := config.DB.Model(&edit).Association("Editors").Replace(editors); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign editors")
		return
	}
	edit.Editors = editors

	c.JSON(http.StatusOK, edit)
}

func DeleteEdit(c *gin.Context) {
	editID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var edit models.Edit
	if err := config.DB.First(&edit, "id = ?", editID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Edit not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	config.DB.Model(&edit).Association("Editors").Clear()

	if err := config.DB.Delete(&edit).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete edit")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Edit deleted successfully"})
}
