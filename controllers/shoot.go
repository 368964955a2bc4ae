package controllers

import (
	"errors"
	"net/http"
	"time"

	"studiopro-backend/config"
	"studiopro-backend/models"
	"studiopro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShootInput struct {
	Title       string      `json:"title"`
	ClientID    *uuid.UUID  `json:"clientId"`
	ShootTypeID *uuid.UUID  `json:"shootTypeId"`
	LocationID  *uuid.UUID  `json:"locationId"`
	DirectorID  *uuid.UUID  `json:"directorId"`
	ExecutorIDs []uuid.UUID `json:"executorIds"`
	EditorIDs   []uuid.UUID `json:"editorIds"`
	Status      string      `json:"status"`
	StartDate   *time.Time  `json:"startDate"`
	EndDate     *time.Time  `json:"endDate"`
	Notes       string      `json:"notes"`
}

func (in *ShootInput) validate() utils.Violations {
	v := utils.Violations{}
	if in.ClientID == nil {
		v["clientId"] = "required"
	}
	if in.ShootTypeID == nil {
		v["shootTypeId"] = "required"
	}
	if in.Status == "" {
		in.Status = models.ShootStatusPlanned
	}
	utils.OneOf("status", in.Status, models.ValidShootStatuses, v)
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		v["endDate"] = "before_start_date"
	}
	return v
}

// resolveShootRefs loads and verifies every record the input references.
// Responds itself on any failure.
func resolveShootRefs(c *gin.Context, input *ShootInput) (*models.ShootType, []models.User, []models.User, bool) {
	var client models.Client
	if err := config.DB.Select("id").First(&client, "id = ?", *input.ClientID).Error; err != nil {
		respondRefError(c, err, "Client not found")
		return nil, nil, nil, false
	}

	var shootType models.ShootType
	if err := config.DB.First(&shootType, "id = ?", *input.ShootTypeID).Error; err != nil {
		respondRefError(c, err, "Shoot type not found")
		return nil, nil, nil, false
	}

	// A shoot location must belong to the shoot's client
	if input.LocationID != nil {
		var location models.Location
		if err := config.DB.Select("id").
			Where("client_id = ? AND id = ?", *input.ClientID, *input.LocationID).
			First(&location).Error; err != nil {
			respondRefError(c, err, "Location not found for this client")
			return nil, nil, nil, false
		}
	}

	if input.DirectorID != nil {
		var director models.User
		if err := config.DB.Select("id").First(&director, "id = ?", *input.DirectorID).Error; err != nil {
			respondRefError(c, err, "Director not found")
			return nil, nil, nil, false
		}
	}

	executors, ok := loadUsers(c, input.ExecutorIDs, "Executor not found")
	if !ok {
		return nil, nil, nil, false
	}
	editors, ok := loadUsers(c, input.EditorIDs, "Editor not found")
	if !ok {
		return nil, nil, nil, false
	}

	return &shootType, executors, editors, true
}

func respondRefError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusBadRequest, notFoundMsg)
	} else {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

func loadUsers(c *gin.Context, ids []uuid.UUID, notFoundMsg string) ([]models.User, bool) {
	if len(ids) == 0 {
		return nil, true
	}
	var users []models.User
	if err := config.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	if len(users) != len(ids) {
		utils.RespondWithError(c, http.StatusBadRequest, notFoundMsg)
		return nil, false
	}
	return users, true
}

func CreateShoot(c *gin.Context) {
	var input ShootInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	shootType, executors, editors, ok := resolveShootRefs(c, &input)
	if !ok {
		return
	}

	shoot := models.Shoot{
		Title:       input.Title,
		ClientID:    *input.ClientID,
		ShootTypeID: *input.ShootTypeID,
		LocationID:  input.LocationID,
		DirectorID:  input.DirectorID,
		Status:      input.Status,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Notes:       input.Notes,
	}

	// Human-readable identifier built from the shoot type code
	refDate := time.Now()
	if input.StartDate != nil {
		refDate = *input.StartDate
	}
	shoot.Code = shootType.Code + "-" + refDate.Format("20060102") + "-" + utils.GenerateRandomString(6)

	if err := config.DB.Create(&shoot).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create shoot")
		return
	}

	if err := replaceShootAssignments(&shoot, executors, editors); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign team members")
		return
	}

	c.JSON(http.StatusCreated, shoot)
}

func replaceShootAssignments(shoot *models.Shoot, executors, editors []models.User) error {
	if err := config.DB.Model(shoot).Association("Executors").Replace(executors); err != nil {
		return err
	}
	if err := config.DB.Model(shoot).Association("Editors").Replace(editors); err != nil {
		return err
	}
	shoot.Executors = executors
	shoot.Editors = editors
	return nil
}

func GetShoots(c *gin.Context) {
	var shoots []models.Shoot
	query := config.DB.Order("created_at desc")
	if clientID := c.Query("clientId"); clientID != "" {
		id, err := uuid.Parse(clientID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid clientId format")
			return
		}
		query = query.Where("client_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&shoots).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve shoots")
		return
	}

	c.JSON(http.StatusOK, shoots)
}

func GetShoot(c *gin.Context) {
	shootID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var shoot models.Shoot
	if err := config.DB.
		Preload("Executors").
		Preload("Editors").
		Preload("Edits").
		First(&shoot, "id = ?", shootID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shoot not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, shoot)
}

// UpdateShoot replaces the stored record. The generated code is kept.
func UpdateShoot(c *gin.Context) {
	shootID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input ShootInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	var shoot models.Shoot
	if err := config.DB.First(&shoot, "id = ?", shootID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shoot not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	_, executors, editors, ok := resolveShootRefs(c, &input)
	if !ok {
		return
	}

	shoot.Title = input.Title
	shoot.ClientID = *input.ClientID
	shoot.ShootTypeID = *input.ShootTypeID
	shoot.LocationID = input.LocationID
	shoot.DirectorID = input.DirectorID
	shoot.Status = input.Status
	shoot.StartDate = input.StartDate
	shoot.EndDate = input.EndDate
	shoot.Notes = input.Notes

	if err := config.DB.Save(&shoot).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update shoot")
		return
	}

	if err := replaceShootAssignments(&shoot, executors, editors); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign team members")
		return
	}

	c.JSON(http.StatusOK, shoot)
}

// DeleteShoot refuses to delete a shoot that edits still link to.
func DeleteShoot(c *gin.Context) {
	shootID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var count int64
	config.DB.Model(&models.Edit{}).Where("shoot_id = ?", shootID).Count(&count)
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Shoot still has edits")
		return
	}

	var shoot models.Shoot
	if err := config.DB.First(&shoot, "id = ?", shootID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shoot not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Drop assignment rows before the shoot itself
	config.DB.Model(&shoot).Association("Executors").Clear()
	config.DB.Model(&shoot).Association("Editors").Clear()

	if err := config.DB.Delete(&shoot).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete shoot")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shoot deleted successfully"})
}
