package controllers

import (
	"fmt"
	"net/http"
	"time"

	"studiopro-backend/config"
	"studiopro-backend/models"
	"studiopro-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpcomingShoot struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Title  string `json:"title"`
	Status string `json:"status"`
	When   string `json:"when"` // "Today", "Tomorrow", "3 days"
}

// GetDashboardOverview summarizes studio activity for the landing page.
func GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	firstOfMonth := utils.BeginningOfMonth(now)

	var totalClients int64
	config.DB.Model(&models.Client{}).Count(&totalClients)

	var totalShoots int64
	config.DB.Model(&models.Shoot{}).Count(&totalShoots)

	var shootsThisMonth int64
	config.DB.Model(&models.Shoot{}).
		Where("start_date >= ?", firstOfMonth).
		Count(&shootsThisMonth)

	var activeShoots int64
	config.DB.Model(&models.Shoot{}).
		Where("status = ?", models.ShootStatusInProgress).
		Count(&activeShoots)

	// Shoots starting within the next 7 days
	var upcoming []models.Shoot
	weekAhead := utils.BeginningOfDay(now).AddDate(0, 0, 8)
	if err := config.DB.
		Where("start_date >= ? AND start_date < ?", utils.BeginningOfDay(now), weekAhead).
		Where("status IN ?", []string{models.ShootStatusPlanned, models.ShootStatusInProgress}).
		Order("start_date asc").
		Limit(7).
		Find(&upcoming).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve upcoming shoots")
		return
	}

	upcomingShoots := make([]UpcomingShoot, 0, len(upcoming))
	for _, shoot := range upcoming {
		if shoot.StartDate == nil {
			continue
		}
		var label string
		switch days := utils.DaysBetween(now, *shoot.StartDate); days {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		default:
			label = fmt.Sprintf("%d days", days)
		}
		upcomingShoots = append(upcomingShoots, UpcomingShoot{
			ID:     shoot.ID.String(),
			Code:   shoot.Code,
			Title:  shoot.Title,
			Status: shoot.Status,
			When:   label,
		})
	}

	var recentEdits []models.Edit
	config.DB.Order("created_at desc").Limit(5).Find(&recentEdits)

	var activeCoupons int64
	config.DB.Model(&models.Coupon{}).
		Where("is_active = ?", true).
		Where("valid_from <= ?", now).
		Where("(valid_until IS NULL OR valid_until >= ?)", now).
		Count(&activeCoupons)

	c.JSON(http.StatusOK, gin.H{
		"totalClients":    totalClients,
		"totalShoots":     totalShoots,
		"shootsThisMonth": shootsThisMonth,
		"activeShoots":    activeShoots,
		"upcomingShoots":  upcomingShoots,
		"recentEdits":     recentEdits,
		"activeCoupons":   activeCoupons,
	})
}
