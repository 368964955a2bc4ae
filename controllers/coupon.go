package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"studiopro-backend/config"
	"studiopro-backend/models"
	"studiopro-backend/services"
	"studiopro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CouponInput struct {
	Code           string     `json:"code"`
	Description    string     `json:"description"`
	DiscountType   string     `json:"discountType"`
	Value          *float64   `json:"value"`
	MinOrderAmount *float64   `json:"minOrderAmount"`
	MaxUses        *int       `json:"maxUses"`
	ValidFrom      *time.Time `json:"validFrom"`
	ValidUntil     *time.Time `json:"validUntil"`
	IsActive       *bool      `json:"isActive"`
}

func (in *CouponInput) normalize() {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
}

func (in *CouponInput) validate() utils.Violations {
	v := utils.Violations{}
	utils.Required("code", in.Code, v)
	utils.OneOf("discountType", in.DiscountType, models.ValidDiscountTypes, v)
	if in.Value == nil {
		v["value"] = "required"
	} else {
		if *in.Value < 0 {
			v["value"] = "must_be_non_negative"
		}
		// Percentage discounts cap at 100
		if in.DiscountType == models.DiscountTypePercentage && *in.Value > 100 {
			v["value"] = "percentage_exceeds_100"
		}
	}
	if in.MinOrderAmount != nil && *in.MinOrderAmount < 0 {
		v["minOrderAmount"] = "must_be_non_negative"
	}
	if in.MaxUses != nil && *in.MaxUses < 1 {
		v["maxUses"] = "must_be_at_least_1"
	}
	if in.ValidFrom == nil {
		v["validFrom"] = "required"
	} else if in.ValidUntil != nil && !in.ValidUntil.After(*in.ValidFrom) {
		v["validUntil"] = "must_be_after_valid_from"
	}
	return v
}

func CreateCoupon(c *gin.Context) {
	var input CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	input.normalize()
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	// Codes are unique
	var existing models.Coupon
	if err := config.DB.Where("code = ?", input.Code).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Coupon with this code already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	coupon := models.Coupon{
		Code:           input.Code,
		Description:    input.Description,
		DiscountType:   input.DiscountType,
		Value:          *input.Value,
		MinOrderAmount: input.MinOrderAmount,
		MaxUses:        input.MaxUses,
		ValidFrom:      *input.ValidFrom,
		ValidUntil:     input.ValidUntil,
		IsActive:       true,
	}
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create coupon")
		return
	}

	c.JSON(http.StatusCreated, coupon)
}

func GetCoupons(c *gin.Context) {
	var coupons []models.Coupon
	if err := config.DB.Order("created_at desc").Find(&coupons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve coupons")
		return
	}

	c.JSON(http.StatusOK, coupons)
}

func GetCoupon(c *gin.Context) {
	couponID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, "id = ?", couponID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Coupon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, coupon)
}

// UpdateCoupon replaces the stored record; used_count is never writable
// through this path.
func UpdateCoupon(c *gin.Context) {
	couponID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	input.normalize()
	if v := input.validate(); !v.Empty() {
		utils.RespondWithValidationErrors(c, v)
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, "id = ?", couponID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Coupon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if coupon.Code != input.Code {
		var existing models.Coupon
		if err := config.DB.Where("code = ?", input.Code).First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Another coupon with this code already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	coupon.Code = input.Code
	coupon.Description = input.Description
	coupon.DiscountType = input.DiscountType
	coupon.Value = *input.Value
	coupon.MinOrderAmount = input.MinOrderAmount
	coupon.MaxUses = input.MaxUses
	coupon.ValidFrom = *input.ValidFrom
	coupon.ValidUntil = input.ValidUntil
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&coupon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update coupon")
		return
	}

	c.JSON(http.StatusOK, coupon)
}

func DeleteCoupon(c *gin.Context) {
	couponID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Coupon{}, "id = ?", couponID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete coupon")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Coupon not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}

// RedeemCoupon runs the atomic redemption guard.
func RedeemCoupon(c *gin.Context) {
	couponID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	coupon, err := services.NewCouponService(config.DB).Redeem(couponID)
	if err != nil {
		respondCouponError(c, err)
		return
	}

	c.JSON(http.StatusOK, coupon)
}

// CheckCoupon validates a coupon by code without consuming a use, returning
// the discount it would grant for the optional amount query parameter.
func CheckCoupon(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "code query parameter is required")
		return
	}

	var amount *float64
	if raw := c.Query("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid amount")
			return
		}
		amount = &parsed
	}

	coupon, discount, err := services.NewCouponService(config.DB).Check(code, amount)
	if err != nil {
		respondCouponError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"coupon":   coupon,
		"discount": discount,
	})
}

func respondCouponError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCouponNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrCouponInactive),
		errors.Is(err, services.ErrCouponLimitExceeded),
		errors.Is(err, services.ErrCouponNotYetValidOrExpired),
		errors.Is(err, services.ErrCouponMinOrderNotMet):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
