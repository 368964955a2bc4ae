// services/coupon_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"studiopro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Redemption guard failures. The controller maps these to 404/409.
var (
	ErrCouponNotFound             = errors.New("coupon not found")
	ErrCouponInactive             = errors.New("coupon is inactive")
	ErrCouponLimitExceeded        = errors.New("coupon usage limit exceeded")
	ErrCouponNotYetValidOrExpired = errors.New("coupon is outside its validity window")
	ErrCouponMinOrderNotMet       = errors.New("order amount is below the coupon minimum")
)

type CouponService struct {
	db *gorm.DB
}

func NewCouponService(db *gorm.DB) *CouponService {
	return &CouponService{db: db}
}

// Redeem increments the usage counter, but only while the coupon is active,
// under its usage limit, and inside its validity window. The check and the
// increment execute as a single conditional UPDATE so concurrent redemptions
// cannot push used_count past max_uses.
func (s *CouponService) Redeem(id uuid.UUID) (*models.Coupon, error) {
	now := time.Now()

	result := s.db.Model(&models.Coupon{}).
		Where("id = ?", id).
		Where("is_active = ?", true).
		Where("(max_uses IS NULL OR used_count < max_uses)").
		Where("valid_from <= ?", now).
		Where("(valid_until IS NULL OR valid_until >= ?)", now).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, s.classifyFailure(id)
	}

	var coupon models.Coupon
	if err := s.db.First(&coupon, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

// classifyFailure re-reads the coupon to report which precondition failed.
// Precedence: not found, inactive, limit, validity window.
func (s *CouponService) classifyFailure(id uuid.UUID) error {
	var coupon models.Coupon
	if err := s.db.First(&coupon, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCouponNotFound
		}
		return err
	}
	switch {
	case !coupon.IsActive:
		return ErrCouponInactive
	case coupon.MaxUses != nil && coupon.UsedCount >= *coupon.MaxUses:
		return ErrCouponLimitExceeded
	default:
		return ErrCouponNotYetValidOrExpired
	}
}

// Check looks a coupon up by code and runs the redemption preconditions
// read-only, additionally enforcing the minimum order amount when the caller
// supplies an amount. Returns the coupon and the discount it would grant.
// used_count is not touched.
func (s *CouponService) Check(code string, amount *float64) (*models.Coupon, float64, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var coupon models.Coupon
	if err := s.db.First(&coupon, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrCouponNotFound
		}
		return nil, 0, err
	}

	now := time.Now()
	switch {
	case !coupon.IsActive:
		return nil, 0, ErrCouponInactive
	case coupon.MaxUses != nil && coupon.UsedCount >= *coupon.MaxUses:
		return nil, 0, ErrCouponLimitExceeded
	case now.Before(coupon.ValidFrom),
		coupon.ValidUntil != nil && now.After(*coupon.ValidUntil):
		return nil, 0, ErrCouponNotYetValidOrExpired
	}

	if coupon.MinOrderAmount != nil {
		if amount == nil || *amount < *coupon.MinOrderAmount {
			return nil, 0, ErrCouponMinOrderNotMet
		}
	}

	return &coupon, s.discountFor(&coupon, amount), nil
}

func (s *CouponService) discountFor(coupon *models.Coupon, amount *float64) float64 {
	var discount float64
	switch coupon.DiscountType {
	case models.DiscountTypePercentage:
		if amount == nil {
			return 0
		}
		discount = *amount * coupon.Value / 100
	default:
		discount = coupon.Value
	}
	// A coupon never discounts more than the order itself
	if amount != nil && discount > *amount {
		discount = *amount
	}
	return discount
}
