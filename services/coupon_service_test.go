package services_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"studiopro-backend/models"
	"studiopro-backend/services"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Coupon{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func intPtr(i int) *int              { return &i }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func createCoupon(t *testing.T, db *gorm.DB, coupon models.Coupon) models.Coupon {
	t.Helper()
	if coupon.ValidFrom.IsZero() {
		coupon.ValidFrom = time.Now().Add(-time.Hour)
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("Failed to create coupon: %v", err)
	}
	return coupon
}

func TestRedeemIncrementsCounter(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewCouponService(db)

	coupon := createCoupon(t, db, models.Coupon{
		Code: "SAVE10", DiscountType: models.DiscountTypePercentage, Value: 10,
		IsActive: true,
	})

	redeemed, err := svc.Redeem(coupon.ID)
	if err != nil {
		t.Fatalf("Expected redemption to succeed: %v", err)
	}
	if redeemed.UsedCount != 1 {
		t.Errorf("Expected used count 1, got %d", redeemed.UsedCount)
	}
}

func TestRedeemFailureClassification(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewCouponService(db)

	if _, err := svc.Redeem(uuid.New()); !errors.Is(err, services.ErrCouponNotFound) {
		t.Errorf("Expected not-found, got %v", err)
	}

	inactive := createCoupon(t, db, models.Coupon{
		Code: "OFF", DiscountType: models.DiscountTypeFixed, Value: 5,
		IsActive: false,
	})
	if _, err := svc.Redeem(inactive.ID); !errors.Is(err, services.ErrCouponInactive) {
		t.Errorf("Expected inactive, got %v", err)
	}

	exhausted := createCoupon(t, db, models.Coupon{
		Code: "DONE", DiscountType: models.DiscountTypeFixed, Value: 5,
		IsActive: true, MaxUses: intPtr(2), UsedCount: 2,
	})
	if _, err := svc.Redeem(exhausted.ID); !errors.Is(err, services.ErrCouponLimitExceeded) {
		t.Errorf("Expected limit exceeded, got %v", err)
	}

	future := createCoupon(t, db, models.Coupon{
		Code: "SOON", DiscountType: models.DiscountTypeFixed, Value: 5,
		IsActive: true, ValidFrom: time.Now().Add(time.Hour),
	})
	if _, err := svc.Redeem(future.ID); !errors.Is(err, services.ErrCouponNotYetValidOrExpired) {
		t.Errorf("Expected validity-window failure, got %v", err)
	}

	expired := createCoupon(t, db, models.Coupon{
		Code: "PAST", DiscountType: models.DiscountTypeFixed, Value: 5,
		IsActive:   true,
		ValidFrom:  time.Now().Add(-2 * time.Hour),
		ValidUntil: timePtr(time.Now().Add(-time.Hour)),
	})
	if _, err := svc.Redeem(expired.ID); !errors.Is(err, services.ErrCouponNotYetValidOrExpired) {
		t.Errorf("Expected validity-window failure, got %v", err)
	}

	// Inactive wins over an exceeded limit
	both := createCoupon(t, db, models.Coupon{
		Code: "BOTH", DiscountType: models.DiscountTypeFixed, Value: 5,
		IsActive: false, MaxUses: intPtr(1), UsedCount: 1,
	})
	if _, err := svc.Redeem(both.ID); !errors.Is(err, services.ErrCouponInactive) {
		t.Errorf("Expected inactive to take precedence, got %v", err)
	}
}

// Concurrent redemptions of a single-use coupon: exactly one succeeds, the
// counter never exceeds the limit.
func TestRedeemConcurrentSingleUse(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewCouponService(db)

	coupon := createCoupon(t, db, models.Coupon{
		Code: "ONCE", DiscountType: models.DiscountTypeFixed, Value: 5,
		IsActive: true, MaxUses: intPtr(1),
	})

	const workers = 8
	var successes, limitFailures int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Redeem(coupon.ID)
			switch {
			case err == nil:
				atomic.AddInt32(&successes, 1)
			case errors.Is(err, services.ErrCouponLimitExceeded):
				atomic.AddInt32(&limitFailures, 1)
			default:
				t.Errorf("Unexpected redemption error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("Expected exactly 1 success, got %d", successes)
	}
	if limitFailures != workers-1 {
		t.Errorf("Expected %d limit failures, got %d", workers-1, limitFailures)
	}

	var final models.Coupon
	if err := db.First(&final, "id = ?", coupon.ID).Error; err != nil {
		t.Fatalf("Failed to reload coupon: %v", err)
	}
	if final.UsedCount != 1 {
		t.Errorf("Expected final used count 1, got %d", final.UsedCount)
	}
}

func TestCheckDiscounts(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewCouponService(db)

	createCoupon(t, db, models.Coupon{
		Code: "TEN", DiscountType: models.DiscountTypePercentage, Value: 10,
		IsActive: true,
	})
	createCoupon(t, db, models.Coupon{
		Code: "FLAT15", DiscountType: models.DiscountTypeFixed, Value: 15,
		IsActive: true, MinOrderAmount: floatPtr(50),
	})

	// Percentage of the amount
	_, discount, err := svc.Check("TEN", floatPtr(200))
	if err != nil || discount != 20 {
		t.Errorf("Expected discount 20, got %v err=%v", discount, err)
	}

	// Codes are normalized before lookup
	if _, _, err := svc.Check("  ten ", floatPtr(200)); err != nil {
		t.Errorf("Expected normalized lookup to succeed, got %v", err)
	}

	// Minimum order enforced when an amount is supplied
	if _, _, err := svc.Check("FLAT15", floatPtr(40)); !errors.Is(err, services.ErrCouponMinOrderNotMet) {
		t.Errorf("Expected min-order failure, got %v", err)
	}
	// And when it is not
	if _, _, err := svc.Check("FLAT15", nil); !errors.Is(err, services.ErrCouponMinOrderNotMet) {
		t.Errorf("Expected min-order failure without amount, got %v", err)
	}

	// Fixed discounts never exceed the order total
	_, discount, err = svc.Check("FLAT15", floatPtr(50))
	if err != nil || discount != 15 {
		t.Errorf("Expected discount 15, got %v err=%v", discount, err)
	}

	// Check never consumes a use
	var coupon models.Coupon
	db.First(&coupon, "code = ?", "TEN")
	if coupon.UsedCount != 0 {
		t.Errorf("Expected used count untouched, got %d", coupon.UsedCount)
	}
}
