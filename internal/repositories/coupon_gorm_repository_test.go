package repositories_test

import (
	"testing"

	"artshop/internal/models"
	"artshop/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMCouponRepository_CreateDuplicateConflicts(t *testing.T) {
	db := setupTestDB(t)
	couponRepo := repositories.NewGORMCouponRepository(db)

	require.NoError(t, couponRepo.Create(&models.Coupon{Code: "ART10", Discount: 10, IsActive: true}))

	// The unique index turns a second insert into a conflict, so a racing
	// duplicate fails the same way a sequential one does.
	err := couponRepo.Create(&models.Coupon{Code: "ART10", Discount: 20, IsActive: true})
	assert.ErrorIs(t, err, models.ErrConflict)

	coupons, err := couponRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, 10, coupons[0].Discount)
}
