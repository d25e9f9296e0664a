package repository

import (
	"context"

	"gorm.io/gorm"

	"farmstand/internal/models"
)

type VendorRepo struct {
	db *gorm.DB
}

func NewVendorRepo(db *gorm.DB) *VendorRepo {
	return &VendorRepo{db: db}
}

// ByUserPhone returns the first vendor whose owning user has the given
// phone number. gorm.ErrRecordNotFound when the caller has no vendor.
func (r *VendorRepo) ByUserPhone(ctx context.Context, phone string) (*models.Vendor, error) {
	var v models.Vendor
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = vendors.user_id").
		Where("users.phone = ?", phone).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}
