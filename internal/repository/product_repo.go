package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmstand/internal/models"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// List returns all products with their vendor and the vendor's market
// loaded. A non-empty marketID restricts the result to products whose
// vendor belongs to that market.
func (r *ProductRepo) List(ctx context.Context, marketID string) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Preload("Vendor.Market")
	if marketID != "" {
		q = q.Joins("JOIN vendors ON vendors.id = products.vendor_id").
			Where("vendors.market_id = ?", marketID)
	}
	var items []models.Product
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ProductRepo) ByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Preload("Vendor.Market").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepo) Update(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}
