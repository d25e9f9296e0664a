package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmstand/internal/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepo) ByPhone(ctx context.Context, phone string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "phone = ?", phone).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) PhoneTaken(ctx context.Context, phone string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("phone = ?", phone).Count(&cnt).Error
	return cnt > 0, err
}
