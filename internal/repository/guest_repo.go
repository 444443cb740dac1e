package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adrianburcea94/tennis-courts-v1/internal/domain"
	"github.com/adrianburcea94/tennis-courts-v1/internal/pkg/apperr"
)

type GuestRepo struct{ db *gorm.DB }

func NewGuestRepo(db *gorm.DB) *GuestRepo {
	return &GuestRepo{db: db}
}

func (r *GuestRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Guest{})
}

func (r *GuestRepo) Create(ctx context.Context, g *domain.Guest) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GuestRepo) ByID(ctx context.Context, id string) (*domain.Guest, error) {
	var g domain.Guest
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Guest not found.")
		}
		return nil, err
	}
	return &g, nil
}

func (r *GuestRepo) ByName(ctx context.Context, name string) ([]domain.Guest, error) {
	var out []domain.Guest
	err := r.db.WithContext(ctx).Where("name = ?", name).Find(&out).Error
	return out, err
}

func (r *GuestRepo) List(ctx context.Context) ([]domain.Guest, error) {
	var out []domain.Guest
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *GuestRepo) Save(ctx context.Context, g *domain.Guest) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GuestRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Guest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Guest not found.")
	}
	return nil
}
