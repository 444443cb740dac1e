package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adrianburcea94/tennis-courts-v1/internal/domain"
	"github.com/adrianburcea94/tennis-courts-v1/internal/pkg/apperr"
)

type CourtRepo struct{ db *gorm.DB }

func NewCourtRepo(db *gorm.DB) *CourtRepo {
	return &CourtRepo{db: db}
}

func (r *CourtRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.TennisCourt{})
}

func (r *CourtRepo) Create(ctx context.Context, c *domain.TennisCourt) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourtRepo) ByID(ctx context.Context, id string) (*domain.TennisCourt, error) {
	var c domain.TennisCourt
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Tennis Court not found.")
		}
		return nil, err
	}
	return &c, nil
}

func (r *CourtRepo) List(ctx context.Context) ([]domain.TennisCourt, error) {
	var out []domain.TennisCourt
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}
