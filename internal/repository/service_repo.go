package repository

import (
	"context"
	"errors"
	"time"

	"belleza/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Name            string    `gorm:"column:name"`
	Description     *string   `gorm:"column:description"`
	Price           float64   `gorm:"column:price"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	Category        *string   `gorm:"column:category"`
	IsActive        bool      `gorm:"column:is_active;default:true"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	s := &domain.Service{
		ID:              m.ID,
		Name:            m.Name,
		Price:           m.Price,
		DurationMinutes: m.DurationMinutes,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Description != nil {
		s.Description = *m.Description
	}
	if m.Category != nil {
		s.Category = *m.Category
	}
	return s
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := serviceModel{
		Name:            s.Name,
		Description:     optString(s.Description),
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Category:        optString(s.Category),
		IsActive:        s.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	var models []serviceModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category, name").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Service, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}
