package repository

import (
	"context"
	"errors"
	"time"

	"belleza/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type profileModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	Phone        *string   `gorm:"column:phone"`
	Role         string    `gorm:"column:role;index"`
	PasswordHash string    `gorm:"column:password_hash"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (profileModel) TableName() string { return "profiles" }

func toDomainProfile(m profileModel) *domain.Profile {
	p := &domain.Profile{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         domain.Role(m.Role),
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Phone != nil {
		p.Phone = *m.Phone
	}
	return p
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	m := profileModel{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        optString(p.Phone),
		Role:         string(p.Role),
		PasswordHash: p.PasswordHash,
		IsActive:     p.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = *toDomainProfile(m)
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	var m profileModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainProfile(m), nil
}

// ListStaff returns active staff profiles, the set the booking form offers.
func (r *ProfileRepository) ListStaff(ctx context.Context) ([]domain.Profile, error) {
	var models []profileModel
	err := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", string(domain.RoleStaff), true).
		Order("name").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Profile, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainProfile(m))
	}
	return out, nil
}
