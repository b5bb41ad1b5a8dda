package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/materialsdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserService maintains the local mirror of identity provider accounts
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Upsert stores the identity's profile, refreshing it when the user exists
func (s *UserService) Upsert(ctx context.Context, identity *Identity) (*models.User, error) {
	user := models.User{
		ID:              identity.ID,
		Email:           blankToNil(&identity.Email),
		FirstName:       blankToNil(&identity.FirstName),
		LastName:        blankToNil(&identity.LastName),
		ProfileImageURL: blankToNil(&identity.ProfileImageURL),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "profile_image_url", "updated_at"}),
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", identity.ID, err)
	}
	return &user, nil
}

// Get returns a mirrored user
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &user, nil
}
