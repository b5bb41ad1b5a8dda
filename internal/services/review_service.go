// review_service.go
//
// A catalog data service for industrial plastic materials
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of materialsdb.
// materialsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// materialsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with materialsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/localnerve/materialsdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewInput is the writable shape of a review
type ReviewInput struct {
	Rating           int                    `json:"rating" validate:"required,gte=1,lte=5"`
	Title            string                 `json:"title" validate:"required,max=255"`
	Body             *string                `json:"body" validate:"omitempty,max=10000"`
	Application      *string                `json:"application" validate:"omitempty,max=255"`
	ProcessingMethod *string                `json:"processingMethod" validate:"omitempty,max=100"`
	ProcessDetails   map[string]interface{} `json:"processDetails"`
	VerifiedPurchase bool                   `json:"verifiedPurchase"`
}

// ReviewService manages material reviews and helpful marks
type ReviewService struct {
	db *gorm.DB
}

// NewReviewService creates a ReviewService
func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ListForMaterial returns a material's reviews, newest first
func (s *ReviewService) ListForMaterial(ctx context.Context, materialID uint64) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := s.db.WithContext(ctx).
		Where("material_id = ?", materialID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews of material %d: %w", materialID, err)
	}
	return reviews, nil
}

// Create stores the user's review of a material.
// A second review by the same user is ErrConflict.
func (s *ReviewService) Create(ctx context.Context, userID string, materialID uint64, in *ReviewInput) (*models.Review, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	review := models.Review{
		UserID:           userID,
		MaterialID:       materialID,
		Rating:           in.Rating,
		Title:            in.Title,
		Body:             blankToNil(in.Body),
		Application:      blankToNil(in.Application),
		ProcessingMethod: blankToNil(in.ProcessingMethod),
		VerifiedPurchase: in.VerifiedPurchase,
	}
	if len(in.ProcessDetails) > 0 {
		details, err := models.NewJSON(in.ProcessDetails)
		if err != nil {
			return nil, invalidBody(err)
		}
		review.ProcessDetails = details
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := materialExists(tx, materialID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}

		var existing int64
		if err := tx.Model(&models.Review{}).
			Where("user_id = ? AND material_id = ?", userID, materialID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrConflict
		}

		return tx.Omit(clause.Associations).Create(&review).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict):
			return nil, err
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &review, nil
}

// Delete removes a review and its helpful marks. Only the author may delete.
func (s *ReviewService) Delete(ctx context.Context, userID string, reviewID uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.Select("id", "user_id").First(&review, reviewID).Error; err != nil {
			return err
		}
		if review.UserID != userID {
			return ErrForbidden
		}
		if err := tx.Where("review_id = ?", reviewID).Delete(&models.ReviewHelpful{}).Error; err != nil {
			return err
		}
		return tx.Delete(&review).Error
	})
	return reviewError(err, reviewID)
}

// MarkHelpful records that userID found the review helpful. Marking twice counts once.
func (s *ReviewService) MarkHelpful(ctx context.Context, userID string, reviewID uint64) (*models.Review, error) {
	var review models.Review
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, reviewID).Error; err != nil {
			return err
		}

		mark := models.ReviewHelpful{ReviewID: reviewID, UserID: userID}
		res := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&mark)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		if err := tx.Model(&models.Review{}).Where("id = ?", reviewID).
			UpdateColumn("helpful_count", gorm.Expr("helpful_count + ?", 1)).Error; err != nil {
			return err
		}
		return tx.First(&review, reviewID).Error
	})
	if err := reviewError(err, reviewID); err != nil {
		return nil, err
	}
	return &review, nil
}

func reviewError(err error, reviewID uint64) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, ErrForbidden):
		return err
	}
	return fmt.Errorf("review %d: %w", reviewID, err)
}
