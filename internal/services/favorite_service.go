// favorite_service.go
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

	"github.com/localnerve/materialsdb/internal/metrics"
	"github.com/localnerve/materialsdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteService manages per-user favorite materials
type FavoriteService struct {
	db *gorm.DB
}

// NewFavoriteService creates a FavoriteService
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// IsFavorite reports whether userID has favorited materialID
func (s *FavoriteService) IsFavorite(ctx context.Context, userID string, materialID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND material_id = ?", userID, materialID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return count > 0, nil
}

// Add favorites a material. Adding twice is a no-op returning the existing record;
// created reports whether a new record was stored.
func (s *FavoriteService) Add(ctx context.Context, userID string, materialID uint64) (favorite *models.Favorite, created bool, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := materialExists(tx, materialID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}

		fav := models.Favorite{UserID: userID, MaterialID: materialID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav)
		if res.Error != nil {
			return res.Error
		}
		created = res.RowsAffected == 1

		if !created {
			fav = models.Favorite{}
			if err := tx.Where("user_id = ? AND material_id = ?", userID, materialID).First(&fav).Error; err != nil {
				return err
			}
		}
		favorite = &fav
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, err
		}
		return nil, false, fmt.Errorf("add favorite: %w", err)
	}

	if created {
		metrics.FavoriteChanges.WithLabelValues("add").Inc()
	}
	return favorite, created, nil
}

// Remove deletes the favorite if present and reports whether one was removed
func (s *FavoriteService) Remove(ctx context.Context, userID string, materialID uint64) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND material_id = ?", userID, materialID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return false, fmt.Errorf("remove favorite: %w", res.Error)
	}

	removed := res.RowsAffected > 0
	if removed {
		metrics.FavoriteChanges.WithLabelValues("remove").Inc()
	}
	return removed, nil
}

// List returns the user's favorites newest first, each with its material
func (s *FavoriteService) List(ctx context.Context, userID string) ([]models.Favorite, error) {
	favorites := make([]models.Favorite, 0)
	err := s.db.WithContext(ctx).
		InnerJoins("Material").
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "user_id"}, Value: userID}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Desc: true}).
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}
