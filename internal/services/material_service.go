// material_service.go
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
	"strconv"
	"time"

	"github.com/localnerve/materialsdb/internal/cache"
	"github.com/localnerve/materialsdb/internal/filter"
	"github.com/localnerve/materialsdb/internal/metrics"
	"github.com/localnerve/materialsdb/internal/models"
	"github.com/localnerve/materialsdb/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/hints"
)

const (
	facetsCacheKey  = "facets"
	maxCompareCount = 4
)

// MaterialFilterFields is the filter specification of the materials search
var MaterialFilterFields = []filter.Field{
	{Param: "materialType", Column: "material_type", Comparator: filter.Equals},
	{Param: "manufacturer", Column: "manufacturer", Comparator: filter.Equals},
	{Param: "color", Column: "color", Comparator: filter.Equals},
	{Param: "ul94Rating", Column: "ul94_rating", Comparator: filter.Equals},
	{Param: "meltingTempMin", Column: "melting_temperature", Comparator: filter.AtLeast},
	{Param: "meltingTempMax", Column: "melting_temperature", Comparator: filter.AtMost},
	{Param: "tensileStrengthMin", Column: "tensile_strength", Comparator: filter.AtLeast},
	{Param: "tensileStrengthMax", Column: "tensile_strength", Comparator: filter.AtMost},
	{Param: "mfrMin", Column: "mfr", Comparator: filter.AtLeast},
	{Param: "mfrMax", Column: "mfr", Comparator: filter.AtMost},
	{Param: "densityMin", Column: "density", Comparator: filter.AtLeast},
	{Param: "densityMax", Column: "density", Comparator: filter.AtMost},
	{Param: "impactStrengthMin", Column: "impact_strength", Comparator: filter.AtLeast},
	{Param: "impactStrengthMax", Column: "impact_strength", Comparator: filter.AtMost},
	{Param: "fdaApproved", Column: "fda_approved", Comparator: filter.IsTrue},
	{Param: "search", Column: "name", Comparator: filter.ContainsFold},
}

// SearchResult is one page of materials and the total match count
type SearchResult struct {
	Materials []models.Material
	Total     int64
}

// Facets lists the distinct values clients offer as filter choices
type Facets struct {
	Manufacturers []string `json:"manufacturers"`
	MaterialTypes []string `json:"materialTypes"`
	Colors        []string `json:"colors"`
	UL94Ratings   []string `json:"ul94Ratings"`
}

// MaterialService reads and writes the materials catalog
type MaterialService struct {
	db    *gorm.DB
	cache cache.Cache
}

// NewMaterialService creates a MaterialService. A nil cache disables caching.
func NewMaterialService(db *gorm.DB, c cache.Cache) *MaterialService {
	if c == nil {
		c = cache.Nop{}
	}
	return &MaterialService{db: db, cache: c}
}

// Search returns the page of materials matching every criterion,
// newest first with id as the tiebreaker.
func (s *MaterialService) Search(ctx context.Context, criteria filter.Criteria, page filter.Page) (*SearchResult, error) {
	base := filter.Apply(s.db.WithContext(ctx).Model(&models.Material{}), criteria).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count materials: %w", err)
	}

	materials := make([]models.Material, 0, page.Limit)
	if int64(page.Offset) < total {
		err := filter.Paginate(base, page).
			Clauses(hints.Comment("select", "materials.search")).
			Order("created_at DESC").
			Order("id DESC").
			Find(&materials).Error
		if err != nil {
			return nil, fmt.Errorf("search materials: %w", err)
		}
	}

	metrics.ObserveSearch(criteria.Params(), total)

	return &SearchResult{Materials: materials, Total: total}, nil
}

// Get returns one material by id
func (s *MaterialService) Get(ctx context.Context, id uint64) (*models.Material, error) {
	key := materialCacheKey(id)

	var material models.Material
	if s.cache.Get(ctx, key, &material) {
		metrics.ObserveCache("material", true)
		return &material, nil
	}
	metrics.ObserveCache("material", false)

	if err := s.db.WithContext(ctx).First(&material, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get material %d: %w", id, err)
	}

	s.cacheSet(ctx, key, &material)
	return &material, nil
}

// Create validates and stores a new material
func (s *MaterialService) Create(ctx context.Context, in *MaterialInput) (*models.Material, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	material := in.ToModel()
	if err := s.db.WithContext(ctx).Create(material).Error; err != nil {
		return nil, fmt.Errorf("create material: %w", err)
	}

	s.invalidate(ctx)
	return material, nil
}

// Update applies a partial update and returns the stored result
func (s *MaterialService) Update(ctx context.Context, id uint64, patch MaterialPatch) (*models.Material, error) {
	var material models.Material

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&material, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&material).Updates(patch.updates(time.Now().UTC())).Error; err != nil {
			return err
		}
		return tx.First(&material, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update material %d: %w", id, err)
	}

	s.invalidate(ctx, id)
	return &material, nil
}

// Delete removes a material with its pricing links, favorites and reviews
func (s *MaterialService) Delete(ctx context.Context, id uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var material models.Material
		if err := tx.Select("id").First(&material, id).Error; err != nil {
			return err
		}

		reviewIDs := tx.Model(&models.Review{}).Select("id").Where("material_id = ?", id)
		if err := tx.Where("review_id IN (?)", reviewIDs).Delete(&models.ReviewHelpful{}).Error; err != nil {
			return err
		}
		for _, dependent := range []interface{}{&models.Review{}, &models.Favorite{}, &models.MaterialVendor{}} {
			if err := tx.Where("material_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&material).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete material %d: %w", id, err)
	}

	s.invalidate(ctx, id)
	return nil
}

// Facets returns the sorted distinct manufacturers, types, colors and UL94 ratings
func (s *MaterialService) Facets(ctx context.Context) (*Facets, error) {
	var facets Facets
	if s.cache.Get(ctx, facetsCacheKey, &facets) {
		metrics.ObserveCache("facets", true)
		return &facets, nil
	}
	metrics.ObserveCache("facets", false)

	db := s.db.WithContext(ctx)
	for column, dest := range map[string]*[]string{
		"manufacturer":  &facets.Manufacturers,
		"material_type": &facets.MaterialTypes,
		"color":         &facets.Colors,
		"ul94_rating":   &facets.UL94Ratings,
	} {
		*dest = make([]string, 0)
		err := db.Model(&models.Material{}).
			Distinct(column).
			Where(column + " IS NOT NULL AND " + column + " <> ''").
			Order(column + " ASC").
			Pluck(column, dest).Error
		if err != nil {
			return nil, fmt.Errorf("list distinct %s: %w", column, err)
		}
	}

	s.cacheSet(ctx, facetsCacheKey, &facets)
	return &facets, nil
}

// Compare returns the requested materials in request order.
// Between 2 and 4 distinct ids are accepted; any unknown id is ErrNotFound.
func (s *MaterialService) Compare(ctx context.Context, ids []uint64) ([]models.Material, error) {
	ids = distinct(ids)
	if len(ids) < 2 || len(ids) > maxCompareCount {
		verr := types.NewValidationError()
		verr.Add("ids", fmt.Sprintf("must name between 2 and %d distinct materials", maxCompareCount))
		return nil, verr
	}

	var found []models.Material
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("compare materials: %w", err)
	}

	byID := make(map[uint64]models.Material, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}

	ordered := make([]models.Material, 0, len(ids))
	var missing []uint64
	for _, id := range ids {
		m, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		ordered = append(ordered, m)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: materials %v", ErrNotFound, missing)
	}
	return ordered, nil
}

// Exists reports whether a material id is present
func (s *MaterialService) Exists(ctx context.Context, id uint64) (bool, error) {
	return materialExists(s.db.WithContext(ctx), id)
}

func (s *MaterialService) cacheSet(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

// invalidate drops the facets and the given materials from the cache
func (s *MaterialService) invalidate(ctx context.Context, ids ...uint64) {
	keys := []string{facetsCacheKey}
	for _, id := range ids {
		keys = append(keys, materialCacheKey(id))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}

func materialCacheKey(id uint64) string {
	return "material:" + strconv.FormatUint(id, 10)
}

func materialExists(db *gorm.DB, id uint64) (bool, error) {
	var count int64
	if err := db.Model(&models.Material{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func distinct(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
