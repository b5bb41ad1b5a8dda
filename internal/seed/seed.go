// seed.go
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

// Package seed loads an example catalog through the services, so seeded rows pass
// the same validation as API writes. Loading is idempotent by name.
package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/localnerve/materialsdb/internal/models"
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/localnerve/materialsdb/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Catalog is the seed file shape
type Catalog struct {
	Vendors   []services.VendorInput `json:"vendors"`
	Materials []Material             `json:"materials"`
}

// Material is a material with its pricing links, which name vendors by name
type Material struct {
	services.MaterialInput
	Vendors []Link `json:"vendors"`
}

// Link is a pricing link addressed by vendor name
type Link struct {
	Vendor string `json:"vendor"`
	services.MaterialVendorInput
}

// Result counts what a Load created
type Result struct {
	Vendors   int
	Materials int
	Links     int
	Skipped   int
}

// Load parses data and stores every vendor and material not already present.
// Materials match on name and manufacturer; vendors on name.
func Load(ctx context.Context, db *gorm.DB, data []byte) (*Result, error) {
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}

	vendors := services.NewVendorService(db)
	materials := services.NewMaterialService(db, nil)
	result := &Result{}

	vendorIDs := make(map[string]uint64, len(catalog.Vendors))
	for i := range catalog.Vendors {
		in := &catalog.Vendors[i]

		var existing models.Vendor
		err := db.WithContext(ctx).Where("name = ?", in.Name).Limit(1).Find(&existing).Error
		if err != nil {
			return result, fmt.Errorf("find vendor %q: %w", in.Name, err)
		}
		if existing.ID != 0 {
			vendorIDs[in.Name] = existing.ID
			continue
		}

		vendor, err := vendors.Create(ctx, in)
		if err != nil {
			return result, fmt.Errorf("seed vendor %q: %w", in.Name, err)
		}
		vendorIDs[vendor.Name] = vendor.ID
		result.Vendors++
	}

	for i := range catalog.Materials {
		m := &catalog.Materials[i]

		var count int64
		err := db.WithContext(ctx).Model(&models.Material{}).
			Where("name = ? AND manufacturer = ?", m.Name, m.Manufacturer).
			Count(&count).Error
		if err != nil {
			return result, fmt.Errorf("find material %q: %w", m.Name, err)
		}
		if count > 0 {
			result.Skipped++
			continue
		}

		material, err := materials.Create(ctx, &m.MaterialInput)
		if err != nil {
			return result, fmt.Errorf("seed material %q: %w", m.Name, err)
		}
		result.Materials++

		if len(m.Vendors) == 0 {
			continue
		}
		links := make([]services.MaterialVendorInput, len(m.Vendors))
		for j, link := range m.Vendors {
			id, ok := vendorIDs[link.Vendor]
			if !ok {
				return result, fmt.Errorf("seed material %q: unknown vendor %q", m.Name, link.Vendor)
			}
			links[j] = link.MaterialVendorInput
			links[j].VendorID = types.FlexUint64(id)
		}
		created, err := vendors.CreateLinks(ctx, material.ID, links)
		if err != nil {
			return result, fmt.Errorf("seed links of %q: %w", m.Name, err)
		}
		result.Links += len(created)
	}

	log.Info().
		Int("vendors", result.Vendors).
		Int("materials", result.Materials).
		Int("links", result.Links).
		Int("skipped", result.Skipped).
		Msg("seed catalog loaded")
	return result, nil
}
