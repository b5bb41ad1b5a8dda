// data.go
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

package helpers

import (
	"context"
	"testing"

	"github.com/localnerve/materialsdb/data"
	"github.com/localnerve/materialsdb/internal/models"
	"github.com/localnerve/materialsdb/internal/seed"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SeedCatalog loads the built-in example catalog into db
func SeedCatalog(t *testing.T, db *gorm.DB) *seed.Result {
	t.Helper()
	result, err := seed.Load(context.Background(), db, data.SeedCatalog)
	require.NoError(t, err, "seed catalog")
	return result
}

// FindMaterial returns the seeded material named name
func FindMaterial(t *testing.T, db *gorm.DB, name string) models.Material {
	t.Helper()
	var m models.Material
	require.NoError(t, db.Where("name = ?", name).First(&m).Error, "find material %s", name)
	return m
}
