// vendor.go
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

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vendor represents a supplier of materials
type Vendor struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:255;not null;index:idx_vendors_name" json:"name"`
	Website      *string   `gorm:"size:2048" json:"website"`
	ContactEmail *string   `gorm:"column:contact_email;size:255" json:"contactEmail"`
	ContactPhone *string   `gorm:"column:contact_phone;size:50" json:"contactPhone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName specifies the table name for Vendor
func (Vendor) TableName() string {
	return "vendors"
}

// MaterialVendor is the pricing link between a material and a vendor
type MaterialVendor struct {
	ID           uint64              `gorm:"primaryKey;autoIncrement" json:"id"`
	MaterialID   uint64              `gorm:"column:material_id;not null;index:idx_material_vendors_material" json:"materialId"`
	VendorID     uint64              `gorm:"column:vendor_id;not null;index:idx_material_vendors_vendor" json:"vendorId"`
	Price        decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"price"` // per kg
	Currency     string              `gorm:"size:3;not null;default:USD" json:"currency"`
	MinimumOrder decimal.NullDecimal `gorm:"column:minimum_order;type:decimal(10,2)" json:"minimumOrder"` // kg
	Availability string              `gorm:"size:50;not null;default:in_stock" json:"availability"`
	ProductURL   *string             `gorm:"column:product_url;size:2048" json:"productUrl"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`

	Material *Material `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE" json:"-"`
	Vendor   *Vendor   `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

// TableName specifies the table name for MaterialVendor
func (MaterialVendor) TableName() string {
	return "material_vendors"
}
