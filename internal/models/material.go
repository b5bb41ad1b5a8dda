// material.go
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
)

// Material is one plastic material record.
// Numeric properties are nullable: nil means "not specified", never zero.
type Material struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"size:255;not null;index:idx_materials_name" json:"name"`
	Manufacturer string  `gorm:"size:255;not null;index:idx_materials_manufacturer" json:"manufacturer"`
	MaterialType string  `gorm:"column:material_type;size:50;not null;index:idx_materials_type" json:"materialType"`
	Description  *string `gorm:"type:text" json:"description"`
	ImageURL     *string `gorm:"column:image_url;size:2048" json:"imageUrl"`

	// Mechanical
	TensileStrength   *float64 `gorm:"column:tensile_strength;type:decimal(8,2)" json:"tensileStrength"`      // MPa
	FlexuralStrength  *float64 `gorm:"column:flexural_strength;type:decimal(8,2)" json:"flexuralStrength"`    // MPa
	ImpactStrength    *float64 `gorm:"column:impact_strength;type:decimal(8,2)" json:"impactStrength"`        // kJ/m2
	ElongationAtBreak *float64 `gorm:"column:elongation_at_break;type:decimal(8,2)" json:"elongationAtBreak"` // %

	// Thermal
	MeltingTemperature  *float64 `gorm:"column:melting_temperature;type:decimal(8,2)" json:"meltingTemperature"`    // C
	HeatDeflectionTemp  *float64 `gorm:"column:heat_deflection_temp;type:decimal(8,2)" json:"heatDeflectionTemp"`   // C
	VicatSofteningPoint *float64 `gorm:"column:vicat_softening_point;type:decimal(8,2)" json:"vicatSofteningPoint"` // C
	ThermalExpansion    *float64 `gorm:"column:thermal_expansion;type:decimal(12,8)" json:"thermalExpansion"`       // 1/C

	// Physical
	Density         *float64 `gorm:"type:decimal(6,3)" json:"density"`                                 // g/cm3
	MFR             *float64 `gorm:"column:mfr;type:decimal(8,2)" json:"mfr"`                          // g/10min
	WaterAbsorption *float64 `gorm:"column:water_absorption;type:decimal(6,3)" json:"waterAbsorption"` // %
	ShoreHardness   *int     `gorm:"column:shore_hardness" json:"shoreHardness"`

	// Appearance
	Color        *string `gorm:"size:100" json:"color"`
	Transparency *string `gorm:"size:20" json:"transparency"`

	// Certifications
	FDAApproved    bool    `gorm:"column:fda_approved;not null;default:false" json:"fdaApproved"`
	UL94Rating     *string `gorm:"column:ul94_rating;size:10" json:"ul94Rating"`
	RoHSCompliant  bool    `gorm:"column:rohs_compliant;not null;default:false" json:"rohsCompliant"`
	REACHCompliant bool    `gorm:"column:reach_compliant;not null;default:false" json:"reachCompliant"`

	// Documents
	TechnicalDataSheetURL   *string `gorm:"column:technical_data_sheet_url;size:2048" json:"technicalDataSheetUrl"`
	SafetyDataSheetURL      *string `gorm:"column:safety_data_sheet_url;size:2048" json:"safetyDataSheetUrl"`
	ProcessingGuidelinesURL *string `gorm:"column:processing_guidelines_url;size:2048" json:"processingGuidelinesUrl"`

	CreatedAt time.Time `gorm:"index:idx_materials_created" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Material
func (Material) TableName() string {
	return "materials"
}
