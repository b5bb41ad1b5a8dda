// material_input.go
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
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/localnerve/materialsdb/internal/models"
)

// MaterialInput is the writable shape of a material.
// Field names match models.Material so partial updates can address columns by field.
// Numeric bounds and scales mirror the DECIMAL columns, so stored values equal submitted ones.
type MaterialInput struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Manufacturer string  `json:"manufacturer" validate:"required,max=255"`
	MaterialType string  `json:"materialType" validate:"required,max=50"`
	Description  *string `json:"description" validate:"omitempty,max=10000"`
	ImageURL     *string `json:"imageUrl" validate:"omitempty,url,max=2048"`

	TensileStrength   *float64 `json:"tensileStrength" validate:"omitempty,gte=0,lte=999999.99,scale=2"`
	FlexuralStrength  *float64 `json:"flexuralStrength" validate:"omitempty,gte=0,lte=999999.99,scale=2"`
	ImpactStrength    *float64 `json:"impactStrength" validate:"omitempty,gte=0,lte=999999.99,scale=2"`
	ElongationAtBreak *float64 `json:"elongationAtBreak" validate:"omitempty,gte=0,lte=999999.99,scale=2"`

	MeltingTemperature  *float64 `json:"meltingTemperature" validate:"omitempty,gte=-273.15,lte=999999.99,scale=2"`
	HeatDeflectionTemp  *float64 `json:"heatDeflectionTemp" validate:"omitempty,gte=-273.15,lte=999999.99,scale=2"`
	VicatSofteningPoint *float64 `json:"vicatSofteningPoint" validate:"omitempty,gte=-273.15,lte=999999.99,scale=2"`
	ThermalExpansion    *float64 `json:"thermalExpansion" validate:"omitempty,gte=-9999.99999999,lte=9999.99999999,scale=8"`

	Density         *float64 `json:"density" validate:"omitnil,gt=0,lte=999.999,scale=3"`
	MFR             *float64 `json:"mfr" validate:"omitempty,gte=0,lte=999999.99,scale=2"`
	WaterAbsorption *float64 `json:"waterAbsorption" validate:"omitempty,gte=0,lte=100,scale=3"`
	ShoreHardness   *int     `json:"shoreHardness" validate:"omitempty,gte=0,lte=100"`

	Color        *string `json:"color" validate:"omitempty,max=100"`
	Transparency *string `json:"transparency" validate:"omitempty,oneof=transparent translucent opaque"`

	FDAApproved    bool    `json:"fdaApproved"`
	UL94Rating     *string `json:"ul94Rating" validate:"omitempty,oneof=V-0 V-1 V-2 HB 5VA 5VB"`
	RoHSCompliant  bool    `json:"rohsCompliant"`
	REACHCompliant bool    `json:"reachCompliant"`

	TechnicalDataSheetURL   *string `json:"technicalDataSheetUrl" validate:"omitempty,url,max=2048"`
	SafetyDataSheetURL      *string `json:"safetyDataSheetUrl" validate:"omitempty,url,max=2048"`
	ProcessingGuidelinesURL *string `json:"processingGuidelinesUrl" validate:"omitempty,url,max=2048"`
}

// materialInputFields maps JSON keys to MaterialInput field names
var materialInputFields = func() map[string]string {
	t := reflect.TypeOf(MaterialInput{})
	fields := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		fields[name] = f.Name
	}
	return fields
}()

// Validate checks every field
func (in *MaterialInput) Validate() error {
	in.normalize()
	return validateStruct(in)
}

// normalize trims text and turns blank optional text into nil
func (in *MaterialInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Manufacturer = strings.TrimSpace(in.Manufacturer)
	in.MaterialType = strings.TrimSpace(in.MaterialType)

	v := reflect.ValueOf(in).Elem()
	for i := 0; i < v.NumField(); i++ {
		if p, ok := v.Field(i).Interface().(*string); ok && p != nil {
			if s := strings.TrimSpace(*p); s == "" {
				v.Field(i).Set(reflect.Zero(v.Field(i).Type()))
			} else {
				v.Field(i).Set(reflect.ValueOf(&s))
			}
		}
	}
}

// ToModel copies the input into a new material
func (in *MaterialInput) ToModel() *models.Material {
	return &models.Material{
		Name:                    in.Name,
		Manufacturer:            in.Manufacturer,
		MaterialType:            in.MaterialType,
		Description:             in.Description,
		ImageURL:                in.ImageURL,
		TensileStrength:         in.TensileStrength,
		FlexuralStrength:        in.FlexuralStrength,
		ImpactStrength:          in.ImpactStrength,
		ElongationAtBreak:       in.ElongationAtBreak,
		MeltingTemperature:      in.MeltingTemperature,
		HeatDeflectionTemp:      in.HeatDeflectionTemp,
		VicatSofteningPoint:     in.VicatSofteningPoint,
		ThermalExpansion:        in.ThermalExpansion,
		Density:                 in.Density,
		MFR:                     in.MFR,
		WaterAbsorption:         in.WaterAbsorption,
		ShoreHardness:           in.ShoreHardness,
		Color:                   in.Color,
		Transparency:            in.Transparency,
		FDAApproved:             in.FDAApproved,
		UL94Rating:              in.UL94Rating,
		RoHSCompliant:           in.RoHSCompliant,
		REACHCompliant:          in.REACHCompliant,
		TechnicalDataSheetURL:   in.TechnicalDataSheetURL,
		SafetyDataSheetURL:      in.SafetyDataSheetURL,
		ProcessingGuidelinesURL: in.ProcessingGuidelinesURL,
	}
}

// MaterialPatch holds the validated column changes of a partial update,
// keyed by models.Material field name. A nil value clears the column.
type MaterialPatch map[string]interface{}

// ParseMaterialPatch reads a partial material update. Only keys present in body change;
// unknown keys are ignored and explicit null clears an optional field.
func ParseMaterialPatch(body []byte) (MaterialPatch, error) {
	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil || present == nil {
		return nil, invalidBody(err)
	}

	var in MaterialInput
	if err := json.Unmarshal(body, &in); err != nil {
		return nil, invalidBody(err)
	}
	in.normalize()

	fieldNames := make([]string, 0, len(present))
	for key := range present {
		if name, ok := materialInputFields[key]; ok {
			fieldNames = append(fieldNames, name)
		}
	}

	if err := validatePartial(&in, fieldNames...); err != nil {
		return nil, err
	}

	patch := make(MaterialPatch, len(fieldNames))
	v := reflect.ValueOf(in)
	for _, name := range fieldNames {
		f := v.FieldByName(name)
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				patch[name] = nil
				continue
			}
			f = f.Elem()
		}
		patch[name] = f.Interface()
	}
	return patch, nil
}

// updates returns the column changes with the update time refreshed
func (p MaterialPatch) updates(now time.Time) map[string]interface{} {
	out := make(map[string]interface{}, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out["UpdatedAt"] = now
	return out
}
