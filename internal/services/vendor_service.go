// vendor_service.go
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
	"github.com/localnerve/materialsdb/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VendorInput is the writable shape of a vendor
type VendorInput struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Website      *string `json:"website" validate:"omitempty,url,max=2048"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email,max=255"`
	ContactPhone *string `json:"contactPhone" validate:"omitempty,max=50"`
}

// MaterialVendorInput is the writable shape of a pricing link
type MaterialVendorInput struct {
	VendorID     types.FlexUint64    `json:"vendorId" validate:"required"`
	Price        decimal.NullDecimal `json:"price" validate:"gte=0,lte=99999999.99,scale=2"`
	Currency     string              `json:"currency" validate:"omitempty,len=3,alpha,uppercase"`
	MinimumOrder decimal.NullDecimal `json:"minimumOrder" validate:"gte=0,lte=99999999.99,scale=2"`
	Availability string              `json:"availability" validate:"omitempty,oneof=in_stock limited out_of_stock on_request"`
	ProductURL   *string             `json:"productUrl" validate:"omitempty,url,max=2048"`
}

// VendorService manages vendors and material pricing links
type VendorService struct {
	db *gorm.DB
}

// NewVendorService creates a VendorService
func NewVendorService(db *gorm.DB) *VendorService {
	return &VendorService{db: db}
}

// List returns all vendors by name
func (s *VendorService) List(ctx context.Context) ([]models.Vendor, error) {
	vendors := make([]models.Vendor, 0)
	if err := s.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&vendors).Error; err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	return vendors, nil
}

// Create validates and stores a vendor
func (s *VendorService) Create(ctx context.Context, in *VendorInput) (*models.Vendor, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	vendor := &models.Vendor{
		Name:         in.Name,
		Website:      blankToNil(in.Website),
		ContactEmail: blankToNil(in.ContactEmail),
		ContactPhone: blankToNil(in.ContactPhone),
	}
	if err := s.db.WithContext(ctx).Create(vendor).Error; err != nil {
		return nil, fmt.Errorf("create vendor: %w", err)
	}
	return vendor, nil
}

// ListForMaterial returns the pricing links of a material, each with its vendor.
// A material without links, or an unknown material, yields an empty list.
func (s *VendorService) ListForMaterial(ctx context.Context, materialID uint64) ([]models.MaterialVendor, error) {
	links := make([]models.MaterialVendor, 0)
	err := s.db.WithContext(ctx).
		InnerJoins("Vendor").
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "material_id"}, Value: materialID}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "Vendor", Name: "name"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}}).
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("list vendors of material %d: %w", materialID, err)
	}
	return links, nil
}

// CreateLinks stores pricing links for a material in one transaction.
// An unknown material is ErrNotFound; an unknown vendor is a validation error.
func (s *VendorService) CreateLinks(ctx context.Context, materialID uint64, inputs []MaterialVendorInput) ([]models.MaterialVendor, error) {
	if len(inputs) == 0 {
		verr := types.NewValidationError()
		verr.Add("body", "must contain at least one pricing link")
		return nil, verr
	}

	verr := types.NewValidationError()
	for i := range inputs {
		prefix := ""
		if len(inputs) > 1 {
			prefix = fmt.Sprintf("[%d].", i)
		}
		inputs[i].Currency = strings.ToUpper(strings.TrimSpace(inputs[i].Currency))
		if err := toValidationError(validate.Struct(&inputs[i]), prefix); err != nil {
			var fieldErrs *types.ValidationError
			if !errors.As(err, &fieldErrs) {
				return nil, err
			}
			for k, v := range fieldErrs.Fields {
				verr.Add(k, v)
			}
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	var created []models.MaterialVendor
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := materialExists(tx, materialID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}

		if err := checkVendorsExist(tx, inputs); err != nil {
			return err
		}

		links := make([]models.MaterialVendor, len(inputs))
		for i, in := range inputs {
			links[i] = models.MaterialVendor{
				MaterialID:   materialID,
				VendorID:     in.VendorID.Uint64(),
				Price:        in.Price,
				Currency:     defaultString(in.Currency, "USD"),
				MinimumOrder: in.MinimumOrder,
				Availability: defaultString(in.Availability, "in_stock"),
				ProductURL:   blankToNil(in.ProductURL),
			}
		}
		if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
			return err
		}

		ids := make([]uint64, len(links))
		for i := range links {
			ids[i] = links[i].ID
		}
		created = make([]models.MaterialVendor, 0, len(ids))
		return tx.InnerJoins("Vendor").
			Where(clause.IN{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Values: toInterfaces(ids)}).
			Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}}).
			Find(&created).Error
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// checkVendorsExist reports unknown vendor ids as field errors
func checkVendorsExist(tx *gorm.DB, inputs []MaterialVendorInput) error {
	wanted := make([]uint64, 0, len(inputs))
	for _, in := range inputs {
		wanted = append(wanted, in.VendorID.Uint64())
	}

	var known []uint64
	if err := tx.Model(&models.Vendor{}).Where("id IN ?", distinct(wanted)).Pluck("id", &known).Error; err != nil {
		return err
	}
	knownSet := make(map[uint64]struct{}, len(known))
	for _, id := range known {
		knownSet[id] = struct{}{}
	}

	verr := types.NewValidationError()
	for i, id := range wanted {
		if _, ok := knownSet[id]; ok {
			continue
		}
		field := "vendorId"
		if len(inputs) > 1 {
			field = fmt.Sprintf("[%d].vendorId", i)
		}
		verr.Add(field, "does not name an existing vendor")
	}
	return verr.OrNil()
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func toInterfaces(ids []uint64) []interface{} {
	out := make([]interface{}, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
