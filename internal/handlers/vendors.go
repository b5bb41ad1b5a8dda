// vendors.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/materialsdb/internal/models"
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/localnerve/materialsdb/internal/types"
)

// VendorHandler handles vendor and pricing link routes
type VendorHandler struct {
	Vendors *services.VendorService
}

// ListVendors handles GET /api/vendors
// @Summary List vendors
// @Tags Vendors
// @Produce json
// @Success 200 {array} models.Vendor
// @Router /vendors [get]
func (h *VendorHandler) ListVendors(c *fiber.Ctx) error {
	vendors, err := h.Vendors.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(vendors)
}

// CreateVendor handles POST /api/vendors
// @Summary Create a vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param vendor body services.VendorInput true "Vendor"
// @Success 201 {object} models.Vendor
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /vendors [post]
func (h *VendorHandler) CreateVendor(c *fiber.Ctx) error {
	var in services.VendorInput
	if err := services.DecodeJSON(c.Body(), &in); err != nil {
		return err
	}

	vendor, err := h.Vendors.Create(c.UserContext(), &in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(vendor)
}

// ListMaterialVendors handles GET /api/materials/:id/vendors
// @Summary List pricing links of a material
// @Tags Vendors
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {array} models.MaterialVendor
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /materials/{id}/vendors [get]
func (h *VendorHandler) ListMaterialVendors(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	links, err := h.Vendors.ListForMaterial(c.UserContext(), id)
	if err != nil {
		return mapNotFound(err, "Material %d", id)
	}
	return c.Status(fiber.StatusOK).JSON(links)
}

// CreateMaterialVendors handles POST /api/materials/:id/vendors
// @Summary Add pricing links to a material
// @Description Accepts one link object or an array of them and answers in the same shape
// @Tags Vendors
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param links body services.MaterialVendorInput true "Pricing link or array of links"
// @Success 201 {object} models.MaterialVendor
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /materials/{id}/vendors [post]
func (h *VendorHandler) CreateMaterialVendors(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var in types.FlexList[services.MaterialVendorInput]
	if err := services.DecodeJSON(c.Body(), &in); err != nil {
		return err
	}

	created, err := h.Vendors.CreateLinks(c.UserContext(), id, in.Items)
	if err != nil {
		return mapNotFound(err, "Material %d", id)
	}

	return c.Status(fiber.StatusCreated).JSON(types.FlexList[models.MaterialVendor]{
		Items:  created,
		Single: in.Single,
	})
}
