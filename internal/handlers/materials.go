// materials.go
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
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/materialsdb/internal/filter"
	"github.com/localnerve/materialsdb/internal/services"
)

// MaterialHandler handles material catalog routes
type MaterialHandler struct {
	Materials       *services.MaterialService
	DefaultPageSize int
	MaxPageSize     int
}

// SearchMaterials handles GET /api/materials
// @Summary Search materials
// @Description List materials matching every supplied filter, newest first. X-Total-Count carries the unpaged match count.
// @Tags Materials
// @Produce json
// @Param search query string false "Case-insensitive substring of the name"
// @Param materialType query string false "Exact material type"
// @Param manufacturer query string false "Exact manufacturer"
// @Param color query string false "Exact color"
// @Param ul94Rating query string false "Exact UL94 rating"
// @Param tensileStrengthMin query number false "Minimum tensile strength, MPa"
// @Param tensileStrengthMax query number false "Maximum tensile strength, MPa"
// @Param meltingTempMin query number false "Minimum melting temperature, C"
// @Param meltingTempMax query number false "Maximum melting temperature, C"
// @Param densityMin query number false "Minimum density, g/cm3"
// @Param densityMax query number false "Maximum density, g/cm3"
// @Param mfrMin query number false "Minimum melt flow rate, g/10min"
// @Param mfrMax query number false "Maximum melt flow rate, g/10min"
// @Param impactStrengthMin query number false "Minimum impact strength, kJ/m2"
// @Param impactStrengthMax query number false "Maximum impact strength, kJ/m2"
// @Param fdaApproved query boolean false "Only FDA approved"
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} models.Material
// @Header 200 {integer} X-Total-Count "Total matches"
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /materials [get]
func (h *MaterialHandler) SearchMaterials(c *fiber.Ctx) error {
	values := queryValues(c)

	criteria, filterErr := filter.Parse(services.MaterialFilterFields, values)
	page, pageErr := filter.ParsePage(values, h.DefaultPageSize, h.MaxPageSize)
	if err := mergeValidation(filterErr, pageErr); err != nil {
		return err
	}

	result, err := h.Materials.Search(c.UserContext(), criteria, page)
	if err != nil {
		return err
	}

	c.Set("X-Total-Count", strconv.FormatInt(result.Total, 10))
	return c.Status(fiber.StatusOK).JSON(result.Materials)
}

// GetMaterial handles GET /api/materials/:id
// @Summary Get a material
// @Tags Materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} models.Material
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /materials/{id} [get]
func (h *MaterialHandler) GetMaterial(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	material, err := h.Materials.Get(c.UserContext(), id)
	if err != nil {
		return mapNotFound(err, "Material %d", id)
	}
	return c.Status(fiber.StatusOK).JSON(material)
}

// CreateMaterial handles POST /api/materials
// @Summary Create a material
// @Tags Materials
// @Accept json
// @Produce json
// @Param material body services.MaterialInput true "Material"
// @Success 201 {object} models.Material
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /materials [post]
func (h *MaterialHandler) CreateMaterial(c *fiber.Ctx) error {
	var in services.MaterialInput
	if err := services.DecodeJSON(c.Body(), &in); err != nil {
		return err
	}

	material, err := h.Materials.Create(c.UserContext(), &in)
	if err != nil {
		return err
	}

	c.Location("/api/materials/" + strconv.FormatUint(material.ID, 10))
	return c.Status(fiber.StatusCreated).JSON(material)
}

// UpdateMaterial handles PATCH and PUT /api/materials/:id
// @Summary Update a material
// @Description Only the fields present in the body change. An explicit null clears an optional field.
// @Tags Materials
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param material body services.MaterialInput true "Fields to change"
// @Success 200 {object} models.Material
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /materials/{id} [patch]
func (h *MaterialHandler) UpdateMaterial(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	patch, err := services.ParseMaterialPatch(c.Body())
	if err != nil {
		return err
	}

	material, err := h.Materials.Update(c.UserContext(), id, patch)
	if err != nil {
		return mapNotFound(err, "Material %d", id)
	}
	return c.Status(fiber.StatusOK).JSON(material)
}

// DeleteMaterial handles DELETE /api/materials/:id
// @Summary Delete a material
// @Description Removes the material with its pricing links, favorites and reviews
// @Tags Materials
// @Param id path int true "Material ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /materials/{id} [delete]
func (h *MaterialHandler) DeleteMaterial(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Materials.Delete(c.UserContext(), id); err != nil {
		return mapNotFound(err, "Material %d", id)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFacets handles GET /api/materials/facets
// @Summary Distinct filter values
// @Tags Materials
// @Produce json
// @Success 200 {object} services.Facets
// @Router /materials/facets [get]
func (h *MaterialHandler) GetFacets(c *fiber.Ctx) error {
	facets, err := h.Materials.Facets(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(facets)
}

// CompareMaterials handles GET /api/materials/compare?ids=1,2,3
// @Summary Compare materials
// @Description Returns 2 to 4 materials in the order requested
// @Tags Materials
// @Produce json
// @Param ids query string true "Comma-separated material ids"
// @Success 200 {array} models.Material
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /materials/compare [get]
func (h *MaterialHandler) CompareMaterials(c *fiber.Ctx) error {
	ids, err := parseIDList(c, "ids")
	if err != nil {
		return err
	}

	materials, err := h.Materials.Compare(c.UserContext(), ids)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(materials)
}
