// calculator.go
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
	"github.com/localnerve/materialsdb/internal/formulas"
	"github.com/localnerve/materialsdb/internal/services"
)

// Calculate handles POST /api/calculator
// @Summary Engineering estimates
// @Description Young's modulus, stress, thermal stress and safety factor from material properties
// @Tags Calculator
// @Accept json
// @Produce json
// @Param inputs body formulas.Inputs true "Calculator inputs"
// @Success 200 {object} formulas.Results
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /calculator [post]
func Calculate(c *fiber.Ctx) error {
	var in formulas.Inputs
	if err := services.DecodeJSON(c.Body(), &in); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(formulas.Calculate(in))
}
