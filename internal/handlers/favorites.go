// favorites.go
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
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/localnerve/materialsdb/internal/types"
)

// FavoriteHandler handles the favorites of the signed in user
type FavoriteHandler struct {
	Favorites *services.FavoriteService
}

// FavoriteRequest is the body of POST /api/favorites
type FavoriteRequest struct {
	MaterialID types.FlexUint64 `json:"materialId"`
}

// FavoriteStatus answers the favorite check
type FavoriteStatus struct {
	IsFavorite bool `json:"isFavorite"`
}

// ListFavorites handles GET /api/favorites
// @Summary List favorites
// @Description Favorites of the caller with their materials, newest first
// @Tags Favorites
// @Produce json
// @Success 200 {array} models.Favorite
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /favorites [get]
func (h *FavoriteHandler) ListFavorites(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	favorites, err := h.Favorites.List(c.UserContext(), identity.ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(favorites)
}

// AddFavorite handles POST /api/favorites
// @Summary Add a favorite
// @Description Idempotent. 201 when created, 200 when it already existed.
// @Tags Favorites
// @Accept json
// @Produce json
// @Param favorite body FavoriteRequest true "Material to favorite"
// @Success 200 {object} models.Favorite
// @Success 201 {object} models.Favorite
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /favorites [post]
func (h *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req FavoriteRequest
	if err := services.DecodeJSON(c.Body(), &req); err != nil {
		return err
	}
	materialID := req.MaterialID.Uint64()
	if materialID == 0 {
		verr := types.NewValidationError()
		verr.Add("materialId", "is required")
		return verr
	}

	favorite, created, err := h.Favorites.Add(c.UserContext(), identity.ID, materialID)
	if err != nil {
		return mapNotFound(err, "Material %d", materialID)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(favorite)
}

// RemoveFavorite handles DELETE /api/favorites/:materialId
// @Summary Remove a favorite
// @Description Removing an absent favorite succeeds
// @Tags Favorites
// @Param materialId path int true "Material ID"
// @Success 204
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /favorites/{materialId} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	materialID, err := paramID(c, "materialId")
	if err != nil {
		return err
	}

	if _, err := h.Favorites.Remove(c.UserContext(), identity.ID, materialID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CheckFavorite handles GET /api/favorites/:materialId/check
// @Summary Check a favorite
// @Tags Favorites
// @Produce json
// @Param materialId path int true "Material ID"
// @Success 200 {object} FavoriteStatus
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /favorites/{materialId}/check [get]
func (h *FavoriteHandler) CheckFavorite(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	materialID, err := paramID(c, "materialId")
	if err != nil {
		return err
	}

	isFavorite, err := h.Favorites.IsFavorite(c.UserContext(), identity.ID, materialID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(FavoriteStatus{IsFavorite: isFavorite})
}
