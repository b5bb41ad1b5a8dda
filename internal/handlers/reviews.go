// reviews.go
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

// ReviewHandler handles material review routes
type ReviewHandler struct {
	Reviews *services.ReviewService
}

// ListMaterialReviews handles GET /api/materials/:id/reviews
// @Summary List reviews of a material
// @Tags Reviews
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {array} models.Review
// @Router /materials/{id}/reviews [get]
func (h *ReviewHandler) ListMaterialReviews(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.Reviews.ListForMaterial(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(reviews)
}

// CreateReview handles POST /api/materials/:id/reviews
// @Summary Review a material
// @Description One review per user and material
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param review body services.ReviewInput true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /materials/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var in services.ReviewInput
	if err := services.DecodeJSON(c.Body(), &in); err != nil {
		return err
	}

	review, err := h.Reviews.Create(c.UserContext(), identity.ID, id, &in)
	if err != nil {
		if err == services.ErrConflict {
			return errReviewExists
		}
		return mapNotFound(err, "Material %d", id)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// DeleteReview handles DELETE /api/reviews/:id
// @Summary Delete own review
// @Tags Reviews
// @Param id path int true "Review ID"
// @Success 204
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Reviews.Delete(c.UserContext(), identity.ID, id); err != nil {
		return mapReviewError(err, id)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkReviewHelpful handles POST /api/reviews/:id/helpful
// @Summary Mark a review helpful
// @Description Counts once per user
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} models.Review
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reviews/{id}/helpful [post]
func (h *ReviewHandler) MarkReviewHelpful(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.Reviews.MarkHelpful(c.UserContext(), identity.ID, id)
	if err != nil {
		return mapReviewError(err, id)
	}
	return c.Status(fiber.StatusOK).JSON(review)
}

var errReviewExists = &types.CustomError{
	Code:    fiber.StatusConflict,
	Message: "You have already reviewed this material",
	Type:    "conflict",
}

func mapReviewError(err error, id uint64) error {
	if err == services.ErrForbidden {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Only the author may delete a review",
			Type:    "forbidden",
		}
	}
	return mapNotFound(err, "Review %d", id)
}
