// routes.go
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
	"github.com/localnerve/materialsdb/internal/cache"
	"github.com/localnerve/materialsdb/internal/config"
	"github.com/localnerve/materialsdb/internal/middleware"
	"github.com/localnerve/materialsdb/internal/services"
	"gorm.io/gorm"
)

// Handlers bundles the route handlers of the API
type Handlers struct {
	Materials *MaterialHandler
	Vendors   *VendorHandler
	Favorites *FavoriteHandler
	Reviews   *ReviewHandler
	Users     *UserHandler
	Health    *HealthHandler
}

// New builds the handlers over one database and cache
func New(cfg *config.Config, db *gorm.DB, c cache.Cache, users *services.UserService) *Handlers {
	return &Handlers{
		Materials: &MaterialHandler{
			Materials:       services.NewMaterialService(db, c),
			DefaultPageSize: cfg.DefaultPageSize,
			MaxPageSize:     cfg.MaxPageSize,
		},
		Vendors:   &VendorHandler{Vendors: services.NewVendorService(db)},
		Favorites: &FavoriteHandler{Favorites: services.NewFavoriteService(db)},
		Reviews:   &ReviewHandler{Reviews: services.NewReviewService(db)},
		Users:     &UserHandler{Users: users},
		Health:    &HealthHandler{Config: cfg, DB: db, Cache: c},
	}
}

// Register mounts every API route on api.
// Static material paths are registered ahead of /:id.
func (h *Handlers) Register(api fiber.Router, auth *middleware.Auth) {
	user := auth.RequireUser()
	admin := auth.RequireAdmin()

	api.Get("/health", h.Health.GetHealth)
	api.Post("/calculator", Calculate)
	api.Get("/auth/user", user, h.Users.GetCurrentUser)

	materials := api.Group("/materials")
	materials.Get("/", h.Materials.SearchMaterials)
	materials.Get("/facets", h.Materials.GetFacets)
	materials.Get("/compare", h.Materials.CompareMaterials)
	materials.Post("/", admin, h.Materials.CreateMaterial)
	materials.Get("/:id", h.Materials.GetMaterial)
	materials.Put("/:id", admin, h.Materials.UpdateMaterial)
	materials.Patch("/:id", admin, h.Materials.UpdateMaterial)
	materials.Delete("/:id", admin, h.Materials.DeleteMaterial)
	materials.Get("/:id/vendors", h.Vendors.ListMaterialVendors)
	materials.Post("/:id/vendors", admin, h.Vendors.CreateMaterialVendors)
	materials.Get("/:id/reviews", h.Reviews.ListMaterialReviews)
	materials.Post("/:id/reviews", user, h.Reviews.CreateReview)

	api.Get("/vendors", h.Vendors.ListVendors)
	api.Post("/vendors", admin, h.Vendors.CreateVendor)

	favorites := api.Group("/favorites", user)
	favorites.Get("/", h.Favorites.ListFavorites)
	favorites.Post("/", h.Favorites.AddFavorite)
	favorites.Delete("/:materialId", h.Favorites.RemoveFavorite)
	favorites.Get("/:materialId/check", h.Favorites.CheckFavorite)

	reviews := api.Group("/reviews", user)
	reviews.Delete("/:id", h.Reviews.DeleteReview)
	reviews.Post("/:id/helpful", h.Reviews.MarkReviewHelpful)
}
