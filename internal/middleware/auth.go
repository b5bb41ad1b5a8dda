// auth.go
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

package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/materialsdb/internal/logging"
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/localnerve/materialsdb/internal/types"
	"github.com/rs/zerolog/log"
)

const (
	// SessionCookie is the identity provider's session cookie name
	SessionCookie = "cookie_session"

	identityKey = "identity"
)

// Auth resolves the caller's identity for protected routes
type Auth struct {
	validator services.SessionValidator
	users     *services.UserService
	adminRole string
}

// NewAuth creates the auth middleware factory.
// users may be nil to skip mirroring; an empty adminRole lets any user administer.
func NewAuth(validator services.SessionValidator, users *services.UserService, adminRole string) *Auth {
	return &Auth{validator: validator, users: users, adminRole: adminRole}
}

// RequireUser admits any authenticated identity
func (a *Auth) RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return a.authorize(c, nil, "authorization.user")
	}
}

// RequireAdmin admits identities holding the admin role, when one is configured
func (a *Auth) RequireAdmin() fiber.Handler {
	if a.adminRole == "" {
		return a.RequireUser()
	}
	return func(c *fiber.Ctx) error {
		return a.authorize(c, []string{a.adminRole}, "authorization.admin")
	}
}

// IdentityFrom returns the identity resolved for this request
func IdentityFrom(c *fiber.Ctx) (*services.Identity, bool) {
	identity, ok := c.Locals(identityKey).(*services.Identity)
	return identity, ok && identity != nil
}

// authorize performs the authorization check
func (a *Auth) authorize(c *fiber.Ctx, roles []string, errorType string) error {
	session := c.Cookies(SessionCookie)
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Authentication required",
			Type:    errorType,
		}
	}

	identity, err := a.validator.ValidateSession(c.UserContext(), session, roles)
	if err != nil {
		return a.rejection(c, session, roles, errorType, err)
	}

	c.Locals(identityKey, identity)

	if a.users != nil {
		if _, err := a.users.Upsert(c.UserContext(), identity); err != nil {
			log.Warn().Err(err).Str("request_id", logging.RequestID(c)).Str("user", identity.ID).Msg("user mirror not updated")
		}
	}

	return c.Next()
}

// rejection tells an invalid session (401) from a valid one lacking roles (403)
func (a *Auth) rejection(c *fiber.Ctx, session string, roles []string, errorType string, err error) error {
	if !errors.Is(err, services.ErrInvalidSession) {
		log.Error().Err(err).Str("request_id", logging.RequestID(c)).Msg("session validation unavailable")
		return &types.CustomError{
			Code:    fiber.StatusServiceUnavailable,
			Message: "Authentication service unavailable",
			Type:    errorType,
		}
	}

	if len(roles) > 0 {
		if _, plainErr := a.validator.ValidateSession(c.UserContext(), session, nil); plainErr == nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Insufficient role",
				Type:    errorType,
			}
		}
	}

	return &types.CustomError{
		Code:    fiber.StatusUnauthorized,
		Message: "Invalid session",
		Type:    errorType,
	}
}
