// common.go
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
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/materialsdb/internal/logging"
	"github.com/localnerve/materialsdb/internal/middleware"
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/localnerve/materialsdb/internal/types"
	"github.com/localnerve/materialsdb/internal/utils"
	"github.com/rs/zerolog/log"
)

// ErrorHandler renders every error returned by a handler or middleware.
// Unclassified errors are logged and answered with a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		verr *types.ValidationError
		cerr *types.CustomError
		ferr *fiber.Error
	)

	switch {
	case errors.As(err, &verr):
		return utils.ValidationErrorResponse(c, verr.Fields)
	case errors.As(err, &cerr):
		return utils.ErrorResponse(c, cerr.Message, cerr.Code, cerr.Type)
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, capitalize(err.Error()))
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, capitalize(err.Error()), fiber.StatusConflict, "conflict")
	case errors.Is(err, services.ErrForbidden):
		return utils.ErrorResponse(c, capitalize(err.Error()), fiber.StatusForbidden, "forbidden")
	case errors.As(err, &ferr):
		if ferr.Code >= fiber.StatusInternalServerError {
			logInternal(c, err)
		}
		return utils.ErrorResponse(c, ferr.Message, ferr.Code, "http")
	}

	logInternal(c, err)
	return utils.ErrorResponse(c, "Internal Server Error", fiber.StatusInternalServerError, "internal")
}

// NotFound answers requests no route matched
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}

func logInternal(c *fiber.Ctx, err error) {
	log.Error().
		Err(err).
		Str("request_id", logging.RequestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("unhandled error")
}

// notFound describes a missing record for the 404 message
func notFound(format string, args ...interface{}) error {
	return fmt.Errorf("%s %w", fmt.Sprintf(format, args...), services.ErrNotFound)
}

// mapNotFound replaces a bare ErrNotFound with a descriptive one
func mapNotFound(err error, format string, args ...interface{}) error {
	if err == services.ErrNotFound {
		return notFound(format, args...)
	}
	return err
}

// requireIdentity returns the request identity set by the auth middleware
func requireIdentity(c *fiber.Ctx) (*services.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Authentication required",
			Type:    "authorization.user",
		}
	}
	return identity, nil
}

// paramID parses a positive integer route parameter
func paramID(c *fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		verr := types.NewValidationError()
		verr.Add(name, "must be a positive integer")
		return 0, verr
	}
	return id, nil
}

// queryValues copies the query string, keeping repeated keys
func queryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	for key, value := range c.Context().QueryArgs().All() {
		values.Add(string(key), string(value))
	}
	return values
}

// parseIDList extracts ids from query parameters,
// supporting both multiple keys and comma-separated values.
func parseIDList(c *fiber.Ctx, key string) ([]uint64, error) {
	var ids []uint64
	for _, value := range queryValues(c)[key] {
		for _, v := range strings.Split(value, ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil || id == 0 {
				verr := types.NewValidationError()
				verr.Add(key, fmt.Sprintf("%q is not a valid id", v))
				return nil, verr
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// mergeValidation combines validation errors; any other error is returned as is
func mergeValidation(errs ...error) error {
	merged := types.NewValidationError()
	for _, err := range errs {
		if err == nil {
			continue
		}
		var verr *types.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for k, v := range verr.Fields {
			merged.Add(k, v)
		}
	}
	return merged.OrNil()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
