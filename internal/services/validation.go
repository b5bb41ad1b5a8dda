// validation.go
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
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/localnerve/materialsdb/internal/types"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so clients can map errors to inputs
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// Validate decimals as numbers; null compares as zero
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		switch d := field.Interface().(type) {
		case decimal.Decimal:
			f, _ := d.Float64()
			return f
		case decimal.NullDecimal:
			if !d.Valid {
				return 0.0
			}
			f, _ := d.Decimal.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{}, decimal.NullDecimal{})

	if err := v.RegisterValidation("scale", validScale); err != nil {
		panic(err)
	}

	return v
}

// validScale implements scale=N: at most N digits after the decimal point
func validScale(fl validator.FieldLevel) bool {
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		return false
	}
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(f.Float()).Exponent() >= -int32(places)
	}
	return true
}

// validateStruct runs the validate tags of s
func validateStruct(s interface{}) error {
	return toValidationError(validate.Struct(s), "")
}

// validatePartial runs the validate tags of the named struct fields only
func validatePartial(s interface{}, fieldNames ...string) error {
	if len(fieldNames) == 0 {
		return nil
	}
	return toValidationError(validate.StructPartial(s, fieldNames...), "")
}

// toValidationError converts validator output to a *types.ValidationError.
// prefix namespaces the field names, as in "[1]." for array items.
func toValidationError(err error, prefix string) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := types.NewValidationError()
	for _, fe := range verrs {
		out.Add(prefix+fe.Field(), describe(fe))
	}
	return out
}

func describe(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if isText {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "min":
		if isText {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "scale":
		return fmt.Sprintf("must have at most %s decimal places", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "url", "http_url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	case "alpha", "uppercase":
		return "must be an uppercase currency code"
	}
	return "is invalid (" + fe.Tag() + ")"
}

// DecodeJSON unmarshals body into dest, reporting failures as validation errors
func DecodeJSON(body []byte, dest interface{}) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return invalidBody(err)
	}
	return nil
}

// invalidBody is the validation error for an unreadable request body
func invalidBody(err error) error {
	verr := types.NewValidationError()

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		verr.Add(typeErr.Field, "has the wrong type, expected "+typeErr.Type.String())
		return verr
	}

	verr.Add("body", "must be valid JSON of the expected shape")
	return verr
}
