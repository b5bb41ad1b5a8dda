// filter.go
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

// Package filter turns query parameters into a validated set of column
// conditions and applies them to a gorm query. Each searchable column is
// declared once in a Field table; Parse and Apply are the only consumers.
package filter

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/localnerve/materialsdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Comparator is how a parameter value is compared to its column
type Comparator int

const (
	// Equals matches the column exactly
	Equals Comparator = iota
	// AtLeast is an inclusive numeric lower bound
	AtLeast
	// AtMost is an inclusive numeric upper bound
	AtMost
	// IsTrue constrains a boolean column only when the parameter is true
	IsTrue
	// ContainsFold is a case-insensitive substring match
	ContainsFold
)

const maxTextLength = 255

// likeEscape is the LIKE escape character, portable across supported dialects
const likeEscape = "!"

// Field binds one query parameter to a column and comparator
type Field struct {
	Param      string
	Column     string
	Comparator Comparator
}

// Condition is a parsed, typed constraint
type Condition struct {
	Field Field
	Value interface{}
}

// Criteria is a conjunction of conditions
type Criteria []Condition

// Params returns the parameter names present, in declaration order
func (c Criteria) Params() []string {
	params := make([]string, len(c))
	for i, cond := range c {
		params[i] = cond.Field.Param
	}
	return params
}

// Parse reads every declared field from values. Empty values are absent.
// Malformed values are rejected with a *types.ValidationError naming each parameter.
func Parse(fields []Field, values url.Values) (Criteria, error) {
	verr := types.NewValidationError()
	criteria := make(Criteria, 0, len(fields))

	for _, f := range fields {
		raw := strings.TrimSpace(values.Get(f.Param))
		if raw == "" {
			continue
		}

		switch f.Comparator {
		case AtLeast, AtMost:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
				verr.Add(f.Param, "must be a number")
				continue
			}
			criteria = append(criteria, Condition{Field: f, Value: n})

		case IsTrue:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				verr.Add(f.Param, "must be true or false")
				continue
			}
			if b {
				criteria = append(criteria, Condition{Field: f, Value: true})
			}

		default:
			if len(raw) > maxTextLength {
				verr.Add(f.Param, "must be at most 255 characters")
				continue
			}
			criteria = append(criteria, Condition{Field: f, Value: raw})
		}
	}

	checkRanges(criteria, verr)

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return criteria, nil
}

// checkRanges rejects a lower bound above the upper bound on the same column
func checkRanges(criteria Criteria, verr *types.ValidationError) {
	lower := make(map[string]Condition)
	for _, c := range criteria {
		if c.Field.Comparator == AtLeast {
			lower[c.Field.Column] = c
		}
	}
	for _, c := range criteria {
		if c.Field.Comparator != AtMost {
			continue
		}
		if lo, ok := lower[c.Field.Column]; ok && lo.Value.(float64) > c.Value.(float64) {
			verr.Add(lo.Field.Param, "must not exceed "+c.Field.Param)
		}
	}
}

// Apply adds one WHERE expression per condition to db.
// Null columns never satisfy a comparison, so bounded queries exclude them.
func Apply(db *gorm.DB, criteria Criteria) *gorm.DB {
	for _, c := range criteria {
		column := clause.Column{Table: clause.CurrentTable, Name: c.Field.Column}

		switch c.Field.Comparator {
		case Equals:
			db = db.Where(clause.Eq{Column: column, Value: c.Value})
		case AtLeast:
			db = db.Where(clause.Gte{Column: column, Value: c.Value})
		case AtMost:
			db = db.Where(clause.Lte{Column: column, Value: c.Value})
		case IsTrue:
			db = db.Where(clause.Eq{Column: column, Value: true})
		case ContainsFold:
			pattern := "%" + escapeLike(strings.ToLower(c.Value.(string))) + "%"
			db = db.Where(clause.Expr{
				SQL:  "LOWER(?) LIKE ? ESCAPE '" + likeEscape + "'",
				Vars: []interface{}{column, pattern},
			})
		}
	}
	return db
}

func escapeLike(s string) string {
	return strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	).Replace(s)
}
