package filter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/localnerve/materialsdb/internal/types"
	"gorm.io/gorm"
)

// Page is an offset/limit window over an ordered result
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ParsePage reads limit and offset. A limit above maxLimit is clamped.
func ParsePage(values url.Values, defaultLimit, maxLimit int) (Page, error) {
	verr := types.NewValidationError()
	page := Page{Limit: defaultLimit}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			verr.Add("limit", "must be a positive integer")
		} else {
			page.Limit = min(n, maxLimit)
		}
	}

	if raw := strings.TrimSpace(values.Get("offset")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			verr.Add("offset", "must be a non-negative integer")
		} else {
			page.Offset = n
		}
	}

	if err := verr.OrNil(); err != nil {
		return Page{}, err
	}
	return page, nil
}

// Paginate applies the window to db
func Paginate(db *gorm.DB, page Page) *gorm.DB {
	return db.Limit(page.Limit).Offset(page.Offset)
}
