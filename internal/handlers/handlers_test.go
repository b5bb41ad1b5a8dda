package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/materialsdb/internal/cache"
	"github.com/localnerve/materialsdb/internal/config"
	"github.com/localnerve/materialsdb/internal/database/dbtest"
	"github.com/localnerve/materialsdb/internal/handlers"
	"github.com/localnerve/materialsdb/internal/middleware"
	"github.com/localnerve/materialsdb/internal/models"
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/localnerve/materialsdb/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	userSession  = "user-session"
	otherSession = "other-session"
	adminSession = "admin-session"
)

// stubValidator accepts a fixed set of session cookies
type stubValidator struct {
	err error
}

func (s stubValidator) ValidateSession(_ context.Context, cookie string, roles []string) (*services.Identity, error) {
	if s.err != nil {
		return nil, s.err
	}
	identities := map[string]*services.Identity{
		userSession:  {ID: "user-1", Email: "user@example.com", FirstName: "Uma"},
		otherSession: {ID: "user-2", Email: "other@example.com"},
		adminSession: {ID: "admin-1", Email: "admin@example.com"},
	}
	identity, ok := identities[cookie]
	if !ok || (len(roles) > 0 && cookie != adminSession) {
		return nil, services.ErrInvalidSession
	}
	return identity, nil
}

type testApp struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestApp(t *testing.T, validator services.SessionValidator) *testApp {
	t.Helper()
	db := dbtest.New(t)
	cfg := &config.Config{DefaultPageSize: 50, MaxPageSize: 200}
	users := services.NewUserService(db)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	handlers.New(cfg, db, cache.Nop{}, users).Register(app.Group("/api"), middleware.NewAuth(validator, users, "admin"))
	app.Use(handlers.NotFound)

	return &testApp{app: app, db: db}
}

func (ta *testApp) do(t *testing.T, method, path, body, session string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: session})
	}

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decodeError(t *testing.T, data []byte) utils.ErrorResponseStruct {
	t.Helper()
	var out utils.ErrorResponseStruct
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestSearchMaterials(t *testing.T) {
	ta := newTestApp(t, stubValidator{})

	dbtest.CreateMaterial(t, ta.db, &models.Material{Name: "Cycolac ABS MG47", MaterialType: "ABS", TensileStrength: dbtest.Ptr(45.0)})
	dbtest.CreateMaterial(t, ta.db, &models.Material{Name: "Weak ABS", MaterialType: "ABS", TensileStrength: dbtest.Ptr(30.0)})
	dbtest.CreateMaterial(t, ta.db, &models.Material{Name: "Lexan 940", MaterialType: "PC", TensileStrength: dbtest.Ptr(65.0)})

	resp, data := ta.do(t, http.MethodGet, "/api/materials?materialType=ABS&tensileStrengthMin=40", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("X-Total-Count"))

	var materials []models.Material
	require.NoError(t, json.Unmarshal(data, &materials))
	require.Len(t, materials, 1)
	assert.Equal(t, "Cycolac ABS MG47", materials[0].Name)

	resp, data = ta.do(t, http.MethodGet, "/api/materials?limit=2", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "3", resp.Header.Get("X-Total-Count"))
	require.NoError(t, json.Unmarshal(data, &materials))
	assert.Len(t, materials, 2)

	resp, data = ta.do(t, http.MethodGet, "/api/materials?materialType=POM", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(data))
}

func TestSearchMaterialsRejectsBadParameters(t *testing.T) {
	ta := newTestApp(t, stubValidator{})

	resp, data := ta.do(t, http.MethodGet, "/api/materials?densityMin=heavy&limit=0", "", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeError(t, data)
	assert.Equal(t, "validation", out.Type)
	assert.Contains(t, out.Errors, "densityMin")
	assert.Contains(t, out.Errors, "limit")
}

func TestGetMaterial(t *testing.T) {
	ta := newTestApp(t, stubValidator{})
	m := dbtest.CreateMaterial(t, ta.db, &models.Material{Name: "Ultem 1000"})

	resp, data := ta.do(t, http.MethodGet, "/api/materials/"+itoa(m.ID), "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.Material
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Ultem 1000", got.Name)

	resp, data = ta.do(t, http.MethodGet, "/api/materials/999", "", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Material 999 not found", decodeError(t, data).Message)

	resp, data = ta.do(t, http.MethodGet, "/api/materials/abc", "", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, data).Errors, "id")
}

func TestStaticMaterialRoutesPrecedeID(t *testing.T) {
	ta := newTestApp(t, stubValidator{})
	a := dbtest.CreateMaterial(t, ta.db, &models.Material{Name: "A", Manufacturer: "SABIC"})
	b := dbtest.CreateMaterial(t, ta.db, &models.Material{Name: "B", Manufacturer: "Covestro"})

	resp, data := ta.do(t, http.MethodGet, "/api/materials/facets", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var facets services.Facets
	require.NoError(t, json.Unmarshal(data, &facets))
	assert.Equal(t, []string{"Covestro", "SABIC"}, facets.Manufacturers)

	resp, data = ta.do(t, http.MethodGet, "/api/materials/compare?ids="+itoa(b.ID)+"&ids="+itoa(a.ID), "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var compared []models.Material
	require.NoError(t, json.Unmarshal(data, &compared))
	require.Len(t, compared, 2)
	assert.Equal(t, "B", compared[0].Name)

	resp, _ = ta.do(t, http.MethodGet, "/api/materials/compare?ids="+itoa(a.ID)+",999", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, data = ta.do(t, http.MethodGet, "/api/materials/compare?ids=1,x", "", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, data).Errors, "ids")
}

func TestMaterialWritesRequireAdmin(t *testing.T) {
	ta := newTestApp(t, stubValidator{})
	body := `{"name": "Delrin 100", "manufacturer": "DuPont", "materialType": "POM", "density": 1.42}`

	resp, data := ta.do(t, http.MethodPost, "/api/materials", body, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "authorization.admin", decodeError(t, data).Type)

	resp, _ = ta.do(t, http.MethodPost, "/api/materials", body, "forged")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = ta.do(t, http.MethodPost, "/api/materials", body, userSession)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, data = ta.do(t, http.MethodPost, "/api/materials", body, adminSession)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Material
	require.NoError(t, json.Unmarshal(data, &created))
	assert.Equal(t, "/api/materials/"+itoa(created.ID), resp.Header.Get("Location"))
	assert.Equal(t, 1.42, *created.Density)

	resp, data = ta.do(t, http.MethodPost, "/api/materials", `{"name": "No maker"}`, adminSession)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeError(t, data)
	assert.Contains(t, out.Errors, "manufacturer")
	assert.Contains(t, out.Errors, "materialType")
}

func TestUpdateAndDeleteMaterial(t *testing.T) {
	ta := newTestApp(t, stubValidator{})
	m := dbtest.CreateMaterial(t, ta.db, &models.Material{Name: "Nylon 66", Color: dbtest.Ptr("natural")})
	path := "/api/materials/" + itoa(m.ID)

	resp, data := ta.do(t, http.MethodPatch, path, `{"color": null, "meltingTemperature": 262}`, adminSession)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Material
	require.NoError(t, json.Unmarshal(data, &updated))
	assert.Equal(t, "Nylon 66", updated.Name)
	assert.Nil(t, updated.Color)
	assert.Equal(t, 262.0, *updated.MeltingTemperature)

	resp, _ = ta.do(t, http.MethodPut, path, `{"name": ""}`, adminSession)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = ta.do(t, http.MethodPatch, "/api/materials/999", `{"color": "red"}`, adminSession)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = ta.do(t, http.MethodDelete, path, "", adminSession)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = ta.do(t, http.MethodDelete, path, "", adminSession)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAuthProviderUnavailable(t *testing.T) {
	ta := newTestApp(t, stubValidator{err: errors.New("connection refused")})

	resp, data := ta.do(t, http.MethodGet, "/api/favorites", "", userSession)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "authorization.user", decodeError(t, data).Type)
}

func TestMaterialVendorLinks(t *testing.T) {
	ta := newTestApp(t, stubValidator{})
	m := dbtest.CreateMaterial(t, ta.db, &models.Material{})
	v := dbtest.CreateVendor(t, ta.db, "Resin Supply")
	path := "/api/materials/" + itoa(m.ID) + "/vendors"

	resp, data := ta.do(t, http.MethodPost, path, `{"vendorId": `+itoa(v.ID)+`, "price": "4.25"}`, adminSession)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var single map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &single))
	assert.Equal(t, "USD", single["currency"])
	assert.Equal(t, "4.25", single["price"])

	resp, data = ta.do(t, http.MethodPost, path, `[{"vendorId": "`+itoa(v.ID)+`"}, {"vendorId": `+itoa(v.ID)+`, "availability": "limited"}]`, adminSession)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var many []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &many))
	assert.Len(t, many, 2)

	resp, data = ta.do(t, http.MethodPost, path, `{"vendorId": 999}`, adminSession)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, data).Errors, "vendorId")

	resp, _ = ta.do(t, http.MethodPost, "/api/materials/999/vendors", `{"vendorId": `+itoa(v.ID)+`}`, adminSession)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, data = ta.do(t, http.MethodGet, path, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var links []models.MaterialVendor
	require.NoError(t, json.Unmarshal(data, &links))
	require.Len(t, links, 3)
	assert.Equal(t, "Resin Supply", links[0].Vendor.Name)
}

func TestFavorites(t *testing.T) {
	ta := newTestApp(t, stubValidator{})
	m := dbtest.CreateMaterial(t, ta.db, &models.Material{Name: "PEEK 450G"})
	check := "/api/favorites/" + itoa(m.ID) + "/check"

	resp, _ := ta.do(t, http.MethodGet, "/api/favorites", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = ta.do(t, http.MethodPost, "/api/favorites", `{"materialId": `+itoa(m.ID)+`}`, userSession)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = ta.do(t, http.MethodPost, "/api/favorites", `{"materialId": "`+itoa(m.ID)+`"}`, userSession)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, data := ta.do(t, http.MethodGet, check, "", userSession)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"isFavorite": true}`, string(data))

	_, data = ta.do(t, http.MethodGet, check, "", otherSession)
	assert.JSONEq(t, `{"isFavorite": false}`, string(data))

	resp, data = ta.do(t, http.MethodGet, "/api/favorites", "", userSession)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var favorites []models.Favorite
	require.NoError(t, json.Unmarshal(data, &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, "PEEK 450G", favorites[0].Material.Name)

	resp, _ = ta.do(t, http.MethodPost, "/api/favorites", `{"materialId": 999}`, userSession)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, data = ta.do(t, http.MethodPost, "/api/favorites", `{"materialId": "abc"}`, userSession)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, data).Errors, "materialId")

	resp, _ = ta.do(t, http.MethodDelete, "/api/favorites/"+itoa(m.ID), "", userSession)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = ta.do(t, http.MethodDelete, "/api/favorites/"+itoa(m.ID), "", userSession)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, data = ta.do(t, http.MethodGet, check, "", userSession)
	assert.JSONEq(t, `{"isFavorite": false}`, string(data))
}

func TestReviews(t *testing.T) {
	ta := newTestApp(t, stubValidator{})
	m := dbtest.CreateMaterial(t, ta.db, &models.Material{})
	path := "/api/materials/" + itoa(m.ID) + "/reviews"
	body := `{"rating": 4, "title": "Easy to machine", "processDetails": {"spindleRpm": 3000}}`

	resp, _ := ta.do(t, http.MethodPost, path, body, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, data := ta.do(t, http.MethodPost, path, body, userSession)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var review models.Review
	require.NoError(t, json.Unmarshal(data, &review))
	assert.Equal(t, "user-1", review.UserID)

	resp, _ = ta.do(t, http.MethodPost, path, body, userSession)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, data = ta.do(t, http.MethodPost, path, `{"rating": 0, "title": "x"}`, otherSession)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, data).Errors, "rating")

	reviewPath := "/api/reviews/" + itoa(review.ID)
	resp, data = ta.do(t, http.MethodPost, reviewPath+"/helpful", "", otherSession)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &review))
	assert.Equal(t, 1, review.HelpfulCount)

	resp, data = ta.do(t, http.MethodGet, path, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reviews []models.Review
	require.NoError(t, json.Unmarshal(data, &reviews))
	assert.Len(t, reviews, 1)

	resp, _ = ta.do(t, http.MethodDelete, reviewPath, "", otherSession)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = ta.do(t, http.MethodDelete, reviewPath, "", userSession)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = ta.do(t, http.MethodPost, reviewPath+"/helpful", "", otherSession)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCurrentUserIsMirrored(t *testing.T) {
	ta := newTestApp(t, stubValidator{})

	resp, data := ta.do(t, http.MethodGet, "/api/auth/user", "", userSession)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, json.Unmarshal(data, &user))
	assert.Equal(t, "user-1", user.ID)
	require.NotNil(t, user.FirstName)
	assert.Equal(t, "Uma", *user.FirstName)

	var count int64
	require.NoError(t, ta.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCalculator(t *testing.T) {
	ta := newTestApp(t, stubValidator{})

	resp, data := ta.do(t, http.MethodPost, "/api/calculator",
		`{"tensileStrength": 50, "elongation": 10, "density": 1.2, "temperature": 20, "thickness": 2, "load": 100}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var results map[string]float64
	require.NoError(t, json.Unmarshal(data, &results))
	assert.Equal(t, 500.0, results["youngModulus"])
	assert.Equal(t, 25.0, results["stressAtBreak"])

	resp, data = ta.do(t, http.MethodPost, "/api/calculator", `{"tensileStrength": -1}`, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, data).Errors, "tensileStrength")
}

func TestUnknownRoute(t *testing.T) {
	ta := newTestApp(t, stubValidator{})

	resp, data := ta.do(t, http.MethodGet, "/api/nothing-here", "", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "notFound", decodeError(t, data).Type)
}
