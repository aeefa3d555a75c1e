package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/shashiranjanraj/vyapar/app/models"
	"github.com/shashiranjanraj/vyapar/app/routes"
	"github.com/shashiranjanraj/vyapar/pkg/auth"
	"github.com/shashiranjanraj/vyapar/pkg/database"
	"github.com/shashiranjanraj/vyapar/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newAPI(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Vendor{}, &models.Product{}))

	database.DB = db
	t.Cleanup(func() { database.DB = nil })

	r := router.New()
	routes.RegisterAPI(r)
	return r.Handler()
}

func do(t *testing.T, h http.Handler, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func registerAndLogin(t *testing.T, h http.Handler, email string) (uint, string) {
	t.Helper()

	rec, env := do(t, h, http.MethodPost, "/register", `{"email":"`+email+`","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		UserID uint `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, env = do(t, h, http.MethodPost, "/login", `{"email":"`+email+`","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var logged struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &logged))
	require.NotEmpty(t, logged.Token)

	return created.UserID, logged.Token
}

func TestRegisterLoginFlow(t *testing.T) {
	h := newAPI(t)

	userID, token := registerAndLogin(t, h, "a@x.com")

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	// Same email again is rejected.
	rec, _ := do(t, h, http.MethodPost, "/register", `{"email":"a@x.com","password":"secret1"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Wrong password.
	rec, _ = do(t, h, http.MethodPost, "/login", `{"email":"a@x.com","password":"nope123"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown account.
	rec, _ = do(t, h, http.MethodPost, "/login", `{"email":"ghost@x.com","password":"secret1"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	h := newAPI(t)

	rec, env := do(t, h, http.MethodPost, "/register", `{"email":"not-an-email","password":"123"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "password")
}

func TestVendorFlow(t *testing.T) {
	h := newAPI(t)
	userID, token := registerAndLogin(t, h, "a@x.com")

	body := `{"name":"V","contactInfo":"c","userId":` + uintStr(userID) + `}`

	// No token: rejected before any state changes.
	rec, _ := do(t, h, http.MethodPost, "/vendor/register", body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env := do(t, h, http.MethodPost, "/vendor/register", body, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var vendor models.Vendor
	require.NoError(t, json.Unmarshal(env.Data, &vendor))
	assert.NotZero(t, vendor.ID)

	rec, env = do(t, h, http.MethodGet, "/vendor/"+uintStr(userID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.VendorWithEmail
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "V", got.Name)
	assert.Equal(t, "a@x.com", got.UserEmail)

	// A vendor needs a real owner.
	rec, _ = do(t, h, http.MethodPost, "/vendor/register", `{"name":"V","contactInfo":"c","userId":9999}`, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/vendor/9999", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductFlow(t *testing.T) {
	h := newAPI(t)
	userID, token := registerAndLogin(t, h, "a@x.com")

	rec, env := do(t, h, http.MethodPost, "/vendor/register",
		`{"name":"V","contactInfo":"c","userId":`+uintStr(userID)+`}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var vendor models.Vendor
	require.NoError(t, json.Unmarshal(env.Data, &vendor))

	rec, _ = do(t, h, http.MethodPost, "/product",
		`{"name":"Pen","description":"blue","price":2.5,"vendorId":`+uintStr(vendor.ID)+`}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = do(t, h, http.MethodPost, "/product",
		`{"name":"Pen","description":"blue","price":2.5,"vendorId":`+uintStr(vendor.ID)+`}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))
	require.NotZero(t, product.ID)

	rec, env = do(t, h, http.MethodGet, "/products/"+uintStr(vendor.ID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Pen", products[0].Name)

	rec, env = do(t, h, http.MethodPut, "/product/"+uintStr(product.ID),
		`{"name":"Pencil","description":"HB","price":1.25}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Product
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, product.ID, updated.ID)
	assert.Equal(t, vendor.ID, updated.VendorID)
	assert.Equal(t, "Pencil", updated.Name)

	rec, _ = do(t, h, http.MethodPut, "/product/9999",
		`{"name":"X","description":"","price":1}`, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = do(t, h, http.MethodDelete, "/product/"+uintStr(product.ID), "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Deleting again still succeeds.
	rec, _ = do(t, h, http.MethodDelete, "/product/"+uintStr(product.ID), "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/products/"+uintStr(vendor.ID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &products))
	assert.Empty(t, products)
}

func TestUsersListOmitsPasswords(t *testing.T) {
	h := newAPI(t)
	registerAndLogin(t, h, "a@x.com")

	rec, env := do(t, h, http.MethodGet, "/users", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "a@x.com", users[0].Email)

	// The stored hash must never appear in any serialized form.
	body := rec.Body.String()
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "Password")
	assert.NotContains(t, body, "$2a$")
}

func TestProductCreateZeroPrice(t *testing.T) {
	h := newAPI(t)
	userID, token := registerAndLogin(t, h, "a@x.com")

	rec, env := do(t, h, http.MethodPost, "/vendor/register",
		`{"name":"V","contactInfo":"c","userId":`+uintStr(userID)+`}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var vendor models.Vendor
	require.NoError(t, json.Unmarshal(env.Data, &vendor))

	// Free items are valid; an explicit zero price is not a missing price.
	rec, env = do(t, h, http.MethodPost, "/product",
		`{"name":"Sample","description":"giveaway","price":0,"vendorId":`+uintStr(vendor.ID)+`}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Zero(t, product.Price)

	// A genuinely missing price is still rejected.
	rec, env = do(t, h, http.MethodPost, "/product",
		`{"name":"Sample","description":"","vendorId":`+uintStr(vendor.ID)+`}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Errors, "price")
}

func TestProductCreateUnknownVendorHTTP(t *testing.T) {
	h := newAPI(t)
	_, token := registerAndLogin(t, h, "a@x.com")

	rec, _ := do(t, h, http.MethodPost, "/product",
		`{"name":"Pen","description":"","price":1,"vendorId":9999}`, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBadBearerToken(t *testing.T) {
	h := newAPI(t)

	rec, _ := do(t, h, http.MethodPost, "/vendor/register",
		`{"name":"V","contactInfo":"c","userId":1}`, "garbage.token.here")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func uintStr(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
