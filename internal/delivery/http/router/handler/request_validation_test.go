package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// newValidatingContext builds an echo context with the request validator
// installed, the same way the server wires it.
func newValidatingContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_MissingEmail(t *testing.T) {
	// The usecase must not be reached; leaving it nil proves the
	// short-circuit.
	handler := &UserHandler{}

	c, rec := newValidatingContext(http.MethodPost, "/auth/register",
		`{"name":"Alice","username":"alice","password":"Str0ngPass!"}`)

	err := handler.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUserHandler_Register_MalformedEmail(t *testing.T) {
	handler := &UserHandler{}

	c, rec := newValidatingContext(http.MethodPost, "/auth/register",
		`{"name":"Alice","username":"alice","email":"not-an-email","password":"Str0ngPass!"}`)

	err := handler.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUserHandler_Login_MissingPassword(t *testing.T) {
	handler := &UserHandler{}

	c, rec := newValidatingContext(http.MethodPost, "/auth/login",
		`{"email":"alice@example.com"}`)

	err := handler.Login(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestOrderHandler_Create_ZeroQuantityItem(t *testing.T) {
	handler := &OrderHandler{}

	sellerID := uuid.New()
	productID := uuid.New()
	addressID := uuid.New()
	body := `{"sellerId":"` + sellerID.String() + `","items":[{"productId":"` + productID.String() + `","quantity":0}],"shippingAddressId":"` + addressID.String() + `"}`

	c, rec := newValidatingContext(http.MethodPost, "/orders", body)
	c.Set("userID", uuid.New())

	err := handler.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestOrderHandler_Create_NoItems(t *testing.T) {
	handler := &OrderHandler{}

	body := `{"sellerId":"` + uuid.New().String() + `","items":[],"shippingAddressId":"` + uuid.New().String() + `"}`

	c, rec := newValidatingContext(http.MethodPost, "/orders", body)
	c.Set("userID", uuid.New())

	err := handler.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAddressHandler_Create_UnknownType(t *testing.T) {
	handler := &AddressHandler{}

	c, rec := newValidatingContext(http.MethodPost, "/addresses",
		`{"type":"vacation","street":"1 Main St","city":"Taipei","country":"TW"}`)
	c.Set("userID", uuid.New())

	err := handler.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
