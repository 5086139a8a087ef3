package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "barterhub/internal/adapter/repository"
	"barterhub/internal/infrastructure/auth"
	"barterhub/internal/usecase"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	return e
}

func newAuthHandler() *AuthHandler {
	store := memrepo.NewStore()
	jwtManager := auth.NewJWTManager("test-secret", 3600)
	return NewAuthHandler(usecase.NewAuthUseCase(memrepo.NewMemoryUserRepository(store), jwtManager))
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterHandler(t *testing.T) {
	e := newTestEcho()
	h := newAuthHandler()

	c, rec := postJSON(e, "/v1/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"hunter22!"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
	assert.NotContains(t, rec.Body.String(), "hunter22")
}

func TestRegisterHandlerValidation(t *testing.T) {
	e := newTestEcho()
	h := newAuthHandler()

	c, rec := postJSON(e, "/v1/auth/register",
		`{"username":"al","email":"not-an-email","password":"short"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestLoginHandler(t *testing.T) {
	e := newTestEcho()
	h := newAuthHandler()

	c, _ := postJSON(e, "/v1/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"hunter22!"}`)
	require.NoError(t, h.Register(c))

	c, rec := postJSON(e, "/v1/auth/login",
		`{"identifier":"alice","password":"hunter22!"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)

	c, rec = postJSON(e, "/v1/auth/login",
		`{"identifier":"alice","password":"wrong"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	e := newTestEcho()
	h := NewHealthHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Check(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
