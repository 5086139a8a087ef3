package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationParams(t *testing.T) {
	params := NewPaginationParams(0, 0)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)
	assert.Equal(t, 0, params.Offset)

	params = NewPaginationParams(3, 10)
	assert.Equal(t, 20, params.Offset)

	params = NewPaginationParams(1, 500)
	assert.Equal(t, 20, params.PageSize)
}

func TestGetPaginationParams(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?page=2&limit=5", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	params := GetPaginationParams(c)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 5, params.PageSize)
	assert.Equal(t, 5, params.Offset)
}
