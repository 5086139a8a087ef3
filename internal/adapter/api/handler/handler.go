package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"barterhub/pkg/errors"
)

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c echo.Context) int64 {
	uid, _ := c.Get("uid").(int64)
	return uid
}

func currentRole(c echo.Context) string {
	role, _ := c.Get("role").(string)
	return role
}

// paramID parses a positive int64 path parameter.
func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.BadRequest("Invalid "+name, err)
	}
	return id, nil
}
