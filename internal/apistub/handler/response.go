// Package handler contains the echo handlers of the API stub. Responses use
// the platform envelope the real backend speaks: {success, data, token,
// error, pagination}.
package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

type response struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Token      string             `json:"token,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, response{Success: true, Data: data})
}

func okToken(c echo.Context, status int, token string, data any) error {
	return c.JSON(status, response{Success: true, Token: token, Data: data})
}

func okPage(c echo.Context, status int, data any, p domain.Pagination) error {
	return c.JSON(status, response{Success: true, Data: data, Pagination: &p})
}
