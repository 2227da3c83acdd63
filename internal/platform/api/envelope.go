// Package api defines the response envelope every endpoint wraps its
// payload in. Clients branch on isSuccess and surface message, so every
// response body carries both regardless of HTTP status.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response body: {data, message, isSuccess}.
type Envelope struct {
	Data      interface{} `json:"data"`
	Message   string      `json:"message"`
	IsSuccess bool        `json:"isSuccess"`
}

// OK writes a success envelope with the given payload.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Data: data, IsSuccess: true})
}

// Created writes a success envelope with a 201 status.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{Data: data, IsSuccess: true})
}

// Fail writes a failure envelope. The message is what client UIs surface
// verbatim, so it should be phrased for an operator, not a developer.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Message: message, IsSuccess: false})
}
