// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"
	"strconv"

	"subtrack/internal/delivery/http/middleware"
	"subtrack/internal/delivery/http/response"
	"subtrack/internal/delivery/http/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// getUserID extracts the authenticated user, writing a 401 when it is missing.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// pathUUID parses a uuid path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

// pageQuery reads page and per_page. Out of range values are normalised by the usecase.
func pageQuery(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	return page, perPage
}

// boolQuery reads an optional boolean query parameter.
func boolQuery(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// bindAndValidate binds the body into req and validates it, writing the 400 response on failure.
// The returned bool is false when a response has already been written.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, "VALIDATION_FAILED", err.Error(), validator.FieldErrors(err))
	}

	return true, nil
}
