package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"loadharbour/internal/core/storage"
	"loadharbour/internal/core/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respondApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return RespondError(c, err)
	})
	return app
}

func decodeErrorBody(t *testing.T, resp *http.Response) ErrorBody {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestRespondError_Validation(t *testing.T) {
	app := respondApp(validate.Errors{"vin": "VIN must be exactly 17 characters"})

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeErrorBody(t, resp)
	assert.Equal(t, CodeValidation, body.Code)
	assert.Equal(t, "VIN must be exactly 17 characters", body.Details["vin"])
}

func TestRespondError_Conflict(t *testing.T) {
	app := respondApp(fmt.Errorf("service: %w", &storage.ConflictError{Field: "VIN"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decodeErrorBody(t, resp)
	assert.Equal(t, CodeConflict, body.Code)
	assert.Equal(t, "VIN already exists", body.Message)
}

func TestRespondError_NotFound(t *testing.T) {
	app := respondApp(fmt.Errorf("service: %w", storage.ErrNotFound))

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRespondError_Internal(t *testing.T) {
	app := respondApp(errors.New("boom"))

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeErrorBody(t, resp)
	assert.Equal(t, CodeInternal, body.Code)
	// Internal details never leak to the client.
	assert.Equal(t, "Internal server error", body.Message)
}
