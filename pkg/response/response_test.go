package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "pasaratsiri/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessEnvelope(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, map[string]int{"total": 3}))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.NotEmpty(t, body.Timestamp)
}

func TestErrorUsesAppErrorStatus(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, apperrors.Conflict("Status already decided")))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, apperrors.CodeConflict, body.Error.Code)
	assert.Equal(t, "Status already decided", body.Error.Message)
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
