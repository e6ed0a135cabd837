package response

import (
	"encoding/json/v2"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/heeyoungha/jazzmateShop/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()

	Success(w, "review saved", map[string]string{"id": "rev-1"}, discardLogger())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var result Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.True(t, result.Success)
	assert.Equal(t, "review saved", result.Message)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "rev-1", data["id"])
}

func TestRaw(t *testing.T) {
	w := httptest.NewRecorder()

	Raw(w, http.StatusOK, []string{"a", "b"}, discardLogger())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["a","b"]`, w.Body.String())
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusBadRequest, "invalid input", discardLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.False(t, result.Success)
	assert.Equal(t, "invalid input", result.Message)
	assert.Nil(t, result.Data)
}

func TestError_NilLogger(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusBadRequest, "bad request", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleError_NotFound(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, domainerrors.NotFound("review not found"), discardLogger())

	assert.Equal(t, http.StatusNotFound, w.Code)

	var result Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "review not found", result.Message)
}

func TestHandleError_Validation(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, domainerrors.Validation("track_name is required"), discardLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "track_name is required", result.Message)
}

func TestHandleError_BusinessRule(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, domainerrors.BusinessRule("review content cannot be empty"), discardLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleError_InternalHidesCause(t *testing.T) {
	w := httptest.NewRecorder()

	cause := errors.New("sqlite: disk I/O error")
	HandleError(w, domainerrors.Internal("review creation failed").WithCause(cause), discardLogger())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var result Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, internalErrorMessage, result.Message)
	assert.NotContains(t, w.Body.String(), "disk I/O")
}

func TestHandleError_UnknownError(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, errors.New("something surprising"), discardLogger())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var result Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, internalErrorMessage, result.Message)
	assert.NotContains(t, w.Body.String(), "surprising")
}

func TestEnvelope_OmitEmpty(t *testing.T) {
	data, err := json.Marshal(Envelope{Success: true})
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"success":true`)
	assert.NotContains(t, s, `"message"`)
	assert.NotContains(t, s, `"data"`)
}
