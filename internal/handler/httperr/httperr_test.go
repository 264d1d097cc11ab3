//go:build unit

package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes the status and the flat error body", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		AbortWithError(c, http.StatusNotFound, errors.New("no rows"), "Canteen not found")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Canteen not found"}`, w.Body.String())
		assert.True(t, c.IsAborted())
	})

	t.Run("records the underlying error as public with the response attached", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		underlying := errors.New("no rows")

		AbortWithError(c, http.StatusNotFound, underlying, "Canteen not found")

		require.Len(t, c.Errors, 1)
		assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))
		resp, ok := c.Errors[0].Meta.(Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, resp.Status)
		assert.Equal(t, "Canteen not found", resp.Error)
		assert.ErrorIs(t, c.Errors[0].Err, underlying)
	})

	t.Run("nil error writes the body without recording anything", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		AbortWithError(c, http.StatusBadRequest, nil, "Invalid request format")

		assert.Empty(t, c.Errors)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "Invalid request format"}`, w.Body.String())
	})
}
