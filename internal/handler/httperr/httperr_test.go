//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fox-16s/reservat-io/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cause is kept as a public error carrying the response", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		cause := errors.New("overlap")

		httperr.AbortWithError(c, http.StatusConflict, cause, "Selected dates are not available", nil)

		public := c.Errors.ByType(gin.ErrorTypePublic)
		require.Len(t, public, 1)
		assert.ErrorIs(t, public[0].Err, cause)
		resp, ok := public[0].Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, resp.Status)
		assert.Empty(t, c.Errors.ByType(gin.ErrorTypePrivate))

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Selected dates are not available"}}`, rec.Body.String())
	})

	t.Run("nil error panics", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Panics(t, func() {
			httperr.AbortWithError(c, http.StatusBadRequest, nil, "Bad request", nil)
		})
	})
}

func TestValidationDetail(t *testing.T) {
	type createRequest struct {
		ClientName string `validate:"required"`
		Total      int    `validate:"gt=0"`
	}

	err := validator.New().Struct(createRequest{})
	require.Error(t, err)

	assert.Equal(t, []httperr.FieldError{
		{Field: "ClientName", Rule: "required"},
		{Field: "Total", Rule: "gt"},
	}, httperr.ValidationDetail(err))
	assert.Nil(t, httperr.ValidationDetail(errors.New("unexpected EOF")))
}
