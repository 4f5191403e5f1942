package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SeaCloudHub/storefront/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	raw := errors.New("boom")

	t.Run("it should wrap the raw error", func(t *testing.T) {
		err := apperror.ErrEntityNotFound(raw)

		assert.Equal(t, http.StatusNotFound, err.HTTPCode)
		assert.Equal(t, apperror.EntityNotFoundCode, err.ErrorCode)
		assert.Equal(t, "Entity not found: boom", err.Error())
		assert.ErrorIs(t, err, raw)
	})

	t.Run("it should be found with errors.As", func(t *testing.T) {
		var wrapped error = apperror.ErrInternalServer(raw)

		var appErr apperror.Error
		assert.True(t, errors.As(wrapped, &appErr))
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	})

	t.Run("it should print only the message without a raw error", func(t *testing.T) {
		assert.Equal(t, "Invalid param", apperror.ErrInvalidParam(nil).Error())
	})
}
