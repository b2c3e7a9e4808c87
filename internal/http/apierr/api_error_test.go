package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mebella/catalog-api/internal/apperr"
	"github.com/mebella/catalog-api/internal/http/apierr"
	"github.com/mebella/catalog-api/pkg/validator"
)

func TestNew(t *testing.T) {
	t.Run("Should map not-found to 404", func(t *testing.T) {
		res := apierr.New(apperr.ProductNotFoundErr)

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, apperr.ProductNotFoundCode, res.Code)
	})

	t.Run("Should map store failures to 500 with their code", func(t *testing.T) {
		for _, err := range []error{apperr.StoreUnavailableErr, apperr.StoreReadErr, apperr.StoreWriteErr, apperr.ProductIDInvalidErr} {
			res := apierr.New(err)

			assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		}
	})

	t.Run("Should map wrapped zerrors through error chains", func(t *testing.T) {
		err := fmt.Errorf("service: %w", apperr.ProductNotFoundErr.WrapParent(errors.New("no documents")))

		res := apierr.New(err)

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("Should map validator errors to 400 with field details", func(t *testing.T) {
		type payload struct {
			Name  string  `validate:"required"`
			Price float64 `validate:"gte=0"`
		}
		err := validator.NewDefaultValidator().Validate(payload{Price: -1})
		require.Error(t, err)

		res := apierr.New(err)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "validationError", res.Code)
		require.Len(t, res.Details, 2)
		assert.Equal(t, "Name", res.Details[0].Field)
		assert.Equal(t, "field is required", res.Details[0].Message)
		assert.Equal(t, "Price", res.Details[1].Field)
	})

	t.Run("Should hide unknown errors behind a generic 500", func(t *testing.T) {
		res := apierr.New(errors.New("boom"))

		assert.Equal(t, apierr.InternalServerErr, res)
	})
}
