package apperr

import (
	"errors"

	"github.com/mebella/catalog-api/pkg/zerror"
)

const (
	ValidationErrorCode  = "VALIDATION_FAILED"
	ProductNotFoundCode  = "PRODUCT_NOT_FOUND"
	ProductIDInvalidCode = "PRODUCT_ID_INVALID"
	StoreUnavailableCode = "STORE_UNAVAILABLE"
	StoreReadErrorCode   = "STORE_READ_FAILED"
	StoreWriteErrorCode  = "STORE_WRITE_FAILED"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	ProductNotFoundErr = zerror.NewNotFound(ProductNotFoundCode, "product not found")

	// A malformed id surfaces as a server error, not as not-found and not as
	// a silent empty result.
	ProductIDInvalidErr = zerror.NewInternalServerError(ProductIDInvalidCode, "invalid product id")

	// Store-layer failures keep distinct codes but all map to a generic
	// server error at the HTTP boundary.
	StoreUnavailableErr = zerror.NewInternalServerError(StoreUnavailableCode, "document store is not available")
	StoreReadErr        = zerror.NewInternalServerError(StoreReadErrorCode, "document store read failed")
	StoreWriteErr       = zerror.NewInternalServerError(StoreWriteErrorCode, "document store write failed")
)

// HasCode reports whether err carries a ZError with the given code.
func HasCode(err error, code string) bool {
	var zErr zerror.ZError
	return errors.As(err, &zErr) && zErr.Code() == code
}
