package apis

import (
	"errors"
	"net/http"

	"github.com/glacierdata/lakecatsrv/internal/db/dberror"
	"github.com/mugiliam/common/apperrors"
	"github.com/mugiliam/common/httpx"
)

// ToHttpxError translates manager and storage errors into the wire error
// shape. Storage sentinels that escape without an HTTP status are mapped
// here; everything else keeps the status carried on the apperror.
func ToHttpxError(err error) error {
	if appErr, ok := err.(apperrors.Error); ok {
		statusCode := appErr.StatusCode()
		if statusCode == 0 {
			switch {
			case errors.Is(appErr, dberror.ErrNotFound):
				statusCode = http.StatusNotFound
			case errors.Is(appErr, dberror.ErrAlreadyExists):
				statusCode = http.StatusConflict
			case errors.Is(appErr, dberror.ErrInvalidInput):
				statusCode = http.StatusBadRequest
			default:
				statusCode = http.StatusInternalServerError
			}
		}
		return &httpx.Error{
			StatusCode:  statusCode,
			Description: appErr.ErrorAll(),
		}
	}
	return err
}
