package tablemanager

import (
	"net/http"

	"github.com/mugiliam/common/apperrors"
)

var (
	ErrTableManager          apperrors.Error = apperrors.New("error in processing table catalog").SetStatusCode(http.StatusInternalServerError)
	ErrInvalidBatch          apperrors.Error = ErrTableManager.New("invalid reference batch").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrInvalidRequest        apperrors.Error = ErrTableManager.New("invalid request").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrWarehouseNotFound     apperrors.Error = ErrTableManager.New("warehouse not found").SetStatusCode(http.StatusNotFound)
	ErrWarehouseExists       apperrors.Error = ErrTableManager.New("warehouse already exists").SetStatusCode(http.StatusConflict)
	ErrWarehouseNotActive    apperrors.Error = ErrTableManager.New("warehouse not active").SetStatusCode(http.StatusConflict)
	ErrTableNotFound         apperrors.Error = ErrTableManager.New("table not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidStorageProfile apperrors.Error = ErrTableManager.New("invalid storage profile").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
)
