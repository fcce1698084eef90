package tablemanager

import (
	"context"
	"errors"

	"github.com/glacierdata/lakecatsrv/internal/db/dberror"
	"github.com/google/uuid"
	"github.com/mugiliam/common/apperrors"
	"github.com/rs/zerolog/log"
)

// EnsureWarehouseActive is the scope-guard precondition composed into every
// read and write: operations against a missing or retired warehouse are
// refused before any storage is touched.
func (m *Manager) EnsureWarehouseActive(ctx context.Context, warehouseID uuid.UUID) apperrors.Error {
	if warehouseID == uuid.Nil {
		return ErrInvalidRequest.Msg("warehouse id is required")
	}

	warehouse, err := m.store.GetWarehouse(ctx, warehouseID)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrWarehouseNotFound
		}
		return ErrTableManager.Err(err)
	}

	if !warehouse.Status.IsActive() {
		log.Ctx(ctx).Info().Str("warehouse_id", warehouseID.String()).Str("status", string(warehouse.Status)).Msg("operation refused on non-active warehouse")
		return ErrWarehouseNotActive
	}

	return nil
}
