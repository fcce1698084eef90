package tablemanager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/glacierdata/lakecatsrv/internal/db/dberror"
	"github.com/glacierdata/lakecatsrv/internal/db/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/mugiliam/common/apperrors"
	"github.com/rs/zerolog/log"
)

// ReplaceReferencesRequest carries one commit's reference updates as the
// parallel sequences the wire format uses. The three sequences must be of
// equal length; order is preserved into storage dispatch.
type ReplaceReferencesRequest struct {
	WarehouseID uuid.UUID `validate:"required"`
	TableID     uuid.UUID `validate:"required"`
	Names       []string  `validate:"dive,required"`
	SnapshotIDs []int64
	Retentions  []json.RawMessage
}

// zip converts the parallel arrays into the single structured sequence the
// store takes, so index alignment is checked exactly once.
func (r ReplaceReferencesRequest) zip() ([]models.TableReference, apperrors.Error) {
	if len(r.Names) != len(r.SnapshotIDs) || len(r.Names) != len(r.Retentions) {
		return nil, ErrInvalidBatch.Msg(fmt.Sprintf(
			"mismatched sequence lengths: %d names, %d snapshot ids, %d retention documents",
			len(r.Names), len(r.SnapshotIDs), len(r.Retentions)))
	}

	refs := make([]models.TableReference, len(r.Names))
	for i := range r.Names {
		if r.Names[i] == "" {
			return nil, ErrInvalidBatch.Msg("reference name cannot be empty")
		}
		if len(r.Retentions[i]) == 0 {
			return nil, ErrInvalidBatch.Msg("retention document cannot be empty")
		}
		var retention pgtype.JSONB
		if err := retention.Set([]byte(r.Retentions[i])); err != nil {
			return nil, ErrInvalidBatch.Msg("invalid retention document")
		}
		refs[i] = models.TableReference{
			TableID:    r.TableID,
			Name:       r.Names[i],
			SnapshotID: r.SnapshotIDs[i],
			Retention:  retention,
		}
	}
	return refs, nil
}

// ReplaceReferences atomically moves a batch of named references (branches
// and tags) for one table to new snapshots. Validation failures are detected
// before any storage access; an empty batch succeeds without touching the
// store.
func (m *Manager) ReplaceReferences(ctx context.Context, req ReplaceReferencesRequest) apperrors.Error {
	if err := validate.Struct(req); err != nil {
		return ErrInvalidRequest.Err(err)
	}

	refs, appErr := req.zip()
	if appErr != nil {
		return appErr
	}

	if appErr := m.EnsureWarehouseActive(ctx, req.WarehouseID); appErr != nil {
		return appErr
	}

	if err := m.store.ReplaceTableReferences(ctx, req.TableID, refs); err != nil {
		if errors.Is(err, dberror.ErrInvalidTable) {
			return ErrTableNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("table_id", req.TableID.String()).Msg("failed to replace table references")
		return ErrTableManager.Err(err)
	}

	return nil
}

// GetReferences returns the stored references for a table, scope-guarded.
func (m *Manager) GetReferences(ctx context.Context, warehouseID, tableID uuid.UUID) ([]models.TableReference, apperrors.Error) {
	if appErr := m.EnsureWarehouseActive(ctx, warehouseID); appErr != nil {
		return nil, appErr
	}
	refs, err := m.store.GetTableReferences(ctx, tableID)
	if err != nil {
		return nil, ErrTableManager.Err(err)
	}
	return refs, nil
}
