package tablemanager

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/mugiliam/common/apperrors"
)

// ReadTablesRequest names a batch of tables to resolve within one warehouse.
// Id order is irrelevant; duplicates are collapsed.
type ReadTablesRequest struct {
	WarehouseID    uuid.UUID   `validate:"required"`
	TableIDs       []uuid.UUID `validate:"dive,required"`
	IncludeDeleted bool
}

// TableRecord is the resolved view handed to callers: the table's metadata
// document and the warehouse storage context needed to open it. A nil
// MetadataLocation marks a table whose metadata has not been written yet;
// a nil StorageSecretID marks a storage profile that needs no secret.
type TableRecord struct {
	TableID          uuid.UUID
	NamespaceID      uuid.UUID
	Metadata         json.RawMessage
	MetadataLocation *string
	StorageProfile   json.RawMessage
	StorageSecretID  *uuid.UUID
}

// ReadTables resolves the requested tables in a single scoped fan-out read.
// Ids that are unknown, soft-deleted (unless requested) or outside the
// warehouse are omitted from the result, not errors: callers reconcile the
// returned set against the requested one.
func (m *Manager) ReadTables(ctx context.Context, req ReadTablesRequest) ([]TableRecord, apperrors.Error) {
	if err := validate.Struct(req); err != nil {
		return nil, ErrInvalidRequest.Err(err)
	}

	if appErr := m.EnsureWarehouseActive(ctx, req.WarehouseID); appErr != nil {
		return nil, appErr
	}

	if len(req.TableIDs) == 0 {
		return nil, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(req.TableIDs))
	ids := make([]uuid.UUID, 0, len(req.TableIDs))
	for _, id := range req.TableIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	rows, err := m.store.LoadTables(ctx, req.WarehouseID, ids, req.IncludeDeleted)
	if err != nil {
		return nil, ErrTableManager.Err(err)
	}

	records := make([]TableRecord, 0, len(rows))
	for _, row := range rows {
		rec := TableRecord{
			TableID:        row.TableID,
			NamespaceID:    row.NamespaceID,
			Metadata:       json.RawMessage(row.Metadata.Bytes),
			StorageProfile: json.RawMessage(row.StorageProfile.Bytes),
		}
		if row.MetadataLocation.Valid {
			location := row.MetadataLocation.String
			rec.MetadataLocation = &location
		}
		if row.StorageSecretID.Valid {
			secretID := row.StorageSecretID.UUID
			rec.StorageSecretID = &secretID
		}
		records = append(records, rec)
	}

	return records, nil
}
