package postgresql

import (
	"context"

	"github.com/glacierdata/lakecatsrv/internal/common"
	"github.com/glacierdata/lakecatsrv/internal/db/dberror"
	"github.com/glacierdata/lakecatsrv/internal/db/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/mugiliam/common/apperrors"
	"github.com/rs/zerolog/log"
)

// LoadTables resolves the metadata and storage context for a batch of tables
// in one set-oriented lookup. Only tables that belong to the given warehouse
// (through their namespace), with the warehouse active, are returned;
// soft-deleted tables are excluded unless includeDeleted is set. Ids that do
// not match the filter are silently omitted; the caller reconciles the
// returned set against the requested set.
//
// The active-status predicate is embedded in the query even though callers
// run the scope guard first, so the result reflects one point-in-time view.
func (h *lakeCatalogDb) LoadTables(ctx context.Context, warehouseID uuid.UUID, tableIDs []uuid.UUID, includeDeleted bool) ([]models.TableRecord, apperrors.Error) {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return nil, dberror.ErrMissingTenantID
	}
	if warehouseID == uuid.Nil {
		return nil, dberror.ErrInvalidInput.Msg("warehouse_id cannot be empty")
	}
	if len(tableIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(tableIDs))
	for i, id := range tableIDs {
		ids[i] = id.String()
	}
	var idArr pgtype.UUIDArray
	if errDb := idArr.Set(ids); errDb != nil {
		return nil, dberror.ErrInvalidInput.Msg("invalid table ids")
	}

	query := `
		SELECT t.table_id, tab.namespace_id, t.tenant_id, t.metadata, tab.metadata_location,
		       w.storage_profile, w.storage_secret_id
		FROM tables t
		JOIN tabulars tab ON tab.tabular_id = t.table_id AND tab.tenant_id = t.tenant_id
		JOIN namespaces n ON n.namespace_id = tab.namespace_id AND n.tenant_id = tab.tenant_id
		JOIN warehouses w ON w.warehouse_id = n.warehouse_id AND w.tenant_id = n.tenant_id
		WHERE w.warehouse_id = $1
		  AND t.tenant_id = $2
		  AND t.table_id = ANY($3::uuid[])
		  AND w.status = 'active'
		  AND (tab.deleted_at IS NULL OR $4);
	`

	rows, errDb := h.conn().QueryContext(ctx, query, warehouseID, tenantID, idArr, includeDeleted)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Str("warehouse_id", warehouseID.String()).Msg("failed to load tables")
		return nil, dberror.ErrDatabase.Err(errDb)
	}
	defer rows.Close()

	var records []models.TableRecord
	for rows.Next() {
		var rec models.TableRecord
		if errDb := rows.Scan(
			&rec.TableID, &rec.NamespaceID, &rec.TenantID, &rec.Metadata, &rec.MetadataLocation,
			&rec.StorageProfile, &rec.StorageSecretID,
		); errDb != nil {
			log.Ctx(ctx).Error().Err(errDb).Msg("failed to scan table record")
			return nil, dberror.ErrDatabase.Err(errDb)
		}
		records = append(records, rec)
	}
	if errDb := rows.Err(); errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to iterate table records")
		return nil, dberror.ErrDatabase.Err(errDb)
	}

	return records, nil
}
