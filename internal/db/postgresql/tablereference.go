package postgresql

import (
	"context"
	"database/sql"

	"github.com/glacierdata/lakecatsrv/internal/common"
	"github.com/glacierdata/lakecatsrv/internal/db/dberror"
	"github.com/glacierdata/lakecatsrv/internal/db/models"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/mugiliam/common/apperrors"
	"github.com/rs/zerolog/log"
)

// ReplaceTableReferences atomically replaces the named set of references for
// a table: every existing reference whose name appears in refs is deleted,
// then the new set is inserted. A reference re-created by a concurrent writer
// between the two phases is overwritten rather than failing, so each name
// ends in a state written by exactly one caller. The whole batch commits or
// none of it does.
//
// Snapshot ids are not validated against the table's metadata history here;
// the commit layer supplies consistent data.
func (h *lakeCatalogDb) ReplaceTableReferences(ctx context.Context, tableID uuid.UUID, refs []models.TableReference) (err apperrors.Error) {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return dberror.ErrMissingTenantID
	}
	if tableID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("table_id cannot be empty")
	}
	if len(refs) == 0 {
		// no-op write, nothing to touch
		return nil
	}

	names := make([]string, len(refs))
	snapshotIDs := make([]int64, len(refs))
	retentions := make([][]byte, len(refs))
	for i, ref := range refs {
		if ref.Name == "" {
			return dberror.ErrInvalidInput.Msg("reference name cannot be empty")
		}
		names[i] = ref.Name
		snapshotIDs[i] = ref.SnapshotID
		retentions[i] = ref.Retention.Bytes
	}

	var nameArr pgtype.TextArray
	if errDb := nameArr.Set(names); errDb != nil {
		return dberror.ErrInvalidInput.Msg("invalid reference names")
	}
	var snapshotArr pgtype.Int8Array
	if errDb := snapshotArr.Set(snapshotIDs); errDb != nil {
		return dberror.ErrInvalidInput.Msg("invalid snapshot ids")
	}
	var retentionArr pgtype.JSONBArray
	if errDb := retentionArr.Set(retentions); errDb != nil {
		return dberror.ErrInvalidInput.Msg("invalid retention documents")
	}

	tx, errdb := h.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
				log.Ctx(ctx).Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
		}
	}()

	deleteQuery := `
		DELETE FROM table_refs
		WHERE table_id = $1 AND tenant_id = $2 AND name = ANY($3::text[]);
	`

	if _, errDb := tx.ExecContext(ctx, deleteQuery, tableID, tenantID, nameArr); errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Str("table_id", tableID.String()).Msg("failed to delete table references")
		return dberror.ErrDatabase.Err(errDb)
	}

	// Upsert on conflict so a name re-created by a concurrent writer after
	// the delete phase is overwritten instead of raising a duplicate key.
	insertQuery := `
		INSERT INTO table_refs (table_id, tenant_id, name, snapshot_id, retention)
		SELECT $1, $2, u.name, u.snapshot_id, u.retention
		FROM unnest($3::text[], $4::bigint[], $5::jsonb[]) AS u(name, snapshot_id, retention)
		ON CONFLICT (table_id, tenant_id, name) DO UPDATE
		SET snapshot_id = EXCLUDED.snapshot_id, retention = EXCLUDED.retention;
	`

	if _, errDb := tx.ExecContext(ctx, insertQuery, tableID, tenantID, nameArr, snapshotArr, retentionArr); errDb != nil {
		if pgErr, ok := errDb.(*pgconn.PgError); ok {
			if pgErr.ConstraintName == "table_refs_table_id_tenant_id_fkey" { // Foreign key constraint violation
				log.Ctx(ctx).Info().Str("table_id", tableID.String()).Msg("table not found")
				return dberror.ErrInvalidTable
			}
		}
		log.Ctx(ctx).Error().Err(errDb).Str("table_id", tableID.String()).Msg("failed to insert table references")
		return dberror.ErrDatabase.Err(errDb)
	}

	if errDb := tx.Commit(); errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Str("table_id", tableID.String()).Msg("failed to commit reference replacement")
		return dberror.ErrCommitIndeterminate.Err(errDb)
	}

	return nil
}

// GetTableReferences returns all references stored for a table, ordered by
// name. Used by the maintenance process and for post-commit verification.
func (h *lakeCatalogDb) GetTableReferences(ctx context.Context, tableID uuid.UUID) ([]models.TableReference, apperrors.Error) {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return nil, dberror.ErrMissingTenantID
	}

	query := `
		SELECT table_id, name, snapshot_id, retention
		FROM table_refs
		WHERE table_id = $1 AND tenant_id = $2
		ORDER BY name;
	`

	rows, errDb := h.conn().QueryContext(ctx, query, tableID, tenantID)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Str("table_id", tableID.String()).Msg("failed to retrieve table references")
		return nil, dberror.ErrDatabase.Err(errDb)
	}
	defer rows.Close()

	var refs []models.TableReference
	for rows.Next() {
		var ref models.TableReference
		if errDb := rows.Scan(&ref.TableID, &ref.Name, &ref.SnapshotID, &ref.Retention); errDb != nil {
			log.Ctx(ctx).Error().Err(errDb).Msg("failed to scan table reference")
			return nil, dberror.ErrDatabase.Err(errDb)
		}
		refs = append(refs, ref)
	}
	if errDb := rows.Err(); errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to iterate table references")
		return nil, dberror.ErrDatabase.Err(errDb)
	}

	return refs, nil
}
