package postgresql

import (
	"context"
	"database/sql"

	"github.com/glacierdata/lakecatsrv/internal/common"
	"github.com/glacierdata/lakecatsrv/internal/db/dberror"
	"github.com/glacierdata/lakecatsrv/internal/db/models"
	"github.com/glacierdata/lakecatsrv/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/mugiliam/common/apperrors"
	"github.com/rs/zerolog/log"
)

// CreateTable inserts a tabular registry entry and its table metadata row in
// a single transaction. The tabular and table rows share the same id.
// Returns an error if a live tabular with the same name exists in the
// namespace, the namespace is invalid, or there is a database error.
func (h *lakeCatalogDb) CreateTable(ctx context.Context, tabular *models.Tabular, table *models.Table) (err apperrors.Error) {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return dberror.ErrMissingTenantID
	}
	tabular.TenantID = tenantID
	if tabular.TabularID == uuid.Nil {
		tabular.TabularID = uuid.New()
	}
	if tabular.Type == "" {
		tabular.Type = types.TabularTypeTable
	}
	table.TableID = tabular.TabularID

	tx, errdb := h.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Ctx(ctx).Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
		}
	}()

	tabularQuery := `
		INSERT INTO tabulars (tabular_id, name, typ, namespace_id, tenant_id, metadata_location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING tabular_id;
	`

	row := tx.QueryRowContext(ctx, tabularQuery, tabular.TabularID, tabular.Name, tabular.Type, tabular.NamespaceID, tabular.TenantID, tabular.MetadataLocation)
	var insertedTabularID uuid.UUID
	errDb := row.Scan(&insertedTabularID)
	if errDb != nil {
		if pgErr, ok := errDb.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" && pgErr.ConstraintName == "tabulars_name_namespace_id_tenant_id_live_key" { // Unique constraint violation
				log.Ctx(ctx).Info().Str("name", tabular.Name).Str("namespace_id", tabular.NamespaceID.String()).Msg("table already exists in namespace")
				return dberror.ErrAlreadyExists.Msg("table already exists in namespace")
			}
			if pgErr.ConstraintName == "tabulars_namespace_id_tenant_id_fkey" { // Foreign key constraint violation
				log.Ctx(ctx).Info().Str("namespace_id", tabular.NamespaceID.String()).Msg("namespace not found")
				return dberror.ErrInvalidNamespace
			}
		}
		log.Ctx(ctx).Error().Err(errDb).Str("name", tabular.Name).Msg("failed to insert tabular")
		return dberror.ErrDatabase.Err(errDb)
	}

	tableQuery := `
		INSERT INTO tables (table_id, tenant_id, metadata)
		VALUES ($1, $2, $3);
	`

	_, errDb = tx.ExecContext(ctx, tableQuery, table.TableID, tenantID, table.Metadata)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Str("table_id", table.TableID.String()).Msg("failed to insert table metadata")
		return dberror.ErrDatabase.Err(errDb)
	}

	if errDb := tx.Commit(); errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to commit transaction")
		return dberror.ErrCommitIndeterminate.Err(errDb)
	}

	return nil
}

// GetTable retrieves a table's metadata document by its ID. Soft-deleted
// tables are still retrievable here; scoping and filtering belong to LoadTables.
func (h *lakeCatalogDb) GetTable(ctx context.Context, tableID uuid.UUID) (*models.Table, apperrors.Error) {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return nil, dberror.ErrMissingTenantID
	}

	query := `
		SELECT table_id, metadata
		FROM tables
		WHERE table_id = $1 AND tenant_id = $2;
	`

	row := h.conn().QueryRowContext(ctx, query, tableID, tenantID)
	table := &models.Table{}
	err := row.Scan(&table.TableID, &table.Metadata)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("table_id", tableID.String()).Msg("table not found")
			return nil, dberror.ErrNotFound.Msg("table not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve table")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return table, nil
}

// SetTableMetadataLocation swaps the current metadata-location pointer for a
// table. A null location means the table's metadata has not been written yet.
func (h *lakeCatalogDb) SetTableMetadataLocation(ctx context.Context, tableID uuid.UUID, location string) apperrors.Error {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return dberror.ErrMissingTenantID
	}

	query := `
		UPDATE tabulars
		SET metadata_location = $1, updated_at = NOW()
		WHERE tabular_id = $2 AND tenant_id = $3 AND deleted_at IS NULL
		RETURNING tabular_id;
	`

	row := h.conn().QueryRowContext(ctx, query, location, tableID, tenantID)
	var returnedTabularID uuid.UUID
	err := row.Scan(&returnedTabularID)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("table_id", tableID.String()).Msg("table not found or deleted")
			return dberror.ErrNotFound.Msg("table not found or deleted")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update metadata location")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

// SoftDeleteTable tombstones a table by setting its deletion timestamp. The
// row is not physically removed; LoadTables excludes it unless the caller
// asks for deleted tables.
func (h *lakeCatalogDb) SoftDeleteTable(ctx context.Context, tableID uuid.UUID) apperrors.Error {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return dberror.ErrMissingTenantID
	}

	query := `
		UPDATE tabulars
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE tabular_id = $1 AND tenant_id = $2 AND deleted_at IS NULL
		RETURNING tabular_id;
	`

	row := h.conn().QueryRowContext(ctx, query, tableID, tenantID)
	var returnedTabularID uuid.UUID
	err := row.Scan(&returnedTabularID)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("table_id", tableID.String()).Msg("table not found or already deleted")
			return dberror.ErrNotFound.Msg("table not found or already deleted")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to soft-delete table")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

// UndropTable clears a table's deletion timestamp, restoring it to the live
// set. Fails if another live tabular has since taken the same name.
func (h *lakeCatalogDb) UndropTable(ctx context.Context, tableID uuid.UUID) apperrors.Error {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return dberror.ErrMissingTenantID
	}

	query := `
		UPDATE tabulars
		SET deleted_at = NULL, updated_at = NOW()
		WHERE tabular_id = $1 AND tenant_id = $2 AND deleted_at IS NOT NULL
		RETURNING tabular_id;
	`

	row := h.conn().QueryRowContext(ctx, query, tableID, tenantID)
	var returnedTabularID uuid.UUID
	err := row.Scan(&returnedTabularID)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("table_id", tableID.String()).Msg("table not found or not deleted")
			return dberror.ErrNotFound.Msg("table not found or not deleted")
		}
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" && pgErr.ConstraintName == "tabulars_name_namespace_id_tenant_id_live_key" {
				log.Ctx(ctx).Info().Str("table_id", tableID.String()).Msg("a live table with the same name exists")
				return dberror.ErrAlreadyExists.Msg("a live table with the same name exists")
			}
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to undrop table")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}
