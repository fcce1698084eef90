package postgresql

import (
	"context"
	"database/sql"

	"github.com/glacierdata/lakecatsrv/internal/common"
	"github.com/glacierdata/lakecatsrv/internal/db/dberror"
	"github.com/glacierdata/lakecatsrv/internal/db/models"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/mugiliam/common/apperrors"
	"github.com/rs/zerolog/log"
)

// CreateNamespace creates a new namespace within a warehouse.
// Returns an error if the name already exists in the warehouse, the name
// format is invalid, the warehouse does not exist, or there is a database error.
func (h *lakeCatalogDb) CreateNamespace(ctx context.Context, namespace *models.Namespace) apperrors.Error {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return dberror.ErrMissingTenantID
	}
	namespace.TenantID = tenantID
	if namespace.NamespaceID == uuid.Nil {
		namespace.NamespaceID = uuid.New()
	}

	query := `
		INSERT INTO namespaces (namespace_id, name, warehouse_id, tenant_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name, warehouse_id, tenant_id) DO NOTHING
		RETURNING namespace_id;
	`

	row := h.conn().QueryRowContext(ctx, query, namespace.NamespaceID, namespace.Name, namespace.WarehouseID, namespace.TenantID)
	var insertedNamespaceID uuid.UUID
	err := row.Scan(&insertedNamespaceID)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("name", namespace.Name).Str("warehouse_id", namespace.WarehouseID.String()).Msg("namespace already exists")
			return dberror.ErrAlreadyExists.Msg("namespace already exists")
		}
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23514" && pgErr.ConstraintName == "namespaces_name_check" { // Check constraint violation
				log.Ctx(ctx).Error().Str("name", namespace.Name).Msg("invalid namespace name format")
				return dberror.ErrInvalidInput.Msg("invalid namespace name format")
			}
			if pgErr.ConstraintName == "namespaces_warehouse_id_tenant_id_fkey" { // Foreign key constraint violation
				log.Ctx(ctx).Info().Str("warehouse_id", namespace.WarehouseID.String()).Msg("warehouse not found")
				return dberror.ErrInvalidWarehouse
			}
		}
		log.Ctx(ctx).Error().Err(err).Str("name", namespace.Name).Msg("failed to insert namespace")
		return dberror.ErrDatabase.Err(err)
	}

	namespace.NamespaceID = insertedNamespaceID
	return nil
}

// GetNamespace retrieves a namespace by its ID.
func (h *lakeCatalogDb) GetNamespace(ctx context.Context, namespaceID uuid.UUID) (*models.Namespace, apperrors.Error) {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return nil, dberror.ErrMissingTenantID
	}

	query := `
		SELECT namespace_id, name, warehouse_id, tenant_id
		FROM namespaces
		WHERE namespace_id = $1 AND tenant_id = $2;
	`

	row := h.conn().QueryRowContext(ctx, query, namespaceID, tenantID)
	namespace := &models.Namespace{}
	err := row.Scan(&namespace.NamespaceID, &namespace.Name, &namespace.WarehouseID, &namespace.TenantID)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("namespace_id", namespaceID.String()).Msg("namespace not found")
			return nil, dberror.ErrNotFound.Msg("namespace not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve namespace")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return namespace, nil
}

// DeleteNamespace deletes a namespace from the database.
// Returns an error if there is a database error.
func (h *lakeCatalogDb) DeleteNamespace(ctx context.Context, namespaceID uuid.UUID) apperrors.Error {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return dberror.ErrMissingTenantID
	}

	query := `
		DELETE FROM namespaces
		WHERE namespace_id = $1 AND tenant_id = $2;
	`

	_, err := h.conn().ExecContext(ctx, query, namespaceID, tenantID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete namespace")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}
