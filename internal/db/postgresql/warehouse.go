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

// CreateWarehouse inserts a new warehouse in the database.
// It automatically assigns a warehouse ID if one is not provided and sets the
// status to active. Returns an error if the name already exists for the
// tenant, the name format is invalid, or there is a database error.
func (h *lakeCatalogDb) CreateWarehouse(ctx context.Context, warehouse *models.Warehouse) apperrors.Error {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return dberror.ErrMissingTenantID
	}
	warehouse.TenantID = tenantID

	warehouseID := warehouse.WarehouseID
	if warehouseID == uuid.Nil {
		warehouseID = uuid.New()
	}
	if warehouse.Status == "" {
		warehouse.Status = types.WarehouseStatusActive
	}

	query := `
		INSERT INTO warehouses (warehouse_id, name, status, storage_profile, storage_secret_id, tenant_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name, tenant_id) DO NOTHING
		RETURNING warehouse_id;
	`

	row := h.conn().QueryRowContext(ctx, query, warehouseID, warehouse.Name, warehouse.Status, warehouse.StorageProfile, warehouse.StorageSecretID, warehouse.TenantID)
	var insertedWarehouseID uuid.UUID
	err := row.Scan(&insertedWarehouseID)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("name", warehouse.Name).Msg("warehouse already exists")
			return dberror.ErrAlreadyExists.Msg("warehouse already exists")
		}
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23514" && pgErr.ConstraintName == "warehouses_name_check" { // Check constraint violation
				log.Ctx(ctx).Error().Str("name", warehouse.Name).Msg("invalid warehouse name format")
				return dberror.ErrInvalidInput.Msg("invalid warehouse name format")
			}
			if pgErr.ConstraintName == "warehouses_tenant_id_fkey" { // Foreign key constraint violation
				log.Ctx(ctx).Info().Str("tenant_id", string(tenantID)).Msg("tenant not found")
				return dberror.ErrInvalidInput.Msg("tenant not found")
			}
		}
		log.Ctx(ctx).Error().Err(err).Str("name", warehouse.Name).Msg("failed to insert warehouse")
		return dberror.ErrDatabase.Err(err)
	}

	warehouse.WarehouseID = insertedWarehouseID
	return nil
}

// GetWarehouse retrieves a warehouse by its ID, including status and the
// storage profile document.
func (h *lakeCatalogDb) GetWarehouse(ctx context.Context, warehouseID uuid.UUID) (*models.Warehouse, apperrors.Error) {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return nil, dberror.ErrMissingTenantID
	}

	query := `
		SELECT warehouse_id, name, status, storage_profile, storage_secret_id, tenant_id, created_at, updated_at
		FROM warehouses
		WHERE warehouse_id = $1 AND tenant_id = $2;
	`

	row := h.conn().QueryRowContext(ctx, query, warehouseID, tenantID)
	warehouse := &models.Warehouse{}
	err := row.Scan(
		&warehouse.WarehouseID, &warehouse.Name, &warehouse.Status, &warehouse.StorageProfile,
		&warehouse.StorageSecretID, &warehouse.TenantID, &warehouse.CreatedAt, &warehouse.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("warehouse_id", warehouseID.String()).Str("tenant_id", string(tenantID)).Msg("warehouse not found")
			return nil, dberror.ErrNotFound.Msg("warehouse not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve warehouse")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return warehouse, nil
}

// GetWarehouseByName retrieves a warehouse by its name within the tenant.
func (h *lakeCatalogDb) GetWarehouseByName(ctx context.Context, name string) (*models.Warehouse, apperrors.Error) {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return nil, dberror.ErrMissingTenantID
	}
	if name == "" {
		return nil, dberror.ErrInvalidInput.Msg("name cannot be empty")
	}

	query := `
		SELECT warehouse_id, name, status, storage_profile, storage_secret_id, tenant_id, created_at, updated_at
		FROM warehouses
		WHERE name = $1 AND tenant_id = $2;
	`

	row := h.conn().QueryRowContext(ctx, query, name, tenantID)
	warehouse := &models.Warehouse{}
	err := row.Scan(
		&warehouse.WarehouseID, &warehouse.Name, &warehouse.Status, &warehouse.StorageProfile,
		&warehouse.StorageSecretID, &warehouse.TenantID, &warehouse.CreatedAt, &warehouse.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("name", name).Str("tenant_id", string(tenantID)).Msg("warehouse not found")
			return nil, dberror.ErrNotFound.Msg("warehouse not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve warehouse")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return warehouse, nil
}

// SetWarehouseStatus transitions a warehouse's lifecycle status. Once a
// warehouse is inactive, all table reads and reference writes through the
// catalog are refused.
func (h *lakeCatalogDb) SetWarehouseStatus(ctx context.Context, warehouseID uuid.UUID, status types.WarehouseStatus) apperrors.Error {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return dberror.ErrMissingTenantID
	}
	if status != types.WarehouseStatusActive && status != types.WarehouseStatusInactive {
		return dberror.ErrInvalidInput.Msg("invalid warehouse status")
	}

	query := `
		UPDATE warehouses
		SET status = $1, updated_at = NOW()
		WHERE warehouse_id = $2 AND tenant_id = $3
		RETURNING warehouse_id;
	`

	row := h.conn().QueryRowContext(ctx, query, status, warehouseID, tenantID)
	var returnedWarehouseID uuid.UUID
	err := row.Scan(&returnedWarehouseID)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("warehouse_id", warehouseID.String()).Str("tenant_id", string(tenantID)).Msg("warehouse not found")
			return dberror.ErrNotFound.Msg("warehouse not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update warehouse status")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

// DeleteWarehouse deletes a warehouse from the database based on warehouse_id and tenant_id.
// Returns an error if there is a database error.
func (h *lakeCatalogDb) DeleteWarehouse(ctx context.Context, warehouseID uuid.UUID) apperrors.Error {
	tenantID := common.TenantIdFromContext(ctx)
	if tenantID == "" {
		return dberror.ErrMissingTenantID
	}

	query := `
		DELETE FROM warehouses
		WHERE warehouse_id = $1 AND tenant_id = $2;
	`

	result, err := h.conn().ExecContext(ctx, query, warehouseID, tenantID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete warehouse")
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve result information")
		return dberror.ErrDatabase.Err(err)
	}

	if rowsAffected == 0 {
		log.Ctx(ctx).Info().Str("warehouse_id", warehouseID.String()).Str("tenant_id", string(tenantID)).Msg("warehouse not found")
	}

	return nil
}
