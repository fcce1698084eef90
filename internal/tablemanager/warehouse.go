package tablemanager

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/glacierdata/lakecatsrv/internal/db/dberror"
	"github.com/glacierdata/lakecatsrv/internal/db/models"
	"github.com/glacierdata/lakecatsrv/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/mugiliam/common/apperrors"
	"github.com/xeipuuv/gojsonschema"
)

// storageProfileSchema constrains the shape of the storage profile document
// at the warehouse boundary. The document stays opaque past this point.
const storageProfileSchema = `{
	"type": "object",
	"properties": {
		"type": {
			"type": "string",
			"enum": ["s3", "gcs", "adls", "file"]
		},
		"bucket":   { "type": "string" },
		"key-prefix": { "type": "string" },
		"endpoint": { "type": "string" },
		"region":   { "type": "string" }
	},
	"required": ["type"]
}`

var compiledStorageProfileSchema = gojsonschema.NewStringLoader(storageProfileSchema)

func validateStorageProfile(profile json.RawMessage) apperrors.Error {
	if len(profile) == 0 {
		return ErrInvalidStorageProfile.Msg("storage profile is required")
	}
	result, err := gojsonschema.Validate(compiledStorageProfileSchema, gojsonschema.NewBytesLoader(profile))
	if err != nil {
		return ErrInvalidStorageProfile.Err(err)
	}
	if !result.Valid() {
		appErr := ErrInvalidStorageProfile
		for _, desc := range result.Errors() {
			appErr = appErr.Msg(desc.String())
		}
		return appErr
	}
	return nil
}

type CreateWarehouseRequest struct {
	Name            string          `validate:"required"`
	StorageProfile  json.RawMessage `validate:"required"`
	StorageSecretID *uuid.UUID
}

// CreateWarehouse registers a new active warehouse for the current tenant
// after validating the storage profile document shape.
func (m *Manager) CreateWarehouse(ctx context.Context, req CreateWarehouseRequest) (*models.Warehouse, apperrors.Error) {
	if err := validate.Struct(req); err != nil {
		return nil, ErrInvalidRequest.Err(err)
	}
	if appErr := validateStorageProfile(req.StorageProfile); appErr != nil {
		return nil, appErr
	}

	var profile pgtype.JSONB
	if err := profile.Set([]byte(req.StorageProfile)); err != nil {
		return nil, ErrInvalidStorageProfile.Err(err)
	}

	warehouse := &models.Warehouse{
		Name:           req.Name,
		Status:         types.WarehouseStatusActive,
		StorageProfile: profile,
	}
	if req.StorageSecretID != nil {
		warehouse.StorageSecretID = uuid.NullUUID{UUID: *req.StorageSecretID, Valid: true}
	}

	if err := m.store.CreateWarehouse(ctx, warehouse); err != nil {
		if errors.Is(err, dberror.ErrAlreadyExists) {
			return nil, ErrWarehouseExists
		}
		if errors.Is(err, dberror.ErrInvalidInput) {
			return nil, ErrInvalidRequest.Err(err)
		}
		return nil, ErrTableManager.Err(err)
	}
	return warehouse, nil
}

// GetWarehouse returns the warehouse directory entry.
func (m *Manager) GetWarehouse(ctx context.Context, warehouseID uuid.UUID) (*models.Warehouse, apperrors.Error) {
	warehouse, err := m.store.GetWarehouse(ctx, warehouseID)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrWarehouseNotFound
		}
		return nil, ErrTableManager.Err(err)
	}
	return warehouse, nil
}

// SetWarehouseStatus transitions a warehouse between active and inactive.
func (m *Manager) SetWarehouseStatus(ctx context.Context, warehouseID uuid.UUID, status types.WarehouseStatus) apperrors.Error {
	if status != types.WarehouseStatusActive && status != types.WarehouseStatusInactive {
		return ErrInvalidRequest.Msg("invalid warehouse status")
	}
	if err := m.store.SetWarehouseStatus(ctx, warehouseID, status); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrWarehouseNotFound
		}
		return ErrTableManager.Err(err)
	}
	return nil
}
