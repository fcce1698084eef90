package tablemanager

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/glacierdata/lakecatsrv/internal/db/dberror"
	"github.com/glacierdata/lakecatsrv/internal/db/models"
	"github.com/google/uuid"
	"github.com/mugiliam/common/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWarehouse(t *testing.T) {
	ctx := testContext()
	secretID := uuid.New()
	store := &fakeStore{
		createWarehouseFn: func(ctx context.Context, warehouse *models.Warehouse) apperrors.Error {
			warehouse.WarehouseID = uuid.New()
			return nil
		},
	}

	m := New(store)
	wh, err := m.CreateWarehouse(ctx, CreateWarehouseRequest{
		Name:            "analytics",
		StorageProfile:  json.RawMessage(`{"type": "s3", "bucket": "analytics-data", "region": "us-east-1"}`),
		StorageSecretID: &secretID,
	})
	require.Nil(t, err)
	assert.NotEqual(t, uuid.Nil, wh.WarehouseID)
	assert.Equal(t, "analytics", wh.Name)
	assert.True(t, wh.Status.IsActive())
	assert.True(t, wh.StorageSecretID.Valid)
	assert.Equal(t, secretID, wh.StorageSecretID.UUID)
}

func TestCreateWarehouseInvalidProfileType(t *testing.T) {
	ctx := testContext()
	m := New(&fakeStore{})

	_, err := m.CreateWarehouse(ctx, CreateWarehouseRequest{
		Name:           "analytics",
		StorageProfile: json.RawMessage(`{"type": "ftp"}`),
	})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageProfile)
}

func TestCreateWarehouseProfileMissingType(t *testing.T) {
	ctx := testContext()
	m := New(&fakeStore{})

	_, err := m.CreateWarehouse(ctx, CreateWarehouseRequest{
		Name:           "analytics",
		StorageProfile: json.RawMessage(`{"bucket": "analytics-data"}`),
	})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageProfile)
}

func TestCreateWarehouseMissingProfile(t *testing.T) {
	ctx := testContext()
	m := New(&fakeStore{})

	_, err := m.CreateWarehouse(ctx, CreateWarehouseRequest{Name: "analytics"})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCreateWarehouseDuplicateName(t *testing.T) {
	ctx := testContext()
	store := &fakeStore{
		createWarehouseFn: func(ctx context.Context, warehouse *models.Warehouse) apperrors.Error {
			return dberror.ErrAlreadyExists
		},
	}

	m := New(store)
	_, err := m.CreateWarehouse(ctx, CreateWarehouseRequest{
		Name:           "analytics",
		StorageProfile: json.RawMessage(`{"type": "s3"}`),
	})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrWarehouseExists)
}

func TestSetWarehouseStatus(t *testing.T) {
	ctx := testContext()
	warehouseID := uuid.New()
	store := activeWarehouseStore(warehouseID)

	m := New(store)
	err := m.SetWarehouseStatus(ctx, warehouseID, "inactive")
	assert.Nil(t, err)

	err = m.SetWarehouseStatus(ctx, warehouseID, "archived")
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestEnsureWarehouseActive(t *testing.T) {
	ctx := testContext()
	warehouseID := uuid.New()

	m := New(activeWarehouseStore(warehouseID))
	assert.Nil(t, m.EnsureWarehouseActive(ctx, warehouseID))

	err := m.EnsureWarehouseActive(ctx, uuid.New())
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrWarehouseNotFound)

	err = m.EnsureWarehouseActive(ctx, uuid.Nil)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	m = New(inactiveWarehouseStore(warehouseID))
	err = m.EnsureWarehouseActive(ctx, warehouseID)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrWarehouseNotActive)
}
