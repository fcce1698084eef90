package postgresql

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/glacierdata/lakecatsrv/internal/db/dberror"
	"github.com/glacierdata/lakecatsrv/internal/db/models"
	"github.com/glacierdata/lakecatsrv/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storageProfile(t *testing.T, doc string) pgtype.JSONB {
	t.Helper()
	var j pgtype.JSONB
	require.NoError(t, j.Set([]byte(doc)))
	return j
}

func TestCreateWarehouse(t *testing.T) {
	h, mock, ctx := newMockDb(t)
	warehouseID := uuid.New()

	mock.ExpectQuery("INSERT INTO warehouses").
		WithArgs(sqlmock.AnyArg(), "analytics", string(types.WarehouseStatusActive), sqlmock.AnyArg(), sqlmock.AnyArg(), string(testTenantID)).
		WillReturnRows(sqlmock.NewRows([]string{"warehouse_id"}).AddRow(warehouseID.String()))

	wh := &models.Warehouse{
		Name:           "analytics",
		StorageProfile: storageProfile(t, `{"type": "s3", "bucket": "analytics-data"}`),
	}
	err := h.CreateWarehouse(ctx, wh)
	require.Nil(t, err)
	assert.Equal(t, warehouseID, wh.WarehouseID)
	assert.Equal(t, types.WarehouseStatusActive, wh.Status)
	assert.Equal(t, testTenantID, wh.TenantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWarehouseAlreadyExists(t *testing.T) {
	h, mock, ctx := newMockDb(t)

	// ON CONFLICT DO NOTHING returns no row on a name collision
	mock.ExpectQuery("INSERT INTO warehouses").
		WillReturnError(sql.ErrNoRows)

	wh := &models.Warehouse{
		Name:           "analytics",
		StorageProfile: storageProfile(t, `{"type": "s3"}`),
	}
	err := h.CreateWarehouse(ctx, wh)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWarehouseInvalidName(t *testing.T) {
	h, mock, ctx := newMockDb(t)

	mock.ExpectQuery("INSERT INTO warehouses").
		WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "warehouses_name_check"})

	wh := &models.Warehouse{
		Name:           "Not A Valid Name!",
		StorageProfile: storageProfile(t, `{"type": "s3"}`),
	}
	err := h.CreateWarehouse(ctx, wh)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWarehouse(t *testing.T) {
	h, mock, ctx := newMockDb(t)
	warehouseID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"warehouse_id", "name", "status", "storage_profile", "storage_secret_id", "tenant_id", "created_at", "updated_at"}).
		AddRow(warehouseID.String(), "analytics", "inactive", []byte(`{"type": "s3"}`), nil, string(testTenantID), now, now)
	mock.ExpectQuery("SELECT warehouse_id, name, status").
		WithArgs(warehouseID, string(testTenantID)).
		WillReturnRows(rows)

	wh, err := h.GetWarehouse(ctx, warehouseID)
	require.Nil(t, err)
	assert.Equal(t, warehouseID, wh.WarehouseID)
	assert.Equal(t, "analytics", wh.Name)
	assert.Equal(t, types.WarehouseStatusInactive, wh.Status)
	assert.False(t, wh.Status.IsActive())
	assert.False(t, wh.StorageSecretID.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWarehouseNotFound(t *testing.T) {
	h, mock, ctx := newMockDb(t)

	mock.ExpectQuery("SELECT warehouse_id, name, status").
		WillReturnError(sql.ErrNoRows)

	_, err := h.GetWarehouse(ctx, uuid.New())
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetWarehouseStatus(t *testing.T) {
	h, mock, ctx := newMockDb(t)
	warehouseID := uuid.New()

	mock.ExpectQuery("UPDATE warehouses").
		WithArgs(string(types.WarehouseStatusInactive), warehouseID, string(testTenantID)).
		WillReturnRows(sqlmock.NewRows([]string{"warehouse_id"}).AddRow(warehouseID.String()))

	err := h.SetWarehouseStatus(ctx, warehouseID, types.WarehouseStatusInactive)
	assert.Nil(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetWarehouseStatusInvalid(t *testing.T) {
	h, _, ctx := newMockDb(t)

	err := h.SetWarehouseStatus(ctx, uuid.New(), types.WarehouseStatus("archived"))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
}

func TestSetWarehouseStatusNotFound(t *testing.T) {
	h, mock, ctx := newMockDb(t)

	mock.ExpectQuery("UPDATE warehouses").
		WillReturnError(sql.ErrNoRows)

	err := h.SetWarehouseStatus(ctx, uuid.New(), types.WarehouseStatusActive)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWarehouse(t *testing.T) {
	h, mock, ctx := newMockDb(t)
	warehouseID := uuid.New()

	mock.ExpectExec("DELETE FROM warehouses").
		WithArgs(warehouseID, string(testTenantID)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := h.DeleteWarehouse(ctx, warehouseID)
	assert.Nil(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
