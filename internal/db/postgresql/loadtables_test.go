package postgresql

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/glacierdata/lakecatsrv/internal/db/dberror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTablesColumns() []string {
	return []string{
		"table_id", "namespace_id", "tenant_id", "metadata", "metadata_location",
		"storage_profile", "storage_secret_id",
	}
}

func TestLoadTables(t *testing.T) {
	h, mock, ctx := newMockDb(t)
	warehouseID := uuid.New()
	namespaceID := uuid.New()
	secretID := uuid.New()
	tableA := uuid.New()
	tableB := uuid.New()

	rows := sqlmock.NewRows(loadTablesColumns()).
		AddRow(tableA.String(), namespaceID.String(), string(testTenantID),
			[]byte(`{"format-version": 2}`), "s3://bucket/a/metadata.json",
			[]byte(`{"type": "s3", "bucket": "bucket"}`), secretID.String()).
		AddRow(tableB.String(), namespaceID.String(), string(testTenantID),
			[]byte(`{"format-version": 1}`), nil,
			[]byte(`{"type": "s3", "bucket": "bucket"}`), nil)
	mock.ExpectQuery(`w.status = 'active'`).
		WithArgs(warehouseID, string(testTenantID), sqlmock.AnyArg(), false).
		WillReturnRows(rows)

	recs, err := h.LoadTables(ctx, warehouseID, []uuid.UUID{tableA, tableB}, false)
	require.Nil(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, tableA, recs[0].TableID)
	assert.Equal(t, namespaceID, recs[0].NamespaceID)
	assert.Equal(t, testTenantID, recs[0].TenantID)
	assert.JSONEq(t, `{"format-version": 2}`, string(recs[0].Metadata.Bytes))
	assert.True(t, recs[0].MetadataLocation.Valid)
	assert.Equal(t, "s3://bucket/a/metadata.json", recs[0].MetadataLocation.String)
	assert.True(t, recs[0].StorageSecretID.Valid)
	assert.Equal(t, secretID, recs[0].StorageSecretID.UUID)

	// staged table: no metadata location yet, warehouse without a secret
	assert.Equal(t, tableB, recs[1].TableID)
	assert.False(t, recs[1].MetadataLocation.Valid)
	assert.False(t, recs[1].StorageSecretID.Valid)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadTablesIncludeDeleted(t *testing.T) {
	h, mock, ctx := newMockDb(t)
	warehouseID := uuid.New()
	tableID := uuid.New()

	mock.ExpectQuery(`deleted_at IS NULL OR`).
		WithArgs(warehouseID, string(testTenantID), sqlmock.AnyArg(), true).
		WillReturnRows(sqlmock.NewRows(loadTablesColumns()).
			AddRow(tableID.String(), uuid.New().String(), string(testTenantID),
				[]byte(`{}`), nil, []byte(`{"type": "file"}`), nil))

	recs, err := h.LoadTables(ctx, warehouseID, []uuid.UUID{tableID}, true)
	require.Nil(t, err)
	assert.Len(t, recs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadTablesPartialMatch(t *testing.T) {
	h, mock, ctx := newMockDb(t)
	warehouseID := uuid.New()
	known := uuid.New()
	unknown := uuid.New()

	// ids that do not match the scope are omitted, not errored
	mock.ExpectQuery(`FROM tables t`).
		WillReturnRows(sqlmock.NewRows(loadTablesColumns()).
			AddRow(known.String(), uuid.New().String(), string(testTenantID),
				[]byte(`{}`), nil, []byte(`{"type": "gcs"}`), nil))

	recs, err := h.LoadTables(ctx, warehouseID, []uuid.UUID{known, unknown}, false)
	require.Nil(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, known, recs[0].TableID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadTablesEmptyBatch(t *testing.T) {
	h, mock, ctx := newMockDb(t)

	recs, err := h.LoadTables(ctx, uuid.New(), nil, false)
	assert.Nil(t, err)
	assert.Nil(t, recs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadTablesInvalidWarehouse(t *testing.T) {
	h, _, ctx := newMockDb(t)

	_, err := h.LoadTables(ctx, uuid.Nil, []uuid.UUID{uuid.New()}, false)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
}
