package tablemanager

import (
	"context"

	"github.com/glacierdata/lakecatsrv/internal/common"
	"github.com/glacierdata/lakecatsrv/internal/db/dberror"
	"github.com/glacierdata/lakecatsrv/internal/db/models"
	"github.com/glacierdata/lakecatsrv/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/mugiliam/common/apperrors"
	"github.com/rs/zerolog/log"
)

// fakeStore is a hand-rolled db.DB_ stand-in. Tests set the function fields
// they care about; anything else returns zero values. The call counters let
// tests assert that validation failures never reach storage.
type fakeStore struct {
	getWarehouseFn           func(ctx context.Context, warehouseID uuid.UUID) (*models.Warehouse, apperrors.Error)
	createWarehouseFn        func(ctx context.Context, warehouse *models.Warehouse) apperrors.Error
	setWarehouseStatusFn     func(ctx context.Context, warehouseID uuid.UUID, status types.WarehouseStatus) apperrors.Error
	replaceTableReferencesFn func(ctx context.Context, tableID uuid.UUID, refs []models.TableReference) apperrors.Error
	getTableReferencesFn     func(ctx context.Context, tableID uuid.UUID) ([]models.TableReference, apperrors.Error)
	loadTablesFn             func(ctx context.Context, warehouseID uuid.UUID, tableIDs []uuid.UUID, includeDeleted bool) ([]models.TableRecord, apperrors.Error)

	replaceCalls int
	loadCalls    int
}

func (f *fakeStore) CreateTenant(ctx context.Context, tenantID types.TenantId) error { return nil }
func (f *fakeStore) GetTenant(ctx context.Context, tenantID types.TenantId) (*models.Tenant, error) {
	return nil, nil
}
func (f *fakeStore) DeleteTenant(ctx context.Context, tenantID types.TenantId) error { return nil }

func (f *fakeStore) CreateWarehouse(ctx context.Context, warehouse *models.Warehouse) apperrors.Error {
	if f.createWarehouseFn != nil {
		return f.createWarehouseFn(ctx, warehouse)
	}
	return nil
}

func (f *fakeStore) GetWarehouse(ctx context.Context, warehouseID uuid.UUID) (*models.Warehouse, apperrors.Error) {
	if f.getWarehouseFn != nil {
		return f.getWarehouseFn(ctx, warehouseID)
	}
	return nil, dberror.ErrNotFound
}

func (f *fakeStore) GetWarehouseByName(ctx context.Context, name string) (*models.Warehouse, apperrors.Error) {
	return nil, dberror.ErrNotFound
}

func (f *fakeStore) SetWarehouseStatus(ctx context.Context, warehouseID uuid.UUID, status types.WarehouseStatus) apperrors.Error {
	if f.setWarehouseStatusFn != nil {
		return f.setWarehouseStatusFn(ctx, warehouseID, status)
	}
	return nil
}

func (f *fakeStore) DeleteWarehouse(ctx context.Context, warehouseID uuid.UUID) apperrors.Error {
	return nil
}

func (f *fakeStore) CreateNamespace(ctx context.Context, namespace *models.Namespace) apperrors.Error {
	return nil
}

func (f *fakeStore) GetNamespace(ctx context.Context, namespaceID uuid.UUID) (*models.Namespace, apperrors.Error) {
	return nil, dberror.ErrNotFound
}

func (f *fakeStore) DeleteNamespace(ctx context.Context, namespaceID uuid.UUID) apperrors.Error {
	return nil
}

func (f *fakeStore) CreateTable(ctx context.Context, tabular *models.Tabular, table *models.Table) apperrors.Error {
	return nil
}

func (f *fakeStore) GetTable(ctx context.Context, tableID uuid.UUID) (*models.Table, apperrors.Error) {
	return nil, dberror.ErrNotFound
}

func (f *fakeStore) SetTableMetadataLocation(ctx context.Context, tableID uuid.UUID, location string) apperrors.Error {
	return nil
}

func (f *fakeStore) SoftDeleteTable(ctx context.Context, tableID uuid.UUID) apperrors.Error {
	return nil
}

func (f *fakeStore) UndropTable(ctx context.Context, tableID uuid.UUID) apperrors.Error {
	return nil
}

func (f *fakeStore) ReplaceTableReferences(ctx context.Context, tableID uuid.UUID, refs []models.TableReference) apperrors.Error {
	f.replaceCalls++
	if f.replaceTableReferencesFn != nil {
		return f.replaceTableReferencesFn(ctx, tableID, refs)
	}
	return nil
}

func (f *fakeStore) GetTableReferences(ctx context.Context, tableID uuid.UUID) ([]models.TableReference, apperrors.Error) {
	if f.getTableReferencesFn != nil {
		return f.getTableReferencesFn(ctx, tableID)
	}
	return nil, nil
}

func (f *fakeStore) LoadTables(ctx context.Context, warehouseID uuid.UUID, tableIDs []uuid.UUID, includeDeleted bool) ([]models.TableRecord, apperrors.Error) {
	f.loadCalls++
	if f.loadTablesFn != nil {
		return f.loadTablesFn(ctx, warehouseID, tableIDs, includeDeleted)
	}
	return nil, nil
}

func (f *fakeStore) AddScopes(ctx context.Context, scopes map[string]string) {}
func (f *fakeStore) DropScopes(ctx context.Context, scopes []string) error   { return nil }
func (f *fakeStore) AddScope(ctx context.Context, scope, value string)       {}
func (f *fakeStore) DropScope(ctx context.Context, scope string) error       { return nil }
func (f *fakeStore) DropAllScopes(ctx context.Context) error                 { return nil }
func (f *fakeStore) Close(ctx context.Context)                               {}

func testContext() context.Context {
	ctx := log.Logger.WithContext(context.Background())
	return common.SetTenantIdInContext(ctx, types.TenantId("TABCDE"))
}

// activeWarehouseStore returns a fake whose warehouse directory has one
// active warehouse under the given id.
func activeWarehouseStore(warehouseID uuid.UUID) *fakeStore {
	return &fakeStore{
		getWarehouseFn: func(ctx context.Context, id uuid.UUID) (*models.Warehouse, apperrors.Error) {
			if id != warehouseID {
				return nil, dberror.ErrNotFound
			}
			return &models.Warehouse{
				WarehouseID: warehouseID,
				Name:        "analytics",
				Status:      types.WarehouseStatusActive,
			}, nil
		},
	}
}

func inactiveWarehouseStore(warehouseID uuid.UUID) *fakeStore {
	return &fakeStore{
		getWarehouseFn: func(ctx context.Context, id uuid.UUID) (*models.Warehouse, apperrors.Error) {
			return &models.Warehouse{
				WarehouseID: warehouseID,
				Name:        "analytics",
				Status:      types.WarehouseStatusInactive,
			}, nil
		},
	}
}
