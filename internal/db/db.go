package db

import (
	"context"

	"github.com/glacierdata/lakecatsrv/internal/db/dbmanager"
	"github.com/glacierdata/lakecatsrv/internal/db/models"
	"github.com/glacierdata/lakecatsrv/internal/db/postgresql"
	"github.com/glacierdata/lakecatsrv/pkg/types"
	"github.com/google/uuid"
	"github.com/mugiliam/common/apperrors"
	"github.com/rs/zerolog/log"
)

// DB_ is an interface for the database connection. It wraps the underlying sql.Conn interface while
// adding the ability to manage scopes.
type DB_ interface {
	// Tenant
	CreateTenant(ctx context.Context, tenantID types.TenantId) error
	GetTenant(ctx context.Context, tenantID types.TenantId) (*models.Tenant, error)
	DeleteTenant(ctx context.Context, tenantID types.TenantId) error

	// Warehouse directory
	CreateWarehouse(ctx context.Context, warehouse *models.Warehouse) apperrors.Error
	GetWarehouse(ctx context.Context, warehouseID uuid.UUID) (*models.Warehouse, apperrors.Error)
	GetWarehouseByName(ctx context.Context, name string) (*models.Warehouse, apperrors.Error)
	SetWarehouseStatus(ctx context.Context, warehouseID uuid.UUID, status types.WarehouseStatus) apperrors.Error
	DeleteWarehouse(ctx context.Context, warehouseID uuid.UUID) apperrors.Error

	// Namespace directory
	CreateNamespace(ctx context.Context, namespace *models.Namespace) apperrors.Error
	GetNamespace(ctx context.Context, namespaceID uuid.UUID) (*models.Namespace, apperrors.Error)
	DeleteNamespace(ctx context.Context, namespaceID uuid.UUID) apperrors.Error

	// Table lifecycle
	CreateTable(ctx context.Context, tabular *models.Tabular, table *models.Table) apperrors.Error
	GetTable(ctx context.Context, tableID uuid.UUID) (*models.Table, apperrors.Error)
	SetTableMetadataLocation(ctx context.Context, tableID uuid.UUID, location string) apperrors.Error
	SoftDeleteTable(ctx context.Context, tableID uuid.UUID) apperrors.Error
	UndropTable(ctx context.Context, tableID uuid.UUID) apperrors.Error

	// Reference store. ReplaceTableReferences is the sole writer path to
	// table_refs; the whole batch commits or none of it does.
	ReplaceTableReferences(ctx context.Context, tableID uuid.UUID, refs []models.TableReference) apperrors.Error
	GetTableReferences(ctx context.Context, tableID uuid.UUID) ([]models.TableReference, apperrors.Error)

	// Scoped metadata read path
	LoadTables(ctx context.Context, warehouseID uuid.UUID, tableIDs []uuid.UUID, includeDeleted bool) ([]models.TableRecord, apperrors.Error)

	// Scope Management
	AddScopes(ctx context.Context, scopes map[string]string)
	DropScopes(ctx context.Context, scopes []string) error
	AddScope(ctx context.Context, scope, value string)
	DropScope(ctx context.Context, scope string) error
	DropAllScopes(ctx context.Context) error

	// Close the connection to the database.
	Close(ctx context.Context)
}

const (
	Scope_TenantId    string = "lakecat.curr_tenantid"
	Scope_WarehouseId string = "lakecat.curr_warehouseid"
)

var configuredScopes = []string{
	Scope_TenantId,
	Scope_WarehouseId,
}

var pool dbmanager.ScopedDb

func init() {
	ctx := log.Logger.WithContext(context.Background())
	pg := dbmanager.NewScopedDb(ctx, "postgresql", configuredScopes)
	if pg == nil {
		panic("unable to create db pool")
	}
	pool = pg
}

func Conn(ctx context.Context) dbmanager.ScopedConn {
	if pool != nil {
		conn, err := pool.Conn(ctx)
		if err == nil {
			return conn
		}
		log.Ctx(ctx).Error().Err(err).Msg("unable to get db connection")
	}
	return nil
}

type ctxDbKeyType string

const ctxDbKey ctxDbKeyType = "LakeCatalogDb"

func ConnCtx(ctx context.Context) context.Context {
	conn := Conn(ctx)
	return context.WithValue(ctx, ctxDbKey, conn)
}

func DB(ctx context.Context) DB_ {
	if conn, ok := ctx.Value(ctxDbKey).(dbmanager.ScopedConn); ok {
		lakeCatalogDb := postgresql.NewLakeCatalogDb(conn)
		return lakeCatalogDb
	}
	log.Ctx(ctx).Error().Msg("unable to get db connection from context")
	return nil
}
