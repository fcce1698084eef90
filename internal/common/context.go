// Description: This file contains the context package which is used to set and retrieve data from the context.
package common

import (
	"context"

	"github.com/glacierdata/lakecatsrv/pkg/types"
)

// ctxTenantIdKeyType represents the key type for the tenant ID in the context.
type ctxTenantIdKeyType string

const ctxTenantIdKey ctxTenantIdKeyType = "LakeCatalogTenantId"

// ctxWarehouseIdKeyType represents the key type for the warehouse ID in the context.
type ctxWarehouseIdKeyType string

const ctxWarehouseIdKey ctxWarehouseIdKeyType = "LakeCatalogWarehouseId"

// SetTenantIdInContext sets the tenant ID in the provided context.
func SetTenantIdInContext(ctx context.Context, tenantId types.TenantId) context.Context {
	return context.WithValue(ctx, ctxTenantIdKey, tenantId)
}

// TenantIdFromContext retrieves the tenant ID from the provided context.
func TenantIdFromContext(ctx context.Context) types.TenantId {
	if tenantId, ok := ctx.Value(ctxTenantIdKey).(types.TenantId); ok {
		return tenantId
	}
	return ""
}

// SetWarehouseIdInContext sets the warehouse ID in the provided context.
func SetWarehouseIdInContext(ctx context.Context, warehouseId types.WarehouseId) context.Context {
	return context.WithValue(ctx, ctxWarehouseIdKey, warehouseId)
}

// WarehouseIdFromContext retrieves the warehouse ID from the provided context.
func WarehouseIdFromContext(ctx context.Context) types.WarehouseId {
	if warehouseId, ok := ctx.Value(ctxWarehouseIdKey).(types.WarehouseId); ok {
		return warehouseId
	}
	return types.WarehouseId{}
}
