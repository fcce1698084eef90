package models

import (
	"github.com/glacierdata/lakecatsrv/pkg/types"
	"github.com/google/uuid"
)

/*
 Table "public.namespaces"
     Column     |           Type           | Collation | Nullable | Default
 --------------+--------------------------+-----------+----------+---------
  namespace_id | uuid                     |           | not null | uuid_generate_v4()
  name         | character varying(128)   |           | not null |
  warehouse_id | uuid                     |           | not null |
  tenant_id    | character varying(10)    |           | not null |
  created_at   | timestamp with time zone |           |          | now()
 Indexes:
     "namespaces_pkey" PRIMARY KEY, btree (namespace_id, tenant_id)
     "namespaces_name_warehouse_id_tenant_id_key" UNIQUE CONSTRAINT, btree (name, warehouse_id, tenant_id)
 Check constraints:
     "namespaces_name_check" CHECK (name::text ~ '^[A-Za-z0-9_-]+$'::text)
 Foreign-key constraints:
     "namespaces_warehouse_id_tenant_id_fkey" FOREIGN KEY (warehouse_id, tenant_id) REFERENCES warehouses(warehouse_id, tenant_id) ON DELETE CASCADE
*/

type Namespace struct {
	NamespaceID uuid.UUID      `db:"namespace_id"`
	Name        string         `db:"name"`
	WarehouseID uuid.UUID      `db:"warehouse_id"`
	TenantID    types.TenantId `db:"tenant_id"`
}
