package models

import (
	"time"

	"github.com/glacierdata/lakecatsrv/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

/*
              Column            |           Type           | Collation | Nullable |      Default
 -------------------+--------------------------+-----------+----------+--------------------
  warehouse_id      | uuid                     |           | not null | uuid_generate_v4()
  name              | character varying(128)   |           | not null |
  status            | warehouse_status         |           | not null | 'active'
  storage_profile   | jsonb                    |           | not null |
  storage_secret_id | uuid                     |           |          |
  tenant_id         | character varying(10)    |           | not null |
  created_at        | timestamp with time zone |           |          | now()
  updated_at        | timestamp with time zone |           |          | now()
 Indexes:
     "warehouses_pkey" PRIMARY KEY, btree (warehouse_id, tenant_id)
     "warehouses_name_tenant_id_key" UNIQUE CONSTRAINT, btree (name, tenant_id)
 Check constraints:
     "warehouses_name_check" CHECK (name::text ~ '^[A-Za-z0-9_-]+$'::text)
 Foreign-key constraints:
     "warehouses_tenant_id_fkey" FOREIGN KEY (tenant_id) REFERENCES tenants(tenant_id) ON DELETE CASCADE
 Referenced by:
     TABLE "namespaces" CONSTRAINT "namespaces_warehouse_id_tenant_id_fkey" FOREIGN KEY (warehouse_id, tenant_id) REFERENCES warehouses(warehouse_id, tenant_id) ON DELETE CASCADE
*/

type Warehouse struct {
	WarehouseID     uuid.UUID             `db:"warehouse_id"`
	Name            string                `db:"name"`
	Status          types.WarehouseStatus `db:"status"`
	StorageProfile  pgtype.JSONB          `db:"storage_profile"`
	StorageSecretID uuid.NullUUID         `db:"storage_secret_id"`
	TenantID        types.TenantId        `db:"tenant_id"`
	CreatedAt       time.Time             `db:"created_at"`
	UpdatedAt       time.Time             `db:"updated_at"`
}
