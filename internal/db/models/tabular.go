package models

import (
	"database/sql"

	"github.com/glacierdata/lakecatsrv/pkg/types"
	"github.com/google/uuid"
)

/*
 Table "public.tabulars"
       Column       |           Type           | Collation | Nullable | Default
 ------------------+--------------------------+-----------+----------+---------
  tabular_id       | uuid                     |           | not null |
  name             | character varying(128)   |           | not null |
  typ              | tabular_type             |           | not null | 'table'
  namespace_id     | uuid                     |           | not null |
  tenant_id        | character varying(10)    |           | not null |
  metadata_location| text                     |           |          |
  deleted_at       | timestamp with time zone |           |          |
  created_at       | timestamp with time zone |           |          | now()
  updated_at       | timestamp with time zone |           |          | now()
 Indexes:
     "tabulars_pkey" PRIMARY KEY, btree (tabular_id, tenant_id)
     "tabulars_name_namespace_id_tenant_id_live_key" UNIQUE, btree (name, namespace_id, tenant_id) WHERE deleted_at IS NULL
 Foreign-key constraints:
     "tabulars_namespace_id_tenant_id_fkey" FOREIGN KEY (namespace_id, tenant_id) REFERENCES namespaces(namespace_id, tenant_id) ON DELETE CASCADE
 Referenced by:
     TABLE "tables" CONSTRAINT "tables_table_id_tenant_id_fkey" FOREIGN KEY (table_id, tenant_id) REFERENCES tabulars(tabular_id, tenant_id) ON DELETE CASCADE
*/

// Tabular is the registry entry shared by tables and views. A row is
// soft-deleted by setting deleted_at; it is never removed by this layer.
type Tabular struct {
	TabularID        uuid.UUID         `db:"tabular_id"`
	Name             string            `db:"name"`
	Type             types.TabularType `db:"typ"`
	NamespaceID      uuid.UUID         `db:"namespace_id"`
	TenantID         types.TenantId    `db:"tenant_id"`
	MetadataLocation sql.NullString    `db:"metadata_location"`
	DeletedAt        sql.NullTime      `db:"deleted_at"`
}
