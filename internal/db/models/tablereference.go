package models

import (
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

/*
 Table "public.table_refs"
    Column    |  Type                  | Collation | Nullable | Default
 ------------+------------------------+-----------+----------+---------
  table_id   | uuid                   |           | not null |
  tenant_id  | character varying(10)  |           | not null |
  name       | character varying(256) |           | not null |
  snapshot_id| bigint                 |           | not null |
  retention  | jsonb                  |           | not null |
 Indexes:
     "table_refs_pkey" PRIMARY KEY, btree (table_id, tenant_id, name)
 Foreign-key constraints:
     "table_refs_table_id_tenant_id_fkey" FOREIGN KEY (table_id, tenant_id) REFERENCES tables(table_id, tenant_id) ON DELETE CASCADE
*/

// TableReference is a named pointer (branch or tag) to a snapshot within one
// table. At most one row exists per (table_id, name); the retention document
// is opaque and interpreted by external maintenance logic only.
type TableReference struct {
	TableID    uuid.UUID    `db:"table_id"`
	Name       string       `db:"name"`
	SnapshotID int64        `db:"snapshot_id"`
	Retention  pgtype.JSONB `db:"retention"`
}
