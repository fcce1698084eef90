package models

import (
	"database/sql"

	"github.com/glacierdata/lakecatsrv/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

// Table pairs a tabular registry entry with its metadata document. The
// document is opaque to this layer; it is stored and returned unparsed.
type Table struct {
	TableID  uuid.UUID    `db:"table_id"`
	Metadata pgtype.JSONB `db:"metadata"`
}

// TableRecord is the joined row returned by LoadTables: one row per table
// that matched the warehouse scope and soft-delete filter.
type TableRecord struct {
	TableID          uuid.UUID      `db:"table_id"`
	NamespaceID      uuid.UUID      `db:"namespace_id"`
	TenantID         types.TenantId `db:"tenant_id"`
	Metadata         pgtype.JSONB   `db:"metadata"`
	MetadataLocation sql.NullString `db:"metadata_location"`
	StorageProfile   pgtype.JSONB   `db:"storage_profile"`
	StorageSecretID  uuid.NullUUID  `db:"storage_secret_id"`
}
