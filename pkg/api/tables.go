package api

import (
	"encoding/json"

	hatchapi "github.com/mugiliam/hatchsrv/pkg/api"
)

// ReplaceReferencesReq moves N named references of one table to N snapshots
// with N retention documents. The three arrays are parallel and must be of
// equal length; the server treats the whole batch as one atomic unit.
type ReplaceReferencesReq struct {
	Names       []string          `json:"names"`
	SnapshotIDs []int64           `json:"snapshot_ids"`
	Retentions  []json.RawMessage `json:"retentions"`
}

func (r ReplaceReferencesReq) RequestMethod() (string, string) {
	return "POST", "/warehouses/{warehouseId}/tables/{tableId}/references"
}

func (r ReplaceReferencesReq) AuthMethod() hatchapi.AuthMethod {
	return hatchapi.AuthMethodIdToken
}

type TableReferenceRsp struct {
	Name       string          `json:"name"`
	SnapshotID int64           `json:"snapshot_id"`
	Retention  json.RawMessage `json:"retention"`
}

type GetReferencesRsp struct {
	References []TableReferenceRsp `json:"references"`
}

// LoadTablesReq fetches metadata and storage context for a batch of tables
// scoped to one warehouse. Ids that do not resolve within the warehouse are
// omitted from the response; callers reconcile against the requested set.
type LoadTablesReq struct {
	TableIDs       []string `json:"table_ids"`
	IncludeDeleted bool     `json:"include_deleted,omitempty"`
}

func (r LoadTablesReq) RequestMethod() (string, string) {
	return "POST", "/warehouses/{warehouseId}/tables/load"
}

func (r LoadTablesReq) AuthMethod() hatchapi.AuthMethod {
	return hatchapi.AuthMethodIdToken
}

type TableRecordRsp struct {
	TableID          string          `json:"table_id"`
	NamespaceID      string          `json:"namespace_id"`
	Metadata         json.RawMessage `json:"metadata"`
	MetadataLocation *string         `json:"metadata_location,omitempty"`
	StorageProfile   json.RawMessage `json:"storage_profile"`
	StorageSecretID  *string         `json:"storage_secret_id,omitempty"`
}

type LoadTablesRsp struct {
	Tables []TableRecordRsp `json:"tables"`
}
