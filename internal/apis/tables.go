package apis

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/glacierdata/lakecatsrv/internal/db"
	"github.com/glacierdata/lakecatsrv/internal/tablemanager"
	"github.com/glacierdata/lakecatsrv/pkg/api"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mugiliam/common/httpx"
)

// Resolve metadata and storage context for a batch of tables in one warehouse
func loadTables(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	if r.Body == nil {
		return nil, httpx.ErrInvalidRequest()
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, httpx.ErrUnableToReadRequest()
	}

	warehouseID, err := uuid.Parse(chi.URLParam(r, "warehouseId"))
	if err != nil {
		return nil, httpx.ErrInvalidRequest()
	}

	var req api.LoadTablesReq
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, httpx.ErrInvalidRequest()
	}

	tableIDs := make([]uuid.UUID, 0, len(req.TableIDs))
	for _, id := range req.TableIDs {
		tableID, err := uuid.Parse(id)
		if err != nil {
			return nil, httpx.ErrInvalidRequest()
		}
		tableIDs = append(tableIDs, tableID)
	}

	tm := tablemanager.New(db.DB(ctx))
	records, appErr := tm.ReadTables(ctx, tablemanager.ReadTablesRequest{
		WarehouseID:    warehouseID,
		TableIDs:       tableIDs,
		IncludeDeleted: req.IncludeDeleted,
	})
	if appErr != nil {
		return nil, ToHttpxError(appErr)
	}

	out := api.LoadTablesRsp{Tables: make([]api.TableRecordRsp, 0, len(records))}
	for _, rec := range records {
		tr := api.TableRecordRsp{
			TableID:          rec.TableID.String(),
			NamespaceID:      rec.NamespaceID.String(),
			Metadata:         rec.Metadata,
			MetadataLocation: rec.MetadataLocation,
			StorageProfile:   rec.StorageProfile,
		}
		if rec.StorageSecretID != nil {
			secretID := rec.StorageSecretID.String()
			tr.StorageSecretID = &secretID
		}
		out.Tables = append(out.Tables, tr)
	}

	j, err := json.Marshal(out)
	if err != nil {
		return nil, ToHttpxError(tablemanager.ErrTableManager.Err(err))
	}

	rsp := &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   json.RawMessage(j),
	}
	return rsp, nil
}
