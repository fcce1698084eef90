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

// Replace the named reference set of a table with one atomic batch
func replaceReferences(r *http.Request) (*httpx.Response, error) {
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
	tableID, err := uuid.Parse(chi.URLParam(r, "tableId"))
	if err != nil {
		return nil, httpx.ErrInvalidRequest()
	}

	var req api.ReplaceReferencesReq
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, httpx.ErrInvalidRequest()
	}

	tm := tablemanager.New(db.DB(ctx))
	appErr := tm.ReplaceReferences(ctx, tablemanager.ReplaceReferencesRequest{
		WarehouseID: warehouseID,
		TableID:     tableID,
		Names:       req.Names,
		SnapshotIDs: req.SnapshotIDs,
		Retentions:  req.Retentions,
	})
	if appErr != nil {
		return nil, ToHttpxError(appErr)
	}

	rsp := &httpx.Response{
		StatusCode: http.StatusNoContent,
		Response:   nil,
	}
	return rsp, nil
}

// List the stored references of a table
func getReferences(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	warehouseID, err := uuid.Parse(chi.URLParam(r, "warehouseId"))
	if err != nil {
		return nil, httpx.ErrInvalidRequest()
	}
	tableID, err := uuid.Parse(chi.URLParam(r, "tableId"))
	if err != nil {
		return nil, httpx.ErrInvalidRequest()
	}

	tm := tablemanager.New(db.DB(ctx))
	refs, appErr := tm.GetReferences(ctx, warehouseID, tableID)
	if appErr != nil {
		return nil, ToHttpxError(appErr)
	}

	out := api.GetReferencesRsp{References: make([]api.TableReferenceRsp, 0, len(refs))}
	for _, ref := range refs {
		out.References = append(out.References, api.TableReferenceRsp{
			Name:       ref.Name,
			SnapshotID: ref.SnapshotID,
			Retention:  json.RawMessage(ref.Retention.Bytes),
		})
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
