package apis

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/glacierdata/lakecatsrv/internal/db"
	"github.com/glacierdata/lakecatsrv/internal/tablemanager"
	"github.com/glacierdata/lakecatsrv/pkg/api"
	"github.com/glacierdata/lakecatsrv/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mugiliam/common/httpx"
	"sigs.k8s.io/yaml"
)

// Register a new warehouse for the current tenant. Accepts JSON or a YAML
// manifest body.
func createWarehouse(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	if r.Body == nil {
		return nil, httpx.ErrInvalidRequest()
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, httpx.ErrUnableToReadRequest()
	}

	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		body, err = yaml.YAMLToJSON(body)
		if err != nil {
			return nil, httpx.ErrInvalidRequest()
		}
	}

	var req api.CreateWarehouseReq
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, httpx.ErrInvalidRequest()
	}

	mgrReq := tablemanager.CreateWarehouseRequest{
		Name:           req.Name,
		StorageProfile: req.StorageProfile,
	}
	if req.StorageSecretID != nil {
		secretID, err := uuid.Parse(*req.StorageSecretID)
		if err != nil {
			return nil, httpx.ErrInvalidRequest()
		}
		mgrReq.StorageSecretID = &secretID
	}

	tm := tablemanager.New(db.DB(ctx))
	warehouse, appErr := tm.CreateWarehouse(ctx, mgrReq)
	if appErr != nil {
		return nil, ToHttpxError(appErr)
	}

	j, err := json.Marshal(api.CreateWarehouseRsp{
		WarehouseID: warehouse.WarehouseID.String(),
		Name:        warehouse.Name,
		Status:      string(warehouse.Status),
	})
	if err != nil {
		return nil, ToHttpxError(tablemanager.ErrTableManager.Err(err))
	}

	rsp := &httpx.Response{
		StatusCode: http.StatusCreated,
		Response:   json.RawMessage(j),
	}
	return rsp, nil
}

// Transition a warehouse between active and inactive
func setWarehouseStatus(r *http.Request) (*httpx.Response, error) {
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

	var req api.SetWarehouseStatusReq
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, httpx.ErrInvalidRequest()
	}

	tm := tablemanager.New(db.DB(ctx))
	if appErr := tm.SetWarehouseStatus(ctx, warehouseID, types.WarehouseStatus(req.Status)); appErr != nil {
		return nil, ToHttpxError(appErr)
	}

	rsp := &httpx.Response{
		StatusCode: http.StatusNoContent,
		Response:   nil,
	}
	return rsp, nil
}

// Fetch a warehouse directory entry
func getWarehouse(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	warehouseID, err := uuid.Parse(chi.URLParam(r, "warehouseId"))
	if err != nil {
		return nil, httpx.ErrInvalidRequest()
	}

	tm := tablemanager.New(db.DB(ctx))
	warehouse, appErr := tm.GetWarehouse(ctx, warehouseID)
	if appErr != nil {
		return nil, ToHttpxError(appErr)
	}

	out := api.GetWarehouseRsp{
		WarehouseID:    warehouse.WarehouseID.String(),
		Name:           warehouse.Name,
		Status:         string(warehouse.Status),
		StorageProfile: json.RawMessage(warehouse.StorageProfile.Bytes),
	}
	if warehouse.StorageSecretID.Valid {
		secretID := warehouse.StorageSecretID.UUID.String()
		out.StorageSecretID = &secretID
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
