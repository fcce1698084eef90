package api

import (
	"encoding/json"

	hatchapi "github.com/mugiliam/hatchsrv/pkg/api"
)

type CreateWarehouseReq struct {
	Name            string          `json:"name"`
	StorageProfile  json.RawMessage `json:"storage_profile"`
	StorageSecretID *string         `json:"storage_secret_id,omitempty"`
}

func (r CreateWarehouseReq) RequestMethod() (string, string) {
	return "POST", "/warehouses"
}

func (r CreateWarehouseReq) AuthMethod() hatchapi.AuthMethod {
	return hatchapi.AuthMethodIdToken
}

type CreateWarehouseRsp struct {
	WarehouseID string `json:"warehouse_id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
}

type GetWarehouseRsp struct {
	WarehouseID     string          `json:"warehouse_id"`
	Name            string          `json:"name"`
	Status          string          `json:"status"`
	StorageProfile  json.RawMessage `json:"storage_profile"`
	StorageSecretID *string         `json:"storage_secret_id,omitempty"`
}

type SetWarehouseStatusReq struct {
	Status string `json:"status"`
}

func (r SetWarehouseStatusReq) RequestMethod() (string, string) {
	return "PUT", "/warehouses/{warehouseId}/status"
}

func (r SetWarehouseStatusReq) AuthMethod() hatchapi.AuthMethod {
	return hatchapi.AuthMethodIdToken
}
