package models

import "github.com/glacierdata/lakecatsrv/pkg/types"

type Tenant struct {
	TenantID types.TenantId
}
