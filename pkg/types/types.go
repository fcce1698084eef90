package types

import "github.com/google/uuid"

type TenantId string
type WarehouseId uuid.UUID

const DefaultTableReference = "main"

func (u WarehouseId) String() string {
	return uuid.UUID(u).String()
}

func (u WarehouseId) IsNil() bool {
	return u == WarehouseId(uuid.Nil)
}

// WarehouseStatus is the lifecycle state of a warehouse. Reads and reference
// writes are refused once a warehouse leaves the active state.
type WarehouseStatus string

const (
	WarehouseStatusActive   WarehouseStatus = "active"
	WarehouseStatusInactive WarehouseStatus = "inactive"
)

func (s WarehouseStatus) IsActive() bool {
	return s == WarehouseStatusActive
}

// TabularType distinguishes the entries of the tabular registry.
type TabularType string

const (
	TabularTypeTable TabularType = "table"
	TabularTypeView  TabularType = "view"
)

type Nullable interface {
	IsNil() bool
}
