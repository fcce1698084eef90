// Package tablemanager is the business layer above the reference store: it
// validates caller-supplied batches, enforces the active-warehouse scope and
// dispatches single atomic storage operations.
package tablemanager

import (
	"github.com/glacierdata/lakecatsrv/internal/db"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Manager struct {
	store db.DB_
}

func New(store db.DB_) *Manager {
	return &Manager{store: store}
}
