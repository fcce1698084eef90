package postgresql

import (
	"context"
	"database/sql"

	"github.com/glacierdata/lakecatsrv/internal/db/dbmanager"
)

// sqlConn is the slice of database/sql surface the queries need. Both
// *sql.Conn (production, via the scoped pool) and *sql.DB (tests) satisfy it.
type sqlConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type lakeCatalogDb struct {
	c dbmanager.ScopedConn
}

func NewLakeCatalogDb(conn dbmanager.ScopedConn) *lakeCatalogDb {
	return &lakeCatalogDb{c: conn}
}

func (h *lakeCatalogDb) conn() sqlConn {
	return h.c.Conn().(sqlConn)
}

func (h *lakeCatalogDb) AddScopes(ctx context.Context, scopes map[string]string) {
	h.c.AddScopes(ctx, scopes)
}

func (h *lakeCatalogDb) DropScopes(ctx context.Context, scopes []string) error {
	return h.c.DropScopes(ctx, scopes)
}

func (h *lakeCatalogDb) AddScope(ctx context.Context, scope, value string) {
	h.c.AddScope(ctx, scope, value)
}

func (h *lakeCatalogDb) DropScope(ctx context.Context, scope string) error {
	return h.c.DropScope(ctx, scope)
}

func (h *lakeCatalogDb) DropAllScopes(ctx context.Context) error {
	return h.c.DropAllScopes(ctx)
}

func (h *lakeCatalogDb) Close(ctx context.Context) {
	h.c.Close(ctx)
}
