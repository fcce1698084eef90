package postgresql

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/glacierdata/lakecatsrv/internal/common"
	"github.com/glacierdata/lakecatsrv/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// mockScopedConn adapts a sqlmock database to the ScopedConn interface so the
// query layer can be exercised without a live server.
type mockScopedConn struct {
	db *sql.DB
}

func (m *mockScopedConn) AddScopes(ctx context.Context, scopes map[string]string) {}
func (m *mockScopedConn) DropScopes(ctx context.Context, scopes []string) error   { return nil }
func (m *mockScopedConn) AddScope(ctx context.Context, scope, value string)       {}
func (m *mockScopedConn) DropScope(ctx context.Context, scope string) error       { return nil }
func (m *mockScopedConn) DropAllScopes(ctx context.Context) error                 { return nil }
func (m *mockScopedConn) Conn() any                                               { return m.db }
func (m *mockScopedConn) Close(ctx context.Context)                               { _ = m.db.Close() }

const testTenantID = types.TenantId("TABCDE")

func newMockDb(t *testing.T) (*lakeCatalogDb, sqlmock.Sqlmock, context.Context) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := log.Logger.WithContext(context.Background())
	ctx = common.SetTenantIdInContext(ctx, testTenantID)
	return NewLakeCatalogDb(&mockScopedConn{db: db}), mock, ctx
}
