package dbmanager

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/glacierdata/lakecatsrv/internal/config"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/rs/zerolog/log"
)

// postgresqlDb hands out connections pinned to a single session so that
// scope values set via set_config stay attached to the connection for its
// whole checkout.
type postgresqlDb struct {
	pool             *sql.DB
	configuredScopes []string
	requests         uint64
	returns          uint64
}

func NewPostgresqlDb(configuredScopes []string) (*postgresqlDb, error) {
	dbCfg := config.Config().Database
	pool, err := sql.Open("pgx", dbCfg.DSN())
	if err != nil {
		return nil, err
	}
	if dbCfg.MaxConns > 0 {
		pool.SetMaxOpenConns(dbCfg.MaxConns)
		pool.SetMaxIdleConns(dbCfg.MaxConns)
	}
	return &postgresqlDb{
		pool:             pool,
		configuredScopes: configuredScopes,
	}, nil
}

func (p *postgresqlDb) Conn(ctx context.Context) (ScopedConn, error) {
	conn, err := p.pool.Conn(ctx)
	if err != nil {
		return nil, err
	}
	atomic.AddUint64(&p.requests, 1)
	return &postgresqlConn{db: p, conn: conn}, nil
}

func (p *postgresqlDb) Stats() (requests, returns uint64) {
	return atomic.LoadUint64(&p.requests), atomic.LoadUint64(&p.returns)
}

type postgresqlConn struct {
	db   *postgresqlDb
	conn *sql.Conn
}

func (c *postgresqlConn) AddScopes(ctx context.Context, scopes map[string]string) {
	for scope, value := range scopes {
		c.AddScope(ctx, scope, value)
	}
}

func (c *postgresqlConn) AddScope(ctx context.Context, scope, value string) {
	// session-level so the scope survives across transactions on this conn
	_, err := c.conn.ExecContext(ctx, `SELECT set_config($1, $2, false);`, scope, value)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("scope", scope).Msg("failed to set scope")
	}
}

func (c *postgresqlConn) DropScope(ctx context.Context, scope string) error {
	_, err := c.conn.ExecContext(ctx, `SELECT set_config($1, '', false);`, scope)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("scope", scope).Msg("failed to drop scope")
	}
	return err
}

func (c *postgresqlConn) DropScopes(ctx context.Context, scopes []string) error {
	for _, scope := range scopes {
		if err := c.DropScope(ctx, scope); err != nil {
			return err
		}
	}
	return nil
}

func (c *postgresqlConn) DropAllScopes(ctx context.Context) error {
	return c.DropScopes(ctx, c.db.configuredScopes)
}

func (c *postgresqlConn) Conn() any {
	return c.conn
}

func (c *postgresqlConn) Close(ctx context.Context) {
	if err := c.DropAllScopes(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to reset scopes on conn return")
	}
	if err := c.conn.Close(); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to return conn to pool")
	}
	atomic.AddUint64(&c.db.returns, 1)
}
