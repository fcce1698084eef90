package dbmanager

import (
	"context"

	"github.com/rs/zerolog/log"
)

// ScopedDb is a connection pool whose connections carry session scopes
// (Postgres GUCs set via set_config) for the lifetime of a checkout.
type ScopedDb interface {
	// Conn checks out a connection pinned to one database session.
	Conn(ctx context.Context) (ScopedConn, error)
	// Stats returns the number of connection requests and returns.
	Stats() (requests, returns uint64)
}

// ScopedConn is a checked-out connection. Scopes added here are visible to
// every statement on the connection until dropped; Close resets all scopes
// before the connection goes back to the pool.
type ScopedConn interface {
	AddScopes(ctx context.Context, scopes map[string]string)
	DropScopes(ctx context.Context, scopes []string) error
	AddScope(ctx context.Context, scope, value string)
	DropScope(ctx context.Context, scope string) error
	DropAllScopes(ctx context.Context) error
	Conn() any
	Close(ctx context.Context)
}

// NewScopedDb builds the pool for the given backend. configuredScopes lists
// every GUC the catalog uses, so Close can reset them all without tracking.
func NewScopedDb(ctx context.Context, dbtype string, configuredScopes []string) ScopedDb {
	switch dbtype {
	case "postgresql":
		db, err := NewPostgresqlDb(configuredScopes)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to create PostgreSQL pool")
			return nil
		}
		return db
	}
	log.Ctx(ctx).Error().Str("dbtype", dbtype).Msg("unsupported database type")
	return nil
}
