package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrInvalidSchema is returned when a tenant schema name does not match the
// identifier pattern. Schema names come from the tenant table, not from
// request input, but they are still validated before being interpolated
// into SET search_path.
var ErrInvalidSchema = errors.New("database: invalid schema name")

var schemaPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Session is a request-lifetime handle to the store. It pins a single pool
// connection so the search_path set for a tenant applies to every query
// issued through it. A Session must be closed on every exit path; Close
// resets the search_path and returns the connection to the pool.
type Session struct {
	conn   *pgxpool.Conn
	schema string
}

// Session acquires a connection and, when schema is non-empty, remaps the
// connection's search_path so unqualified table references resolve against
// the tenant's schema first and the shared public schema second. An empty
// schema yields a shared session against public only.
func (db *DB) Session(ctx context.Context, schema string) (*Session, error) {
	if schema != "" && !schemaPattern.MatchString(schema) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSchema, schema)
	}
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if schema != "" {
		quoted := pgx.Identifier{schema}.Sanitize()
		if _, err := conn.Exec(ctx, "SET search_path TO "+quoted+", public"); err != nil {
			conn.Release()
			return nil, err
		}
	}
	return &Session{conn: conn, schema: schema}, nil
}

// WithSession runs fn with a session bound to the given schema and
// guarantees release even when fn returns an error or panics.
func (db *DB) WithSession(ctx context.Context, schema string, fn func(*Session) error) error {
	sess, err := db.Session(ctx, schema)
	if err != nil {
		return err
	}
	defer sess.Close()
	return fn(sess)
}

// Close resets the search_path and releases the pinned connection. It is
// idempotent so it can sit in a defer next to explicit close calls. The
// reset uses a background context: the request context may already be
// cancelled, and the connection must not leak a tenant search_path back
// into the pool.
func (s *Session) Close() {
	if s.conn == nil {
		return
	}
	if s.schema != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if _, err := s.conn.Exec(ctx, "RESET search_path"); err != nil {
			// Destroy the connection rather than return it dirty.
			log.Printf("session: search_path reset failed, closing connection: %v", err)
			_ = s.conn.Conn().Close(ctx)
		}
		cancel()
	}
	s.conn.Release()
	s.conn = nil
}

// Schema reports which tenant schema this session is bound to; empty for
// shared sessions.
func (s *Session) Schema() string { return s.schema }

// Exec runs a statement through the pinned connection.
func (s *Session) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return s.conn.Exec(ctx, sql, args...)
}

// Query runs a query through the pinned connection.
func (s *Session) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return s.conn.Query(ctx, sql, args...)
}

// QueryRow runs a single-row query through the pinned connection.
func (s *Session) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.conn.QueryRow(ctx, sql, args...)
}
