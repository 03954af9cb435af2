package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// ErrSessionClosed is returned by Session.Conn after Close.
var ErrSessionClosed = errors.New("database session closed")

// Session holds at most one pooled connection for the lifetime of a single
// request. The connection is acquired on first use and released by Close.
type Session struct {
	pool *sql.DB

	mu     sync.Mutex
	conn   *sql.Conn
	closed bool
}

func newSession(pool *sql.DB) *Session {
	return &Session{pool: pool}
}

// Conn returns the session's connection, acquiring it on the first call.
func (s *Session) Conn(ctx context.Context) (*sql.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.conn != nil {
		return s.conn, nil
	}

	conn, err := s.pool.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	s.conn = conn
	return conn, nil
}

// Acquired reports whether a connection is currently held.
func (s *Session) Acquired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

// Close returns the connection to the pool. Only the first call does work.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// SessionOpener creates request sessions; implemented by *DB.
type SessionOpener interface {
	NewSession() *Session
}

type ctxKey int

const (
	sessionKey ctxKey = iota
	txKey
)

// WithSession binds sess to ctx so queries issued with ctx use its connection.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext returns the session bound by WithSession.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*Session)
	return sess, ok && sess != nil
}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*sql.Tx)
	return tx, ok && tx != nil
}
