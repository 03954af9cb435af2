package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"movie-api/pkg/utils"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported values for DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Row is the single-row result of QueryRow.
type Row interface {
	Scan(dest ...any) error
}

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DBIface is what repositories talk to. Queries use ? placeholders and run
// on the executor bound to ctx: the active transaction, else the request
// session's connection, else the pool.
type DBIface interface {
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
	// Insert runs an INSERT and returns the generated id column.
	Insert(ctx context.Context, query string, args ...any) (int64, error)
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	Ping(ctx context.Context) error
	Close() error
}

// DB wraps the connection pool together with its SQL dialect
type DB struct {
	pool   *sql.DB
	driver string
}

// New wraps an already opened pool.
func New(pool *sql.DB, driver string) *DB {
	return &DB{pool: pool, driver: driver}
}

// Driver returns the configured driver name
func (db *DB) Driver() string {
	return db.driver
}

// Query implements DBIface
func (db *DB) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	q, err := db.querier(ctx)
	if err != nil {
		return nil, err
	}
	return q.QueryContext(ctx, db.Rebind(query), args...)
}

// QueryRow implements DBIface
func (db *DB) QueryRow(ctx context.Context, query string, args ...any) Row {
	q, err := db.querier(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return q.QueryRowContext(ctx, db.Rebind(query), args...)
}

// Exec implements DBIface
func (db *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	q, err := db.querier(ctx)
	if err != nil {
		return nil, err
	}
	return q.ExecContext(ctx, db.Rebind(query), args...)
}

// Insert implements DBIface. PostgreSQL has no LastInsertId, so the id is
// read back through RETURNING there.
func (db *DB) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	if db.driver == DriverPostgres {
		var id int64
		if err := db.QueryRow(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// WithTx runs fn inside a transaction started on the request's connection.
// fn must use the ctx it receives. Nested calls join the outer transaction.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	var (
		tx  *sql.Tx
		err error
	)
	if sess, ok := SessionFromContext(ctx); ok {
		conn, connErr := sess.Conn(ctx)
		if connErr != nil {
			return connErr
		}
		tx, err = conn.BeginTx(ctx, nil)
	} else {
		tx, err = db.pool.BeginTx(ctx, nil)
	}
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Ping implements DBIface
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.PingContext(ctx)
}

// Close implements DBIface
func (db *DB) Close() error {
	return db.pool.Close()
}

// NewSession starts a request-scoped session on this pool.
func (db *DB) NewSession() *Session {
	return newSession(db.pool)
}

func (db *DB) querier(ctx context.Context) (Querier, error) {
	if tx, ok := txFromContext(ctx); ok {
		return tx, nil
	}
	if sess, ok := SessionFromContext(ctx); ok {
		conn, err := sess.Conn(ctx)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
	return db.pool, nil
}

// Rebind rewrites ? placeholders into the driver's native form.
func (db *DB) Rebind(query string) string {
	if db.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

// InitDB opens the configured store and verifies the connection
func InitDB(config utils.DatabaseConfig) (*DB, error) {
	var (
		pool *sql.DB
		err  error
	)

	switch config.Driver {
	case DriverSQLite, "":
		pool, err = openSQLite(config)
	case DriverPostgres:
		pool, err = openPostgres(config)
	case DriverMySQL:
		pool, err = openMySQL(config)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(int(config.MaxConns))
	pool.SetMaxIdleConns(int(config.MaxConns))
	pool.SetConnMaxLifetime(30 * time.Minute)
	pool.SetConnMaxIdleTime(5 * time.Minute)

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := pool.PingContext(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	driver := config.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	return New(pool, driver), nil
}

// SQLiteDSN builds a modernc.org/sqlite DSN. Foreign keys are only enforced
// when asked for, matching SQLite's own default. Transactions begin
// IMMEDIATE so a writer waits on busy_timeout instead of failing on upgrade.
func SQLiteDSN(path string, foreignKeys bool) string {
	fk := 0
	if foreignKeys {
		fk = 1
	}
	return fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(%d)&_txlock=immediate", path, fk)
}

func openSQLite(config utils.DatabaseConfig) (*sql.DB, error) {
	pool, err := sql.Open("sqlite", SQLiteDSN(config.Path, config.ForeignKeys))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return pool, nil
}

func openPostgres(config utils.DatabaseConfig) (*sql.DB, error) {
	port := config.Port
	if port == "" {
		port = "5432"
	}
	connStr := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable host=%s port=%s",
		config.User, config.Password, config.Name, config.Host, port)

	connConfig, err := pgx.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	connConfig.ConnectTimeout = 5 * time.Second

	return stdlib.OpenDB(*connConfig), nil
}

func openMySQL(config utils.DatabaseConfig) (*sql.DB, error) {
	port := config.Port
	if port == "" {
		port = "3306"
	}

	cfg := mysql.NewConfig()
	cfg.User = config.User
	cfg.Passwd = config.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(config.Host, port)
	cfg.DBName = config.Name
	cfg.ParseTime = true
	cfg.Timeout = 5 * time.Second

	pool, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql database: %w", err)
	}
	return pool, nil
}
