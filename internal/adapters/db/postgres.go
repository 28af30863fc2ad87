// internal/adapters/db/postgres.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
)

// Config holds database configuration. In Debug mode the discrete fields
// are used; otherwise URL is parsed as a connection string.
type Config struct {
	Debug              bool
	URL                string
	Host               string
	Port               string
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int32
	MinConnections     int32
	MaxConnLifetime    time.Duration
	MaxConnIdleTime    time.Duration
	HealthCheckPeriod  time.Duration
	ConnectTimeout     time.Duration
	EnableQueryLogging bool
}

// DefaultConfig returns default database configuration
func DefaultConfig() *Config {
	return &Config{
		Debug:              true,
		Host:               "localhost",
		Port:               "5432",
		User:               "sizopi",
		Password:           "sizopi_dev",
		Database:           "sizopi",
		SSLMode:            "disable",
		MaxConnections:     20,
		MinConnections:     2,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: false,
	}
}

// DSN returns the connection string for the configured mode
func (c *Config) DSN() string {
	if !c.Debug {
		return c.URL
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	port := c.Port
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, port),
		Path:   "/" + c.Database,
	}
	q := u.Query()
	q.Set("sslmode", sslMode)
	if c.ConnectTimeout > 0 {
		q.Set("connect_timeout", fmt.Sprintf("%d", int(c.ConnectTimeout.Seconds())))
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// Database owns the pgx pool and a database/sql handle drawing from it
type Database struct {
	pool    *pgxpool.Pool
	sql     *sql.DB
	config  *Config
	logger  *slog.Logger
	notices *noticeHub
}

// NewDatabase creates the connection pool. It is called once at process
// start and the result is passed to every gateway.
func NewDatabase(ctx context.Context, config *Config, logger *slog.Logger) (*Database, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if !config.Debug && config.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when DEBUG is off")
	}

	hub := newNoticeHub(logger.With(slog.String("component", "notices")))

	poolConfig, err := buildPoolConfig(config, hub, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build pool config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, classify("connect", fmt.Errorf("failed to create connection pool: %w", err))
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, classify("connect", fmt.Errorf("failed to ping database: %w", err))
	}

	db := &Database{
		pool:    pool,
		sql:     stdlib.OpenDBFromPool(pool),
		config:  config,
		logger:  logger,
		notices: hub,
	}

	logger.Info("database connection established",
		slog.String("host", poolConfig.ConnConfig.Host),
		slog.String("database", poolConfig.ConnConfig.Database),
		slog.Bool("debug", config.Debug),
		slog.Int("max_connections", int(poolConfig.MaxConns)),
	)

	return db, nil
}

// NewFromSQL wraps an existing database/sql handle. Used with sqlmock in
// tests; NOTICE capture is unavailable without a pgx pool.
func NewFromSQL(sqlDB *sql.DB, logger *slog.Logger) *Database {
	return &Database{
		sql:     sqlDB,
		config:  DefaultConfig(),
		logger:  logger,
		notices: newNoticeHub(logger),
	}
}

// buildPoolConfig creates pgxpool configuration
func buildPoolConfig(config *Config, hub *noticeHub, logger *slog.Logger) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	if config.MaxConnections > 0 {
		poolConfig.MaxConns = config.MaxConnections
	}
	if config.MinConnections > 0 {
		poolConfig.MinConns = config.MinConnections
	}
	if config.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = config.MaxConnLifetime
	}
	if config.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = config.MaxConnIdleTime
	}
	if config.HealthCheckPeriod > 0 {
		poolConfig.HealthCheckPeriod = config.HealthCheckPeriod
	}

	// The upstream certificate is never verified, whatever sslmode says.
	if tlsConfig := poolConfig.ConnConfig.TLSConfig; tlsConfig != nil {
		tlsConfig.InsecureSkipVerify = true
		tlsConfig.VerifyPeerCertificate = nil
	}
	for _, fb := range poolConfig.ConnConfig.Fallbacks {
		if fb.TLSConfig != nil {
			fb.TLSConfig.InsecureSkipVerify = true
			fb.TLSConfig.VerifyPeerCertificate = nil
		}
	}

	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
	poolConfig.ConnConfig.OnNotice = hub.dispatch

	if config.EnableQueryLogging {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   newPgxLogger(logger),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	return poolConfig, nil
}

// Pool returns the underlying pgxpool.Pool, nil for NewFromSQL handles
func (db *Database) Pool() *pgxpool.Pool {
	return db.pool
}

// SQL returns the database/sql handle the gateways run on
func (db *Database) SQL() *sql.DB {
	return db.sql
}

// Close closes all database connections
func (db *Database) Close() {
	if err := db.sql.Close(); err != nil {
		db.logger.Warn("failed to close sql handle", slog.Any("error", err))
	}
	if db.pool != nil {
		db.pool.Close()
	}
	db.logger.Info("database connections closed")
}

// Ping verifies database connectivity
func (db *Database) Ping(ctx context.Context) error {
	return classify("ping", db.sql.PingContext(ctx))
}

// Health returns database health information
func (db *Database) Health(ctx context.Context) map[string]interface{} {
	health := map[string]interface{}{"status": "healthy"}

	if db.pool != nil {
		stats := db.pool.Stat()
		health["total_connections"] = stats.TotalConns()
		health["idle_connections"] = stats.IdleConns()
		health["acquired_connections"] = stats.AcquiredConns()
		health["max_connections"] = stats.MaxConns()
	} else {
		stats := db.sql.Stats()
		health["open_connections"] = stats.OpenConnections
		health["in_use"] = stats.InUse
		health["idle"] = stats.Idle
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*2)
	defer cancel()

	var result int
	if err := db.sql.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		health["status"] = "unhealthy"
		health["error"] = err.Error()
	}

	return health
}

// Query runs a raw statement and returns its rows as column → value maps
func (db *Database) Query(ctx context.Context, query string, args ...any) (*QueryResult, error) {
	rows, err := db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		db.logger.ErrorContext(ctx, "query failed", slog.String("sql", query), slog.Any("error", err))
		return nil, classify("query", err)
	}

	out, err := scanRows(rows)
	if err != nil {
		return nil, classify("query", err)
	}

	return &QueryResult{Rows: out, RowCount: int64(len(out))}, nil
}

// Exec runs a statement that returns no rows and reports the affected count
func (db *Database) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := db.sql.ExecContext(ctx, query, args...)
	if err != nil {
		db.logger.ErrorContext(ctx, "exec failed", slog.String("sql", query), slog.Any("error", err))
		return 0, classify("exec", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, classify("exec", err)
	}
	return n, nil
}

// Transaction executes a function within a database transaction
func (db *Database) Transaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return db.TransactionWithOptions(ctx, nil, fn)
}

// TransactionWithOptions executes a function within a transaction with custom options
func (db *Database) TransactionWithOptions(ctx context.Context, opts *sql.TxOptions, fn func(*sql.Tx) error) error {
	tx, err := db.sql.BeginTx(ctx, opts)
	if err != nil {
		return classify("begin", fmt.Errorf("failed to begin transaction: %w", err))
	}
	return runTx(tx, fn)
}

// Exists checks if a query returns any row
func (db *Database) Exists(ctx context.Context, query string, args ...any) (bool, error) {
	var exists bool
	err := db.sql.QueryRowContext(ctx, "SELECT EXISTS("+query+")", args...).Scan(&exists)
	return exists, classify("exists", err)
}

// Count returns the number of rows a query produces
func (db *Database) Count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	err := db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM ("+query+") AS c", args...).Scan(&count)
	return count, classify("count", err)
}

// pgxLogger adapts slog for pgx logging
type pgxLogger struct {
	logger *slog.Logger
}

func newPgxLogger(logger *slog.Logger) *pgxLogger {
	return &pgxLogger{
		logger: logger.With(slog.String("component", "pgx")),
	}
}

func (l *pgxLogger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]interface{}) {
	attrs := make([]slog.Attr, 0, len(data))
	for k, v := range data {
		if k == "args" {
			// bound values may carry passwords
			continue
		}
		attrs = append(attrs, slog.Any(k, v))
	}

	switch level {
	case tracelog.LogLevelError:
		l.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	case tracelog.LogLevelWarn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	case tracelog.LogLevelInfo:
		l.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
	default:
		l.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
	}
}

// isNoRows reports whether err means an empty single-row result
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
