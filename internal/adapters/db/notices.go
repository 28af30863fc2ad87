// internal/adapters/db/notices.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
)

// noticeHub routes server NOTICE messages to whichever client currently
// holds the physical connection that received them.
type noticeHub struct {
	mu     sync.Mutex
	sinks  map[*pgconn.PgConn]*noticeSink
	logger *slog.Logger
}

func newNoticeHub(logger *slog.Logger) *noticeHub {
	return &noticeHub{
		sinks:  make(map[*pgconn.PgConn]*noticeSink),
		logger: logger,
	}
}

// dispatch is installed as the pgconn OnNotice handler
func (h *noticeHub) dispatch(pc *pgconn.PgConn, n *pgconn.Notice) {
	h.mu.Lock()
	sink := h.sinks[pc]
	h.mu.Unlock()

	h.logger.Debug("postgres notice",
		slog.String("severity", n.Severity),
		slog.String("message", n.Message),
		slog.Bool("captured", sink != nil),
	)

	if sink != nil {
		sink.add(n.Message)
	}
}

func (h *noticeHub) attach(pc *pgconn.PgConn, sink *noticeSink) {
	h.mu.Lock()
	h.sinks[pc] = sink
	h.mu.Unlock()
}

func (h *noticeHub) detach(pc *pgconn.PgConn) {
	h.mu.Lock()
	delete(h.sinks, pc)
	h.mu.Unlock()
}

type noticeSink struct {
	mu       sync.Mutex
	messages []string
}

func (s *noticeSink) add(msg string) {
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
}

func (s *noticeSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

// Client is a dedicated connection checked out of the pool. NOTICE messages
// the server sends on it are collected until Release.
type Client struct {
	conn   *sql.Conn
	hub    *noticeHub
	pgConn *pgconn.PgConn
	sink   *noticeSink
}

// Connect checks out a dedicated connection with a NOTICE listener attached
func (db *Database) Connect(ctx context.Context) (*Client, error) {
	conn, err := db.sql.Conn(ctx)
	if err != nil {
		return nil, classify("connect", err)
	}

	c := &Client{conn: conn, hub: db.notices, sink: &noticeSink{}}

	// Non-pgx drivers (sqlmock in tests) have no notice channel.
	err = conn.Raw(func(driverConn any) error {
		if sc, ok := driverConn.(*stdlib.Conn); ok {
			c.pgConn = sc.Conn().PgConn()
		}
		return nil
	})
	if err != nil {
		_ = conn.Close()
		return nil, classify("connect", err)
	}

	if c.pgConn != nil {
		c.hub.attach(c.pgConn, c.sink)
	}

	return c, nil
}

// BeginTx starts a transaction on the client's connection
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return c.conn.BeginTx(ctx, opts)
}

// Notices returns the NOTICE messages received so far, in arrival order
func (c *Client) Notices() []string {
	return c.sink.snapshot()
}

// Release detaches the listener and returns the connection to the pool
func (c *Client) Release() error {
	if c.pgConn != nil {
		c.hub.detach(c.pgConn)
	}
	return c.conn.Close()
}

// WithNotices runs fn inside a transaction on a dedicated connection and
// returns every NOTICE raised while it ran. The transaction is rolled back
// if fn fails.
func (db *Database) WithNotices(ctx context.Context, fn func(tx *sql.Tx) error) ([]string, error) {
	client, err := db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := client.Release(); err != nil {
			db.logger.WarnContext(ctx, "failed to release connection", slog.Any("error", err))
		}
	}()

	tx, err := client.BeginTx(ctx, nil)
	if err != nil {
		return nil, classify("begin", err)
	}

	if err := runTx(tx, fn); err != nil {
		return nil, err
	}

	notices := client.Notices()
	if len(notices) > 0 {
		db.logger.DebugContext(ctx, "captured notices", slog.Int("count", len(notices)))
	}
	return notices, nil
}

// runTx runs fn and commits, rolling back on error or panic
func runTx(tx *sql.Tx, fn func(*sql.Tx) error) error {
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return classify("commit", fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}
