// cmd/seeder/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ammerola/sizopi-be/internal/adapters/db"
	"github.com/ammerola/sizopi-be/internal/pkg/config"
	"github.com/ammerola/sizopi-be/internal/pkg/logger"
)

// Seeder loads zoo tables in foreign key order
type Seeder struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSeeder(pool *pgxpool.Pool, logger *slog.Logger) *Seeder {
	return &Seeder{pool: pool, logger: logger}
}

// insertStatement builds an insert for the given columns. Values travel as a
// single JSON object and json_populate_record casts them to the column types,
// so workbook text and built-in values share one path.
func insertStatement(table string, columns []string) string {
	cols := strings.Join(columns, ", ")
	return fmt.Sprintf(
		"INSERT INTO %s (%s) SELECT %s FROM json_populate_record(NULL::%s, $1::json) ON CONFLICT DO NOTHING",
		table, cols, cols, table,
	)
}

func sortedColumns(row seedRow) []string {
	cols := make([]string, 0, len(row))
	for c := range row {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// Reset truncates every zoo table
func (s *Seeder) Reset(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "TRUNCATE TABLE "+strings.Join(tableOrder, ", ")+" CASCADE")
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	s.logger.Warn("truncated all zoo tables")
	return nil
}

// SaveTable inserts one table's rows in a single batch. Rows that already
// exist are skipped; the number actually inserted is returned.
func (s *Seeder) SaveTable(ctx context.Context, table seedTable) (int64, error) {
	if len(table.Rows) == 0 {
		return 0, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, row := range table.Rows {
		payload, err := json.Marshal(row)
		if err != nil {
			return 0, fmt.Errorf("failed to encode %s row: %w", table.Name, err)
		}
		batch.Queue(insertStatement(table.Name, sortedColumns(row)), string(payload))
	}

	br := tx.SendBatch(ctx, batch)

	var inserted int64
	for i := range table.Rows {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			return 0, fmt.Errorf("failed to insert %s row %d: %w", table.Name, i+1, err)
		}
		inserted += tag.RowsAffected()
	}

	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("seeded table",
		slog.String("table", table.Name),
		slog.Int("rows", len(table.Rows)),
		slog.Int64("inserted", inserted))
	return inserted, nil
}

func main() {
	var (
		workbook = flag.String("workbook", "", "xlsx file with one sheet per table (built-in demo data when empty)")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun   = flag.Bool("dry-run", false, "Preview rows without modifying database")
		reset    = flag.Bool("reset", false, "Truncate all zoo tables before seeding")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "json")
	slog.SetDefault(slogger)

	tables := demoDataset()
	if *workbook != "" {
		var err error
		tables, err = LoadWorkbook(*workbook)
		if err != nil {
			slogger.Error("failed to load workbook", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slogger.Info("loaded workbook", slog.String("path", *workbook), slog.Int("tables", len(tables)))
	}

	if *dryRun {
		for _, t := range tables {
			fmt.Printf("%-30s %d rows\n", t.Name, len(t.Rows))
		}
		fmt.Println("\n[DRY RUN] No changes were made to the database")
		return
	}

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := cfg.LoadSecrets(ctx, slogger); err != nil {
		slogger.Error("failed to load secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	database, err := db.NewDatabase(ctx, cfg.DB(), slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	seeder := NewSeeder(database.Pool(), slogger)

	if *reset {
		if err := seeder.Reset(ctx); err != nil {
			slogger.Error("failed to reset tables", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	var total int64
	for _, t := range tables {
		n, err := seeder.SaveTable(ctx, t)
		if err != nil {
			slogger.Error("failed to seed table",
				slog.String("table", t.Name),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		total += n
	}

	slogger.Info("seed operation completed",
		slog.Int("tables", len(tables)),
		slog.Int64("rows_inserted", total))
}
