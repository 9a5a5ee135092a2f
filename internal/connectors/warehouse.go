package connectors

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-hrm/internal/config"

	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// RunRecord is the summary of one report run pushed to the analytics
// warehouse. Row data never leaves the primary store; only run metadata is
// exported.
type RunRecord struct {
	TenantID     string
	TemplateID   string
	TemplateName string
	DataSource   string
	RowCount     int
	GeneratedBy  string
	GeneratedAt  time.Time
}

// WarehouseSink receives report run summaries. Implementations must be safe
// for concurrent use.
type WarehouseSink interface {
	RecordRun(ctx context.Context, rec RunRecord) error
}

// NoopSink is used when no warehouse is configured.
type NoopSink struct{}

func (NoopSink) RecordRun(ctx context.Context, rec RunRecord) error { return nil }

// PostgresSink appends run summaries to a Postgres warehouse table.
type PostgresSink struct {
	db  *sql.DB
	log *zap.Logger
}

// NewWarehouseSink wires the sink from config. An empty WAREHOUSE_DSN
// disables the export without failing startup.
func NewWarehouseSink(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (WarehouseSink, error) {
	if cfg.WarehouseDSN == "" {
		log.Info("warehouse export disabled, no DSN configured")
		return NoopSink{}, nil
	}

	db, err := sql.Open("postgres", cfg.WarehouseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open warehouse connection: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	sink := &PostgresSink{db: db, log: log}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				return fmt.Errorf("failed to ping warehouse: %w", err)
			}
			return sink.ensureSchema(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	return sink, nil
}

func (s *PostgresSink) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS report_runs (
			id            BIGSERIAL PRIMARY KEY,
			tenant_id     TEXT NOT NULL,
			template_id   TEXT NOT NULL,
			template_name TEXT NOT NULL,
			data_source   TEXT NOT NULL,
			row_count     INTEGER NOT NULL,
			generated_by  TEXT NOT NULL,
			generated_at  TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure warehouse schema: %w", err)
	}
	return nil
}

func (s *PostgresSink) RecordRun(ctx context.Context, rec RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO report_runs
			(tenant_id, template_id, template_name, data_source, row_count, generated_by, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.TenantID, rec.TemplateID, rec.TemplateName, rec.DataSource,
		rec.RowCount, rec.GeneratedBy, rec.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record report run: %w", err)
	}
	return nil
}
