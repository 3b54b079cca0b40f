package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m1shk4/HMS-AppointmentGateway/pkg/metrics"
)

// DBExecutor is the subset of *sql.DB the repositories depend on.
// Both *sql.DB and the metrics-wrapped *DB satisfy it.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB wraps *sql.DB and records query durations.
type DB struct {
	inner *sql.DB
	m     *metrics.Metrics
}

// poolStatsInterval is how often connection pool gauges are sampled.
const poolStatsInterval = 15 * time.Second

// Wrap wraps db with query-duration metrics and starts a goroutine sampling
// pool statistics until stop is closed.
func Wrap(db *sql.DB, m *metrics.Metrics, dbName string, stop <-chan struct{}) *DB {
	go collectPoolStats(db, m, dbName, stop)
	return &DB{inner: db, m: m}
}

// ExecContext implements DBExecutor.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.inner.ExecContext(ctx, query, args...)
	d.m.DBQueryDuration.WithLabelValues("exec").Observe(time.Since(start).Seconds())
	return res, err
}

// QueryContext implements DBExecutor.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.inner.QueryContext(ctx, query, args...)
	d.m.DBQueryDuration.WithLabelValues("query").Observe(time.Since(start).Seconds())
	return rows, err
}

// QueryRowContext implements DBExecutor.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.inner.QueryRowContext(ctx, query, args...)
	d.m.DBQueryDuration.WithLabelValues("query_row").Observe(time.Since(start).Seconds())
	return row
}

func collectPoolStats(db *sql.DB, m *metrics.Metrics, dbName string, stop <-chan struct{}) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			stats := db.Stats()
			m.DBPoolOpen.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
			m.DBPoolIdle.WithLabelValues(dbName).Set(float64(stats.Idle))
			m.DBPoolInUse.WithLabelValues(dbName).Set(float64(stats.InUse))
		}
	}
}
