package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/shampooches/GroomingBookingService/pkg/metrics"
)

// DB wraps *sql.DB and records query counters, latency histograms and
// connection-pool gauges. It satisfies DBExecutor, so repositories do not
// care whether they got the raw pool or the instrumented wrapper.
type DB struct {
	db          *sql.DB
	metrics     *metrics.Metrics
	serviceName string
}

// poolStatsInterval is how often connection-pool gauges are refreshed.
const poolStatsInterval = 10 * time.Second

// WrapWithDefault wraps the pool and starts background collection of
// connection-pool stats until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{
		db:          db,
		metrics:     m,
		serviceName: serviceName,
	}
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBConnectionsOpen.WithLabelValues().Set(float64(stats.OpenConnections))
			d.metrics.DBConnectionsIdle.WithLabelValues().Set(float64(stats.Idle))
			d.metrics.DBConnectionsInUse.WithLabelValues().Set(float64(stats.InUse))
		}
	}
}

// observe records one query execution.
func (d *DB) observe(query string, start time.Time, err error) {
	op := queryOperation(query)
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.DBQueriesTotal.WithLabelValues(op, status).Inc()
	d.metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// queryOperation extracts the leading SQL verb (select/insert/update/delete).
func queryOperation(query string) string {
	trimmed := strings.TrimSpace(query)
	if i := strings.IndexByte(trimmed, ' '); i > 0 {
		trimmed = trimmed[:i]
	}
	return strings.ToLower(trimmed)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, nil)
	return row
}

// BeginTx starts a transaction whose statements are also instrumented.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &SqlTxWrapper{tx: tx, db: d}, nil
}

// SqlTxWrapper instruments statements executed inside a transaction.
type SqlTxWrapper struct {
	tx *sql.Tx
	db *DB
}

func (w *SqlTxWrapper) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := w.tx.ExecContext(ctx, query, args...)
	w.db.observe(query, start, err)
	return res, err
}

func (w *SqlTxWrapper) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := w.tx.QueryContext(ctx, query, args...)
	w.db.observe(query, start, err)
	return rows, err
}

func (w *SqlTxWrapper) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := w.tx.QueryRowContext(ctx, query, args...)
	w.db.observe(query, start, nil)
	return row
}

func (w *SqlTxWrapper) Commit() error {
	return w.tx.Commit()
}

func (w *SqlTxWrapper) Rollback() error {
	return w.tx.Rollback()
}
