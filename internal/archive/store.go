// Package archive persists dataset summary snapshots to Postgres so load
// runs can be compared over time.
package archive

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/domain/core"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS dataset_snapshots (
	id          TEXT PRIMARY KEY,
	fingerprint TEXT NOT NULL,
	source_file TEXT NOT NULL,
	row_count   INTEGER NOT NULL,
	mean_price  DOUBLE PRECISION NOT NULL,
	max_price   DOUBLE PRECISION NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
)`

// Store wraps the snapshot table.
type Store struct {
	db *sqlx.DB
}

// Open connects to Postgres and ensures the schema exists.
func Open(ctx context.Context, url string) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, errors.Wrap(errors.DatabaseError(err.Error()), "failed to connect to archive database")
	}

	store := &Store{db: db}
	if err := store.init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewStore wraps an existing connection without running migrations.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(errors.DatabaseError(err.Error()), "failed to create snapshot table")
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts one snapshot.
func (s *Store) Save(ctx context.Context, snapshot catalog.Snapshot) error {
	query := `INSERT INTO dataset_snapshots (
		id, fingerprint, source_file, row_count, mean_price, max_price, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		snapshot.ID.String(), snapshot.Fingerprint.String(), snapshot.SourceFile,
		snapshot.RowCount, snapshot.MeanPrice, snapshot.MaxPrice, snapshot.CreatedAt.Time(),
	)
	if err != nil {
		return errors.Wrap(errors.DatabaseError(err.Error()), "failed to save snapshot")
	}
	return nil
}

// List returns the most recent snapshots, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]catalog.Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, fingerprint, source_file, row_count, mean_price, max_price, created_at
		FROM dataset_snapshots ORDER BY created_at DESC LIMIT $1`

	rows, err := s.db.QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(errors.DatabaseError(err.Error()), "failed to list snapshots")
	}
	defer rows.Close()

	var snapshots []catalog.Snapshot
	for rows.Next() {
		var (
			id, fingerprint, sourceFile string
			rowCount                    int
			meanPrice, maxPrice         float64
			createdAt                   time.Time
		)
		if err := rows.Scan(&id, &fingerprint, &sourceFile, &rowCount, &meanPrice, &maxPrice, &createdAt); err != nil {
			return nil, errors.Wrap(errors.DatabaseError(err.Error()), "failed to scan snapshot")
		}
		snapshots = append(snapshots, catalog.Snapshot{
			ID:          core.SnapshotID(id),
			Fingerprint: core.Fingerprint(fingerprint),
			SourceFile:  sourceFile,
			RowCount:    rowCount,
			MeanPrice:   meanPrice,
			MaxPrice:    maxPrice,
			CreatedAt:   core.NewTimestamp(createdAt),
		})
	}
	return snapshots, rows.Err()
}

// SnapshotOf derives a snapshot record from a loaded table and its summary.
func SnapshotOf(table *catalog.Table, summary catalog.Summary) catalog.Snapshot {
	return catalog.Snapshot{
		ID:          core.SnapshotID(core.NewID()),
		Fingerprint: table.Fingerprint,
		SourceFile:  table.SourceFile,
		RowCount:    summary.RowCount,
		MeanPrice:   summary.MeanPrice,
		MaxPrice:    summary.MaxPrice,
		CreatedAt:   core.Now(),
	}
}
