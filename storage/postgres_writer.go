package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"careeriq/models"
	"careeriq/utils"
)

const insertColumns = 7

// PostgresWriter persists the canonical snapshot to PostgreSQL.
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter opens a connection to PostgreSQL, waits for it to answer,
// runs schema migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(ctx context.Context, dsn string, retry utils.RetryConfig, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: open")
	}

	if err := retry.Do(ctx, "postgres ping", func() error { return db.PingContext(ctx) }); err != nil {
		_ = db.Close()
		return nil, err
	}

	return newPostgresWriter(ctx, db, logger)
}

func newPostgresWriter(ctx context.Context, db *sql.DB, logger *utils.Logger) (*PostgresWriter, error) {
	pw := &PostgresWriter{db: db, logger: logger}
	if err := pw.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "postgres: migrate")
	}
	return pw, nil
}

func (pw *PostgresWriter) migrate(ctx context.Context) error {
	_, err := pw.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS job_listings (
			id                 SERIAL PRIMARY KEY,
			snapshot_id        UUID         NOT NULL,
			job_title          TEXT         NOT NULL DEFAULT '',
			role_category      VARCHAR(32)  NOT NULL,
			canonical_location TEXT,
			experience_band    VARCHAR(8)   NOT NULL,
			skills_text        TEXT         NOT NULL DEFAULT '',
			source_dataset     VARCHAR(64)  NOT NULL DEFAULT '',
			created_at         TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_job_listings_role     ON job_listings(role_category);
		CREATE INDEX IF NOT EXISTS idx_job_listings_location ON job_listings(canonical_location);
		CREATE INDEX IF NOT EXISTS idx_job_listings_band     ON job_listings(experience_band);
	`)
	return err
}

// Write replaces the stored snapshot with listings inside one transaction.
// An empty slice still clears the table.
func (pw *PostgresWriter) Write(ctx context.Context, listings []models.CanonicalListing) error {
	snapshot := uuid.New()

	tx, err := pw.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "postgres: begin")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM job_listings"); err != nil {
		return errors.Wrap(err, "postgres: clear")
	}

	const batchSize = 50
	for i := 0; i < len(listings); i += batchSize {
		end := min(i+batchSize, len(listings))
		if err := insertBatch(ctx, tx, snapshot, listings[i:end]); err != nil {
			return errors.Wrapf(err, "postgres: insert rows %d-%d", i, end)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "postgres: commit")
	}

	pw.logger.Info("[postgres] Stored %d listings (snapshot %s)", len(listings), snapshot)
	return nil
}

func insertBatch(ctx context.Context, tx *sql.Tx, snapshot uuid.UUID, batch []models.CanonicalListing) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]any, 0, len(batch)*insertColumns)

	for idx, l := range batch {
		base := idx * insertColumns
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		valueArgs = append(valueArgs,
			snapshot.String(),
			l.JobTitle,
			string(l.RoleCategory),
			sql.NullString{String: l.CanonicalLocation, Valid: l.HasLocation()},
			string(l.ExperienceBand),
			l.SkillsText,
			l.SourceDataset,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO job_listings
			(snapshot_id, job_title, role_category, canonical_location, experience_band, skills_text, source_dataset)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := tx.ExecContext(ctx, query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchAll retrieves the stored snapshot in insertion order.
func (pw *PostgresWriter) FetchAll(ctx context.Context) ([]models.CanonicalListing, error) {
	rows, err := pw.db.QueryContext(ctx, `
		SELECT job_title, role_category, canonical_location, experience_band, skills_text, source_dataset
		FROM job_listings
		ORDER BY id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: fetch all")
	}
	defer rows.Close()

	var listings []models.CanonicalListing
	for rows.Next() {
		var (
			l        models.CanonicalListing
			role     string
			location sql.NullString
			band     string
		)
		if err := rows.Scan(&l.JobTitle, &role, &location, &band, &l.SkillsText, &l.SourceDataset); err != nil {
			return nil, errors.Wrap(err, "postgres: scan row")
		}
		l.RoleCategory = models.RoleCategory(role)
		l.CanonicalLocation = location.String
		l.Location = location.String
		l.ExperienceBand = models.ExperienceBand(band)
		l.Experience = band
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
