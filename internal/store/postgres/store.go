// Package postgres implements the report store on PostgreSQL. Findings are
// kept as JSONB so the stored report round-trips byte-for-byte with the API.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/altcast/lightaudit/internal/audit"
	sharedErrors "github.com/altcast/lightaudit/internal/shared/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS audits (
	slug              TEXT PRIMARY KEY,
	id                TEXT NOT NULL,
	target_url        TEXT NOT NULL,
	status            TEXT NOT NULL,
	site_type         TEXT NOT NULL,
	industry_category TEXT NOT NULL,
	total_score       INTEGER NOT NULL,
	max_score         INTEGER NOT NULL,
	score_percentage  INTEGER NOT NULL,
	scan_duration_ms  BIGINT NOT NULL,
	page_title        TEXT NOT NULL DEFAULT '',
	generator         TEXT NOT NULL DEFAULT '',
	vulnerabilities   JSONB NOT NULL,
	completed_at      TIMESTAMPTZ NOT NULL
)`

// Store persists audit records in an audits table keyed by slug.
type Store struct {
	db *sql.DB
}

// New opens a connection with the given DSN and ensures the schema exists.
func New(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts rec keyed by slug.
func (s *Store) Save(ctx context.Context, rec *audit.Record) error {
	findings, err := json.Marshal(rec.Vulnerabilities)
	if err != nil {
		return fmt.Errorf("marshal findings: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audits (
			slug, id, target_url, status, site_type, industry_category,
			total_score, max_score, score_percentage, scan_duration_ms,
			page_title, generator, vulnerabilities, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (slug) DO UPDATE SET
			id = EXCLUDED.id,
			target_url = EXCLUDED.target_url,
			status = EXCLUDED.status,
			site_type = EXCLUDED.site_type,
			industry_category = EXCLUDED.industry_category,
			total_score = EXCLUDED.total_score,
			max_score = EXCLUDED.max_score,
			score_percentage = EXCLUDED.score_percentage,
			scan_duration_ms = EXCLUDED.scan_duration_ms,
			page_title = EXCLUDED.page_title,
			generator = EXCLUDED.generator,
			vulnerabilities = EXCLUDED.vulnerabilities,
			completed_at = EXCLUDED.completed_at`,
		rec.Slug, rec.ID, rec.TargetURL, rec.Status, rec.SiteType,
		rec.IndustryCategory, rec.TotalScore, rec.MaxScore,
		rec.ScorePercentage, rec.ScanDuration, rec.PageTitle, rec.Generator,
		findings, rec.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert audit: %w", err)
	}
	return nil
}

// GetBySlug returns the record for slug, or ErrAuditNotFound.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*audit.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT slug, id, target_url, status, site_type, industry_category,
		       total_score, max_score, score_percentage, scan_duration_ms,
		       page_title, generator, vulnerabilities, completed_at
		FROM audits WHERE slug = $1`, slug)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sharedErrors.ErrAuditNotFound
	}
	return rec, err
}

// ListRecent returns up to limit records, most recently completed first.
// A non-positive limit returns everything.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]*audit.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slug, id, target_url, status, site_type, industry_category,
		       total_score, max_score, score_percentage, scan_duration_ms,
		       page_title, generator, vulnerabilities, completed_at
		FROM audits ORDER BY completed_at DESC LIMIT CASE WHEN $1 > 0 THEN $1 END`, limit)
	if err != nil {
		return nil, fmt.Errorf("query audits: %w", err)
	}
	defer rows.Close()

	var records []*audit.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*audit.Record, error) {
	var rec audit.Record
	var findings []byte

	err := row.Scan(
		&rec.Slug, &rec.ID, &rec.TargetURL, &rec.Status, &rec.SiteType,
		&rec.IndustryCategory, &rec.TotalScore, &rec.MaxScore,
		&rec.ScorePercentage, &rec.ScanDuration, &rec.PageTitle,
		&rec.Generator, &findings, &rec.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(findings, &rec.Vulnerabilities); err != nil {
		return nil, fmt.Errorf("parse findings: %w", err)
	}
	return &rec, nil
}
