// Package json implements the report store as a single JSON file holding an
// array of audit records.
package json

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/altcast/lightaudit/internal/audit"
	consts "github.com/altcast/lightaudit/internal/constants"
	sharedErrors "github.com/altcast/lightaudit/internal/shared/errors"
)

// Store is a file-backed report store. All operations load and rewrite the
// whole file under a lock; the dataset is one record per scanned site.
type Store struct {
	path string
	mu   sync.RWMutex
}

// New creates a store writing to path, ensuring the parent directory exists.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, consts.DefaultDirPerm); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Save upserts rec keyed by slug.
func (s *Store) Save(ctx context.Context, rec *audit.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range records {
		if existing.Slug == rec.Slug {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}

	return s.write(records)
}

// GetBySlug returns the record for slug, or ErrAuditNotFound.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*audit.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.Slug == slug {
			return rec, nil
		}
	}
	return nil, sharedErrors.ErrAuditNotFound
}

// ListRecent returns up to limit records, most recently completed first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]*audit.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CompletedAt.After(records[j].CompletedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// load reads the backing file. A missing file is an empty store.
func (s *Store) load() ([]*audit.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var records []*audit.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return records, nil
}

func (s *Store) write(records []*audit.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := os.WriteFile(s.path, data, consts.DefaultFilePerm); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
