package catalog

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-process Repository, primarily for tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	records map[string]Record
	now     func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		records: make(map[string]Record),
		now:     time.Now,
	}
}

func (r *MemoryRepo) GetByExternalID(_ context.Context, externalID string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[externalID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *MemoryRepo) Upsert(_ context.Context, rec *Record) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	existing, ok := r.records[rec.ExternalID]
	if !ok {
		stored := *rec
		stored.CreatedAt = now
		stored.UpdatedAt = now
		r.records[stored.ExternalID] = stored
		return stored, nil
	}

	merged := mergeRecord(existing, *rec)
	merged.UpdatedAt = now
	r.records[merged.ExternalID] = merged
	return merged, nil
}

// mergeRecord overwrites every mutable field of the stored record with
// the freshly fetched one. The external id and creation timestamp stay
// with the stored record.
func mergeRecord(stored, fetched Record) Record {
	fetched.ExternalID = stored.ExternalID
	fetched.CreatedAt = stored.CreatedAt
	fetched.UpdatedAt = stored.UpdatedAt
	return fetched
}
