package runs

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database
// is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Run
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create stores a run.
func (r *MemoryRepo) Create(ctx context.Context, run Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if run.Status == "" {
		run.Status = StatusCompleted
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, run)
	return nil
}

// GetByID returns a run by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Run, error) {
	if err := ctx.Err(); err != nil {
		return Run{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.data {
		if r.data[i].ID == id {
			return r.data[i], nil
		}
	}
	return Run{}, ErrNotFound
}

// List returns runs, newest first, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	all := make([]Run, len(r.data))
	copy(all, r.data)
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []Run{}, nil
	}
	end := len(all)
	if offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
