package purchase

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu        sync.RWMutex
	purchases []Purchase
}

// NewMemoryRepository builds an in-memory purchase store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, p Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases = append(r.purchases, p)
	return nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []Purchase
	for _, p := range r.purchases {
		if p.UserID == userID {
			owned = append(owned, p)
		}
	}
	return newestFirst(owned), nil
}

func (r *memoryRepository) ListAll(_ context.Context, limit int) ([]Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Purchase, len(r.purchases))
	copy(all, r.purchases)
	all = newestFirst(all)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *memoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.purchases)), nil
}

// newestFirst orders by creation timestamp descending; equal timestamps keep
// reverse insertion order, matching the seq tie-break in Postgres.
func newestFirst(purchases []Purchase) []Purchase {
	for i, j := 0, len(purchases)-1; i < j; i, j = i+1, j-1 {
		purchases[i], purchases[j] = purchases[j], purchases[i]
	}
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].CreatedAt.After(purchases[j].CreatedAt)
	})
	return purchases
}
