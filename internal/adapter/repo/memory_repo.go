package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/example/product-service/internal/domain"
)

// MemoryProductRepo — репозиторий в памяти для тестов и локального запуска.
type MemoryProductRepo struct {
	mu     sync.RWMutex
	store  map[int64]string
	nextID int64
}

func NewMemoryProductRepo() *MemoryProductRepo {
	return &MemoryProductRepo{store: make(map[int64]string)}
}

func (r *MemoryProductRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Product{Name: r.store[id]}.WithID(id))
	}
	return out, nil
}

func (r *MemoryProductRepo) FindByID(_ context.Context, id int64) (domain.Product, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.store[id]
	if !ok {
		return domain.Product{}, false, nil
	}
	return domain.Product{Name: name}.WithID(id), true, nil
}

func (r *MemoryProductRepo) Insert(_ context.Context, p domain.Product) (domain.Product, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.store[r.nextID] = p.Name
	return domain.Product{Name: p.Name}.WithID(r.nextID), true, nil
}

func (r *MemoryProductRepo) UpdateByID(_ context.Context, id int64, p domain.Product) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[id]; !ok {
		return false, nil
	}
	r.store[id] = p.Name
	return true, nil
}

func (r *MemoryProductRepo) DeleteByID(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[id]; !ok {
		return false, nil
	}
	delete(r.store, id)
	return true, nil
}

var _ domain.ProductRepository = (*MemoryProductRepo)(nil)
