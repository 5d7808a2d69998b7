package categories

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store for tests. Its Name method plugs into
// reviews.MemoryStore.CategoryName so fakes of both entities agree on the
// join projection.
type MemoryStore struct {
	mu         sync.RWMutex
	nextID     int64
	categories map[int64]Category
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{categories: make(map[int64]Category)}
}

// Name resolves a category id for the review projection.
func (s *MemoryStore) Name(id int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	return category.Name, ok
}

func (s *MemoryStore) Create(_ context.Context, category *Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.Name == category.Name {
			return ErrConflict
		}
	}

	s.nextID++
	category.ID = s.nextID
	s.categories[category.ID] = *category
	return nil
}

func (s *MemoryStore) GetByID(_ context.Context, categoryID int64) (*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[categoryID]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

func (s *MemoryStore) List(_ context.Context) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Category, 0, len(s.categories))
	for _, category := range s.categories {
		list = append(list, category)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (s *MemoryStore) Update(_ context.Context, category *Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[category.ID]; !ok {
		return ErrNotFound
	}
	for id, existing := range s.categories {
		if id != category.ID && existing.Name == category.Name {
			return ErrConflict
		}
	}
	s.categories[category.ID] = *category
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, categoryID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[categoryID]; !ok {
		return ErrNotFound
	}
	delete(s.categories, categoryID)
	return nil
}
