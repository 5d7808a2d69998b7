package reviews

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// MemoryStore is an in-memory Store used by tests as a stand-in for the
// database-backed repository. It mirrors the SQL semantics: prefix
// matching over the same four projected columns, name ordering with id
// tie-break, and a zero sum for categories without reviews.
type MemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	reviews map[int64]Review

	// CategoryName resolves a category id to its name for the join
	// projection. A nil hook or a miss renders as "Undefined".
	CategoryName func(id int64) (string, bool)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reviews: make(map[int64]Review)}
}

func (s *MemoryStore) Create(_ context.Context, review *Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	review.ID = s.nextID
	s.reviews[review.ID] = *review.Copy()
	return nil
}

func (s *MemoryStore) GetByID(_ context.Context, reviewID int64) (*Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[reviewID]
	if !ok {
		return nil, ErrNotFound
	}
	return review.Copy(), nil
}

func (s *MemoryStore) Update(_ context.Context, review *Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[review.ID]; !ok {
		return ErrNotFound
	}
	s.reviews[review.ID] = *review.Copy()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, reviewID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[reviewID]; !ok {
		return ErrNotFound
	}
	delete(s.reviews, reviewID)
	return nil
}

func (s *MemoryStore) Search(_ context.Context, filter string) ([]ReviewWithCategory, error) {
	prefix := strings.ToLower(strings.TrimSpace(filter))

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []ReviewWithCategory
	for _, review := range s.reviews {
		name := UndefinedCategoryName
		if review.CategoryID != nil && s.CategoryName != nil {
			if n, ok := s.CategoryName(*review.CategoryID); ok {
				name = n
			}
		}

		match := strings.HasPrefix(strings.ToLower(review.Name), prefix) ||
			strings.HasPrefix(strings.ToLower(name), prefix) ||
			strings.HasPrefix(strconv.Itoa(review.Score), prefix) ||
			strings.HasPrefix(strconv.Itoa(review.Count), prefix)
		if !match {
			continue
		}

		results = append(results, ReviewWithCategory{
			Review:       *review.Copy(),
			CategoryName: name,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Name != results[j].Name {
			return results[i].Name < results[j].Name
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}

func (s *MemoryStore) TotalCountByCategory(_ context.Context, categoryID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, review := range s.reviews {
		if review.CategoryID != nil && *review.CategoryID == categoryID {
			total += review.Count
		}
	}
	return total, nil
}
