// Package memory provides an in-process repository.StudentRepository.
// It backs local runs with STORE_DRIVER=memory and stands in for the database in tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"studentapi/internal/model"
	"studentapi/internal/repository"
)

// Store keeps documents in a map guarded by a RWMutex. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	docs map[string]model.Student
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{docs: make(map[string]model.Student)}
}

var _ repository.StudentRepository = (*Store)(nil)

// PingContext always succeeds; it lets the store back the health endpoint.
func (s *Store) PingContext(ctx context.Context) error {
	return ctx.Err()
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

func (s *Store) Get(_ context.Context, id string) (*model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &doc, nil
}

func (s *Store) Create(_ context.Context, st *model.Student) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := *st
	doc.ID = uuid.NewString()
	s.docs[doc.ID] = doc
	return &doc, nil
}

func (s *Store) Update(_ context.Context, id string, st *model.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.docs[id]
	if !ok {
		return repository.ErrNotFound
	}
	doc := st.Fields()
	doc.ID = cur.ID
	doc.CreatedAt = cur.CreatedAt
	// The caller's id may alias a reused request buffer; key by the stored copy.
	s.docs[cur.ID] = doc
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func (s *Store) Query(_ context.Context, f repository.Filter) ([]model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Student, 0, len(s.docs))
	for _, doc := range s.docs {
		if f.Universidad != "" && doc.Universidad != f.Universidad {
			continue
		}
		if f.Jornada != "" && doc.Jornada != f.Jornada {
			continue
		}
		items = append(items, doc)
	}
	return items, nil
}

func (s *Store) ListAll(ctx context.Context) ([]model.Student, error) {
	return s.Query(ctx, repository.Filter{})
}

func (s *Store) BatchCreate(_ context.Context, students []model.Student) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(students))
	for _, st := range students {
		doc := st
		doc.ID = uuid.NewString()
		s.docs[doc.ID] = doc
		ids = append(ids, doc.ID)
	}
	return ids, nil
}
