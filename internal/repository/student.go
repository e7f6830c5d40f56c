package repository

import (
	"context"
	"errors"

	"studentapi/internal/model"
)

// ErrNotFound is returned when no document exists for the requested ID.
var ErrNotFound = errors.New("student not found")

// Filter holds equality filters for Query. Empty fields are not applied.
type Filter struct {
	Universidad string
	Jornada     string
}

// Empty reports whether no filter is set.
func (f Filter) Empty() bool {
	return f.Universidad == "" && f.Jornada == ""
}

// StudentRepository is the gateway to the document store holding one document per student.
// No business logic here, strictly persistence operations.
type StudentRepository interface {
	// Get returns a document by its ID or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Student, error)

	// Create stores a new document under a fresh ID and returns the stored record.
	// CreatedAt is persisted as given by the caller.
	Create(ctx context.Context, s *model.Student) (*model.Student, error)

	// Update merges the mutable fields of s into the document. ID and CreatedAt are never written.
	// Returns ErrNotFound when the document does not exist.
	Update(ctx context.Context, id string, s *model.Student) error

	// Delete removes a document. Returns ErrNotFound when the document does not exist.
	Delete(ctx context.Context, id string) error

	// Query returns every document matching all filters, in no particular order.
	Query(ctx context.Context, f Filter) ([]model.Student, error)

	// ListAll returns every document, in no particular order.
	ListAll(ctx context.Context) ([]model.Student, error)

	// BatchCreate stores all records atomically: either every document becomes visible or none does.
	// The returned IDs are in input order.
	BatchCreate(ctx context.Context, students []model.Student) ([]string, error)
}
