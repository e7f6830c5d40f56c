package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"studentapi/internal/model"
	"studentapi/internal/repository"
)

// StudentPostgres is a PostgreSQL implementation of repository.StudentRepository.
// Each student is one JSONB document in the estudiantes table, keyed by a UUID.
type StudentPostgres struct {
	db *sql.DB
}

// NewStudentPostgres creates a new StudentPostgres repository.
func NewStudentPostgres(db *sql.DB) *StudentPostgres {
	return &StudentPostgres{db: db}
}

var _ repository.StudentRepository = (*StudentPostgres)(nil)

// encodeDocument renders the stored document: every field except id.
func encodeDocument(s model.Student) (string, error) {
	s.ID = ""
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(b), nil
}

func decodeDocument(id string, data []byte) (model.Student, error) {
	var s model.Student
	if err := json.Unmarshal(data, &s); err != nil {
		return model.Student{}, fmt.Errorf("decode document %s: %w", id, err)
	}
	s.ID = id
	return s, nil
}

// Get fetches a single document by its ID.
func (r *StudentPostgres) Get(ctx context.Context, id string) (*model.Student, error) {
	const q = `SELECT id, data FROM estudiantes WHERE id = $1`

	var (
		gotID string
		data  []byte
	)
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&gotID, &data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	s, err := decodeDocument(gotID, data)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new document under a freshly generated ID.
func (r *StudentPostgres) Create(ctx context.Context, s *model.Student) (*model.Student, error) {
	const q = `INSERT INTO estudiantes (id, data) VALUES ($1, $2::jsonb)`

	doc, err := encodeDocument(*s)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, q, id, doc); err != nil {
		return nil, err
	}

	out := *s
	out.ID = id
	return &out, nil
}

// Update merges the mutable fields into the stored document, leaving createdAt untouched.
func (r *StudentPostgres) Update(ctx context.Context, id string, s *model.Student) error {
	const q = `UPDATE estudiantes SET data = data || $2::jsonb WHERE id = $1`

	doc, err := encodeDocument(s.Fields())
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, id, doc)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a document by ID.
func (r *StudentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM estudiantes WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Query returns documents containing every non-empty filter value (JSONB containment).
func (r *StudentPostgres) Query(ctx context.Context, f repository.Filter) ([]model.Student, error) {
	if f.Empty() {
		return r.ListAll(ctx)
	}

	const q = `SELECT id, data FROM estudiantes WHERE data @> $1::jsonb`

	match := make(map[string]string, 2)
	if f.Universidad != "" {
		match["universidad"] = f.Universidad
	}
	if f.Jornada != "" {
		match["jornada"] = f.Jornada
	}
	b, err := json.Marshal(match)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}
	return r.list(ctx, q, string(b))
}

// ListAll returns every document.
func (r *StudentPostgres) ListAll(ctx context.Context) ([]model.Student, error) {
	const q = `SELECT id, data FROM estudiantes`
	return r.list(ctx, q)
}

func (r *StudentPostgres) list(ctx context.Context, q string, args ...any) ([]model.Student, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Student, 0)
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, err
		}
		s, err := decodeDocument(id, data)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// BatchCreate inserts all documents inside one transaction.
func (r *StudentPostgres) BatchCreate(ctx context.Context, students []model.Student) ([]string, error) {
	const q = `INSERT INTO estudiantes (id, data) VALUES ($1, $2::jsonb)`

	if len(students) == 0 {
		return []string{}, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]string, 0, len(students))
	for _, s := range students {
		doc, err := encodeDocument(s)
		if err != nil {
			return nil, err
		}
		id := uuid.NewString()
		if _, err := tx.ExecContext(ctx, q, id, doc); err != nil {
			return nil, fmt.Errorf("batch insert: %w", err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}
	return ids, nil
}
