package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"studentapi/internal/importer"
	"studentapi/internal/model"
	"studentapi/internal/repository"
	"studentapi/internal/storage"
	"studentapi/internal/validation"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("student not found")
)

var tracer = otel.Tracer("studentapi/internal/service")

// ListFilter narrows List. Universidad and Jornada are exact matches applied by the store;
// Search is a case-insensitive substring match over nombre, apellido, correo and universidad.
type ListFilter struct {
	Universidad string
	Jornada     string
	Search      string
}

// StudentListResult is the service-level DTO for listing students.
type StudentListResult struct {
	Items []model.Student `json:"data"`
	Count int             `json:"count"`
}

// ImportUpload is one uploaded file for bulk import.
type ImportUpload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ImportResult reports a finished bulk import. Rejections are informational.
type ImportResult struct {
	Imported   int                  `json:"imported"`
	Failed     int                  `json:"failed"`
	IDs        []string             `json:"ids"`
	Rejections []importer.Rejection `json:"errors,omitempty"`
}

// ImportObserver receives the outcome of every import.
type ImportObserver interface {
	ObserveSuccess(imported, rejected int)
	ObserveRejected(rejected int)
	ObserveError()
}

type noopObserver struct{}

func (noopObserver) ObserveSuccess(int, int) {}
func (noopObserver) ObserveRejected(int)     {}
func (noopObserver) ObserveError()           {}

// StudentService defines the use cases for student records.
type StudentService interface {
	// Create validates and stores a new record stamped with the current time.
	Create(ctx context.Context, s model.Student) (*model.Student, error)

	// Get returns a single record by its ID.
	Get(ctx context.Context, id string) (*model.Student, error)

	// Update validates s and replaces every field of an existing record except id and createdAt.
	Update(ctx context.Context, id string, s model.Student) (*model.Student, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id string) error

	// List returns matching records, newest first. Records without createdAt sort last.
	List(ctx context.Context, f ListFilter) (*StudentListResult, error)

	// Import archives the upload, then runs it through the import pipeline.
	// The archived copy is removed again when the import fails.
	Import(ctx context.Context, up ImportUpload) (*ImportResult, error)
}

// Option configures the student service.
type Option func(*studentService)

// WithClock overrides the time source used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *studentService) { s.now = now }
}

// WithImportObserver registers an observer for import outcomes.
func WithImportObserver(o ImportObserver) Option {
	return func(s *studentService) { s.observer = o }
}

// studentService is a concrete implementation of StudentService.
type studentService struct {
	repo      repository.StudentRepository
	store     storage.Storage
	validator *validation.Validator
	observer  ImportObserver
	now       func() time.Time
}

// NewStudentService constructs a new StudentService.
func NewStudentService(repo repository.StudentRepository, store storage.Storage, v *validation.Validator, opts ...Option) StudentService {
	s := &studentService{
		repo:      repo,
		store:     store,
		validator: v,
		observer:  noopObserver{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *studentService) Create(ctx context.Context, in model.Student) (*model.Student, error) {
	if err := s.validator.Validate(in).Err(); err != nil {
		return nil, err
	}

	rec := in.Fields()
	rec.CreatedAt = model.FormatCreatedAt(s.now())
	created, err := s.repo.Create(ctx, &rec)
	if err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return created, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*model.Student, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	st, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return st, nil
}

func (s *studentService) Update(ctx context.Context, id string, in model.Student) (*model.Student, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := s.validator.Validate(in).Err(); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := in.Fields()
	if err := s.repo.Update(ctx, id, &fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update student: %w", err)
	}

	fields.ID = id
	fields.CreatedAt = current.CreatedAt
	return &fields, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *studentService) List(ctx context.Context, f ListFilter) (*StudentListResult, error) {
	items, err := s.repo.Query(ctx, repository.Filter{Universidad: f.Universidad, Jornada: f.Jornada})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAtMillis() > items[j].CreatedAtMillis()
	})

	if q := strings.ToLower(f.Search); q != "" {
		matched := items[:0]
		for _, st := range items {
			if matches(st, q) {
				matched = append(matched, st)
			}
		}
		items = matched
	}

	return &StudentListResult{Items: items, Count: len(items)}, nil
}

func matches(st model.Student, q string) bool {
	for _, v := range []string{st.Nombre, st.Apellido, st.Correo, st.Universidad} {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func (s *studentService) Import(ctx context.Context, up ImportUpload) (*ImportResult, error) {
	ctx, span := tracer.Start(ctx, "StudentService.Import", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	log := zerolog.Ctx(ctx)
	ext := strings.ToLower(filepath.Ext(up.Filename))
	key := filepath.ToSlash(filepath.Join("imports", uuid.NewString()+ext))
	span.SetAttributes(
		attribute.String("import.filename", up.Filename),
		attribute.Int("import.size", len(up.Content)),
	)

	if _, err := s.store.Put(ctx, key, bytes.NewReader(up.Content), storage.PutObjectOptions{
		Size:        int64(len(up.Content)),
		ContentType: up.ContentType,
		Metadata:    map[string]string{"original-filename": up.Filename},
	}); err != nil {
		s.observer.ObserveError()
		span.RecordError(err)
		span.SetStatus(codes.Error, "archive failed")
		return nil, fmt.Errorf("archive upload: %w", err)
	}

	pipeline := importer.NewPipeline(s.repo, s.validator, importer.WithClock(s.now))
	var (
		res *importer.Result
		err error
	)
	if ext == ".xlsx" {
		res, err = pipeline.ImportXLSX(ctx, up.Content)
	} else {
		res, err = pipeline.ImportCSV(ctx, up.Content)
	}

	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("archive_key", key).Msg("import archive rollback failed")
		}
		s.observeFailure(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "import failed")
		return nil, err
	}

	s.observer.ObserveSuccess(res.Imported, res.Failed)
	span.SetAttributes(
		attribute.Int("import.imported", res.Imported),
		attribute.Int("import.failed", res.Failed),
	)
	log.Info().
		Str("archive_key", key).
		Int("imported", res.Imported).
		Int("failed", res.Failed).
		Msg("students imported")

	return &ImportResult{
		Imported:   res.Imported,
		Failed:     res.Failed,
		IDs:        res.IDs,
		Rejections: res.Rejections,
	}, nil
}

func (s *studentService) observeFailure(err error) {
	var (
		noValid *importer.NoValidRowsError
		decode  *importer.DecodeError
		parse   *importer.ParseError
	)
	switch {
	case errors.As(err, &noValid):
		s.observer.ObserveRejected(len(noValid.Rejections))
	case errors.Is(err, importer.ErrEmptyInput), errors.As(err, &decode), errors.As(err, &parse):
		s.observer.ObserveRejected(0)
	default:
		s.observer.ObserveError()
	}
}
