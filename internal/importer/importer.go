// Package importer turns an uploaded table into student records:
// parse, normalize and validate each row, then persist the valid ones in one atomic batch.
package importer

import (
	"context"
	"time"

	"studentapi/internal/model"
	"studentapi/internal/repository"
	"studentapi/internal/validation"
)

// headerRows is added to a zero-based data row index to get the line a person sees in a spreadsheet.
const headerRows = 2

// Rejection is a data row that failed validation and was not persisted.
type Rejection struct {
	Row    int          `json:"row"`
	Data   model.RawRow `json:"data"`
	Errors []string     `json:"errors"`
}

// Result summarizes a finished import. Rejected rows do not make the import fail.
type Result struct {
	Imported   int
	Failed     int
	IDs        []string
	Rejections []Rejection
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock overrides the base time used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// Pipeline is request-scoped and holds no mutable state; one instance can serve concurrent imports.
type Pipeline struct {
	repo      repository.StudentRepository
	validator *validation.Validator
	now       func() time.Time
}

// NewPipeline wires the pipeline to its store and validator.
func NewPipeline(repo repository.StudentRepository, v *validation.Validator, opts ...Option) *Pipeline {
	p := &Pipeline{repo: repo, validator: v, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ImportCSV imports a comma-separated upload.
func (p *Pipeline) ImportCSV(ctx context.Context, content []byte) (*Result, error) {
	rows, err := ParseCSV(content)
	if err != nil {
		return nil, err
	}
	return p.Import(ctx, rows)
}

// ImportXLSX imports the first sheet of a workbook upload.
func (p *Pipeline) ImportXLSX(ctx context.Context, content []byte) (*Result, error) {
	rows, err := ParseXLSX(content)
	if err != nil {
		return nil, err
	}
	return p.Import(ctx, rows)
}

// Import normalizes and validates every row, then writes the valid ones with BatchCreate.
// Records get createdAt = base + index milliseconds so their order survives a newest-first sort.
func (p *Pipeline) Import(ctx context.Context, rows []model.RawRow) (*Result, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	valid := make([]model.Student, 0, len(rows))
	rejections := make([]Rejection, 0)
	for i, raw := range rows {
		s := Normalize(raw)
		res := p.validator.Validate(s)
		if !res.Valid {
			rejections = append(rejections, Rejection{
				Row:    i + headerRows,
				Data:   raw,
				Errors: res.Messages(),
			})
			continue
		}
		valid = append(valid, s)
	}

	if len(valid) == 0 {
		return nil, &NoValidRowsError{Rejections: rejections}
	}

	base := p.now()
	for i := range valid {
		valid[i].CreatedAt = model.FormatCreatedAt(base.Add(time.Duration(i) * time.Millisecond))
	}

	ids, err := p.repo.BatchCreate(ctx, valid)
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	return &Result{
		Imported:   len(valid),
		Failed:     len(rejections),
		IDs:        ids,
		Rejections: rejections,
	}, nil
}
