package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"studentapi/internal/model"
	"studentapi/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const anaDoc = `{"nombre":"Ana","apellido":"Ruiz","telefono":"1","edad":20,"correo":"ana@x.edu","direccion":"a","universidad":"U","semestre":3,"jornada":"Diurna","sexo":"Femenino","createdAt":"2024-01-01T00:00:00.000Z"}`

func ana() model.Student {
	return model.Student{
		Nombre:      "Ana",
		Apellido:    "Ruiz",
		Telefono:    "1",
		Edad:        20,
		Correo:      "ana@x.edu",
		Direccion:   "a",
		Universidad: "U",
		Semestre:    3,
		Jornada:     "Diurna",
		Sexo:        "Femenino",
		CreatedAt:   "2024-01-01T00:00:00.000Z",
	}
}

func newRepo(t *testing.T) (*StudentPostgres, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStudentPostgres(db), mock
}

func TestStudentPostgres_Create(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()
	s := ana()
	s.ID = "ignored"

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO estudiantes (id, data) VALUES ($1, $2::jsonb)")).
		WithArgs(sqlmock.AnyArg(), anaDoc).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := repo.Create(ctx, &s)

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.NotEqual(t, "ignored", result.ID)
	assert.Equal(t, "Ana", result.Nombre)
	assert.Equal(t, s.CreatedAt, result.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentPostgres_Get(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "data"}).AddRow("test-id", []byte(anaDoc))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, data FROM estudiantes WHERE id = $1")).
			WithArgs("test-id").
			WillReturnRows(rows)

		s, err := repo.Get(ctx, "test-id")

		require.NoError(t, err)
		assert.Equal(t, "test-id", s.ID)
		assert.Equal(t, 20, s.Edad)
		assert.Equal(t, "2024-01-01T00:00:00.000Z", s.CreatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, data FROM estudiantes WHERE id = $1")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		s, err := repo.Get(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, s)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentPostgres_Update(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()
	q := regexp.QuoteMeta("UPDATE estudiantes SET data = data || $2::jsonb WHERE id = $1")

	t.Run("merges fields without createdAt", func(t *testing.T) {
		s := ana()
		mock.ExpectExec(q).
			WithArgs("test-id", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, "test-id", &s))
	})

	t.Run("not found", func(t *testing.T) {
		s := ana()
		mock.ExpectExec(q).
			WithArgs("missing", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, "missing", &s), repository.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEncodeDocument_UpdateOmitsIdentity(t *testing.T) {
	s := ana()
	s.ID = "x"

	doc, err := encodeDocument(s.Fields())

	require.NoError(t, err)
	assert.NotContains(t, doc, "createdAt")
	assert.NotContains(t, doc, `"id"`)
}

func TestStudentPostgres_Delete(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()
	q := regexp.QuoteMeta("DELETE FROM estudiantes WHERE id = $1")

	mock.ExpectExec(q).WithArgs("test-id").WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(ctx, "test-id"))

	mock.ExpectExec(q).WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), repository.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentPostgres_Query(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	t.Run("with filters", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "data"}).AddRow("a", []byte(anaDoc))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, data FROM estudiantes WHERE data @> $1::jsonb")).
			WithArgs(`{"jornada":"Diurna","universidad":"U"}`).
			WillReturnRows(rows)

		items, err := repo.Query(ctx, repository.Filter{Universidad: "U", Jornada: "Diurna"})

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "a", items[0].ID)
	})

	t.Run("no filters lists all", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "data"}).
			AddRow("a", []byte(anaDoc)).
			AddRow("b", []byte(`{"nombre":"Luis"}`))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, data FROM estudiantes")).
			WillReturnRows(rows)

		items, err := repo.Query(ctx, repository.Filter{})

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Empty(t, items[1].CreatedAt)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, data FROM estudiantes")).
			WillReturnError(errors.New("connection reset"))

		items, err := repo.ListAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentPostgres_BatchCreate(t *testing.T) {
	q := regexp.QuoteMeta("INSERT INTO estudiantes (id, data) VALUES ($1, $2::jsonb)")

	t.Run("commits all rows", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(q).WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(q).WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		ids, err := repo.BatchCreate(context.Background(), []model.Student{ana(), ana()})

		require.NoError(t, err)
		require.Len(t, ids, 2)
		assert.NotEqual(t, ids[0], ids[1])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(q).WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(q).WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		ids, err := repo.BatchCreate(context.Background(), []model.Student{ana(), ana()})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "batch insert: disk full")
		assert.Nil(t, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch", func(t *testing.T) {
		repo, mock := newRepo(t)

		ids, err := repo.BatchCreate(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
