package mocks

import (
	"context"

	"studentapi/internal/model"
	"studentapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockStudentRepository struct {
	mock.Mock
}

var _ repository.StudentRepository = (*MockStudentRepository)(nil)

func (m *MockStudentRepository) Get(ctx context.Context, id string) (*model.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) Create(ctx context.Context, s *model.Student) (*model.Student, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) Update(ctx context.Context, id string, s *model.Student) error {
	args := m.Called(ctx, id, s)
	return args.Error(0)
}

func (m *MockStudentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStudentRepository) Query(ctx context.Context, f repository.Filter) ([]model.Student, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentRepository) ListAll(ctx context.Context) ([]model.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentRepository) BatchCreate(ctx context.Context, students []model.Student) ([]string, error) {
	args := m.Called(ctx, students)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
