package mocks

import (
	"context"

	"studentapi/internal/model"
	"studentapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) Create(ctx context.Context, s model.Student) (*model.Student, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentService) Get(ctx context.Context, id string) (*model.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentService) Update(ctx context.Context, id string, s model.Student) (*model.Student, error) {
	args := m.Called(ctx, id, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStudentService) List(ctx context.Context, f service.ListFilter) (*service.StudentListResult, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StudentListResult), args.Error(1)
}

func (m *MockStudentService) Import(ctx context.Context, up service.ImportUpload) (*service.ImportResult, error) {
	args := m.Called(ctx, up)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportResult), args.Error(1)
}
