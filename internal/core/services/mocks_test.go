package services_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockSalesNoteRepository is a mock type for the SalesNoteRepositoryFacade interface
type MockSalesNoteRepository struct {
	mock.Mock
}

func (m *MockSalesNoteRepository) FindSalesNoteByID(ctx context.Context, id int64) (*domain.SalesNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// hand out a copy so the service cannot mutate the fixture
	note := *args.Get(0).(*domain.SalesNote)
	return &note, args.Error(1)
}

func (m *MockSalesNoteRepository) FindSalesNoteByNumber(ctx context.Context, noteNumber string) (*domain.SalesNote, error) {
	args := m.Called(ctx, noteNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesNote), args.Error(1)
}

func (m *MockSalesNoteRepository) ListSalesNotes(ctx context.Context, filter domain.SalesNoteFilter) ([]domain.SalesNote, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesNote), args.Error(1)
}

func (m *MockSalesNoteRepository) FindItemsBySalesNoteID(ctx context.Context, salesNoteID int64) ([]domain.SalesNoteItem, error) {
	args := m.Called(ctx, salesNoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesNoteItem), args.Error(1)
}

func (m *MockSalesNoteRepository) SaveSalesNote(ctx context.Context, note domain.SalesNote) (*domain.SalesNote, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesNote), args.Error(1)
}

func (m *MockSalesNoteRepository) UpdateSalesNote(ctx context.Context, id int64, update domain.SalesNoteUpdate, updatedAt time.Time) error {
	args := m.Called(ctx, id, update, updatedAt)
	return args.Error(0)
}

func (m *MockSalesNoteRepository) UpdateSalesNoteStatus(ctx context.Context, id int64, status domain.SalesNoteStatus, updatedAt time.Time) error {
	args := m.Called(ctx, id, status, updatedAt)
	return args.Error(0)
}

func (m *MockSalesNoteRepository) UpdateSalesNoteDocumentPath(ctx context.Context, id int64, path string, updatedAt time.Time) error {
	args := m.Called(ctx, id, path, updatedAt)
	return args.Error(0)
}

func (m *MockSalesNoteRepository) DeleteSalesNote(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerReader is a mock type for the CustomerReader interface
type MockCustomerReader struct {
	mock.Mock
}

func (m *MockCustomerReader) FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockProductReader is a mock type for the ProductReader interface
type MockProductReader struct {
	mock.Mock
}

func (m *MockProductReader) FindProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductReader) FindProductsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Product), args.Error(1)
}

// MockArtifactStore is a mock type for the ArtifactStore interface
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) Save(fileName string, write func(io.Writer) error) (string, error) {
	args := m.Called(fileName, write)
	if err := write(io.Discard); err != nil {
		return "", err
	}
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) Read(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
