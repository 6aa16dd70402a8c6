// Package memory is an in-process implementation of the repository ports. It backs the
// service when no database URL is configured and is used by the service tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/sales_notes_service/internal/apperrors"
	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_notes_service/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type Store struct {
	mu         sync.RWMutex
	notes      map[int64]domain.SalesNote
	items      map[int64][]domain.SalesNoteItem
	byNumber   map[string]int64
	customers  map[int64]domain.Customer
	products   map[int64]domain.Product
	nextNoteID int64
	nextItemID int64
}

var (
	_ portsrepo.SalesNoteRepositoryFacade = (*Store)(nil)
	_ portsrepo.CustomerReader            = (*Store)(nil)
	_ portsrepo.ProductReader             = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		notes:     make(map[int64]domain.SalesNote),
		items:     make(map[int64][]domain.SalesNoteItem),
		byNumber:  make(map[string]int64),
		customers: make(map[int64]domain.Customer),
		products:  make(map[int64]domain.Product),
	}
}

// NewRepositoryProvider exposes a single store through every repository port.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SalesNoteRepo: s,
		CustomerRepo:  s,
		ProductRepo:   s,
	}
}

// PutCustomer inserts or replaces a customer in the directory.
func (s *Store) PutCustomer(c domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

// PutProduct inserts or replaces a product in the catalog.
func (s *Store) PutProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// RemoveCustomer drops a customer from the directory.
func (s *Store) RemoveCustomer(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.customers, id)
}

// RemoveProduct drops a product from the catalog.
func (s *Store) RemoveProduct(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
}

// SeedDemoData loads a small directory and catalog for local runs without a database.
func (s *Store) SeedDemoData() {
	phone := "+1 555 0100"
	s.PutCustomer(domain.Customer{ID: 1, Name: "Acme Corporation", Email: "billing@acme.test", Phone: &phone})
	s.PutCustomer(domain.Customer{ID: 2, Name: "Globex", Email: "accounts@globex.test"})
	s.PutProduct(domain.Product{ID: 1, Name: "Widget", Price: decimal.RequireFromString("19.99")})
	s.PutProduct(domain.Product{ID: 2, Name: "Gadget", Price: decimal.RequireFromString("49.50")})
	s.PutProduct(domain.Product{ID: 5, Name: "Service Hour", Price: decimal.RequireFromString("50.00")})
}

func (s *Store) FindCustomerByID(_ context.Context, id int64) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer %d not found", id))
	}
	return &c, nil
}

func (s *Store) FindProductByID(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product %d not found", id))
	}
	return &p, nil
}

func (s *Store) FindProductsByIDs(_ context.Context, ids []int64) (map[int64]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int64]domain.Product, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

// SaveSalesNote checks every reference before touching state, so a failed save leaves nothing behind.
func (s *Store) SaveSalesNote(_ context.Context, note domain.SalesNote) (*domain.SalesNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byNumber[note.NoteNumber]; taken {
		return nil, apperrors.NewDuplicateError("note number " + note.NoteNumber + " already exists")
	}
	if _, ok := s.customers[note.CustomerID]; !ok {
		return nil, apperrors.NewReferenceNotFoundError(fmt.Sprintf("customer %d not found", note.CustomerID))
	}
	for _, item := range note.Items {
		if _, ok := s.products[item.ProductID]; !ok {
			return nil, apperrors.NewReferenceNotFoundError(fmt.Sprintf("product %d not found", item.ProductID))
		}
	}

	s.nextNoteID++
	header := note
	header.ID = s.nextNoteID
	header.Items = nil

	items := make([]domain.SalesNoteItem, len(note.Items))
	for i, item := range note.Items {
		s.nextItemID++
		item.ID = s.nextItemID
		item.SalesNoteID = header.ID
		items[i] = item
	}

	s.notes[header.ID] = header
	s.items[header.ID] = items
	s.byNumber[header.NoteNumber] = header.ID

	saved := header
	saved.Items = slices.Clone(items)
	return &saved, nil
}

func (s *Store) FindSalesNoteByID(_ context.Context, id int64) (*domain.SalesNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	note, ok := s.notes[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("sales note %d not found", id))
	}
	return &note, nil
}

func (s *Store) FindSalesNoteByNumber(_ context.Context, noteNumber string) (*domain.SalesNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byNumber[noteNumber]
	if !ok {
		return nil, apperrors.NewNotFoundError("sales note " + noteNumber + " not found")
	}
	note := s.notes[id]
	return &note, nil
}

func (s *Store) ListSalesNotes(_ context.Context, filter domain.SalesNoteFilter) ([]domain.SalesNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]domain.SalesNote, 0, len(s.notes))
	for _, note := range s.notes {
		if filter.CustomerID != nil && note.CustomerID != *filter.CustomerID {
			continue
		}
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].CreatedAt.After(notes[j].CreatedAt)
		}
		return notes[i].ID > notes[j].ID
	})

	if filter.Offset >= len(notes) {
		return []domain.SalesNote{}, nil
	}
	notes = notes[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(notes) {
		notes = notes[:filter.Limit]
	}
	return notes, nil
}

func (s *Store) FindItemsBySalesNoteID(_ context.Context, salesNoteID int64) ([]domain.SalesNoteItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := slices.Clone(s.items[salesNoteID])
	if items == nil {
		items = []domain.SalesNoteItem{}
	}
	return items, nil
}

func (s *Store) UpdateSalesNote(_ context.Context, id int64, update domain.SalesNoteUpdate, updatedAt time.Time) error {
	return s.mutate(id, updatedAt, func(note *domain.SalesNote) {
		if update.TotalAmount != nil {
			note.TotalAmount = *update.TotalAmount
		}
		if update.TaxAmount != nil {
			note.TaxAmount = *update.TaxAmount
		}
		if update.Status != nil {
			note.Status = *update.Status
		}
	})
}

func (s *Store) UpdateSalesNoteStatus(_ context.Context, id int64, status domain.SalesNoteStatus, updatedAt time.Time) error {
	return s.mutate(id, updatedAt, func(note *domain.SalesNote) {
		note.Status = status
	})
}

func (s *Store) UpdateSalesNoteDocumentPath(_ context.Context, id int64, path string, updatedAt time.Time) error {
	return s.mutate(id, updatedAt, func(note *domain.SalesNote) {
		note.DocumentPath = &path
	})
}

func (s *Store) DeleteSalesNote(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	note, ok := s.notes[id]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("sales note %d not found", id))
	}
	delete(s.items, id)
	delete(s.byNumber, note.NoteNumber)
	delete(s.notes, id)
	return nil
}

func (s *Store) mutate(id int64, updatedAt time.Time, apply func(*domain.SalesNote)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	note, ok := s.notes[id]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("sales note %d not found", id))
	}
	apply(&note)
	note.UpdatedAt = updatedAt
	s.notes[id] = note
	return nil
}
