package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/sales_notes_service/internal/apperrors"
	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	portssvc "github.com/SscSPs/sales_notes_service/internal/core/ports/services"
	"github.com/SscSPs/sales_notes_service/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockRepo     *MockSalesNoteRepository
	mockCustomer *MockCustomerReader
	mockProduct  *MockProductReader
	mockStore    *MockArtifactStore
	service      portssvc.DocumentSvc
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockSalesNoteRepository)
	suite.mockCustomer = new(MockCustomerReader)
	suite.mockProduct = new(MockProductReader)
	suite.mockStore = new(MockArtifactStore)

	notes := services.NewSalesNoteService(suite.mockRepo, suite.mockCustomer, suite.mockProduct)
	suite.service = services.NewDocumentService(notes, suite.mockRepo, suite.mockCustomer, suite.mockProduct, suite.mockStore,
		services.WithDocumentClock(fixedClock))
}

func (suite *DocumentServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCustomer.AssertExpectations(suite.T())
	suite.mockProduct.AssertExpectations(suite.T())
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) loadExample() {
	note := noteWithStatus(3, domain.StatusIssued)
	items := []domain.SalesNoteItem{
		{ID: 1, SalesNoteID: 3, ProductID: 5, Quantity: 2, UnitPrice: decimal.RequireFromString("50"), Subtotal: decimal.RequireFromString("100")},
		{ID: 2, SalesNoteID: 3, ProductID: 5, Quantity: 1, UnitPrice: decimal.RequireFromString("50"), Subtotal: decimal.RequireFromString("50")},
	}
	suite.mockRepo.On("FindSalesNoteByID", suite.ctx, int64(3)).Return(note, nil)
	suite.mockRepo.On("FindItemsBySalesNoteID", suite.ctx, int64(3)).Return(items, nil)
}

func (suite *DocumentServiceTestSuite) TestRenderSalesNote_Success() {
	suite.loadExample()
	suite.mockCustomer.On("FindCustomerByID", suite.ctx, int64(1)).Return(&domain.Customer{ID: 1, Name: "Acme"}, nil).Once()
	// distinct products only
	suite.mockProduct.On("FindProductsByIDs", suite.ctx, []int64{5}).Return(map[int64]domain.Product{5: {ID: 5, Name: "Widget"}}, nil).Once()
	suite.mockStore.On("Save", "sales_note_3_20260309103000.pdf", mock.Anything).Return("/pdfs/sales_note_3_20260309103000.pdf", nil).Once()
	suite.mockRepo.On("UpdateSalesNoteDocumentPath", suite.ctx, int64(3), "/pdfs/sales_note_3_20260309103000.pdf", fixedNow).Return(nil).Once()

	path, err := suite.service.RenderSalesNote(suite.ctx, 3)
	suite.Require().NoError(err)
	suite.Equal("/pdfs/sales_note_3_20260309103000.pdf", path)
}

func (suite *DocumentServiceTestSuite) TestRenderSalesNote_MissingCustomer() {
	suite.loadExample()
	suite.mockCustomer.On("FindCustomerByID", suite.ctx, int64(1)).Return(nil, apperrors.NewNotFoundError("gone")).Once()

	_, err := suite.service.RenderSalesNote(suite.ctx, 3)
	suite.ErrorIs(err, apperrors.ErrReferenceNotFound)
	suite.mockStore.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestRenderSalesNote_StorageFailureKeepsOldPath() {
	suite.loadExample()
	suite.mockCustomer.On("FindCustomerByID", suite.ctx, int64(1)).Return(&domain.Customer{ID: 1}, nil).Once()
	suite.mockProduct.On("FindProductsByIDs", suite.ctx, []int64{5}).Return(map[int64]domain.Product{5: {ID: 5}}, nil).Once()
	suite.mockStore.On("Save", mock.Anything, mock.Anything).Return("", assert.AnError).Once()

	_, err := suite.service.RenderSalesNote(suite.ctx, 3)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSalesNoteDocumentPath", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestFetchSalesNoteDocument() {
	note := noteWithStatus(4, domain.StatusDraft)
	path := "/pdfs/sales_note_4_20260309103000.pdf"
	note.DocumentPath = &path
	suite.mockRepo.On("FindSalesNoteByID", suite.ctx, int64(4)).Return(note, nil).Once()
	suite.mockRepo.On("FindItemsBySalesNoteID", suite.ctx, int64(4)).Return([]domain.SalesNoteItem{}, nil).Once()
	suite.mockStore.On("Read", path).Return([]byte("%PDF-1.3"), nil).Once()

	doc, err := suite.service.FetchSalesNoteDocument(suite.ctx, 4)
	suite.Require().NoError(err)
	suite.Equal("sales_note_4.pdf", doc.FileName)
	suite.Equal(path, doc.Path)
	suite.Equal([]byte("%PDF-1.3"), doc.Content)
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
