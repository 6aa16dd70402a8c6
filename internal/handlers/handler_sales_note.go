package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/sales_notes_service/internal/apperrors"
	portssvc "github.com/SscSPs/sales_notes_service/internal/core/ports/services"
	"github.com/SscSPs/sales_notes_service/internal/dto"
	"github.com/SscSPs/sales_notes_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// salesNoteHandler handles HTTP requests related to sales notes and their documents.
type salesNoteHandler struct {
	salesNoteService portssvc.SalesNoteSvcFacade
	documentService  portssvc.DocumentSvc
}

// newSalesNoteHandler creates a new salesNoteHandler.
func newSalesNoteHandler(ss portssvc.SalesNoteSvcFacade, ds portssvc.DocumentSvc) *salesNoteHandler {
	return &salesNoteHandler{
		salesNoteService: ss,
		documentService:  ds,
	}
}

// registerSalesNoteRoutes registers routes related to sales notes.
func registerSalesNoteRoutes(rg *gin.RouterGroup, salesNoteService portssvc.SalesNoteSvcFacade, documentService portssvc.DocumentSvc) {
	h := newSalesNoteHandler(salesNoteService, documentService)

	notes := rg.Group("/sales-notes")
	{
		notes.GET("", h.listSalesNotes)
		notes.POST("", h.createSalesNote)
		notes.GET("/by-number/:number", h.getSalesNoteByNumber)
		notes.GET("/:id", h.getSalesNote)
		notes.GET("/:id/items", h.listSalesNoteItems)
		notes.PUT("/:id", h.updateSalesNote)
		notes.DELETE("/:id", h.deleteSalesNote)
		notes.POST("/:id/generate-pdf", h.generateSalesNotePDF)
		notes.GET("/:id/pdf", h.downloadSalesNotePDF)
		notes.POST("/:id/status", h.changeSalesNoteStatus)
	}
}

// parseNoteID reads the :id path parameter; it must be a positive integer.
func parseNoteID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid sales note ID '%s'", raw)})
		return 0, false
	}
	return id, true
}

// respondError maps service errors onto HTTP statuses. Unexpected errors are logged
// and answered with a generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrReferenceNotFound):
		logger.Warn(action+": not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidState):
		logger.Warn(action+": rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn(action+": conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(action+": failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// listSalesNotes godoc
// @Summary List sales notes
// @Description Lists sales notes, most recently created first, optionally filtered by customer
// @Tags sales-notes
// @Produce  json
// @Param   offset query int false "Number of notes to skip" default(0)
// @Param   limit query int false "Maximum number of notes, 1 to 1000" default(100)
// @Param   customerID query int false "Only notes of this customer"
// @Success 200 {array} dto.SalesNoteSummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sales-notes [get]
func (h *salesNoteHandler) listSalesNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListSalesNotesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListSalesNotes", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	notes, err := h.salesNoteService.ListSalesNotes(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "List sales notes")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalesNoteResponse(notes))
}

// createSalesNote godoc
// @Summary Create a sales note
// @Description Creates a sales note together with its line items. A note number is generated.
// @Tags sales-notes
// @Accept  json
// @Produce  json
// @Param   note body dto.CreateSalesNoteRequest true "Sales note details"
// @Success 201 {object} dto.SalesNoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer or product not found"
// @Failure 409 {object} map[string]string "Note number collision"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sales-notes [post]
func (h *salesNoteHandler) createSalesNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSalesNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSalesNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("customer_id", req.CustomerID))
	logger.Info("Received request to create sales note", slog.Int("item_count", len(req.Items)))

	note, err := h.salesNoteService.CreateSalesNote(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Create sales note")
		return
	}

	logger.Info("Sales note created", slog.Int64("sales_note_id", note.ID), slog.String("note_number", note.NoteNumber))
	c.JSON(http.StatusCreated, dto.ToSalesNoteResponse(note))
}

// getSalesNoteByNumber godoc
// @Summary Get a sales note by number
// @Description Retrieves a sales note and its items by note number
// @Tags sales-notes
// @Produce  json
// @Param   number path string true "Note number, e.g. SN-2026-1A2B3C4D"
// @Success 200 {object} dto.SalesNoteResponse
// @Failure 404 {object} map[string]string "Sales note not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sales-notes/by-number/{number} [get]
func (h *salesNoteHandler) getSalesNoteByNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number := c.Param("number")

	note, found, err := h.salesNoteService.GetSalesNoteByNumber(c.Request.Context(), number)
	if err != nil {
		respondError(c, logger, err, "Get sales note by number")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Sales note with number '%s' not found", number)})
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesNoteResponse(note))
}

// getSalesNote godoc
// @Summary Get a sales note
// @Description Retrieves a sales note and its items by ID
// @Tags sales-notes
// @Produce  json
// @Param   id path int true "Sales note ID"
// @Success 200 {object} dto.SalesNoteResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Sales note not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sales-notes/{id} [get]
func (h *salesNoteHandler) getSalesNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseNoteID(c)
	if !ok {
		return
	}

	note, err := h.salesNoteService.GetSalesNote(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Get sales note")
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesNoteResponse(note))
}

// listSalesNoteItems godoc
// @Summary List the items of a sales note
// @Tags sales-notes
// @Produce  json
// @Param   id path int true "Sales note ID"
// @Success 200 {array} dto.SalesNoteItemResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Sales note not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sales-notes/{id}/items [get]
func (h *salesNoteHandler) listSalesNoteItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseNoteID(c)
	if !ok {
		return
	}

	items, err := h.salesNoteService.ListSalesNoteItems(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "List sales note items")
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesNoteItemResponses(items))
}

// updateSalesNote godoc
// @Summary Update a sales note
// @Description Updates header fields of a draft or issued note. Items are not editable.
// @Tags sales-notes
// @Accept  json
// @Produce  json
// @Param   id path int true "Sales note ID"
// @Param   note body dto.UpdateSalesNoteRequest true "Fields to update"
// @Success 200 {object} dto.SalesNoteResponse
// @Failure 400 {object} map[string]string "Invalid input or note is paid/canceled"
// @Failure 404 {object} map[string]string "Sales note not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sales-notes/{id} [put]
func (h *salesNoteHandler) updateSalesNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseNoteID(c)
	if !ok {
		return
	}

	var req dto.UpdateSalesNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSalesNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("sales_note_id", id))
	note, err := h.salesNoteService.UpdateSalesNote(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "Update sales note")
		return
	}

	logger.Info("Sales note updated")
	c.JSON(http.StatusOK, dto.ToSalesNoteResponse(note))
}

// deleteSalesNote godoc
// @Summary Delete a sales note
// @Description Deletes a note and its items. Paid notes cannot be deleted.
// @Tags sales-notes
// @Produce  json
// @Param   id path int true "Sales note ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Invalid ID or note is paid"
// @Failure 404 {object} map[string]string "Sales note not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sales-notes/{id} [delete]
func (h *salesNoteHandler) deleteSalesNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseNoteID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("sales_note_id", id))
	if err := h.salesNoteService.DeleteSalesNote(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "Delete sales note")
		return
	}

	logger.Info("Sales note deleted")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Sales note deleted successfully"})
}

// generateSalesNotePDF godoc
// @Summary Render a sales note to PDF
// @Description Renders the note, stores the PDF and records its location on the note
// @Tags sales-notes
// @Produce  json
// @Param   id path int true "Sales note ID"
// @Success 200 {object} dto.RenderSalesNoteResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Sales note, customer or product not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sales-notes/{id}/generate-pdf [post]
func (h *salesNoteHandler) generateSalesNotePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseNoteID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("sales_note_id", id))
	path, err := h.documentService.RenderSalesNote(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Render sales note")
		return
	}

	logger.Info("Sales note rendered", slog.String("pdf_path", path))
	c.JSON(http.StatusOK, dto.RenderSalesNoteResponse{PDFPath: path})
}

// downloadSalesNotePDF godoc
// @Summary Download the PDF of a sales note
// @Description Returns the most recently rendered PDF of the note
// @Tags sales-notes
// @Produce  application/pdf
// @Param   id path int true "Sales note ID"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Sales note or PDF not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sales-notes/{id}/pdf [get]
func (h *salesNoteHandler) downloadSalesNotePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseNoteID(c)
	if !ok {
		return
	}

	doc, err := h.documentService.FetchSalesNoteDocument(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger.With(slog.Int64("sales_note_id", id)), err, "Fetch sales note PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

// changeSalesNoteStatus godoc
// @Summary Change the status of a sales note
// @Description Moves a note to a new status. Paid and canceled notes cannot change status.
// @Tags sales-notes
// @Accept  json
// @Produce  json
// @Param   id path int true "Sales note ID"
// @Param   status body dto.ChangeSalesNoteStatusRequest true "New status"
// @Success 200 {object} dto.SalesNoteResponse
// @Failure 400 {object} map[string]string "Invalid status or transition not allowed"
// @Failure 404 {object} map[string]string "Sales note not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sales-notes/{id}/status [post]
func (h *salesNoteHandler) changeSalesNoteStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseNoteID(c)
	if !ok {
		return
	}

	var req dto.ChangeSalesNoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ChangeSalesNoteStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("sales_note_id", id), slog.String("status", req.Status))
	note, err := h.salesNoteService.ChangeSalesNoteStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, logger, err, "Change sales note status")
		return
	}

	logger.Info("Sales note status changed")
	c.JSON(http.StatusOK, dto.ToSalesNoteResponse(note))
}
