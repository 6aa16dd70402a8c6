// Package pdf lays out and draws the printable sales note document with go-pdf/fpdf.
package pdf

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	"github.com/SscSPs/sales_notes_service/internal/utils"
	"github.com/go-pdf/fpdf"
)

const phonePlaceholder = "N/A"

// ItemRow is one line of the items table, already formatted for print.
type ItemRow struct {
	Product   string
	Quantity  string
	UnitPrice string
	Subtotal  string
}

// SummaryLine is a label/amount pair printed under the items table.
type SummaryLine struct {
	Label string
	Value string
}

// SalesNoteLayout is everything that ends up on the page, decoupled from drawing.
type SalesNoteLayout struct {
	Title         string
	Number        string
	Date          string
	Status        string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Rows          []ItemRow
	Summary       []SummaryLine
}

// BuildSalesNoteLayout formats a note with its items. Every item's product must be present in products.
func BuildSalesNoteLayout(note domain.SalesNote, customer domain.Customer, products map[int64]domain.Product) (SalesNoteLayout, error) {
	phone := phonePlaceholder
	if customer.Phone != nil && strings.TrimSpace(*customer.Phone) != "" {
		phone = *customer.Phone
	}

	layout := SalesNoteLayout{
		Title:         "SALES NOTE",
		Number:        "#" + note.NoteNumber,
		Date:          note.NoteDate.Format("2006-01-02"),
		Status:        strings.ToUpper(string(note.Status)),
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: phone,
		Rows:          make([]ItemRow, 0, len(note.Items)),
	}

	for _, item := range note.Items {
		product, ok := products[item.ProductID]
		if !ok {
			return SalesNoteLayout{}, fmt.Errorf("pdf: product %d missing for item %d", item.ProductID, item.ID)
		}
		layout.Rows = append(layout.Rows, ItemRow{
			Product:   product.Name,
			Quantity:  strconv.Itoa(item.Quantity),
			UnitPrice: utils.FormatMoney(item.UnitPrice),
			Subtotal:  utils.FormatMoney(item.Subtotal),
		})
	}

	layout.Summary = []SummaryLine{
		{Label: "Subtotal:", Value: utils.FormatMoney(note.Subtotal())},
		{Label: "Tax:", Value: utils.FormatMoney(note.TaxAmount)},
		{Label: "Total:", Value: utils.FormatMoney(note.TotalAmount)},
	}
	return layout, nil
}

// Render draws the layout on an A4 page and writes the PDF bytes to w.
func (l SalesNoteLayout) Render(w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(190, 10, l.Title, "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 10, tr(l.Number), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 10, "Date: "+l.Date, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 10, "Status: "+l.Status, "", 1, "R", false, 0, "")
	pdf.Ln(5)

	// customer block
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(190, 10, "Customer Information:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(190, 10, tr("Name: "+l.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 10, tr("Email: "+l.CustomerEmail), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 10, tr("Phone: "+l.CustomerPhone), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	// items table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(190, 10, "Items:", "", 1, "L", false, 0, "")
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(80, 10, "Product", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 10, "Quantity", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 10, "Unit Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 10, "Subtotal", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range l.Rows {
		pdf.CellFormat(80, 10, tr(row.Product), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 10, row.Quantity, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 10, row.UnitPrice, "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 10, row.Subtotal, "1", 1, "R", false, 0, "")
	}

	// totals, the last line printed larger
	pdf.Ln(5)
	for i, line := range l.Summary {
		size := 10.0
		if i == len(l.Summary)-1 {
			size = 12
		}
		pdf.SetFont("Helvetica", "B", size)
		pdf.CellFormat(150, 10, line.Label, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 10, line.Value, "", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: write document: %w", err)
	}
	return nil
}
