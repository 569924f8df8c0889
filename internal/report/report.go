// Package report renders expense listings for export.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"todo/internal/expense"
)

// Formats lists the supported export formats.
var Formats = []string{"json", "csv", "pdf"}

// Write renders expenses to w in the named format.
func Write(w io.Writer, format string, expenses []expense.Expense) error {
	switch strings.ToLower(format) {
	case "json":
		return writeJSON(w, expenses)
	case "csv":
		return writeCSV(w, expenses)
	case "pdf":
		return writePDF(w, expenses)
	default:
		return fmt.Errorf("unknown format %s", format)
	}
}

type jsonRow struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category,omitempty"`
	Date        string  `json:"date"`
}

func writeJSON(w io.Writer, expenses []expense.Expense) error {
	rows := make([]jsonRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, jsonRow{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount,
			Category:    e.Category,
			SubCategory: e.SubCategory,
			Date:        e.Date.Format(expense.DateLayout),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func writeCSV(w io.Writer, expenses []expense.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "amount", "category", "sub_category", "description"}); err != nil {
		return err
	}
	for _, e := range expenses {
		if err := cw.Write([]string{
			strconv.FormatInt(e.ID, 10),
			e.Date.Format(expense.DateLayout),
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Category,
			e.SubCategory,
			e.Description,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"ID", 12, "R"},
	{"Date", 26, "L"},
	{"Amount", 26, "R"},
	{"Category", 34, "L"},
	{"Sub-category", 34, "L"},
	{"Description", 58, "L"},
}

func writePDF(w io.Writer, expenses []expense.Expense) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Expense Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, c.align, false, 0, "")
	}
	pdf.Ln(-1)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "", 9)
	for _, e := range expenses {
		cells := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date.Format(expense.DateLayout),
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			tr(e.Category),
			tr(e.SubCategory),
			tr(e.Description),
		}
		for i, c := range pdfColumns {
			pdf.CellFormat(c.width, 6, cells[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
