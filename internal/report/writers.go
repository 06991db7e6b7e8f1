package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// WriteCSV emits the header row then one line per record.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteText emits label/value lines per record, blank line between records,
// total at the end.
func (t *Table) WriteText(w io.Writer) error {
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			if _, err := fmt.Fprintf(w, "%s: %s\n", col, row[i]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if t.HasTotal {
		if _, err := fmt.Fprintf(w, "Total: $%.2f\n", t.Total); err != nil {
			return err
		}
	}
	return nil
}

// WritePDF renders the same label/value lines on letter pages.
func (t *Table) WritePDF(w io.Writer) error {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(true, 72)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 14)

	line := func(s string) {
		pdf.CellFormat(0, 18, s, "", 1, "L", false, 0, "")
	}

	line(t.Title)
	line("___________________________")
	line("")
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			line(fmt.Sprintf("%s: %s", col, row[i]))
		}
		line("")
	}
	if t.HasTotal {
		line(fmt.Sprintf("Total: $%.2f", t.Total))
	}
	return pdf.Output(w)
}

// WriteXLSX emits the table as a single-sheet workbook.
func (t *Table) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := f.SetSheetRow(sheet, "A1", &t.Columns); err != nil {
		return err
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if t.HasTotal {
		cell, err := excelize.CoordinatesToCellName(1, len(t.Rows)+3)
		if err != nil {
			return err
		}
		totalRow := []interface{}{"Total", t.Total}
		if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
			return err
		}
	}
	return f.Write(w)
}
