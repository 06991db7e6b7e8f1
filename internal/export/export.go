// Package export turns a report table into a downloadable HTTP response.
package export

import (
	"bytes"
	"fmt"

	"rentaltracker-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Send writes the table in the requested format with attachment headers.
// Supported formats: txt, csv, pdf, xlsx.
func Send(c *fiber.Ctx, t report.Table, format, basename string) error {
	var buf bytes.Buffer
	var contentType string
	var err error

	switch format {
	case "txt":
		contentType = fiber.MIMETextPlainCharsetUTF8
		err = t.WriteText(&buf)
	case "csv":
		contentType = "text/csv"
		err = t.WriteCSV(&buf)
	case "pdf":
		contentType = "application/pdf"
		err = t.WritePDF(&buf)
	case "xlsx":
		contentType = xlsxMIME
		err = t.WriteXLSX(&buf)
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown export format")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not generate export")
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.%s"`, basename, format))
	return c.Send(buf.Bytes())
}
