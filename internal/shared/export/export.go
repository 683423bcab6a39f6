package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	sheetName = "Sheet1"
)

// utf8BOM makes spreadsheet apps open Arabic text as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Table struct {
	Headers []string
	Rows    [][]string
}

func (t Table) validate() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return fmt.Errorf("row %d has %d columns, expected %d", i, len(row), len(t.Headers))
		}
	}
	return nil
}

// CSV renders the table as a BOM-prefixed CSV document. Fields containing
// commas, quotes or newlines are quoted by encoding/csv.
func CSV(t Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(t.Headers); err != nil {
		return nil, err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// XLSX renders the table into a single right-to-left worksheet.
func XLSX(t Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	rtl := true
	if err := f.SetSheetView(sheetName, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return nil, err
	}

	if err := writeRow(f, 1, t.Headers); err != nil {
		return nil, err
	}
	for i, row := range t.Rows {
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}

	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(sheetName, cell, &row)
}

// Send writes the table as a download named "<name>-<date>.<format>".
// Unknown formats fall back to CSV.
func Send(c *gin.Context, name, format string, t Table) error {
	var (
		body        []byte
		err         error
		contentType string
	)

	switch format {
	case FormatXLSX:
		body, err = XLSX(t)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		format = FormatCSV
		body, err = CSV(t)
		contentType = "text/csv; charset=utf-8"
	}
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("%s-%s.%s", name, time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, body)
	return nil
}
