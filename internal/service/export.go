package service

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/dto"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet     = "Transactions"
)

// DefaultExportFields is the column set used when the caller names none.
var DefaultExportFields = []string{"id", "date", "amount", "category", "status", "user_id", "user_profile"}

// ParseExportFields splits a comma-separated column list, keeping the
// caller's order. Blank names are skipped.
func ParseExportFields(raw string) []string {
	var fields []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			fields = append(fields, name)
		}
	}
	if len(fields) == 0 {
		return append([]string(nil), DefaultExportFields...)
	}
	return fields
}

func renderCSV(transactions []*models.Transaction, columns []string) (*dto.ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, err
	}
	record := make([]string, len(columns))
	for _, tx := range transactions {
		for i, column := range columns {
			record[i] = exportValue(tx, column)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &dto.ExportFile{
		FileName:    "transactions.csv",
		ContentType: csvContentType,
		Body:        buf.Bytes(),
		Rows:        len(transactions),
	}, nil
}

func renderXLSX(transactions []*models.Transaction, columns []string) (*dto.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, err
	}

	for i, column := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, column); err != nil {
			return nil, err
		}
	}
	for row, tx := range transactions {
		for i, column := range columns {
			cell, _ := excelize.CoordinatesToCellName(i+1, row+2)
			if err := f.SetCellValue(exportSheet, cell, exportValue(tx, column)); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return &dto.ExportFile{
		FileName:    "transactions.xlsx",
		ContentType: xlsxContentType,
		Body:        buf.Bytes(),
		Rows:        len(transactions),
	}, nil
}

// exportValue renders one column of a transaction as text. Unknown columns
// render empty.
func exportValue(tx *models.Transaction, column string) string {
	switch column {
	case "id":
		return strconv.FormatInt(tx.ExternalID, 10)
	case "_id":
		return tx.ID.String()
	case "date":
		if tx.Date == nil {
			return ""
		}
		return formatTimestamp(*tx.Date)
	case "amount":
		return tx.Amount.String()
	case "category":
		return string(tx.Category)
	case "status":
		return string(tx.Status)
	case "user_id":
		return tx.UserID
	case "user_profile":
		return tx.UserProfile
	case "createdAt", "created_at":
		return formatTimestamp(tx.CreatedAt)
	case "updatedAt", "updated_at":
		return formatTimestamp(tx.UpdatedAt)
	}
	return ""
}
