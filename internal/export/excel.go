// Package export renders dispatch history as a downloadable report.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/DehBarca/ordernotify/internal/domain/entity"
)

const sheetName = "Dispatch History"

var headers = []string{"Order ID", "Channel", "Recipient", "Status", "Message", "Error", "Timestamp"}

// ExcelWriter renders history entries into an xlsx workbook
type ExcelWriter struct {
	logger *zap.Logger
}

// NewExcelWriter creates a new Excel report writer
func NewExcelWriter(logger *zap.Logger) *ExcelWriter {
	return &ExcelWriter{logger: logger}
}

// WriteHistory writes the results to an xlsx file at path
func (w *ExcelWriter) WriteHistory(results []*entity.NotificationResult, path string) error {
	f, err := w.build(results)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	w.logger.Info("Dispatch report written",
		zap.String("path", path),
		zap.Int("rows", len(results)))
	return nil
}

// HistoryBytes renders the results to an in-memory xlsx workbook,
// suitable for an HTTP download response
func (w *ExcelWriter) HistoryBytes(results []*entity.NotificationResult) ([]byte, error) {
	f, err := w.build(results)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf *bytes.Buffer
	buf, err = f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *ExcelWriter) build(results []*entity.NotificationResult) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remove default sheet: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("set header %s: %w", header, err)
		}
	}

	for row, result := range results {
		values := []interface{}{
			result.OrderID,
			result.Kind.String(),
			result.Recipient,
			string(result.Status),
			result.Message,
			result.Error,
			result.Timestamp.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	return f, nil
}
