// Package export renders filtered views as XLSX workbooks.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"laundryadmin/internal/domain"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var StudioHeader = []string{"Studio ID", "Studio Name", "Owner Name", "Contact", "Services", "Rating", "Status"}

var PaymentHeader = []string{"Transaction ID", "Date", "Customer", "Service Type", "Amount", "Status", "Delivered", "Reference"}

func Studios(items []domain.Studio) ([]byte, error) {
	rows := make([][]any, 0, len(items))
	for _, s := range items {
		status := "Inactive"
		if s.Status {
			status = "Active"
		}
		rows = append(rows, []any{s.StudioID, s.StudioName, s.OwnerName, s.Contact, s.Services, s.Rating, status})
	}
	return workbook("Studios", StudioHeader, []float64{12, 28, 22, 18, 10, 8, 10}, rows)
}

func Payments(studio domain.Studio, items []domain.Payment) ([]byte, error) {
	rows := make([][]any, 0, len(items))
	for _, p := range items {
		rows = append(rows, []any{
			p.TransactionID,
			formatTime(&p.Date),
			p.CustomerName,
			string(p.ServiceType),
			p.Amount,
			string(p.Status),
			formatTime(p.DeliveredDate),
			p.Reference,
		})
	}
	return workbook(studio.StudioID+" Payments", PaymentHeader, []float64{16, 18, 22, 14, 12, 12, 18, 18}, rows)
}

func workbook(sheet string, headers []string, widths []float64, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}
