package services

import (
	"bytes"
	"fmt"

	"temple-admin/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	donationSheet = "Donations"

	// XLSXContentType is the media type of the workbooks ReportService renders
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var donationHeadings = []string{
	"Receipt Number", "Donated At", "Donor Name", "Donor Email", "Purpose", "Payment Method", "Amount", "Notes",
}

// ReportService renders spreadsheet exports
type ReportService struct{}

func NewReportService() ReportServiceInterface {
	return &ReportService{}
}

// DonationWorkbook writes one row per donation under a header row and a final
// total row.
func (s *ReportService) DonationWorkbook(donations []models.Donation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", donationSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, heading := range donationHeadings {
		if err := f.SetCellValue(donationSheet, cellName(i, 1), heading); err != nil {
			return nil, fmt.Errorf("failed to write heading: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(donationSheet, 1, 1, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	rowNo := 2
	for _, d := range donations {
		values := []interface{}{
			d.ReceiptNumber,
			d.DonatedAt.UTC().Format("2006-01-02 15:04"),
			d.DonorName,
			d.DonorEmail,
			d.Purpose,
			d.PaymentMethod,
			d.Amount.InexactFloat64(),
			d.Notes,
		}
		for col, value := range values {
			if err := f.SetCellValue(donationSheet, cellName(col, rowNo), value); err != nil {
				return nil, fmt.Errorf("failed to write donation %s: %w", d.ID, err)
			}
		}
		rowNo++
	}

	amountCol := len(donationHeadings) - 2
	if err := f.SetCellValue(donationSheet, cellName(amountCol-1, rowNo), "Total"); err != nil {
		return nil, fmt.Errorf("failed to write total label: %w", err)
	}
	if len(donations) > 0 {
		formula := fmt.Sprintf("SUM(%s:%s)", cellName(amountCol, 2), cellName(amountCol, rowNo-1))
		if err := f.SetCellFormula(donationSheet, cellName(amountCol, rowNo), formula); err != nil {
			return nil, fmt.Errorf("failed to write total: %w", err)
		}
	} else if err := f.SetCellValue(donationSheet, cellName(amountCol, rowNo), 0); err != nil {
		return nil, fmt.Errorf("failed to write total: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
