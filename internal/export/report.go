// Package export renders tracker data as downloadable files: the monthly
// report as an Excel workbook and the weekly schedule as an iCalendar feed.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/mmynk/tutortrack/internal/models"
)

// ErrGenerateFailed is returned when a file cannot be rendered.
var ErrGenerateFailed = errors.New("failed to generate export")

const reportSheet = "Report"

// Currency formats an amount the way the tracker displays money.
func Currency(amount float64) string {
	return "¥" + decimal.NewFromFloat(amount).StringFixed(2)
}

// ReportWorkbook renders a monthly report as an .xlsx workbook.
//
// Layout:
//   - Row 1: title, merged across the table
//   - Row 2: Student | Hours | Earnings | Prices
//   - One row per student, then a TOTAL row
//   - Today and This week rows when the report carries a breakdown
//
// An empty report produces the header and a single "No data" row.
func ReportWorkbook(r models.Report) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(reportSheet)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrGenerateFailed, err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(reportSheet, "A", "A", 24)
	f.SetColWidth(reportSheet, "B", "C", 12)
	f.SetColWidth(reportSheet, "D", "D", 28)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	f.SetCellValue(reportSheet, "A1", fmt.Sprintf("Monthly report %s", r.Month))
	f.MergeCell(reportSheet, "A1", "D1")
	f.SetCellStyle(reportSheet, "A1", "A1", headerStyle)

	for i, h := range []string{"Student", "Hours", "Earnings", "Prices"} {
		f.SetCellValue(reportSheet, cell(colName(i), 2), h)
	}
	f.SetCellStyle(reportSheet, "A2", "D2", headerStyle)

	row := 3
	if r.Empty {
		f.SetCellValue(reportSheet, cell("A", row), "No data")
	} else {
		for _, s := range r.Rows {
			writeRow(f, row, s.StudentName, s.TotalHours, s.TotalEarnings)
			prices := make([]string, len(s.Prices))
			for i, p := range s.Prices {
				prices[i] = Currency(p)
			}
			f.SetCellValue(reportSheet, cell("D", row), strings.Join(prices, ", "))
			row++
		}

		writeRow(f, row, "TOTAL", r.Total.Hours, r.Total.Earnings)
		f.SetCellStyle(reportSheet, cell("A", row), cell("D", row), totalStyle)

		if r.Day != nil {
			row++
			writeRow(f, row, "Today", r.Day.Hours, r.Day.Earnings)
		}
		if r.Week != nil {
			row++
			writeRow(f, row, "This week", r.Week.Hours, r.Week.Earnings)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrGenerateFailed, err)
	}

	return buf, ReportFilename(r), nil
}

// ReportFilename is the suggested download name of a report workbook.
func ReportFilename(r models.Report) string {
	if r.StudentID != "" {
		return fmt.Sprintf("tutortrack-report-%s-%s.xlsx", r.Month, r.StudentID)
	}
	return fmt.Sprintf("tutortrack-report-%s.xlsx", r.Month)
}

func writeRow(f *excelize.File, row int, label string, hours, earnings float64) {
	f.SetCellValue(reportSheet, cell("A", row), label)
	f.SetCellValue(reportSheet, cell("B", row), hours)
	f.SetCellValue(reportSheet, cell("C", row), Currency(earnings))
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
