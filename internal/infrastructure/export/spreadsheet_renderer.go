package export

import (
	"bytes"
	"fmt"
	"strconv"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/domain/pricing"

	"github.com/xuri/excelize/v2"
)

var spreadsheetColumns = []string{"A", "B", "C", "D", "E", "F"}

// RenderSpreadsheet builds the estimate workbook: one row per line under the
// fixed header, then the totals block.
func (r *EstimateRenderer) RenderSpreadsheet(e entities.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names cap at 31 chars.
	sheetName := e.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Estimate"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := []float64{40, 10, 10, 14, 14, 10}
	for i, c := range spreadsheetColumns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := []string{"Name", "Unit", "Quantity", "Unit price", "Subtotal", "Currency"}
	for i, h := range headers {
		f.SetCellValue(sheetName, spreadsheetColumns[i]+"1", h)
	}
	lastCol := spreadsheetColumns[len(spreadsheetColumns)-1]
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)

	rowNum := 2
	for _, l := range e.Lines {
		rowStr := strconv.Itoa(rowNum)
		f.SetCellValue(sheetName, "A"+rowStr, l.Name)
		f.SetCellValue(sheetName, "B"+rowStr, l.Unit)
		f.SetCellValue(sheetName, "C"+rowStr, l.Quantity)
		f.SetCellValue(sheetName, "D"+rowStr, l.UnitPrice)
		f.SetCellValue(sheetName, "E"+rowStr, l.Subtotal)
		f.SetCellValue(sheetName, "F"+rowStr, l.Currency)
		rowNum++
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	totals := pricing.ComputeEstimateTotals(e)
	rowNum++
	for _, tr := range []struct {
		label string
		value float64
	}{
		{"Items subtotal", totals.ItemsSubtotal},
		{"After coefficients", totals.AfterCoefficients},
		{"Total", totals.Total},
	} {
		rowStr := strconv.Itoa(rowNum)
		f.SetCellValue(sheetName, "D"+rowStr, tr.label)
		f.SetCellValue(sheetName, "E"+rowStr, tr.value)
		f.SetCellValue(sheetName, "F"+rowStr, e.Currency)
		if tr.label == "Total" {
			f.SetCellStyle(sheetName, "D"+rowStr, "F"+rowStr, totalStyle)
		}
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
