package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"go-hrm/pkg/reportquery"

	"github.com/xuri/excelize/v2"
)

// exportColumns resolves the run's field ids back to display headers. Fields
// removed from the registry since the run keep their raw id as header.
func exportColumns(rep *GeneratedReport) (ids []string, headers []string) {
	for _, id := range rep.Fields {
		ids = append(ids, id)
		if desc, err := reportquery.FieldByID(rep.DataSource, id); err == nil {
			headers = append(headers, desc.DisplayName)
		} else {
			headers = append(headers, id)
		}
	}
	return ids, headers
}

func cellString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ExportCSV renders a generated report as CSV, data rows first, then the
// summary block when the template requested aggregations.
func ExportCSV(rep *GeneratedReport) ([]byte, string, error) {
	ids, headers := exportColumns(rep)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return nil, "", err
	}
	for _, record := range rep.Data {
		row := make([]string, 0, len(ids))
		for _, id := range ids {
			row = append(row, cellString(record[id]))
		}
		if err := writer.Write(row); err != nil {
			return nil, "", err
		}
	}

	if len(rep.Summary) > 0 {
		if err := writer.Write([]string{}); err != nil {
			return nil, "", err
		}
		for _, agg := range rep.Summary {
			label := agg.Label
			if label == "" {
				label = fmt.Sprintf("%s(%s)", agg.Type, agg.Field)
			}
			if err := writer.Write([]string{label, fmt.Sprintf("%g", agg.Value)}); err != nil {
				return nil, "", err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), exportFilename(rep, "csv"), nil
}

// ExportExcel renders a generated report as an xlsx workbook.
func ExportExcel(rep *GeneratedReport) ([]byte, string, error) {
	ids, headers := exportColumns(rep)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Report"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, record := range rep.Data {
		for colIdx, id := range ids {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			switch v := record[id].(type) {
			case time.Time:
				f.SetCellValue(sheetName, cell, v.Format("2006-01-02 15:04:05"))
			case nil:
				// leave the cell empty
			default:
				f.SetCellValue(sheetName, cell, v)
			}
		}
	}

	if len(rep.Summary) > 0 {
		base := len(rep.Data) + 3
		for i, agg := range rep.Summary {
			label := agg.Label
			if label == "" {
				label = fmt.Sprintf("%s(%s)", agg.Type, agg.Field)
			}
			labelCell, _ := excelize.CoordinatesToCellName(1, base+i)
			valueCell, _ := excelize.CoordinatesToCellName(2, base+i)
			f.SetCellValue(sheetName, labelCell, label)
			f.SetCellStyle(sheetName, labelCell, labelCell, headerStyle)
			f.SetCellValue(sheetName, valueCell, agg.Value)
		}
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buffer.Bytes(), exportFilename(rep, "xlsx"), nil
}

func exportFilename(rep *GeneratedReport, ext string) string {
	return fmt.Sprintf("%s-%s.%s", rep.TemplateName, rep.GeneratedAt.Format("20060102-150405"), ext)
}
