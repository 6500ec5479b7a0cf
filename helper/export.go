package helper

import (
	"bytes"
	"fmt"

	"uni_booking/model"

	"github.com/gosimple/slug"
	"github.com/xuri/excelize/v2"
)

// ExportFilename derives the download name from the free-form booking type.
// Slugging keeps arbitrary filter values safe inside a filename.
func ExportFilename(bookingType string) string {
	return fmt.Sprintf("schedule_%s.xlsx", slug.Make(bookingType))
}

// BuildScheduleWorkbook writes the rendered schedule table into a single-sheet
// xlsx workbook and returns it as a byte buffer ready to stream.
func BuildScheduleWorkbook(bookings []model.Booking, days []model.Day, hours []model.Hour) (*bytes.Buffer, error) {
	header, rows := BuildScheduleTable(bookings, days, hours)

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	// widen the day columns so multi-line cells stay readable
	if len(header) > 0 {
		last, err := excelize.ColumnNumberToName(len(header))
		if err == nil {
			f.SetColWidth(sheet, "A", last, 24)
		}
	}

	return f.WriteToBuffer()
}
