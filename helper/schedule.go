package helper

import (
	"uni_booking/constants"
	"uni_booking/model"

	"github.com/jinzhu/copier"
)

type slotKey struct {
	Day  string
	Hour int
}

// indexBookings buckets bookings by (day, hour) once, so grid and export stay
// linear instead of rescanning the booking list per cell.
func indexBookings(bookings []model.Booking) map[slotKey][]model.Booking {
	cells := make(map[slotKey][]model.Booking, len(bookings))
	for _, b := range bookings {
		key := slotKey{Day: b.DayName, Hour: b.Hour}
		cells[key] = append(cells[key], b)
	}
	return cells
}

// BuildGrid derives the day×hour matrix from an already-filtered booking list.
// Days and hours are expected in display order (order asc, value asc); the
// function itself never touches the database. Cell sub-order follows the input
// slice and is not part of the contract.
func BuildGrid(bookings []model.Booking, days []model.Day, hours []model.Hour) model.ScheduleGrid {
	cells := indexBookings(bookings)

	columns := make([]string, 0, len(days)+1)
	columns = append(columns, constants.EXPORT_HOUR_COLUMN_NAME)
	for _, d := range days {
		columns = append(columns, d.Name)
	}

	rows := make([]map[string]any, 0, len(hours))
	for _, h := range hours {
		row := map[string]any{"hour_label": h.Label}
		for _, d := range days {
			entries := make([]model.GridEntry, 0)
			for _, b := range cells[slotKey{Day: d.Name, Hour: h.Value}] {
				var entry model.GridEntry
				copier.Copy(&entry, &b)
				entries = append(entries, entry)
			}
			row[d.Name] = entries
		}
		rows = append(rows, row)
	}

	return model.ScheduleGrid{Columns: columns, Rows: rows}
}

// BuildScheduleTable renders the same cells as BuildGrid into display strings
// for the excel export: one line per booking, "---" for an empty cell.
func BuildScheduleTable(bookings []model.Booking, days []model.Day, hours []model.Hour) (header []string, rows [][]string) {
	cells := indexBookings(bookings)

	header = make([]string, 0, len(days)+1)
	header = append(header, constants.EXPORT_HOUR_COLUMN_NAME)
	for _, d := range days {
		header = append(header, d.Name)
	}

	rows = make([][]string, 0, len(hours))
	for _, h := range hours {
		row := make([]string, 0, len(days)+1)
		row = append(row, h.Label)
		for _, d := range days {
			row = append(row, renderCell(cells[slotKey{Day: d.Name, Hour: h.Value}]))
		}
		rows = append(rows, row)
	}
	return header, rows
}

func renderCell(bookings []model.Booking) string {
	if len(bookings) == 0 {
		return constants.EXPORT_EMPTY_CELL
	}
	text := ""
	for i, b := range bookings {
		if i > 0 {
			text += "\n"
		}
		text += constants.EXPORT_CELL_MARKER + " " + b.UserName + " (" + b.ResourceName + ")"
	}
	return text
}
