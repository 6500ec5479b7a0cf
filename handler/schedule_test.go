package handler_test

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestScheduleGridEndpoint(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/book", bookingPayload(nil), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/schedule-grid", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	grid := decodeBody(t, resp)

	columns := grid["columns"].([]any)
	require.Len(t, columns, 7)
	assert.Equal(t, "Hour", columns[0])
	assert.Equal(t, "Saturday", columns[1])
	assert.Equal(t, "Thursday", columns[6])

	rows := grid["rows"].([]any)
	require.Len(t, rows, 10)

	// hour 9 is the second seeded row; the booking sits in its Monday cell
	row := rows[1].(map[string]any)
	assert.Equal(t, "9:00 - 10:00", row["hour_label"])
	monday := row["Monday"].([]any)
	require.Len(t, monday, 1)
	entry := monday[0].(map[string]any)
	assert.Equal(t, "Sara", entry["user"])
	assert.Equal(t, "S-100", entry["info"])
	assert.Equal(t, "Room 101", entry["res"])

	// empty cells serialize as [], not null
	sunday := row["Sunday"]
	require.NotNil(t, sunday)
	assert.Empty(t, sunday.([]any))
}

func TestScheduleGridFiltersByType(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/book", bookingPayload(nil), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/schedule-grid?type_filter=staff", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	grid := decodeBody(t, resp)

	for _, r := range grid["rows"].([]any) {
		row := r.(map[string]any)
		for key, cell := range row {
			if key == "hour_label" {
				continue
			}
			assert.Empty(t, cell.([]any))
		}
	}
}

func TestExportExcelEndpoint(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/book", bookingPayload(nil), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/export-excel?type_filter=student", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "schedule_student.xlsx")
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	a1, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Hour", a1)
	b1, _ := f.GetCellValue(sheet, "B1")
	assert.Equal(t, "Saturday", b1)

	// Monday is column D (Hour, Saturday, Sunday, Monday); hour 9 is row 3
	booked, err := f.GetCellValue(sheet, "D3")
	require.NoError(t, err)
	assert.True(t, strings.Contains(booked, "Sara (Room 101)"), "got %q", booked)

	empty, _ := f.GetCellValue(sheet, "C3")
	assert.Equal(t, "---", empty)
}
