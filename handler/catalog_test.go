package handler_test

import (
	"net/http"
	"testing"

	"uni_booking/database"
	"uni_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCRUD(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/resources", map[string]string{"name": "LabA"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/resources", map[string]string{"name": "LabA"}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	for _, name := range []string{"", "   "} {
		resp = doRequest(t, app, http.MethodPost, "/api/resources", map[string]string{"name": name}, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	}

	resp = doRequest(t, app, http.MethodGet, "/api/resources", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].([]any)
	assert.Len(t, data, 2) // seeded Room 101 + LabA

	resp = doRequest(t, app, http.MethodDelete, "/api/resources/LabA", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var count int64
	database.DB.Model(&model.Resource{}).Count(&count)
	assert.EqualValues(t, 1, count)

	resp = doRequest(t, app, http.MethodDelete, "/api/resources/LabA", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "delete is a no-op when absent")
	resp.Body.Close()
}

// deleting a resource leaves bookings that reference it by name untouched
func TestResourceDeleteDoesNotCascade(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/resources", map[string]string{"name": "LabA"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/book", bookingPayload(map[string]any{"resource_name": "LabA"}), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodDelete, "/api/resources/LabA", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var count int64
	database.DB.Model(&model.Booking{}).Count(&count)
	assert.EqualValues(t, 1, count, "bookings keep their soft reference")
}

func TestDayOrderAssignment(t *testing.T) {
	app := setupTestApp(t)

	// six days are seeded with order 0..5; the next one is appended
	resp := doRequest(t, app, http.MethodPost, "/api/days", map[string]string{"name": "Friday"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.EqualValues(t, 6, data["order"])

	resp = doRequest(t, app, http.MethodPost, "/api/days", map[string]string{"name": "Friday"}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// removing a day does not renumber the rest
	resp = doRequest(t, app, http.MethodDelete, "/api/days/Monday", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var friday model.Day
	require.NoError(t, database.DB.Where("name = ?", "Friday").First(&friday).Error)
	assert.Equal(t, 6, friday.Order)

	resp = doRequest(t, app, http.MethodDelete, "/api/days/NoSuchDay", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestHourCRUD(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/hours", map[string]any{"value": 18, "label": "18:00 - 19:00"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/hours", map[string]any{"value": 18, "label": "evening"}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/hours", map[string]any{"value": 19, "label": "  "}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// listing is ordered by value, not insertion
	resp = doRequest(t, app, http.MethodGet, "/api/hours", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].([]any)
	require.Len(t, data, 11)
	last := data[len(data)-1].(map[string]any)
	assert.EqualValues(t, 18, last["value"])

	resp = doRequest(t, app, http.MethodDelete, "/api/hours/18", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doRequest(t, app, http.MethodDelete, "/api/hours/18", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
