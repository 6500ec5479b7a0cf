package handler

import (
	"uni_booking/constants"
	"uni_booking/database"
	"uni_booking/helper"
	"uni_booking/model"
	"uni_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// GetScheduleGrid recomputes the day×hour matrix on every request. There is no
// cached derived state to invalidate, which keeps grid and ledger consistent
// by construction.
func GetScheduleGrid(c *fiber.Ctx) error {
	typeFilter := c.Query("type_filter", constants.DEFAULT_BOOKING_TYPE)

	bookings, days, hours, err := loadScheduleData(typeFilter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	grid := helper.BuildGrid(bookings, days, hours)
	return c.Status(fiber.StatusOK).JSON(grid)
}

// loadScheduleData fetches the inputs of both read-side projections: bookings
// of one type, days by display order, hours by value.
func loadScheduleData(typeFilter string) ([]model.Booking, []model.Day, []model.Hour, error) {
	db := database.DB

	var bookings []model.Booking
	if err := db.Where("booking_type = ?", typeFilter).Find(&bookings).Error; err != nil {
		return nil, nil, nil, err
	}

	var days []model.Day
	if err := db.Order("sort_order ASC").Find(&days).Error; err != nil {
		return nil, nil, nil, err
	}

	var hours []model.Hour
	if err := db.Order("value ASC").Find(&hours).Error; err != nil {
		return nil, nil, nil, err
	}

	return bookings, days, hours, nil
}
