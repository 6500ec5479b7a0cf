package handler

import (
	"fmt"

	"uni_booking/constants"
	"uni_booking/helper"
	"uni_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// ExportExcel streams the schedule of one booking type as an xlsx download.
// Same cells as the grid endpoint, collapsed to display strings.
func ExportExcel(c *fiber.Ctx) error {
	typeFilter := c.Query("type_filter", constants.DEFAULT_BOOKING_TYPE)

	bookings, days, hours, err := loadScheduleData(typeFilter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	buf, err := helper.BuildScheduleWorkbook(bookings, days, hours)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot build excel file", err)
	}

	filename := helper.ExportFilename(typeFilter)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
