package handler

import (
	"errors"
	"fmt"
	"strconv"

	"uni_booking/constants"
	"uni_booking/database"
	"uni_booking/model"
	"uni_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBooking reserves one (resource, day, hour) slot. The pre-insert lookup
// only exists to report which resource is taken; the unique index on the slot
// triple is what actually prevents a double booking when two requests race.
// The booking type is deliberately absent from the match: a staff booking and
// a student booking cannot share a physical slot.
func CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("createBookingInput").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var existing model.Booking
	err := db.Where("resource_name = ? AND day_name = ? AND hour = ?",
		input.ResourceName, input.DayName, input.Hour).First(&existing).Error
	if err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict,
			fmt.Sprintf("%s: %s is already booked for this slot", constants.SLOT_ALREADY_BOOKED, existing.ResourceName),
			errors.New("slot conflict"), "resource_name")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	booking := model.Booking{
		Code:         uuid.NewString(),
		UserName:     input.UserName,
		InfoId:       input.InfoId,
		ResourceName: input.ResourceName,
		DayName:      input.DayName,
		Hour:         input.Hour,
		BookingType:  input.BookingType,
	}
	if err := db.Create(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict,
				fmt.Sprintf("%s: %s is already booked for this slot", constants.SLOT_ALREADY_BOOKED, input.ResourceName),
				err, "resource_name")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func GetBookings(c *fiber.Ctx) error {
	typeFilter := c.Query("type_filter", constants.DEFAULT_BOOKING_TYPE)

	db := database.DB
	var bookings []model.Booking
	if err := db.Where("booking_type = ?", typeFilter).Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

// DeleteBooking succeeds whether or not the id exists.
func DeleteBooking(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking id must be a number", err)
	}

	db := database.DB
	if err := db.Where("id = ?", id).Delete(&model.Booking{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": id, "deleted": true})
}
