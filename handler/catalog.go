package handler

import (
	"errors"
	"strconv"

	"uni_booking/constants"
	"uni_booking/database"
	"uni_booking/model"
	"uni_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetResources(c *fiber.Ctx) error {
	db := database.DB
	var resources []model.Resource
	if err := db.Find(&resources).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, resources)
}

func CreateResource(c *fiber.Ctx) error {
	input, ok := c.Locals("createItemInput").(model.CreateItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	resource := model.Resource{Name: input.Name}
	if err := db.Create(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_RESOURCE_NAME, err, "name")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, resource)
}

// DeleteResource removes the catalog row only. Bookings referencing the name
// stay behind; the soft-reference orphaning is a preserved gap, not a bug to
// silently fix here.
func DeleteResource(c *fiber.Ctx) error {
	name := c.Params("name")

	db := database.DB
	if err := db.Where("name = ?", name).Delete(&model.Resource{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"name": name, "deleted": true})
}

func GetDays(c *fiber.Ctx) error {
	db := database.DB
	var days []model.Day
	if err := db.Order("sort_order ASC").Find(&days).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, days)
}

// CreateDay appends at the end of the display sequence: order = current count.
// Deleting a day never renumbers the rest.
func CreateDay(c *fiber.Ctx) error {
	input, ok := c.Locals("createItemInput").(model.CreateItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	var count int64
	if err := db.Model(&model.Day{}).Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	day := model.Day{Name: input.Name, Order: int(count)}
	if err := db.Create(&day).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_DAY_NAME, err, "name")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, day)
}

func DeleteDay(c *fiber.Ctx) error {
	name := c.Params("name")

	db := database.DB
	if err := db.Where("name = ?", name).Delete(&model.Day{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"name": name, "deleted": true})
}

func GetHours(c *fiber.Ctx) error {
	db := database.DB
	var hours []model.Hour
	if err := db.Order("value ASC").Find(&hours).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hours)
}

func CreateHour(c *fiber.Ctx) error {
	input, ok := c.Locals("createHourInput").(model.CreateHourInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	hour := model.Hour{Value: input.Value, Label: input.Label}
	if err := db.Create(&hour).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_HOUR_VALUE, err, "value")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, hour)
}

func DeleteHour(c *fiber.Ctx) error {
	value, err := strconv.Atoi(c.Params("value"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Hour value must be a number", err)
	}

	db := database.DB
	if err := db.Where("value = ?", value).Delete(&model.Hour{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"value": value, "deleted": true})
}
