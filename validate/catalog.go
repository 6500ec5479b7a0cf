package validate

import (
	"errors"
	"strings"

	"uni_booking/constants"
	"uni_booking/database"
	"uni_booking/model"
	"uni_booking/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func CreateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot parse request body", err)
		}

		validate := validator.New()
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if strings.TrimSpace(input.Name) == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.EMPTY_NAME, nil, "name")
		}

		var existing model.Resource
		if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_RESOURCE_NAME, errors.New("resource already exists"), "name")
		}

		c.Locals("createItemInput", input)
		return c.Next()
	}
}

func CreateDay() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot parse request body", err)
		}

		validate := validator.New()
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if strings.TrimSpace(input.Name) == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.EMPTY_NAME, nil, "name")
		}

		var existing model.Day
		if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_DAY_NAME, errors.New("day already exists"), "name")
		}

		c.Locals("createItemInput", input)
		return c.Next()
	}
}

func CreateHour() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHourInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot parse request body", err)
		}

		validate := validator.New()
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if strings.TrimSpace(input.Label) == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.EMPTY_LABEL, nil, "label")
		}

		var existing model.Hour
		if err := database.DB.Where("value = ?", input.Value).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_HOUR_VALUE, errors.New("hour already exists"), "value")
		}

		c.Locals("createHourInput", input)
		return c.Next()
	}
}
