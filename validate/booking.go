package validate

import (
	"strings"

	"uni_booking/constants"
	"uni_booking/model"
	"uni_booking/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot parse request body", err)
		}

		validate := validator.New()
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		// whitespace-only values count as empty, no write happens
		if strings.TrimSpace(input.UserName) == "" || strings.TrimSpace(input.InfoId) == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_BOOKING_INPUT, nil, "user_name")
		}

		c.Locals("createBookingInput", input)
		return c.Next()
	}
}
