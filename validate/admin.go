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

func CreateAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAdminInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot parse request body", err)
		}

		validate := validator.New()
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		input.Username = strings.TrimSpace(input.Username)
		if input.Username == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.EMPTY_NAME, nil, "username")
		}

		var existing model.AdminUser
		if err := database.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_USERNAME, errors.New("username already exists"), "username")
		}

		c.Locals("createAdminInput", input)
		return c.Next()
	}
}

func DeleteAdmin(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Params(key)
		if username == constants.ROOT_ADMIN_USERNAME {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.CAN_NOT_DELETE_ROOT, errors.New("bootstrap admin is protected"), "username")
		}
		c.Locals("username", username)
		return c.Next()
	}
}
