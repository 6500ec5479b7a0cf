package handler

import (
	"errors"

	"uni_booking/constants"
	"uni_booking/database"
	"uni_booking/model"
	"uni_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAdmins(c *fiber.Ctx) error {
	db := database.DB
	var admins []model.AdminUser
	if err := db.Find(&admins).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, admins)
}

func CreateAdmin(c *fiber.Ctx) error {
	input, ok := c.Locals("createAdminInput").(model.CreateAdminInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	admin := model.AdminUser{Username: input.Username, Password: input.Password}
	if err := db.Create(&admin).Error; err != nil {
		// lost the race with another create on the same username
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_USERNAME, err, "username")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, admin)
}

// DeleteAdmin is idempotent: removing an unknown username is a no-op. The
// bootstrap account is rejected earlier, in validate.DeleteAdmin.
func DeleteAdmin(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	if err := db.Where("username = ?", username).Delete(&model.AdminUser{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"username": username, "deleted": true})
}
