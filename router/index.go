package router

import (
	"uni_booking/handler"
	"uni_booking/middleware"
	"uni_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	api.Post("/login", handler.Login)

	admins := api.Group("/admins", logger.New())
	admins.Get("/", middleware.Protected(), handler.GetAdmins)
	admins.Post("/", middleware.Protected(), validate.CreateAdmin(), handler.CreateAdmin)
	admins.Delete("/:username", middleware.Protected(), validate.DeleteAdmin("username"), handler.DeleteAdmin)

	api.Get("/schedule-grid", handler.GetScheduleGrid)
	api.Get("/export-excel", handler.ExportExcel)

	book := api.Group("/book", logger.New())
	book.Get("/", handler.GetBookings)
	book.Post("/", validate.CreateBooking(), handler.CreateBooking)
	book.Delete("/:id", handler.DeleteBooking)

	resources := api.Group("/resources", logger.New())
	resources.Get("/", handler.GetResources)
	resources.Post("/", validate.CreateResource(), handler.CreateResource)
	resources.Delete("/:name", handler.DeleteResource)

	days := api.Group("/days", logger.New())
	days.Get("/", handler.GetDays)
	days.Post("/", validate.CreateDay(), handler.CreateDay)
	days.Delete("/:name", handler.DeleteDay)

	hours := api.Group("/hours", logger.New())
	hours.Get("/", handler.GetHours)
	hours.Post("/", validate.CreateHour(), handler.CreateHour)
	hours.Delete("/:value", handler.DeleteHour)
}
