package handler

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts all v1 routes on the app.
func RegisterRoutes(app *fiber.App, accounts *AccountHandler, transfers *TransferHandler) {
	api := app.Group("/v1")

	api.Post("/accounts", accounts.CreateAccount)
	api.Get("/accounts/:id", accounts.GetAccount)
	api.Post("/transfer", transfers.Transfer)
}
