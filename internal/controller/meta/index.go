package meta

import "github.com/gofiber/fiber/v2"

const IndexPath = "/static/index.html"

func RegisterIndex(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(IndexPath, fiber.StatusTemporaryRedirect)
	})
}
