package routes

import (
	"qxmr/controllers/admin"
	"qxmr/controllers/user"
	"qxmr/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/get_user", user.GetUser)
	app.Post("/get_user", user.GetUser)
	app.Post("/update_user", user.UpdateUser)

	app.Get("/leaderboard", user.Leaderboard)
	app.Post("/leaderboard", user.Leaderboard)

	app.Post("/transaction", user.RecordTransaction)
	app.Post("/start_game", user.StartGame)
	app.Post("/update_game_score", user.UpdateGameScore)
	app.Post("/buy_games", user.BuyGames)

	app.Get("/daily_winner", user.DailyWinner)

	adminroutes := app.Group("/admin", middlewares.AdminAuth())
	adminroutes.Get("/users", admin.ListUsers)
	adminroutes.Get("/transactions", admin.ListTransactions)
	adminroutes.Post("/reset-balances", admin.ResetBalances)
}
