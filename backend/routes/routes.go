package routes

import (
	"habits/backend/config"
	"habits/backend/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Habit routes
	habitsController := controllers.NewHabitsController(db, cfg)
	app.Post("/habits", habitsController.CreateHabit)
	app.Patch("/habits/:id/toggle", habitsController.ToggleHabit)

	// Day routes
	dayController := controllers.NewDayController(db, cfg)
	app.Get("/day", dayController.GetDay)

	// Summary routes
	summaryController := controllers.NewSummaryController(db, cfg)
	app.Get("/summary", summaryController.GetSummary)
}
