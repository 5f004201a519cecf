package controllers

import (
	"habits/backend/config"
	"habits/backend/models"
	"habits/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SummaryController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSummaryController(db *gorm.DB, cfg *config.Config) *SummaryController {
	return &SummaryController{DB: db, Cfg: cfg}
}

// GetSummary godoc
// @Summary Get the daily summary
// @Description Returns completed and possible habit counts for every recorded day
// @Tags summary
// @Produce json
// @Success 200 {array} models.DaySummary
// @Router /summary [get]
func (sc *SummaryController) GetSummary(c *fiber.Ctx) error {
	summary := make([]models.DaySummary, 0)

	// DOW is extracted in UTC to match how dates are normalized on write;
	// counting against the session time zone would shift the weekday.
	err := sc.DB.Raw(`
		SELECT
			d.id,
			d.date,
			(
				SELECT CAST(COUNT(*) AS float)
				FROM days_habits dh
				WHERE dh.day_id = d.id
			) AS completed,
			(
				SELECT CAST(COUNT(*) AS float)
				FROM habit_week_days hwd
				JOIN habits h ON h.id = hwd.habit_id
				WHERE hwd.week_day = CAST(EXTRACT(DOW FROM d.date AT TIME ZONE 'UTC') AS int)
					AND h.created_at <= d.date
			) AS possible
		FROM days d
	`).Scan(&summary).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch summary")
	}

	return c.JSON(summary)
}
