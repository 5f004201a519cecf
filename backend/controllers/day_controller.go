package controllers

import (
	"errors"

	"habits/backend/config"
	"habits/backend/models"
	"habits/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DayController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewDayController(db *gorm.DB, cfg *config.Config) *DayController {
	return &DayController{DB: db, Cfg: cfg}
}

// GetDay возвращает возможные и выполненные привычки на указанную дату
func (dc *DayController) GetDay(c *fiber.Ctx) error {
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		return utils.BadRequest(c, "Invalid date")
	}

	weekDay := utils.WeekDay(date)

	// Привычки, созданные не позже даты и запланированные на этот день недели
	possibleHabits := make([]models.Habit, 0)
	if err := dc.DB.
		Joins("JOIN habit_week_days ON habit_week_days.habit_id = habits.id").
		Where("habits.created_at <= ? AND habit_week_days.week_day = ?", date, weekDay).
		Find(&possibleHabits).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch habits")
	}

	// Exact-equality lookup: a date that never had a toggle has no Day
	// row, which reads as an empty completed set. Never creates the row.
	completedHabits := make([]string, 0)
	var day models.Day
	err = dc.DB.Preload("DayHabits").Where("date = ?", date).First(&day).Error
	switch {
	case err == nil:
		for _, dayHabit := range day.DayHabits {
			completedHabits = append(completedHabits, dayHabit.HabitID)
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return utils.InternalServerError(c, "Failed to fetch day")
	}

	return c.JSON(fiber.Map{
		"possiblehabits":  possibleHabits,
		"completedHabits": completedHabits,
	})
}
