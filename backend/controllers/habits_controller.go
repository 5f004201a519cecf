package controllers

import (
	"errors"
	"time"

	"habits/backend/config"
	"habits/backend/models"
	"habits/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HabitsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewHabitsController(db *gorm.DB, cfg *config.Config) *HabitsController {
	return &HabitsController{DB: db, Cfg: cfg}
}

type CreateHabitRequest struct {
	Title string `json:"title" validate:"required"`
	// Pointer so a missing key is rejected while an explicit empty
	// array is still accepted
	WeekDays *[]int `json:"WeekDays" validate:"required,dive,gte=0,lte=6"`
}

// CreateHabit godoc
// @Summary Create a habit
// @Description Creates a habit with its weekly schedule, dated today
// @Tags habits
// @Accept json
// @Success 201
// @Failure 400 {object} utils.ErrorResponse
// @Router /habits [post]
func (hc *HabitsController) CreateHabit(c *fiber.Ctx) error {
	var req CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationError(c, errs)
	}

	// created_at is always the server's today, never caller-supplied
	habit := models.Habit{
		Title:     req.Title,
		CreatedAt: utils.Today(),
	}
	for _, weekDay := range dedupWeekDays(*req.WeekDays) {
		habit.WeekDays = append(habit.WeekDays, models.HabitWeekDay{WeekDay: weekDay})
	}

	if err := hc.DB.Create(&habit).Error; err != nil {
		return utils.InternalServerError(c, "Failed to create habit")
	}

	return c.SendStatus(fiber.StatusCreated)
}

// dedupWeekDays drops repeated entries preserving order; the
// (habit_id, week_day) pair is unique in storage.
func dedupWeekDays(weekDays []int) []int {
	seen := make(map[int]bool, len(weekDays))
	result := make([]int, 0, len(weekDays))
	for _, weekDay := range weekDays {
		if !seen[weekDay] {
			seen[weekDay] = true
			result = append(result, weekDay)
		}
	}
	return result
}

// ToggleHabit godoc
// @Summary Toggle a habit for today
// @Description Marks the habit completed for today, or un-marks it if already completed
// @Tags habits
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /habits/{id}/toggle [patch]
func (hc *HabitsController) ToggleHabit(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "Invalid habit id")
	}

	today := utils.Today()

	err := hc.DB.Transaction(func(tx *gorm.DB) error {
		var habit models.Habit
		if err := tx.Select("id").First(&habit, "id = ?", id).Error; err != nil {
			return err
		}

		day, err := findOrCreateDay(tx, today)
		if err != nil {
			return err
		}

		var dayHabit models.DayHabit
		err = tx.Where("day_id = ? AND habit_id = ?", day.ID, id).First(&dayHabit).Error
		switch {
		case err == nil:
			return tx.Delete(&dayHabit).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.DayHabit{DayID: day.ID, HabitID: id}).Error
		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Habit not found")
		}
		return utils.InternalServerError(c, "Failed to toggle habit")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// findOrCreateDay inserts the day row for the given date, letting the
// unique index on days.date absorb a concurrent insert, then reads back
// the canonical row with a FOR UPDATE lock so that toggles of the same
// (day, habit) pair serialize.
func findOrCreateDay(tx *gorm.DB, date time.Time) (models.Day, error) {
	var day models.Day

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoNothing: true,
	}).Create(&models.Day{Date: date}).Error
	if err != nil {
		return day, err
	}

	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date = ?", date).
		First(&day).Error
	return day, err
}
