package controllers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"habits/backend/models"
	"habits/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func getSummary(t *testing.T) []models.DaySummary {
	t.Helper()

	req := httptest.NewRequest("GET", "/summary", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary []models.DaySummary
	json.NewDecoder(resp.Body).Decode(&summary)
	return summary
}

func TestGetSummaryEmpty(t *testing.T) {
	resetTables(t)

	summary := getSummary(t)
	assert.Empty(t, summary)
}

func TestGetSummary(t *testing.T) {
	resetTables(t)

	today := utils.Today()
	habit := seedHabit(t, "Run", today, utils.WeekDay(today))
	// Scheduled on a different weekday, must not count as possible today
	seedHabit(t, "Sleep early", today, (utils.WeekDay(today)+1)%7)

	req := httptest.NewRequest("PATCH", "/habits/"+habit.ID+"/toggle", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	summary := getSummary(t)
	assert.Len(t, summary, 1)
	assert.Equal(t, 1.0, summary[0].Completed)
	assert.Equal(t, 1.0, summary[0].Possible)
	assert.True(t, summary[0].Date.Equal(today))

	// Toggling back keeps the day row with a zero completed count
	req = httptest.NewRequest("PATCH", "/habits/"+habit.ID+"/toggle", nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	summary = getSummary(t)
	assert.Len(t, summary, 1)
	assert.Equal(t, 0.0, summary[0].Completed)
	assert.Equal(t, 1.0, summary[0].Possible)
}

func TestSummaryPossibleMatchesDay(t *testing.T) {
	resetTables(t)

	today := utils.Today()
	weekDay := utils.WeekDay(today)

	first := seedHabit(t, "Run", today.AddDate(0, 0, -14), weekDay, (weekDay+2)%7)
	seedHabit(t, "Read", today, weekDay)
	seedHabit(t, "Journal", today.AddDate(0, 0, 1), weekDay) // not yet created

	req := httptest.NewRequest("PATCH", "/habits/"+first.ID+"/toggle", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// The summary's possible count must agree with the day aggregator
	_, day := getDay(t, today.Format("2006-01-02"))
	summary := getSummary(t)
	assert.Len(t, summary, 1)
	assert.Equal(t, float64(len(day.PossibleHabits)), summary[0].Possible)
	assert.Equal(t, 2.0, summary[0].Possible)
}
