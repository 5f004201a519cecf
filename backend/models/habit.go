package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Habit is a recurring task with a fixed weekly schedule. Habits are
// immutable after creation: no update or delete path exists.
type Habit struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"` // day granularity, set server-side
	WeekDays  []HabitWeekDay `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (h *Habit) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// HabitWeekDay привязывает привычку к дню недели (0 = воскресенье .. 6 = суббота)
type HabitWeekDay struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	HabitID string `gorm:"type:uuid;not null;uniqueIndex:idx_habit_week_day" json:"habit_id"`
	WeekDay int    `gorm:"not null;uniqueIndex:idx_habit_week_day" json:"week_day"`
}

// Day is a calendar date with at least one recorded toggle. Created
// lazily on the first toggle, never deleted.
type Day struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"id"`
	Date      time.Time  `gorm:"not null;uniqueIndex" json:"date"`
	DayHabits []DayHabit `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (d *Day) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// DayHabit marks a habit completed on a day. The only mutable entity:
// created on toggle-on, deleted on toggle-off.
type DayHabit struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	DayID   string `gorm:"type:uuid;not null;uniqueIndex:idx_day_habit" json:"day_id"`
	HabitID string `gorm:"type:uuid;not null;uniqueIndex:idx_day_habit" json:"habit_id"`
}

func (DayHabit) TableName() string {
	return "days_habits"
}

// DaySummary is the scan target for the summary aggregate, one row per
// stored day. Counts are floats so the client can compute a completion
// ratio without casting.
type DaySummary struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Completed float64   `json:"completed"`
	Possible  float64   `json:"possible"`
}
