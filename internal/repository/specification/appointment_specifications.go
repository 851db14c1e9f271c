package specification

import (
	"time"

	"gorm.io/gorm"
)

type StatusIs struct {
	Status string
}

func (s StatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// StartsOnDay bounds start_time to one calendar day,
// [00:00, next midnight), in the day's own location.
type StartsOnDay struct {
	Day time.Time
}

func (s StartsOnDay) Apply(db *gorm.DB) *gorm.DB {
	dayStart := time.Date(s.Day.Year(), s.Day.Month(), s.Day.Day(), 0, 0, 0, 0, s.Day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	return db.Where("start_time >= ? AND start_time < ?", dayStart, dayEnd)
}
