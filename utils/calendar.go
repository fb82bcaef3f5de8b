package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/servibook/booking-platform/db"
	"github.com/servibook/booking-platform/models"
	"github.com/servibook/booking-platform/redis"
)

const availabilityCacheTTL = 10 * time.Minute

func availabilityCacheKey(providerID uint) string {
	return fmt.Sprintf("availability:windows:%d", providerID)
}

// IsProviderOpen checks whether a provider is nominally open at the given
// instant. Blackout dates are absolute and override the weekly windows.
// Comparisons are wall-clock time-of-day in whatever location the instant
// carries; a window ending at 17:00 admits an instant of exactly 17:00.
func IsProviderOpen(providerID uint, instant time.Time) (bool, error) {
	exceptions, err := loadExceptionsOn(providerID, instant)
	if err != nil {
		return false, err
	}
	windows, err := loadWeeklyWindows(providerID)
	if err != nil {
		return false, err
	}
	return isOpenAt(windows, exceptions, instant)
}

// isOpenAt applies the calendar decision to in-memory rows: an exception on
// the instant's date closes the whole day, otherwise any window on the
// instant's weekday containing its time-of-day opens it. A provider with no
// windows at all is always closed.
func isOpenAt(windows []models.WeeklyAvailability, exceptions []models.AvailabilityException, instant time.Time) (bool, error) {
	for _, e := range exceptions {
		if sameDate(e.Date, instant) {
			return false, nil
		}
	}

	day := models.DayOfWeek(instant.Weekday())
	for _, w := range windows {
		if w.DayOfWeek != day {
			continue
		}
		open, err := windowContains(w.StartTime, w.EndTime, instant)
		if err != nil {
			return false, err
		}
		if open {
			return true, nil
		}
	}
	return false, nil
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// windowContains tests start <= instant's time-of-day <= end, both bounds
// inclusive.
func windowContains(startStr, endStr string, instant time.Time) (bool, error) {
	layout := "15:04"
	start, err := time.Parse(layout, startStr)
	if err != nil {
		return false, fmt.Errorf("invalid window start time format: %v", err)
	}
	end, err := time.Parse(layout, endStr)
	if err != nil {
		return false, fmt.Errorf("invalid window end time format: %v", err)
	}

	minuteOfDay := instant.Hour()*60 + instant.Minute()
	startMinute := start.Hour()*60 + start.Minute()
	endMinute := end.Hour()*60 + end.Minute()
	return minuteOfDay >= startMinute && minuteOfDay <= endMinute, nil
}

func loadExceptionsOn(providerID uint, instant time.Time) ([]models.AvailabilityException, error) {
	var exceptions []models.AvailabilityException
	err := db.DB.
		Where("provider_id = ? AND date = ?", providerID, instant.Format("2006-01-02")).
		Find(&exceptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check availability exceptions: %v", err)
	}
	return exceptions, nil
}

// loadWeeklyWindows reads the provider's windows through the Redis cache.
// Cache misses and Redis failures both fall back to the database.
func loadWeeklyWindows(providerID uint) ([]models.WeeklyAvailability, error) {
	key := availabilityCacheKey(providerID)

	if redis.Client != nil {
		cached, err := redis.Client.Get(redis.Ctx, key).Result()
		if err == nil {
			var windows []models.WeeklyAvailability
			if jsonErr := json.Unmarshal([]byte(cached), &windows); jsonErr == nil {
				return windows, nil
			}
		}
	}

	var windows []models.WeeklyAvailability
	if err := db.DB.Where("provider_id = ?", providerID).Find(&windows).Error; err != nil {
		return nil, fmt.Errorf("failed to load provider availability: %v", err)
	}

	if redis.Client != nil {
		if payload, err := json.Marshal(windows); err == nil {
			redis.Client.Set(redis.Ctx, key, payload, availabilityCacheTTL)
		}
	}
	return windows, nil
}

// InvalidateAvailabilityCache drops the cached windows for a provider. Must
// be called whenever a weekly window for that provider is created, updated
// or deleted.
func InvalidateAvailabilityCache(providerID uint) {
	if redis.Client == nil {
		return
	}
	redis.Client.Del(redis.Ctx, availabilityCacheKey(providerID))
}
