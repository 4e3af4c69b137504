package redis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/clasesya/clasesya-api/models"
)

// Availability listings are display reads and may lag the booking write path,
// so they are cached with a short TTL and invalidated whenever the teacher's
// schedule changes.
const availabilityTTL = 30 * time.Second

func availabilityKey(teacherID uint) string {
	return fmt.Sprintf("availability:teacher:%d", teacherID)
}

// GetAvailability returns the cached bookable slots for a teacher, or false
// when the cache has nothing usable.
func GetAvailability(teacherID uint) ([]models.AvailabilitySlot, bool) {
	if Client == nil {
		return nil, false
	}
	payload, err := Client.Get(Ctx, availabilityKey(teacherID)).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []models.AvailabilitySlot
	if err := json.Unmarshal(payload, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// SetAvailability caches the bookable slots for a teacher.
func SetAvailability(teacherID uint, slots []models.AvailabilitySlot) {
	if Client == nil {
		return
	}
	payload, err := json.Marshal(slots)
	if err != nil {
		return
	}
	Client.Set(Ctx, availabilityKey(teacherID), payload, availabilityTTL)
}

// InvalidateAvailability drops the cached listing after a booking, a status
// transition or a slot change.
func InvalidateAvailability(teacherID uint) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, availabilityKey(teacherID))
}
