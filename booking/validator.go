package booking

import (
	"time"

	"github.com/clasesya/clasesya-api/models"
)

// StartGrace is how far in the past a session start may lie at creation time,
// to absorb clock skew between the client and the server.
const StartGrace = time.Minute

// Candidate is a session about to be persisted, together with everything the
// pure checks need. Slot is nil for sessions not booked against a published
// window; SlotReserved tells whether a scheduled session already references
// the slot.
type Candidate struct {
	TeacherID    uint
	StudentID    uint
	StartTime    time.Time
	EndTime      time.Time
	Slot         *models.AvailabilitySlot
	SlotReserved bool
}

// Validate runs the order-sensitive field checks of the booking rules. The
// overlap checks against existing sessions are the transactional half and live
// in Book.
func Validate(c Candidate, now time.Time) error {
	if !c.EndTime.After(c.StartTime) {
		return &ValidationError{Field: "end_time", Message: "end must be after start"}
	}
	if c.StartTime.Before(now.Add(-StartGrace)) {
		return &ValidationError{Field: "start_time", Message: "start must be in the future"}
	}
	if c.EndTime.Sub(c.StartTime) != models.SessionDuration {
		return &ValidationError{Field: "end_time", Message: "sessions last exactly one hour"}
	}
	if c.Slot != nil {
		if c.Slot.TeacherID != c.TeacherID {
			return &ValidationError{Field: "slot", Message: "slot belongs to another teacher"}
		}
		if !c.Slot.IsActive {
			return &ValidationError{Field: "slot", Message: "slot is no longer offered"}
		}
		if !c.Slot.StartTime.Equal(c.StartTime) {
			return &ValidationError{Field: "slot", Message: "slot start does not match session start"}
		}
		if c.SlotReserved {
			return &ValidationError{Field: "slot", Message: "slot already reserved"}
		}
	}
	return nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
