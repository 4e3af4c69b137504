package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clasesya/clasesya-api/models"
)

// Request describes a booking attempt. SlotID is required for the canonical
// slot-based flow; ExcludeSessionID is non-zero when rescheduling, so the
// overlap checks skip the record being edited.
type Request struct {
	TeacherID        uint
	StudentID        uint
	Topic            string
	Description      string
	SlotID           uint
	ExcludeSessionID uint
}

// Book validates and persists a session as one atomic unit. The slot row is
// locked for the duration of the transaction and the overlap checks lock any
// conflicting session rows, so two concurrent attempts against the same slot
// or overlapping interval cannot both commit. The unique indexes on sessions
// back the same rules at the storage layer; losing that race surfaces as
// ErrConflict.
func Book(conn *gorm.DB, req Request, now time.Time) (*models.Session, error) {
	var session *models.Session

	err := conn.Transaction(func(tx *gorm.DB) error {
		var slot models.AvailabilitySlot
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, req.SlotID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotNotFound
		}
		if err != nil {
			return fmt.Errorf("load slot: %w", err)
		}

		reserved, err := slotReserved(tx, slot.ID, req.ExcludeSessionID)
		if err != nil {
			return fmt.Errorf("check slot reservation: %w", err)
		}

		candidate := Candidate{
			TeacherID:    req.TeacherID,
			StudentID:    req.StudentID,
			StartTime:    slot.StartTime,
			EndTime:      slot.EndTime(),
			Slot:         &slot,
			SlotReserved: reserved,
		}
		if err := Validate(candidate, now); err != nil {
			return err
		}

		conflict, err := lockOverlapping(tx, "teacher_id", req.TeacherID, candidate.StartTime, candidate.EndTime, req.ExcludeSessionID)
		if err != nil {
			return fmt.Errorf("check teacher calendar: %w", err)
		}
		if conflict {
			return &ValidationError{Field: "start_time", Message: "teacher already has a session in this interval"}
		}

		conflict, err = lockOverlapping(tx, "student_id", req.StudentID, candidate.StartTime, candidate.EndTime, req.ExcludeSessionID)
		if err != nil {
			return fmt.Errorf("check student calendar: %w", err)
		}
		if conflict {
			return &ValidationError{Field: "start_time", Message: "you already have a session in this interval"}
		}

		slotID := slot.ID
		session = &models.Session{
			TeacherID:   req.TeacherID,
			StudentID:   req.StudentID,
			Topic:       req.Topic,
			Description: req.Description,
			StartTime:   candidate.StartTime,
			EndTime:     candidate.EndTime,
			Status:      models.StatusScheduled,
			RoomToken:   uuid.NewString(),
			SlotID:      &slotID,
		}
		if err := tx.Create(session).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// slotReserved checks whether a scheduled session already references the slot,
// locking any such row so a concurrent cancel cannot slip between the check
// and the insert.
func slotReserved(tx *gorm.DB, slotID uint, excludeID uint) (bool, error) {
	var existing models.Session
	err := tx.Raw(`
		SELECT *
		FROM sessions
		WHERE slot_id = ? AND status = ? AND deleted_at IS NULL AND id <> ?
		FOR UPDATE
		LIMIT 1
	`, slotID, models.StatusScheduled, excludeID).Scan(&existing).Error
	if err != nil {
		return false, err
	}
	return existing.ID != 0, nil
}

// lockOverlapping looks for a scheduled session on the given calendar column
// whose half-open interval intersects [start, end), and locks it.
func lockOverlapping(tx *gorm.DB, column string, ownerID uint, start, end time.Time, excludeID uint) (bool, error) {
	var existing models.Session
	query := fmt.Sprintf(`
		SELECT *
		FROM sessions
		WHERE %s = ? AND status = ? AND deleted_at IS NULL AND id <> ?
		AND start_time < ? AND end_time > ?
		FOR UPDATE
		LIMIT 1
	`, column)
	err := tx.Raw(query, ownerID, models.StatusScheduled, excludeID, end, start).Scan(&existing).Error
	if err != nil {
		return false, err
	}
	return existing.ID != 0, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}
