package models

import (
	"strings"

	"gorm.io/gorm"
)

type AvailabilityTag string

const (
	AvailabilityMorning   AvailabilityTag = "morning"
	AvailabilityAfternoon AvailabilityTag = "afternoon"
	AvailabilityEvening   AvailabilityTag = "evening"
	AvailabilityWeekend   AvailabilityTag = "weekend"
)

// AvailabilityTagLabels maps tags to the labels shown to students.
var AvailabilityTagLabels = map[AvailabilityTag]string{
	AvailabilityMorning:   "Mornings",
	AvailabilityAfternoon: "Afternoons",
	AvailabilityEvening:   "Evenings",
	AvailabilityWeekend:   "Weekends",
}

func IsValidAvailabilityTag(tag AvailabilityTag) bool {
	_, ok := AvailabilityTagLabels[tag]
	return ok
}

// TeacherProfile holds what a teacher publishes to the marketplace: subjects,
// hourly rate and the coarse availability tags students filter by. The hourly
// rate is stored in cents to keep it an exact two-decimal amount.
type TeacherProfile struct {
	gorm.Model
	UserID          uint               `json:"user_id" gorm:"uniqueIndex"`
	User            User               `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Subjects        string             `json:"subjects"`
	HourlyRateCents int64              `json:"hourly_rate_cents"`
	Bio             string             `json:"bio"`
	Availability    string             `json:"availability"` // comma-separated tags
	AvatarURL       string             `json:"avatar_url"`
	Slots           []AvailabilitySlot `json:"slots,omitempty" gorm:"foreignKey:TeacherID"`
	Sessions        []Session          `json:"sessions,omitempty" gorm:"foreignKey:TeacherID"`
}

// AvailabilityTags splits the stored comma-separated tag list, dropping
// anything outside the fixed enumeration.
func (t *TeacherProfile) AvailabilityTags() []AvailabilityTag {
	if t.Availability == "" {
		return nil
	}
	var tags []AvailabilityTag
	for _, raw := range strings.Split(t.Availability, ",") {
		tag := AvailabilityTag(strings.TrimSpace(raw))
		if IsValidAvailabilityTag(tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// SetAvailabilityTags stores the given tags, rejecting unknown ones.
func (t *TeacherProfile) SetAvailabilityTags(tags []AvailabilityTag) error {
	parts := make([]string, 0, len(tags))
	seen := make(map[AvailabilityTag]bool)
	for _, tag := range tags {
		if !IsValidAvailabilityTag(tag) {
			return ErrUnknownAvailabilityTag
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		parts = append(parts, string(tag))
	}
	t.Availability = strings.Join(parts, ",")
	return nil
}

// HasAllAvailability reports whether the teacher's tag set is a superset of
// every required tag.
func (t *TeacherProfile) HasAllAvailability(required []AvailabilityTag) bool {
	have := make(map[AvailabilityTag]bool)
	for _, tag := range t.AvailabilityTags() {
		have[tag] = true
	}
	for _, tag := range required {
		if !have[tag] {
			return false
		}
	}
	return true
}

// AvailabilityLabels returns the display labels for the teacher's tags.
func (t *TeacherProfile) AvailabilityLabels() []string {
	tags := t.AvailabilityTags()
	labels := make([]string, 0, len(tags))
	for _, tag := range tags {
		labels = append(labels, AvailabilityTagLabels[tag])
	}
	return labels
}

// MatchesSubject reports case-insensitive substring containment on the
// teacher's published subjects.
func (t *TeacherProfile) MatchesSubject(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Subjects), strings.ToLower(query))
}
