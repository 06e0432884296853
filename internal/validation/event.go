package validation

import (
	"fmt"
	"strings"
	"time"
)

// ValidateEventTitle checks event title requirements.
func ValidateEventTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if len(trimmed) < 3 {
		return fmt.Errorf("title must be at least 3 characters long")
	}
	if len(trimmed) > 120 {
		return fmt.Errorf("title must not exceed 120 characters")
	}
	return nil
}

// ValidateEventDates checks that the start date is set and any end date
// does not precede it.
func ValidateEventDates(start time.Time, end *time.Time) error {
	if start.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if end != nil && end.Before(start) {
		return fmt.Errorf("end date must not be before start date")
	}
	return nil
}

// ValidateMaxParticipants checks the capacity limit when set.
func ValidateMaxParticipants(max *int) error {
	if max != nil && *max < 1 {
		return fmt.Errorf("max participants must be at least 1")
	}
	return nil
}

// ValidateCommentContent checks comment content requirements.
func ValidateCommentContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fmt.Errorf("comment content is required")
	}
	if len(trimmed) > 2000 {
		return fmt.Errorf("comment must not exceed 2000 characters")
	}
	return nil
}

// ValidateTagName checks tag name requirements.
func ValidateTagName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("tag name is required")
	}
	if len(trimmed) > 40 {
		return fmt.Errorf("tag name must not exceed 40 characters")
	}
	return nil
}
