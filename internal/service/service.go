package service

import (
	"fmt"
	"time"

	"football-manager-backend/internal/database/models"
	"football-manager-backend/internal/notifications"
)

// dateLayout is the wire format for dates of birth
const dateLayout = "2006-01-02"

// maxConflictRetries bounds how often an orchestrated operation is replayed
// from a fresh load after a stale-version save before the conflict surfaces.
const maxConflictRetries = 3

func parseDateOfBirth(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date of birth %q: expected format %s", value, dateLayout)
	}
	return t, nil
}

func transferMessage(e *models.Employee, club *models.Club) *notifications.Message {
	return &notifications.Message{
		Title:       "Transfer Notification",
		Body:        fmt.Sprintf("Dear %s, your transfer to %s has been processed.", e.FullName(), club.Name),
		RecipientID: e.Email,
		Channel:     notifications.ChannelEmail,
		CreatedAt:   time.Now().UTC(),
		Data: map[string]string{
			"employee_name": e.FullName(),
			"club_name":     club.Name,
		},
	}
}

func releaseMessage(e *models.Employee) *notifications.Message {
	return &notifications.Message{
		Title:       "Release Notification",
		Body:        fmt.Sprintf("Dear %s, you have been released from your current club.", e.FullName()),
		RecipientID: e.Email,
		Channel:     notifications.ChannelEmail,
		CreatedAt:   time.Now().UTC(),
		Data: map[string]string{
			"employee_name": e.FullName(),
		},
	}
}
