package reporter

import (
	"fmt"
	"time"

	"go-jobtrack/internal/models"
)

// DueFollowUps picks the applications whose follow-up date has arrived or
// falls within the next windowDays. Closed applications (rejected or
// withdrawn) never need a nudge. Unparseable dates are skipped rather than
// failing the whole run.
func DueFollowUps(apps []models.Application, now time.Time, windowDays int) []models.Application {
	horizon := now.AddDate(0, 0, windowDays)
	var due []models.Application
	for _, app := range apps {
		if app.FollowUpDate == "" {
			continue
		}
		if app.Status == models.StatusRejected || app.Status == models.StatusWithdrawn {
			continue
		}
		date, err := parseDate(app.FollowUpDate)
		if err != nil {
			continue
		}
		if !date.After(horizon) {
			due = append(due, app)
		}
	}
	return due
}

// ReminderKey identifies one (application, follow-up date) pair in the
// sent cache, so moving the date re-arms the reminder.
func ReminderKey(app models.Application) string {
	return fmt.Sprintf("%d:%s", app.ID, app.FollowUpDate)
}

// parseDate accepts the backend's plain date and full timestamp forms.
func parseDate(s string) (time.Time, error) {
	if len(s) >= 10 {
		if d, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return d, nil
		}
	}
	return time.Parse(time.RFC3339, s)
}
