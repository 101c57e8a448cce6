package models

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusRejected  ApplicationStatus = "rejected"
	StatusWithdrawn ApplicationStatus = "withdrawn"
)

// AllStatuses in display order.
var AllStatuses = []ApplicationStatus{
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusWithdrawn,
}

var validStatuses = mapset.NewSet(AllStatuses...)

func (s ApplicationStatus) Valid() bool {
	return validStatuses.Contains(s)
}

// Label is the human-readable form. Unknown values coming back from the
// backend must still render, so they fall through as-is instead of failing.
func (s ApplicationStatus) Label() string {
	switch s {
	case StatusApplied:
		return "Applied"
	case StatusInterview:
		return "Interview"
	case StatusOffer:
		return "Offer"
	case StatusRejected:
		return "Rejected"
	case StatusWithdrawn:
		return "Withdrawn"
	default:
		return string(s)
	}
}

// ParseStatus validates user input against the five known statuses.
func ParseStatus(raw string) (ApplicationStatus, error) {
	s := ApplicationStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q (expected one of: %s)", raw, strings.Join(statusNames(), ", "))
	}
	return s, nil
}

func statusNames() []string {
	names := make([]string, len(AllStatuses))
	for i, s := range AllStatuses {
		names[i] = string(s)
	}
	return names
}
