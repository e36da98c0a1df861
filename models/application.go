package models

import (
	"fmt"
	"time"
)

// ApplicationStatus is the approval state of an Application.
//
// Valid status graph:
//
//	pending ──► approved
//	    │
//	    └─────► declined
//
// approved and declined are terminal.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusDeclined ApplicationStatus = "declined"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending: {StatusApproved, StatusDeclined},
	// approved and declined are terminal — no outgoing transitions
}

// ParseApplicationStatus converts a raw string to an ApplicationStatus,
// returning an error for unknown values.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case StatusPending, StatusApproved, StatusDeclined:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// CanTransitionTo returns true when moving from s to "to" is permitted.
func (s ApplicationStatus) CanTransitionTo(to ApplicationStatus) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}
	for _, st := range allowed {
		if st == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true once no further transitions are possible.
func (s ApplicationStatus) IsTerminal() bool {
	_, ok := validTransitions[s]
	return !ok
}

// Application is one worker-to-business interest record. Created pending,
// moved exactly once to a terminal status by the receiving business, never
// deleted individually (bulk clear only).
type Application struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	JobID            uint              `gorm:"index" json:"jobId"`
	JobTitle         string            `gorm:"type:varchar(255)" json:"jobTitle"`
	BusinessEmail    string            `gorm:"type:varchar(255);index" json:"businessEmail"`
	ApplicantName    string            `gorm:"type:varchar(255)" json:"applicantName"`
	ApplicantEmail   string            `gorm:"type:varchar(255);index" json:"applicantEmail"`
	ApplicantContact string            `gorm:"type:varchar(50)" json:"applicantContact"`
	Status           ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Timestamp        time.Time         `gorm:"autoCreateTime;index" json:"timestamp"`
}
