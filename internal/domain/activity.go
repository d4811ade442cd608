package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrActivityNotFound is returned when no activity exists with the given name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrParticipantNotFound is returned when the email is not on the activity's roster.
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrAlreadyRegistered is returned when the email is already on the activity's roster.
	ErrAlreadyRegistered = errors.New("student is already signed up")
	// ErrActivityFull is returned when the activity has reached max participants.
	ErrActivityFull = errors.New("activity is full")
)

// Registration is one student's membership on an activity roster.
// ID is set by the repository on create.
type Registration struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Activity represents an extracurricular offering with a capacity and a roster.
// Registrations are insertion-ordered; that order is what the API exposes.
type Activity struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Schedule        string          `json:"schedule"`
	MaxParticipants int             `json:"max_participants"`
	Registrations   []*Registration `json:"registrations"`
}

// NewActivity returns a new Activity with an empty roster.
func NewActivity(name, description, schedule string, maxParticipants int) *Activity {
	return &Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
	}
}

// Participants projects the roster to its email strings, preserving order.
func (a *Activity) Participants() []string {
	emails := make([]string, 0, len(a.Registrations))
	for _, reg := range a.Registrations {
		emails = append(emails, reg.Email)
	}
	return emails
}

// HasParticipant reports whether the email is on the roster.
func (a *Activity) HasParticipant(email string) bool {
	for _, reg := range a.Registrations {
		if reg.Email == email {
			return true
		}
	}
	return false
}

// ActivityRepository defines storage operations for the activity registry.
// Implementations must keep the duplicate/absence checks atomic with the
// mutation so the roster invariants hold under concurrent calls.
type ActivityRepository interface {
	List(ctx context.Context) ([]*Activity, error)
	GetByName(ctx context.Context, name string) (*Activity, error)
	// AddRegistration appends a registration for email to the named activity.
	// Fails with ErrActivityNotFound, ErrAlreadyRegistered, or ErrActivityFull.
	AddRegistration(ctx context.Context, name, email string) (*Registration, error)
	// RemoveRegistration removes exactly the registration for email, leaving
	// the rest of the roster and its order untouched. Fails with
	// ErrActivityNotFound or ErrParticipantNotFound.
	RemoveRegistration(ctx context.Context, name, email string) error
}

// ActivityService defines student-facing operations on the registry.
type ActivityService interface {
	ListActivities(ctx context.Context) ([]*Activity, error)
	SignUp(ctx context.Context, activityName, email string) (*Registration, error)
	RemoveParticipant(ctx context.Context, activityName, email string) error
}
