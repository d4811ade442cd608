package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"activitysignup/internal/domain"
)

// activityRepository is the in-memory activity registry. The full set of
// activities is fixed at construction; only roster membership changes at
// runtime. A single RWMutex serializes mutations so the duplicate and
// absence checks are atomic with the write.
type activityRepository struct {
	mu     sync.RWMutex
	names  []string // preserves seed insertion order for List
	byName map[string]*domain.Activity
}

// NewActivityRepository creates an ActivityRepository seeded with the given
// activities. Seed order is preserved by List.
func NewActivityRepository(seed []*domain.Activity) domain.ActivityRepository {
	r := &activityRepository{
		byName: make(map[string]*domain.Activity, len(seed)),
	}
	for _, a := range seed {
		if _, ok := r.byName[a.Name]; ok {
			continue
		}
		r.names = append(r.names, a.Name)
		r.byName[a.Name] = a
	}
	return r
}

func (r *activityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activities := make([]*domain.Activity, 0, len(r.names))
	for _, name := range r.names {
		activities = append(activities, snapshot(r.byName[name]))
	}
	return activities, nil
}

func (r *activityRepository) GetByName(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return snapshot(activity), nil
}

func (r *activityRepository) AddRegistration(ctx context.Context, name, email string) (*domain.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return nil, domain.ErrAlreadyRegistered
	}
	if len(activity.Registrations) >= activity.MaxParticipants {
		return nil, domain.ErrActivityFull
	}

	reg := &domain.Registration{
		ID:           uuid.NewString(),
		Email:        email,
		RegisteredAt: time.Now(),
	}
	activity.Registrations = append(activity.Registrations, reg)

	regCopy := *reg
	return &regCopy, nil
}

func (r *activityRepository) RemoveRegistration(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.byName[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, reg := range activity.Registrations {
		if reg.Email == email {
			activity.Registrations = append(activity.Registrations[:i], activity.Registrations[i+1:]...)
			return nil
		}
	}
	return domain.ErrParticipantNotFound
}

// snapshot copies an activity and its roster so callers never share slices
// with the registry.
func snapshot(a *domain.Activity) *domain.Activity {
	cp := *a
	cp.Registrations = make([]*domain.Registration, len(a.Registrations))
	for i, reg := range a.Registrations {
		regCopy := *reg
		cp.Registrations[i] = &regCopy
	}
	return &cp
}
