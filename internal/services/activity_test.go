package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"activitysignup/internal/domain"
)

type mockActivityRepository struct {
	activities map[string]*domain.Activity
	addErr     error
	removeErr  error
	listErr    error
}

func (m *mockActivityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*domain.Activity
	for _, a := range m.activities {
		result = append(result, a)
	}
	return result, nil
}

func (m *mockActivityRepository) GetByName(ctx context.Context, name string) (*domain.Activity, error) {
	a, ok := m.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return a, nil
}

func (m *mockActivityRepository) AddRegistration(ctx context.Context, name, email string) (*domain.Registration, error) {
	if m.addErr != nil {
		return nil, m.addErr
	}
	a, ok := m.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return nil, domain.ErrAlreadyRegistered
	}
	reg := &domain.Registration{ID: "r1", Email: email, RegisteredAt: time.Now()}
	a.Registrations = append(a.Registrations, reg)
	return reg, nil
}

func (m *mockActivityRepository) RemoveRegistration(ctx context.Context, name, email string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	a, ok := m.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if !a.HasParticipant(email) {
		return domain.ErrParticipantNotFound
	}
	return nil
}

type mockEmailService struct {
	signupCalls  []*domain.SignupConfirmationEmailData
	removalCalls []*domain.RemovalNoticeEmailData
	err          error
}

func (m *mockEmailService) SendSignupConfirmation(ctx context.Context, data *domain.SignupConfirmationEmailData) error {
	m.signupCalls = append(m.signupCalls, data)
	return m.err
}

func (m *mockEmailService) SendRemovalNotice(ctx context.Context, data *domain.RemovalNoticeEmailData) error {
	m.removalCalls = append(m.removalCalls, data)
	return m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func chessClub() *domain.Activity {
	a := domain.NewActivity("Chess Club", "Learn chess", "Fridays, 3:30 PM - 5:00 PM", 12)
	a.Registrations = []*domain.Registration{
		{ID: "s1", Email: "michael@mergington.edu"},
		{ID: "s2", Email: "daniel@mergington.edu"},
	}
	return a
}

func TestActivityService_SignUp(t *testing.T) {
	tests := []struct {
		name        string
		repo        *mockActivityRepository
		activity    string
		email       string
		wantErr     error
		wantEmails  int
	}{
		{
			name:       "success sends confirmation",
			repo:       &mockActivityRepository{activities: map[string]*domain.Activity{"Chess Club": chessClub()}},
			activity:   "Chess Club",
			email:      "new@mergington.edu",
			wantEmails: 1,
		},
		{
			name:     "unknown activity",
			repo:     &mockActivityRepository{activities: map[string]*domain.Activity{}},
			activity: "Nope",
			email:    "new@mergington.edu",
			wantErr:  domain.ErrActivityNotFound,
		},
		{
			name:     "already registered",
			repo:     &mockActivityRepository{activities: map[string]*domain.Activity{"Chess Club": chessClub()}},
			activity: "Chess Club",
			email:    "michael@mergington.edu",
			wantErr:  domain.ErrAlreadyRegistered,
		},
		{
			name:     "activity full",
			repo:     &mockActivityRepository{activities: map[string]*domain.Activity{"Chess Club": chessClub()}, addErr: domain.ErrActivityFull},
			activity: "Chess Club",
			email:    "new@mergington.edu",
			wantErr:  domain.ErrActivityFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emails := &mockEmailService{}
			svc := NewActivityService(tt.repo, emails, testLogger())

			reg, err := svc.SignUp(context.Background(), tt.activity, tt.email)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(emails.signupCalls) != 0 {
					t.Fatalf("expected no confirmation email on failure, got %d", len(emails.signupCalls))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if reg == nil || reg.Email != tt.email {
				t.Fatalf("expected registration for %s, got %+v", tt.email, reg)
			}
			if len(emails.signupCalls) != tt.wantEmails {
				t.Fatalf("expected %d confirmation emails, got %d", tt.wantEmails, len(emails.signupCalls))
			}
			if tt.wantEmails > 0 && emails.signupCalls[0].ActivityName != tt.activity {
				t.Fatalf("confirmation email for wrong activity: %s", emails.signupCalls[0].ActivityName)
			}
		})
	}
}

func TestActivityService_SignUp_EmailFailureIsNotFatal(t *testing.T) {
	repo := &mockActivityRepository{activities: map[string]*domain.Activity{"Chess Club": chessClub()}}
	emails := &mockEmailService{err: errors.New("ses unavailable")}
	svc := NewActivityService(repo, emails, testLogger())

	if _, err := svc.SignUp(context.Background(), "Chess Club", "new@mergington.edu"); err != nil {
		t.Fatalf("signup must succeed even when the mailer fails, got %v", err)
	}
}

func TestActivityService_SignUp_NilEmailService(t *testing.T) {
	repo := &mockActivityRepository{activities: map[string]*domain.Activity{"Chess Club": chessClub()}}
	svc := NewActivityService(repo, nil, testLogger())

	if _, err := svc.SignUp(context.Background(), "Chess Club", "new@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestActivityService_RemoveParticipant(t *testing.T) {
	tests := []struct {
		name       string
		repo       *mockActivityRepository
		activity   string
		email      string
		wantErr    error
		wantEmails int
	}{
		{
			name:       "success sends removal notice",
			repo:       &mockActivityRepository{activities: map[string]*domain.Activity{"Chess Club": chessClub()}},
			activity:   "Chess Club",
			email:      "michael@mergington.edu",
			wantEmails: 1,
		},
		{
			name:     "unknown activity",
			repo:     &mockActivityRepository{activities: map[string]*domain.Activity{}},
			activity: "Nope",
			email:    "michael@mergington.edu",
			wantErr:  domain.ErrActivityNotFound,
		},
		{
			name:     "participant not on roster",
			repo:     &mockActivityRepository{activities: map[string]*domain.Activity{"Chess Club": chessClub()}},
			activity: "Chess Club",
			email:    "ghost@mergington.edu",
			wantErr:  domain.ErrParticipantNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emails := &mockEmailService{}
			svc := NewActivityService(tt.repo, emails, testLogger())

			err := svc.RemoveParticipant(context.Background(), tt.activity, tt.email)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(emails.removalCalls) != tt.wantEmails {
				t.Fatalf("expected %d removal notices, got %d", tt.wantEmails, len(emails.removalCalls))
			}
		})
	}
}

func TestActivityService_ListActivities(t *testing.T) {
	t.Run("empty registry returns empty slice", func(t *testing.T) {
		svc := NewActivityService(&mockActivityRepository{activities: map[string]*domain.Activity{}}, nil, testLogger())
		got, err := svc.ListActivities(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty slice, got %v", got)
		}
	})

	t.Run("repo error is wrapped", func(t *testing.T) {
		svc := NewActivityService(&mockActivityRepository{listErr: errors.New("boom")}, nil, testLogger())
		if _, err := svc.ListActivities(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})
}
