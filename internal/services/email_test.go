package services

import (
	"context"
	"errors"
	"testing"

	"activitysignup/internal/domain"
)

type mockMailer struct {
	to, subject, html, text string
	err                     error
}

func (m *mockMailer) Send(ctx context.Context, to, subject, html, text string) error {
	m.to, m.subject, m.html, m.text = to, subject, html, text
	return m.err
}

type mockRenderer struct {
	template string
	err      error
}

func (m *mockRenderer) Render(templateName string, data any) (string, string, string, error) {
	m.template = templateName
	if m.err != nil {
		return "", "", "", m.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendSignupConfirmation(t *testing.T) {
	mailer := &mockMailer{}
	renderer := &mockRenderer{}
	svc := NewEmailService(mailer, renderer)

	data := &domain.SignupConfirmationEmailData{
		Email:        "new@mergington.edu",
		ActivityName: "Chess Club",
		Schedule:     "Fridays, 3:30 PM - 5:00 PM",
	}
	if err := svc.SendSignupConfirmation(context.Background(), data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renderer.template != "signup_confirmation" {
		t.Fatalf("expected signup_confirmation template, got %q", renderer.template)
	}
	if mailer.to != "new@mergington.edu" || mailer.subject != "subject" {
		t.Fatalf("unexpected send: to=%q subject=%q", mailer.to, mailer.subject)
	}
}

func TestEmailService_SendRemovalNotice_Errors(t *testing.T) {
	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&mockMailer{}, &mockRenderer{})
		if err := svc.SendRemovalNotice(context.Background(), nil); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("render failure", func(t *testing.T) {
		svc := NewEmailService(&mockMailer{}, &mockRenderer{err: errors.New("missing template")})
		err := svc.SendRemovalNotice(context.Background(), &domain.RemovalNoticeEmailData{Email: "a@b.c"})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("mailer failure", func(t *testing.T) {
		svc := NewEmailService(&mockMailer{err: errors.New("ses down")}, &mockRenderer{})
		err := svc.SendRemovalNotice(context.Background(), &domain.RemovalNoticeEmailData{Email: "a@b.c", ActivityName: "Chess Club"})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
