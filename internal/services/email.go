package services

import (
	"context"
	"fmt"
	"log"

	"activitysignup/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendSignupConfirmation sends a signup confirmation using the "signup_confirmation" template.
func (s *emailService) SendSignupConfirmation(ctx context.Context, data *domain.SignupConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("signup confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("signup_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render signup_confirmation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send signup confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Signup confirmation sent to %s for %s", data.Email, data.ActivityName)
	return nil
}

// SendRemovalNotice sends a removal notice using the "removal_notice" template.
func (s *emailService) SendRemovalNotice(ctx context.Context, data *domain.RemovalNoticeEmailData) error {
	if data == nil {
		return fmt.Errorf("removal notice data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("removal_notice", data)
	if err != nil {
		return fmt.Errorf("failed to render removal_notice template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send removal notice email: %w", err)
	}
	log.Printf("[EMAIL] Removal notice sent to %s for %s", data.Email, data.ActivityName)
	return nil
}
