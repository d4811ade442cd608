package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"activitysignup/internal/domain"
)

type activityService struct {
	activityRepo domain.ActivityRepository
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewActivityService creates an ActivityService backed by the given
// repository. emailService may be nil, in which case no confirmation
// emails are sent.
func NewActivityService(activityRepo domain.ActivityRepository, emailService domain.EmailService, logger *slog.Logger) domain.ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *activityService) ListActivities(ctx context.Context) ([]*domain.Activity, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	if activities == nil {
		activities = []*domain.Activity{}
	}
	return activities, nil
}

func (s *activityService) SignUp(ctx context.Context, activityName, email string) (*domain.Registration, error) {
	activity, err := s.activityRepo.GetByName(ctx, activityName)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}

	reg, err := s.activityRepo.AddRegistration(ctx, activityName, email)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) ||
			errors.Is(err, domain.ErrAlreadyRegistered) ||
			errors.Is(err, domain.ErrActivityFull) {
			return nil, err
		}
		return nil, fmt.Errorf("add registration: %w", err)
	}

	// Confirmation email is best effort: the registration has already
	// committed, so a mailer failure must not fail the signup.
	if s.emailService != nil {
		data := &domain.SignupConfirmationEmailData{
			Email:        email,
			ActivityName: activity.Name,
			Schedule:     activity.Schedule,
		}
		if err := s.emailService.SendSignupConfirmation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "signup confirmation email failed",
				"activity", activity.Name, "email", email, "err", err)
		}
	}
	return reg, nil
}

func (s *activityService) RemoveParticipant(ctx context.Context, activityName, email string) error {
	if err := s.activityRepo.RemoveRegistration(ctx, activityName, email); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) || errors.Is(err, domain.ErrParticipantNotFound) {
			return err
		}
		return fmt.Errorf("remove registration: %w", err)
	}

	if s.emailService != nil {
		data := &domain.RemovalNoticeEmailData{
			Email:        email,
			ActivityName: activityName,
		}
		if err := s.emailService.SendRemovalNotice(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "removal notice email failed",
				"activity", activityName, "email", email, "err", err)
		}
	}
	return nil
}
