package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"
)

type alertUsecase struct {
	mailer domain.Mailer
}

func NewAlertUsecase(mailer domain.Mailer) domain.AlertUsecase {
	return &alertUsecase{mailer: mailer}
}

// SendJobAlert validates the alert request and sends the email
func (uc *alertUsecase) SendJobAlert(ctx context.Context, alert *domain.JobAlert) error {
	if strings.TrimSpace(alert.To) == "" {
		return fmt.Errorf("recipient is required")
	}
	if strings.TrimSpace(alert.Subject) == "" {
		return fmt.Errorf("subject is required")
	}
	if strings.TrimSpace(alert.Message) == "" {
		return fmt.Errorf("message is required")
	}

	if !uc.mailer.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}

	if err := uc.mailer.SendJobAlert(strings.TrimSpace(alert.To), strings.TrimSpace(alert.Subject), alert.Message); err != nil {
		return fmt.Errorf("failed to send job alert: %w", err)
	}
	return nil
}
