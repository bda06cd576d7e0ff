package usecase

import (
	"context"
	"slices"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type notificationUsecase struct {
	notifRepo domain.NotificationRepository
}

func NewNotificationUsecase(notifRepo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{notifRepo: notifRepo}
}

// Add creates a notification after checking the closed type enumeration.
func (uc *notificationUsecase) Add(ctx context.Context, email, message, notifType string) (*domain.Notification, error) {
	if !slices.Contains(domain.ValidNotificationTypes, notifType) {
		return nil, apperror.BadRequest("Invalid notification type: must be info, warning, or success")
	}

	n := &domain.Notification{
		UserEmail: strings.ToLower(strings.TrimSpace(email)),
		Message:   message,
		Type:      notifType,
	}
	if err := uc.notifRepo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (uc *notificationUsecase) List(ctx context.Context, email string) ([]domain.Notification, error) {
	return uc.notifRepo.FetchByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// Delete removes a notification only when id and owning email both match.
func (uc *notificationUsecase) Delete(ctx context.Context, id int64, email string) error {
	err := uc.notifRepo.DeleteByIDAndEmail(ctx, id, strings.ToLower(strings.TrimSpace(email)))
	if err == domain.ErrNotFound {
		return apperror.NotFound("Notification not found or not authorized")
	}
	return err
}
