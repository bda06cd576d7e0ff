package domain

import (
	"context"
	"time"
)

// Recognized notification types. Creation is rejected for anything else.
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationSuccess = "success"
)

var ValidNotificationTypes = []string{
	NotificationInfo,
	NotificationWarning,
	NotificationSuccess,
}

type Notification struct {
	ID        int64     `json:"id"`
	UserEmail string    `json:"userEmail"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	FetchByEmail(ctx context.Context, email string) ([]Notification, error)
	// DeleteByIDAndEmail deletes only when both id and owning email match.
	DeleteByIDAndEmail(ctx context.Context, id int64, email string) error
}

type NotificationUsecase interface {
	Add(ctx context.Context, email, message, notifType string) (*Notification, error)
	List(ctx context.Context, email string) ([]Notification, error)
	Delete(ctx context.Context, id int64, email string) error
}
