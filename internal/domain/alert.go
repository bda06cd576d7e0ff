package domain

import "context"

// JobAlert is an outbound email request from the alerting pipeline.
type JobAlert struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Mailer abstracts outbound email so usecases stay testable.
type Mailer interface {
	SendVerificationCode(to, username, code string) error
	SendJobAlert(to, subject, message string) error
	IsConfigured() bool
}

type AlertUsecase interface {
	SendJobAlert(ctx context.Context, alert *JobAlert) error
}
