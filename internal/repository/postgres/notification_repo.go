package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (user_email, message, type, created_at)
		VALUES ($1, $2, $3, now()) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query, n.UserEmail, n.Message, n.Type).
		Scan(&n.ID, &n.CreatedAt)
}

func (r *notificationRepo) FetchByEmail(ctx context.Context, email string) ([]domain.Notification, error) {
	query := `SELECT id, user_email, message, type, created_at
		FROM notifications WHERE user_email = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserEmail, &n.Message, &n.Type, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// DeleteByIDAndEmail enforces ownership at the query level: nothing is
// deleted unless both id and owning email match.
func (r *notificationRepo) DeleteByIDAndEmail(ctx context.Context, id int64, email string) error {
	query := `DELETE FROM notifications WHERE id = $1 AND user_email = $2`
	result, err := r.db.Exec(ctx, query, id, email)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
