package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recommendationRepo struct {
	db *pgxpool.Pool
}

func NewRecommendationRepository(db *pgxpool.Pool) domain.RecommendationRepository {
	return &recommendationRepo{db: db}
}

// CreateBatch inserts the whole batch inside one transaction, so a failure
// partway leaves nothing behind.
func (r *recommendationRepo) CreateBatch(ctx context.Context, recs []domain.JobRecommendation) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	query := `INSERT INTO job_recommendations (user_id, job_id, match_percentage, created_at)
		VALUES ($1, $2, $3, now())`
	for _, rec := range recs {
		batch.Queue(query, rec.UserID, rec.JobID, rec.MatchPercentage)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *recommendationRepo) FetchByUserID(ctx context.Context, userID string) ([]domain.JobRecommendation, error) {
	query := `SELECT id, user_id, job_id, match_percentage, created_at
		FROM job_recommendations WHERE user_id = $1 ORDER BY match_percentage DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []domain.JobRecommendation
	for rows.Next() {
		var rec domain.JobRecommendation
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.JobID, &rec.MatchPercentage, &rec.CreatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
