package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const userColumns = `id, username, email, password, verify_code, verify_code_expire, is_verified,
	COALESCE(skills, '[]'::jsonb), COALESCE(experience, '[]'::jsonb), COALESCE(education, '[]'::jsonb),
	preferences, COALESCE(saved_jobs, '{}'), created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.VerifyCode, &u.VerifyCodeExpire, &u.IsVerified,
		&u.Skills, &u.Experience, &u.Education, &u.Preferences, &u.SavedJobs, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users
		(id, username, email, password, verify_code, verify_code_expire, is_verified,
		 skills, experience, education, preferences, saved_jobs, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9::jsonb, $10::jsonb, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.Password,
		user.VerifyCode, user.VerifyCodeExpire, user.IsVerified,
		asJSON(user.Skills), asJSON(user.Experience), asJSON(user.Education),
		user.Preferences, user.SavedJobs, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this username or email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

// GetVerifiedByUsername only considers verified users; unverified rows do
// not block signup-conflict or uniqueness checks.
func (r *userRepo) GetVerifiedByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND is_verified = true`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

// ReissueVerification replaces the code, expiry, and password hash of an
// existing unverified user in a single statement.
func (r *userRepo) ReissueVerification(ctx context.Context, email, passwordHash, code string, expire time.Time) error {
	query := `UPDATE users
		SET password = $2, verify_code = $3, verify_code_expire = $4, updated_at = now()
		WHERE email = $1 AND is_verified = false`
	result, err := r.db.Exec(ctx, query, email, passwordHash, code, expire)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) MarkVerified(ctx context.Context, username string) error {
	query := `UPDATE users SET is_verified = true, updated_at = now() WHERE username = $1`
	result, err := r.db.Exec(ctx, query, username)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.Password, &u.VerifyCode, &u.VerifyCodeExpire, &u.IsVerified,
			&u.Skills, &u.Experience, &u.Education, &u.Preferences, &u.SavedJobs, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateProfile applies only the fields present in upd and returns the
// updated record.
func (r *userRepo) UpdateProfile(ctx context.Context, email string, upd domain.ProfileUpdate) (*domain.User, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{email}

	add := func(clause string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf(clause, len(args)))
	}

	if upd.Skills != nil {
		add("skills = $%d::jsonb", asJSON(upd.Skills))
	}
	if upd.Experience != nil {
		add("experience = $%d::jsonb", asJSON(upd.Experience))
	}
	if upd.Education != nil {
		add("education = $%d::jsonb", asJSON(upd.Education))
	}
	if upd.Preferences != nil {
		add("preferences = $%d", *upd.Preferences)
	}
	if upd.SavedJobs != nil {
		add("saved_jobs = $%d", upd.SavedJobs)
	}

	query := `UPDATE users SET ` + strings.Join(sets, ", ") +
		` WHERE email = $1 RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// AppendSavedJob adds jobID to the user's saved list in one conditional
// statement, so two concurrent saves cannot both pass the duplicate check.
func (r *userRepo) AppendSavedJob(ctx context.Context, email, jobID string) ([]string, error) {
	query := `UPDATE users
		SET saved_jobs = array_append(saved_jobs, $2), updated_at = now()
		WHERE email = $1 AND NOT ($2 = ANY(saved_jobs))
		RETURNING saved_jobs`
	var saved []string
	err := r.db.QueryRow(ctx, query, email, jobID).Scan(&saved)
	if err == nil {
		return saved, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// No row updated: either the user is missing or the job is already saved.
	if _, lookupErr := r.savedJobs(ctx, email); lookupErr != nil {
		return nil, lookupErr
	}
	return nil, domain.ErrAlreadySaved
}

// RemoveSavedJob removes jobID in one conditional statement.
func (r *userRepo) RemoveSavedJob(ctx context.Context, email, jobID string) ([]string, error) {
	query := `UPDATE users
		SET saved_jobs = array_remove(saved_jobs, $2), updated_at = now()
		WHERE email = $1 AND $2 = ANY(saved_jobs)
		RETURNING saved_jobs`
	var saved []string
	err := r.db.QueryRow(ctx, query, email, jobID).Scan(&saved)
	if err == nil {
		return saved, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	existing, lookupErr := r.savedJobs(ctx, email)
	if lookupErr != nil {
		return nil, lookupErr
	}
	if len(existing) == 0 {
		return nil, domain.ErrNoSavedJobs
	}
	return nil, domain.ErrNotSaved
}

func (r *userRepo) savedJobs(ctx context.Context, email string) ([]string, error) {
	var saved []string
	err := r.db.QueryRow(ctx, `SELECT COALESCE(saved_jobs, '{}') FROM users WHERE email = $1`, email).Scan(&saved)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// asJSON renders a value for a jsonb parameter. The text cast keeps the
// simple query protocol happy.
func asJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
