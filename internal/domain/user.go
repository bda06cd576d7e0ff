package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrAlreadySaved = errors.New("job already saved")
	ErrNoSavedJobs  = errors.New("no saved jobs")
	ErrNotSaved     = errors.New("job not found in saved list")
)

// Experience is one entry in a user's work history.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
}

// Education is one entry in a user's education history.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
}

type User struct {
	ID               string       `json:"id"`
	Username         string       `json:"username"`
	Email            string       `json:"email"`
	Password         string       `json:"-"` // bcrypt hash, never serialized
	VerifyCode       string       `json:"-"`
	VerifyCodeExpire time.Time    `json:"-"`
	IsVerified       bool         `json:"isVerified"`
	Skills           []string     `json:"skills"`
	Experience       []Experience `json:"experience"`
	Education        []Education  `json:"education"`
	Preferences      *string      `json:"preferences,omitempty"`
	SavedJobs        []string     `json:"savedJobs"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// ProfileUpdate carries a partial profile change. Nil slices/pointers mean
// "leave untouched"; an empty non-nil Preferences value is written as-is.
type ProfileUpdate struct {
	Skills      []string
	Experience  []Experience
	Education   []Education
	Preferences *string
	SavedJobs   []string
}

// IsEmpty reports whether the update would change nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Skills == nil && p.Experience == nil && p.Education == nil &&
		p.Preferences == nil && p.SavedJobs == nil
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetVerifiedByUsername(ctx context.Context, username string) (*User, error)
	ReissueVerification(ctx context.Context, email, passwordHash, code string, expire time.Time) error
	MarkVerified(ctx context.Context, username string) error
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, email string, upd ProfileUpdate) (*User, error)
	AppendSavedJob(ctx context.Context, email, jobID string) ([]string, error)
	RemoveSavedJob(ctx context.Context, email, jobID string) ([]string, error)
}

type AccountUsecase interface {
	Signup(ctx context.Context, username, email, password string) error
	CheckUsernameUnique(ctx context.Context, username string) (bool, error)
	VerifyCode(ctx context.Context, username, code string) error
	ListUsers(ctx context.Context) ([]User, error)
	GetProfile(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, email string, upd ProfileUpdate) (*User, error)
}

// Identity is the minimal payload carried by a session token.
type Identity struct {
	ID         string `json:"id"`
	Username   string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

type AuthUsecase interface {
	Authorize(ctx context.Context, email, password string) (*Identity, error)
}

// SavedJobsResult pairs hydrated Job records with their raw identifiers.
type SavedJobsResult struct {
	Jobs        []Job    `json:"jobs"`
	SavedJobIDs []string `json:"savedJobIds"`
}

type SavedJobUsecase interface {
	SaveJob(ctx context.Context, email, jobID string) ([]string, error)
	RemoveJob(ctx context.Context, email, jobID string) ([]string, error)
	ListSavedJobs(ctx context.Context, email string) (*SavedJobsResult, error)
}
