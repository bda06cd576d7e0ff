package domain

type CtxKey string

const (
	KeyUserID       CtxKey = "UserID"
	KeyUserEmail    CtxKey = "Email"
	KeyUserName     CtxKey = "Username"
	KeyUserVerified CtxKey = "Verified"
)
