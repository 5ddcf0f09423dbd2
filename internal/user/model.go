package user

import (
	"time"

	"github.com/jsalinasr/SnakeDuel/internal/apperrors"
)

var (
	ErrEmailTaken         = apperrors.NewAppError(409, "Email already registered", nil)
	ErrUsernameTaken      = apperrors.NewAppError(409, "Username already taken", nil)
	ErrEmptyPassword      = apperrors.NewAppError(400, "Password required", nil)
	ErrInvalidCredentials = apperrors.NewAppError(400, "Invalid credentials", nil)
	ErrUnauthorized       = apperrors.NewAppError(401, "Invalid authentication credentials", nil)
)

type User struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	Username   string     `gorm:"uniqueIndex:idx_users_username;not null" json:"username"`
	Email      string     `gorm:"uniqueIndex:idx_users_email;not null" json:"email"`
	Credential Credential `gorm:"type:text;not null" json:"-"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is the view handed to clients and to other services. It
// never carries the credential.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
