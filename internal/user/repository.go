package user

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/jsalinasr/SnakeDuel/internal/apperrors"
)

type UserRepository interface {
	CreateUser(user *User) error
	GetUserByEmail(email string) (*User, error)
	GetUserByID(id string) (*User, error)
	UpdateCredential(id string, credential Credential) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// CreateUser inserts the user, letting the unique indexes arbitrate
// concurrent signups. Any pre-insert existence check is racy, so the
// constraint violation itself is mapped to the domain error.
func (r *GormUserRepository) CreateUser(user *User) error {
	if err := r.db.Create(user).Error; err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return ErrEmailTaken
		case strings.Contains(pgErr.ConstraintName, "username"):
			return ErrUsernameTaken
		}
	}
	return apperrors.NewAppError(500, "error creating user", err)
}

func (r *GormUserRepository) GetUserByEmail(email string) (*User, error) {
	var u User
	result := r.db.Where("email = ?", email).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error fetching user", result.Error)
	}
	return &u, nil
}

func (r *GormUserRepository) GetUserByID(id string) (*User, error) {
	var u User
	result := r.db.Where("id = ?", id).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error fetching user", result.Error)
	}
	return &u, nil
}

func (r *GormUserRepository) UpdateCredential(id string, credential Credential) error {
	result := r.db.Model(&User{}).Where("id = ?", id).Update("credential", credential)
	if result.Error != nil {
		return apperrors.NewAppError(500, "error updating credential", result.Error)
	}
	return nil
}
