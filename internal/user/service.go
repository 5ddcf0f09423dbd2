package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsalinasr/SnakeDuel/internal/apperrors"
)

// AuthService owns signup, login and token validation. The session
// token is the user id itself: validity means the user exists, nothing
// more.
type AuthService struct {
	repo UserRepository
}

func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

func (s *AuthService) Signup(req SignupRequest) (*PublicUser, error) {
	if req.Password == "" {
		return nil, ErrEmptyPassword
	}

	credential, err := NewHashedCredential(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error hashing password", err)
	}

	newUser := &User{
		ID:         uuid.New().String(),
		Username:   req.Username,
		Email:      req.Email,
		Credential: credential,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.CreateUser(newUser); err != nil {
		return nil, err
	}

	public := newUser.Public()
	return &public, nil
}

// Login verifies the password and returns the session token. A match
// against a legacy plaintext credential rewrites it as a bcrypt hash
// before the token is returned; the rewrite is idempotent, so
// concurrent logins racing the same legacy password just overwrite
// each other with equivalent records.
func (s *AuthService) Login(req LoginRequest) (string, *PublicUser, error) {
	account, err := s.repo.GetUserByEmail(req.Email)
	if err != nil {
		return "", nil, err
	}
	if account == nil {
		return "", nil, ErrInvalidCredentials
	}

	if !account.Credential.Verify(req.Password) {
		return "", nil, ErrInvalidCredentials
	}

	if account.Credential.NeedsRehash() {
		credential, err := NewHashedCredential(req.Password)
		if err != nil {
			return "", nil, apperrors.NewAppError(500, "error hashing password", err)
		}
		if err := s.repo.UpdateCredential(account.ID, credential); err != nil {
			return "", nil, err
		}
		account.Credential = credential
	}

	public := account.Public()
	return account.ID, &public, nil
}

func (s *AuthService) Validate(token string) (*PublicUser, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	account, err := s.repo.GetUserByID(token)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrUnauthorized
	}

	public := account.Public()
	return &public, nil
}
