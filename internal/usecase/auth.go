package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/heavybuild/heavybuild-pro/internal/domain/errors"
	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
	"github.com/heavybuild/heavybuild-pro/internal/domain/repository"
	pkgAuth "github.com/heavybuild/heavybuild-pro/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a customer account and returns auth token.
func (u *AuthUseCase) Register(ctx context.Context, login, email, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	email = strings.TrimSpace(email)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if err := validateEmail(email); err != nil {
		return nil, "", err
	}

	usr, err := u.create(ctx, login, email, password, model.RoleUser)
	if err != nil {
		return nil, "", err
	}

	token, err := u.issue(usr)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.issue(usr)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// ParseToken resolves caller identity from provided token.
func (u *AuthUseCase) ParseToken(token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// EnsureAdmin creates the back office account unless the login is taken.
// It reports whether an account was created.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, login, email, password string) (bool, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return false, nil
	}

	_, err := u.users.GetByLogin(ctx, login)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, domainErrors.ErrNotFound):
		return false, err
	}

	if _, err := u.create(ctx, login, email, password, model.RoleAdmin); err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (u *AuthUseCase) create(ctx context.Context, login, email, password string, role model.Role) (*model.User, error) {
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, &model.User{Login: login, Email: email, PasswordHash: hash, Role: role})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return usr, nil
}

func (u *AuthUseCase) issue(usr *model.User) (string, error) {
	token, err := u.tokens.IssueToken(model.Identity{UserID: usr.ID, Role: usr.Role})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
