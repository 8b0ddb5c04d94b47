package core

import (
	"context"
	"fmt"
	"strings"
)

// RepositoryAuthService implements AuthService on top of a UserRepository,
// a password hasher and a token manager.
type RepositoryAuthService struct {
	users  UserRepository
	hasher PasswordHasher
	tokens *TokenManager
}

func NewRepositoryAuthService(users UserRepository, hasher PasswordHasher, tokens *TokenManager) *RepositoryAuthService {
	return &RepositoryAuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register hashes the password and stores the new user. Field validation
// happens at the handler boundary, before any store call; by the time this
// runs the three fields are known to be non-empty.
func (s *RepositoryAuthService) Register(ctx context.Context, name, email, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.users.Create(ctx, name, email, hash); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies credentials and issues a bearer token. An unknown email and
// a wrong password both return ErrInvalidCredentials so the response cannot
// reveal which one it was.
func (s *RepositoryAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if !s.hasher.Check(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
