package core

import (
	"context"
	"errors"
	"fmt"
	"plugshare/internal/repository"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SignUp registers a new user and returns its id. The username and contact are
// trimmed; the password is stored only as a bcrypt hash.
func (p *PlugShare) SignUp(ctx context.Context, msg SignUpMessage) (string, error) {
	username := strings.TrimSpace(msg.Username)
	if username == "" {
		return "", ErrEmptyUsername
	}

	_, err := p.repo.GetUserByUsername(ctx, username)
	if err == nil {
		return "", ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return "", fmt.Errorf("get user from db: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), p.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Contact:      strings.TrimSpace(msg.Contact),
	}

	if err := p.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	p.logs.Infow("user signed up", "userId", user.ID, "username", username)
	return user.ID, nil
}

// SignIn checks the provided username and password against the stored hash.
// No token is issued: a nil error is the whole outcome.
func (p *PlugShare) SignIn(ctx context.Context, msg AuthMessage) error {
	user, err := p.repo.GetUserByUsername(ctx, strings.TrimSpace(msg.Username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return ErrIncorrectPassword
	}

	return nil
}
