package core

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

var TimeNow = time.Now

var (
	ErrUsernameTaken     error = errors.New("username already exists")
	ErrEmptyUsername     error = errors.New("username is empty")
	ErrUserNotFound      error = errors.New("user not found")
	ErrIncorrectPassword error = errors.New("incorrect password")
	ErrPlugNotFound      error = errors.New("plug not found")
)

// PlugShare owns the credential, plug and reaction rules of the service and
// the read projections handed to the transport layer.
type PlugShare struct {
	logs       *zap.SugaredLogger
	repo       Repository
	bcryptCost int
}

// NewPlugShare is a constructor function for the PlugShare type. bcryptCost is
// the work factor used when hashing new passwords.
func NewPlugShare(logger *zap.SugaredLogger, repo Repository, bcryptCost int) *PlugShare {
	return &PlugShare{
		logs:       logger,
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}

func now() time.Time {
	return TimeNow().UTC()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
