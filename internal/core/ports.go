package core

import (
	"context"
	"plugshare/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUsers(ctx context.Context) ([]repository.User, error)
	CreatePlug(ctx context.Context, plug repository.Plug) error
	UpdatePlug(ctx context.Context, plugID, description, location string) error
	DeletePlug(ctx context.Context, plugID, ownerID string) (bool, error)
	GetPlugsByOwner(ctx context.Context, ownerID string) ([]repository.Plug, error)
	SetReaction(ctx context.Context, reaction repository.Reaction) error
}
