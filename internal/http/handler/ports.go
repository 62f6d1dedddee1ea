package handler

import (
	"context"
	"net/http"
	"plugshare/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name PlugService . PlugService
type PlugService interface {
	SignUp(ctx context.Context, msg core.SignUpMessage) (string, error)
	SignIn(ctx context.Context, msg core.AuthMessage) error
	AddPlug(ctx context.Context, msg core.PlugMessage) (string, error)
	EditPlug(ctx context.Context, msg core.EditPlugMessage) error
	DeletePlug(ctx context.Context, plugID, userID string) error
	MyPlugs(ctx context.Context, userID string) ([]core.PlugRecord, error)
	LikePlug(ctx context.Context, plugID, userID string) error
	DislikePlug(ctx context.Context, plugID, userID string) error
	GetUsers(ctx context.Context) ([]core.UserRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestDecoder . RequestDecoder
type RequestDecoder interface {
	DecodePayload(r *http.Request, object any) error
}
