package core

import (
	"context"
	"errors"
	"fmt"
	"plugshare/internal/repository"
	"strings"

	"github.com/google/uuid"
)

// AddPlug stores a new plug owned by msg.OwnerID and returns its id.
func (p *PlugShare) AddPlug(ctx context.Context, msg PlugMessage) (string, error) {
	plug := repository.Plug{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(msg.Description),
		Location:    strings.TrimSpace(msg.Location),
		OwnerID:     msg.OwnerID,
		Status:      true,
		CreatedAt:   now(),
	}

	if err := p.repo.CreatePlug(ctx, plug); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("create plug: %w", err)
	}

	p.logs.Infow("plug added", "plugId", plug.ID, "userId", plug.OwnerID)
	return plug.ID, nil
}

// EditPlug replaces the description and location of a plug. Owner, status,
// reactions and creation time are left untouched.
func (p *PlugShare) EditPlug(ctx context.Context, msg EditPlugMessage) error {
	err := p.repo.UpdatePlug(ctx, msg.PlugID,
		strings.TrimSpace(msg.Description),
		strings.TrimSpace(msg.Location))
	if err != nil {
		if errors.Is(err, repository.ErrPlugNotFound) {
			return ErrPlugNotFound
		}
		return fmt.Errorf("update plug: %w", err)
	}

	return nil
}

// DeletePlug removes the plug only when userID owns it. Any mismatch is a
// silent no-op.
func (p *PlugShare) DeletePlug(ctx context.Context, plugID, userID string) error {
	deleted, err := p.repo.DeletePlug(ctx, plugID, userID)
	if err != nil {
		return fmt.Errorf("delete plug: %w", err)
	}

	p.logs.Infow("plug delete requested", "plugId", plugID, "userId", userID, "deleted", deleted)
	return nil
}
