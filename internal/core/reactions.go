package core

import (
	"context"
	"errors"
	"fmt"
	"plugshare/internal/repository"
)

// LikePlug makes userID's reaction on plugID a like, clearing any dislike.
func (p *PlugShare) LikePlug(ctx context.Context, plugID, userID string) error {
	return p.react(ctx, plugID, userID, repository.ReactionLike)
}

// DislikePlug makes userID's reaction on plugID a dislike, clearing any like.
func (p *PlugShare) DislikePlug(ctx context.Context, plugID, userID string) error {
	return p.react(ctx, plugID, userID, repository.ReactionDislike)
}

func (p *PlugShare) react(ctx context.Context, plugID, userID string, kind repository.ReactionKind) error {
	err := p.repo.SetReaction(ctx, repository.Reaction{
		PlugID:    plugID,
		UserID:    userID,
		Kind:      kind,
		ReactedAt: now(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrPlugNotFound) {
			return ErrPlugNotFound
		}
		return fmt.Errorf("set reaction: %w", err)
	}

	p.logs.Infow("plug reaction set", "plugId", plugID, "userId", userID, "reaction", kind)
	return nil
}
