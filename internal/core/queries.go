package core

import (
	"cmp"
	"context"
	"fmt"
	"plugshare/internal/repository"
	"slices"
)

// MyPlugs returns the plugs owned by userID, oldest first.
func (p *PlugShare) MyPlugs(ctx context.Context, userID string) ([]PlugRecord, error) {
	plugs, err := p.repo.GetPlugsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get plugs by owner: %w", err)
	}

	slices.SortStableFunc(plugs, func(a, b repository.Plug) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	records := make([]PlugRecord, 0, len(plugs))
	for _, plug := range plugs {
		records = append(records, plugToRecord(plug))
	}

	return records, nil
}

// GetUsers returns the public form of every user.
func (p *PlugShare) GetUsers(ctx context.Context) ([]UserRecord, error) {
	users, err := p.repo.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	records := make([]UserRecord, 0, len(users))
	for _, user := range users {
		plugIDs := make([]string, 0, len(user.Plugs))
		for _, plug := range user.Plugs {
			plugIDs = append(plugIDs, plug.ID)
		}

		records = append(records, UserRecord{
			ID:       user.ID,
			Username: user.Username,
			Contact:  user.Contact,
			Plugs:    plugIDs,
		})
	}

	return records, nil
}

func plugToRecord(plug repository.Plug) PlugRecord {
	reactions := slices.Clone(plug.Reactions)
	slices.SortFunc(reactions, func(a, b repository.Reaction) int {
		if c := a.ReactedAt.Compare(b.ReactedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})

	record := PlugRecord{
		ID:       plug.ID,
		Plug:     plug.Description,
		Location: plug.Location,
		UserID:   plug.OwnerID,
		Status:   plug.Status,
		Date:     formatTime(plug.CreatedAt),
		Likes:    []ReactionRecord{},
		Dislikes: []ReactionRecord{},
	}

	for _, r := range reactions {
		rec := ReactionRecord{UserID: r.UserID, Date: formatTime(r.ReactedAt)}
		switch r.Kind {
		case repository.ReactionLike:
			record.Likes = append(record.Likes, rec)
		case repository.ReactionDislike:
			record.Dislikes = append(record.Dislikes, rec)
		}
	}

	return record
}
