package repository

import (
	"context"
	"errors"
	"fmt"
	"plugshare/internal/db"
)

var (
	ErrUserNotFound  error = errors.New("user not found")
	ErrPlugNotFound  error = errors.New("plug not found")
	ErrUsernameTaken error = errors.New("username already exists")
)

type PlugShareRepository struct {
	db Storage
}

func NewPlugShareRepository(db Storage) *PlugShareRepository {
	return &PlugShareRepository{
		db: db,
	}
}

func (r *PlugShareRepository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Plug{}, &Reaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *PlugShareRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *PlugShareRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, map[string]any{"username": username}, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// GetUsers returns every user with its owned plugs loaded.
func (r *PlugShareRepository) GetUsers(ctx context.Context) ([]User, error) {
	users := []User{}

	err := r.db.GetAll(ctx, &users, "Plugs")
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	return users, nil
}

// CreatePlug stores plug after checking, in the same transaction, that its
// owner exists.
func (r *PlugShareRepository) CreatePlug(ctx context.Context, plug Plug) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		var owner User
		err := r.db.GetOneBy(ctx, map[string]any{"id": plug.OwnerID}, &owner)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("get plug owner: %w", err)
		}

		if err := r.db.Create(ctx, &plug); err != nil {
			return fmt.Errorf("create plug: %w", err)
		}

		return nil
	})
}

func (r *PlugShareRepository) UpdatePlug(ctx context.Context, plugID, description, location string) error {
	rows, err := r.db.UpdateBy(ctx, &Plug{},
		map[string]any{"id": plugID},
		map[string]any{
			"description": description,
			"location":    location,
		})
	if err != nil {
		return fmt.Errorf("update plug: %w", err)
	}

	if rows == 0 {
		return ErrPlugNotFound
	}

	return nil
}

// DeletePlug removes the plug and its reactions when plugID is owned by
// ownerID. It reports whether anything was deleted; a mismatch is not an error.
func (r *PlugShareRepository) DeletePlug(ctx context.Context, plugID, ownerID string) (bool, error) {
	deleted := false
	conditions := map[string]any{"id": plugID, "owner_id": ownerID}

	err := r.db.Transaction(ctx, func(ctx context.Context) error {
		var plug Plug
		err := r.db.GetOneBy(ctx, conditions, &plug)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("get plug: %w", err)
		}

		if _, err := r.db.DeleteBy(ctx, &Reaction{}, map[string]any{"plug_id": plugID}); err != nil {
			return fmt.Errorf("delete plug reactions: %w", err)
		}

		rows, err := r.db.DeleteBy(ctx, &Plug{}, conditions)
		if err != nil {
			return fmt.Errorf("delete plug: %w", err)
		}

		deleted = rows > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

// GetPlugsByOwner returns the plugs of ownerID with their reactions loaded.
func (r *PlugShareRepository) GetPlugsByOwner(ctx context.Context, ownerID string) ([]Plug, error) {
	plugs := []Plug{}

	err := r.db.GetAllBy(ctx, map[string]any{"owner_id": ownerID}, &plugs, "Reactions")
	if err != nil {
		return nil, fmt.Errorf("get plugs by owner: %w", err)
	}

	return plugs, nil
}

// SetReaction records reaction as the only reaction of its user on its plug,
// replacing a previous like or dislike in a single upsert.
func (r *PlugShareRepository) SetReaction(ctx context.Context, reaction Reaction) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		var plug Plug
		err := r.db.GetOneBy(ctx, map[string]any{"id": reaction.PlugID}, &plug)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return ErrPlugNotFound
			}
			return fmt.Errorf("get plug: %w", err)
		}

		err = r.db.Upsert(ctx, &reaction,
			[]string{"plug_id", "user_id"},
			[]string{"kind", "reacted_at"})
		if err != nil {
			return fmt.Errorf("set %s reaction: %w", reaction.Kind, err)
		}

		return nil
	})
}
