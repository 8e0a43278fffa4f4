package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/errormind/ent"
	"github.com/abhisek/errormind/ent/setting"
)

// currentUserKey is the settings row holding the signed-in user's id.
const currentUserKey = "current_user"

// sessionRepo implements SessionRepo over the settings table.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) SetCurrent(ctx context.Context, userID string) error {
	err := r.client.Setting.Create().
		SetKey(currentUserKey).
		SetValue(userID).
		OnConflict().
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set current user: %w", err)
	}
	return nil
}

func (r *sessionRepo) Current(ctx context.Context) (*User, error) {
	row, err := r.client.Setting.Query().
		Where(setting.Key(currentUserKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query current user: %w", err)
	}
	if row.Value == "" {
		return nil, nil
	}

	u, err := (&userRepo{client: r.client}).Get(ctx, row.Value)
	if err != nil {
		// A dangling pointer (user deleted out of band) reads as signed out.
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	_, err := r.client.Setting.Delete().
		Where(setting.Key(currentUserKey)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear current user: %w", err)
	}
	return nil
}
