package services

import (
	"context"

	"github.com/lineup-app/lineup-server/internal/model"
	"github.com/lineup-app/lineup-server/internal/ranking"
	"github.com/lineup-app/lineup-server/internal/store"
)

// UserService handles user-related operations.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService { return &UserService{store: s} }

func (s *UserService) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	if u.Tags == nil {
		u.Tags = map[string]float64{}
	}
	err := s.store.RunTransaction(ctx, func(tx store.Tx) error {
		return tx.Users().Put(u)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetUser(ctx context.Context, uid string) (*model.User, error) {
	var u *model.User
	err := s.store.View(ctx, func(tx store.Tx) error {
		var err error
		u, err = tx.Users().Get(uid)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateTags folds the given weights into the user's tag profile. Weights
// are added, never replaced, so profile weights only ever grow.
func (s *UserService) UpdateTags(ctx context.Context, uid string, tags map[string]float64) (*model.User, error) {
	extracted := make([]model.TagSalience, 0, len(tags))
	for tag, w := range tags {
		extracted = append(extracted, model.TagSalience{Tag: tag, Salience: w})
	}

	var u *model.User
	err := s.store.RunTransaction(ctx, func(tx store.Tx) error {
		var err error
		u, err = tx.Users().Get(uid)
		if err != nil {
			return err
		}
		u.Tags = ranking.MergeTags(u.Tags, extracted)
		return tx.Users().Put(u)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) DeleteUser(ctx context.Context, uid string) error {
	return s.store.RunTransaction(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().Get(uid); err != nil {
			return err
		}
		return tx.Users().Delete(uid)
	})
}
