package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/lineup-app/lineup-server/internal/model"
	"github.com/lineup-app/lineup-server/internal/ranking"
	"github.com/lineup-app/lineup-server/internal/store"
)

// FriendService runs the request/accept handshake over per-user edge
// records. Both halves of every edge are written and removed in the same
// transaction, so a pending edge and a friendship never coexist.
type FriendService struct {
	store store.Store
}

func NewFriendService(s store.Store) *FriendService {
	return &FriendService{store: s}
}

// SendRequest writes an outgoing edge under from and an incoming edge under
// to, each carrying the counterpart's username and icon at send time.
// Re-sending while a request is pending overwrites those snapshots.
func (s *FriendService) SendRequest(ctx context.Context, from, to string) error {
	if from == to {
		return fmt.Errorf("%w: cannot send a friend request to yourself", model.ErrValidation)
	}
	return s.store.RunTransaction(ctx, func(tx store.Tx) error {
		fromUser, err := tx.Users().Get(from)
		if err != nil {
			return fmt.Errorf("sender: %w", err)
		}
		toUser, err := tx.Users().Get(to)
		if err != nil {
			return fmt.Errorf("recipient: %w", err)
		}
		if _, err := tx.Friends().Get(from, to); err == nil {
			return fmt.Errorf("%w: %s and %s are already friends", model.ErrValidation, from, to)
		} else if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		if err := tx.Requests().PutOutgoing(from, &model.FriendRequest{
			UID:      to,
			Username: toUser.Username,
			Icon:     toUser.Icon,
		}); err != nil {
			return err
		}
		return tx.Requests().PutIncoming(to, &model.FriendRequest{
			UID:      from,
			Username: fromUser.Username,
			Icon:     fromUser.Icon,
		})
	})
}

// AcceptRequest consumes the pending edge from→to and establishes the
// symmetric friendship. Each side receives a snapshot of the counterpart's
// profile taken now; the snapshots are never updated afterward. Accepting a
// request that does not exist fails with model.ErrNotFound and writes
// nothing.
func (s *FriendService) AcceptRequest(ctx context.Context, to, from string) error {
	return s.store.RunTransaction(ctx, func(tx store.Tx) error {
		if _, err := tx.Requests().Outgoing(from, to); err != nil {
			return fmt.Errorf("pending request: %w", err)
		}
		if _, err := tx.Requests().Incoming(to, from); err != nil {
			return fmt.Errorf("pending request: %w", err)
		}

		toUser, err := tx.Users().Get(to)
		if err != nil {
			return err
		}
		fromUser, err := tx.Users().Get(from)
		if err != nil {
			return err
		}

		if err := tx.Friends().Put(from, &model.Friend{
			UID:      to,
			Username: toUser.Username,
			Icon:     toUser.Icon,
			Tags:     toUser.Tags,
		}); err != nil {
			return err
		}
		if err := tx.Friends().Put(to, &model.Friend{
			UID:      from,
			Username: fromUser.Username,
			Icon:     fromUser.Icon,
			Tags:     fromUser.Tags,
		}); err != nil {
			return err
		}

		if err := tx.Requests().DeleteOutgoing(from, to); err != nil {
			return err
		}
		return tx.Requests().DeleteIncoming(to, from)
	})
}

// ListRequests returns the user's pending edges in both directions.
func (s *FriendService) ListRequests(ctx context.Context, uid string) (*model.FriendRequests, error) {
	out := &model.FriendRequests{
		Incoming: []*model.FriendRequest{},
		Outgoing: []*model.FriendRequest{},
	}
	err := s.store.View(ctx, func(tx store.Tx) error {
		in, err := tx.Requests().ListIncoming(uid)
		if err != nil {
			return err
		}
		outgoing, err := tx.Requests().ListOutgoing(uid)
		if err != nil {
			return err
		}
		out.Incoming = append(out.Incoming, in...)
		out.Outgoing = append(out.Outgoing, outgoing...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListFriends returns the user's friends ordered by shared interest: the
// salience-weighted overlap between the user's tag profile and each friend's
// profile snapshot, highest first, ties by ascending uid.
func (s *FriendService) ListFriends(ctx context.Context, uid string) ([]*model.Friend, error) {
	var user *model.User
	var friends []*model.Friend
	err := s.store.View(ctx, func(tx store.Tx) error {
		var err error
		if user, err = tx.Users().Get(uid); err != nil {
			return err
		}
		friends, err = tx.Friends().List(uid)
		return err
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]ranking.Candidate, 0, len(friends))
	byUID := make(map[string]*model.Friend, len(friends))
	for _, f := range friends {
		candidates = append(candidates, ranking.Candidate{ID: f.UID, Weights: f.Tags})
		byUID[f.UID] = f
	}
	ordered := make([]*model.Friend, 0, len(friends))
	for _, c := range ranking.Rank(candidates, user.Tags) {
		ordered = append(ordered, byUID[c.ID])
	}
	return ordered, nil
}
