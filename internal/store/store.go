package store

import (
	"context"

	"github.com/lineup-app/lineup-server/internal/model"
)

// Store is a transactional document store. All cross-record mutations run
// through RunTransaction; View runs a read-only body against a consistent
// snapshot. Implementations live under internal/store/<driver>/.
type Store interface {
	// RunTransaction executes fn against a snapshot of the store and commits
	// its writes atomically. On a write-write conflict with a concurrent
	// transaction fn is re-executed from scratch, up to the implementation's
	// retry budget; after that the call fails with model.ErrTxAborted.
	// fn must not produce side effects other than through the Tx.
	RunTransaction(ctx context.Context, fn func(tx Tx) error) error

	// View executes fn against a read-only snapshot.
	View(ctx context.Context, fn func(tx Tx) error) error

	Ping(ctx context.Context) error
	Close() error
}

// Tx exposes the record collections visible inside one transaction.
type Tx interface {
	Users() Users
	Events() Events
	Summaries() Summaries
	Requests() Requests
	Friends() Friends
	Images() Images
}

type Users interface {
	Get(uid string) (*model.User, error)
	Put(u *model.User) error
	Delete(uid string) error
}

type Events interface {
	Get(eventID string) (*model.Event, error)
	Put(e *model.Event) error
}

// Summaries holds the denormalized per-member event copies, keyed by
// (uid, eventID).
type Summaries interface {
	Get(uid, eventID string) (*model.EventSummary, error)
	Put(uid string, s *model.EventSummary) error
	Delete(uid, eventID string) error
	List(uid string) ([]*model.EventSummary, error)
}

// Requests holds the two halves of pending friend edges. Incoming records
// live under the recipient, outgoing records under the sender.
type Requests interface {
	Incoming(uid, fromUID string) (*model.FriendRequest, error)
	Outgoing(uid, toUID string) (*model.FriendRequest, error)
	PutIncoming(uid string, r *model.FriendRequest) error
	PutOutgoing(uid string, r *model.FriendRequest) error
	DeleteIncoming(uid, fromUID string) error
	DeleteOutgoing(uid, toUID string) error
	ListIncoming(uid string) ([]*model.FriendRequest, error)
	ListOutgoing(uid string) ([]*model.FriendRequest, error)
}

type Friends interface {
	Get(uid, otherUID string) (*model.Friend, error)
	Put(uid string, f *model.Friend) error
	List(uid string) ([]*model.Friend, error)
}

type Images interface {
	Get(imageID string) (*model.Image, error)
	Put(img *model.Image) error
	// MatchingTags returns catalog entries sharing at least one tag with the
	// query set. An empty query matches nothing.
	MatchingTags(tags map[string]float64) ([]*model.Image, error)
}
