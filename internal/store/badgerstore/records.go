package badgerstore

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/lineup-app/lineup-server/internal/model"
	"github.com/lineup-app/lineup-server/internal/store"
)

// Key layout. Paths are validated to exclude '/' so segments never collide.
const (
	prefixUser    = "user/"
	prefixEvent   = "event/"
	prefixSummary = "summary/"
	prefixReqIn   = "reqin/"
	prefixReqOut  = "reqout/"
	prefixFriend  = "friend/"
	prefixImage   = "image/"
)

type tx struct {
	txn *badger.Txn
}

func (t *tx) Users() store.Users         { return users{t} }
func (t *tx) Events() store.Events       { return events{t} }
func (t *tx) Summaries() store.Summaries { return summaries{t} }
func (t *tx) Requests() store.Requests   { return requests{t} }
func (t *tx) Friends() store.Friends     { return friends{t} }
func (t *tx) Images() store.Images       { return images{t} }

// get decodes the document at key into out. Missing keys map to
// model.ErrNotFound, undecodable documents to model.ErrDecode.
func (t *tx) get(key string, out any) error {
	item, err := t.txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", model.ErrNotFound, key)
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, out); err != nil {
			return fmt.Errorf("%w: %s: %v", model.ErrDecode, key, err)
		}
		return nil
	})
}

func (t *tx) put(key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := t.txn.Set([]byte(key), data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (t *tx) delete(key string) error {
	if err := t.txn.Delete([]byte(key)); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// scan decodes every document under prefix, passing each to collect.
func (t *tx) scan(prefix string, collect func(val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := t.txn.NewIterator(opts)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		if err := it.Item().Value(collect); err != nil {
			return err
		}
	}
	return nil
}

type users struct{ t *tx }

func (c users) Get(uid string) (*model.User, error) {
	var u model.User
	if err := c.t.get(prefixUser+uid, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c users) Put(u *model.User) error {
	return c.t.put(prefixUser+u.UID, u)
}

func (c users) Delete(uid string) error {
	return c.t.delete(prefixUser + uid)
}

type events struct{ t *tx }

func (c events) Get(eventID string) (*model.Event, error) {
	var e model.Event
	if err := c.t.get(prefixEvent+eventID, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c events) Put(e *model.Event) error {
	return c.t.put(prefixEvent+e.EventID, e)
}

type summaries struct{ t *tx }

func (c summaries) Get(uid, eventID string) (*model.EventSummary, error) {
	var s model.EventSummary
	if err := c.t.get(prefixSummary+uid+"/"+eventID, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c summaries) Put(uid string, s *model.EventSummary) error {
	return c.t.put(prefixSummary+uid+"/"+s.EventID, s)
}

func (c summaries) Delete(uid, eventID string) error {
	return c.t.delete(prefixSummary + uid + "/" + eventID)
}

func (c summaries) List(uid string) ([]*model.EventSummary, error) {
	var out []*model.EventSummary
	err := c.t.scan(prefixSummary+uid+"/", func(val []byte) error {
		var s model.EventSummary
		if err := json.Unmarshal(val, &s); err != nil {
			return fmt.Errorf("%w: summary under %s: %v", model.ErrDecode, uid, err)
		}
		out = append(out, &s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type requests struct{ t *tx }

func (c requests) Incoming(uid, fromUID string) (*model.FriendRequest, error) {
	var r model.FriendRequest
	if err := c.t.get(prefixReqIn+uid+"/"+fromUID, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c requests) Outgoing(uid, toUID string) (*model.FriendRequest, error) {
	var r model.FriendRequest
	if err := c.t.get(prefixReqOut+uid+"/"+toUID, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c requests) PutIncoming(uid string, r *model.FriendRequest) error {
	return c.t.put(prefixReqIn+uid+"/"+r.UID, r)
}

func (c requests) PutOutgoing(uid string, r *model.FriendRequest) error {
	return c.t.put(prefixReqOut+uid+"/"+r.UID, r)
}

func (c requests) DeleteIncoming(uid, fromUID string) error {
	return c.t.delete(prefixReqIn + uid + "/" + fromUID)
}

func (c requests) DeleteOutgoing(uid, toUID string) error {
	return c.t.delete(prefixReqOut + uid + "/" + toUID)
}

func (c requests) ListIncoming(uid string) ([]*model.FriendRequest, error) {
	return c.list(prefixReqIn + uid + "/")
}

func (c requests) ListOutgoing(uid string) ([]*model.FriendRequest, error) {
	return c.list(prefixReqOut + uid + "/")
}

func (c requests) list(prefix string) ([]*model.FriendRequest, error) {
	var out []*model.FriendRequest
	err := c.t.scan(prefix, func(val []byte) error {
		var r model.FriendRequest
		if err := json.Unmarshal(val, &r); err != nil {
			return fmt.Errorf("%w: request under %s: %v", model.ErrDecode, prefix, err)
		}
		out = append(out, &r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type friends struct{ t *tx }

func (c friends) Get(uid, otherUID string) (*model.Friend, error) {
	var f model.Friend
	if err := c.t.get(prefixFriend+uid+"/"+otherUID, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c friends) Put(uid string, f *model.Friend) error {
	return c.t.put(prefixFriend+uid+"/"+f.UID, f)
}

func (c friends) List(uid string) ([]*model.Friend, error) {
	var out []*model.Friend
	err := c.t.scan(prefixFriend+uid+"/", func(val []byte) error {
		var f model.Friend
		if err := json.Unmarshal(val, &f); err != nil {
			return fmt.Errorf("%w: friend under %s: %v", model.ErrDecode, uid, err)
		}
		out = append(out, &f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type images struct{ t *tx }

func (c images) Get(imageID string) (*model.Image, error) {
	var img model.Image
	if err := c.t.get(prefixImage+imageID, &img); err != nil {
		return nil, err
	}
	return &img, nil
}

func (c images) Put(img *model.Image) error {
	return c.t.put(prefixImage+img.ImageID, img)
}

func (c images) MatchingTags(tags map[string]float64) ([]*model.Image, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	var out []*model.Image
	err := c.t.scan(prefixImage, func(val []byte) error {
		var img model.Image
		if err := json.Unmarshal(val, &img); err != nil {
			return fmt.Errorf("%w: image record: %v", model.ErrDecode, err)
		}
		for tag := range img.TagScores {
			if _, ok := tags[tag]; ok {
				out = append(out, &img)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Badger iterates keys in byte order already; keep the contract explicit
	// so callers can rely on a deterministic candidate order.
	sort.Slice(out, func(i, j int) bool { return out[i].ImageID < out[j].ImageID })
	return out, nil
}
