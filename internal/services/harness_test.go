package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lineup-app/lineup-server/internal/model"
	"github.com/lineup-app/lineup-server/internal/platform/logger"
	"github.com/lineup-app/lineup-server/internal/store"
	"github.com/lineup-app/lineup-server/internal/store/badgerstore"
)

const testDefaultImage = "https://img.test/default.png"

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := badgerstore.Open(t.TempDir(), 50, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s store.Store, uid, username, icon string) {
	t.Helper()
	err := s.RunTransaction(context.Background(), func(tx store.Tx) error {
		return tx.Users().Put(&model.User{UID: uid, Username: username, Icon: icon, Tags: map[string]float64{}})
	})
	require.NoError(t, err)
}

func seedEvent(t *testing.T, s store.Store, ev *model.Event) {
	t.Helper()
	if ev.Slots == nil {
		ev.Slots = []string{}
	}
	err := s.RunTransaction(context.Background(), func(tx store.Tx) error {
		return tx.Events().Put(ev)
	})
	require.NoError(t, err)
}

func seedImage(t *testing.T, s store.Store, img *model.Image) {
	t.Helper()
	err := s.RunTransaction(context.Background(), func(tx store.Tx) error {
		return tx.Images().Put(img)
	})
	require.NoError(t, err)
}

func getUser(t *testing.T, s store.Store, uid string) *model.User {
	t.Helper()
	var u *model.User
	err := s.View(context.Background(), func(tx store.Tx) error {
		var err error
		u, err = tx.Users().Get(uid)
		return err
	})
	require.NoError(t, err)
	return u
}

func getSummary(s store.Store, uid, eventID string) (*model.EventSummary, error) {
	var sm *model.EventSummary
	err := s.View(context.Background(), func(tx store.Tx) error {
		var err error
		sm, err = tx.Summaries().Get(uid, eventID)
		return err
	})
	return sm, err
}

// fakeExtractor returns canned tags, or an error when set.
type fakeExtractor struct {
	tags  []model.TagSalience
	err   error
	calls int
}

func (f *fakeExtractor) ExtractTags(ctx context.Context, text string) ([]model.TagSalience, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tags, nil
}

// fakeLabeler returns canned labels, or an error when set.
type fakeLabeler struct {
	labels []model.TagSalience
	err    error
}

func (f *fakeLabeler) LabelImage(ctx context.Context, url string) ([]model.TagSalience, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.labels, nil
}
