package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineup-app/lineup-server/internal/model"
	"github.com/lineup-app/lineup-server/internal/store"
)

func seedUserWithTags(t *testing.T, s store.Store, uid, username, icon string, tags map[string]float64) {
	t.Helper()
	err := s.RunTransaction(context.Background(), func(tx store.Tx) error {
		return tx.Users().Put(&model.User{UID: uid, Username: username, Icon: icon, Tags: tags})
	})
	require.NoError(t, err)
}

func TestSendRequestWritesBothHalves(t *testing.T) {
	st := newTestStore(t)
	svc := NewFriendService(st)
	seedUser(t, st, "alice", "Alice", "icon-a")
	seedUser(t, st, "bob", "Bob", "icon-b")

	require.NoError(t, svc.SendRequest(context.Background(), "alice", "bob"))

	reqs, err := svc.ListRequests(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, reqs.Outgoing, 1)
	assert.Equal(t, &model.FriendRequest{UID: "bob", Username: "Bob", Icon: "icon-b"}, reqs.Outgoing[0])
	assert.Empty(t, reqs.Incoming)

	reqs, err = svc.ListRequests(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, reqs.Incoming, 1)
	assert.Equal(t, &model.FriendRequest{UID: "alice", Username: "Alice", Icon: "icon-a"}, reqs.Incoming[0])
	assert.Empty(t, reqs.Outgoing)
}

func TestSendRequestToSelf(t *testing.T) {
	st := newTestStore(t)
	svc := NewFriendService(st)
	seedUser(t, st, "alice", "Alice", "icon-a")

	err := svc.SendRequest(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestSendRequestUnknownRecipient(t *testing.T) {
	st := newTestStore(t)
	svc := NewFriendService(st)
	seedUser(t, st, "alice", "Alice", "icon-a")

	err := svc.SendRequest(context.Background(), "alice", "ghost")
	assert.ErrorIs(t, err, model.ErrNotFound)

	// Nothing was written under the sender either.
	reqs, err2 := svc.ListRequests(context.Background(), "alice")
	require.NoError(t, err2)
	assert.Empty(t, reqs.Outgoing)
}

func TestResendOverwritesSnapshot(t *testing.T) {
	st := newTestStore(t)
	svc := NewFriendService(st)
	seedUser(t, st, "alice", "Alice", "icon-a")
	seedUser(t, st, "bob", "Bob", "icon-b")

	require.NoError(t, svc.SendRequest(context.Background(), "alice", "bob"))
	seedUser(t, st, "bob", "Bob", "icon-b2")
	require.NoError(t, svc.SendRequest(context.Background(), "alice", "bob"))

	reqs, err := svc.ListRequests(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, reqs.Outgoing, 1)
	assert.Equal(t, "icon-b2", reqs.Outgoing[0].Icon)
}

func TestAcceptEstablishesFriendshipAndConsumesRequest(t *testing.T) {
	st := newTestStore(t)
	svc := NewFriendService(st)
	seedUserWithTags(t, st, "alice", "Alice", "icon-a", map[string]float64{"hiking": 0.7})
	seedUserWithTags(t, st, "bob", "Bob", "icon-b", map[string]float64{"music": 0.4})

	require.NoError(t, svc.SendRequest(context.Background(), "alice", "bob"))
	require.NoError(t, svc.AcceptRequest(context.Background(), "bob", "alice"))

	aliceFriends, err := svc.ListFriends(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, "bob", aliceFriends[0].UID)
	assert.InDelta(t, 0.4, aliceFriends[0].Tags["music"], 1e-9)

	bobFriends, err := svc.ListFriends(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, "alice", bobFriends[0].UID)

	// Both pending halves are gone.
	for _, uid := range []string{"alice", "bob"} {
		reqs, err := svc.ListRequests(context.Background(), uid)
		require.NoError(t, err)
		assert.Empty(t, reqs.Incoming)
		assert.Empty(t, reqs.Outgoing)
	}
}

func TestAcceptWithoutPendingRequest(t *testing.T) {
	st := newTestStore(t)
	svc := NewFriendService(st)
	seedUser(t, st, "alice", "Alice", "icon-a")
	seedUser(t, st, "bob", "Bob", "icon-b")

	err := svc.AcceptRequest(context.Background(), "bob", "alice")
	assert.ErrorIs(t, err, model.ErrNotFound)

	friends, err2 := svc.ListFriends(context.Background(), "bob")
	require.NoError(t, err2)
	assert.Empty(t, friends)
}

func TestSendRequestWhileAlreadyFriends(t *testing.T) {
	st := newTestStore(t)
	svc := NewFriendService(st)
	seedUser(t, st, "alice", "Alice", "icon-a")
	seedUser(t, st, "bob", "Bob", "icon-b")

	require.NoError(t, svc.SendRequest(context.Background(), "alice", "bob"))
	require.NoError(t, svc.AcceptRequest(context.Background(), "bob", "alice"))

	err := svc.SendRequest(context.Background(), "alice", "bob")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestFriendshipSnapshotIsNotLive(t *testing.T) {
	st := newTestStore(t)
	svc := NewFriendService(st)
	seedUser(t, st, "alice", "Alice", "icon-a")
	seedUser(t, st, "bob", "Bob", "icon-b")

	require.NoError(t, svc.SendRequest(context.Background(), "alice", "bob"))
	require.NoError(t, svc.AcceptRequest(context.Background(), "bob", "alice"))

	// Bob's later icon change does not propagate into Alice's edge.
	seedUser(t, st, "bob", "Bob", "icon-b-new")
	friends, err := svc.ListFriends(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "icon-b", friends[0].Icon)
}

func TestListFriendsRankedBySharedInterest(t *testing.T) {
	st := newTestStore(t)
	svc := NewFriendService(st)
	seedUserWithTags(t, st, "alice", "Alice", "icon-a", map[string]float64{"hiking": 0.8, "music": 0.2})
	seedUserWithTags(t, st, "hiker", "Hiker", "i1", map[string]float64{"hiking": 0.5})
	seedUserWithTags(t, st, "dj", "DJ", "i2", map[string]float64{"music": 1.0, "hiking": 0.1})
	seedUserWithTags(t, st, "chef", "Chef", "i3", map[string]float64{"cooking": 0.9})

	for _, other := range []string{"hiker", "dj", "chef"} {
		require.NoError(t, svc.SendRequest(context.Background(), "alice", other))
		require.NoError(t, svc.AcceptRequest(context.Background(), other, "alice"))
	}

	friends, err := svc.ListFriends(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, friends, 3)
	// hiker 0.40, dj 0.28, chef 0.
	assert.Equal(t, "hiker", friends[0].UID)
	assert.Equal(t, "dj", friends[1].UID)
	assert.Equal(t, "chef", friends[2].UID)
}
