package model

import "time"

// SlotCapacity bounds the membership line of a single event.
const SlotCapacity = 10

// User is an account in the system. Tags accumulate the salience of every
// entity extracted from events the user created; weights never decrease.
type User struct {
	UID      string             `json:"uid"`
	Username string             `json:"username"`
	Icon     string             `json:"icon"`
	Tags     map[string]float64 `json:"tags"`
}

// Event is a gathering with a bounded, ordered membership line.
// Slots holds the UIDs of current members in join order.
type Event struct {
	EventID     string             `json:"eventId"`
	CreatedBy   string             `json:"createdBy"`
	Username    string             `json:"username"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Tags        map[string]float64 `json:"tags"`
	Image       string             `json:"image"`
	Slots       []string           `json:"slots"`
	PostedOn    time.Time          `json:"postedOn"`
}

// EventSummary is the denormalized per-member copy of an event. Icons mirrors
// Event.Slots entry for entry: Icons[i] is the current icon of Slots[i].
type EventSummary struct {
	EventID   string   `json:"eventId"`
	Name      string   `json:"name"`
	CreatedBy string   `json:"createdBy"`
	Username  string   `json:"username"`
	Current   bool     `json:"current"`
	Icons     []string `json:"icons"`
}

// FriendRequest is one half of a pending edge. The sender stores an outgoing
// record describing the recipient; the recipient stores an incoming record
// describing the sender. Both halves are written and removed together.
type FriendRequest struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
	Icon     string `json:"icon"`
}

// Friend is the counterpart snapshot written under each side when a request
// is accepted. It is never updated afterward.
type Friend struct {
	UID      string             `json:"uid"`
	Username string             `json:"username"`
	Icon     string             `json:"icon"`
	Tags     map[string]float64 `json:"tags"`
}

// FriendRequests groups the two directions of a user's pending edges.
type FriendRequests struct {
	Incoming []*FriendRequest `json:"incoming"`
	Outgoing []*FriendRequest `json:"outgoing"`
}

// Image is a catalog entry a new event's picture is chosen from.
type Image struct {
	ImageID   string             `json:"imageId"`
	URL       string             `json:"url"`
	Tags      []string           `json:"tags"`
	TagScores map[string]float64 `json:"tagScores"`
}

// TagSalience is one extracted (entity, salience) pair, salience in [0,1].
type TagSalience struct {
	Tag      string  `json:"tag"`
	Salience float64 `json:"salience"`
}
