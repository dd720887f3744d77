package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lineup-app/lineup-server/internal/extract"
	"github.com/lineup-app/lineup-server/internal/model"
	"github.com/lineup-app/lineup-server/internal/ranking"
	"github.com/lineup-app/lineup-server/internal/store"
)

// EventService owns the event lifecycle: creation with tag extraction and
// image selection, and the bounded membership line with its denormalized
// per-member summaries.
type EventService struct {
	store        store.Store
	extractor    extract.Extractor
	defaultImage string
}

func NewEventService(s store.Store, ex extract.Extractor, defaultImage string) *EventService {
	return &EventService{store: s, extractor: ex, defaultImage: defaultImage}
}

// CreateEventRequest carries the validated fields of a create call.
type CreateEventRequest struct {
	UID         string
	Username    string
	Name        string
	Description string
}

// CreateEvent extracts tags from the description, picks the best-matching
// catalog image, then atomically writes the event, folds the tags into the
// creator's profile, and records the creator's summary. Collaborator calls
// happen before the transaction so a retry never repeats them.
func (s *EventService) CreateEvent(ctx context.Context, req CreateEventRequest) (*model.Event, error) {
	extracted, err := s.extractor.ExtractTags(ctx, req.Description)
	if err != nil {
		return nil, err
	}
	tags := ranking.TagMap(extracted)

	var candidates []*model.Image
	err = s.store.View(ctx, func(tx store.Tx) error {
		var err error
		candidates, err = tx.Images().MatchingTags(tags)
		return err
	})
	if err != nil {
		return nil, err
	}
	image := ranking.PickImage(candidates, tags, s.defaultImage)

	ev := &model.Event{
		EventID:     uuid.NewString(),
		CreatedBy:   req.UID,
		Username:    req.Username,
		Name:        req.Name,
		Description: req.Description,
		Tags:        tags,
		Image:       image,
		Slots:       []string{},
		PostedOn:    time.Now().UTC(),
	}

	err = s.store.RunTransaction(ctx, func(tx store.Tx) error {
		creator, err := tx.Users().Get(req.UID)
		if err != nil {
			return fmt.Errorf("creator: %w", err)
		}
		creator.Tags = ranking.MergeTags(creator.Tags, extracted)
		if err := tx.Users().Put(creator); err != nil {
			return err
		}
		if err := tx.Events().Put(ev); err != nil {
			return err
		}
		// Creating is not joining: the creator gets a historical summary
		// and enters the line through Join like everyone else.
		return tx.Summaries().Put(req.UID, &model.EventSummary{
			EventID:   ev.EventID,
			Name:      ev.Name,
			CreatedBy: ev.CreatedBy,
			Username:  ev.Username,
			Current:   false,
			Icons:     []string{},
		})
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// GetEvent returns the event record.
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	var ev *model.Event
	err := s.store.View(ctx, func(tx store.Tx) error {
		var err error
		ev, err = tx.Events().Get(eventID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// Join appends uid to the end of the event's line and fans the refreshed
// summary out to every member. The full member set is rewritten on every
// join so the fan-out is idempotent under transaction retry.
func (s *EventService) Join(ctx context.Context, eventID, uid string) (*model.Event, error) {
	var out *model.Event
	err := s.store.RunTransaction(ctx, func(tx store.Tx) error {
		ev, err := tx.Events().Get(eventID)
		if err != nil {
			return err
		}
		for _, member := range ev.Slots {
			if member == uid {
				return fmt.Errorf("%w: %s already joined event %s", model.ErrValidation, uid, eventID)
			}
		}
		if len(ev.Slots) >= model.SlotCapacity {
			return fmt.Errorf("%w: event %s", model.ErrCapacityExceeded, eventID)
		}

		ev.Slots = append(ev.Slots, uid)
		if err := s.fanOut(tx, ev); err != nil {
			return err
		}
		if err := tx.Events().Put(ev); err != nil {
			return err
		}
		out = ev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Leave removes uid from the line, preserving the relative order of the
// remaining members, deletes the leaver's summary and rewrites everyone
// else's. Leaving an event the user is not in succeeds without mutation.
func (s *EventService) Leave(ctx context.Context, eventID, uid string) (*model.Event, error) {
	var out *model.Event
	err := s.store.RunTransaction(ctx, func(tx store.Tx) error {
		ev, err := tx.Events().Get(eventID)
		if err != nil {
			return err
		}

		remaining := make([]string, 0, len(ev.Slots))
		found := false
		for _, member := range ev.Slots {
			if member == uid && !found {
				found = true
				continue
			}
			remaining = append(remaining, member)
		}
		if !found {
			out = ev
			return nil
		}
		ev.Slots = remaining

		if err := tx.Summaries().Delete(uid, eventID); err != nil {
			return err
		}
		if err := s.fanOut(tx, ev); err != nil {
			return err
		}
		if err := tx.Events().Put(ev); err != nil {
			return err
		}
		out = ev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// fanOut recomputes the icon sequence from the current User record of every
// member, in slot order, and overwrites each member's summary.
func (s *EventService) fanOut(tx store.Tx, ev *model.Event) error {
	icons := make([]string, 0, len(ev.Slots))
	for _, member := range ev.Slots {
		u, err := tx.Users().Get(member)
		if err != nil {
			return fmt.Errorf("member %s: %w", member, err)
		}
		icons = append(icons, u.Icon)
	}
	summary := &model.EventSummary{
		EventID:   ev.EventID,
		Name:      ev.Name,
		CreatedBy: ev.CreatedBy,
		Username:  ev.Username,
		Current:   true,
		Icons:     icons,
	}
	for _, member := range ev.Slots {
		if err := tx.Summaries().Put(member, summary); err != nil {
			return err
		}
	}
	return nil
}

// Recents lists the summaries of events the user is currently in line for.
func (s *EventService) Recents(ctx context.Context, uid string) ([]*model.EventSummary, error) {
	var out []*model.EventSummary
	err := s.store.View(ctx, func(tx store.Tx) error {
		all, err := tx.Summaries().List(uid)
		if err != nil {
			return err
		}
		for _, sm := range all {
			if sm.Current {
				out = append(out, sm)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []*model.EventSummary{}
	}
	return out, nil
}
