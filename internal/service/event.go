package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/linguanexus/nexus-service/internal/repository"
	"github.com/linguanexus/nexus-service/pkg/api"
)

type EventService interface {
	List(ctx context.Context) ([]api.ScientificEvent, error)
	AnnounceSeeded(ctx context.Context) (int, error)
}

type EventServiceImpl struct {
	BaseService
	users         repository.UserRepository
	events        repository.EventRepository
	notifications repository.NotificationRepository
}

func NewEventService(
	seq repository.Sequencer,
	log *slog.Logger,
	users repository.UserRepository,
	events repository.EventRepository,
	notifications repository.NotificationRepository,
) *EventServiceImpl {
	return &EventServiceImpl{
		BaseService:   NewBaseService(seq, log),
		users:         users,
		events:        events,
		notifications: notifications,
	}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]api.ScientificEvent, error) {
	const op = "internal.service.event.List"

	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list events: %w", op, err)
	}

	out := make([]api.ScientificEvent, len(events))
	for i, e := range events {
		out[i] = toAPIEvent(e)
	}

	return out, nil
}

// AnnounceSeeded runs the new-event trigger for every seeded event, notifying
// each user whose specialties intersect the event's disciplines. Called once
// at startup, after the seed dataset is loaded. Returns the number of
// notifications generated.
func (s *EventServiceImpl) AnnounceSeeded(ctx context.Context) (int, error) {
	const op = "internal.service.event.AnnounceSeeded"
	log := s.log.With(slog.String("op", op))

	var total int

	err := s.pipeline(ctx, func() error {
		events, err := s.events.ListEvents(ctx)
		if err != nil {
			return fmt.Errorf("%s: failed to list events: %w", op, err)
		}

		users, err := s.users.ListUsers(ctx)
		if err != nil {
			return fmt.Errorf("%s: failed to list users: %w", op, err)
		}

		now := time.Now().UTC()

		for _, event := range events {
			notifs := eventNotifications(event, users, now)
			if err := s.notifications.InsertNotifications(ctx, notifs); err != nil {
				return fmt.Errorf("%s: failed to insert notifications: %w", op, err)
			}

			total += len(notifs)
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	log.Info("seeded events announced", slog.Int("notifications", total))

	return total, nil
}
