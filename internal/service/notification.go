package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/linguanexus/nexus-service/internal/repository"
	"github.com/linguanexus/nexus-service/pkg/api"
)

type NotificationService interface {
	Feed(ctx context.Context, userID string) ([]api.Notification, error)
}

type NotificationServiceImpl struct {
	BaseService
	notifications repository.NotificationRepository
}

func NewNotificationService(
	seq repository.Sequencer,
	log *slog.Logger,
	notifications repository.NotificationRepository,
) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		BaseService:   NewBaseService(seq, log),
		notifications: notifications,
	}
}

// Feed returns the user's notifications sorted by date, newest first. The
// projection is recomputed on every read; the collection is small enough that
// no index is kept.
func (s *NotificationServiceImpl) Feed(ctx context.Context, userID string) ([]api.Notification, error) {
	const op = "internal.service.notification.Feed"

	notifications, err := s.notifications.ListNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list notifications: %w", op, err)
	}

	out := make([]api.Notification, len(notifications))
	for i, n := range notifications {
		out[i] = toAPINotification(n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out, nil
}
