package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/internal/domain"
	"github.com/linguanexus/nexus-service/internal/repository"
	"github.com/linguanexus/nexus-service/pkg/api"
)

type MessageService interface {
	Send(ctx context.Context, senderID, recipientID, text string) (*api.Message, error)
	Conversations(ctx context.Context, userID string) ([]api.Conversation, error)
	Thread(ctx context.Context, userID, otherID string) ([]api.Message, error)
	MarkConversationRead(ctx context.Context, userID, otherID string) (int, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
}

type MessageServiceImpl struct {
	BaseService
	users         repository.UserRepository
	messages      repository.MessageRepository
	notifications repository.NotificationRepository
}

func NewMessageService(
	seq repository.Sequencer,
	log *slog.Logger,
	users repository.UserRepository,
	messages repository.MessageRepository,
	notifications repository.NotificationRepository,
) *MessageServiceImpl {
	return &MessageServiceImpl{
		BaseService:   NewBaseService(seq, log),
		users:         users,
		messages:      messages,
		notifications: notifications,
	}
}

// Send appends an unread message and notifies the recipient.
func (s *MessageServiceImpl) Send(ctx context.Context, senderID, recipientID, text string) (*api.Message, error) {
	const op = "internal.service.message.Send"
	log := s.log.With(slog.String("op", op), slog.String("sender_id", senderID), slog.String("recipient_id", recipientID))

	var out api.Message

	err := s.pipeline(ctx, func() error {
		sender, err := s.users.GetUserByID(ctx, senderID)
		if err != nil {
			return fmt.Errorf("%s: failed to get sender: %w", op, err)
		}

		if senderID == recipientID {
			return fmt.Errorf("%s: %w", op, apperrors.ErrSelfMessage)
		}

		if _, err := s.users.GetUserByID(ctx, recipientID); err != nil {
			return fmt.Errorf("%s: failed to get recipient: %w", op, err)
		}

		now := time.Now().UTC()
		message := domain.Message{
			ID:          uuid.NewString(),
			SenderID:    senderID,
			RecipientID: recipientID,
			Text:        text,
			Timestamp:   now,
		}

		if err := s.messages.InsertMessage(ctx, message); err != nil {
			return fmt.Errorf("%s: failed to insert message: %w", op, err)
		}

		notif := messageNotification(message, *sender, now)
		if err := s.notifications.InsertNotifications(ctx, []domain.Notification{notif}); err != nil {
			return fmt.Errorf("%s: failed to insert notification: %w", op, err)
		}

		log.Info("message sent", slog.String("message_id", message.ID))

		out = toAPIMessage(message)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &out, nil
}

// Conversations groups the user's messages by counterpart, keeps the most
// recent message per counterpart and sorts the result by that message's
// timestamp, newest first. Counterparts that no longer exist are skipped.
func (s *MessageServiceImpl) Conversations(ctx context.Context, userID string) ([]api.Conversation, error) {
	const op = "internal.service.message.Conversations"

	messages, err := s.messages.ListMessagesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list messages: %w", op, err)
	}

	latest := make(map[string]domain.Message)
	unread := make(map[string]int)

	for _, m := range messages {
		otherID := m.SenderID
		if m.SenderID == userID {
			otherID = m.RecipientID
		}

		if otherID == userID {
			continue
		}

		if last, ok := latest[otherID]; !ok || m.Timestamp.After(last.Timestamp) {
			latest[otherID] = m
		}

		if m.RecipientID == userID && !m.IsRead {
			unread[m.SenderID]++
		}
	}

	out := make([]api.Conversation, 0, len(latest))

	for otherID, last := range latest {
		other, err := s.users.GetUserByID(ctx, otherID)
		if err != nil {
			continue
		}

		out = append(out, api.Conversation{
			User:        toAPIUser(*other),
			LastMessage: toAPIMessage(last),
			UnreadCount: unread[otherID],
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessage.Timestamp.After(out[j].LastMessage.Timestamp)
	})

	return out, nil
}

// Thread returns the full exchange between the user and the other party in
// chronological order, marking the other party's messages as read first —
// opening a conversation is what reads it.
func (s *MessageServiceImpl) Thread(ctx context.Context, userID, otherID string) ([]api.Message, error) {
	const op = "internal.service.message.Thread"

	if _, err := s.MarkConversationRead(ctx, userID, otherID); err != nil {
		return nil, err
	}

	messages, err := s.messages.ListMessagesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list messages: %w", op, err)
	}

	var out []api.Message

	for _, m := range messages {
		if (m.SenderID == userID && m.RecipientID == otherID) ||
			(m.SenderID == otherID && m.RecipientID == userID) {
			out = append(out, toAPIMessage(m))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out, nil
}

// MarkConversationRead flips every unread message from the other party to the
// user. Idempotent; messages flowing the other way are untouched.
func (s *MessageServiceImpl) MarkConversationRead(ctx context.Context, userID, otherID string) (int, error) {
	const op = "internal.service.message.MarkConversationRead"

	var flipped int

	err := s.pipeline(ctx, func() error {
		var err error

		flipped, err = s.messages.MarkConversationRead(ctx, userID, otherID)
		if err != nil {
			return fmt.Errorf("%s: failed to mark conversation read: %w", op, err)
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return flipped, nil
}

// UnreadCount counts the unread messages addressed to the user, across all
// conversations.
func (s *MessageServiceImpl) UnreadCount(ctx context.Context, userID string) (int, error) {
	const op = "internal.service.message.UnreadCount"

	count, err := s.messages.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to count unread messages: %w", op, err)
	}

	return count, nil
}
