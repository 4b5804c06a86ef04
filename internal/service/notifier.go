package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linguanexus/nexus-service/internal/domain"
)

// Message template keys resolved by the client's i18n layer; the payload is
// opaque to this service.
const (
	keyReply             = "notifications.reply"
	keyNewArticleKeyword = "notifications.newArticleKeyword"
	keyNewEvent          = "notifications.newEvent"
	keyNewMessage        = "notifications.newMessage"
)

// keywordNotifications maps a freshly submitted article to one notification
// per user whose favorite keywords match the article's keywords. The match is
// a case-insensitive substring check; the payload carries the user's first
// matching favorite keyword. The author never notifies themselves.
func keywordNotifications(article domain.Article, users []domain.User, now time.Time) []domain.Notification {
	var out []domain.Notification

	for _, user := range users {
		if user.ID == article.Author.ID {
			continue
		}

		match, ok := firstMatchingKeyword(user.FavoriteKeywords, article.Keywords)
		if !ok {
			continue
		}

		out = append(out, domain.Notification{
			ID:         uuid.NewString(),
			UserID:     user.ID,
			Type:       domain.NotificationNewArticleKeyword,
			MessageKey: keyNewArticleKeyword,
			MessagePayload: map[string]string{
				"keyword":      match,
				"articleTitle": article.Title,
			},
			ArticleID: article.ID,
			Date:      now,
		})
	}

	return out
}

func firstMatchingKeyword(favorites, keywords []string) (string, bool) {
	for _, fav := range favorites {
		for _, kw := range keywords {
			if strings.Contains(strings.ToLower(kw), strings.ToLower(fav)) {
				return fav, true
			}
		}
	}

	return "", false
}

// replyNotification maps a threaded reply to a single notification addressed
// to the parent comment's author. Callers must skip self-replies.
func replyNotification(article domain.Article, parent domain.Comment, replier domain.User, now time.Time) domain.Notification {
	return domain.Notification{
		ID:         uuid.NewString(),
		UserID:     parent.Author.ID,
		Type:       domain.NotificationReply,
		MessageKey: keyReply,
		MessagePayload: map[string]string{
			"userName":     replier.Name,
			"articleTitle": article.Title,
		},
		ArticleID: article.ID,
		Date:      now,
	}
}

// messageNotification maps a sent direct message to one notification for its
// recipient. It carries no article or event backlink.
func messageNotification(message domain.Message, sender domain.User, now time.Time) domain.Notification {
	return domain.Notification{
		ID:         uuid.NewString(),
		UserID:     message.RecipientID,
		Type:       domain.NotificationNewMessage,
		MessageKey: keyNewMessage,
		MessagePayload: map[string]string{
			"userName": sender.Name,
		},
		Date: now,
	}
}

// eventNotifications maps a scientific event to one notification per user
// whose specialties intersect the event's disciplines. Run once per event at
// seed time.
func eventNotifications(event domain.ScientificEvent, users []domain.User, now time.Time) []domain.Notification {
	var out []domain.Notification

	for _, user := range users {
		if !intersects(user.Specialties, event.Disciplines) {
			continue
		}

		out = append(out, domain.Notification{
			ID:         uuid.NewString(),
			UserID:     user.ID,
			Type:       domain.NotificationNewEvent,
			MessageKey: keyNewEvent,
			MessagePayload: map[string]string{
				"eventType":  string(event.Type),
				"eventTitle": event.Title,
			},
			EventID: event.ID,
			Date:    now,
		})
	}

	return out
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}

	return false
}
