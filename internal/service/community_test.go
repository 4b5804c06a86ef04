package service

import (
	"context"
	"testing"
	"time"

	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/internal/domain"
	"github.com/linguanexus/nexus-service/internal/repository/memory"
	"github.com/linguanexus/nexus-service/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupServiceImpl_Create(t *testing.T) {
	ctx := context.Background()

	alice := testUser("alice")
	store := newTestStore(memory.Dataset{Users: []domain.User{alice}})
	service := NewGroupService(store, newTestLogger(), store, store)

	group, err := service.Create(ctx, alice.ID, api.NewWorkingGroup{
		Name:        "Corpus of Spoken French",
		Description: "A collaborative corpus project.",
	})
	require.NoError(t, err)

	// The creator starts as the only member and the only coordinator.
	assert.Equal(t, []string{alice.ID}, group.Members)
	assert.Equal(t, []string{alice.ID}, group.Coordinators)
	assert.Empty(t, group.AssociatedArticles)

	_, err = service.Create(ctx, "ghost", api.NewWorkingGroup{Name: "Nope"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGroupServiceImpl_AddMember(t *testing.T) {
	ctx := context.Background()

	alice := testUser("alice")
	bob := testUser("bob")

	store := newTestStore(memory.Dataset{
		Users: []domain.User{alice, bob},
		Groups: []domain.WorkingGroup{{
			ID:           "wg-1",
			Name:         "Corpus of Spoken French",
			Members:      []string{alice.ID},
			Coordinators: []string{alice.ID},
		}},
	})
	service := NewGroupService(store, newTestLogger(), store, store)

	group, err := service.AddMember(ctx, alice.ID, "wg-1", bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID, bob.ID}, group.Members)

	// Adding an existing member is a no-op.
	group, err = service.AddMember(ctx, alice.ID, "wg-1", bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID, bob.ID}, group.Members)

	_, err = service.AddMember(ctx, alice.ID, "wg-1", "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInstitutionServiceImpl_Create(t *testing.T) {
	ctx := context.Background()

	store := newTestStore(memory.Dataset{})
	service := NewInstitutionService(store, newTestLogger(), store)

	institution, err := service.Create(ctx, api.NewInstitution{
		Name:    "University of Syntax",
		City:    "Prague",
		Country: "Czech Republic",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://via.placeholder.com/150/81A4CD/FFFFFF?text=UN", institution.LogoURL)
}

func TestInstitutionServiceImpl_List_SortedByName(t *testing.T) {
	ctx := context.Background()

	store := newTestStore(memory.Dataset{})
	service := NewInstitutionService(store, newTestLogger(), store)

	for _, name := range []string{"Zephyr Institute", "Aalto Linguistics Lab", "Midland University"} {
		_, err := service.Create(ctx, api.NewInstitution{Name: name, City: "X", Country: "Y"})
		require.NoError(t, err)
	}

	institutions, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, institutions, 3)

	assert.Equal(t, "Aalto Linguistics Lab", institutions[0].Name)
	assert.Equal(t, "Midland University", institutions[1].Name)
	assert.Equal(t, "Zephyr Institute", institutions[2].Name)
}

func TestEventServiceImpl_AnnounceSeeded(t *testing.T) {
	ctx := context.Background()

	phonologist := testUser("phonologist")
	phonologist.Specialties = []string{"Phonology"}

	generalist := testUser("generalist")
	generalist.Specialties = []string{"Phonology", "Syntax"}

	outsider := testUser("outsider")
	outsider.Specialties = []string{"Semantics"}

	store := newTestStore(memory.Dataset{
		Users: []domain.User{phonologist, generalist, outsider},
		Events: []domain.ScientificEvent{
			{ID: "evt-1", Title: "AMP 2024", Type: domain.EventConference, Disciplines: []string{"Phonology"}},
			{ID: "evt-2", Title: "GS21", Type: domain.EventConference, Disciplines: []string{"Syntax"}},
		},
	})
	service := NewEventService(store, newTestLogger(), store, store, store)

	count, err := service.AnnounceSeeded(ctx)
	require.NoError(t, err)

	// phonologist matches evt-1; generalist matches both; outsider neither.
	assert.Equal(t, 3, count)

	notifs, err := store.ListNotificationsByUser(ctx, generalist.ID)
	require.NoError(t, err)
	assert.Len(t, notifs, 2)

	notifs, err = store.ListNotificationsByUser(ctx, outsider.ID)
	require.NoError(t, err)
	assert.Empty(t, notifs)
}

func TestNotificationServiceImpl_Feed_NewestFirst(t *testing.T) {
	ctx := context.Background()

	alice := testUser("alice")
	base := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)

	store := newTestStore(memory.Dataset{Users: []domain.User{alice}})

	err := store.InsertNotifications(ctx, []domain.Notification{
		{ID: "n-1", UserID: alice.ID, Type: domain.NotificationReply, Date: base},
		{ID: "n-2", UserID: alice.ID, Type: domain.NotificationNewMessage, Date: base.Add(time.Hour)},
		{ID: "n-3", UserID: "someone-else", Type: domain.NotificationReply, Date: base.Add(2 * time.Hour)},
	})
	require.NoError(t, err)

	service := NewNotificationService(store, newTestLogger(), store)

	feed, err := service.Feed(ctx, alice.ID)
	require.NoError(t, err)

	require.Len(t, feed, 2)
	assert.Equal(t, "n-2", feed[0].ID)
	assert.Equal(t, "n-1", feed[1].ID)
}
