// package memory implements the repository interfaces on plain in-memory
// collections. All state is seeded at startup and lost on shutdown; there is
// no persistence layer behind it.
//
// Values never leave the store by reference: every read and write goes
// through a deep copy, so callers cannot alias store-owned data.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/linguanexus/nexus-service/internal/domain"
)

// Store holds all entity collections behind a single RWMutex. A separate
// sequence mutex serializes whole mutation pipelines via Do, mirroring the
// one-mutation-in-flight execution model the collections were designed for.
type Store struct {
	seq sync.Mutex

	mu            sync.RWMutex
	users         []domain.User
	articles      []domain.Article
	notifications []domain.Notification
	messages      []domain.Message
	groups        []domain.WorkingGroup
	institutions  []domain.Institution
	events        []domain.ScientificEvent
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Dataset is the bulk payload for Load. The notification collection is not
// part of it: notifications are always generated, never seeded directly.
type Dataset struct {
	Users        []domain.User
	Articles     []domain.Article
	Messages     []domain.Message
	Groups       []domain.WorkingGroup
	Institutions []domain.Institution
	Events       []domain.ScientificEvent
}

// Load replaces all collections with the dataset. Institutions are kept
// sorted by name, matching InsertInstitution.
func (s *Store) Load(data Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = cloneSlice(data.Users)
	s.articles = cloneSlice(data.Articles)
	s.messages = cloneSlice(data.Messages)
	s.groups = cloneSlice(data.Groups)
	s.institutions = cloneSlice(data.Institutions)
	s.events = cloneSlice(data.Events)
	s.notifications = nil

	sort.SliceStable(s.institutions, func(i, j int) bool {
		return s.institutions[i].Name < s.institutions[j].Name
	})
}

// Do runs fn while holding the pipeline sequence lock. Individual repository
// methods take the data lock themselves, so fn is free to call them.
func (s *Store) Do(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("pipeline aborted: %w", err)
	}

	s.seq.Lock()
	defer s.seq.Unlock()

	return fn()
}

// clone deep-copies a stored value on its way in or out of the store.
// The entity types are plain data, so a copy failure is a programming error.
func clone[T any](src T) T {
	var dst T
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("memory: deep copy failed: %v", err))
	}

	return dst
}

func cloneSlice[T any](src []T) []T {
	dst := make([]T, len(src))
	for i, v := range src {
		dst[i] = clone(v)
	}

	return dst
}
