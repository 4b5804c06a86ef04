package memory

import (
	"context"

	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/internal/domain"
)

func (s *Store) InsertArticle(_ context.Context, article domain.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.articles = append([]domain.Article{clone(article)}, s.articles...)

	return nil
}

func (s *Store) GetArticleByID(_ context.Context, articleID string) (*domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.ID == articleID {
			out := clone(a)
			return &out, nil
		}
	}

	return nil, &apperrors.ArticleNotFoundError{ArticleID: articleID}
}

func (s *Store) ListArticles(_ context.Context) ([]domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.articles), nil
}

func (s *Store) UpdateArticle(_ context.Context, article domain.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.articles {
		if a.ID == article.ID {
			s.articles[i] = clone(article)
			return nil
		}
	}

	return &apperrors.ArticleNotFoundError{ArticleID: article.ID}
}

func (s *Store) DeleteArticle(_ context.Context, articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.articles {
		if a.ID == articleID {
			s.articles = append(s.articles[:i], s.articles[i+1:]...)
			return nil
		}
	}

	return &apperrors.ArticleNotFoundError{ArticleID: articleID}
}

func (s *Store) IncrementViews(_ context.Context, articleID string) (*domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articles {
		if s.articles[i].ID == articleID {
			s.articles[i].Views++
			out := clone(s.articles[i])

			return &out, nil
		}
	}

	return nil, &apperrors.ArticleNotFoundError{ArticleID: articleID}
}

// RefreshUserSnapshots replaces every embedded copy of the given user across
// the whole article collection: the author snapshot on articles, the reviewer
// snapshot on reviews and the author snapshot on comments.
func (s *Store) RefreshUserSnapshots(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articles {
		if s.articles[i].Author.ID == user.ID {
			s.articles[i].Author = clone(user)
		}

		for j := range s.articles[i].Reviews {
			if s.articles[i].Reviews[j].Reviewer.ID == user.ID {
				s.articles[i].Reviews[j].Reviewer = clone(user)
			}
		}

		for j := range s.articles[i].Comments {
			if s.articles[i].Comments[j].Author.ID == user.ID {
				s.articles[i].Comments[j].Author = clone(user)
			}
		}
	}

	return nil
}
