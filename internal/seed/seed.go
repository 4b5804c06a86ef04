// package seed loads the startup dataset. A default dataset ships embedded in
// the binary; SEED_PATH in the configuration points the loader at an
// alternative YAML file.
//
// Articles in the seed file reference users by id. The loader resolves those
// references into full embedded snapshots, so the store starts out in the
// same denormalized shape every mutation maintains afterwards.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/linguanexus/nexus-service/internal/domain"
	"github.com/linguanexus/nexus-service/internal/repository/memory"
)

//go:embed seed.yaml
var defaultDataset []byte

type locationSeed struct {
	City    string  `yaml:"city"`
	Country string  `yaml:"country"`
	Lat     float64 `yaml:"lat"`
	Lng     float64 `yaml:"lng"`
}

type thesisSeed struct {
	Title      string `yaml:"title"`
	University string `yaml:"university"`
	Year       int    `yaml:"year"`
	URL        string `yaml:"url"`
}

type conferenceSeed struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Year     int    `yaml:"year"`
	Location string `yaml:"location"`
}

type projectSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	URL         string `yaml:"url"`
}

type portfolioSeed struct {
	Thesis      *thesisSeed      `yaml:"thesis"`
	Conferences []conferenceSeed `yaml:"conferences"`
	Projects    []projectSeed    `yaml:"projects"`
}

type userSeed struct {
	ID               string         `yaml:"id"`
	Name             string         `yaml:"name"`
	Email            string         `yaml:"email"`
	InstitutionID    string         `yaml:"institution_id"`
	Specialties      []string       `yaml:"specialties"`
	AvatarURL        string         `yaml:"avatar_url"`
	Bio              string         `yaml:"bio"`
	Roles            []string       `yaml:"roles"`
	FollowingUsers   []string       `yaml:"following_users"`
	FollowedArticles []string       `yaml:"followed_articles"`
	BannerURL        string         `yaml:"banner_url"`
	WebsiteURL       string         `yaml:"website_url"`
	GoogleScholarURL string         `yaml:"google_scholar_url"`
	Reputation       int            `yaml:"reputation"`
	Badges           []string       `yaml:"badges"`
	Location         *locationSeed  `yaml:"location"`
	FavoriteKeywords []string       `yaml:"favorite_keywords"`
	Portfolio        *portfolioSeed `yaml:"portfolio"`
	JoinDate         time.Time      `yaml:"join_date"`
}

type reviewSeed struct {
	ID             string    `yaml:"id"`
	ReviewerID     string    `yaml:"reviewer_id"`
	Date           time.Time `yaml:"date"`
	Recommendation string    `yaml:"recommendation"`
	Comment        string    `yaml:"comment"`
}

type commentSeed struct {
	ID       string    `yaml:"id"`
	AuthorID string    `yaml:"author_id"`
	Date     time.Time `yaml:"date"`
	Text     string    `yaml:"text"`
	ParentID string    `yaml:"parent_id"`
}

type articleSeed struct {
	ID              string        `yaml:"id"`
	Title           string        `yaml:"title"`
	Abstract        string        `yaml:"abstract"`
	Keywords        []string      `yaml:"keywords"`
	Disciplines     []string      `yaml:"disciplines"`
	References      string        `yaml:"references"`
	FullText        string        `yaml:"full_text"`
	AuthorID        string        `yaml:"author_id"`
	SubmissionDate  time.Time     `yaml:"submission_date"`
	PublicationDate *time.Time    `yaml:"publication_date"`
	Status          string        `yaml:"status"`
	Reviews         []reviewSeed  `yaml:"reviews"`
	Comments        []commentSeed `yaml:"comments"`
	Views           int           `yaml:"views"`
	Citations       int           `yaml:"citations"`
	License         string        `yaml:"license"`
	WorkingGroupID  string        `yaml:"working_group_id"`
	Language        string        `yaml:"language"`
}

type messageSeed struct {
	ID          string    `yaml:"id"`
	SenderID    string    `yaml:"sender_id"`
	RecipientID string    `yaml:"recipient_id"`
	Text        string    `yaml:"text"`
	Timestamp   time.Time `yaml:"timestamp"`
	IsRead      bool      `yaml:"is_read"`
}

type groupSeed struct {
	ID                 string    `yaml:"id"`
	Name               string    `yaml:"name"`
	Description        string    `yaml:"description"`
	Members            []string  `yaml:"members"`
	Coordinators       []string  `yaml:"coordinators"`
	AssociatedArticles []string  `yaml:"associated_articles"`
	Bibliography       string    `yaml:"bibliography"`
	CreatedDate        time.Time `yaml:"created_date"`
}

type institutionSeed struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	City        string `yaml:"city"`
	Country     string `yaml:"country"`
	WebsiteURL  string `yaml:"website_url"`
	LogoURL     string `yaml:"logo_url"`
	Description string `yaml:"description"`
}

type eventSeed struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Type        string    `yaml:"type"`
	Disciplines []string  `yaml:"disciplines"`
	StartDate   time.Time `yaml:"start_date"`
	EndDate     time.Time `yaml:"end_date"`
	Location    string    `yaml:"location"`
	URL         string    `yaml:"url"`
	Description string    `yaml:"description"`
}

type file struct {
	Institutions []institutionSeed `yaml:"institutions"`
	Users        []userSeed        `yaml:"users"`
	Articles     []articleSeed     `yaml:"articles"`
	WorkingGroup []groupSeed       `yaml:"working_groups"`
	Events       []eventSeed       `yaml:"scientific_events"`
	Messages     []messageSeed     `yaml:"messages"`
}

// Load parses the dataset at path, or the embedded default when path is
// empty, and resolves all user references into embedded snapshots.
func Load(path string) (memory.Dataset, error) {
	const op = "internal.seed.Load"

	raw := defaultDataset

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return memory.Dataset{}, fmt.Errorf("%s: failed to read seed file: %w", op, err)
		}

		raw = data
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return memory.Dataset{}, fmt.Errorf("%s: failed to parse seed file: %w", op, err)
	}

	return f.toDataset()
}

func (f file) toDataset() (memory.Dataset, error) {
	const op = "internal.seed.toDataset"

	users := make([]domain.User, len(f.Users))
	byID := make(map[string]domain.User, len(f.Users))

	for i, u := range f.Users {
		users[i] = u.toDomain()
		byID[u.ID] = users[i]
	}

	articles := make([]domain.Article, len(f.Articles))

	for i, a := range f.Articles {
		author, ok := byID[a.AuthorID]
		if !ok {
			return memory.Dataset{}, fmt.Errorf("%s: article %q references unknown author %q", op, a.ID, a.AuthorID)
		}

		article := domain.Article{
			ID:              a.ID,
			Title:           a.Title,
			Abstract:        a.Abstract,
			Keywords:        a.Keywords,
			Disciplines:     a.Disciplines,
			References:      a.References,
			FullText:        a.FullText,
			Author:          author,
			SubmissionDate:  a.SubmissionDate,
			PublicationDate: a.PublicationDate,
			Status:          domain.ArticleStatus(a.Status),
			Views:           a.Views,
			Citations:       a.Citations,
			License:         domain.License(a.License),
			WorkingGroupID:  a.WorkingGroupID,
			Language:        a.Language,
			Reviews:         make([]domain.Review, len(a.Reviews)),
			Comments:        make([]domain.Comment, len(a.Comments)),
		}

		for j, r := range a.Reviews {
			reviewer, ok := byID[r.ReviewerID]
			if !ok {
				return memory.Dataset{}, fmt.Errorf("%s: review %q references unknown reviewer %q", op, r.ID, r.ReviewerID)
			}

			article.Reviews[j] = domain.Review{
				ID:             r.ID,
				Reviewer:       reviewer,
				Date:           r.Date,
				Recommendation: domain.ReviewRecommendation(r.Recommendation),
				Comment:        r.Comment,
			}
		}

		for j, c := range a.Comments {
			commentAuthor, ok := byID[c.AuthorID]
			if !ok {
				return memory.Dataset{}, fmt.Errorf("%s: comment %q references unknown author %q", op, c.ID, c.AuthorID)
			}

			article.Comments[j] = domain.Comment{
				ID:       c.ID,
				Author:   commentAuthor,
				Date:     c.Date,
				Text:     c.Text,
				ParentID: c.ParentID,
			}
		}

		articles[i] = article
	}

	messages := make([]domain.Message, len(f.Messages))
	for i, m := range f.Messages {
		messages[i] = domain.Message{
			ID:          m.ID,
			SenderID:    m.SenderID,
			RecipientID: m.RecipientID,
			Text:        m.Text,
			Timestamp:   m.Timestamp,
			IsRead:      m.IsRead,
		}
	}

	groups := make([]domain.WorkingGroup, len(f.WorkingGroup))
	for i, g := range f.WorkingGroup {
		groups[i] = domain.WorkingGroup{
			ID:                 g.ID,
			Name:               g.Name,
			Description:        g.Description,
			Members:            g.Members,
			Coordinators:       g.Coordinators,
			AssociatedArticles: g.AssociatedArticles,
			Bibliography:       g.Bibliography,
			CreatedDate:        g.CreatedDate,
		}
	}

	institutions := make([]domain.Institution, len(f.Institutions))
	for i, inst := range f.Institutions {
		institutions[i] = domain.Institution{
			ID:          inst.ID,
			Name:        inst.Name,
			City:        inst.City,
			Country:     inst.Country,
			WebsiteURL:  inst.WebsiteURL,
			LogoURL:     inst.LogoURL,
			Description: inst.Description,
		}
	}

	events := make([]domain.ScientificEvent, len(f.Events))
	for i, e := range f.Events {
		events[i] = domain.ScientificEvent{
			ID:          e.ID,
			Title:       e.Title,
			Type:        domain.EventType(e.Type),
			Disciplines: e.Disciplines,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Location:    e.Location,
			URL:         e.URL,
			Description: e.Description,
		}
	}

	return memory.Dataset{
		Users:        users,
		Articles:     articles,
		Messages:     messages,
		Groups:       groups,
		Institutions: institutions,
		Events:       events,
	}, nil
}

func (u userSeed) toDomain() domain.User {
	roles := make([]domain.UserRole, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = domain.UserRole(r)
	}

	badges := make([]domain.Badge, len(u.Badges))
	for i, b := range u.Badges {
		badges[i] = domain.Badge(b)
	}

	user := domain.User{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		InstitutionID:    u.InstitutionID,
		Specialties:      u.Specialties,
		AvatarURL:        u.AvatarURL,
		Bio:              u.Bio,
		Roles:            roles,
		FollowingUsers:   u.FollowingUsers,
		FollowedArticles: u.FollowedArticles,
		BannerURL:        u.BannerURL,
		WebsiteURL:       u.WebsiteURL,
		GoogleScholarURL: u.GoogleScholarURL,
		Reputation:       u.Reputation,
		Badges:           badges,
		FavoriteKeywords: u.FavoriteKeywords,
		JoinDate:         u.JoinDate,
	}

	if u.Location != nil {
		user.Location = &domain.Location{
			City:    u.Location.City,
			Country: u.Location.Country,
			Lat:     u.Location.Lat,
			Lng:     u.Location.Lng,
		}
	}

	if u.Portfolio != nil {
		portfolio := &domain.Portfolio{}

		if u.Portfolio.Thesis != nil {
			portfolio.Thesis = &domain.Thesis{
				Title:      u.Portfolio.Thesis.Title,
				University: u.Portfolio.Thesis.University,
				Year:       u.Portfolio.Thesis.Year,
				URL:        u.Portfolio.Thesis.URL,
			}
		}

		for _, c := range u.Portfolio.Conferences {
			portfolio.Conferences = append(portfolio.Conferences, domain.Conference{
				Name:     c.Name,
				Role:     c.Role,
				Year:     c.Year,
				Location: c.Location,
			})
		}

		for _, p := range u.Portfolio.Projects {
			portfolio.Projects = append(portfolio.Projects, domain.Project{
				Name:        p.Name,
				Description: p.Description,
				Status:      p.Status,
				URL:         p.URL,
			})
		}

		user.Portfolio = portfolio
	}

	return user
}
