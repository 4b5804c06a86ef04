// package api holds the request and response types exchanged over the HTTP
// boundary. Domain entities are converted into these types by the service
// layer; transport never touches domain values directly.
package api

import "time"

type Location struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type Thesis struct {
	Title      string `json:"title"`
	University string `json:"university"`
	Year       int    `json:"year"`
	URL        string `json:"url,omitempty"`
}

type Conference struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Year     int    `json:"year"`
	Location string `json:"location"`
}

type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	URL         string `json:"url,omitempty"`
}

type Portfolio struct {
	Thesis      *Thesis      `json:"thesis"`
	Conferences []Conference `json:"conferences"`
	Projects    []Project    `json:"projects"`
}

type User struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	InstitutionID    string     `json:"institution_id"`
	Specialties      []string   `json:"specialties"`
	AvatarURL        string     `json:"avatar_url"`
	Bio              string     `json:"bio"`
	Roles            []string   `json:"roles"`
	FollowingUsers   []string   `json:"following_users"`
	FollowedArticles []string   `json:"followed_articles"`
	BannerURL        string     `json:"banner_url,omitempty"`
	WebsiteURL       string     `json:"website_url,omitempty"`
	GoogleScholarURL string     `json:"google_scholar_url,omitempty"`
	Reputation       int        `json:"reputation"`
	Badges           []string   `json:"badges"`
	Location         *Location  `json:"location,omitempty"`
	FavoriteKeywords []string   `json:"favorite_keywords"`
	Portfolio        *Portfolio `json:"portfolio,omitempty"`
	JoinDate         time.Time  `json:"join_date"`
}

// NewUser is the registration payload. The password is consumed at creation
// time and never stored on the user entity.
type NewUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	InstitutionID string `json:"institution_id"`
	Password      string `json:"password,omitempty"`
}

// UserUpdate carries the editable profile fields. Nil pointers mean
// "leave unchanged". Roles may only be changed by administrators.
type UserUpdate struct {
	UserID           string    `json:"user_id"`
	Name             *string   `json:"name,omitempty"`
	Bio              *string   `json:"bio,omitempty"`
	InstitutionID    *string   `json:"institution_id,omitempty"`
	Specialties      *[]string `json:"specialties,omitempty"`
	AvatarURL        *string   `json:"avatar_url,omitempty"`
	BannerURL        *string   `json:"banner_url,omitempty"`
	WebsiteURL       *string   `json:"website_url,omitempty"`
	GoogleScholarURL *string   `json:"google_scholar_url,omitempty"`
	Location         *Location `json:"location,omitempty"`
	FavoriteKeywords *[]string `json:"favorite_keywords,omitempty"`
	Roles            *[]string `json:"roles,omitempty"`
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Review struct {
	ID             string    `json:"id"`
	Reviewer       User      `json:"reviewer"`
	Date           time.Time `json:"date"`
	Recommendation string    `json:"recommendation"`
	Comment        string    `json:"comment"`
}

type Comment struct {
	ID       string    `json:"id"`
	Author   User      `json:"author"`
	Date     time.Time `json:"date"`
	Text     string    `json:"text"`
	ParentID string    `json:"parent_id,omitempty"`
}

type Article struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Abstract        string     `json:"abstract"`
	Keywords        []string   `json:"keywords"`
	Disciplines     []string   `json:"disciplines"`
	References      string     `json:"references,omitempty"`
	FullText        string     `json:"full_text,omitempty"`
	Author          User       `json:"author"`
	SubmissionDate  time.Time  `json:"submission_date"`
	PublicationDate *time.Time `json:"publication_date,omitempty"`
	Status          string     `json:"status"`
	Reviews         []Review   `json:"reviews"`
	Comments        []Comment  `json:"comments"`
	Views           int        `json:"views"`
	Citations       int        `json:"citations"`
	License         string     `json:"license,omitempty"`
	WorkingGroupID  string     `json:"working_group_id,omitempty"`
	Language        string     `json:"language"`
}

type NewArticle struct {
	Title          string   `json:"title"`
	Abstract       string   `json:"abstract"`
	Keywords       []string `json:"keywords"`
	Disciplines    []string `json:"disciplines"`
	References     string   `json:"references"`
	FullText       string   `json:"full_text"`
	License        string   `json:"license"`
	WorkingGroupID string   `json:"working_group_id"`
}

// ArticleUpdate carries the editable article fields. Embedded reviews,
// comments, the author snapshot and the view counter are never updated
// through it.
type ArticleUpdate struct {
	ArticleID       string     `json:"article_id"`
	Title           *string    `json:"title,omitempty"`
	Abstract        *string    `json:"abstract,omitempty"`
	Keywords        *[]string  `json:"keywords,omitempty"`
	Disciplines     *[]string  `json:"disciplines,omitempty"`
	References      *string    `json:"references,omitempty"`
	FullText        *string    `json:"full_text,omitempty"`
	Status          *string    `json:"status,omitempty"`
	License         *string    `json:"license,omitempty"`
	WorkingGroupID  *string    `json:"working_group_id,omitempty"`
	Citations       *int       `json:"citations,omitempty"`
	PublicationDate *time.Time `json:"publication_date,omitempty"`
}

type Notification struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	Type           string            `json:"type"`
	MessageKey     string            `json:"message_key"`
	MessagePayload map[string]string `json:"message_payload"`
	ArticleID      string            `json:"article_id,omitempty"`
	EventID        string            `json:"event_id,omitempty"`
	IsRead         bool              `json:"is_read"`
	Date           time.Time         `json:"date"`
}

type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
	IsRead      bool      `json:"is_read"`
}

// Conversation is one entry of the conversation-list projection: the other
// party, the most recent message exchanged with them and how many of their
// messages are still unread.
type Conversation struct {
	User        User    `json:"user"`
	LastMessage Message `json:"last_message"`
	UnreadCount int     `json:"unread_count"`
}

type WorkingGroup struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Members            []string  `json:"members"`
	Coordinators       []string  `json:"coordinators"`
	AssociatedArticles []string  `json:"associated_articles"`
	Bibliography       string    `json:"bibliography,omitempty"`
	CreatedDate        time.Time `json:"created_date"`
}

type NewWorkingGroup struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Bibliography string `json:"bibliography"`
}

type Institution struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	WebsiteURL  string `json:"website_url,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	Description string `json:"description"`
}

type NewInstitution struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	WebsiteURL  string `json:"website_url"`
	Description string `json:"description"`
}

type ScientificEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Disciplines []string  `json:"disciplines"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
	URL         string    `json:"url,omitempty"`
	Description string    `json:"description"`
}

// Suggestion is the summarization collaborator's answer for a draft abstract.
type Suggestion struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}
