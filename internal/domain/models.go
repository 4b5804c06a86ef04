package domain

import "time"

type UserRole string

const (
	RoleAuthor    UserRole = "author"
	RoleReviewer  UserRole = "reviewer"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

type ArticleStatus string

const (
	StatusDraft       ArticleStatus = "Draft"
	StatusSubmitted   ArticleStatus = "Submitted"
	StatusUnderReview ArticleStatus = "Under Review"
	StatusAccepted    ArticleStatus = "Accepted"
	StatusRejected    ArticleStatus = "Rejected"
	StatusPublished   ArticleStatus = "Published"
)

type ReviewRecommendation string

const (
	RecommendAccept         ReviewRecommendation = "Accept"
	RecommendMinorRevisions ReviewRecommendation = "Minor Revisions"
	RecommendMajorRevisions ReviewRecommendation = "Major Revisions"
	RecommendReject         ReviewRecommendation = "Reject"
)

type Badge string

const (
	BadgeTopReviewer      Badge = "Top Reviewer"
	BadgeProlificAuthor   Badge = "Prolific Author"
	BadgeFoundingMember   Badge = "Founding Member"
	BadgeCommunityBuilder Badge = "Community Builder"
	BadgeVerified         Badge = "Verified Contributor"
)

// BadgeRank returns the declaration-order rank of a badge. Recomputed badge
// sets are sorted by this rank so the output is deterministic.
func BadgeRank(b Badge) int {
	switch b {
	case BadgeTopReviewer:
		return 0
	case BadgeProlificAuthor:
		return 1
	case BadgeFoundingMember:
		return 2
	case BadgeCommunityBuilder:
		return 3
	case BadgeVerified:
		return 4
	default:
		return 5
	}
}

type License string

const (
	LicenseCCBY   License = "Attribution (CC BY)"
	LicenseCCBYSA License = "Attribution-ShareAlike (CC BY-SA)"
	LicenseCCBYND License = "Attribution-NoDerivs (CC BY-ND)"
	LicenseCC0    License = "Public Domain Dedication (CC0)"
)

type NotificationType string

const (
	NotificationReply             NotificationType = "reply"
	NotificationNewArticleKeyword NotificationType = "new_article_keyword"
	NotificationNewEvent          NotificationType = "new_event"
	NotificationNewMessage        NotificationType = "new_message"
)

type EventType string

const (
	EventConference    EventType = "Conference"
	EventCallForPapers EventType = "Call for Papers"
	EventWorkshop      EventType = "Workshop"
	EventSummerSchool  EventType = "Summer School"
)

type Location struct {
	City    string
	Country string
	Lat     float64
	Lng     float64
}

type Thesis struct {
	Title      string
	University string
	Year       int
	URL        string
}

type Conference struct {
	Name     string
	Role     string
	Year     int
	Location string
}

type Project struct {
	Name        string
	Description string
	Status      string
	URL         string
}

type Portfolio struct {
	Thesis      *Thesis
	Conferences []Conference
	Projects    []Project
}

// User is the identity entity. Reputation and Badges are derived fields
// recomputed from the article collection; FoundingMember and Verified are the
// only badges that survive a recomputation.
type User struct {
	ID               string
	Name             string
	Email            string
	InstitutionID    string
	Specialties      []string
	AvatarURL        string
	Bio              string
	Roles            []UserRole
	FollowingUsers   []string
	FollowedArticles []string
	BannerURL        string
	WebsiteURL       string
	GoogleScholarURL string
	Reputation       int
	Badges           []Badge
	Location         *Location
	FavoriteKeywords []string
	Portfolio        *Portfolio
	JoinDate         time.Time
}

func (u User) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// Review embeds a full snapshot of the reviewer, not a reference.
type Review struct {
	ID             string
	Reviewer       User
	Date           time.Time
	Recommendation ReviewRecommendation
	Comment        string
}

// Comment embeds a full snapshot of its author. ParentID is empty for root
// comments and points at another comment of the same article for replies.
type Comment struct {
	ID       string
	Author   User
	Date     time.Time
	Text     string
	ParentID string
}

// Article owns its reviews and comments and embeds a full snapshot of the
// author taken at submission time. Embedded user copies are refreshed by the
// store whenever the user's derived fields change.
type Article struct {
	ID              string
	Title           string
	Abstract        string
	Keywords        []string
	Disciplines     []string
	References      string
	FullText        string
	Author          User
	SubmissionDate  time.Time
	PublicationDate *time.Time
	Status          ArticleStatus
	Reviews         []Review
	Comments        []Comment
	Views           int
	Citations       int
	License         License
	WorkingGroupID  string
	Language        string
}

// Comment returns the comment with the given id, if present.
func (a Article) Comment(id string) (Comment, bool) {
	for _, c := range a.Comments {
		if c.ID == id {
			return c, true
		}
	}

	return Comment{}, false
}

type Notification struct {
	ID             string
	UserID         string
	Type           NotificationType
	MessageKey     string
	MessagePayload map[string]string
	ArticleID      string
	EventID        string
	IsRead         bool
	Date           time.Time
}

type Message struct {
	ID          string
	SenderID    string
	RecipientID string
	Text        string
	Timestamp   time.Time
	IsRead      bool
}

type WorkingGroup struct {
	ID                 string
	Name               string
	Description        string
	Members            []string
	Coordinators       []string
	AssociatedArticles []string
	Bibliography       string
	CreatedDate        time.Time
}

func (g WorkingGroup) HasMember(userID string) bool {
	for _, id := range g.Members {
		if id == userID {
			return true
		}
	}

	return false
}

type Institution struct {
	ID          string
	Name        string
	City        string
	Country     string
	WebsiteURL  string
	LogoURL     string
	Description string
}

type ScientificEvent struct {
	ID          string
	Title       string
	Type        EventType
	Disciplines []string
	StartDate   time.Time
	EndDate     time.Time
	Location    string
	URL         string
	Description string
}
