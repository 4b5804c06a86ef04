package service

import (
	"github.com/linguanexus/nexus-service/internal/domain"
	"github.com/linguanexus/nexus-service/pkg/api"
)

func toAPIUser(u domain.User) api.User {
	out := api.User{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		InstitutionID:    u.InstitutionID,
		Specialties:      u.Specialties,
		AvatarURL:        u.AvatarURL,
		Bio:              u.Bio,
		Roles:            rolesToStrings(u.Roles),
		FollowingUsers:   u.FollowingUsers,
		FollowedArticles: u.FollowedArticles,
		BannerURL:        u.BannerURL,
		WebsiteURL:       u.WebsiteURL,
		GoogleScholarURL: u.GoogleScholarURL,
		Reputation:       u.Reputation,
		Badges:           badgesToStrings(u.Badges),
		FavoriteKeywords: u.FavoriteKeywords,
		JoinDate:         u.JoinDate,
	}

	if u.Location != nil {
		out.Location = &api.Location{
			City:    u.Location.City,
			Country: u.Location.Country,
			Lat:     u.Location.Lat,
			Lng:     u.Location.Lng,
		}
	}

	if u.Portfolio != nil {
		out.Portfolio = toAPIPortfolio(*u.Portfolio)
	}

	return out
}

func toAPIPortfolio(p domain.Portfolio) *api.Portfolio {
	out := &api.Portfolio{}

	if p.Thesis != nil {
		out.Thesis = &api.Thesis{
			Title:      p.Thesis.Title,
			University: p.Thesis.University,
			Year:       p.Thesis.Year,
			URL:        p.Thesis.URL,
		}
	}

	for _, c := range p.Conferences {
		out.Conferences = append(out.Conferences, api.Conference{
			Name:     c.Name,
			Role:     c.Role,
			Year:     c.Year,
			Location: c.Location,
		})
	}

	for _, pr := range p.Projects {
		out.Projects = append(out.Projects, api.Project{
			Name:        pr.Name,
			Description: pr.Description,
			Status:      pr.Status,
			URL:         pr.URL,
		})
	}

	return out
}

func rolesToStrings(roles []domain.UserRole) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}

	return out
}

func badgesToStrings(badges []domain.Badge) []string {
	out := make([]string, len(badges))
	for i, b := range badges {
		out[i] = string(b)
	}

	return out
}

func toAPIArticle(a domain.Article) api.Article {
	out := api.Article{
		ID:              a.ID,
		Title:           a.Title,
		Abstract:        a.Abstract,
		Keywords:        a.Keywords,
		Disciplines:     a.Disciplines,
		References:      a.References,
		FullText:        a.FullText,
		Author:          toAPIUser(a.Author),
		SubmissionDate:  a.SubmissionDate,
		PublicationDate: a.PublicationDate,
		Status:          string(a.Status),
		Reviews:         make([]api.Review, len(a.Reviews)),
		Comments:        make([]api.Comment, len(a.Comments)),
		Views:           a.Views,
		Citations:       a.Citations,
		License:         string(a.License),
		WorkingGroupID:  a.WorkingGroupID,
		Language:        a.Language,
	}

	for i, r := range a.Reviews {
		out.Reviews[i] = toAPIReview(r)
	}

	for i, c := range a.Comments {
		out.Comments[i] = toAPIComment(c)
	}

	return out
}

func toAPIReview(r domain.Review) api.Review {
	return api.Review{
		ID:             r.ID,
		Reviewer:       toAPIUser(r.Reviewer),
		Date:           r.Date,
		Recommendation: string(r.Recommendation),
		Comment:        r.Comment,
	}
}

func toAPIComment(c domain.Comment) api.Comment {
	return api.Comment{
		ID:       c.ID,
		Author:   toAPIUser(c.Author),
		Date:     c.Date,
		Text:     c.Text,
		ParentID: c.ParentID,
	}
}

func toAPINotification(n domain.Notification) api.Notification {
	return api.Notification{
		ID:             n.ID,
		UserID:         n.UserID,
		Type:           string(n.Type),
		MessageKey:     n.MessageKey,
		MessagePayload: n.MessagePayload,
		ArticleID:      n.ArticleID,
		EventID:        n.EventID,
		IsRead:         n.IsRead,
		Date:           n.Date,
	}
}

func toAPIMessage(m domain.Message) api.Message {
	return api.Message{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Text:        m.Text,
		Timestamp:   m.Timestamp,
		IsRead:      m.IsRead,
	}
}

func toAPIGroup(g domain.WorkingGroup) api.WorkingGroup {
	return api.WorkingGroup{
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

func toAPIInstitution(inst domain.Institution) api.Institution {
	return api.Institution{
		ID:          inst.ID,
		Name:        inst.Name,
		City:        inst.City,
		Country:     inst.Country,
		WebsiteURL:  inst.WebsiteURL,
		LogoURL:     inst.LogoURL,
		Description: inst.Description,
	}
}

func toAPIEvent(e domain.ScientificEvent) api.ScientificEvent {
	return api.ScientificEvent{
		ID:          e.ID,
		Title:       e.Title,
		Type:        string(e.Type),
		Disciplines: e.Disciplines,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location:    e.Location,
		URL:         e.URL,
		Description: e.Description,
	}
}
