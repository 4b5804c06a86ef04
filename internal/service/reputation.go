package service

import (
	"sort"

	"github.com/linguanexus/nexus-service/internal/domain"
)

const (
	pointsPublish = 20
	pointsReview  = 10
	pointsComment = 2

	prolificAuthorThreshold   = 2
	topReviewerThreshold      = 3
	communityBuilderThreshold = 10
)

// recomputeStats returns the user with reputation and badges recomputed from
// the full article collection. It is pure and total: no side effects, never
// fails. FoundingMember and Verified are the only badges carried over from
// the previous badge set; everything else is re-earned on every call. The
// resulting badge slice is sorted by declaration order so output is
// deterministic.
func recomputeStats(user domain.User, articles []domain.Article) domain.User {
	var articleCount, reviewCount, commentCount int

	for _, a := range articles {
		if a.Author.ID == user.ID {
			articleCount++
		}

		for _, r := range a.Reviews {
			if r.Reviewer.ID == user.ID {
				reviewCount++
			}
		}

		for _, c := range a.Comments {
			if c.Author.ID == user.ID {
				commentCount++
			}
		}
	}

	user.Reputation = articleCount*pointsPublish + reviewCount*pointsReview + commentCount*pointsComment

	badges := make(map[domain.Badge]struct{})

	for _, b := range user.Badges {
		if b == domain.BadgeFoundingMember || b == domain.BadgeVerified {
			badges[b] = struct{}{}
		}
	}

	if articleCount >= prolificAuthorThreshold {
		badges[domain.BadgeProlificAuthor] = struct{}{}
	}

	if reviewCount >= topReviewerThreshold {
		badges[domain.BadgeTopReviewer] = struct{}{}
	}

	if commentCount >= communityBuilderThreshold {
		badges[domain.BadgeCommunityBuilder] = struct{}{}
	}

	out := make([]domain.Badge, 0, len(badges))
	for b := range badges {
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool {
		return domain.BadgeRank(out[i]) < domain.BadgeRank(out[j])
	})

	user.Badges = out

	return user
}
