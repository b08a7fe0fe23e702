package github

import (
	"github.com/gnomegl/gitscore/internal/models"
	gh "github.com/google/go-github/v57/github"
)

func ConvertUser(u *gh.User) models.UserProfile {
	return models.UserProfile{
		Login:           u.GetLogin(),
		Name:            u.GetName(),
		Bio:             u.GetBio(),
		Company:         u.GetCompany(),
		Location:        u.GetLocation(),
		Blog:            u.GetBlog(),
		Email:           u.GetEmail(),
		TwitterUsername: u.GetTwitterUsername(),
		AvatarURL:       u.GetAvatarURL(),
		HTMLURL:         u.GetHTMLURL(),
		CreatedAt:       u.GetCreatedAt().Time,
		Followers:       u.GetFollowers(),
		Following:       u.GetFollowing(),
		PublicRepos:     u.GetPublicRepos(),
		PublicGists:     u.GetPublicGists(),
	}
}

func ConvertRepo(r *gh.Repository) models.Repository {
	return models.Repository{
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Owner:         r.GetOwner().GetLogin(),
		Description:   r.GetDescription(),
		Language:      r.GetLanguage(),
		HTMLURL:       r.GetHTMLURL(),
		Stars:         r.GetStargazersCount(),
		Forks:         r.GetForksCount(),
		Watchers:      r.GetWatchersCount(),
		OpenIssues:    r.GetOpenIssuesCount(),
		Topics:        r.Topics,
		CreatedAt:     r.GetCreatedAt().Time,
		UpdatedAt:     r.GetUpdatedAt().Time,
		Private:       r.GetPrivate(),
		Fork:          r.GetFork(),
		Size:          r.GetSize(),
		DefaultBranch: r.GetDefaultBranch(),
	}
}

func ConvertRepos(raw []*gh.Repository) []models.Repository {
	repos := make([]models.Repository, 0, len(raw))
	for _, r := range raw {
		repos = append(repos, ConvertRepo(r))
	}
	return repos
}
