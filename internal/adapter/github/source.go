package github

import (
	"context"
	"fmt"

	"github.com/krishn404/RepOSS/internal/common"
	"github.com/krishn404/RepOSS/internal/domain"

	"github.com/google/go-github/v53/github"
	"golang.org/x/oauth2"
)

// Source implements port.Source on top of the GitHub REST API.
type Source struct {
	client *github.Client
}

// NewSource initializes the GitHub client.
// token: GitHub Personal Access Token (empty string means anonymous access,
// limited to 60 requests/hour).
func NewSource(token string) *Source {
	var client *github.Client

	if token == "" {
		client = github.NewClient(nil)
	} else {
		ctx := context.Background()
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc := oauth2.NewClient(ctx, ts)
		client = github.NewClient(tc)
	}

	return &Source{client: client}
}

// toDomain converts a GitHub API repository into our domain entity.
func toDomain(item *github.Repository) *domain.Repo {
	return &domain.Repo{
		ID:          item.GetID(),
		FullName:    item.GetFullName(),
		Name:        item.GetName(),
		Description: item.GetDescription(),
		URL:         item.GetHTMLURL(),
		Language:    item.GetLanguage(),
		Topics:      item.Topics,
		Stars:       item.GetStargazersCount(),
		Forks:       item.GetForksCount(),
		OpenIssues:  item.GetOpenIssuesCount(),
		Size:        item.GetSize(),
		PushedAt:    item.GetPushedAt().Time,
		UpdatedAt:   item.GetUpdatedAt().Time,
	}
}

// OwnedRepos lists the user's own repositories, most recently updated
// first. One page of 100 is deliberate: profile precision past that point
// is not worth the extra calls.
func (s *Source) OwnedRepos(ctx context.Context, username string) ([]*domain.Repo, error) {
	opts := &github.RepositoryListOptions{
		Type: "owner",
		Sort: "updated",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	items, _, err := s.client.Repositories.List(ctx, username, opts)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeGitHubAPI, "list owned repos failed", err)
	}

	repos := make([]*domain.Repo, 0, len(items))
	for _, item := range items {
		repos = append(repos, toDomain(item))
	}
	return repos, nil
}

// StarredRepos lists repositories the user has starred, one page of 100.
func (s *Source) StarredRepos(ctx context.Context, username string) ([]*domain.Repo, error) {
	opts := &github.ActivityListStarredOptions{
		Sort: "updated",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	items, _, err := s.client.Activity.ListStarred(ctx, username, opts)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeGitHubAPI, "list starred repos failed", err)
	}

	repos := make([]*domain.Repo, 0, len(items))
	for _, item := range items {
		if item.Repository == nil {
			continue
		}
		repos = append(repos, toDomain(item.Repository))
	}
	return repos, nil
}

// PublicEvents lists the user's recent public activity, one page of 30.
func (s *Source) PublicEvents(ctx context.Context, username string) ([]domain.Event, error) {
	opts := &github.ListOptions{PerPage: 30}

	items, _, err := s.client.Activity.ListEventsPerformedByUser(ctx, username, true, opts)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeGitHubAPI, "list public events failed", err)
	}

	events := make([]domain.Event, 0, len(items))
	for _, item := range items {
		events = append(events, domain.Event{
			Type:      item.GetType(),
			CreatedAt: item.GetCreatedAt().Time,
		})
	}
	return events, nil
}

// LanguageBreakdown returns bytes of code per language for one repository.
func (s *Source) LanguageBreakdown(ctx context.Context, owner, repo string) (map[string]int64, error) {
	langs, _, err := s.client.Repositories.ListLanguages(ctx, owner, repo)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeGitHubAPI, "list languages failed", err)
	}

	breakdown := make(map[string]int64, len(langs))
	for lang, bytes := range langs {
		breakdown[lang] = int64(bytes)
	}
	return breakdown, nil
}

// RootContents lists the entry names at the repository root.
func (s *Source) RootContents(ctx context.Context, owner, repo string) ([]string, error) {
	_, dir, _, err := s.client.Repositories.GetContents(ctx, owner, repo, "", nil)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeGitHubAPI, "get root contents failed", err)
	}

	names := make([]string, 0, len(dir))
	for _, entry := range dir {
		names = append(names, entry.GetName())
	}
	return names, nil
}

// HasOpenIssueWithLabel probes for a single open issue carrying the label.
// PerPage 1 keeps the call cheap; only existence matters.
func (s *Source) HasOpenIssueWithLabel(ctx context.Context, owner, repo, label string) (bool, error) {
	opts := &github.IssueListByRepoOptions{
		Labels: []string{label},
		State:  "open",
		ListOptions: github.ListOptions{
			PerPage: 1,
		},
	}

	issues, _, err := s.client.Issues.ListByRepo(ctx, owner, repo, opts)
	if err != nil {
		return false, common.WrapError(common.ErrCodeGitHubAPI, fmt.Sprintf("search issues with label %q failed", label), err)
	}
	return len(issues) > 0, nil
}

// SearchRepositories runs a repository search sorted by stars descending.
func (s *Source) SearchRepositories(ctx context.Context, query string, perPage int) ([]*domain.Repo, error) {
	opts := &github.SearchOptions{
		Sort:  "stars",
		Order: "desc",
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}

	result, _, err := s.client.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeGitHubAPI, "search repositories failed", err)
	}

	repos := make([]*domain.Repo, 0, len(result.Repositories))
	for _, item := range result.Repositories {
		repos = append(repos, toDomain(item))
	}
	return repos, nil
}

// ResolveUser validates a username against the API and returns the
// canonical login casing.
func (s *Source) ResolveUser(ctx context.Context, username string) (string, error) {
	user, _, err := s.client.Users.Get(ctx, username)
	if err != nil {
		return "", common.WrapError(common.ErrCodeGitHubAPI, fmt.Sprintf("resolve user %q failed", username), err)
	}
	return user.GetLogin(), nil
}
