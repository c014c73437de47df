package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/krishn404/RepOSS/internal/common"
	"github.com/krishn404/RepOSS/internal/domain"
)

// MockSource is a testify mock over port.Source, shared by the engine tests.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) OwnedRepos(ctx context.Context, username string) ([]*domain.Repo, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Repo), args.Error(1)
}

func (m *MockSource) StarredRepos(ctx context.Context, username string) ([]*domain.Repo, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Repo), args.Error(1)
}

func (m *MockSource) PublicEvents(ctx context.Context, username string) ([]domain.Event, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockSource) LanguageBreakdown(ctx context.Context, owner, repo string) (map[string]int64, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockSource) RootContents(ctx context.Context, owner, repo string) ([]string, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSource) HasOpenIssueWithLabel(ctx context.Context, owner, repo, label string) (bool, error) {
	args := m.Called(ctx, owner, repo, label)
	return args.Bool(0), args.Error(1)
}

func (m *MockSource) SearchRepositories(ctx context.Context, query string, perPage int) ([]*domain.Repo, error) {
	args := m.Called(ctx, query, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Repo), args.Error(1)
}

func (m *MockSource) ResolveUser(ctx context.Context, username string) (string, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Error(1)
}

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func daysAgo(d int) time.Time { return testNow.AddDate(0, 0, -d) }

func TestProfileBuilder_Build(t *testing.T) {
	source := new(MockSource)
	source.On("OwnedRepos", mock.Anything, "octocat").Return([]*domain.Repo{
		{
			ID:       1,
			FullName: "octocat/go-server",
			Name:     "go-server",
			Language: "Go",
			Size:     5000,
			PushedAt: daysAgo(10),
			Topics:   []string{"api"},
		},
		{
			ID:          2,
			FullName:    "octocat/todo-app",
			Name:        "todo-app",
			Description: "A todo application",
			Language:    "TypeScript",
			Size:        3000,
			PushedAt:    daysAgo(200),
		},
		{
			ID:       3,
			FullName: "octocat/go-utils",
			Name:     "go-utils",
			Language: "Go",
			Size:     1000,
			// zero PushedAt stays out of the activity window
		},
	}, nil)
	source.On("StarredRepos", mock.Anything, "octocat").Return([]*domain.Repo{
		{
			ID:          4,
			FullName:    "facebook/react",
			Name:        "react",
			Description: "A JavaScript library for building user interfaces",
			Topics:      []string{"react", "frontend"},
		},
	}, nil)
	source.On("PublicEvents", mock.Anything, "octocat").Return([]domain.Event{
		{Type: "PushEvent", CreatedAt: daysAgo(3)},
		{Type: "WatchEvent", CreatedAt: daysAgo(1)},
	}, nil)

	builder := &ProfileBuilder{source: source, nowFunc: fixedNow}
	profile, err := builder.Build(context.Background(), "octocat")

	assert.NoError(t, err)
	// Language weight accumulates repo size, not repo count.
	assert.Equal(t, int64(6000), profile.Languages["Go"])
	assert.Equal(t, int64(3000), profile.Languages["TypeScript"])
	// todo-app classifies as an app.
	assert.Equal(t, 1, profile.RepoTypes.Apps)
	// Only the repo pushed within 90 days is active.
	assert.Len(t, profile.ActiveRepos, 1)
	assert.Equal(t, "octocat/go-server", profile.ActiveRepos[0].FullName)
	// Stars feed topics and frameworks.
	assert.True(t, profile.Topics["react"])
	assert.True(t, profile.Topics["frontend"])
	assert.True(t, profile.Frameworks["React"])
	// The push event 3 days ago wins over the 10-day-old repo push.
	assert.Equal(t, 3, profile.LastActivityDays)
	source.AssertExpectations(t)
}

func TestProfileBuilder_Build_OwnedReposError(t *testing.T) {
	source := new(MockSource)
	source.On("OwnedRepos", mock.Anything, "ghost").Return(nil, errors.New("404"))

	builder := &ProfileBuilder{source: source, nowFunc: fixedNow}
	profile, err := builder.Build(context.Background(), "ghost")

	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, common.IsCode(err, common.ErrCodeGitHubAPI))
	source.AssertNotCalled(t, "StarredRepos", mock.Anything, mock.Anything)
}

func TestProfileBuilder_Build_DegradesOnSecondaryFailures(t *testing.T) {
	source := new(MockSource)
	source.On("OwnedRepos", mock.Anything, "octocat").Return([]*domain.Repo{
		{ID: 1, FullName: "octocat/x", Name: "x", Language: "Go", Size: 100, PushedAt: daysAgo(5)},
	}, nil)
	source.On("StarredRepos", mock.Anything, "octocat").Return(nil, errors.New("rate limited"))
	source.On("PublicEvents", mock.Anything, "octocat").Return(nil, errors.New("rate limited"))

	builder := &ProfileBuilder{source: source, nowFunc: fixedNow}
	profile, err := builder.Build(context.Background(), "octocat")

	assert.NoError(t, err)
	assert.Equal(t, int64(100), profile.Languages["Go"])
	assert.Empty(t, profile.Topics)
	assert.Empty(t, profile.Frameworks)
	assert.Equal(t, 5, profile.LastActivityDays)
}

func TestProfileBuilder_Build_CapsOwnedRepos(t *testing.T) {
	repos := make([]*domain.Repo, 60)
	for i := range repos {
		repos[i] = &domain.Repo{
			ID:       int64(i + 1),
			FullName: fmt.Sprintf("octocat/repo-%d", i),
			Name:     fmt.Sprintf("repo-%d", i),
			Language: "Go",
			Size:     1,
			PushedAt: daysAgo(10),
		}
	}

	source := new(MockSource)
	source.On("OwnedRepos", mock.Anything, "octocat").Return(repos, nil)
	source.On("StarredRepos", mock.Anything, "octocat").Return([]*domain.Repo{}, nil)
	source.On("PublicEvents", mock.Anything, "octocat").Return([]domain.Event{}, nil)

	builder := &ProfileBuilder{source: source, nowFunc: fixedNow}
	profile, err := builder.Build(context.Background(), "octocat")

	assert.NoError(t, err)
	// Only the first 50 repos contribute weight.
	assert.Equal(t, int64(50), profile.Languages["Go"])
	assert.Len(t, profile.ActiveRepos, 50)
}
