package engine

import (
	"context"
	"log"
	"time"

	"github.com/krishn404/RepOSS/internal/common"
	"github.com/krishn404/RepOSS/internal/domain"
	"github.com/krishn404/RepOSS/internal/port"
)

const (
	// maxOwnedProcessed caps how many owned repos feed the profile.
	// Precision past 50 repos is not worth the extra processing.
	maxOwnedProcessed = 50

	// activeWindowDays is how far back a push still counts as "active".
	activeWindowDays = 90
)

// ProfileBuilder derives a UserProfile from public GitHub activity.
// Each upstream facet is independently best-effort: starred repos and
// events degrade to empty defaults on failure, only the owned-repos call
// is a hard failure.
type ProfileBuilder struct {
	source  port.Source
	nowFunc func() time.Time
}

// NewProfileBuilder creates a builder over the given source.
func NewProfileBuilder(source port.Source) *ProfileBuilder {
	return &ProfileBuilder{
		source:  source,
		nowFunc: time.Now, // injected in tests
	}
}

// Build assembles the profile for one username. The profile is threaded
// through explicit absorb steps, never hidden in shared state.
func (b *ProfileBuilder) Build(ctx context.Context, username string) (*domain.UserProfile, error) {
	profile := domain.NewUserProfile()
	now := b.now()

	owned, err := b.source.OwnedRepos(ctx, username)
	if err != nil {
		// The one facet we cannot degrade: without owned repos there is
		// no skill signal at all. Escalate so the caller can fall back.
		return nil, common.WrapError(common.ErrCodeGitHubAPI, "build profile failed", err)
	}
	b.absorbOwned(profile, owned, now)

	starred, err := b.source.StarredRepos(ctx, username)
	if err != nil {
		log.Printf("⚠️ [Profile] fetch starred repos for %s failed: %v", username, err)
	} else {
		b.absorbStarred(profile, starred)
	}

	events, err := b.source.PublicEvents(ctx, username)
	if err != nil {
		log.Printf("⚠️ [Profile] fetch public events for %s failed: %v", username, err)
	} else {
		b.absorbEvents(profile, events, now)
	}

	return profile, nil
}

// absorbOwned folds owned repositories into language weights, repo-type
// counts, active repos and the activity window.
func (b *ProfileBuilder) absorbOwned(profile *domain.UserProfile, repos []*domain.Repo, now time.Time) {
	if len(repos) > maxOwnedProcessed {
		repos = repos[:maxOwnedProcessed]
	}

	for _, repo := range repos {
		if repo.Language != "" {
			// Weight by repo size, a depth proxy, not just repo count.
			profile.Languages[repo.Language] += int64(repo.Size)
		}

		switch domain.ClassifyRepoType(repo.Name, repo.Description) {
		case domain.RepoTypeApp:
			profile.RepoTypes.Apps++
		case domain.RepoTypeLibrary:
			profile.RepoTypes.Libraries++
		case domain.RepoTypeTool:
			profile.RepoTypes.Tooling++
		}

		if repo.PushedAt.IsZero() {
			continue
		}

		days := int(now.Sub(repo.PushedAt).Hours() / 24)
		if days < activeWindowDays {
			profile.ActiveRepos = append(profile.ActiveRepos, domain.ActiveRepo{
				FullName: repo.FullName,
				Language: repo.Language,
				PushedAt: repo.PushedAt,
				Topics:   repo.Topics,
			})
		}
		profile.ObserveActivity(days)
	}
}

// absorbStarred folds starred repositories into topics and inferred
// frameworks. Stars signal interest, not authorship.
func (b *ProfileBuilder) absorbStarred(profile *domain.UserProfile, repos []*domain.Repo) {
	for _, repo := range repos {
		for _, topic := range repo.Topics {
			profile.Topics[topic] = true
		}
		for _, fw := range domain.InferFrameworks(repo.Name, repo.Description, repo.Topics) {
			profile.Frameworks[fw] = true
		}
	}
}

// absorbEvents narrows the activity window from recent push events.
func (b *ProfileBuilder) absorbEvents(profile *domain.UserProfile, events []domain.Event, now time.Time) {
	for _, event := range events {
		if event.Type != "PushEvent" || event.CreatedAt.IsZero() {
			continue
		}
		profile.ObserveActivity(int(now.Sub(event.CreatedAt).Hours() / 24))
	}
}

func (b *ProfileBuilder) now() time.Time {
	if b != nil && b.nowFunc != nil {
		return b.nowFunc()
	}
	return time.Now()
}
