package port

import (
	"context"

	"github.com/krishn404/RepOSS/internal/domain"
)

// Source is the upstream GitHub boundary. Every call may fail with a
// network, rate-limit or not-found error; callers are expected to treat
// failure as "no data" and degrade, never to surface transport errors.
type Source interface {
	// OwnedRepos lists repositories owned by the user, most recently
	// updated first, capped at one page of 100.
	OwnedRepos(ctx context.Context, username string) ([]*domain.Repo, error)

	// StarredRepos lists repositories the user has starred, capped at one
	// page of 100.
	StarredRepos(ctx context.Context, username string) ([]*domain.Repo, error)

	// PublicEvents lists the user's recent public activity events.
	PublicEvents(ctx context.Context, username string) ([]domain.Event, error)

	// LanguageBreakdown returns bytes of code per language for one repo.
	LanguageBreakdown(ctx context.Context, owner, repo string) (map[string]int64, error)

	// RootContents lists the file and directory names at the repo root.
	RootContents(ctx context.Context, owner, repo string) ([]string, error)

	// HasOpenIssueWithLabel reports whether at least one open issue
	// carries the given label.
	HasOpenIssueWithLabel(ctx context.Context, owner, repo, label string) (bool, error)

	// SearchRepositories runs a repository search sorted by stars
	// descending and returns up to perPage results.
	SearchRepositories(ctx context.Context, query string, perPage int) ([]*domain.Repo, error)

	// ResolveUser validates a username and returns the canonical login.
	ResolveUser(ctx context.Context, username string) (string, error)
}

// CandidatePool is the curated internal dataset of repositories eligible
// for recommendation. Preferred over live search when non-empty.
type CandidatePool interface {
	// Candidates returns up to limit repositories, staff picks first and
	// then by stars descending.
	Candidates(ctx context.Context, limit int) ([]*domain.Repo, error)

	// Save inserts or updates a repository in the pool.
	Save(ctx context.Context, repo *domain.Repo) error

	// Exists reports whether the repository is already pooled.
	Exists(ctx context.Context, repoID int64) (bool, error)

	// MarkStaffPick flags a pooled repository as curator-approved.
	MarkStaffPick(ctx context.Context, repoID int64) error
}

// PickCache memoizes a finished shortlist per (identity, username) key.
// The TTL is fixed per cache instance. Failures on either side must look
// like a miss or a no-op, never an error.
type PickCache interface {
	Get(key string) ([]domain.ContributionPick, bool)
	Set(key string, picks []domain.ContributionPick)
}

// Recommender is the engine entry point, the only contract the rest of
// the system needs. It never fails for data-availability reasons; the
// only error it returns is missing or invalid required input.
type Recommender interface {
	ContributionPicks(ctx context.Context, identity, username string) ([]domain.ContributionPick, error)
}
