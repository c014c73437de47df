package engine

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/krishn404/RepOSS/internal/domain"
	"github.com/krishn404/RepOSS/internal/port"
)

const (
	labelGoodFirstIssue = "good first issue"
	labelHelpWanted     = "help wanted"

	maxSignalLanguages = 3
)

// SignalExtractor derives RepoSignals for one candidate repository.
// It issues up to four extra upstream calls per repo (languages, root
// contents, two label probes); each one is best-effort and falls back to
// a safe default, so one flaky call never voids the whole extraction.
// This is the dominant cost driver of a recommendation request.
type SignalExtractor struct {
	source  port.Source
	nowFunc func() time.Time
}

// NewSignalExtractor creates an extractor over the given source.
func NewSignalExtractor(source port.Source) *SignalExtractor {
	return &SignalExtractor{
		source:  source,
		nowFunc: time.Now, // injected in tests
	}
}

// Extract builds the signals for one candidate. The only error it returns
// is context cancellation; individual upstream failures degrade instead.
func (e *SignalExtractor) Extract(ctx context.Context, repo *domain.Repo) (*domain.RepoSignals, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	owner, name := repo.OwnerAndName()

	languages := e.topLanguages(ctx, repo, owner, name)
	frameworks := domain.InferFrameworks(repo.Name, repo.Description, repo.Topics)
	hasContributing, hasCodeOfConduct := e.rootFileMarkers(ctx, owner, name)
	hasGoodFirstIssue := e.hasOpenLabel(ctx, owner, name, labelGoodFirstIssue)
	hasHelpWanted := e.hasOpenLabel(ctx, owner, name, labelHelpWanted)

	daysSincePush := 365.0
	if !repo.PushedAt.IsZero() {
		daysSincePush = e.now().Sub(repo.PushedAt).Hours() / 24
	}
	recentCommits := daysSincePush < 30

	// Additive maintenance health, base 50.
	maintenanceHealth := 50
	if recentCommits {
		maintenanceHealth += 30
	}
	if daysSincePush < 90 {
		maintenanceHealth += 10
	}
	if repo.OpenIssues < 50 {
		maintenanceHealth += 10
	}
	if repo.Stars > 100 {
		maintenanceHealth += 10
	}

	// Additive contribution friendliness, base 30.
	contributionFriendliness := 30
	if hasGoodFirstIssue {
		contributionFriendliness += 25
	}
	if hasHelpWanted {
		contributionFriendliness += 20
	}
	if hasContributing {
		contributionFriendliness += 15
	}
	if hasCodeOfConduct {
		contributionFriendliness += 10
	}

	// Snapshot proxy only; no historical issue data is available.
	trend := domain.IssuesStable
	if repo.OpenIssues > 100 {
		trend = domain.IssuesIncreasing
	} else if repo.OpenIssues < 20 {
		trend = domain.IssuesDecreasing
	}

	complexity := domain.ComplexityMedium
	if repo.Stars < 100 && len(languages) <= 1 {
		complexity = domain.ComplexityEasy
	} else if repo.Stars > 1000 || len(languages) > maxSignalLanguages {
		complexity = domain.ComplexityHard
	}

	return &domain.RepoSignals{
		Languages:                languages,
		Topics:                   repo.Topics,
		Frameworks:               frameworks,
		MaintenanceHealth:        clampInt(maintenanceHealth, 0, 100),
		ContributionFriendliness: clampInt(contributionFriendliness, 0, 100),
		RepoType:                 domain.ClassifyRepoType(repo.FullName, repo.Description),
		Complexity:               complexity,
		HasGoodFirstIssue:        hasGoodFirstIssue,
		HasHelpWanted:            hasHelpWanted,
		HasContributing:          hasContributing,
		HasCodeOfConduct:         hasCodeOfConduct,
		RecentCommits:            recentCommits,
		OpenIssuesTrend:          trend,
	}, nil
}

// topLanguages returns up to three languages by byte count descending with
// the repo's declared language first. When the breakdown call fails, the
// declared language alone is the fallback.
func (e *SignalExtractor) topLanguages(ctx context.Context, repo *domain.Repo, owner, name string) []string {
	breakdown, err := e.source.LanguageBreakdown(ctx, owner, name)
	if err != nil {
		log.Printf("⚠️ [Signals] language breakdown for %s failed: %v", repo.FullName, err)
		if repo.Language != "" {
			return []string{repo.Language}
		}
		return nil
	}

	ordered := make([]string, 0, len(breakdown))
	for lang := range breakdown {
		ordered = append(ordered, lang)
	}
	// Bytes descending, name ascending on ties, so output is deterministic.
	sort.Slice(ordered, func(i, j int) bool {
		if breakdown[ordered[i]] != breakdown[ordered[j]] {
			return breakdown[ordered[i]] > breakdown[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})
	if len(ordered) > maxSignalLanguages {
		ordered = ordered[:maxSignalLanguages]
	}

	if repo.Language != "" && !containsString(ordered, repo.Language) {
		ordered = append([]string{repo.Language}, ordered...)
	}
	return ordered
}

// rootFileMarkers checks the repo root for a CONTRIBUTING file and a code
// of conduct.
func (e *SignalExtractor) rootFileMarkers(ctx context.Context, owner, name string) (hasContributing, hasCodeOfConduct bool) {
	entries, err := e.source.RootContents(ctx, owner, name)
	if err != nil {
		log.Printf("⚠️ [Signals] root contents for %s/%s failed: %v", owner, name, err)
		return false, false
	}

	for _, entry := range entries {
		lower := strings.ToLower(entry)
		if strings.Contains(lower, "contributing") {
			hasContributing = true
		}
		if strings.Contains(lower, "conduct") {
			hasCodeOfConduct = true
		}
	}
	return hasContributing, hasCodeOfConduct
}

// hasOpenLabel probes for one open issue with the label, false on failure.
func (e *SignalExtractor) hasOpenLabel(ctx context.Context, owner, name, label string) bool {
	found, err := e.source.HasOpenIssueWithLabel(ctx, owner, name, label)
	if err != nil {
		log.Printf("⚠️ [Signals] label probe %q for %s/%s failed: %v", label, owner, name, err)
		return false
	}
	return found
}

func (e *SignalExtractor) now() time.Time {
	if e != nil && e.nowFunc != nil {
		return e.nowFunc()
	}
	return time.Now()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
