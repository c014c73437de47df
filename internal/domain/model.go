package domain

import (
	"strings"
	"time"
)

// Complexity is the estimated effort bucket for a first contribution.
type Complexity string

const (
	ComplexityEasy   Complexity = "Easy"
	ComplexityMedium Complexity = "Medium"
	ComplexityHard   Complexity = "Hard"
)

// RepoType is the heuristic project classification shared by user profiles
// and repository signals.
type RepoType string

const (
	RepoTypeApp     RepoType = "app"
	RepoTypeLibrary RepoType = "library"
	RepoTypeTool    RepoType = "tool"
	RepoTypeUnknown RepoType = "unknown"
)

// IssuesTrend is a coarse proxy computed from a single open-issue snapshot,
// not a real time series.
type IssuesTrend string

const (
	IssuesIncreasing IssuesTrend = "increasing"
	IssuesStable     IssuesTrend = "stable"
	IssuesDecreasing IssuesTrend = "decreasing"
)

// Repo is a candidate repository summary. It doubles as the GORM model for
// the curated candidate pool, so staff picks and synced repositories share
// one table.
type Repo struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	FullName    string    `json:"full_name" gorm:"index"` // "owner/repo"
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Language    string    `json:"language"`
	Topics      []string  `json:"topics" gorm:"serializer:json"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	OpenIssues  int       `json:"open_issues"`
	Size        int       `json:"size"` // kilobytes, proxy for depth of work in a language
	StaffPick   bool      `json:"staff_pick"`
	PushedAt    time.Time `json:"pushed_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnerAndName splits FullName into its owner and repository parts.
// The second value is empty when FullName is not "owner/repo" shaped.
func (r *Repo) OwnerAndName() (string, string) {
	owner, name, ok := strings.Cut(r.FullName, "/")
	if !ok {
		return r.FullName, ""
	}
	return owner, name
}

// Event is a public activity event for a user, reduced to the fields the
// profile builder needs.
type Event struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// ActiveRepo is an owned repository pushed to within the activity window.
type ActiveRepo struct {
	FullName string    `json:"full_name"`
	Language string    `json:"language"`
	PushedAt time.Time `json:"pushed_at"`
	Topics   []string  `json:"topics"`
}

// RepoTypeCounts tallies how the user's owned repositories classify.
type RepoTypeCounts struct {
	Apps      int `json:"apps"`
	Libraries int `json:"libraries"`
	Tooling   int `json:"tooling"`
}

// UserProfile aggregates a user's interests and skills from public GitHub
// activity. It is rebuilt per request and never persisted.
type UserProfile struct {
	Languages        map[string]int64 `json:"languages"` // language -> cumulative KB across owned repos
	Topics           map[string]bool  `json:"topics"`    // collected from starred repos
	Frameworks       map[string]bool  `json:"frameworks"`
	ActiveRepos      []ActiveRepo     `json:"active_repos"`
	RepoTypes        RepoTypeCounts   `json:"repo_types"`
	LastActivityDays int              `json:"last_activity_days"` // min observed days since push/event, capped at 365
}

// NewUserProfile returns an empty profile with the activity window at its
// 365-day cap.
func NewUserProfile() *UserProfile {
	return &UserProfile{
		Languages:        make(map[string]int64),
		Topics:           make(map[string]bool),
		Frameworks:       make(map[string]bool),
		LastActivityDays: 365,
	}
}

// ObserveActivity narrows the activity window when more recent evidence is
// found. The window only ever shrinks and never goes negative.
func (p *UserProfile) ObserveActivity(daysAgo int) {
	if daysAgo < 0 {
		daysAgo = 0
	}
	if daysAgo < p.LastActivityDays {
		p.LastActivityDays = daysAgo
	}
}

// RepoSignals are the derived per-repository features used as scoring
// inputs. Built once per candidate, read-only afterwards.
type RepoSignals struct {
	Languages                []string    `json:"languages"` // primary language first
	Topics                   []string    `json:"topics"`
	Frameworks               []string    `json:"frameworks"`
	MaintenanceHealth        int         `json:"maintenance_health"`        // 0-100
	ContributionFriendliness int         `json:"contribution_friendliness"` // 0-100
	RepoType                 RepoType    `json:"repo_type"`
	Complexity               Complexity  `json:"complexity"`
	HasGoodFirstIssue        bool        `json:"has_good_first_issue"`
	HasHelpWanted            bool        `json:"has_help_wanted"`
	HasContributing          bool        `json:"has_contributing"`
	HasCodeOfConduct         bool        `json:"has_code_of_conduct"`
	RecentCommits            bool        `json:"recent_commits"` // pushed within 30 days
	OpenIssuesTrend          IssuesTrend `json:"open_issues_trend"`
}

// ContributionPick is one explained recommendation, the only shape the
// presentation layer consumes.
type ContributionPick struct {
	Name         string     `json:"name"` // "owner/repo"
	URL          string     `json:"url"`
	Score        float64    `json:"score"`
	Difficulty   Complexity `json:"difficulty"`
	Reason       string     `json:"reason"`
	MatchFactors []string   `json:"match_factors"`
	FirstSteps   string     `json:"first_steps"`
}
