package engine

import (
	"fmt"
	"strings"

	"github.com/krishn404/RepOSS/internal/domain"
)

// ScoreRepository combines a user profile and repository signals into a
// match score in [0,100]. Pure function: no clock, no randomness, same
// inputs always produce the same score.
//
// Weighted additive model:
//
//	language overlap   up to 40, scaled by matched/total; -10 when none
//	framework overlap  flat 20 when any
//	topic overlap      up to 15, saturates at 3 matches
//	recent activity    +10 fresh / -5 stale
//	contribution ease  15 * friendliness/100
//	maintenance        5 * health/100
//	type alignment     flat 5
func ScoreRepository(profile *domain.UserProfile, signals *domain.RepoSignals) float64 {
	score := 0.0

	// Language match carries the highest weight. Zero overlap is actively
	// penalized, not just unrewarded: recommending a language the user
	// never touches is worse than neutral.
	matchedLangs := matchedLanguages(profile, signals)
	if len(matchedLangs) > 0 {
		total := len(signals.Languages)
		if total < 1 {
			total = 1
		}
		score += 40 * float64(len(matchedLangs)) / float64(total)
	} else {
		score -= 10
	}

	if len(matchedFrameworks(profile, signals)) > 0 {
		score += 20
	}

	if matched := matchedTopicCount(profile, signals); matched > 0 {
		frac := float64(matched) / 3
		if frac > 1 {
			frac = 1
		}
		score += 15 * frac
	}

	if signals.RecentCommits {
		score += 10
	} else {
		score -= 5
	}

	score += float64(signals.ContributionFriendliness) / 100 * 15
	score += float64(signals.MaintenanceHealth) / 100 * 5

	prefersApps := profile.RepoTypes.Apps > profile.RepoTypes.Libraries
	prefersLibraries := profile.RepoTypes.Libraries > profile.RepoTypes.Apps
	if (prefersApps && signals.RepoType == domain.RepoTypeApp) ||
		(prefersLibraries && signals.RepoType == domain.RepoTypeLibrary) {
		score += 5
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Explanation is the human-readable half of a recommendation.
type Explanation struct {
	Reason       string
	MatchFactors []string // at most 4, fixed precedence order
	FirstSteps   string
}

// Explain derives the reason sentence, match-factor labels and first-steps
// suggestion for one candidate. Pure function over the same inputs as
// ScoreRepository plus the repo description.
func Explain(profile *domain.UserProfile, signals *domain.RepoSignals, description string) Explanation {
	var factors []string
	var reasons []string

	if matched := matchedLanguages(profile, signals); len(matched) > 0 {
		factors = append(factors, matched[0])
		reasons = append(reasons, fmt.Sprintf("matches your %s experience", matched[0]))
	}

	if matched := matchedFrameworks(profile, signals); len(matched) > 0 {
		factors = append(factors, matched[0])
		reasons = append(reasons, fmt.Sprintf("uses %s", matched[0]))
	}

	if signals.HasGoodFirstIssue {
		factors = append(factors, "good first issues")
		reasons = append(reasons, "has good first issues")
	}
	if signals.HasHelpWanted {
		factors = append(factors, "help wanted")
	}
	if signals.HasContributing {
		factors = append(factors, "contributing guide")
	}
	if signals.RecentCommits {
		factors = append(factors, "recently active")
		reasons = append(reasons, "actively maintained")
	}

	reason := fmt.Sprintf("This %s project", strings.ToLower(string(signals.Complexity)))
	if len(reasons) > 0 {
		if len(reasons) > 2 {
			reasons = reasons[:2]
		}
		reason += " " + strings.Join(reasons, " and ")
	} else {
		reason += " aligns with your interests"
	}

	if len(factors) > 4 {
		factors = factors[:4]
	}

	var firstSteps string
	switch {
	case signals.HasGoodFirstIssue:
		firstSteps = "Pick a good first issue to get started"
	case signals.HasContributing:
		firstSteps = "Read the CONTRIBUTING.md guide"
	case signals.HasHelpWanted:
		firstSteps = "Look for help wanted issues"
	case description != "" && len(description) < 100:
		firstSteps = "Improve documentation"
	default:
		firstSteps = "Add tests or fix a small bug"
	}

	return Explanation{
		Reason:       reason,
		MatchFactors: factors,
		FirstSteps:   firstSteps,
	}
}

// matchedLanguages returns the signal languages the user also writes, in
// signal order so the primary language stays first.
func matchedLanguages(profile *domain.UserProfile, signals *domain.RepoSignals) []string {
	var matched []string
	for _, lang := range signals.Languages {
		if _, ok := profile.Languages[lang]; ok {
			matched = append(matched, lang)
		}
	}
	return matched
}

// matchedFrameworks returns the signal frameworks the user also follows,
// in signal (classifier table) order.
func matchedFrameworks(profile *domain.UserProfile, signals *domain.RepoSignals) []string {
	var matched []string
	for _, fw := range signals.Frameworks {
		if profile.Frameworks[fw] {
			matched = append(matched, fw)
		}
	}
	return matched
}

func matchedTopicCount(profile *domain.UserProfile, signals *domain.RepoSignals) int {
	count := 0
	for _, topic := range signals.Topics {
		if profile.Topics[topic] {
			count++
		}
	}
	return count
}
