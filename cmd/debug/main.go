package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/krishn404/RepOSS/internal/adapter/github"
	"github.com/krishn404/RepOSS/internal/domain"
	"github.com/krishn404/RepOSS/internal/engine"
)

// Debug walk-through: build a profile for one user, extract signals for a
// few popular repos and print the resulting scores.
func main() {
	githubToken := os.Getenv("GITHUB_TOKEN")
	username := os.Getenv("DEBUG_USERNAME")
	if username == "" {
		username = "torvalds"
	}

	ctx := context.Background()
	source := github.NewSource(githubToken)
	profiles := engine.NewProfileBuilder(source)
	signals := engine.NewSignalExtractor(source)

	fmt.Printf("🔍 debug mode: profiling %s\n", username)

	profile, err := profiles.Build(ctx, username)
	if err != nil {
		log.Fatalf("❌ build profile failed: %v", err)
	}

	fmt.Printf("✅ profile built: %d languages, %d topics, %d frameworks, active window %d days\n",
		len(profile.Languages), len(profile.Topics), len(profile.Frameworks), profile.LastActivityDays)
	printLanguages(profile)

	fmt.Println("📥 fetching a few popular candidates...")
	candidates, err := source.SearchRepositories(ctx, "is:public stars:>1000", 5)
	if err != nil {
		log.Fatalf("❌ candidate search failed: %v", err)
	}

	for i, repo := range candidates {
		fmt.Printf("\n  candidate #%d: %s (⭐ %d)\n", i+1, repo.FullName, repo.Stars)

		sig, err := signals.Extract(ctx, repo)
		if err != nil {
			log.Printf("    ⚠️ extract failed: %v", err)
			continue
		}

		explained := engine.Explain(profile, sig, repo.Description)
		fmt.Printf("    languages: %v\n", sig.Languages)
		fmt.Printf("    health: %d  friendliness: %d  complexity: %s\n",
			sig.MaintenanceHealth, sig.ContributionFriendliness, sig.Complexity)
		fmt.Printf("    score: %.1f\n", engine.ScoreRepository(profile, sig))
		fmt.Printf("    reason: %s\n", explained.Reason)
		fmt.Printf("    first steps: %s\n", explained.FirstSteps)
	}
}

func printLanguages(profile *domain.UserProfile) {
	langs := make([]string, 0, len(profile.Languages))
	for lang := range profile.Languages {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return profile.Languages[langs[i]] > profile.Languages[langs[j]]
	})

	for i, lang := range langs {
		if i >= 5 {
			break
		}
		fmt.Printf("    %s: %d KB\n", lang, profile.Languages[lang])
	}
}
