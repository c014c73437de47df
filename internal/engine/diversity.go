package engine

import (
	"sort"

	"github.com/krishn404/RepOSS/internal/domain"
)

// EnsureDiversity selects the final shortlist from a score-sorted pick
// list so no single match dimension crowds out the rest.
//
// When the input already fits within maxCount it is returned as-is (in
// score order). Otherwise picks are grouped by their first listed match
// factor ("other" when none), groups are visited largest first, and up to
// two picks are taken per group until maxCount is reached. If that leaves
// fewer than minCount picks, the highest-scoring leftovers backfill the
// gap. Every output pick comes from the input; nothing is synthesized.
func EnsureDiversity(picks []domain.ContributionPick, minCount, maxCount int) []domain.ContributionPick {
	if len(picks) <= maxCount {
		return append([]domain.ContributionPick(nil), picks...)
	}

	// Group by primary match factor, keeping first-seen group order so
	// equal-sized groups stay deterministic.
	type factorGroup struct {
		key     string
		indices []int
	}
	byKey := make(map[string]*factorGroup)
	var groups []*factorGroup
	for i, pick := range picks {
		key := "other"
		if len(pick.MatchFactors) > 0 {
			key = pick.MatchFactors[0]
		}
		g, ok := byKey[key]
		if !ok {
			g = &factorGroup{key: key}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.indices = append(g.indices, i)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].indices) > len(groups[j].indices)
	})

	// Up to two per group, best score first within a group (input order
	// is already score-sorted).
	selected := make([]int, 0, maxCount)
	taken := make([]bool, len(picks))
	for _, g := range groups {
		if len(selected) >= maxCount {
			break
		}
		take := 2
		if take > len(g.indices) {
			take = len(g.indices)
		}
		if room := maxCount - len(selected); take > room {
			take = room
		}
		for _, idx := range g.indices[:take] {
			selected = append(selected, idx)
			taken[idx] = true
		}
	}

	// Many small groups can leave the shortlist under minCount; backfill
	// with the best remaining scores.
	if len(selected) < minCount {
		var remaining []int
		for i := range picks {
			if !taken[i] {
				remaining = append(remaining, i)
			}
		}
		sort.SliceStable(remaining, func(a, b int) bool {
			return picks[remaining[a]].Score > picks[remaining[b]].Score
		})
		need := minCount - len(selected)
		if need > len(remaining) {
			need = len(remaining)
		}
		for _, idx := range remaining[:need] {
			selected = append(selected, idx)
		}
	}

	if len(selected) > maxCount {
		selected = selected[:maxCount]
	}

	result := make([]domain.ContributionPick, 0, len(selected))
	for _, idx := range selected {
		result = append(result, picks[idx])
	}
	return result
}
