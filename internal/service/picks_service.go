package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/krishn404/RepOSS/internal/common"
	"github.com/krishn404/RepOSS/internal/domain"
	"github.com/krishn404/RepOSS/internal/engine"
	"github.com/krishn404/RepOSS/internal/port"
)

// tier identifies which response strategy satisfied a request.
type tier int

const (
	tierCacheHit tier = iota
	tierPersonalized
	tierFallback
	tierEmpty
)

func (t tier) String() string {
	switch t {
	case tierCacheHit:
		return "cache"
	case tierPersonalized:
		return "personalized"
	case tierFallback:
		return "fallback"
	default:
		return "empty"
	}
}

const (
	fallbackQuery   = "is:public label:good-first-issue stars:>100"
	liveSearchQuery = "is:public stars:>1000"
)

// PicksService orchestrates a recommendation request: cache check, profile
// build, candidate pool load, batched signal extraction and scoring,
// diversity selection, cache write. Data-availability problems never
// surface as errors; the service degrades through the fallback tiers
// instead. The only error it returns is missing or invalid input.
type PicksService struct {
	source   port.Source
	pool     port.CandidatePool
	cache    port.PickCache
	profiles *engine.ProfileBuilder
	signals  *engine.SignalExtractor

	batchSize     int
	maxCandidates int
	poolLimit     int
	searchLimit   int
	minPicks      int
	maxPicks      int
}

// NewPicksService creates the orchestrator with its default batching and
// shortlist bounds.
func NewPicksService(source port.Source, pool port.CandidatePool, cache port.PickCache) *PicksService {
	return &PicksService{
		source:   source,
		pool:     pool,
		cache:    cache,
		profiles: engine.NewProfileBuilder(source),
		signals:  engine.NewSignalExtractor(source),

		batchSize:     10,
		maxCandidates: 100,
		poolLimit:     200,
		searchLimit:   100,
		minPicks:      5,
		maxPicks:      10,
	}
}

// ContributionPicks is the engine entry point. identity scopes the cache;
// an empty identity is treated as a guest keyed by username.
func (s *PicksService) ContributionPicks(ctx context.Context, identity, username string) ([]domain.ContributionPick, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.NewError(common.ErrCodeInvalidInput, "github username is required")
	}
	if identity == "" {
		identity = "guest:" + username
	}

	login, err := s.source.ResolveUser(ctx, username)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeInvalidInput, fmt.Sprintf("invalid GitHub username: %s", username), err)
	}

	picks, servedBy := s.compute(ctx, identity, login)
	fmt.Printf("🎯 [Picks] %d picks for %s served by %s tier\n", len(picks), login, servedBy)
	return picks, nil
}

// compute walks the tiers: cache hit, personalized computation, generic
// fallback, empty.
func (s *PicksService) compute(ctx context.Context, identity, login string) ([]domain.ContributionPick, tier) {
	key := cacheKey(identity, login)
	if cached, ok := s.cache.Get(key); ok {
		return cached, tierCacheHit
	}

	profile, err := s.profiles.Build(ctx, login)
	if err != nil {
		log.Printf("⚠️ [Picks] build profile for %s failed: %v", login, err)
		return s.fallback(ctx)
	}

	candidates := s.loadCandidates(ctx)
	if len(candidates) == 0 {
		return s.fallback(ctx)
	}

	picks := s.scoreCandidates(ctx, profile, candidates)
	if len(picks) == 0 {
		return s.fallback(ctx)
	}

	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Score > picks[j].Score
	})
	shortlist := engine.EnsureDiversity(picks, s.minPicks, s.maxPicks)

	s.cache.Set(key, shortlist)
	return shortlist, tierPersonalized
}

// loadCandidates prefers the curated pool and falls back to a live
// popularity search when the pool is empty or unavailable.
func (s *PicksService) loadCandidates(ctx context.Context) []*domain.Repo {
	candidates, err := s.pool.Candidates(ctx, s.poolLimit)
	if err != nil {
		log.Printf("⚠️ [Picks] candidate pool query failed: %v", err)
	}
	if len(candidates) > 0 {
		fmt.Printf("📚 [Picks] loaded %d candidates from the curated pool\n", len(candidates))
		return candidates
	}

	candidates, err = s.source.SearchRepositories(ctx, liveSearchQuery, s.searchLimit)
	if err != nil {
		log.Printf("⚠️ [Picks] live candidate search failed: %v", err)
		return nil
	}
	fmt.Printf("📚 [Picks] loaded %d candidates from live search\n", len(candidates))
	return candidates
}

// scoreCandidates runs signal extraction and scoring in sequential batches
// of concurrent workers. Extraction failures drop the candidate, never the
// request; a context deadline stops new batches but keeps finished work.
func (s *PicksService) scoreCandidates(ctx context.Context, profile *domain.UserProfile, candidates []*domain.Repo) []domain.ContributionPick {
	results := make([]*domain.ContributionPick, len(candidates))

	processed := common.Batch(ctx, len(candidates), func(ctx context.Context, i int) {
		repo := candidates[i]
		signals, err := s.signals.Extract(ctx, repo)
		if err != nil {
			log.Printf("❌ [Picks] extract signals for %s failed: %v, dropping candidate", repo.FullName, err)
			return
		}

		explained := engine.Explain(profile, signals, repo.Description)
		results[i] = &domain.ContributionPick{
			Name:         repo.FullName,
			URL:          repo.URL,
			Score:        engine.ScoreRepository(profile, signals),
			Difficulty:   signals.Complexity,
			Reason:       explained.Reason,
			MatchFactors: explained.MatchFactors,
			FirstSteps:   explained.FirstSteps,
		}
	},
		common.WithBatchSize(s.batchSize),
		common.WithMaxItems(s.maxCandidates),
	)

	picks := make([]domain.ContributionPick, 0, processed)
	for _, r := range results {
		if r != nil {
			picks = append(picks, *r)
		}
	}
	return picks
}

// fallback serves generic beginner-friendly repositories when
// personalization data is unavailable. Not cached: the result is not tied
// to any profile, and a fresh query keeps it current. A failure here
// yields an empty list, never an error, so the presentation layer can show
// a "no recommendations" state instead of crashing.
func (s *PicksService) fallback(ctx context.Context) ([]domain.ContributionPick, tier) {
	fmt.Println("🛟 [Picks] serving generic beginner-friendly recommendations")

	repos, err := s.source.SearchRepositories(ctx, fallbackQuery, s.maxPicks)
	if err != nil {
		log.Printf("❌ [Picks] fallback search failed: %v", err)
		return []domain.ContributionPick{}, tierEmpty
	}
	if len(repos) == 0 {
		return []domain.ContributionPick{}, tierEmpty
	}

	picks := make([]domain.ContributionPick, 0, s.maxPicks)
	for i, repo := range repos {
		if i >= s.maxPicks {
			break
		}

		difficulty := domain.ComplexityHard
		flavor := "popular"
		switch {
		case repo.Stars < 500:
			difficulty = domain.ComplexityEasy
			flavor = "beginner-friendly"
		case repo.Stars < 2000:
			difficulty = domain.ComplexityMedium
		}

		var factors []string
		if repo.Language != "" {
			factors = append(factors, repo.Language)
		}
		topics := repo.Topics
		if len(topics) > 2 {
			topics = topics[:2]
		}
		factors = append(factors, topics...)
		factors = append(factors, "good first issues", "active community")
		if len(factors) > 4 {
			factors = factors[:4]
		}

		picks = append(picks, domain.ContributionPick{
			Name:         repo.FullName,
			URL:          repo.URL,
			Score:        float64(70 - i*2), // descending placeholder scores
			Difficulty:   difficulty,
			Reason:       fmt.Sprintf("This %s project has good first issues and active maintenance", flavor),
			MatchFactors: factors,
			FirstSteps:   "Pick a good first issue to get started",
		})
	}

	return picks, tierFallback
}

func cacheKey(identity, username string) string {
	return fmt.Sprintf("contribution-picks:%s:%s", identity, username)
}
