package service

import (
	"context"
	"fmt"
	"log"

	"github.com/krishn404/RepOSS/internal/port"
)

// poolQueries are the searches that seed the curated candidate pool.
var poolQueries = []string{
	"is:public stars:>1000",
	"is:public label:good-first-issue stars:>100",
	"topic:hacktoberfest stars:>100",
}

// CurationService fills the candidate pool from GitHub search. It is the
// ingest side of the curated dataset the recommendation engine prefers
// over live search; admins later flag individual rows as staff picks.
type CurationService struct {
	source   port.Source
	pool     port.CandidatePool
	perQuery int
}

// NewCurationService creates a curation service syncing up to 50 repos per
// seed query.
func NewCurationService(source port.Source, pool port.CandidatePool) *CurationService {
	return &CurationService{
		source:   source,
		pool:     pool,
		perQuery: 50,
	}
}

// SyncPool runs one sync cycle. Individual search or save failures are
// logged and skipped; only context cancellation aborts the cycle.
func (c *CurationService) SyncPool(ctx context.Context) error {
	fmt.Println("🚀 [Curation] syncing candidate pool from GitHub...")

	total := 0
	for _, query := range poolQueries {
		if err := ctx.Err(); err != nil {
			fmt.Println("⏰ [Curation] sync interrupted, keeping progress so far")
			return err
		}

		fmt.Printf("📥 [Curation] searching %q...\n", query)
		repos, err := c.source.SearchRepositories(ctx, query, c.perQuery)
		if err != nil {
			log.Printf("❌ [Curation] search %q failed: %v", query, err)
			continue
		}

		for _, repo := range repos {
			exists, err := c.pool.Exists(ctx, repo.ID)
			if err != nil {
				log.Printf("❌ [Curation] existence check for %s failed: %v, skipping", repo.FullName, err)
				continue
			}
			if exists {
				continue
			}

			if err := c.pool.Save(ctx, repo); err != nil {
				log.Printf("❌ [Curation] save %s failed: %v", repo.FullName, err)
				continue
			}
			total++
		}
		fmt.Printf("✅ [Curation] pooled %d new repos so far\n", total)
	}

	fmt.Printf("🎉 [Curation] sync complete, %d new repos pooled\n", total)
	return nil
}
